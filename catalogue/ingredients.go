package catalogue

import "recipeseed/models"

// ingredients lists every name a catalogue recipe refers to. Shelf life is in days.
var ingredients = []models.Ingredient{
	{
		Name:          "spaghetti",
		Aliases:       []string{"spaghetti pasta"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "pancetta",
		Aliases:       []string{"italian bacon"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 21, Frozen: 180},
		FlavorProfile: []string{"salty", "savory", "fatty"},
	},
	{
		Name:          "eggs",
		Aliases:       []string{"egg", "whole eggs"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"whole"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 35, Frozen: 365},
		FlavorProfile: []string{"rich", "savory"},
	},
	{
		Name:          "parmesan cheese",
		Aliases:       []string{"parmesan", "parmigiano reggiano"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 60, Frozen: 180},
		FlavorProfile: []string{"salty", "nutty", "umami"},
	},
	{
		Name:          "black pepper",
		Aliases:       []string{"pepper", "ground black pepper"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp", "pinch"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"pungent", "spicy"},
	},
	{
		Name:          "pizza dough",
		Aliases:       []string{"pizza base"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 3, Frozen: 90},
		FlavorProfile: []string{"yeasty"},
	},
	{
		Name:          "tomato sauce",
		Aliases:       []string{"passata", "tomato passata"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 7, Frozen: 180},
		FlavorProfile: []string{"tangy", "sweet"},
	},
	{
		Name:          "mozzarella cheese",
		Aliases:       []string{"mozzarella", "fresh mozzarella"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 90},
		FlavorProfile: []string{"mild", "milky"},
	},
	{
		Name:          "basil",
		Aliases:       []string{"fresh basil", "sweet basil"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"leaves", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 180},
		FlavorProfile: []string{"herbal", "sweet", "peppery"},
	},
	{
		Name:          "olive oil",
		Aliases:       []string{"extra virgin olive oil", "evoo"},
		Category:      models.CategoryOil,
		CommonUnits:   []string{"tbsp", "ml"},
		ShelfLife:     models.ShelfLife{Pantry: 540, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"fruity", "peppery"},
	},
	{
		Name:          "lasagna noodles",
		Aliases:       []string{"lasagne sheets", "lasagna sheets"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"sheets", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "ground beef",
		Aliases:       []string{"minced beef", "beef mince"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 2, Frozen: 120},
		FlavorProfile: []string{"savory", "meaty"},
	},
	{
		Name:          "onion",
		Aliases:       []string{"yellow onion", "brown onion"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 30, Refrigerated: 60, Frozen: 240},
		FlavorProfile: []string{"pungent", "sweet"},
	},
	{
		Name:          "garlic",
		Aliases:       []string{"garlic clove"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"cloves", "tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 90, Refrigerated: 0, Frozen: 300},
		FlavorProfile: []string{"pungent", "savory"},
	},
	{
		Name:          "butter",
		Aliases:       []string{"unsalted butter"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 30, Frozen: 270},
		FlavorProfile: []string{"rich", "creamy"},
	},
	{
		Name:          "flour",
		Aliases:       []string{"all-purpose flour", "plain flour"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 240, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "milk",
		Aliases:       []string{"whole milk"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 90},
		FlavorProfile: []string{"mild", "creamy"},
	},
	{
		Name:          "arborio rice",
		Aliases:       []string{"risotto rice", "carnaroli rice"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"starchy"},
	},
	{
		Name:          "chicken broth",
		Aliases:       []string{"chicken stock"},
		Category:      models.CategoryOther,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"savory", "umami"},
	},
	{
		Name:          "white wine",
		Aliases:       []string{"dry white wine"},
		Category:      models.CategoryBeverage,
		CommonUnits:   []string{"ml"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 5, Frozen: 0},
		FlavorProfile: []string{"acidic", "fruity"},
	},
	{
		Name:          "saffron",
		Aliases:       []string{"saffron threads"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"g", "pinch"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"floral", "earthy"},
	},
	{
		Name:          "penne pasta",
		Aliases:       []string{"penne"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "tomato",
		Aliases:       []string{"tomatoes", "fresh tomato"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 5, Refrigerated: 10, Frozen: 240},
		FlavorProfile: []string{"sweet", "acidic"},
	},
	{
		Name:          "red chili flakes",
		Aliases:       []string{"crushed red pepper", "chili flakes"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"spicy", "hot"},
	},
	{
		Name:          "veal shanks",
		Aliases:       []string{"veal shank", "osso buco cut"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"pieces", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 3, Frozen: 180},
		FlavorProfile: []string{"meaty", "rich"},
	},
	{
		Name:          "carrot",
		Aliases:       []string{"carrots"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 28, Frozen: 300},
		FlavorProfile: []string{"sweet", "earthy"},
	},
	{
		Name:          "celery",
		Aliases:       []string{"celery stalk"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"stalks"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 14, Frozen: 300},
		FlavorProfile: []string{"fresh", "grassy"},
	},
	{
		Name:          "balsamic vinegar",
		Aliases:       []string{"balsamic"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"tbsp", "ml"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"sweet", "acidic"},
	},
	{
		Name:          "salt",
		Aliases:       []string{"sea salt", "kosher salt"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp", "pinch"},
		ShelfLife:     models.ShelfLife{Pantry: 1825, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"salty"},
	},
	{
		Name:          "cannellini beans",
		Aliases:       []string{"white kidney beans", "white beans"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g", "can"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"mild", "creamy"},
	},
	{
		Name:          "zucchini",
		Aliases:       []string{"courgette"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 240},
		FlavorProfile: []string{"mild", "fresh"},
	},
	{
		Name:          "small pasta",
		Aliases:       []string{"ditalini", "soup pasta"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "vegetable broth",
		Aliases:       []string{"vegetable stock"},
		Category:      models.CategoryOther,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"savory"},
	},
	{
		Name:          "ladyfinger cookies",
		Aliases:       []string{"ladyfingers", "savoiardi"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"pieces"},
		ShelfLife:     models.ShelfLife{Pantry: 180, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"sweet"},
	},
	{
		Name:          "mascarpone cheese",
		Aliases:       []string{"mascarpone"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 60},
		FlavorProfile: []string{"creamy", "sweet"},
	},
	{
		Name:          "sugar",
		Aliases:       []string{"white sugar", "granulated sugar", "caster sugar"},
		Category:      models.CategorySweetener,
		CommonUnits:   []string{"g", "tbsp", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 1825, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"sweet"},
	},
	{
		Name:          "espresso coffee",
		Aliases:       []string{"espresso", "strong coffee"},
		Category:      models.CategoryBeverage,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 2, Frozen: 0},
		FlavorProfile: []string{"bitter", "roasted"},
	},
	{
		Name:          "cocoa powder",
		Aliases:       []string{"unsweetened cocoa"},
		Category:      models.CategorySweetener,
		CommonUnits:   []string{"tbsp", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"bitter", "chocolatey"},
	},
	{
		Name:          "bread",
		Aliases:       []string{"baguette", "ciabatta"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"slices", "loaf"},
		ShelfLife:     models.ShelfLife{Pantry: 4, Refrigerated: 0, Frozen: 90},
		FlavorProfile: []string{"yeasty", "toasty"},
	},
	{
		Name:          "avocado",
		Aliases:       []string{"avocados", "hass avocado"},
		Category:      models.CategoryFruit,
		CommonUnits:   []string{"whole"},
		ShelfLife:     models.ShelfLife{Pantry: 4, Refrigerated: 7, Frozen: 180},
		FlavorProfile: []string{"creamy", "buttery"},
	},
	{
		Name:          "lime",
		Aliases:       []string{"limes", "lime juice"},
		Category:      models.CategoryFruit,
		CommonUnits:   []string{"whole", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 7, Refrigerated: 30, Frozen: 120},
		FlavorProfile: []string{"sour", "citrus"},
	},
	{
		Name:          "red onion",
		Aliases:       []string{"purple onion"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 30, Refrigerated: 60, Frozen: 240},
		FlavorProfile: []string{"pungent", "sweet"},
	},
	{
		Name:          "cilantro",
		Aliases:       []string{"coriander leaves", "fresh coriander"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"g", "bunch"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 180},
		FlavorProfile: []string{"citrus", "herbal"},
	},
	{
		Name:          "jalapeño",
		Aliases:       []string{"jalapeno", "jalapeño pepper"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 14, Frozen: 180},
		FlavorProfile: []string{"spicy", "grassy"},
	},
	{
		Name:          "chicken breast",
		Aliases:       []string{"chicken breasts", "boneless chicken breast", "chicken"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g", "pieces"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 2, Frozen: 270},
		FlavorProfile: []string{"mild", "savory"},
	},
	{
		Name:          "corn tortillas",
		Aliases:       []string{"corn tortilla"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"pieces"},
		ShelfLife:     models.ShelfLife{Pantry: 7, Refrigerated: 30, Frozen: 180},
		FlavorProfile: []string{"earthy", "corn"},
	},
	{
		Name:          "enchilada sauce",
		Aliases:       []string{"red enchilada sauce"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 7, Frozen: 180},
		FlavorProfile: []string{"spicy", "smoky"},
	},
	{
		Name:          "cheddar cheese",
		Aliases:       []string{"cheddar", "sharp cheddar"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g", "slices"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 42, Frozen: 180},
		FlavorProfile: []string{"sharp", "savory"},
	},
	{
		Name:          "ground cumin",
		Aliases:       []string{"cumin"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"earthy", "warm"},
	},
	{
		Name:          "sour cream",
		Aliases:       []string{"soured cream"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 14, Frozen: 0},
		FlavorProfile: []string{"tangy", "creamy"},
	},
	{
		Name:          "flour tortillas",
		Aliases:       []string{"flour tortilla", "wheat tortillas"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"pieces"},
		ShelfLife:     models.ShelfLife{Pantry: 7, Refrigerated: 30, Frozen: 180},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "black beans",
		Aliases:       []string{"turtle beans"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g", "can"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"earthy", "creamy"},
	},
	{
		Name:          "corn kernels",
		Aliases:       []string{"sweetcorn", "corn"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 3, Frozen: 240},
		FlavorProfile: []string{"sweet"},
	},
	{
		Name:          "salsa",
		Aliases:       []string{"salsa roja", "tomato salsa"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"ml", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 10, Frozen: 0},
		FlavorProfile: []string{"tangy", "spicy"},
	},
	{
		Name:          "bell pepper",
		Aliases:       []string{"capsicum", "sweet pepper"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 240},
		FlavorProfile: []string{"sweet", "fresh"},
	},
	{
		Name:          "broccoli",
		Aliases:       []string{"broccoli florets"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"g", "head"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 5, Frozen: 300},
		FlavorProfile: []string{"earthy", "green"},
	},
	{
		Name:          "soy sauce",
		Aliases:       []string{"shoyu", "light soy sauce"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"tbsp", "ml"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"salty", "umami"},
	},
	{
		Name:          "ginger",
		Aliases:       []string{"fresh ginger", "ginger root"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"g", "tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 7, Refrigerated: 30, Frozen: 180},
		FlavorProfile: []string{"spicy", "warm", "citrus"},
	},
	{
		Name:          "vegetable oil",
		Aliases:       []string{"canola oil", "neutral oil"},
		Category:      models.CategoryOil,
		CommonUnits:   []string{"tbsp", "ml"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "jasmine rice",
		Aliases:       []string{"thai fragrant rice"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"floral", "starchy"},
	},
	{
		Name:          "rice noodles",
		Aliases:       []string{"rice stick noodles", "flat rice noodles"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "shrimp",
		Aliases:       []string{"prawns"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 2, Frozen: 180},
		FlavorProfile: []string{"sweet", "briny"},
	},
	{
		Name:          "bean sprouts",
		Aliases:       []string{"mung bean sprouts"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 4, Frozen: 0},
		FlavorProfile: []string{"fresh", "crunchy"},
	},
	{
		Name:          "tamarind paste",
		Aliases:       []string{"tamarind concentrate"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 90, Frozen: 0},
		FlavorProfile: []string{"sour", "fruity"},
	},
	{
		Name:          "fish sauce",
		Aliases:       []string{"nam pla"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"salty", "umami", "funky"},
	},
	{
		Name:          "peanuts",
		Aliases:       []string{"roasted peanuts"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 180, Refrigerated: 365, Frozen: 0},
		FlavorProfile: []string{"nutty", "roasted"},
	},
	{
		Name:          "green onion",
		Aliases:       []string{"scallion", "spring onion"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"stalks", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 180},
		FlavorProfile: []string{"mild", "fresh", "oniony"},
	},
	{
		Name:          "cooked rice",
		Aliases:       []string{"day-old rice", "leftover rice"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"neutral", "starchy"},
	},
	{
		Name:          "peas",
		Aliases:       []string{"green peas", "frozen peas"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 5, Frozen: 365},
		FlavorProfile: []string{"sweet", "green"},
	},
	{
		Name:          "sesame oil",
		Aliases:       []string{"toasted sesame oil"},
		Category:      models.CategoryOil,
		CommonUnits:   []string{"tsp", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"nutty", "toasty"},
	},
	{
		Name:          "burger buns",
		Aliases:       []string{"hamburger buns"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"pieces"},
		ShelfLife:     models.ShelfLife{Pantry: 5, Refrigerated: 0, Frozen: 90},
		FlavorProfile: []string{"soft", "yeasty"},
	},
	{
		Name:          "lettuce",
		Aliases:       []string{"iceberg lettuce", "romaine"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"leaves", "head"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 0},
		FlavorProfile: []string{"fresh", "crisp"},
	},
	{
		Name:          "ketchup",
		Aliases:       []string{"tomato ketchup", "catsup"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 180, Frozen: 0},
		FlavorProfile: []string{"sweet", "tangy"},
	},
	{
		Name:          "buttermilk",
		Aliases:       []string{"cultured buttermilk"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"ml", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 14, Frozen: 90},
		FlavorProfile: []string{"tangy"},
	},
	{
		Name:          "baking powder",
		Aliases:       []string{"double-acting baking powder"},
		Category:      models.CategoryOther,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "maple syrup",
		Aliases:       []string{"pure maple syrup"},
		Category:      models.CategorySweetener,
		CommonUnits:   []string{"ml", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 365, Frozen: 0},
		FlavorProfile: []string{"sweet", "caramel"},
	},
	{
		Name:          "elbow macaroni",
		Aliases:       []string{"macaroni"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"neutral"},
	},
	{
		Name:          "breadcrumbs",
		Aliases:       []string{"panko", "dried breadcrumbs"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 180, Refrigerated: 0, Frozen: 180},
		FlavorProfile: []string{"toasty"},
	},
	{
		Name:          "mustard powder",
		Aliases:       []string{"dry mustard", "english mustard powder"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"pungent", "sharp"},
	},
	{
		Name:          "cucumber",
		Aliases:       []string{"cucumbers", "english cucumber"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"whole", "g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 7, Frozen: 0},
		FlavorProfile: []string{"fresh", "cool"},
	},
	{
		Name:          "kalamata olives",
		Aliases:       []string{"kalamata", "black olives"},
		Category:      models.CategoryFruit,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 30, Frozen: 0},
		FlavorProfile: []string{"briny", "fruity"},
	},
	{
		Name:          "feta cheese",
		Aliases:       []string{"feta"},
		Category:      models.CategoryDairy,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 30, Frozen: 90},
		FlavorProfile: []string{"salty", "tangy"},
	},
	{
		Name:          "dried oregano",
		Aliases:       []string{"oregano"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"herbal", "earthy"},
	},
	{
		Name:          "chickpeas",
		Aliases:       []string{"garbanzo beans", "chick peas"},
		Category:      models.CategoryProtein,
		CommonUnits:   []string{"g", "can"},
		ShelfLife:     models.ShelfLife{Pantry: 730, Refrigerated: 4, Frozen: 180},
		FlavorProfile: []string{"nutty", "earthy"},
	},
	{
		Name:          "tahini",
		Aliases:       []string{"sesame paste"},
		Category:      models.CategoryCondiment,
		CommonUnits:   []string{"g", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 365, Refrigerated: 180, Frozen: 0},
		FlavorProfile: []string{"nutty", "bitter"},
	},
	{
		Name:          "lemon",
		Aliases:       []string{"lemons", "lemon juice"},
		Category:      models.CategoryFruit,
		CommonUnits:   []string{"whole", "tbsp"},
		ShelfLife:     models.ShelfLife{Pantry: 7, Refrigerated: 30, Frozen: 120},
		FlavorProfile: []string{"sour", "citrus"},
	},
	{
		Name:          "paprika",
		Aliases:       []string{"sweet paprika", "smoked paprika"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"tsp"},
		ShelfLife:     models.ShelfLife{Pantry: 1095, Refrigerated: 0, Frozen: 0},
		FlavorProfile: []string{"smoky", "sweet"},
	},
	{
		Name:          "parsley",
		Aliases:       []string{"flat-leaf parsley", "italian parsley"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"g", "bunch"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 180},
		FlavorProfile: []string{"fresh", "herbal"},
	},
	{
		Name:          "phyllo dough",
		Aliases:       []string{"filo pastry", "phyllo"},
		Category:      models.CategoryGrain,
		CommonUnits:   []string{"sheets"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 30, Frozen: 270},
		FlavorProfile: []string{"neutral", "flaky"},
	},
	{
		Name:          "spinach",
		Aliases:       []string{"baby spinach", "greens", "leaf spinach"},
		Category:      models.CategoryVegetable,
		CommonUnits:   []string{"g", "cup"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 5, Frozen: 300},
		FlavorProfile: []string{"earthy", "mild"},
	},
	{
		Name:          "dill",
		Aliases:       []string{"fresh dill", "dill weed"},
		Category:      models.CategorySpice,
		CommonUnits:   []string{"g"},
		ShelfLife:     models.ShelfLife{Pantry: 0, Refrigerated: 10, Frozen: 180},
		FlavorProfile: []string{"fresh", "anise"},
	},
}
