package catalogue

import "recipeseed/models"

var mexican = []models.Recipe{
	{
		Title:       "Classic Guacamole",
		Slug:        "classic-guacamole",
		Description: "Chunky avocado dip with lime, onion, and cilantro",
		Ingredients: []models.RecipeIngredient{
			{Name: "avocado", Quantity: 3, Unit: "whole"},
			{Name: "lime", Quantity: 1, Unit: "whole"},
			{Name: "red onion", Quantity: 0.5, Unit: "whole"},
			{Name: "tomato", Quantity: 1, Unit: "whole"},
			{Name: "cilantro", Quantity: 15, Unit: "g"},
			{Name: "jalapeño", Quantity: 1, Unit: "whole", Optional: true},
			{Name: "salt", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Halve avocados and scoop into a bowl", DurationMinutes: 3},
			{StepNumber: 2, Description: "Mash with lime juice and salt", DurationMinutes: 3},
			{StepNumber: 3, Description: "Fold in diced onion, tomato, cilantro, and jalapeño", DurationMinutes: 4},
		},
		PrepTime:   10,
		CookTime:   0,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Mexican",
		Categories: []string{"Dip", "Appetizer"},
		Tags:       []string{"mexican", "dip", "vegan", "no-cook", "quick"},
		IsApproved: true,
	},
	{
		Title:       "Chicken Enchiladas",
		Slug:        "chicken-enchiladas",
		Description: "Corn tortillas rolled around shredded chicken and baked in red sauce",
		Ingredients: []models.RecipeIngredient{
			{Name: "chicken breast", Quantity: 500, Unit: "g"},
			{Name: "corn tortillas", Quantity: 10, Unit: "pieces"},
			{Name: "enchilada sauce", Quantity: 500, Unit: "ml"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 2, Unit: "cloves"},
			{Name: "cheddar cheese", Quantity: 200, Unit: "g"},
			{Name: "ground cumin", Quantity: 1, Unit: "tsp"},
			{Name: "sour cream", Quantity: 100, Unit: "g", Optional: true, Notes: "for serving"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Poach chicken breast and shred", DurationMinutes: 20},
			{StepNumber: 2, Description: "Sauté onion, garlic, and cumin, then mix with chicken", DurationMinutes: 6},
			{StepNumber: 3, Description: "Fill and roll tortillas, place in a baking dish", DurationMinutes: 10},
			{StepNumber: 4, Description: "Cover with sauce and cheese, bake at 190°C", DurationMinutes: 20},
		},
		PrepTime:   25,
		CookTime:   46,
		Servings:   5,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Mexican",
		Categories: []string{"Main Course"},
		Tags:       []string{"mexican", "chicken", "baked", "comfort-food"},
		IsApproved: true,
	},
	{
		Title:       "Black Bean Quesadillas",
		Slug:        "black-bean-quesadillas",
		Description: "Crisp flour tortillas filled with black beans, corn, and melted cheese",
		Ingredients: []models.RecipeIngredient{
			{Name: "flour tortillas", Quantity: 4, Unit: "pieces"},
			{Name: "black beans", Quantity: 400, Unit: "g"},
			{Name: "corn kernels", Quantity: 150, Unit: "g"},
			{Name: "cheddar cheese", Quantity: 150, Unit: "g"},
			{Name: "ground cumin", Quantity: 1, Unit: "tsp"},
			{Name: "salsa", Quantity: 120, Unit: "ml", Optional: true},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Mash half the beans with cumin", DurationMinutes: 3},
			{StepNumber: 2, Description: "Spread beans, corn, and cheese over half of each tortilla", DurationMinutes: 4},
			{StepNumber: 3, Description: "Fold and cook in a dry pan until golden on both sides", DurationMinutes: 8},
		},
		PrepTime:   10,
		CookTime:   8,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Mexican",
		Categories: []string{"Main Course", "Snack"},
		Tags:       []string{"mexican", "vegetarian", "quick"},
		IsApproved: true,
	},
}
