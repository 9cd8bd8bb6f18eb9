package catalogue

import "recipeseed/models"

var italian = []models.Recipe{
	{
		Title:       "Classic Spaghetti Carbonara",
		Slug:        "classic-spaghetti-carbonara",
		Description: "Traditional Italian pasta with eggs, cheese, and pancetta",
		Ingredients: []models.RecipeIngredient{
			{Name: "spaghetti", Quantity: 400, Unit: "g"},
			{Name: "pancetta", Quantity: 200, Unit: "g"},
			{Name: "eggs", Quantity: 4, Unit: "whole"},
			{Name: "parmesan cheese", Quantity: 100, Unit: "g"},
			{Name: "black pepper", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Cook spaghetti in salted boiling water until al dente", DurationMinutes: 10},
			{StepNumber: 2, Description: "Fry pancetta until crispy", DurationMinutes: 5},
			{StepNumber: 3, Description: "Mix eggs and parmesan in a bowl", DurationMinutes: 2},
			{StepNumber: 4, Description: "Combine hot pasta with pancetta, then add egg mixture off heat", DurationMinutes: 3},
		},
		PrepTime:   10,
		CookTime:   20,
		Servings:   4,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Italian",
		Categories: []string{"Pasta", "Main Course"},
		Tags:       []string{"italian", "pasta", "quick", "comfort-food"},
		IsApproved: true,
	},
	{
		Title:       "Margherita Pizza",
		Slug:        "margherita-pizza",
		Description: "Classic Neapolitan pizza with tomato, mozzarella, and basil",
		Ingredients: []models.RecipeIngredient{
			{Name: "pizza dough", Quantity: 500, Unit: "g"},
			{Name: "tomato sauce", Quantity: 200, Unit: "ml"},
			{Name: "mozzarella cheese", Quantity: 250, Unit: "g"},
			{Name: "basil", Quantity: 10, Unit: "leaves"},
			{Name: "olive oil", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Preheat oven to 250°C", DurationMinutes: 15},
			{StepNumber: 2, Description: "Roll out pizza dough", DurationMinutes: 5},
			{StepNumber: 3, Description: "Spread tomato sauce and add mozzarella", DurationMinutes: 3},
			{StepNumber: 4, Description: "Bake for 10-12 minutes until crust is golden", DurationMinutes: 12},
		},
		PrepTime:   20,
		CookTime:   12,
		Servings:   2,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Italian",
		Categories: []string{"Pizza", "Main Course"},
		Tags:       []string{"italian", "pizza", "vegetarian"},
		IsApproved: true,
	},
	{
		Title:       "Lasagna Bolognese",
		Slug:        "lasagna-bolognese",
		Description: "Layered pasta with rich meat sauce and béchamel",
		Ingredients: []models.RecipeIngredient{
			{Name: "lasagna noodles", Quantity: 12, Unit: "sheets"},
			{Name: "ground beef", Quantity: 500, Unit: "g"},
			{Name: "tomato sauce", Quantity: 800, Unit: "ml"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "mozzarella cheese", Quantity: 300, Unit: "g"},
			{Name: "parmesan cheese", Quantity: 100, Unit: "g"},
			{Name: "butter", Quantity: 50, Unit: "g"},
			{Name: "flour", Quantity: 50, Unit: "g"},
			{Name: "milk", Quantity: 500, Unit: "ml"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Prepare Bolognese sauce with beef, tomatoes, onion, and garlic", DurationMinutes: 30},
			{StepNumber: 2, Description: "Make béchamel sauce with butter, flour, and milk", DurationMinutes: 15},
			{StepNumber: 3, Description: "Layer noodles, Bolognese, béchamel, and cheese", DurationMinutes: 20},
			{StepNumber: 4, Description: "Bake at 180°C for 40 minutes", DurationMinutes: 40},
		},
		PrepTime:   45,
		CookTime:   70,
		Servings:   8,
		Difficulty: models.DifficultyHard,
		Cuisine:    "Italian",
		Categories: []string{"Pasta", "Main Course"},
		Tags:       []string{"italian", "pasta", "baked", "comfort-food"},
		IsApproved: true,
	},
	{
		Title:       "Risotto alla Milanese",
		Slug:        "risotto-alla-milanese",
		Description: "Creamy saffron risotto from Milan",
		Ingredients: []models.RecipeIngredient{
			{Name: "arborio rice", Quantity: 320, Unit: "g"},
			{Name: "chicken broth", Quantity: 1000, Unit: "ml"},
			{Name: "white wine", Quantity: 150, Unit: "ml"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "butter", Quantity: 80, Unit: "g"},
			{Name: "parmesan cheese", Quantity: 80, Unit: "g"},
			{Name: "saffron", Quantity: 0.5, Unit: "g"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Sauté onion in butter until soft", DurationMinutes: 5},
			{StepNumber: 2, Description: "Add rice and toast for 2 minutes", DurationMinutes: 2},
			{StepNumber: 3, Description: "Add wine and let evaporate", DurationMinutes: 3},
			{StepNumber: 4, Description: "Add broth gradually, stirring constantly with saffron", DurationMinutes: 20},
			{StepNumber: 5, Description: "Finish with butter and parmesan", DurationMinutes: 2},
		},
		PrepTime:   10,
		CookTime:   32,
		Servings:   4,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Italian",
		Categories: []string{"Rice", "Main Course"},
		Tags:       []string{"italian", "risotto", "vegetarian", "creamy"},
		IsApproved: true,
	},
	{
		Title:       "Penne Arrabbiata",
		Slug:        "penne-arrabbiata",
		Description: "Spicy tomato pasta with garlic and chili",
		Ingredients: []models.RecipeIngredient{
			{Name: "penne pasta", Quantity: 400, Unit: "g"},
			{Name: "tomato", Quantity: 6, Unit: "whole"},
			{Name: "garlic", Quantity: 4, Unit: "cloves"},
			{Name: "red chili flakes", Quantity: 2, Unit: "tsp"},
			{Name: "olive oil", Quantity: 4, Unit: "tbsp"},
			{Name: "basil", Quantity: 10, Unit: "leaves"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Cook penne until al dente", DurationMinutes: 11},
			{StepNumber: 2, Description: "Sauté garlic and chili in olive oil", DurationMinutes: 2},
			{StepNumber: 3, Description: "Add crushed tomatoes and simmer", DurationMinutes: 15},
			{StepNumber: 4, Description: "Toss pasta with sauce and basil", DurationMinutes: 2},
		},
		PrepTime:   10,
		CookTime:   30,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Italian",
		Categories: []string{"Pasta", "Main Course"},
		Tags:       []string{"italian", "pasta", "spicy", "vegan"},
		IsApproved: true,
	},
	{
		Title:       "Osso Buco",
		Slug:        "osso-buco",
		Description: "Braised veal shanks in white wine and vegetables",
		Ingredients: []models.RecipeIngredient{
			{Name: "veal shanks", Quantity: 4, Unit: "pieces"},
			{Name: "white wine", Quantity: 250, Unit: "ml"},
			{Name: "chicken broth", Quantity: 500, Unit: "ml"},
			{Name: "tomato", Quantity: 4, Unit: "whole"},
			{Name: "carrot", Quantity: 2, Unit: "whole"},
			{Name: "celery", Quantity: 2, Unit: "stalks"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "flour", Quantity: 50, Unit: "g"},
			{Name: "olive oil", Quantity: 3, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Dredge veal in flour and brown in oil", DurationMinutes: 10},
			{StepNumber: 2, Description: "Sauté vegetables until soft", DurationMinutes: 8},
			{StepNumber: 3, Description: "Add wine and reduce", DurationMinutes: 5},
			{StepNumber: 4, Description: "Add broth and tomatoes, braise for 2 hours", DurationMinutes: 120},
		},
		PrepTime:   20,
		CookTime:   143,
		Servings:   4,
		Difficulty: models.DifficultyHard,
		Cuisine:    "Italian",
		Categories: []string{"Meat", "Main Course"},
		Tags:       []string{"italian", "braised", "veal", "slow-cooked"},
		IsApproved: true,
	},
	{
		Title:       "Caprese Salad",
		Slug:        "caprese-salad",
		Description: "Fresh mozzarella, tomatoes, and basil with balsamic",
		Ingredients: []models.RecipeIngredient{
			{Name: "mozzarella cheese", Quantity: 250, Unit: "g"},
			{Name: "tomato", Quantity: 4, Unit: "whole"},
			{Name: "basil", Quantity: 20, Unit: "leaves"},
			{Name: "olive oil", Quantity: 3, Unit: "tbsp"},
			{Name: "balsamic vinegar", Quantity: 2, Unit: "tbsp"},
			{Name: "salt", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Slice tomatoes and mozzarella", DurationMinutes: 5},
			{StepNumber: 2, Description: "Arrange alternating slices with basil", DurationMinutes: 3},
			{StepNumber: 3, Description: "Drizzle with oil and balsamic", DurationMinutes: 1},
			{StepNumber: 4, Description: "Season with salt", DurationMinutes: 1},
		},
		PrepTime:   10,
		CookTime:   0,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Italian",
		Categories: []string{"Salad", "Appetizer"},
		Tags:       []string{"italian", "salad", "vegetarian", "no-cook", "fresh"},
		IsApproved: true,
	},
	{
		Title:       "Minestrone Soup",
		Slug:        "minestrone-soup",
		Description: "Hearty Italian vegetable soup with pasta",
		Ingredients: []models.RecipeIngredient{
			{Name: "cannellini beans", Quantity: 200, Unit: "g"},
			{Name: "tomato", Quantity: 4, Unit: "whole"},
			{Name: "carrot", Quantity: 2, Unit: "whole"},
			{Name: "celery", Quantity: 2, Unit: "stalks"},
			{Name: "zucchini", Quantity: 1, Unit: "whole"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "small pasta", Quantity: 100, Unit: "g"},
			{Name: "vegetable broth", Quantity: 1500, Unit: "ml"},
			{Name: "olive oil", Quantity: 3, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Sauté onion, garlic, carrot, and celery", DurationMinutes: 8},
			{StepNumber: 2, Description: "Add tomatoes and broth, bring to boil", DurationMinutes: 10},
			{StepNumber: 3, Description: "Add beans and zucchini, simmer", DurationMinutes: 20},
			{StepNumber: 4, Description: "Add pasta and cook until tender", DurationMinutes: 10},
		},
		PrepTime:   15,
		CookTime:   48,
		Servings:   6,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Italian",
		Categories: []string{"Soup", "Main Course"},
		Tags:       []string{"italian", "soup", "vegetarian", "healthy"},
		IsApproved: true,
	},
	{
		Title:       "Tiramisu",
		Slug:        "tiramisu",
		Description: "Classic Italian coffee-flavored dessert",
		Ingredients: []models.RecipeIngredient{
			{Name: "ladyfinger cookies", Quantity: 24, Unit: "pieces"},
			{Name: "mascarpone cheese", Quantity: 500, Unit: "g"},
			{Name: "eggs", Quantity: 4, Unit: "whole"},
			{Name: "sugar", Quantity: 100, Unit: "g"},
			{Name: "espresso coffee", Quantity: 300, Unit: "ml"},
			{Name: "cocoa powder", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Separate eggs and beat yolks with sugar", DurationMinutes: 5},
			{StepNumber: 2, Description: "Fold in mascarpone", DurationMinutes: 3},
			{StepNumber: 3, Description: "Dip ladyfingers in espresso and layer", DurationMinutes: 10},
			{StepNumber: 4, Description: "Refrigerate for 4 hours, dust with cocoa", DurationMinutes: 240},
		},
		PrepTime:   20,
		CookTime:   0,
		Servings:   8,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Italian",
		Categories: []string{"Dessert"},
		Tags:       []string{"italian", "dessert", "coffee", "no-bake"},
		IsApproved: true,
	},
	{
		Title:       "Bruschetta",
		Slug:        "bruschetta",
		Description: "Grilled bread with tomato, garlic, and basil",
		Ingredients: []models.RecipeIngredient{
			{Name: "bread", Quantity: 8, Unit: "slices"},
			{Name: "tomato", Quantity: 4, Unit: "whole"},
			{Name: "garlic", Quantity: 2, Unit: "cloves"},
			{Name: "basil", Quantity: 10, Unit: "leaves"},
			{Name: "olive oil", Quantity: 4, Unit: "tbsp"},
			{Name: "balsamic vinegar", Quantity: 1, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Grill or toast bread slices", DurationMinutes: 5},
			{StepNumber: 2, Description: "Rub with garlic clove", DurationMinutes: 2},
			{StepNumber: 3, Description: "Top with diced tomatoes and basil", DurationMinutes: 5},
			{StepNumber: 4, Description: "Drizzle with oil and balsamic", DurationMinutes: 1},
		},
		PrepTime:   10,
		CookTime:   5,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Italian",
		Categories: []string{"Appetizer"},
		Tags:       []string{"italian", "appetizer", "vegan", "quick"},
		IsApproved: true,
	},
}
