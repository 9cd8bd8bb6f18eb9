package catalogue

import "recipeseed/models"

var mediterranean = []models.Recipe{
	{
		Title:       "Greek Salad",
		Slug:        "greek-salad",
		Description: "Tomato, cucumber, olives, and feta dressed with oregano and olive oil",
		Ingredients: []models.RecipeIngredient{
			{Name: "tomato", Quantity: 4, Unit: "whole"},
			{Name: "cucumber", Quantity: 1, Unit: "whole"},
			{Name: "red onion", Quantity: 0.5, Unit: "whole"},
			{Name: "kalamata olives", Quantity: 100, Unit: "g"},
			{Name: "feta cheese", Quantity: 200, Unit: "g"},
			{Name: "olive oil", Quantity: 4, Unit: "tbsp"},
			{Name: "dried oregano", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Cut tomatoes and cucumber into chunks", DurationMinutes: 6},
			{StepNumber: 2, Description: "Slice onion thinly", DurationMinutes: 2},
			{StepNumber: 3, Description: "Combine with olives and top with a slab of feta", DurationMinutes: 2},
			{StepNumber: 4, Description: "Dress with oil and oregano", DurationMinutes: 1},
		},
		PrepTime:   11,
		CookTime:   0,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Mediterranean",
		Categories: []string{"Salad"},
		Tags:       []string{"mediterranean", "greek", "salad", "vegetarian", "no-cook"},
		IsApproved: true,
	},
	{
		Title:       "Hummus",
		Slug:        "hummus",
		Description: "Smooth chickpea and tahini dip with lemon and garlic",
		Ingredients: []models.RecipeIngredient{
			{Name: "chickpeas", Quantity: 400, Unit: "g"},
			{Name: "tahini", Quantity: 80, Unit: "g"},
			{Name: "lemon", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 1, Unit: "cloves"},
			{Name: "olive oil", Quantity: 3, Unit: "tbsp"},
			{Name: "ground cumin", Quantity: 0.5, Unit: "tsp"},
			{Name: "salt", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Drain chickpeas, reserving some liquid", DurationMinutes: 2},
			{StepNumber: 2, Description: "Blend tahini with lemon juice until fluffy", DurationMinutes: 2},
			{StepNumber: 3, Description: "Add chickpeas, garlic, cumin, and salt and blend until smooth", DurationMinutes: 5},
			{StepNumber: 4, Description: "Loosen with reserved liquid and finish with oil", DurationMinutes: 1},
		},
		PrepTime:   10,
		CookTime:   0,
		Servings:   6,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Mediterranean",
		Categories: []string{"Dip", "Appetizer"},
		Tags:       []string{"mediterranean", "dip", "vegan", "no-cook"},
		IsApproved: true,
	},
	{
		Title:       "Shakshuka",
		Slug:        "shakshuka",
		Description: "Eggs poached in a spiced tomato and pepper sauce",
		Ingredients: []models.RecipeIngredient{
			{Name: "eggs", Quantity: 6, Unit: "whole"},
			{Name: "tomato", Quantity: 6, Unit: "whole"},
			{Name: "bell pepper", Quantity: 1, Unit: "whole"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "ground cumin", Quantity: 1, Unit: "tsp"},
			{Name: "paprika", Quantity: 1, Unit: "tsp"},
			{Name: "olive oil", Quantity: 2, Unit: "tbsp"},
			{Name: "feta cheese", Quantity: 50, Unit: "g", Optional: true},
			{Name: "parsley", Quantity: 10, Unit: "g"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Sauté onion and pepper in oil", DurationMinutes: 8},
			{StepNumber: 2, Description: "Add garlic and spices, then tomatoes, and simmer", DurationMinutes: 15},
			{StepNumber: 3, Description: "Make wells and crack in the eggs", DurationMinutes: 2},
			{StepNumber: 4, Description: "Cover and cook until whites are set", DurationMinutes: 7},
			{StepNumber: 5, Description: "Scatter parsley and feta", DurationMinutes: 1},
		},
		PrepTime:   10,
		CookTime:   33,
		Servings:   4,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Mediterranean",
		Categories: []string{"Breakfast", "Main Course"},
		Tags:       []string{"mediterranean", "eggs", "vegetarian", "one-pan"},
		IsApproved: true,
	},
	{
		Title:       "Spinach and Feta Pie",
		Slug:        "spinach-and-feta-pie",
		Description: "Crisp phyllo pie filled with spinach, feta, and dill",
		Ingredients: []models.RecipeIngredient{
			{Name: "phyllo dough", Quantity: 12, Unit: "sheets"},
			{Name: "spinach", Quantity: 500, Unit: "g"},
			{Name: "feta cheese", Quantity: 250, Unit: "g"},
			{Name: "eggs", Quantity: 2, Unit: "whole"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "dill", Quantity: 15, Unit: "g"},
			{Name: "butter", Quantity: 80, Unit: "g"},
			{Name: "olive oil", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Wilt spinach with onion in olive oil and drain well", DurationMinutes: 10},
			{StepNumber: 2, Description: "Mix with feta, eggs, and dill", DurationMinutes: 5},
			{StepNumber: 3, Description: "Layer buttered phyllo in a dish and add filling", DurationMinutes: 15},
			{StepNumber: 4, Description: "Top with more phyllo and bake at 180°C", DurationMinutes: 45},
		},
		PrepTime:   30,
		CookTime:   55,
		Servings:   8,
		Difficulty: models.DifficultyHard,
		Cuisine:    "Mediterranean",
		Categories: []string{"Pie", "Main Course"},
		Tags:       []string{"mediterranean", "greek", "baked", "vegetarian"},
		IsApproved: true,
	},
}
