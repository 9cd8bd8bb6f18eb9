package catalogue

import "recipeseed/models"

var asian = []models.Recipe{
	{
		Title:       "Chicken Stir-Fry",
		Slug:        "chicken-stir-fry",
		Description: "Quick wok-fried chicken with crisp vegetables in soy-ginger sauce",
		Ingredients: []models.RecipeIngredient{
			{Name: "chicken breast", Quantity: 400, Unit: "g"},
			{Name: "bell pepper", Quantity: 2, Unit: "whole"},
			{Name: "broccoli", Quantity: 200, Unit: "g"},
			{Name: "soy sauce", Quantity: 3, Unit: "tbsp"},
			{Name: "ginger", Quantity: 15, Unit: "g"},
			{Name: "garlic", Quantity: 3, Unit: "cloves"},
			{Name: "vegetable oil", Quantity: 2, Unit: "tbsp"},
			{Name: "jasmine rice", Quantity: 300, Unit: "g"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Cook jasmine rice", DurationMinutes: 15},
			{StepNumber: 2, Description: "Slice chicken and vegetables", DurationMinutes: 10},
			{StepNumber: 3, Description: "Stir-fry chicken in hot oil until browned", DurationMinutes: 6},
			{StepNumber: 4, Description: "Add vegetables, garlic, and ginger and toss", DurationMinutes: 4},
			{StepNumber: 5, Description: "Add soy sauce and serve over rice", DurationMinutes: 1},
		},
		PrepTime:   15,
		CookTime:   26,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Asian",
		Categories: []string{"Main Course", "Stir-Fry"},
		Tags:       []string{"asian", "chicken", "quick", "healthy"},
		IsApproved: true,
	},
	{
		Title:       "Pad Thai",
		Slug:        "pad-thai",
		Description: "Thai rice noodles with shrimp, egg, peanuts, and tamarind",
		Ingredients: []models.RecipeIngredient{
			{Name: "rice noodles", Quantity: 250, Unit: "g"},
			{Name: "shrimp", Quantity: 300, Unit: "g"},
			{Name: "eggs", Quantity: 2, Unit: "whole"},
			{Name: "bean sprouts", Quantity: 150, Unit: "g"},
			{Name: "tamarind paste", Quantity: 3, Unit: "tbsp"},
			{Name: "fish sauce", Quantity: 2, Unit: "tbsp"},
			{Name: "sugar", Quantity: 2, Unit: "tbsp"},
			{Name: "peanuts", Quantity: 50, Unit: "g"},
			{Name: "green onion", Quantity: 3, Unit: "stalks"},
			{Name: "lime", Quantity: 1, Unit: "whole"},
			{Name: "vegetable oil", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Soak rice noodles in warm water", DurationMinutes: 20},
			{StepNumber: 2, Description: "Mix tamarind, fish sauce, and sugar", DurationMinutes: 2},
			{StepNumber: 3, Description: "Stir-fry shrimp, then push aside and scramble eggs", DurationMinutes: 5},
			{StepNumber: 4, Description: "Add noodles and sauce, toss until absorbed", DurationMinutes: 4},
			{StepNumber: 5, Description: "Finish with bean sprouts, green onion, peanuts, and lime", DurationMinutes: 2},
		},
		PrepTime:   25,
		CookTime:   11,
		Servings:   3,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "Asian",
		Categories: []string{"Noodles", "Main Course"},
		Tags:       []string{"asian", "thai", "noodles", "seafood"},
		IsApproved: true,
	},
	{
		Title:       "Vegetable Fried Rice",
		Slug:        "vegetable-fried-rice",
		Description: "Day-old rice fried with vegetables, egg, and soy sauce",
		Ingredients: []models.RecipeIngredient{
			{Name: "cooked rice", Quantity: 600, Unit: "g"},
			{Name: "eggs", Quantity: 2, Unit: "whole"},
			{Name: "peas", Quantity: 100, Unit: "g"},
			{Name: "carrot", Quantity: 1, Unit: "whole"},
			{Name: "green onion", Quantity: 3, Unit: "stalks"},
			{Name: "soy sauce", Quantity: 3, Unit: "tbsp"},
			{Name: "sesame oil", Quantity: 1, Unit: "tsp"},
			{Name: "vegetable oil", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Dice carrot and slice green onion", DurationMinutes: 5},
			{StepNumber: 2, Description: "Scramble eggs in oil and set aside", DurationMinutes: 3},
			{StepNumber: 3, Description: "Fry carrot and peas, then add rice", DurationMinutes: 8},
			{StepNumber: 4, Description: "Stir in soy sauce, sesame oil, eggs, and green onion", DurationMinutes: 2},
		},
		PrepTime:   10,
		CookTime:   13,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "Asian",
		Categories: []string{"Rice", "Main Course"},
		Tags:       []string{"asian", "rice", "vegetarian", "quick"},
		IsApproved: true,
	},
}
