package catalogue

import "recipeseed/models"

var american = []models.Recipe{
	{
		Title:       "Classic Cheeseburger",
		Slug:        "classic-cheeseburger",
		Description: "Griddled beef patties with melted cheddar on toasted buns",
		Ingredients: []models.RecipeIngredient{
			{Name: "ground beef", Quantity: 600, Unit: "g"},
			{Name: "burger buns", Quantity: 4, Unit: "pieces"},
			{Name: "cheddar cheese", Quantity: 4, Unit: "slices"},
			{Name: "lettuce", Quantity: 4, Unit: "leaves"},
			{Name: "tomato", Quantity: 1, Unit: "whole"},
			{Name: "onion", Quantity: 1, Unit: "whole"},
			{Name: "ketchup", Quantity: 4, Unit: "tbsp", Optional: true},
			{Name: "salt", Quantity: 1, Unit: "tsp"},
			{Name: "black pepper", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Shape beef into four patties and season", DurationMinutes: 5},
			{StepNumber: 2, Description: "Cook patties on a hot griddle, turning once", DurationMinutes: 8},
			{StepNumber: 3, Description: "Top with cheddar and cover until melted", DurationMinutes: 1},
			{StepNumber: 4, Description: "Toast buns and assemble with lettuce, tomato, and onion", DurationMinutes: 4},
		},
		PrepTime:   10,
		CookTime:   13,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "American",
		Categories: []string{"Sandwich", "Main Course"},
		Tags:       []string{"american", "beef", "grilled", "comfort-food"},
		IsApproved: true,
	},
	{
		Title:       "Buttermilk Pancakes",
		Slug:        "buttermilk-pancakes",
		Description: "Fluffy breakfast pancakes served with maple syrup",
		Ingredients: []models.RecipeIngredient{
			{Name: "flour", Quantity: 250, Unit: "g"},
			{Name: "buttermilk", Quantity: 480, Unit: "ml"},
			{Name: "eggs", Quantity: 2, Unit: "whole"},
			{Name: "butter", Quantity: 40, Unit: "g"},
			{Name: "sugar", Quantity: 2, Unit: "tbsp"},
			{Name: "baking powder", Quantity: 2, Unit: "tsp"},
			{Name: "salt", Quantity: 0.5, Unit: "tsp"},
			{Name: "maple syrup", Quantity: 120, Unit: "ml", Optional: true, Notes: "for serving"},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Whisk dry ingredients together", DurationMinutes: 2},
			{StepNumber: 2, Description: "Whisk buttermilk, eggs, and melted butter, then combine", DurationMinutes: 3},
			{StepNumber: 3, Description: "Rest the batter", DurationMinutes: 5},
			{StepNumber: 4, Description: "Cook ladlefuls on a buttered griddle until bubbles form, then flip", DurationMinutes: 15},
		},
		PrepTime:   10,
		CookTime:   15,
		Servings:   4,
		Difficulty: models.DifficultyEasy,
		Cuisine:    "American",
		Categories: []string{"Breakfast"},
		Tags:       []string{"american", "breakfast", "vegetarian", "sweet"},
		IsApproved: true,
	},
	{
		Title:       "Baked Macaroni and Cheese",
		Slug:        "baked-macaroni-and-cheese",
		Description: "Creamy cheddar sauce with elbow macaroni under a crisp crumb topping",
		Ingredients: []models.RecipeIngredient{
			{Name: "elbow macaroni", Quantity: 400, Unit: "g"},
			{Name: "cheddar cheese", Quantity: 300, Unit: "g"},
			{Name: "milk", Quantity: 700, Unit: "ml"},
			{Name: "butter", Quantity: 60, Unit: "g"},
			{Name: "flour", Quantity: 40, Unit: "g"},
			{Name: "breadcrumbs", Quantity: 50, Unit: "g"},
			{Name: "mustard powder", Quantity: 1, Unit: "tsp", Optional: true},
		},
		Instructions: []models.Instruction{
			{StepNumber: 1, Description: "Boil macaroni until just tender", DurationMinutes: 8},
			{StepNumber: 2, Description: "Make a roux with butter and flour, whisk in milk", DurationMinutes: 8},
			{StepNumber: 3, Description: "Melt in cheddar and mustard, fold in macaroni", DurationMinutes: 4},
			{StepNumber: 4, Description: "Top with breadcrumbs and bake at 200°C", DurationMinutes: 20},
		},
		PrepTime:   15,
		CookTime:   40,
		Servings:   6,
		Difficulty: models.DifficultyMedium,
		Cuisine:    "American",
		Categories: []string{"Pasta", "Main Course"},
		Tags:       []string{"american", "pasta", "baked", "vegetarian", "comfort-food"},
		IsApproved: true,
	},
}
