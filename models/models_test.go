package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecipe() Recipe {
	return Recipe{
		Title:       "Crème Brûlée",
		Slug:        "creme-brulee",
		Description: "Baked custard under burnt sugar",
		Ingredients: []RecipeIngredient{
			{Name: "cream", Quantity: 500, Unit: "ml"},
			{Name: "sugar", Quantity: 0.5, Unit: "cup", Optional: true},
		},
		Instructions: []Instruction{
			{StepNumber: 1, Description: "Bake the custard", DurationMinutes: 40},
			{StepNumber: 2, Description: "Caramelise the top", DurationMinutes: 0},
		},
		PrepTime:   15,
		CookTime:   40,
		Servings:   6,
		Difficulty: DifficultyHard,
		Cuisine:    "French",
		Categories: []string{"Dessert"},
		Tags:       []string{"french", "dessert"},
		IsApproved: true,
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Classic Spaghetti Carbonara", "classic-spaghetti-carbonara"},
		{"Crème Brûlée", "creme-brulee"},
		{"  Mac & Cheese!! ", "mac-cheese"},
		{"Chicken Stir-Fry", "chicken-stir-fry"},
		{"Jalapeño Poppers 2.0", "jalapeno-poppers-2-0"},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" medium ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, d)

	_, err = ParseDifficulty("extreme")
	assert.Error(t, err)
}

func TestRecipeValidate(t *testing.T) {
	require.NoError(t, validRecipe().Validate())

	tests := []struct {
		name   string
		mutate func(r *Recipe)
		want   string
	}{
		{"missing title", func(r *Recipe) { r.Title = "" }, "title is required"},
		{"slug mismatch", func(r *Recipe) { r.Slug = "creme" }, "does not match title"},
		{"bad difficulty", func(r *Recipe) { r.Difficulty = "easy" }, `difficulty must be one of EASY MEDIUM HARD, got "easy"`},
		{"negative cook time", func(r *Recipe) { r.CookTime = -1 }, "cookTime must not be negative, got -1"},
		{"no servings", func(r *Recipe) { r.Servings = 0 }, "servings must be positive, got 0"},
		{"no ingredients", func(r *Recipe) { r.Ingredients = nil }, "ingredients is required"},
		{"empty ingredients", func(r *Recipe) { r.Ingredients = []RecipeIngredient{} }, "ingredients must contain at least 1"},
		{"zero quantity", func(r *Recipe) { r.Ingredients[0].Quantity = 0 }, "ingredients[0].quantity must be positive"},
		{"missing unit", func(r *Recipe) { r.Ingredients[1].Unit = "" }, "ingredients[1].unit is required"},
		{"missing step text", func(r *Recipe) { r.Instructions[0].Description = "" }, "instructions[0].description is required"},
		{"step gap", func(r *Recipe) { r.Instructions[1].StepNumber = 3 }, "stepNumber is 3, want 2"},
		{"duplicate tag", func(r *Recipe) { r.Tags = []string{"a", "a"} }, "tags must not contain duplicates"},
		{"duplicate category", func(r *Recipe) { r.Categories = []string{"Dessert", "Dessert"} }, "categories must not contain duplicates"},
		{"upper-case tag", func(r *Recipe) { r.Tags = []string{"French"} }, "must be lower-case"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRecipeValidateReportsEveryProblem(t *testing.T) {
	r := validRecipe()
	r.Cuisine = ""
	r.Servings = -2
	r.Instructions = nil

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cuisine is required")
	assert.Contains(t, err.Error(), "servings must be positive")
	assert.Contains(t, err.Error(), "instructions is required")
}

func TestRecipeJSONShape(t *testing.T) {
	data, err := json.Marshal(validRecipe())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{
		"title", "slug", "description", "ingredients", "instructions", "prepTime", "cookTime",
		"servings", "difficulty", "cuisine", "categories", "tags", "isApproved",
	} {
		assert.Contains(t, fields, key)
	}
	for _, key := range []string{"imageUrl", "author", "ratings", "createdAt", "updatedAt", "approvedAt"} {
		assert.NotContains(t, fields, key)
	}
	assert.JSONEq(t, `{"name":"sugar","quantity":0.5,"unit":"cup","optional":true}`,
		string(mustMarshal(t, validRecipe().Ingredients[1])))
}

func TestRecipeJSONIncludesSeedStamps(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := validRecipe()
	r.Author = &Author{UserID: "u-1", Name: "System"}
	r.Ratings = &Ratings{Average: 4.5, Count: 10}
	r.CreatedAt = &now
	r.UpdatedAt = &now

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustMarshal(t, r), &fields))
	assert.JSONEq(t, `{"userId":"u-1","name":"System"}`, string(fields["author"]))
	assert.JSONEq(t, `{"average":4.5,"count":10}`, string(fields["ratings"]))
	assert.JSONEq(t, `"2024-05-01T12:00:00Z"`, string(fields["createdAt"]))
}

func TestIngredientValidate(t *testing.T) {
	ing := Ingredient{Name: "spinach", Aliases: []string{"greens"}, Category: CategoryVegetable}
	require.NoError(t, ing.Validate())
	assert.True(t, ing.Matches("Greens"))
	assert.True(t, ing.Matches(" spinach "))
	assert.False(t, ing.Matches("kale"))

	bad := Ingredient{Name: "Spinach", Aliases: []string{"spinach"}, Category: "LEAFY", ShelfLife: ShelfLife{Pantry: -1}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be lower-case")
	assert.Contains(t, err.Error(), "category must be one of")
	assert.Contains(t, err.Error(), "repeats the name")
	assert.Contains(t, err.Error(), "shelfLife.pantry must not be negative")
}

func TestEveryCategoryPassesValidation(t *testing.T) {
	for _, c := range categories {
		ing := Ingredient{Name: "x", Category: c}
		assert.NoError(t, ing.Validate(), c)
	}
}

func TestSubmittedResetsServerFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := validRecipe()
	r.Ratings = &Ratings{Average: 5, Count: 99999}
	r.ApprovedAt = &now

	got := r.Submitted(&Author{UserID: "u-1", Name: "Ada"}, now)
	assert.False(t, got.IsApproved)
	assert.Nil(t, got.ApprovedAt)
	assert.Equal(t, &Ratings{}, got.Ratings)
	assert.Equal(t, "Ada", got.Author.Name)
	require.NotNil(t, got.CreatedAt)
	assert.Equal(t, now, *got.CreatedAt)
	assert.Equal(t, now, *got.UpdatedAt)
	assert.True(t, r.IsApproved, "receiver is left alone")

	got.Approve(now.Add(time.Hour))
	assert.True(t, got.IsApproved)
	assert.Equal(t, now.Add(time.Hour), *got.ApprovedAt)
	assert.Equal(t, now.Add(time.Hour), *got.UpdatedAt)
	assert.Equal(t, now, *got.CreatedAt)
}

func TestRecipeTotalTime(t *testing.T) {
	assert.Equal(t, 55, validRecipe().TotalTime())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("dairy")
	require.NoError(t, err)
	assert.Equal(t, CategoryDairy, c)

	_, err = ParseCategory("mineral")
	assert.Error(t, err)
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestRecipePatchApply(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	r := validRecipe()
	servings, cuisine := 8, "Spanish"
	patch := RecipePatch{
		Servings: &servings,
		Cuisine:  &cuisine,
		Tags:     []string{"spanish"},
	}
	patch.Apply(&r, now)

	assert.Equal(t, 8, r.Servings)
	assert.Equal(t, "Spanish", r.Cuisine)
	assert.Equal(t, []string{"spanish"}, r.Tags)
	assert.Equal(t, "Crème Brûlée", r.Title)
	assert.Len(t, r.Ingredients, 2)
	require.NotNil(t, r.UpdatedAt)
	assert.Equal(t, now, *r.UpdatedAt)
	require.NoError(t, r.Validate())

	var decoded RecipePatch
	require.NoError(t, json.Unmarshal([]byte(`{"servings": 0}`), &decoded))
	decoded.Apply(&r, now)
	assert.Contains(t, r.Validate().Error(), "servings must be positive")
}
