package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeseed/catalogue"
	"recipeseed/models"
)

func TestMemoryRecipes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	n, err := m.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	recipes := catalogue.Recipes()
	require.NoError(t, m.SaveRecipes(ctx, recipes))

	n, err = m.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recipes), n)

	// Saving again upserts rather than duplicating.
	require.NoError(t, m.SaveRecipes(ctx, recipes[:3]))
	n, err = m.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(recipes), n)

	all, err := m.ListRecipes(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, len(recipes))
	assert.Equal(t, recipes[0].Slug, all[0].Slug)

	got, err := m.GetRecipe(ctx, "classic-spaghetti-carbonara")
	require.NoError(t, err)
	assert.Equal(t, "Classic Spaghetti Carbonara", got.Title)

	_, err = m.GetRecipe(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListRecipesQuery(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveRecipes(ctx, catalogue.Recipes()))

	italian, err := m.ListRecipes(ctx, Query{Cuisine: "ITALIAN"})
	require.NoError(t, err)
	assert.Len(t, italian, 10)

	easyVegan, err := m.ListRecipes(ctx, Query{Difficulty: models.DifficultyEasy, Tag: "vegan"})
	require.NoError(t, err)
	require.NotEmpty(t, easyVegan)
	for _, r := range easyVegan {
		assert.Equal(t, models.DifficultyEasy, r.Difficulty)
		assert.True(t, r.HasTag("vegan"))
	}

	none, err := m.ListRecipes(ctx, Query{Cuisine: "Martian"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryListRecipesTagPattern(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveRecipes(ctx, catalogue.Recipes()))

	comfort, err := m.ListRecipes(ctx, Query{Tag: "comfort-*"})
	require.NoError(t, err)
	exact, err := m.ListRecipes(ctx, Query{Tag: "comfort-food"})
	require.NoError(t, err)
	assert.Len(t, comfort, 5)
	assert.Equal(t, exact, comfort)

	_, err = m.ListRecipes(ctx, Query{Tag: "[unterminated"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestMemoryListRecipesApproval(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	recipes := catalogue.Recipes()[:3]
	recipes[1].IsApproved = false
	require.NoError(t, m.SaveRecipes(ctx, recipes))

	pending, approved := false, true
	list, err := m.ListRecipes(ctx, Query{Approved: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recipes[1].Slug, list[0].Slug)

	list, err = m.ListRecipes(ctx, Query{Approved: &approved})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMemoryUpdateRecipe(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveRecipes(ctx, catalogue.Recipes()[:2]))

	updated, err := m.UpdateRecipe(ctx, "classic-spaghetti-carbonara", func(r *models.Recipe) error {
		r.Servings = 6
		r.Slug = "renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Servings)
	assert.Equal(t, "classic-spaghetti-carbonara", updated.Slug)

	stored, err := m.GetRecipe(ctx, "classic-spaghetti-carbonara")
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Servings)

	boom := errors.New("rejected")
	_, err = m.UpdateRecipe(ctx, "classic-spaghetti-carbonara", func(r *models.Recipe) error {
		r.Servings = 100
		return boom
	})
	assert.ErrorIs(t, err, boom)
	stored, err = m.GetRecipe(ctx, "classic-spaghetti-carbonara")
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Servings)

	_, err = m.UpdateRecipe(ctx, "missing", func(*models.Recipe) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCreateAndDeleteRecipe(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := catalogue.Recipes()[0]

	require.NoError(t, m.CreateRecipe(ctx, r))
	assert.ErrorIs(t, m.CreateRecipe(ctx, r), ErrAlreadyExists)

	require.NoError(t, m.DeleteRecipe(ctx, r.Slug))
	assert.ErrorIs(t, m.DeleteRecipe(ctx, r.Slug), ErrNotFound)

	list, err := m.ListRecipes(ctx, Query{})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, m.CreateRecipe(ctx, r))
}

func TestMemoryIngredients(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	ings := catalogue.Ingredients()
	require.NoError(t, m.SaveIngredients(ctx, ings))

	n, err := m.CountIngredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ings), n)

	list, err := m.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, ings, list)

	chicken, err := m.GetIngredient(ctx, "chicken breast")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryProtein, chicken.Category)

	spinach, err := m.GetIngredient(ctx, "greens")
	require.NoError(t, err)
	assert.Equal(t, "spinach", spinach.Name)
	assert.Contains(t, spinach.Aliases, "greens")

	_, err = m.GetIngredient(ctx, "unobtainium")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredientID(t *testing.T) {
	assert.Equal(t, "parmesan-cheese", IngredientID("parmesan cheese"))
	assert.Equal(t, "jalapeno", IngredientID("jalapeño"))
}
