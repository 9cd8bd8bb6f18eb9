package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeseed/catalogue"
	"recipeseed/models"
)

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set,
// e.g. `gcloud emulators firestore start --host-port=localhost:8086`.
func TestFirestoreAgainstEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()

	fs, err := NewFirestore(ctx, "recipeseed-test", "")
	require.NoError(t, err)
	defer fs.Close()

	recipes := catalogue.Recipes()
	t.Cleanup(func() {
		for _, r := range recipes {
			_ = fs.DeleteRecipe(ctx, r.Slug)
		}
	})

	require.NoError(t, fs.SaveRecipes(ctx, recipes))
	require.NoError(t, fs.SaveIngredients(ctx, catalogue.Ingredients()))

	n, err := fs.CountRecipes(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, len(recipes))

	got, err := fs.GetRecipe(ctx, "classic-spaghetti-carbonara")
	require.NoError(t, err)
	assert.Equal(t, recipes[0], got)

	assert.ErrorIs(t, fs.CreateRecipe(ctx, recipes[0]), ErrAlreadyExists)

	italian, err := fs.ListRecipes(ctx, Query{Cuisine: "Italian", Tag: "vegan"})
	require.NoError(t, err)
	assert.Len(t, italian, 2)

	comfort, err := fs.ListRecipes(ctx, Query{Tag: "comfort-*"})
	require.NoError(t, err)
	assert.Len(t, comfort, 5)

	updated, err := fs.UpdateRecipe(ctx, "tiramisu", func(r *models.Recipe) error {
		r.Servings = 12
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Servings)
	_, err = fs.UpdateRecipe(ctx, "missing", func(*models.Recipe) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)

	spinach, err := fs.GetIngredient(ctx, "greens")
	require.NoError(t, err)
	assert.Equal(t, "spinach", spinach.Name)

	_, err = fs.GetRecipe(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
