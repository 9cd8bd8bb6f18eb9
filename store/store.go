// Package store persists seeded recipes and ingredients.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"recipeseed/models"
)

const (
	RecipesCollection     = "recipes"
	IngredientsCollection = "ingredients"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
	ErrInvalidQuery  = errors.New("invalid query")
)

// Query narrows ListRecipes. Empty fields match everything. Tag is matched
// as a glob pattern, so "comfort-*" selects every comfort tag.
type Query struct {
	Cuisine    string
	Difficulty models.Difficulty
	Tag        string
	// Approved selects approved or pending recipes when set.
	Approved *bool
}

// tagPattern reports whether Tag needs glob matching rather than an exact
// comparison.
func (q Query) tagPattern() bool {
	return strings.ContainsAny(q.Tag, `*?[{\`)
}

func (q Query) tagMatcher() (glob.Glob, error) {
	if q.Tag == "" {
		return nil, nil
	}
	g, err := glob.Compile(strings.ToLower(q.Tag))
	if err != nil {
		return nil, fmt.Errorf("%w: tag pattern %q: %v", ErrInvalidQuery, q.Tag, err)
	}
	return g, nil
}

func matchesTag(g glob.Glob, tags []string) bool {
	for _, t := range tags {
		if g.Match(strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// Store is implemented by Firestore and Memory. Recipes are keyed by slug,
// ingredients by name.
type Store interface {
	CountRecipes(ctx context.Context) (int, error)
	CountIngredients(ctx context.Context) (int, error)

	// SaveRecipes upserts every recipe.
	SaveRecipes(ctx context.Context, recipes []models.Recipe) error
	// CreateRecipe fails with ErrAlreadyExists when the slug is taken.
	CreateRecipe(ctx context.Context, recipe models.Recipe) error
	ListRecipes(ctx context.Context, q Query) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, slug string) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, slug string) error
	// UpdateRecipe loads the recipe, applies fn and stores the result
	// atomically. An error from fn aborts the update and is returned as is.
	UpdateRecipe(ctx context.Context, slug string, fn func(r *models.Recipe) error) (models.Recipe, error)

	SaveIngredients(ctx context.Context, ingredients []models.Ingredient) error
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	// GetIngredient resolves name against ingredient names and aliases.
	GetIngredient(ctx context.Context, name string) (models.Ingredient, error)
}

// IngredientID is the document ID an ingredient is stored under.
func IngredientID(name string) string {
	return models.Slugify(name)
}
