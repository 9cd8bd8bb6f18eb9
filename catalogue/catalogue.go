// Package catalogue holds the literal seed data: the recipe table and the
// ingredient catalogue the recipes draw from.
package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"recipeseed/models"
)

// Recipes returns a copy of every catalogue recipe in declaration order.
// Callers may modify the result freely.
func Recipes() []models.Recipe {
	var out []models.Recipe
	for _, group := range [][]models.Recipe{italian, mexican, asian, american, mediterranean} {
		for _, r := range group {
			out = append(out, cloneRecipe(r))
		}
	}
	return out
}

// Ingredients returns a copy of the ingredient catalogue.
func Ingredients() []models.Ingredient {
	out := make([]models.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Aliases = cloneStrings(ing.Aliases)
		ing.CommonUnits = cloneStrings(ing.CommonUnits)
		ing.FlavorProfile = cloneStrings(ing.FlavorProfile)
		out[i] = ing
	}
	return out
}

// Cuisines lists the distinct cuisines of recipes in first-seen order.
func Cuisines(recipes []models.Recipe) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range recipes {
		if _, ok := seen[r.Cuisine]; ok {
			continue
		}
		seen[r.Cuisine] = struct{}{}
		out = append(out, r.Cuisine)
	}
	return out
}

// Filter narrows a recipe list. Empty fields match everything. Tag is a glob
// pattern such as "comfort-*" matched against each tag. MaxTotalTime, when
// positive, caps prep plus cook time in minutes.
type Filter struct {
	Cuisine      string
	Difficulty   string
	Tag          string
	MaxTotalTime int
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Apply returns the recipes matching f, preserving order.
func (f Filter) Apply(recipes []models.Recipe) ([]models.Recipe, error) {
	var (
		difficulty models.Difficulty
		tag        glob.Glob
		err        error
	)
	if f.Difficulty != "" {
		if difficulty, err = models.ParseDifficulty(f.Difficulty); err != nil {
			return nil, err
		}
	}
	if f.MaxTotalTime < 0 {
		return nil, fmt.Errorf("max total time must not be negative, got %d", f.MaxTotalTime)
	}
	if f.Tag != "" {
		if tag, err = glob.Compile(strings.ToLower(f.Tag)); err != nil {
			return nil, fmt.Errorf("invalid tag pattern %q: %w", f.Tag, err)
		}
	}

	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Cuisine != "" && !strings.EqualFold(r.Cuisine, f.Cuisine) {
			continue
		}
		if difficulty != "" && r.Difficulty != difficulty {
			continue
		}
		if tag != nil && !anyMatch(tag, r.Tags) {
			continue
		}
		if f.MaxTotalTime > 0 && r.TotalTime() > f.MaxTotalTime {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func anyMatch(g glob.Glob, values []string) bool {
	for _, v := range values {
		if g.Match(v) {
			return true
		}
	}
	return false
}

// Lookup resolves a recipe ingredient name to its catalogue entry by name or
// alias.
func Lookup(ingredients []models.Ingredient, name string) (models.Ingredient, bool) {
	for _, ing := range ingredients {
		if ing.Matches(name) {
			return ing, true
		}
	}
	return models.Ingredient{}, false
}

// Check validates a data set as a whole: every record is well formed, slugs
// and ingredient names are unique, aliases do not collide with another
// ingredient, and every recipe ingredient resolves to a catalogue entry.
func Check(recipes []models.Recipe, ingredients []models.Ingredient) error {
	var errs []error

	names := make(map[string]string)
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			errs = append(errs, err)
		}
		for _, key := range append([]string{ing.Name}, ing.Aliases...) {
			key = strings.ToLower(key)
			if owner, ok := names[key]; ok && owner != ing.Name {
				errs = append(errs, fmt.Errorf("ingredient name %q is used by both %q and %q", key, owner, ing.Name))
				continue
			} else if ok {
				errs = append(errs, fmt.Errorf("duplicate ingredient %q", ing.Name))
				continue
			}
			names[key] = ing.Name
		}
	}

	slugs := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, ok := slugs[r.Slug]; ok {
			errs = append(errs, fmt.Errorf("duplicate slug %q", r.Slug))
		}
		slugs[r.Slug] = struct{}{}
		for _, ri := range r.Ingredients {
			if _, ok := names[strings.ToLower(strings.TrimSpace(ri.Name))]; !ok {
				errs = append(errs, fmt.Errorf("recipe %q: ingredient %q is not in the catalogue", r.Slug, ri.Name))
			}
		}
	}
	return errors.Join(errs...)
}

func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = append([]models.RecipeIngredient(nil), r.Ingredients...)
	r.Instructions = append([]models.Instruction(nil), r.Instructions...)
	r.Categories = cloneStrings(r.Categories)
	r.Tags = cloneStrings(r.Tags)
	return r
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
