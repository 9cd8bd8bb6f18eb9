package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"recipeseed/models"
)

// Memory keeps documents in insertion order. It backs tests and serving the
// built-in catalogue without a database.
type Memory struct {
	mu          sync.RWMutex
	recipes     map[string]models.Recipe
	recipeOrder []string
	ingredients map[string]models.Ingredient
	ingOrder    []string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		recipes:     make(map[string]models.Recipe),
		ingredients: make(map[string]models.Ingredient),
	}
}

func (m *Memory) CountRecipes(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recipes), nil
}

func (m *Memory) CountIngredients(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ingredients), nil
}

func (m *Memory) SaveRecipes(_ context.Context, recipes []models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range recipes {
		m.putRecipe(r)
	}
	return nil
}

func (m *Memory) CreateRecipe(_ context.Context, r models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[r.Slug]; ok {
		return fmt.Errorf("recipe %q: %w", r.Slug, ErrAlreadyExists)
	}
	m.putRecipe(r)
	return nil
}

func (m *Memory) putRecipe(r models.Recipe) {
	if _, ok := m.recipes[r.Slug]; !ok {
		m.recipeOrder = append(m.recipeOrder, r.Slug)
	}
	m.recipes[r.Slug] = r
}

func (m *Memory) ListRecipes(_ context.Context, q Query) ([]models.Recipe, error) {
	tag, err := q.tagMatcher()
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Recipe, 0, len(m.recipes))
	for _, slug := range m.recipeOrder {
		r := m.recipes[slug]
		if q.Cuisine != "" && !strings.EqualFold(r.Cuisine, q.Cuisine) {
			continue
		}
		if q.Difficulty != "" && r.Difficulty != q.Difficulty {
			continue
		}
		if q.Approved != nil && r.IsApproved != *q.Approved {
			continue
		}
		if q.Tag != "" && !q.tagPattern() && !r.HasTag(q.Tag) {
			continue
		}
		if q.tagPattern() && !matchesTag(tag, r.Tags) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *Memory) GetRecipe(_ context.Context, slug string) (models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[slug]
	if !ok {
		return models.Recipe{}, fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

func (m *Memory) DeleteRecipe(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[slug]; !ok {
		return fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	delete(m.recipes, slug)
	for i, s := range m.recipeOrder {
		if s == slug {
			m.recipeOrder = append(m.recipeOrder[:i], m.recipeOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) UpdateRecipe(_ context.Context, slug string, fn func(r *models.Recipe) error) (models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[slug]
	if !ok {
		return models.Recipe{}, fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	if err := fn(&r); err != nil {
		return models.Recipe{}, err
	}
	r.Slug = slug
	m.recipes[slug] = r
	return r, nil
}

func (m *Memory) SaveIngredients(_ context.Context, ingredients []models.Ingredient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ing := range ingredients {
		id := IngredientID(ing.Name)
		if _, ok := m.ingredients[id]; !ok {
			m.ingOrder = append(m.ingOrder, id)
		}
		m.ingredients[id] = ing
	}
	return nil
}

func (m *Memory) ListIngredients(context.Context) ([]models.Ingredient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Ingredient, 0, len(m.ingredients))
	for _, id := range m.ingOrder {
		out = append(out, m.ingredients[id])
	}
	return out, nil
}

func (m *Memory) GetIngredient(_ context.Context, name string) (models.Ingredient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ing, ok := m.ingredients[IngredientID(name)]; ok {
		return ing, nil
	}
	for _, id := range m.ingOrder {
		if ing := m.ingredients[id]; ing.Matches(name) {
			return ing, nil
		}
	}
	return models.Ingredient{}, fmt.Errorf("ingredient %q: %w", name, ErrNotFound)
}
