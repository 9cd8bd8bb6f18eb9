// Package seed loads the generated seed files into a Store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"recipeseed/catalogue"
	"recipeseed/models"
	"recipeseed/store"
)

const (
	SystemAuthor   = "System"
	DefaultRating  = 4.5
	DefaultRatings = 10
)

// Result reports what a Run wrote. A collection that already held documents
// is skipped and reports zero.
type Result struct {
	Ingredients int
	Recipes     int
}

type Seeder struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

func New(s store.Store, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Seeder{
		store:  s,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Run validates the data set, then seeds ingredients followed by recipes.
// Nothing is written when validation fails.
func (s *Seeder) Run(ctx context.Context, recipes []models.Recipe, ingredients []models.Ingredient) (Result, error) {
	var res Result
	if err := catalogue.Check(recipes, ingredients); err != nil {
		return res, fmt.Errorf("seed data is invalid: %w", err)
	}

	s.logger.Println("Starting data seeding process...")

	n, err := s.seedIngredients(ctx, ingredients)
	if err != nil {
		return res, err
	}
	res.Ingredients = n

	n, err = s.seedRecipes(ctx, recipes)
	if err != nil {
		return res, err
	}
	res.Recipes = n

	s.logger.Println("Data seeding completed successfully")
	return res, nil
}

func (s *Seeder) seedIngredients(ctx context.Context, ingredients []models.Ingredient) (int, error) {
	existing, err := s.store.CountIngredients(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}
	if existing > 0 {
		s.logger.Printf("Ingredients already seeded (count: %d), skipping...", existing)
		return 0, nil
	}

	s.logger.Println("Seeding ingredients...")
	if err := s.store.SaveIngredients(ctx, ingredients); err != nil {
		return 0, fmt.Errorf("failed to save ingredients: %w", err)
	}
	s.logger.Printf("Successfully seeded %d ingredients", len(ingredients))
	return len(ingredients), nil
}

func (s *Seeder) seedRecipes(ctx context.Context, recipes []models.Recipe) (int, error) {
	existing, err := s.store.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	if existing > 0 {
		s.logger.Printf("Recipes already seeded (count: %d), skipping...", existing)
		return 0, nil
	}

	s.logger.Println("Seeding recipes...")
	stamped := make([]models.Recipe, len(recipes))
	now := s.now().UTC()
	for i, r := range recipes {
		stamped[i] = s.stamp(r, now)
	}
	if err := s.store.SaveRecipes(ctx, stamped); err != nil {
		return 0, fmt.Errorf("failed to save recipes: %w", err)
	}
	s.logger.Printf("Successfully seeded %d recipes", len(stamped))
	return len(stamped), nil
}

// stamp sets the fields a recipe only gets once it is in the database.
func (s *Seeder) stamp(r models.Recipe, now time.Time) models.Recipe {
	created, updated := now, now
	r.CreatedAt = &created
	r.UpdatedAt = &updated
	r.Ratings = &models.Ratings{Average: DefaultRating, Count: DefaultRatings}
	r.Author = &models.Author{UserID: s.newID(), Name: SystemAuthor}
	return r
}

func LoadRecipes(path string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := loadJSON(path, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func LoadIngredients(path string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := loadJSON(path, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func loadJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
