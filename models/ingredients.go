package models

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryProtein   Category = "PROTEIN"
	CategoryVegetable Category = "VEGETABLE"
	CategoryFruit     Category = "FRUIT"
	CategoryDairy     Category = "DAIRY"
	CategoryGrain     Category = "GRAIN"
	CategorySpice     Category = "SPICE"
	CategoryCondiment Category = "CONDIMENT"
	CategoryOil       Category = "OIL"
	CategorySweetener Category = "SWEETENER"
	CategoryBeverage  Category = "BEVERAGE"
	CategoryOther     Category = "OTHER"
)

var categories = []Category{
	CategoryProtein, CategoryVegetable, CategoryFruit, CategoryDairy, CategoryGrain, CategorySpice,
	CategoryCondiment, CategoryOil, CategorySweetener, CategoryBeverage, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown ingredient category %q", s)
	}
	return c, nil
}

// ShelfLife is measured in days. Zero means the storage method does not apply.
type ShelfLife struct {
	Pantry       int `json:"pantry" firestore:"pantry" validate:"gte=0"`
	Refrigerated int `json:"refrigerated" firestore:"refrigerated" validate:"gte=0"`
	Frozen       int `json:"frozen" firestore:"frozen" validate:"gte=0"`
}

type Ingredient struct {
	Name          string    `json:"name" firestore:"name" validate:"required"`
	Aliases       []string  `json:"aliases" firestore:"aliases" validate:"unique"`
	Category      Category  `json:"category" firestore:"category" validate:"oneof=PROTEIN VEGETABLE FRUIT DAIRY GRAIN SPICE CONDIMENT OIL SWEETENER BEVERAGE OTHER"`
	CommonUnits   []string  `json:"commonUnits" firestore:"commonUnits"`
	ShelfLife     ShelfLife `json:"shelfLife" firestore:"shelfLife"`
	FlavorProfile []string  `json:"flavorProfile" firestore:"flavorProfile"`
}

// Matches reports whether name is the ingredient's name or one of its aliases.
func (i Ingredient) Matches(name string) bool {
	name = strings.TrimSpace(name)
	if strings.EqualFold(i.Name, name) {
		return true
	}
	for _, a := range i.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

func (i Ingredient) Validate() error {
	errs := tagErrors(i)
	if i.Name != strings.ToLower(i.Name) {
		errs = append(errs, fmt.Errorf("name %q must be lower-case", i.Name))
	}
	for _, a := range i.Aliases {
		if strings.EqualFold(a, i.Name) {
			errs = append(errs, fmt.Errorf("alias %q repeats the name", a))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("ingredient %q: %w", i.Name, err)
	}
	return nil
}
