package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty accepts any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

type RecipeIngredient struct {
	Name     string  `json:"name" firestore:"name" validate:"required"`
	Quantity float64 `json:"quantity" firestore:"quantity" validate:"gt=0"`
	Unit     string  `json:"unit" firestore:"unit" validate:"required"`
	Optional bool    `json:"optional" firestore:"optional"`
	Notes    string  `json:"notes,omitempty" firestore:"notes,omitempty"`
}

type Instruction struct {
	StepNumber      int    `json:"stepNumber" firestore:"stepNumber"`
	Description     string `json:"description" firestore:"description" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" firestore:"durationMinutes" validate:"gte=0"`
}

type Author struct {
	UserID string `json:"userId" firestore:"userId"`
	Name   string `json:"name" firestore:"name"`
}

type Ratings struct {
	Average float64 `json:"average" firestore:"average"`
	Count   int     `json:"count" firestore:"count"`
}

// Recipe is both the seed file record and the Firestore document. The
// pointer fields are only set once a recipe is in the database, so the
// generated seed file never carries them.
type Recipe struct {
	Title        string             `json:"title" firestore:"title" validate:"required"`
	Slug         string             `json:"slug" firestore:"slug" validate:"required"`
	Description  string             `json:"description" firestore:"description"`
	Ingredients  []RecipeIngredient `json:"ingredients" firestore:"ingredients" validate:"required,min=1,dive"`
	Instructions []Instruction      `json:"instructions" firestore:"instructions" validate:"required,min=1,dive"`
	PrepTime     int                `json:"prepTime" firestore:"prepTime" validate:"gte=0"`
	CookTime     int                `json:"cookTime" firestore:"cookTime" validate:"gte=0"`
	Servings     int                `json:"servings" firestore:"servings" validate:"gt=0"`
	Difficulty   Difficulty         `json:"difficulty" firestore:"difficulty" validate:"oneof=EASY MEDIUM HARD"`
	Cuisine      string             `json:"cuisine" firestore:"cuisine" validate:"required"`
	Categories   []string           `json:"categories" firestore:"categories" validate:"unique"`
	Tags         []string           `json:"tags" firestore:"tags" validate:"unique"`
	IsApproved   bool               `json:"isApproved" firestore:"isApproved"`

	ImageURL   string     `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Author     *Author    `json:"author,omitempty" firestore:"author,omitempty"`
	Ratings    *Ratings   `json:"ratings,omitempty" firestore:"ratings,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" firestore:"approvedAt,omitempty"`
}

// Submitted returns r as a newly submitted recipe: unapproved, unrated,
// credited to author and stamped with now. Whatever the client sent for
// those fields is discarded.
func (r Recipe) Submitted(author *Author, now time.Time) Recipe {
	created, updated := now, now
	r.IsApproved = false
	r.ApprovedAt = nil
	r.Ratings = &Ratings{}
	r.Author = author
	r.CreatedAt = &created
	r.UpdatedAt = &updated
	return r
}

// Approve marks r approved at now.
func (r *Recipe) Approve(now time.Time) {
	approved, updated := now, now
	r.IsApproved = true
	r.ApprovedAt = &approved
	r.UpdatedAt = &updated
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasTag reports whether tag is one of the recipe's tags, ignoring case.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Validate reports every shape violation at once. Field rules come from
// the validate tags; the rules spanning fields are checked here.
func (r Recipe) Validate() error {
	errs := tagErrors(r)
	if r.Slug != "" {
		if want := Slugify(r.Title); r.Slug != want {
			errs = append(errs, fmt.Errorf("slug %q does not match title (want %q)", r.Slug, want))
		}
	}
	for i, step := range r.Instructions {
		if step.StepNumber != i+1 {
			errs = append(errs, fmt.Errorf("instruction %d: stepNumber is %d, want %d", i, step.StepNumber, i+1))
		}
	}
	for _, t := range r.Tags {
		if t != strings.ToLower(t) {
			errs = append(errs, fmt.Errorf("tag %q must be lower-case", t))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("recipe %q: %w", r.Slug, err)
	}
	return nil
}
