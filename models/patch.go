package models

import "time"

// RecipePatch is a partial update. Nil fields keep their current value. The
// slug and the server-owned fields (approval, ratings, author, stamps) are
// not part of it.
type RecipePatch struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []Instruction      `json:"instructions"`
	PrepTime     *int               `json:"prepTime"`
	CookTime     *int               `json:"cookTime"`
	Servings     *int               `json:"servings"`
	Difficulty   *Difficulty        `json:"difficulty"`
	Cuisine      *string            `json:"cuisine"`
	Categories   []string           `json:"categories"`
	Tags         []string           `json:"tags"`
	ImageURL     *string            `json:"imageUrl"`
}

// Apply merges p into r and stamps UpdatedAt.
func (p RecipePatch) Apply(r *Recipe, now time.Time) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Ingredients != nil {
		r.Ingredients = append([]RecipeIngredient(nil), p.Ingredients...)
	}
	if p.Instructions != nil {
		r.Instructions = append([]Instruction(nil), p.Instructions...)
	}
	if p.PrepTime != nil {
		r.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		r.CookTime = *p.CookTime
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.Cuisine != nil {
		r.Cuisine = *p.Cuisine
	}
	if p.Categories != nil {
		r.Categories = append([]string(nil), p.Categories...)
	}
	if p.Tags != nil {
		r.Tags = append([]string(nil), p.Tags...)
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	updated := now
	r.UpdatedAt = &updated
}
