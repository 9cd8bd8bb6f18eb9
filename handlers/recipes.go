package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"recipeseed/models"
	"recipeseed/store"
)

func GetRecipes(s store.Store, w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := store.Query{
		Cuisine: params.Get("cuisine"),
		Tag:     params.Get("tag"),
	}
	if d := params.Get("difficulty"); d != "" {
		difficulty, err := models.ParseDifficulty(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q.Difficulty = difficulty
	}
	if a := params.Get("approved"); a != "" {
		approved, err := strconv.ParseBool(a)
		if err != nil {
			http.Error(w, "Invalid 'approved' query parameter", http.StatusBadRequest)
			return
		}
		q.Approved = &approved
	}

	recipes, err := s.ListRecipes(r.Context(), q)
	if errors.Is(err, store.ErrInvalidQuery) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to list recipes", http.StatusInternalServerError)
		log.Printf("Failed to list recipes: %v", err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func GetRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Missing 'slug' query parameter", http.StatusBadRequest)
		return
	}

	recipe, err := s.GetRecipe(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve recipe", http.StatusInternalServerError)
		log.Printf("Failed to retrieve recipe %s: %v", slug, err)
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func CreateRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode request body: %v", err)
		return
	}

	// Derive the slug when the client leaves it out.
	if recipe.Slug == "" {
		recipe.Slug = models.Slugify(recipe.Title)
	}
	recipe = recipe.Submitted(requestAuthor(r), time.Now().UTC())
	if err := recipe.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := s.CreateRecipe(r.Context(), recipe)
	if errors.Is(err, store.ErrAlreadyExists) {
		http.Error(w, "A recipe with this slug already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to create recipe", http.StatusInternalServerError)
		log.Printf("Failed to create recipe %s: %v", recipe.Slug, err)
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

// UpdateRecipe merges the JSON body into the recipe named by ?slug= and
// stores it only if the result still validates.
func UpdateRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Missing 'slug' query parameter", http.StatusBadRequest)
		return
	}

	var patch models.RecipePatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode update for %s: %v", slug, err)
		return
	}

	updated, err := s.UpdateRecipe(r.Context(), slug, func(recipe *models.Recipe) error {
		patch.Apply(recipe, time.Now().UTC())
		if err := recipe.Validate(); err != nil {
			return invalidRecipe{err}
		}
		return nil
	})
	var invalid invalidRecipe
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	case errors.As(err, &invalid):
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "Failed to update recipe", http.StatusInternalServerError)
		log.Printf("Failed to update recipe %s: %v", slug, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func DeleteRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Missing 'slug' query parameter", http.StatusBadRequest)
		return
	}

	err := s.DeleteRecipe(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
		log.Printf("Failed to delete recipe %s: %v", slug, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// invalidRecipe carries a validation failure out of a store update.
type invalidRecipe struct{ err error }

func (e invalidRecipe) Error() string { return e.err.Error() }
func (e invalidRecipe) Unwrap() error { return e.err }

// requestAuthor credits a submission to the caller named by the X-User-Id
// and X-User-Name headers, if any.
func requestAuthor(r *http.Request) *models.Author {
	id := r.Header.Get("X-User-Id")
	if id == "" {
		return nil
	}
	return &models.Author{UserID: id, Name: r.Header.Get("X-User-Name")}
}
