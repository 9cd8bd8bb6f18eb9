package handlers

import (
	"errors"
	"log"
	"net/http"

	"recipeseed/models"
	"recipeseed/store"
)

func GetIngredients(s store.Store, w http.ResponseWriter, r *http.Request) {
	ingredients, err := s.ListIngredients(r.Context())
	if err != nil {
		http.Error(w, "Failed to list ingredients", http.StatusInternalServerError)
		log.Printf("Failed to list ingredients: %v", err)
		return
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

// GetIngredient looks the name up as an ingredient name or alias.
func GetIngredient(s store.Store, w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Missing 'name' query parameter", http.StatusBadRequest)
		return
	}

	ing, err := s.GetIngredient(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No matching ingredient found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve ingredient", http.StatusInternalServerError)
		log.Printf("Failed to retrieve ingredient %s: %v", name, err)
		return
	}
	writeJSON(w, http.StatusOK, ing)
}
