package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"recipeseed/models"
	"recipeseed/store"
)

// Roles allowed to moderate, taken from the X-User-Role header.
const (
	RoleModerator = "MODERATOR"
	RoleAdmin     = "ADMIN"
)

func requireModerator(w http.ResponseWriter, r *http.Request) bool {
	switch r.Header.Get("X-User-Role") {
	case RoleModerator, RoleAdmin:
		return true
	}
	http.Error(w, "Moderator role required", http.StatusForbidden)
	return false
}

// GetPendingRecipes lists the recipes awaiting approval.
func GetPendingRecipes(s store.Store, w http.ResponseWriter, r *http.Request) {
	if !requireModerator(w, r) {
		return
	}

	pending := false
	recipes, err := s.ListRecipes(r.Context(), store.Query{Approved: &pending})
	if err != nil {
		http.Error(w, "Failed to list pending recipes", http.StatusInternalServerError)
		log.Printf("Failed to list pending recipes: %v", err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func ApproveRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	if !requireModerator(w, r) {
		return
	}
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Missing 'slug' query parameter", http.StatusBadRequest)
		return
	}

	approved, err := s.UpdateRecipe(r.Context(), slug, func(recipe *models.Recipe) error {
		recipe.Approve(time.Now().UTC())
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to approve recipe", http.StatusInternalServerError)
		log.Printf("Failed to approve recipe %s: %v", slug, err)
		return
	}
	log.Printf("Recipe approved: %s", slug)
	writeJSON(w, http.StatusOK, approved)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectRecipe removes a submission. The body may carry a reason, which is
// logged.
func RejectRecipe(s store.Store, w http.ResponseWriter, r *http.Request) {
	if !requireModerator(w, r) {
		return
	}
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		http.Error(w, "Missing 'slug' query parameter", http.StatusBadRequest)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	err := s.DeleteRecipe(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to reject recipe", http.StatusInternalServerError)
		log.Printf("Failed to reject recipe %s: %v", slug, err)
		return
	}
	log.Printf("Recipe rejected: %s (reason: %q)", slug, req.Reason)
	w.WriteHeader(http.StatusNoContent)
}
