package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"recipeseed/store"
)

// NewRouter registers every endpoint against s. client fetches recipe images.
func NewRouter(s store.Store, client *http.Client) *mux.Router {
	if client == nil {
		client = http.DefaultClient
	}
	r := mux.NewRouter()

	r.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		GetRecipes(s, w, r)
	}).Methods("GET")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		GetRecipe(s, w, r)
	}).Methods("GET")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		CreateRecipe(s, w, r)
	}).Methods("POST")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		UpdateRecipe(s, w, r)
	}).Methods("PUT")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		DeleteRecipe(s, w, r)
	}).Methods("DELETE")

	r.HandleFunc("/recipes/pending", func(w http.ResponseWriter, r *http.Request) {
		GetPendingRecipes(s, w, r)
	}).Methods("GET")

	r.HandleFunc("/recipe/approve", func(w http.ResponseWriter, r *http.Request) {
		ApproveRecipe(s, w, r)
	}).Methods("POST")

	r.HandleFunc("/recipe/reject", func(w http.ResponseWriter, r *http.Request) {
		RejectRecipe(s, w, r)
	}).Methods("POST")

	r.HandleFunc("/recipe/image", func(w http.ResponseWriter, r *http.Request) {
		FetchRecipeImage(s, client, w, r)
	}).Methods("GET")

	r.HandleFunc("/ingredients", func(w http.ResponseWriter, r *http.Request) {
		GetIngredients(s, w, r)
	}).Methods("GET")

	r.HandleFunc("/ingredient", func(w http.ResponseWriter, r *http.Request) {
		GetIngredient(s, w, r)
	}).Methods("GET")

	return r
}
