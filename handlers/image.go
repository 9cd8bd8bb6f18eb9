package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nfnt/resize"

	"recipeseed/store"
)

const (
	thumbnailHeight = 500
	maxImageBytes   = 10 << 20
)

// FetchRecipeImage fetches the image of the recipe named by ?slug=, resizes
// it to a fixed height, and returns it.
func FetchRecipeImage(s store.Store, client *http.Client, w http.ResponseWriter, r *http.Request) {
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
	if recipe.ImageURL == "" {
		http.Error(w, "Recipe has no image", http.StatusNotFound)
		return
	}

	data, err := fetchImage(r, client, recipe.ImageURL)
	if err != nil {
		http.Error(w, "Failed to fetch image", http.StatusBadGateway)
		log.Printf("Failed to fetch image for %s: %v", slug, err)
		return
	}

	mtype := mimetype.Detect(data)
	if !mtype.Is("image/jpeg") && !mtype.Is("image/png") {
		http.Error(w, "Unsupported image format", http.StatusUnsupportedMediaType)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		http.Error(w, "Failed to decode image", http.StatusInternalServerError)
		return
	}

	// Keep the aspect ratio.
	bounds := img.Bounds()
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	newWidth := uint(float64(thumbnailHeight) * aspectRatio)
	resized := resize.Resize(newWidth, thumbnailHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if mtype.Is("image/png") {
		err = png.Encode(&buf, resized)
	} else {
		err = jpeg.Encode(&buf, resized, nil)
	}
	if err != nil {
		http.Error(w, "Failed to encode image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mtype.String())
	w.Write(buf.Bytes())
}

func fetchImage(r *http.Request, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}
