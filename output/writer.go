// Package output writes seed files and publishes them to object storage.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"recipeseed/models"
)

// Default seed file locations, relative to the repository that consumes them.
const (
	DefaultRecipesPath     = "services/shared/src/main/resources/seed-data/recipes.json"
	DefaultIngredientsPath = "services/shared/src/main/resources/seed-data/ingredients.json"
)

// Encode renders v as two-space indented JSON. HTML characters and
// non-ASCII text are written as-is.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes v and replaces the file at path. Missing parent
// directories are created. The data goes to a temporary file in the same
// directory first, so readers never observe a partially written file.
func WriteJSON(path string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move seed file into place: %w", err)
	}
	return nil
}

// Preview prints the first n recipes as indented JSON.
func Preview(w io.Writer, recipes []models.Recipe, n int) error {
	if n <= 0 {
		return nil
	}
	if n > len(recipes) {
		n = len(recipes)
	}
	data, err := Encode(recipes[:n])
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
