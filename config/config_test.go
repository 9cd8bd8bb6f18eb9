package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeseed/output"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, output.DefaultRecipesPath, cfg.Output.RecipesPath)
	assert.Equal(t, 2, cfg.Output.Preview)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Error(t, cfg.RequireFirestore())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipeseed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  recipes_path: out/recipes.json
firestore:
  project_id: recipes-433314
  credentials_file: key.json
s3:
  bucket: seed-bucket
  prefix: seed-data
server:
  port: 9090
  allowed_origins: ["https://example.com"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "out/recipes.json", cfg.Output.RecipesPath)
	assert.Equal(t, output.DefaultIngredientsPath, cfg.Output.IngredientsPath, "unset keys keep defaults")
	assert.Equal(t, "recipes-433314", cfg.Firestore.ProjectID)
	assert.Equal(t, "key.json", cfg.Firestore.CredentialsFile)
	assert.Equal(t, "seed-bucket", cfg.S3.Bucket)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.AllowedOrigins)
	assert.NoError(t, cfg.RequireFirestore())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.IngredientsPath = cfg.Output.RecipesPath
	cfg.Output.Preview = -1
	cfg.Server.Port = 70000
	cfg.S3.Prefix = "seed"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
	assert.Contains(t, err.Error(), "output.preview must not be negative")
	assert.Contains(t, err.Error(), "server.port 70000 is out of range")
	assert.Contains(t, err.Error(), "s3.bucket is required")
}
