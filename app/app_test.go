package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeseed/catalogue"
	"recipeseed/config"
	"recipeseed/models"
	"recipeseed/output"
	"recipeseed/store"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, logs bytes.Buffer
	err := Run(context.Background(), args, &stdout, log.New(&logs, "", 0))
	return stdout.String(), logs.String(), err
}

func readRecipes(t *testing.T, path string) []models.Recipe {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal(data, &recipes))
	return recipes
}

func TestGenerateWritesSeedFiles(t *testing.T) {
	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "seed-data", "recipes.json")
	ingredientsPath := filepath.Join(dir, "seed-data", "ingredients.json")

	stdout, logs, err := run(t, "generate", "-out", recipesPath, "-ingredients-out", ingredientsPath)
	require.NoError(t, err)

	recipes := readRecipes(t, recipesPath)
	assert.Len(t, recipes, len(catalogue.Recipes()))

	data, err := os.ReadFile(ingredientsPath)
	require.NoError(t, err)
	var ingredients []models.Ingredient
	require.NoError(t, json.Unmarshal(data, &ingredients))
	assert.Len(t, ingredients, len(catalogue.Ingredients()))

	assert.Contains(t, logs, "Generated 10 Italian recipes")
	assert.Contains(t, logs, "Generated 4 Mediterranean recipes")
	assert.Contains(t, logs, "Wrote 23 recipes to "+recipesPath)

	var preview []models.Recipe
	require.NoError(t, json.Unmarshal([]byte(stdout), &preview))
	require.Len(t, preview, 2)
	assert.Equal(t, "classic-spaghetti-carbonara", preview[0].Slug)
}

func TestGenerateIsTheDefaultCommand(t *testing.T) {
	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "recipes.json")

	_, _, err := run(t, "-out", recipesPath, "-ingredients-out", filepath.Join(dir, "ingredients.json"), "-preview", "0")
	require.NoError(t, err)
	assert.Len(t, readRecipes(t, recipesPath), len(catalogue.Recipes()))
}

func TestGenerateWithFilter(t *testing.T) {
	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "recipes.json")

	stdout, _, err := run(t, "generate", "-out", recipesPath, "-ingredients-out", filepath.Join(dir, "ingredients.json"),
		"-cuisine", "italian", "-tag", "vegan", "-preview", "0")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	recipes := readRecipes(t, recipesPath)
	require.Len(t, recipes, 2)
	assert.Equal(t, "penne-arrabbiata", recipes[0].Slug)

	_, logs, err := run(t, "generate", "-out", recipesPath, "-ingredients-out", filepath.Join(dir, "ingredients.json"),
		"-max-time", "20", "-preview", "0")
	require.NoError(t, err)
	assert.Contains(t, logs, "Filter kept 7 of 23 recipes")
	for _, r := range readRecipes(t, recipesPath) {
		assert.LessOrEqual(t, r.TotalTime(), 20, r.Slug)
	}

	_, _, err = run(t, "generate", "-out", recipesPath, "-ingredients-out", filepath.Join(dir, "ingredients.json"),
		"-cuisine", "martian")
	assert.ErrorContains(t, err, "no recipes match")
}

func TestGenerateUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "recipeseed.yaml")
	recipesPath := filepath.Join(dir, "from-config", "recipes.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output:
  recipes_path: `+recipesPath+`
  ingredients_path: `+filepath.Join(dir, "from-config", "ingredients.json")+`
  preview: 0
`), 0o644))

	stdout, _, err := run(t, "generate", "-config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Len(t, readRecipes(t, recipesPath), len(catalogue.Recipes()))

	// An explicit flag wins over the file.
	override := filepath.Join(dir, "override.json")
	_, _, err = run(t, "generate", "-config", cfgPath, "-out", override)
	require.NoError(t, err)
	assert.FileExists(t, override)
}

func TestGenerateFailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := run(t, "generate", "-out", filepath.Join(blocker, "recipes.json"), "-ingredients-out", filepath.Join(dir, "i.json"))
	assert.Error(t, err)
}

func TestGenerateLeavesRecipesAloneWhenIngredientsFail(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	recipesPath := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(recipesPath, []byte("[]\n"), 0o644))

	_, _, err := run(t, "generate", "-out", recipesPath, "-ingredients-out", filepath.Join(blocker, "ingredients.json"))
	require.Error(t, err)

	data, err := os.ReadFile(recipesPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) Publish(_ context.Context, name, filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", err
	}
	p.published = append(p.published, name)
	return `"etag"`, nil
}

func (p *recordingPublisher) Key(name string) string { return "seed/" + name }

func TestGeneratePublishesToS3(t *testing.T) {
	pub := &recordingPublisher{}
	var gotCfg config.S3Config
	orig := newPublisher
	newPublisher = func(_ context.Context, cfg config.S3Config) (publisher, error) {
		gotCfg = cfg
		return pub, nil
	}
	t.Cleanup(func() { newPublisher = orig })

	dir := t.TempDir()
	_, logs, err := run(t, "generate", "-out", filepath.Join(dir, "recipes.json"),
		"-ingredients-out", filepath.Join(dir, "ingredients.json"),
		"-s3-bucket", "seed-bucket", "-s3-region", "eu-west-1", "-preview", "0")
	require.NoError(t, err)

	assert.Equal(t, "seed-bucket", gotCfg.Bucket)
	assert.Equal(t, "eu-west-1", gotCfg.Region)
	assert.Equal(t, []string{"ingredients.json", "recipes.json"}, pub.published)
	assert.Contains(t, logs, "Published recipes.json to s3://seed-bucket/seed/recipes.json")
}

func TestGenerateSkipsPublishWithoutBucket(t *testing.T) {
	orig := newPublisher
	newPublisher = func(context.Context, config.S3Config) (publisher, error) {
		return nil, errors.New("must not be called")
	}
	t.Cleanup(func() { newPublisher = orig })

	dir := t.TempDir()
	_, _, err := run(t, "generate", "-out", filepath.Join(dir, "r.json"), "-ingredients-out", filepath.Join(dir, "i.json"), "-preview", "0")
	require.NoError(t, err)
}

func useMemoryStore(t *testing.T) *store.Memory {
	t.Helper()
	mem := store.NewMemory()
	orig := openStore
	openStore = func(context.Context, config.FirestoreConfig) (store.Store, func() error, error) {
		return mem, func() error { return nil }, nil
	}
	t.Cleanup(func() { openStore = orig })
	return mem
}

func TestSeedLoadsGeneratedFiles(t *testing.T) {
	mem := useMemoryStore(t)

	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "recipes.json")
	ingredientsPath := filepath.Join(dir, "ingredients.json")
	_, _, err := run(t, "generate", "-out", recipesPath, "-ingredients-out", ingredientsPath, "-preview", "0")
	require.NoError(t, err)

	_, logs, err := run(t, "seed", "-project", "recipes-test", "-recipes", recipesPath, "-ingredients", ingredientsPath)
	require.NoError(t, err)
	assert.Contains(t, logs, "Seeded 91 ingredients and 23 recipes into project recipes-test")

	n, err := mem.CountRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 23, n)

	_, logs, err = run(t, "seed", "-project", "recipes-test", "-recipes", recipesPath, "-ingredients", ingredientsPath)
	require.NoError(t, err)
	assert.Contains(t, logs, "Recipes already seeded (count: 23), skipping...")
}

func TestSeedRequiresProject(t *testing.T) {
	useMemoryStore(t)
	_, _, err := run(t, "seed")
	assert.ErrorContains(t, err, "firestore.project_id is required")
}

func TestSeedRejectsMissingFiles(t *testing.T) {
	useMemoryStore(t)
	_, _, err := run(t, "seed", "-project", "p", "-recipes", filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorContains(t, err, "failed to open seed file")
}

func TestServeHandler(t *testing.T) {
	s, closeStore, err := serveStore(context.Background(), sourceCatalogue, config.DefaultConfig())
	require.NoError(t, err)
	defer closeStore()

	srv := httptest.NewServer(newHandler(s, config.ServerConfig{AllowedOrigins: []string{"https://app.example.com"}}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/recipe?slug=osso-buco", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var r models.Recipe
	require.NoError(t, json.Unmarshal(body, &r))
	assert.Equal(t, "Osso Buco", r.Title)
}

func TestServeStoreSources(t *testing.T) {
	_, _, err := serveStore(context.Background(), "postgres", config.DefaultConfig())
	assert.ErrorContains(t, err, "unknown source")

	_, _, err = serveStore(context.Background(), sourceFirestore, config.DefaultConfig())
	assert.ErrorContains(t, err, "firestore.project_id is required")

	mem := useMemoryStore(t)
	cfg := config.DefaultConfig()
	cfg.Firestore.ProjectID = "p"
	s, _, err := serveStore(context.Background(), sourceFirestore, cfg)
	require.NoError(t, err)
	assert.Same(t, mem, s)
}

func TestServeReturnsWhenPortIsBusy(t *testing.T) {
	t.Setenv("PORT", "")
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() {
		_, _, err := run(t, "serve", "-port", port)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "server stopped unexpectedly")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after failing to listen")
	}
}

func TestAddressPrefersPortEnv(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, ":8080", address(config.ServerConfig{Port: 8080}))

	t.Setenv("PORT", "9999")
	assert.Equal(t, ":9999", address(config.ServerConfig{Port: 8080}))
}

func TestRunMisc(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "recipeseed dev\n", stdout)

	stdout, _, err = run(t, "help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Commands:")

	stdout, _, err = run(t, "serve", "-version")
	require.NoError(t, err)
	assert.Equal(t, "recipeseed dev\n", stdout)

	_, _, err = run(t, "generate", "-h")
	assert.NoError(t, err)

	_, _, err = run(t, "bake")
	assert.ErrorContains(t, err, `unknown command "bake"`)

	_, _, err = run(t, "generate", "-no-such-flag")
	assert.Error(t, err)
}

// Guards the default paths the consuming service reads from.
func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, "services/shared/src/main/resources/seed-data/recipes.json", output.DefaultRecipesPath)
	assert.Equal(t, "services/shared/src/main/resources/seed-data/ingredients.json", output.DefaultIngredientsPath)
}
