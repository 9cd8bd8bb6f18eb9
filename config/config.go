// Package config loads recipeseed settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"recipeseed/output"
)

type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Firestore FirestoreConfig `yaml:"firestore"`
	S3        S3Config        `yaml:"s3"`
	Server    ServerConfig    `yaml:"server"`
}

type OutputConfig struct {
	RecipesPath     string `yaml:"recipes_path"`
	IngredientsPath string `yaml:"ingredients_path"`
	// Preview is how many recipes generate prints after writing.
	Preview int `yaml:"preview"`
}

type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// S3Config enables publishing when Bucket is set.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			RecipesPath:     output.DefaultRecipesPath,
			IngredientsPath: output.DefaultIngredientsPath,
			Preview:         2,
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Output.RecipesPath == "" {
		errs = append(errs, errors.New("output.recipes_path is required"))
	}
	if c.Output.IngredientsPath == "" {
		errs = append(errs, errors.New("output.ingredients_path is required"))
	}
	if c.Output.RecipesPath != "" && c.Output.RecipesPath == c.Output.IngredientsPath {
		errs = append(errs, errors.New("output.recipes_path and output.ingredients_path must differ"))
	}
	if c.Output.Preview < 0 {
		errs = append(errs, fmt.Errorf("output.preview must not be negative, got %d", c.Output.Preview))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.S3.Bucket == "" && (c.S3.Prefix != "" || c.S3.Endpoint != "") {
		errs = append(errs, errors.New("s3.bucket is required when other s3 settings are given"))
	}
	return errors.Join(errs...)
}

// RequireFirestore is checked by the commands that talk to Firestore.
func (c *Config) RequireFirestore() error {
	if c.Firestore.ProjectID == "" {
		return errors.New("firestore.project_id is required")
	}
	return nil
}
