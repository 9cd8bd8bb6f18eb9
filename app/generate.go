package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"recipeseed/catalogue"
	"recipeseed/config"
	"recipeseed/models"
	"recipeseed/output"
)

type publisher interface {
	Publish(ctx context.Context, name, filePath string) (string, error)
	Key(name string) string
}

var newPublisher = func(ctx context.Context, cfg config.S3Config) (publisher, error) {
	return output.NewS3Publisher(ctx, output.S3Options{
		Bucket:   cfg.Bucket,
		Prefix:   cfg.Prefix,
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
	})
}

func runGenerate(ctx context.Context, args []string, e *env) error {
	var (
		common  commonFlags
		filter  catalogue.Filter
		out     string
		ingOut  string
		preview int
		bucket  string
		prefix  string
		region  string
	)
	set := newFlagSet("generate", e, &common)
	set.StringVar(&out, "out", output.DefaultRecipesPath, "Recipes seed file path")
	set.StringVar(&ingOut, "ingredients-out", output.DefaultIngredientsPath, "Ingredients seed file path")
	set.IntVar(&preview, "preview", 2, "Number of recipes to print after writing")
	set.StringVar(&filter.Cuisine, "cuisine", "", "Only emit recipes of this cuisine")
	set.StringVar(&filter.Difficulty, "difficulty", "", "Only emit recipes of this difficulty (EASY, MEDIUM, HARD)")
	set.StringVar(&filter.Tag, "tag", "", "Only emit recipes with a tag matching this glob, e.g. 'comfort-*'")
	set.IntVar(&filter.MaxTotalTime, "max-time", 0, "Only emit recipes whose prep plus cook time is at most this many minutes")
	set.StringVar(&bucket, "s3-bucket", "", "Publish the seed files to this S3 bucket")
	set.StringVar(&prefix, "s3-prefix", "", "Key prefix for published seed files")
	set.StringVar(&region, "s3-region", "", "AWS region of the bucket")
	if err := set.Parse(args); err != nil {
		return err
	}
	if common.showVersion {
		fmt.Fprintf(e.stdout, "recipeseed %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(set, &common, map[string]func(*config.Config){
		"out":             func(c *config.Config) { c.Output.RecipesPath = out },
		"ingredients-out": func(c *config.Config) { c.Output.IngredientsPath = ingOut },
		"preview":         func(c *config.Config) { c.Output.Preview = preview },
		"s3-bucket":       func(c *config.Config) { c.S3.Bucket = bucket },
		"s3-prefix":       func(c *config.Config) { c.S3.Prefix = prefix },
		"s3-region":       func(c *config.Config) { c.S3.Region = region },
	})
	if err != nil {
		return err
	}

	return generate(ctx, cfg, filter, e)
}

func generate(ctx context.Context, cfg *config.Config, filter catalogue.Filter, e *env) error {
	recipes, ingredients := catalogue.Recipes(), catalogue.Ingredients()
	if err := catalogue.Check(recipes, ingredients); err != nil {
		return fmt.Errorf("catalogue is inconsistent: %w", err)
	}

	total := len(recipes)
	recipes, err := filter.Apply(recipes)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		return errors.New("no recipes match the filter")
	}
	if !filter.IsZero() {
		e.logger.Printf("Filter kept %d of %d recipes", len(recipes), total)
	}

	for _, cuisine := range catalogue.Cuisines(recipes) {
		e.logger.Printf("Generated %d %s recipes", countCuisine(recipes, cuisine), cuisine)
	}

	// Ingredients go first: the recipes file is the one consumers look for,
	// so it only changes once the ingredients it references are on disk.
	if err := output.WriteJSON(cfg.Output.IngredientsPath, ingredients); err != nil {
		return err
	}
	e.logger.Printf("Wrote %d ingredients to %s", len(ingredients), cfg.Output.IngredientsPath)

	if err := output.WriteJSON(cfg.Output.RecipesPath, recipes); err != nil {
		return err
	}
	e.logger.Printf("Wrote %d recipes to %s", len(recipes), cfg.Output.RecipesPath)

	if err := output.Preview(e.stdout, recipes, cfg.Output.Preview); err != nil {
		return fmt.Errorf("failed to print preview: %w", err)
	}

	if cfg.S3.Bucket == "" {
		return nil
	}
	pub, err := newPublisher(ctx, cfg.S3)
	if err != nil {
		return err
	}
	for _, path := range []string{cfg.Output.IngredientsPath, cfg.Output.RecipesPath} {
		name := filepath.Base(path)
		etag, err := pub.Publish(ctx, name, path)
		if err != nil {
			return err
		}
		e.logger.Printf("Published %s to s3://%s/%s (etag %s)", name, cfg.S3.Bucket, pub.Key(name), etag)
	}
	return nil
}

func countCuisine(recipes []models.Recipe, cuisine string) int {
	n := 0
	for _, r := range recipes {
		if r.Cuisine == cuisine {
			n++
		}
	}
	return n
}
