package app

import (
	"context"
	"flag"
	"fmt"

	"recipeseed/config"
	"recipeseed/seed"
	"recipeseed/store"
)

// openStore connects to the configured Firestore project. The returned
// function releases the connection.
var openStore = func(ctx context.Context, cfg config.FirestoreConfig) (store.Store, func() error, error) {
	fs, err := store.NewFirestore(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}
	return fs, fs.Close, nil
}

// firestoreFlags registers -project and -credentials on set.
func firestoreFlags(set *flag.FlagSet, project, credentials *string) map[string]func(*config.Config) {
	set.StringVar(project, "project", "", "Google Cloud project ID")
	set.StringVar(credentials, "credentials", "", "Service account key file (defaults to Application Default Credentials)")
	return map[string]func(*config.Config){
		"project":     func(c *config.Config) { c.Firestore.ProjectID = *project },
		"credentials": func(c *config.Config) { c.Firestore.CredentialsFile = *credentials },
	}
}

func runSeed(ctx context.Context, args []string, e *env) error {
	var (
		common      commonFlags
		recipes     string
		ingredients string
		project     string
		credentials string
	)
	set := newFlagSet("seed", e, &common)
	apply := firestoreFlags(set, &project, &credentials)
	set.StringVar(&recipes, "recipes", "", "Recipes seed file (defaults to output.recipes_path)")
	set.StringVar(&ingredients, "ingredients", "", "Ingredients seed file (defaults to output.ingredients_path)")
	apply["recipes"] = func(c *config.Config) { c.Output.RecipesPath = recipes }
	apply["ingredients"] = func(c *config.Config) { c.Output.IngredientsPath = ingredients }
	if err := set.Parse(args); err != nil {
		return err
	}
	if common.showVersion {
		fmt.Fprintf(e.stdout, "recipeseed %s\n", Version)
		return nil
	}

	cfg, err := loadConfig(set, &common, apply)
	if err != nil {
		return err
	}
	if err := cfg.RequireFirestore(); err != nil {
		return err
	}

	recipeData, err := seed.LoadRecipes(cfg.Output.RecipesPath)
	if err != nil {
		return err
	}
	ingredientData, err := seed.LoadIngredients(cfg.Output.IngredientsPath)
	if err != nil {
		return err
	}

	s, closeStore, err := openStore(ctx, cfg.Firestore)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := seed.New(s, e.logger).Run(ctx, recipeData, ingredientData)
	if err != nil {
		return err
	}
	e.logger.Printf("Seeded %d ingredients and %d recipes into project %s", res.Ingredients, res.Recipes, cfg.Firestore.ProjectID)
	return nil
}
