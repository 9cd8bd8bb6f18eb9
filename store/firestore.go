package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"recipeseed/models"
)

// Firestore stores recipes under their slug and ingredients under
// IngredientID(name). Cuisine filtering is an exact match here. A plain tag
// becomes an array-contains query; a tag pattern is matched after the other
// filters have run on the server.
type Firestore struct {
	client *firestore.Client
}

var _ Store = (*Firestore)(nil)

// NewFirestore connects to projectID. An empty credentialsFile falls back to
// Application Default Credentials.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (*Firestore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) CountRecipes(ctx context.Context) (int, error) {
	return f.count(ctx, RecipesCollection)
}

func (f *Firestore) CountIngredients(ctx context.Context) (int, error) {
	return f.count(ctx, IngredientsCollection)
}

func (f *Firestore) count(ctx context.Context, collection string) (int, error) {
	res, err := f.client.Collection(collection).NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	v, ok := res["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected count result for %s: %T", collection, res["all"])
	}
	return int(v.GetIntegerValue()), nil
}

func (f *Firestore) SaveRecipes(ctx context.Context, recipes []models.Recipe) error {
	coll := f.client.Collection(RecipesCollection)
	return f.bulkSet(ctx, len(recipes), func(i int) (*firestore.DocumentRef, any) {
		return coll.Doc(recipes[i].Slug), recipes[i]
	})
}

func (f *Firestore) SaveIngredients(ctx context.Context, ingredients []models.Ingredient) error {
	coll := f.client.Collection(IngredientsCollection)
	return f.bulkSet(ctx, len(ingredients), func(i int) (*firestore.DocumentRef, any) {
		return coll.Doc(IngredientID(ingredients[i].Name)), ingredients[i]
	})
}

// bulkSet queues n writes on a BulkWriter and waits for all of them.
func (f *Firestore) bulkSet(ctx context.Context, n int, doc func(i int) (*firestore.DocumentRef, any)) error {
	bw := f.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, n)
	refs := make([]*firestore.DocumentRef, 0, n)
	for i := 0; i < n; i++ {
		ref, data := doc(i)
		job, err := bw.Set(ref, data)
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue write for %s: %w", ref.Path, err)
		}
		jobs = append(jobs, job)
		refs = append(refs, ref)
	}
	bw.End()

	var errs []error
	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, fmt.Errorf("failed to write %s: %w", refs[i].ID, err))
		}
	}
	return errors.Join(errs...)
}

func (f *Firestore) CreateRecipe(ctx context.Context, r models.Recipe) error {
	_, err := f.client.Collection(RecipesCollection).Doc(r.Slug).Create(ctx, r)
	if status.Code(err) == codes.AlreadyExists {
		return fmt.Errorf("recipe %q: %w", r.Slug, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create recipe %q: %w", r.Slug, err)
	}
	return nil
}

func (f *Firestore) ListRecipes(ctx context.Context, q Query) ([]models.Recipe, error) {
	tag, err := q.tagMatcher()
	if err != nil {
		return nil, err
	}

	query := f.client.Collection(RecipesCollection).Query
	if q.Cuisine != "" {
		query = query.Where("cuisine", "==", q.Cuisine)
	}
	if q.Difficulty != "" {
		query = query.Where("difficulty", "==", string(q.Difficulty))
	}
	if q.Approved != nil {
		query = query.Where("isApproved", "==", *q.Approved)
	}
	if q.Tag != "" && !q.tagPattern() {
		query = query.Where("tags", "array-contains", strings.ToLower(q.Tag))
	}

	recipes := []models.Recipe{}
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list recipes: %w", err)
		}
		var r models.Recipe
		if err := doc.DataTo(&r); err != nil {
			return nil, fmt.Errorf("failed to decode recipe %s: %w", doc.Ref.ID, err)
		}
		if q.tagPattern() && !matchesTag(tag, r.Tags) {
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func (f *Firestore) GetRecipe(ctx context.Context, slug string) (models.Recipe, error) {
	var r models.Recipe
	doc, err := f.client.Collection(RecipesCollection).Doc(slug).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return r, fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return r, fmt.Errorf("failed to get recipe %q: %w", slug, err)
	}
	if err := doc.DataTo(&r); err != nil {
		return r, fmt.Errorf("failed to decode recipe %q: %w", slug, err)
	}
	return r, nil
}

func (f *Firestore) DeleteRecipe(ctx context.Context, slug string) error {
	_, err := f.client.Collection(RecipesCollection).Doc(slug).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete recipe %q: %w", slug, err)
	}
	return nil
}

func (f *Firestore) UpdateRecipe(ctx context.Context, slug string, fn func(r *models.Recipe) error) (models.Recipe, error) {
	ref := f.client.Collection(RecipesCollection).Doc(slug)
	var updated models.Recipe
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		var r models.Recipe
		if err := doc.DataTo(&r); err != nil {
			return fmt.Errorf("failed to decode recipe %q: %w", slug, err)
		}
		if err := fn(&r); err != nil {
			return err
		}
		r.Slug = slug
		updated = r
		return tx.Set(ref, r)
	})
	if status.Code(err) == codes.NotFound {
		return models.Recipe{}, fmt.Errorf("recipe %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return models.Recipe{}, err
	}
	return updated, nil
}

func (f *Firestore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	iter := f.client.Collection(IngredientsCollection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list ingredients: %w", err)
		}
		var ing models.Ingredient
		if err := doc.DataTo(&ing); err != nil {
			return nil, fmt.Errorf("failed to decode ingredient %s: %w", doc.Ref.ID, err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

func (f *Firestore) GetIngredient(ctx context.Context, name string) (models.Ingredient, error) {
	var ing models.Ingredient
	coll := f.client.Collection(IngredientsCollection)

	doc, err := coll.Doc(IngredientID(name)).Get(ctx)
	if err == nil {
		if err := doc.DataTo(&ing); err != nil {
			return ing, fmt.Errorf("failed to decode ingredient %q: %w", name, err)
		}
		return ing, nil
	}
	if status.Code(err) != codes.NotFound {
		return ing, fmt.Errorf("failed to get ingredient %q: %w", name, err)
	}

	iter := coll.Where("aliases", "array-contains", strings.ToLower(strings.TrimSpace(name))).Limit(1).Documents(ctx)
	defer iter.Stop()
	doc, err = iter.Next()
	if err == iterator.Done {
		return ing, fmt.Errorf("ingredient %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return ing, fmt.Errorf("failed to look up ingredient alias %q: %w", name, err)
	}
	if err := doc.DataTo(&ing); err != nil {
		return ing, fmt.Errorf("failed to decode ingredient %q: %w", name, err)
	}
	return ing, nil
}
