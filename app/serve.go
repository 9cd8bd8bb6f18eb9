package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/cors"

	"recipeseed/catalogue"
	"recipeseed/config"
	"recipeseed/handlers"
	"recipeseed/store"
)

const (
	sourceCatalogue = "catalogue"
	sourceFirestore = "firestore"
)

func runServe(ctx context.Context, args []string, e *env) error {
	var (
		common      commonFlags
		port        int
		source      string
		project     string
		credentials string
	)
	set := newFlagSet("serve", e, &common)
	apply := firestoreFlags(set, &project, &credentials)
	set.IntVar(&port, "port", 8080, "Port for the HTTP server")
	set.StringVar(&source, "source", sourceCatalogue, "Where recipes come from: catalogue or firestore")
	apply["port"] = func(c *config.Config) { c.Server.Port = port }
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

	s, closeStore, err := serveStore(ctx, source, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	server := &http.Server{
		Addr:         address(cfg.Server),
		Handler:      newHandler(s, cfg.Server),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Cancelled on return as well, so the shutdown goroutine never outlives
	// a server that failed to start.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	e.logger.Printf("Server starting on %s (source: %s)", server.Addr, source)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}
	return nil
}

// serveStore returns the store named by source, already populated for the
// catalogue source.
func serveStore(ctx context.Context, source string, cfg *config.Config) (store.Store, func() error, error) {
	switch source {
	case sourceCatalogue:
		mem := store.NewMemory()
		if err := mem.SaveIngredients(ctx, catalogue.Ingredients()); err != nil {
			return nil, nil, err
		}
		if err := mem.SaveRecipes(ctx, catalogue.Recipes()); err != nil {
			return nil, nil, err
		}
		return mem, func() error { return nil }, nil
	case sourceFirestore:
		if err := cfg.RequireFirestore(); err != nil {
			return nil, nil, err
		}
		return openStore(ctx, cfg.Firestore)
	}
	return nil, nil, fmt.Errorf("unknown source %q (want %s or %s)", source, sourceCatalogue, sourceFirestore)
}

func newHandler(s store.Store, cfg config.ServerConfig) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-Id", "X-User-Name", "X-User-Role"},
		AllowCredentials: true,
	})
	return c.Handler(handlers.NewRouter(s, &http.Client{Timeout: 10 * time.Second}))
}

// address honours PORT so the server runs unchanged on hosts that assign one.
func address(cfg config.ServerConfig) string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":" + strconv.Itoa(cfg.Port)
}
