// Package app implements the recipeseed commands so they can be driven from
// main or from tests.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"recipeseed/config"
)

// Version is overridden at build time with -ldflags "-X recipeseed/app.Version=...".
var Version = "dev"

const usage = `Usage: recipeseed <command> [flags]

Commands:
  generate   write the recipe and ingredient seed files (default)
  seed       load the seed files into Firestore
  serve      serve recipes and ingredients over HTTP

Run "recipeseed <command> -h" for the flags of a command.
`

type command func(ctx context.Context, args []string, env *env) error

var commands = map[string]command{
	"generate": runGenerate,
	"seed":     runSeed,
	"serve":    runServe,
}

// env carries what every command shares.
type env struct {
	stdout io.Writer
	logger *log.Logger
}

// Run dispatches args (without the program name) to a command.
func Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(os.Stdout, "[recipeseed] ", log.LstdFlags)
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	e := &env{stdout: stdout, logger: logger}

	name := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name, args = args[0], args[1:]
	}
	switch name {
	case "help":
		fmt.Fprint(stdout, usage)
		return nil
	case "version":
		fmt.Fprintf(stdout, "recipeseed %s\n", Version)
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q\n\n%s", name, usage)
	}
	err := cmd(ctx, args, e)
	if errors.Is(err, flag.ErrHelp) {
		// The flag package already printed the defaults.
		return nil
	}
	return err
}

// commonFlags are accepted by every command. Flags override values from the
// config file only when they are given explicitly.
type commonFlags struct {
	configPath  string
	showVersion bool
}

func newFlagSet(name string, e *env, common *commonFlags) *flag.FlagSet {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(e.stdout)
	set.StringVar(&common.configPath, "config", "", "Path to a YAML configuration file")
	set.BoolVar(&common.showVersion, "version", false, "Show the application version")
	return set
}

// loadConfig reads the config file, then applies the flags that were set.
func loadConfig(set *flag.FlagSet, common *commonFlags, apply map[string]func(cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.Load(common.configPath)
	if err != nil {
		return nil, err
	}
	set.Visit(func(f *flag.Flag) {
		if fn, ok := apply[f.Name]; ok {
			fn(cfg)
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
