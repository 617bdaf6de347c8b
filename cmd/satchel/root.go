package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel"
)

var (
	verbose   bool
	keeperDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "A local note and flashcard keeper",
	Long: `Satchel keeps two collections, notes and flashcards, in a local
key-value store with one JSON file per collection. Records can be tagged,
pinned, searched, and moved wholesale via JSON export/import.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&keeperDir, "dir", "", "Keeper directory (default $SATCHEL_DIR or ~/.satchel)")
}

// resolveDir picks the keeper directory: --dir, then $SATCHEL_DIR, then
// ~/.satchel.
func resolveDir() (string, error) {
	if keeperDir != "" {
		return keeperDir, nil
	}
	if env := os.Getenv("SATCHEL_DIR"); env != "" {
		return env, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".satchel"), nil
}

// openApp assembles the keeper for a command invocation.
func openApp(cmd *cobra.Command) (*satchel.App, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	return satchel.New(cmd.Context(), dir,
		satchel.WithLogger(slog.Default()),
	)
}
