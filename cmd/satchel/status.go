package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show keeper state as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		state := map[string]any{
			"notes":      app.Notes.State(),
			"flashcards": app.Cards.State(),
			"dark_mode":  app.Prefs.DarkMode(cmd.Context()),
		}
		if s, ok := app.Storage.(introspection.Introspectable); ok {
			state["storage"] = s.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fmt.Printf("Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
