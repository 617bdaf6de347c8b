package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeToggle bool

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or toggle the dark-mode preference",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		enabled := app.Prefs.DarkMode(cmd.Context())
		if themeToggle {
			enabled = !enabled
			if err := app.Prefs.SetDarkMode(cmd.Context(), enabled); err != nil {
				fatal("Failed to save preference", err)
			}
		}

		if enabled {
			fmt.Println("Dark mode: on")
		} else {
			fmt.Println("Dark mode: off")
		}
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().BoolVar(&themeToggle, "toggle", false, "Flip the dark-mode preference")
}
