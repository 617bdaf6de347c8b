package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream storage change events until interrupted",
	Long: `Watch reports external changes to the keeper's storage, e.g. another
process writing a collection or a manual edit of the JSON files.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		watchable, ok := app.Storage.(core.Watchable)
		if !ok {
			fatal("Storage does not support watching", fmt.Errorf("adapter %T", app.Storage))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := watchable.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %q (Ctrl-C to stop)\n", watchPattern)
		for ev := range events {
			fmt.Println(ev.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "*", "Key pattern to watch (doublestar syntax)")
}
