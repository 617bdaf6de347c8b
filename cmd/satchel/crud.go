package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel/pkg/collection"
	"github.com/aretw0/satchel/pkg/core"
	"github.com/aretw0/satchel/pkg/transfer"
)

// storeOpener assembles the keeper and picks one of its collection stores.
type storeOpener[R core.Record[R]] func(cmd *cobra.Command) (*collection.Store[R], error)

// newListCmd builds the shared `list` verb for a collection.
func newListCmd[R core.Record[R]](kind string, open storeOpener[R]) *cobra.Command {
	var (
		search    string
		asJSON    bool
		filterTag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss, pinned first", kind),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store, err := open(cmd)
			if err != nil {
				fatal("Failed to open keeper", err)
			}

			visible := store.Project(search)

			if filterTag != "" {
				var filtered []R
				for _, r := range visible {
					for _, t := range r.TagList() {
						if t == filterTag {
							filtered = append(filtered, r)
							break
						}
					}
				}
				visible = filtered
			}

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(visible); err != nil {
					fatal("Failed to encode JSON", err)
				}
				return
			}

			for _, r := range visible {
				marker := " "
				if r.IsPinned() {
					marker = "*"
				}
				line := fmt.Sprintf("%s %s  %s", marker, r.Key(), r.Primary())
				if tags := r.TagList(); len(tags) > 0 {
					line += "  #" + strings.Join(tags, " #")
				}
				fmt.Println(line)
			}
			fmt.Printf("Total %ss: %d | Pinned: %d\n", kind, store.Len(), store.PinnedCount())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by search term (primary text, secondary text, tags)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&filterTag, "tag", "", "Only records carrying this exact tag")
	return cmd
}

// newRmCmd builds the shared `rm` verb. Deletion asks for confirmation
// unless --yes is given.
func newRmCmd[R core.Record[R]](kind string, open storeOpener[R]) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: fmt.Sprintf("Delete a %s", kind),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			recordID := args[0]
			store, err := open(cmd)
			if err != nil {
				fatal("Failed to open keeper", err)
			}

			rec, err := store.Get(recordID)
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No %s with id %s\n", kind, recordID)
				return
			}

			if !yes && !confirm(fmt.Sprintf("Delete %s %q?", kind, rec.Primary())) {
				fmt.Println("Aborted.")
				return
			}

			if err := store.Delete(cmd.Context(), recordID); err != nil {
				fatal("Failed to delete", err)
			}
			fmt.Printf("Deleted %s: %s\n", kind, recordID)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// newPinCmd builds the shared `pin` verb (a toggle).
func newPinCmd[R core.Record[R]](kind string, open storeOpener[R]) *cobra.Command {
	return &cobra.Command{
		Use:   "pin [id]",
		Short: fmt.Sprintf("Toggle the pin flag of a %s", kind),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			recordID := args[0]
			store, err := open(cmd)
			if err != nil {
				fatal("Failed to open keeper", err)
			}

			rec, err := store.Get(recordID)
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No %s with id %s\n", kind, recordID)
				return
			}

			if err := store.TogglePin(cmd.Context(), recordID); err != nil {
				fatal("Failed to toggle pin", err)
			}

			if !rec.IsPinned() {
				fmt.Printf("Pinned %s: %s\n", kind, recordID)
			} else {
				fmt.Printf("Unpinned %s: %s\n", kind, recordID)
			}
		},
	}
}

// newExportCmd builds the shared `export` verb: the whole collection as a
// pretty-printed JSON array.
func newExportCmd[R core.Record[R]](kind string, open storeOpener[R]) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: fmt.Sprintf("Export all %ss to a JSON file", kind),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := open(cmd)
			if err != nil {
				fatal("Failed to open keeper", err)
			}

			data, err := transfer.Export(store.All())
			if err != nil {
				fatal("Failed to export", err)
			}

			path := transfer.ExportName(store.Key())
			if len(args) == 1 {
				path = args[0]
			}

			if err := os.WriteFile(path, data, 0644); err != nil {
				fatal("Failed to write export file", err)
			}
			fmt.Printf("Exported %d %ss to %s\n", store.Len(), kind, path)
		},
	}
}

// newImportCmd builds the shared `import` verb: wholesale replacement of
// the collection from a JSON array file. The file is read asynchronously;
// the collection is only touched on a successful parse.
func newImportCmd[R core.Record[R]](kind string, open storeOpener[R]) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: fmt.Sprintf("Replace all %ss with the contents of a JSON file", kind),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := open(cmd)
			if err != nil {
				fatal("Failed to open keeper", err)
			}

			runner := transfer.NewRunner(nil)
			done := runner.ImportFile(cmd.Context(), args[0], func(ctx context.Context, data []byte) error {
				records, err := transfer.Import[R](data)
				if err != nil {
					return err
				}
				return store.ReplaceAll(ctx, records)
			})

			if err := <-done; err != nil {
				switch {
				case errors.Is(err, core.ErrMalformed):
					fmt.Println("Failed to parse JSON")
				case errors.Is(err, core.ErrNotAnArray):
					fmt.Println("Invalid JSON file")
				default:
					fmt.Printf("Import failed: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Printf("Import complete: %d %ss\n", store.Len(), kind)
		},
	}
}

// confirm prompts on stdin and accepts y/yes (case-insensitive).
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
