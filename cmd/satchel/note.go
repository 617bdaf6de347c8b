package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel/pkg/collection"
	"github.com/aretw0/satchel/pkg/core"
)

var (
	noteTitle   string
	noteContent string
	noteTags    []string
	notePinned  bool
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

func openNotes(cmd *cobra.Command) (*collection.Store[core.Note], error) {
	app, err := openApp(cmd)
	if err != nil {
		return nil, err
	}
	return app.Notes, nil
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openNotes(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		note, err := store.Create(cmd.Context(), core.Note{
			Title:   noteTitle,
			Content: noteContent,
			Tags:    noteTags,
			Pinned:  notePinned,
		})
		if errors.Is(err, core.ErrValidation) {
			fmt.Println("Title is required")
			return
		}
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Created note: %s\n", note.ID)
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  `Edit replaces the fields given by flags; fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openNotes(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		note, err := store.Get(args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Printf("No note with id %s\n", args[0])
			return
		}

		if cmd.Flags().Changed("title") {
			note.Title = noteTitle
		}
		if cmd.Flags().Changed("content") {
			note.Content = noteContent
		}
		if cmd.Flags().Changed("tag") {
			note.Tags = noteTags
		}
		if cmd.Flags().Changed("pin") {
			note.Pinned = notePinned
		}

		err = store.Update(cmd.Context(), note.ID, note)
		if errors.Is(err, core.ErrValidation) {
			fmt.Println("Title is required")
			return
		}
		if err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Updated note: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)

	noteAddCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title (required non-empty)")
	noteAddCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note content (Markdown-like text, not parsed)")
	noteAddCmd.Flags().StringArrayVar(&noteTags, "tag", nil, "Tag to attach (repeatable; trimmed, lowercased, deduplicated)")
	noteAddCmd.Flags().BoolVar(&notePinned, "pin", false, "Pin the note")

	noteEditCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "New title")
	noteEditCmd.Flags().StringVarP(&noteContent, "content", "c", "", "New content")
	noteEditCmd.Flags().StringArrayVar(&noteTags, "tag", nil, "Replacement tags (repeatable)")
	noteEditCmd.Flags().BoolVar(&notePinned, "pin", false, "Pin state")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(newListCmd("note", openNotes))
	noteCmd.AddCommand(newRmCmd("note", openNotes))
	noteCmd.AddCommand(newPinCmd("note", openNotes))
	noteCmd.AddCommand(newExportCmd("note", openNotes))
	noteCmd.AddCommand(newImportCmd("note", openNotes))
}
