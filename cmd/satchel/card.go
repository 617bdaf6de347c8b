package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/satchel/pkg/collection"
	"github.com/aretw0/satchel/pkg/core"
)

var (
	cardQuestion string
	cardAnswer   string
	cardTags     []string
	cardPinned   bool
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
}

func openCards(cmd *cobra.Command) (*collection.Store[core.Card], error) {
	app, err := openApp(cmd)
	if err != nil {
		return nil, err
	}
	return app.Cards, nil
}

var cardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a flashcard",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openCards(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		card, err := store.Create(cmd.Context(), core.Card{
			Question: cardQuestion,
			Answer:   cardAnswer,
			Tags:     cardTags,
			Pinned:   cardPinned,
		})
		if errors.Is(err, core.ErrValidation) {
			fmt.Println("Question is required")
			return
		}
		if err != nil {
			fatal("Failed to create flashcard", err)
		}

		fmt.Printf("Created flashcard: %s\n", card.ID)
	},
}

var cardEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a flashcard",
	Long:  `Edit replaces the fields given by flags; fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openCards(cmd)
		if err != nil {
			fatal("Failed to open keeper", err)
		}

		card, err := store.Get(args[0])
		if errors.Is(err, core.ErrNotFound) {
			fmt.Printf("No flashcard with id %s\n", args[0])
			return
		}

		if cmd.Flags().Changed("question") {
			card.Question = cardQuestion
		}
		if cmd.Flags().Changed("answer") {
			card.Answer = cardAnswer
		}
		if cmd.Flags().Changed("tag") {
			card.Tags = cardTags
		}
		if cmd.Flags().Changed("pin") {
			card.Pinned = cardPinned
		}

		err = store.Update(cmd.Context(), card.ID, card)
		if errors.Is(err, core.ErrValidation) {
			fmt.Println("Question is required")
			return
		}
		if err != nil {
			fatal("Failed to update flashcard", err)
		}

		fmt.Printf("Updated flashcard: %s\n", card.ID)
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)

	cardAddCmd.Flags().StringVarP(&cardQuestion, "question", "q", "", "Card question (required non-empty)")
	cardAddCmd.Flags().StringVarP(&cardAnswer, "answer", "a", "", "Card answer")
	cardAddCmd.Flags().StringArrayVar(&cardTags, "tag", nil, "Tag to attach (repeatable; trimmed, lowercased, deduplicated)")
	cardAddCmd.Flags().BoolVar(&cardPinned, "pin", false, "Pin the card")

	cardEditCmd.Flags().StringVarP(&cardQuestion, "question", "q", "", "New question")
	cardEditCmd.Flags().StringVarP(&cardAnswer, "answer", "a", "", "New answer")
	cardEditCmd.Flags().StringArrayVar(&cardTags, "tag", nil, "Replacement tags (repeatable)")
	cardEditCmd.Flags().BoolVar(&cardPinned, "pin", false, "Pin state")

	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardEditCmd)
	cardCmd.AddCommand(newListCmd("card", openCards))
	cardCmd.AddCommand(newRmCmd("card", openCards))
	cardCmd.AddCommand(newPinCmd("card", openCards))
	cardCmd.AddCommand(newExportCmd("card", openCards))
	cardCmd.AddCommand(newImportCmd("card", openCards))
}
