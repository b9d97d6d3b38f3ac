package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle   string
	addContent string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new note",
	Long: `Append a note to the collection and print its generated id.
Title and content are stored as-is; empty values are allowed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize notekeep", err)
		}

		id, err := svc.SaveNote(context.Background(), addTitle, addContent)
		if err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
}
