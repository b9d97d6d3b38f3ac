package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes in the collection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize notekeep", err)
		}

		notes, err := svc.FindNotes(context.Background(), listMatch)
		if err != nil {
			fatal("Failed to load notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			created := time.Unix(note.Timestamp, 0).UTC().Format(time.RFC3339)
			fmt.Printf("%s  %s  %s\n", note.ID, created, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter notes by title glob (doublestar)")
}
