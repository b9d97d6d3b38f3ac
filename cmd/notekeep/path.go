package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved data directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := resolveDir()
		if err != nil {
			fatal("Failed to resolve data directory", err)
		}
		fmt.Println(dir)
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
