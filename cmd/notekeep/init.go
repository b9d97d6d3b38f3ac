package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the backing data directory",
	Long:  `Resolve the application data directory and create it if missing.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := resolveDir()
		if err != nil {
			fatal("Failed to resolve data directory", err)
		}

		if _, err := notekeep.Init(dir); err != nil {
			fatal("Failed to initialize store", err)
		}

		fmt.Println("Initialized notekeep store in", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
