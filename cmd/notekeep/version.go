package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notekeep",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notekeep version %s\n", strings.TrimSpace(notekeep.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
