package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep"
	"github.com/notekeep/notekeep/internal/platform"
)

var (
	verbose bool
	dataDir string
	lenient bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeep",
	Short: "A local note-persistence backend over a single JSON file",
	Long: `Notekeep stores notes as one pretty-printed JSON collection inside the
application's private data directory. Saves append a note and replace
the file atomically; loads return the full collection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Backing directory (default: app data directory)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Replace an unreadable notes file on save instead of failing")
}

// resolveDir applies the precedence flag > env > config file > default.
func resolveDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}

	defaultDir, err := notekeep.DataDir()
	if err != nil {
		return "", err
	}

	cfg, err := platform.LoadConfig(defaultDir)
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return defaultDir, nil
}

// newService wires a service for the resolved data directory, layering
// config-file options under the command-line flags.
func newService() (*notekeep.Service, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := platform.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	opts := cfg.Options()
	opts = append(opts, notekeep.WithLogger(slog.Default()))
	if lenient {
		opts = append(opts, notekeep.WithLenient(true))
	}

	return notekeep.New(dir, opts...)
}
