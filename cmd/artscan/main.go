package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brandonbunt/artscan/internal/ui"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	verbose bool
	noColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "artscan",
		Short: "Manifest generator for the art365 image collection",
		Long: `artscan scans a directory of artwork images named per the collection
grammar and generates a JSON manifest describing them.

Filenames follow one of two forms:
  "1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg"
  "42. Artist Name, 1872.jpg"

Files matching neither form are reported and skipped; the run continues.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("artscan %s\n", version)
		},
	}
}
