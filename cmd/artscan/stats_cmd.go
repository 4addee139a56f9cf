package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandonbunt/artscan/internal/config"
	"github.com/brandonbunt/artscan/internal/manifest"
	"github.com/brandonbunt/artscan/internal/scanner"
	"github.com/brandonbunt/artscan/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [images-dir]",
		Short: "Summarize the collection by artist and year",
		Long: `Parse the images directory and print a collection breakdown without
writing a manifest.

Examples:
  artscan stats
  artscan stats artwork/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}

	return cmd
}

func runStats(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := cfg.Scan.ImagesDir
	if len(args) > 0 {
		dir = args[0]
	}

	files, err := scanner.ListImages(dir)
	if err != nil {
		if errors.Is(err, scanner.ErrDirectoryNotFound) {
			ui.ErrorMsg("directory %q not found", dir)
			return nil
		}
		return err
	}

	var skipped []string
	m := manifest.Assemble(files, cfg.URLBase(), nil,
		func(filename string, reason error) {
			skipped = append(skipped, filename)
		},
	)

	stats := manifest.Collect(m, dir)

	ui.Section("collection")
	fmt.Printf("Images:  %d parsed", stats.TotalEntries)
	if len(skipped) > 0 {
		fmt.Printf(", %d unparseable", len(skipped))
	}
	fmt.Println()
	if stats.TotalEntries > 0 {
		fmt.Printf("Years:   %d–%d\n", stats.YearMin, stats.YearMax)
	}
	fmt.Printf("Size:    %s\n", ui.FormatBytes(stats.TotalBytes))

	ui.Section("artists")
	for _, artist := range stats.Artists() {
		fmt.Printf("%4d  %s\n", stats.ByArtist[artist], ui.Artist(artist))
	}

	if len(skipped) > 0 && verbose {
		ui.Section("unparseable")
		for _, f := range skipped {
			fmt.Printf("  %s\n", f)
		}
	}

	return nil
}
