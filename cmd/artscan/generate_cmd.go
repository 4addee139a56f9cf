package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandonbunt/artscan/internal/config"
	"github.com/brandonbunt/artscan/internal/logging"
	"github.com/brandonbunt/artscan/internal/manifest"
	"github.com/brandonbunt/artscan/internal/scanner"
	"github.com/brandonbunt/artscan/internal/ui"
)

func newGenerateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate [images-dir]",
		Short: "Generate the collection manifest",
		Long: `Scan an images directory, parse each filename, and write the manifest.

Filenames that match neither grammar are reported with a warning and left
out of the manifest. The output file is overwritten unconditionally.

Examples:
  artscan generate                   # scan ./images, write ./manifest.json
  artscan generate artwork/          # scan a different directory
  artscan generate -o docs/manifest.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "manifest output path (default from config)")

	return cmd
}

func runGenerate(args []string, outputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := cfg.Scan.ImagesDir
	if len(args) > 0 {
		dir = args[0]
	}
	output := cfg.Scan.Output
	if outputPath != "" {
		output = outputPath
	}

	log := openLogger(cfg)
	defer log.Close()

	files, err := scanner.ListImages(dir)
	if err != nil {
		if errors.Is(err, scanner.ErrDirectoryNotFound) {
			// Fatal to the run but not a process failure: report, write
			// nothing, return cleanly.
			ui.ErrorMsg("directory %q not found", dir)
			fmt.Println("Make sure you're running artscan from the repository root")
			log.Error("images directory missing", err, logging.F("dir", dir))
			return nil
		}
		return err
	}

	fmt.Printf("Found %d images in %s/\n", len(files), dir)
	fmt.Println("Parsing filenames...")
	fmt.Println()

	var skipped int
	m := manifest.Assemble(files, cfg.URLBase(),
		func(e manifest.Entry) {
			fmt.Printf("%s %s\n", ui.Success("✓"), entryLine(e))
			if verbose {
				fmt.Printf("    %s\n", ui.Dim(e.URL))
			}
		},
		func(filename string, reason error) {
			skipped++
			ui.WarningMsg("could not parse filename: %s", filename)
			if verbose {
				fmt.Printf("    %s\n", ui.Dim(reason.Error()))
			}
			log.Warn("skipped file", logging.F("file", filename), logging.F("reason", reason))
		},
	)

	if err := manifest.Write(m, output); err != nil {
		log.Error("manifest write failed", err, logging.F("output", output))
		return err
	}

	log.Info("manifest generated",
		logging.F("dir", dir),
		logging.F("output", output),
		logging.F("entries", m.TotalImages),
		logging.F("skipped", skipped))

	fmt.Println()
	ui.SuccessMsg("Generated %s", ui.Path(output))
	fmt.Printf("  Total images: %d\n", m.TotalImages)
	if skipped > 0 {
		fmt.Printf("  Skipped: %d\n", skipped)
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  git add %s\n", output)
	fmt.Println("  git commit -m 'Add manifest.json for art metadata'")
	fmt.Println("  git push origin main")

	return nil
}

// entryLine renders one progress line in catalog form, mirroring the
// filename grammar: "  1. The Sun by Giuseppe Pellizza da Volpedo, 1904".
func entryLine(e manifest.Entry) string {
	if e.Title != "" {
		return fmt.Sprintf("%3d. %s by %s, %d", e.ID, ui.Title(e.Title), ui.Artist(e.Artist), e.Year)
	}
	return fmt.Sprintf("%3d. %s, %d", e.ID, ui.Artist(e.Artist), e.Year)
}

// openLogger returns a file logger when one is configured, otherwise a
// no-op. Console output never goes through the logger.
func openLogger(cfg *config.Config) *logging.Logger {
	if cfg.Logging.File == "" {
		return logging.Nop()
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		ui.WarningMsg("log file unavailable: %v", err)
		return logging.Nop()
	}
	return log
}
