package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandonbunt/artscan/internal/config"
	"github.com/brandonbunt/artscan/internal/manifest"
	"github.com/brandonbunt/artscan/internal/scanner"
	"github.com/brandonbunt/artscan/internal/ui"
)

func newValidateCmd() *cobra.Command {
	var imagesDir string

	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Check an existing manifest against the images directory",
		Long: `Verify that a previously generated manifest still matches the collection.

Reports:
  - total_images disagreeing with the entry count
  - duplicate entry ids
  - entries whose image file is missing from disk
  - image files on disk that are absent from the manifest
  - entry URLs that don't follow the configured URL template

Examples:
  artscan validate
  artscan validate docs/manifest.json --images artwork/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, imagesDir)
		},
	}

	cmd.Flags().StringVar(&imagesDir, "images", "", "images directory (default from config)")

	return cmd
}

func runValidate(args []string, imagesDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	manifestPath := cfg.Scan.Output
	if len(args) > 0 {
		manifestPath = args[0]
	}
	dir := cfg.Scan.ImagesDir
	if imagesDir != "" {
		dir = imagesDir
	}

	m, err := manifest.Read(manifestPath)
	if err != nil {
		return err
	}

	files, err := scanner.ListImages(dir)
	if err != nil {
		if errors.Is(err, scanner.ErrDirectoryNotFound) {
			ui.ErrorMsg("directory %q not found", dir)
			return nil
		}
		return err
	}

	fmt.Printf("Manifest: %s (%d entries)\n", manifestPath, len(m.Images))
	fmt.Printf("Images:   %s/ (%d files)\n\n", dir, len(files))

	var issues []string

	if m.Version != manifest.Version {
		issues = append(issues, fmt.Sprintf("version is %q, expected %q", m.Version, manifest.Version))
	}
	if m.TotalImages != len(m.Images) {
		issues = append(issues, fmt.Sprintf("total_images is %d but manifest holds %d entries", m.TotalImages, len(m.Images)))
	}

	onDisk := make(map[string]bool, len(files))
	for _, f := range files {
		onDisk[f] = true
	}

	seen := make(map[int]string, len(m.Images))
	urlBase := cfg.URLBase()
	lastID := 0
	ordered := true

	for _, e := range m.Images {
		if prev, ok := seen[e.ID]; ok {
			issues = append(issues, fmt.Sprintf("duplicate id %d: %s and %s", e.ID, prev, e.Filename))
		}
		seen[e.ID] = e.Filename

		if e.ID < lastID {
			ordered = false
		}
		lastID = e.ID

		if !onDisk[e.Filename] {
			issues = append(issues, fmt.Sprintf("entry %d references missing file: %s", e.ID, e.Filename))
		}
		if e.URL != urlBase+e.Filename {
			issues = append(issues, fmt.Sprintf("entry %d URL does not follow template: %s", e.ID, e.URL))
		}
	}

	if !ordered {
		issues = append(issues, "entries are not ordered by ascending id")
	}

	inManifest := make(map[string]bool, len(m.Images))
	for _, e := range m.Images {
		inManifest[e.Filename] = true
	}
	for _, f := range files {
		if !inManifest[f] {
			issues = append(issues, fmt.Sprintf("file on disk is not in the manifest: %s", f))
		}
	}

	if len(issues) == 0 {
		ui.SuccessMsg("Manifest is consistent with %s/", dir)
		return nil
	}

	for _, issue := range issues {
		ui.ErrorMsg("%s", issue)
	}
	fmt.Println("\n" + strings.Repeat("=", 40))
	fmt.Printf("Validation: %d issue(s) found\n", len(issues))
	fmt.Println("Run 'artscan generate' to rebuild the manifest")

	return fmt.Errorf("manifest has %d issue(s)", len(issues))
}
