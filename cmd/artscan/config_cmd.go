package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/brandonbunt/artscan/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage artscan configuration",
		Long: `Commands for managing artscan configuration.

The config file is stored at: ~/.config/artscan/config.toml

Examples:
  artscan config init              # Create default config file
  artscan config show              # Display current configuration
  artscan config test              # Check configured paths
  artscan config path              # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigTestCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists() && !force {
				path, _ := config.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.ConfigPath()
			fmt.Printf("✓ Created config file: %s\n", path)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Edit the config file if your layout differs from art365")
			fmt.Println("  2. Run 'artscan config test' to check the paths")
			fmt.Println("  3. Run 'artscan generate' from the repository root")

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			path, _ := config.ConfigPath()
			if config.ConfigExists() {
				fmt.Printf("Config file: %s\n\n", path)
			} else {
				fmt.Printf("Config file: %s (not present, showing defaults)\n\n", path)
			}

			fmt.Println("=== Scan ===")
			fmt.Printf("Images dir: %s\n", cfg.Scan.ImagesDir)
			fmt.Printf("Output:     %s\n", cfg.Scan.Output)

			fmt.Println("\n=== GitHub ===")
			fmt.Printf("Owner:  %s\n", cfg.GitHub.Owner)
			fmt.Printf("Repo:   %s\n", cfg.GitHub.Repo)
			fmt.Printf("Branch: %s\n", cfg.GitHub.Branch)
			fmt.Printf("URLs:   %s<filename>\n", cfg.URLBase())

			fmt.Println("\n=== Logging ===")
			fmt.Printf("Level: %s\n", cfg.Logging.Level)
			if cfg.Logging.File != "" {
				fmt.Printf("File:  %s\n", cfg.Logging.File)
			} else {
				fmt.Println("File:  (disabled)")
			}

			return nil
		},
	}
}

func newConfigTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check configured paths",
		Long: `Verify that the images directory is readable and the manifest
location is writable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var errCount int

			fmt.Println("=== Images Directory ===")
			if err := testReadable(cfg.Scan.ImagesDir); err != nil {
				errCount++
				fmt.Printf("✗ %s (%v)\n", cfg.Scan.ImagesDir, err)
			} else {
				fmt.Printf("✓ %s\n", cfg.Scan.ImagesDir)
			}

			fmt.Println("\n=== Manifest Output ===")
			if err := testWritable(filepath.Dir(cfg.Scan.Output)); err != nil {
				errCount++
				fmt.Printf("✗ %s (%v)\n", cfg.Scan.Output, err)
			} else {
				fmt.Printf("✓ %s\n", cfg.Scan.Output)
			}

			if errCount > 0 {
				return fmt.Errorf("configuration has %d error(s)", errCount)
			}
			fmt.Println("\n✓ Configuration is valid")
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			if !config.ConfigExists() {
				fmt.Println("(file does not exist)")
			}
			return nil
		},
	}
}

func testReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("does not exist")
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	if _, err := os.ReadDir(path); err != nil {
		return fmt.Errorf("not readable")
	}
	return nil
}

func testWritable(dir string) error {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("does not exist")
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}

	testFile := filepath.Join(dir, fmt.Sprintf(".artscan_write_test_%d", time.Now().UnixNano()))
	f, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("not writable")
	}
	f.Close()
	os.Remove(testFile)
	return nil
}
