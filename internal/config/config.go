// Package config loads and saves artscan configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/brandonbunt/artscan/internal/logging"
	"github.com/brandonbunt/artscan/internal/paths"
)

// ScanConfig controls where images come from and where the manifest goes.
type ScanConfig struct {
	ImagesDir string `mapstructure:"images_dir"`
	Output    string `mapstructure:"output"`
}

// GitHubConfig identifies the repository the raw image URLs point at.
type GitHubConfig struct {
	Owner  string `mapstructure:"owner"`
	Repo   string `mapstructure:"repo"`
	Branch string `mapstructure:"branch"`
}

type Config struct {
	Scan    ScanConfig     `mapstructure:"scan"`
	GitHub  GitHubConfig   `mapstructure:"github"`
	Logging logging.Config `mapstructure:"logging"`
}

// DefaultConfig returns the baked-in defaults: the art365 repository layout.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			ImagesDir: "images",
			Output:    "manifest.json",
		},
		GitHub: GitHubConfig{
			Owner:  "brandonbunt",
			Repo:   "art365",
			Branch: "main",
		},
		Logging: logging.DefaultConfig(),
	}
}

// URLBase returns the prefix every entry URL is built from. The filename is
// appended verbatim, spaces included, matching how the raw endpoint serves
// these files.
func (c *Config) URLBase() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/images/",
		c.GitHub.Owner, c.GitHub.Repo, c.GitHub.Branch)
}

// Load reads the config file if present, layered over defaults.
func Load() (*Config, error) {
	v := viper.New()

	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// ConfigPath returns the config file location.
func ConfigPath() (string, error) {
	return paths.ConfigPath()
}

// ConfigExists reports whether a config file is present.
func ConfigExists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ToTOML renders the config as a commented TOML document for config init.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# artscan configuration
# Generated by: artscan config init

# ============================================================================
# SCAN
# Where the collection images live and where the manifest is written.
# Paths are relative to the directory artscan runs from.
# ============================================================================
[scan]
images_dir = "%s"
output = "%s"

# ============================================================================
# GITHUB
# Repository the entry URLs point at:
#   https://raw.githubusercontent.com/<owner>/<repo>/<branch>/images/<file>
# ============================================================================
[github]
owner = "%s"
repo = "%s"
branch = "%s"

# ============================================================================
# LOGGING
# Leave file empty to disable the log file. Console output is unaffected.
# ============================================================================
[logging]
level = "%s"
file = "%s"
max_size_mb = %d
max_backups = %d
`,
		c.Scan.ImagesDir,
		c.Scan.Output,
		c.GitHub.Owner,
		c.GitHub.Repo,
		c.GitHub.Branch,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}
