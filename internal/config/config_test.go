package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scan.ImagesDir != "images" {
		t.Errorf("expected images dir 'images', got %q", cfg.Scan.ImagesDir)
	}
	if cfg.Scan.Output != "manifest.json" {
		t.Errorf("expected output 'manifest.json', got %q", cfg.Scan.Output)
	}
	if cfg.GitHub.Owner != "brandonbunt" || cfg.GitHub.Repo != "art365" || cfg.GitHub.Branch != "main" {
		t.Errorf("unexpected github defaults: %+v", cfg.GitHub)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Logging.Level)
	}
}

func TestURLBase(t *testing.T) {
	cfg := DefaultConfig()
	want := "https://raw.githubusercontent.com/brandonbunt/art365/main/images/"
	if got := cfg.URLBase(); got != want {
		t.Errorf("URLBase() = %q, want %q", got, want)
	}

	cfg.GitHub = GitHubConfig{Owner: "someone", Repo: "gallery", Branch: "master"}
	want = "https://raw.githubusercontent.com/someone/gallery/master/images/"
	if got := cfg.URLBase(); got != want {
		t.Errorf("URLBase() = %q, want %q", got, want)
	}
}

func TestToTOML(t *testing.T) {
	cfg := DefaultConfig()
	toml := cfg.ToTOML()

	for _, want := range []string{
		`images_dir = "images"`,
		`output = "manifest.json"`,
		`owner = "brandonbunt"`,
		`repo = "art365"`,
		`branch = "main"`,
		`level = "info"`,
	} {
		if !strings.Contains(toml, want) {
			t.Errorf("ToTOML() missing %q", want)
		}
	}
}
