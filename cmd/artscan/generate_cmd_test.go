package main

import (
	"testing"

	"github.com/brandonbunt/artscan/internal/manifest"
	"github.com/brandonbunt/artscan/internal/ui"
)

func TestEntryLine(t *testing.T) {
	ui.DisableColors()

	tests := []struct {
		name  string
		entry manifest.Entry
		want  string
	}{
		{
			name: "Titled entry",
			entry: manifest.Entry{
				ID:     1,
				Title:  "The Sun",
				Artist: "Giuseppe Pellizza da Volpedo",
				Year:   1904,
			},
			want: "  1. The Sun by Giuseppe Pellizza da Volpedo, 1904",
		},
		{
			name: "Untitled entry",
			entry: manifest.Entry{
				ID:     42,
				Artist: "Artist Name",
				Year:   1872,
			},
			want: " 42. Artist Name, 1872",
		},
		{
			name: "Three digit id keeps column width",
			entry: manifest.Entry{
				ID:     365,
				Title:  "Water Lilies",
				Artist: "Claude Monet",
				Year:   1906,
			},
			want: "365. Water Lilies by Claude Monet, 1906",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entryLine(tt.entry); got != tt.want {
				t.Errorf("entryLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
