package manifest

import (
	"os"
	"path/filepath"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Stats summarizes an assembled manifest for console reporting.
type Stats struct {
	TotalEntries int
	TotalBytes   int64
	ByArtist     map[string]int
	ByYear       map[int]int
	YearMin      int
	YearMax      int
}

// Collect walks the manifest and gathers per-artist and per-year counts.
// File sizes come from dir; entries whose file is missing contribute zero
// bytes rather than failing the report.
func Collect(m *Manifest, dir string) *Stats {
	s := &Stats{
		TotalEntries: len(m.Images),
		ByArtist:     make(map[string]int),
		ByYear:       make(map[int]int),
	}

	for _, e := range m.Images {
		s.ByArtist[e.Artist]++
		s.ByYear[e.Year]++

		if s.YearMin == 0 || e.Year < s.YearMin {
			s.YearMin = e.Year
		}
		if e.Year > s.YearMax {
			s.YearMax = e.Year
		}

		if info, err := os.Stat(filepath.Join(dir, e.Filename)); err == nil {
			s.TotalBytes += info.Size()
		}
	}

	return s
}

// Artists returns the artist names in locale-aware collation order, so
// accented names sort where a reader expects them.
func (s *Stats) Artists() []string {
	artists := make([]string, 0, len(s.ByArtist))
	for artist := range s.ByArtist {
		artists = append(artists, artist)
	}

	collate.New(language.English).SortStrings(artists)
	return artists
}
