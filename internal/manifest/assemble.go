package manifest

import (
	"fmt"

	"github.com/brandonbunt/artscan/internal/naming"
)

// EntryFunc is called once per successfully parsed file.
type EntryFunc func(e Entry)

// SkipFunc is called once per file excluded from the manifest, with the
// reason it was skipped.
type SkipFunc func(filename string, reason error)

// Assemble builds a manifest from an ordered list of image filenames.
// Files that match neither grammar are skipped, not fatal. A file whose
// number collides with an earlier entry is also skipped so that IDs stay
// unique; the first occurrence wins.
//
// The input order is preserved, so callers pass filenames already sorted
// by leading numeric prefix.
func Assemble(files []string, urlBase string, onEntry EntryFunc, onSkip SkipFunc) *Manifest {
	m := &Manifest{
		Version: Version,
		Images:  []Entry{},
	}

	seen := make(map[int]string, len(files))

	for _, filename := range files {
		info, err := naming.ParseArtworkName(filename)
		if err != nil {
			if onSkip != nil {
				onSkip(filename, err)
			}
			continue
		}

		if prev, ok := seen[info.Number]; ok {
			if onSkip != nil {
				onSkip(filename, fmt.Errorf("duplicate id %d (already used by %s)", info.Number, prev))
			}
			continue
		}
		seen[info.Number] = filename

		entry := Entry{
			ID:       info.Number,
			Filename: filename,
			Artist:   info.Artist,
			Year:     info.Year,
			Title:    info.Title,
			URL:      urlBase + filename,
		}
		m.Images = append(m.Images, entry)

		if onEntry != nil {
			onEntry(entry)
		}
	}

	m.TotalImages = len(m.Images)
	return m
}
