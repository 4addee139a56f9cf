// Package naming parses artwork metadata out of collection filenames.
//
// The collection uses a flat naming grammar:
//
//	"1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg"
//	"42. Artist Name, 1872.jpg"
//
// The second form carries no title and exists for pieces catalogued by
// artist only.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ArtworkInfo holds the metadata segments extracted from one filename.
type ArtworkInfo struct {
	Number int
	Title  string // empty when the filename carries no title
	Artist string
	Year   int
}

var (
	// Titled grammar: "<number>. <title> by <artist>, <year>".
	// Title and artist are non-greedy, so a title containing " by "
	// mis-segments at the first occurrence. That ambiguity is inherent
	// to the grammar; matching is first-wins, same as the tooling that
	// named these files.
	titledRegex = regexp.MustCompile(`^(\d+)\.\s*(.+?)\s+by\s+(.+?),\s*(\d{4})`)

	// Untitled grammar: "<number>. <artist>, <year>".
	untitledRegex = regexp.MustCompile(`^(\d+)\.\s*(.+?),\s*(\d{4})`)

	leadingNumberRegex = regexp.MustCompile(`^(\d+)`)
)

// ParseArtworkName extracts (number, title, artist, year) from a collection
// filename. The extension is stripped before matching. The titled grammar is
// tried first, the untitled grammar only if it fails. An error means the
// filename follows neither grammar.
func ParseArtworkName(filename string) (*ArtworkInfo, error) {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if m := titledRegex.FindStringSubmatch(name); m != nil {
		number, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[4])
		return &ArtworkInfo{
			Number: number,
			Title:  strings.TrimSpace(m[2]),
			Artist: strings.TrimSpace(m[3]),
			Year:   year,
		}, nil
	}

	if m := untitledRegex.FindStringSubmatch(name); m != nil {
		number, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return &ArtworkInfo{
			Number: number,
			Artist: strings.TrimSpace(m[2]),
			Year:   year,
		}, nil
	}

	return nil, fmt.Errorf("filename does not match collection grammar: %s", filename)
}

// LeadingNumber returns the base-10 value of the digits at the start of a
// filename. Sorting uses this independently of the full grammar so that
// parseable and unparseable files keep a deterministic order.
func LeadingNumber(filename string) (int, bool) {
	m := leadingNumberRegex.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Describe renders the parsed segments back in catalog form, used for
// progress lines.
func (a *ArtworkInfo) Describe() string {
	if a.Title != "" {
		return fmt.Sprintf("%s by %s, %d", a.Title, a.Artist, a.Year)
	}
	return fmt.Sprintf("%s, %d", a.Artist, a.Year)
}
