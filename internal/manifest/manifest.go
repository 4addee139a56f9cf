// Package manifest assembles and serializes the collection manifest.
package manifest

// Version is the manifest schema version written to every document.
const Version = "1.0"

// Entry is one parsed image's metadata record. Entries are built once
// during assembly and never mutated afterward.
type Entry struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
	Artist   string `json:"artist"`
	Year     int    `json:"year"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
}

// Manifest is the document written to disk. Images are ordered by
// ascending ID and TotalImages always equals len(Images).
type Manifest struct {
	Version     string  `json:"version"`
	TotalImages int     `json:"total_images"`
	Images      []Entry `json:"images"`
}
