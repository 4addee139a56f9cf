// Package scanner lists the image files that make up a collection
// directory, in manifest order.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brandonbunt/artscan/internal/naming"
)

// ErrDirectoryNotFound reports a missing or non-directory collection path.
// This is the only fatal condition of a scan.
var ErrDirectoryNotFound = errors.New("directory not found")

// Files without a leading number sort after every numbered file.
const unnumberedSortKey = 1<<31 - 1

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsImageFile reports whether the path has a collection image extension.
// The check is case-insensitive; everything else is silently excluded.
func IsImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// ListImages returns the image filenames in dir ordered by ascending leading
// numeric prefix. The sort is stable, so unnumbered files keep directory
// order after all numbered ones.
func ListImages(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return sortKey(files[i]) < sortKey(files[j])
	})

	return files, nil
}

func sortKey(filename string) int {
	if n, ok := naming.LeadingNumber(filename); ok {
		return n
	}
	return unnumberedSortKey
}
