package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1. A by Claude Monet, 1872.jpg"), make([]byte, 100), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2. B by Claude Monet, 1875.jpg"), make([]byte, 50), 0644))

	m := Assemble([]string{
		"1. A by Claude Monet, 1872.jpg",
		"2. B by Claude Monet, 1875.jpg",
		"3. C by Edvard Munch, 1893.jpg", // not on disk, contributes zero bytes
	}, testURLBase, nil, nil)

	s := Collect(m, dir)

	assert.Equal(t, 3, s.TotalEntries)
	assert.Equal(t, int64(150), s.TotalBytes)
	assert.Equal(t, 2, s.ByArtist["Claude Monet"])
	assert.Equal(t, 1, s.ByArtist["Edvard Munch"])
	assert.Equal(t, 1, s.ByYear[1872])
	assert.Equal(t, 1872, s.YearMin)
	assert.Equal(t, 1893, s.YearMax)
}

func TestStatsArtists_CollationOrder(t *testing.T) {
	s := &Stats{ByArtist: map[string]int{
		"Vincent van Gogh": 1,
		"Édouard Manet":    1,
		"Claude Monet":     1,
	}}

	// Collation places É with E, where a byte sort would push it last.
	assert.Equal(t, []string{"Claude Monet", "Édouard Manet", "Vincent van Gogh"}, s.Artists())
}
