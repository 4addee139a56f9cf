package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURLBase = "https://raw.githubusercontent.com/brandonbunt/art365/main/images/"

func TestAssemble(t *testing.T) {
	files := []string{
		"1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg",
		"42. Artist Name, 1872.jpg",
		"IMG_4021.jpg",
	}

	var skipped []string
	m := Assemble(files, testURLBase, nil, func(filename string, reason error) {
		skipped = append(skipped, filename)
	})

	require.Len(t, m.Images, 2)
	assert.Equal(t, Version, m.Version)
	assert.Equal(t, 2, m.TotalImages)
	assert.Equal(t, []string{"IMG_4021.jpg"}, skipped)

	sun := m.Images[0]
	assert.Equal(t, 1, sun.ID)
	assert.Equal(t, "1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg", sun.Filename)
	assert.Equal(t, "The Sun", sun.Title)
	assert.Equal(t, "Giuseppe Pellizza da Volpedo", sun.Artist)
	assert.Equal(t, 1904, sun.Year)
	assert.Equal(t, testURLBase+"1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg", sun.URL)

	untitled := m.Images[1]
	assert.Equal(t, 42, untitled.ID)
	assert.Empty(t, untitled.Title)
	assert.Equal(t, "Artist Name", untitled.Artist)
	assert.Equal(t, 1872, untitled.Year)
}

func TestAssemble_DuplicateIDFirstWins(t *testing.T) {
	files := []string{
		"7. First by Artist A, 1900.jpg",
		"7. Second by Artist B, 1901.jpg",
	}

	var skipped []string
	var reasons []error
	m := Assemble(files, testURLBase, nil, func(filename string, reason error) {
		skipped = append(skipped, filename)
		reasons = append(reasons, reason)
	})

	require.Len(t, m.Images, 1)
	assert.Equal(t, "First", m.Images[0].Title)
	assert.Equal(t, 1, m.TotalImages)
	require.Len(t, skipped, 1)
	assert.Equal(t, "7. Second by Artist B, 1901.jpg", skipped[0])
	assert.Contains(t, reasons[0].Error(), "duplicate id 7")
}

func TestAssemble_ProgressCallback(t *testing.T) {
	files := []string{"1. A by B, 1900.jpg", "2. C, 1901.jpg"}

	var seen []int
	Assemble(files, testURLBase, func(e Entry) {
		seen = append(seen, e.ID)
	}, nil)

	assert.Equal(t, []int{1, 2}, seen)
}

func TestAssemble_Empty(t *testing.T) {
	m := Assemble(nil, testURLBase, nil, nil)
	assert.Equal(t, 0, m.TotalImages)
	assert.NotNil(t, m.Images)
}

func TestWriteRoundTrip(t *testing.T) {
	m := Assemble([]string{
		"1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg",
		"42. Artist Name, 1872.jpg",
	}, testURLBase, nil, nil)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, Write(m, path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

	m := Assemble([]string{"1. A by B, 1900.jpg"}, testURLBase, nil, nil)
	require.NoError(t, Write(m, path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalImages)
}

func TestWrite_TitleOmittedWhenEmpty(t *testing.T) {
	m := Assemble([]string{"42. Artist Name, 1872.jpg"}, testURLBase, nil, nil)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, Write(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"title"`)
}

func TestWrite_FieldOrderAndIndent(t *testing.T) {
	m := Assemble([]string{"1. The Sun by Giuseppe Pellizza da Volpedo, 1904.jpg"}, testURLBase, nil, nil)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, Write(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// Stable top-level and entry field order, 2-space indentation.
	assert.True(t, strings.HasPrefix(text, "{\n  \"version\": \"1.0\",\n  \"total_images\": 1,\n  \"images\": ["), text)
	idIdx := strings.Index(text, `"id"`)
	titleIdx := strings.Index(text, `"title"`)
	urlIdx := strings.Index(text, `"url"`)
	assert.Greater(t, titleIdx, idIdx)
	assert.Greater(t, urlIdx, titleIdx)

	// Raw UTF-8, not escaped JSON.
	var roundTrip Manifest
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, "Giuseppe Pellizza da Volpedo", roundTrip.Images[0].Artist)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
