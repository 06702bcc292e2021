package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestExtractTextDegradesToEmpty(t *testing.T) {
	extractor := NewTextExtractorService()

	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{name: "corrupt pdf", filename: "broken.pdf", content: []byte("not a pdf at all")},
		{name: "corrupt docx", filename: "broken.docx", content: []byte("not a zip archive")},
		{name: "missing file", filename: "", content: nil},
		{name: "unknown extension", filename: "resume.txt", content: []byte("plain text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nowhere.pdf")
			if tt.filename != "" {
				path = writeTempFile(t, tt.filename, tt.content)
			}

			assert.Empty(t, extractor.ExtractText(path))
		})
	}
}

func TestDocxContentToText(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>C &amp; Go</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text := docxContentToText(content)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Software Engineer\n")
	assert.Contains(t, text, "C & Go")
	assert.NotContains(t, text, "<w:")
}

func TestExtractFirstImageDegrades(t *testing.T) {
	extractor := NewImageExtractorService()

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nowhere.pdf") },
		},
		{
			name: "corrupt pdf",
			path: func(t *testing.T) string { return writeTempFile(t, "broken.pdf", []byte("garbage")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, found := extractor.ExtractFirstImage(tt.path(t))
			assert.False(t, found)
			assert.Nil(t, data)
			assert.Empty(t, ext)
		})
	}
}
