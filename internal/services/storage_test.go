package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStorage(t *testing.T) StorageService {
	t.Helper()

	base := t.TempDir()
	storage := NewStorageService(filepath.Join(base, "uploads"), filepath.Join(base, "media"))
	require.NoError(t, storage.EnsureDirs())
	return storage
}

func TestSaveResume(t *testing.T) {
	storage := newTestStorage(t)

	tests := []struct {
		name     string
		filename string
		wantExt  string
		wantErr  error
	}{
		{name: "pdf accepted", filename: "resume.pdf", wantExt: ".pdf"},
		{name: "docx accepted", filename: "Resume.DOCX", wantExt: ".docx"},
		{name: "text rejected", filename: "resume.txt", wantErr: ErrUnsupportedFormat},
		{name: "doc rejected", filename: "resume.doc", wantErr: ErrUnsupportedFormat},
		{name: "no extension rejected", filename: "resume", wantErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := multipartFileHeader(t, tt.filename, []byte("content"))
			filename, path, err := storage.SaveResume(header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(filename, "resume_"))
			assert.True(t, strings.HasSuffix(filename, tt.wantExt))

			saved, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte("content"), saved)
		})
	}
}

func TestSaveResumeUniqueNames(t *testing.T) {
	storage := newTestStorage(t)

	header := multipartFileHeader(t, "resume.pdf", []byte("content"))

	first, _, err := storage.SaveResume(header)
	require.NoError(t, err)
	second, _, err := storage.SaveResume(header)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveProfileImage(t *testing.T) {
	base := t.TempDir()
	mediaPath := filepath.Join(base, "media")
	storage := NewStorageService(filepath.Join(base, "uploads"), mediaPath)
	require.NoError(t, storage.EnsureDirs())

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	filename, err := storage.SaveProfileImage(data, "png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "profile_"))
	assert.True(t, strings.HasSuffix(filename, ".png"))

	saved, err := os.ReadFile(filepath.Join(mediaPath, filename))
	require.NoError(t, err)
	assert.Equal(t, data, saved)
}
