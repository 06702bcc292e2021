package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned for uploads that are not PDF or DOCX.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format: only .pdf and .docx are accepted")

type StorageService interface {
	SaveResume(file *multipart.FileHeader) (string, string, error)
	SaveProfileImage(data []byte, ext string) (string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureDirs() error
}

type storageService struct {
	uploadPath string
	mediaPath  string
}

func NewStorageService(uploadPath, mediaPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		mediaPath:  mediaPath,
	}
}

func (s *storageService) EnsureDirs() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.MkdirAll(s.mediaPath, 0755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}

	return nil
}

// SaveResume stores an uploaded resume under a unique name and returns the
// generated filename and its full path. Only PDF and DOCX files are
// accepted; the extension check here is the upload format gate for the
// whole pipeline.
func (s *storageService) SaveResume(file *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return "", "", ErrUnsupportedFormat
	}

	// Generate the unique filename
	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

// SaveProfileImage writes an extracted profile image into the media
// directory under a collision-free name and returns the filename.
func (s *storageService) SaveProfileImage(data []byte, ext string) (string, error) {
	filename := fmt.Sprintf("profile_%s.%s", uuid.New().String(), strings.TrimPrefix(ext, "."))
	filePath := filepath.Join(s.mediaPath, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save profile image: %w", err)
	}

	return filename, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
