package services

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ImageExtractorService pulls the first embedded image out of a PDF, which
// on resumes is usually the profile picture. Pages are scanned in order and
// the scan stops at the first hit. Not finding an image, or failing to
// decode one, is not an error: the result is simply absent.
type ImageExtractorService interface {
	ExtractFirstImage(filePath string) (data []byte, ext string, found bool)
}

type imageExtractorService struct{}

func NewImageExtractorService() ImageExtractorService {
	return &imageExtractorService{}
}

// errFirstImageFound aborts the pdfcpu page walk once an image is captured.
var errFirstImageFound = errors.New("first image found")

// ExtractFirstImage implements ImageExtractorService.
func (s *imageExtractorService) ExtractFirstImage(filePath string) ([]byte, string, bool) {
	f, err := os.Open(filePath)
	if err != nil {
		log.Printf("⚠️  Image extraction failed for %s: %v\n", filePath, err)
		return nil, "", false
	}
	defer f.Close()

	var data []byte
	var ext string

	digest := func(img model.Image, singleImgPerPage bool, maxPageDigits int) error {
		b, err := io.ReadAll(img)
		if err != nil {
			return err
		}
		data = b
		ext = img.FileType
		return errFirstImageFound
	}

	if err := api.ExtractImages(f, nil, digest, nil); err != nil && !errors.Is(err, errFirstImageFound) {
		log.Printf("⚠️  Image extraction failed for %s: %v\n", filePath, err)
		return nil, "", false
	}

	if len(data) == 0 || ext == "" {
		return nil, "", false
	}

	return data, ext, true
}
