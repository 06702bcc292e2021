package services

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
)

// ResumeAnalyzerService runs the full analysis pipeline on a stored upload:
// text extraction, field extraction, rank scoring, company matching and, for
// PDFs, profile image extraction. Extraction failures degrade to defaults
// instead of failing the call.
type ResumeAnalyzerService interface {
	Analyze(filePath string) *models.ResumeRecord
}

type resumeAnalyzerService struct {
	textExtractor  TextExtractorService
	imageExtractor ImageExtractorService
	fieldExtractor FieldExtractorService
	scorer         ResumeScorerService
	matcher        CompanyMatcherService
	storage        StorageService
}

func NewResumeAnalyzerService(
	textExtractor TextExtractorService,
	imageExtractor ImageExtractorService,
	fieldExtractor FieldExtractorService,
	scorer ResumeScorerService,
	matcher CompanyMatcherService,
	storage StorageService,
) ResumeAnalyzerService {
	return &resumeAnalyzerService{
		textExtractor:  textExtractor,
		imageExtractor: imageExtractor,
		fieldExtractor: fieldExtractor,
		scorer:         scorer,
		matcher:        matcher,
		storage:        storage,
	}
}

// Analyze implements ResumeAnalyzerService.
func (s *resumeAnalyzerService) Analyze(filePath string) *models.ResumeRecord {
	text := s.textExtractor.ExtractText(filePath)
	fields := s.fieldExtractor.Extract(text)

	record := &models.ResumeRecord{
		Name:          fields.Name,
		JobRole:       fields.JobRole,
		Email:         fields.Email,
		Phone:         fields.Phone,
		Skills:        fields.Skills,
		Degree:        fields.Degree,
		HasExperience: fields.HasExperience,
		HasProject:    fields.HasProject,
		RankScore:     s.scorer.Score(fields),
		Companies:     s.matcher.Match(fields.Skills),
	}

	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		if data, ext, found := s.imageExtractor.ExtractFirstImage(filePath); found {
			filename, err := s.storage.SaveProfileImage(data, ext)
			if err != nil {
				log.Printf("⚠️  Failed to save profile image: %v\n", err)
			} else {
				record.ProfileImage = "/media/" + filename
			}
		}
	}

	return record
}
