package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
	"github.com/saranshsahu123/pre-ai-interview/internal/services"
)

type UploadHandler struct {
	storage     services.StorageService
	analyzer    services.ResumeAnalyzerService
	store       *session.Store
	maxFileSize int64
}

func NewUploadHandler(
	storage services.StorageService,
	analyzer services.ResumeAnalyzerService,
	store *session.Store,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storage:     storage,
		analyzer:    analyzer,
		store:       store,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /resume/upload. The uploaded file is stored,
// analyzed synchronously and the resulting record is kept in the session for
// the interview flow. A new upload replaces the previous record and discards
// any interview in progress.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a file under the 'resume' field.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Please upload a PDF or DOCX file.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	record := h.analyzer.Analyze(filePath)

	sess, err := h.store.Get(c)
	if err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	if err := putJSON(sess, sessionKeyResumeRecord, record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store resume analysis",
		})
	}
	sess.Delete(sessionKeyInterview)

	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message: "Resume uploaded and analyzed successfully!",
		Resume:  record,
	})
}
