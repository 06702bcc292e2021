package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type ResultHandler struct {
	store *session.Store
}

func NewResultHandler(store *session.Store) *ResultHandler {
	return &ResultHandler{store: store}
}

// HandleGetResult handles GET /resume/result
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	record, ok := resumeFromSession(sess)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Please upload your resume first.",
			"next":  "/api/v1/resume/upload",
		})
	}

	return c.JSON(record)
}
