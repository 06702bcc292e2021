package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
	"github.com/saranshsahu123/pre-ai-interview/internal/services"
)

type InterviewHandler struct {
	interview services.InterviewService
	evaluator services.AnswerEvaluatorService
	store     *session.Store
}

func NewInterviewHandler(
	interview services.InterviewService,
	evaluator services.AnswerEvaluatorService,
	store *session.Store,
) *InterviewHandler {
	return &InterviewHandler{
		interview: interview,
		evaluator: evaluator,
		store:     store,
	}
}

// HandleStart handles POST /interview/start. Starting again discards any
// interview in progress and generates a fresh question list.
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
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

	interview := h.interview.Start(record)
	if err := putJSON(sess, sessionKeyInterview, interview); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store interview session",
		})
	}
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}

	return c.JSON(models.QuestionResponse{
		Question:       interview.Questions[0],
		QuestionNumber: 1,
		TotalQuestions: len(interview.Questions),
	})
}

// HandleAnswer handles POST /interview/answer
func (h *InterviewHandler) HandleAnswer(c *fiber.Ctx) error {
	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	interview, ok := interviewFromSession(sess)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No interview in progress. Start one first.",
			"next":  "/api/v1/interview/start",
		})
	}

	if interview.Completed() {
		return c.JSON(models.QuestionResponse{
			QuestionNumber: len(interview.Questions),
			TotalQuestions: len(interview.Questions),
			Completed:      true,
		})
	}

	interview = h.interview.Advance(interview, req.Answer)
	if err := putJSON(sess, sessionKeyInterview, interview); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store interview session",
		})
	}
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save session",
		})
	}

	if interview.Completed() {
		return c.JSON(models.QuestionResponse{
			QuestionNumber: len(interview.Questions),
			TotalQuestions: len(interview.Questions),
			Completed:      true,
		})
	}

	return c.JSON(models.QuestionResponse{
		Question:       interview.Questions[interview.CurrentIndex],
		QuestionNumber: interview.CurrentIndex + 1,
		TotalQuestions: len(interview.Questions),
	})
}

// HandleFeedback handles GET /interview/feedback
func (h *InterviewHandler) HandleFeedback(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	interview, ok := interviewFromSession(sess)
	if !ok || len(interview.Answers) == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No answers found.",
			"next":  "/api/v1/interview/start",
		})
	}

	record, _ := resumeFromSession(sess)
	evaluation := h.evaluator.Evaluate(interview.Answers, record)

	return c.JSON(models.FeedbackResponse{
		Evaluation: evaluation,
		Resume:     record,
	})
}
