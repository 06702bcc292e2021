package models

type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UploadResponse struct {
	Message string        `json:"message"`
	Resume  *ResumeRecord `json:"resume"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type QuestionResponse struct {
	Question       string `json:"question"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
	Completed      bool   `json:"completed"`
}

type FeedbackResponse struct {
	Evaluation *EvaluationResult `json:"evaluation"`
	Resume     *ResumeRecord     `json:"resume"`
}
