package services

import (
	"fmt"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
)

// InterviewService generates the scripted question list and advances the
// session state. Questions are a pure function of the resume record; they
// are generated exactly once per session and never change mid-interview.
type InterviewService interface {
	GenerateQuestions(resume *models.ResumeRecord) []string
	Start(resume *models.ResumeRecord) models.InterviewSession
	Advance(session models.InterviewSession, answer string) models.InterviewSession
}

type interviewService struct{}

func NewInterviewService() InterviewService {
	return &interviewService{}
}

// GenerateQuestions implements InterviewService. Two questions are templated
// from resume facts and fall back to a generic wording when the fact is
// missing.
func (s *interviewService) GenerateQuestions(resume *models.ResumeRecord) []string {
	intro := "Tell me about yourself and your professional journey."
	if resume != nil && resume.JobRole != "" && resume.JobRole != "Not found" {
		intro = fmt.Sprintf("Tell me about yourself and your journey as a %s.", resume.JobRole)
	}

	skill := "Which technology are you most comfortable with, and why?"
	if resume != nil && len(resume.Skills) > 0 {
		skill = fmt.Sprintf("How have you applied %s in a real project or assignment?", resume.Skills[0])
	}

	return []string{
		intro,
		"Tell me about your most challenging project.",
		skill,
		"Describe how you approach debugging a complex problem.",
		"What are your strengths as a developer?",
		"Why are you interested in this position?",
	}
}

// Start implements InterviewService.
func (s *interviewService) Start(resume *models.ResumeRecord) models.InterviewSession {
	return models.InterviewSession{
		Questions:    s.GenerateQuestions(resume),
		Answers:      []string{},
		CurrentIndex: 0,
	}
}

// Advance implements InterviewService. It returns a new session value
// instead of mutating the input, so a stored session is only replaced once
// the step has fully succeeded. An already-completed session is returned
// unchanged.
func (s *interviewService) Advance(session models.InterviewSession, answer string) models.InterviewSession {
	if session.Completed() {
		return session
	}

	answers := make([]string, 0, len(session.Answers)+1)
	answers = append(answers, session.Answers...)
	answers = append(answers, answer)

	return models.InterviewSession{
		Questions:    session.Questions,
		Answers:      answers,
		CurrentIndex: session.CurrentIndex + 1,
	}
}
