package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
)

// Session keys. Records are stored as JSON strings so a stored value always
// round-trips to an identical record regardless of the session backend.
const (
	sessionKeyCandidateEmail = "candidate_email"
	sessionKeyResumeRecord   = "resume_record"
	sessionKeyInterview      = "interview_session"
)

func putJSON(sess *session.Session, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal session value %q: %w", key, err)
	}

	sess.Set(key, string(data))
	return nil
}

func getJSON(sess *session.Session, key string, v any) bool {
	raw, ok := sess.Get(key).(string)
	if !ok || raw == "" {
		return false
	}

	return json.Unmarshal([]byte(raw), v) == nil
}

func resumeFromSession(sess *session.Session) (*models.ResumeRecord, bool) {
	var record models.ResumeRecord
	if !getJSON(sess, sessionKeyResumeRecord, &record) {
		return nil, false
	}
	return &record, true
}

func interviewFromSession(sess *session.Session) (models.InterviewSession, bool) {
	var interview models.InterviewSession
	if !getJSON(sess, sessionKeyInterview, &interview) {
		return models.InterviewSession{}, false
	}
	return interview, true
}
