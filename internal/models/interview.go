package models

// InterviewSession is the state of one scripted interview. Questions are
// generated once at start and never change; answers grow by exactly one per
// submitted answer, so CurrentIndex == len(Answers) always holds.
type InterviewSession struct {
	Questions    []string `json:"questions"`
	Answers      []string `json:"answers"`
	CurrentIndex int      `json:"current_index"`
}

// Completed reports whether every question has been answered.
func (s InterviewSession) Completed() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// EvaluationResult is the scored feedback for a completed interview.
type EvaluationResult struct {
	Score             float64  `json:"score"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	RecommendedSkills []string `json:"recommended_skills"`
	AlternateRoles    []string `json:"alternate_roles"`
	AvgWordsPerAnswer float64  `json:"avg_words_per_answer"`
}
