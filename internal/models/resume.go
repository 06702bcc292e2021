package models

// ResumeRecord is the analysis of one uploaded resume. It is built once per
// upload, stored in the candidate's session, and never mutated afterwards.
type ResumeRecord struct {
	Name          string         `json:"name"`
	JobRole       string         `json:"job_role"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Skills        []string       `json:"skills"`
	Degree        string         `json:"degree"`
	HasExperience bool           `json:"has_experience"`
	HasProject    bool           `json:"has_project"`
	RankScore     float64        `json:"rank_score"`
	Companies     []CompanyMatch `json:"companies"`
	ProfileImage  string         `json:"profile_image,omitempty"`
}

// CompanyMatch is one suggested company together with the skills that
// matched its requirements.
type CompanyMatch struct {
	Company       string   `json:"company"`
	MatchedSkills []string `json:"matched_skills"`
	MatchScore    int      `json:"match_score"`
}
