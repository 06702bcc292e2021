package services

import (
	"math"
	"strings"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
)

// AnswerEvaluatorService scores a completed interview and derives feedback:
// strengths, improvements, recommended skills for the candidate's role and
// alternate roles their skill set qualifies them for.
type AnswerEvaluatorService interface {
	Evaluate(answers []string, resume *models.ResumeRecord) *models.EvaluationResult
}

type answerEvaluatorService struct {
	roles          []RoleRequirement
	alternateRules []AlternateRoleRule
}

func NewAnswerEvaluatorService(roles []RoleRequirement, alternateRules []AlternateRoleRule) AnswerEvaluatorService {
	return &answerEvaluatorService{
		roles:          roles,
		alternateRules: alternateRules,
	}
}

// canonicalQuestionCount is the answer count that earns the full completion
// half of the score.
const canonicalQuestionCount = 5

const (
	fallbackStrength    = "You completed the interview. Keep practicing to build confidence."
	fallbackImprovement = "No major gaps found. Keep refining your answers."
)

// Evaluate implements AnswerEvaluatorService. Callers must reject an empty
// answer list before getting here; answers that were submitted blank are
// still counted as answers.
func (e *answerEvaluatorService) Evaluate(answers []string, resume *models.ResumeRecord) *models.EvaluationResult {
	totalWords := 0
	maxWords := 0
	minWords := math.MaxInt
	for _, answer := range answers {
		words := len(strings.Fields(answer))
		totalWords += words
		if words > maxWords {
			maxWords = words
		}
		if words < minWords {
			minWords = words
		}
	}

	count := len(answers)
	avgWords := float64(totalWords) / math.Max(1, float64(count))

	depthScore := math.Min(avgWords/20, 5)
	completionScore := 5 * math.Min(1, float64(count)/canonicalQuestionCount)
	score := math.Round(clamp(depthScore+completionScore, 0, 10)*10) / 10

	joined := strings.ToLower(strings.Join(answers, " "))

	var strengths []string
	if avgWords > 25 {
		strengths = append(strengths, "You provide detailed and structured explanations.")
	}
	if strings.Contains(joined, "experience") {
		strengths = append(strengths, "You present your experience confidently.")
	}
	if maxWords > 40 {
		strengths = append(strengths, "You communicate with strong clarity.")
	}
	if resume != nil && containsAnySkill(joined, resume.Skills) {
		strengths = append(strengths, "You make good use of your technical skills.")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, fallbackStrength)
	}

	var improvements []string
	if avgWords < 20 {
		improvements = append(improvements, "Try to elaborate more on your answers.")
	}
	if !strings.Contains(joined, "project") {
		improvements = append(improvements, "Mention concrete projects and achievements.")
	}
	if count > 0 && minWords < 10 {
		improvements = append(improvements, "Some answers were too brief. Aim for fuller responses.")
	}
	if strings.Contains(joined, "error") {
		improvements = append(improvements, "Revise how you describe errors and your debugging approach.")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, fallbackImprovement)
	}

	return &models.EvaluationResult{
		Score:             score,
		Strengths:         strengths,
		Improvements:      improvements,
		RecommendedSkills: e.recommendSkills(resume),
		AlternateRoles:    e.alternateRoles(resume),
		AvgWordsPerAnswer: avgWords,
	}
}

// recommendSkills returns the matched role's required skills that are not
// already on the resume. With no matching role, or nothing missing, it falls
// back to the generic soft-skill list.
func (e *answerEvaluatorService) recommendSkills(resume *models.ResumeRecord) []string {
	if resume == nil {
		return GenericRecommendedSkills
	}

	have := make(map[string]struct{}, len(resume.Skills))
	for _, skill := range resume.Skills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	role := strings.ToLower(resume.JobRole)
	for _, requirement := range e.roles {
		if !strings.Contains(role, requirement.Role) {
			continue
		}

		var missing []string
		for _, skill := range requirement.Skills {
			if _, ok := have[strings.ToLower(skill)]; !ok {
				missing = append(missing, skill)
			}
		}

		if len(missing) == 0 {
			return GenericRecommendedSkills
		}
		return missing
	}

	return GenericRecommendedSkills
}

// alternateRoles reports every rule whose full skill set is present on the
// resume, in rule declaration order. The result may be empty.
func (e *answerEvaluatorService) alternateRoles(resume *models.ResumeRecord) []string {
	if resume == nil {
		return nil
	}

	have := make(map[string]struct{}, len(resume.Skills))
	for _, skill := range resume.Skills {
		have[strings.ToLower(skill)] = struct{}{}
	}

	var roles []string
	for _, rule := range e.alternateRules {
		qualified := true
		for _, skill := range rule.Skills {
			if _, ok := have[strings.ToLower(skill)]; !ok {
				qualified = false
				break
			}
		}
		if qualified {
			roles = append(roles, rule.Role)
		}
	}

	return roles
}

func containsAnySkill(joined string, skills []string) bool {
	for _, skill := range skills {
		if strings.Contains(joined, strings.ToLower(skill)) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
