package services

import "math"

type ResumeScorerService interface {
	Score(fields ExtractedFields) float64
}

type resumeScorerService struct{}

func NewResumeScorerService() ResumeScorerService {
	return &resumeScorerService{}
}

// Score implements ResumeScorerService. The raw total is normalized against
// a nominal maximum of 20 points and rounded to two decimals. It is not
// clamped: a resume listing enough skills can score above 10, and callers
// are expected to tolerate that.
func (s *resumeScorerService) Score(fields ExtractedFields) float64 {
	rawTotal := fields.DegreeScore + len(fields.Skills)
	if fields.HasProject {
		rawTotal += 2
	}
	if fields.HasExperience {
		rawTotal++
	}

	return math.Round(float64(rawTotal)/20*10*100) / 100
}
