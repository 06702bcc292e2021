package services

import (
	"sort"

	"github.com/saranshsahu123/pre-ai-interview/internal/models"
)

type CompanyMatcherService interface {
	Match(skills []string) []models.CompanyMatch
}

type companyMatcherService struct {
	companies []CompanyRequirement
}

func NewCompanyMatcherService(companies []CompanyRequirement) CompanyMatcherService {
	return &companyMatcherService{companies: companies}
}

// Match implements CompanyMatcherService. Companies with no skill overlap
// are left out entirely. Results are sorted by overlap size descending; the
// stable sort keeps table declaration order for ties.
func (s *companyMatcherService) Match(skills []string) []models.CompanyMatch {
	have := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		have[skill] = struct{}{}
	}

	var matches []models.CompanyMatch
	for _, company := range s.companies {
		var matched []string
		for _, required := range company.Skills {
			if _, ok := have[required]; ok {
				matched = append(matched, required)
			}
		}

		if len(matched) > 0 {
			matches = append(matches, models.CompanyMatch{
				Company:       company.Company,
				MatchedSkills: matched,
				MatchScore:    len(matched),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches
}
