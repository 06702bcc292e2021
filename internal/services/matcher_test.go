package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyMatcherNoSkills(t *testing.T) {
	matcher := NewCompanyMatcherService(DefaultCompanyRequirements)

	assert.Empty(t, matcher.Match(nil))
	assert.Empty(t, matcher.Match([]string{}))
	assert.Empty(t, matcher.Match([]string{"cobol"}))
}

func TestCompanyMatcherEverySkill(t *testing.T) {
	matcher := NewCompanyMatcherService(DefaultCompanyRequirements)

	// The union of every company requirement matches the whole table.
	seen := map[string]struct{}{}
	var all []string
	for _, company := range DefaultCompanyRequirements {
		for _, skill := range company.Skills {
			if _, ok := seen[skill]; !ok {
				seen[skill] = struct{}{}
				all = append(all, skill)
			}
		}
	}

	matches := matcher.Match(all)
	require.Len(t, matches, len(DefaultCompanyRequirements))

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
}

func TestCompanyMatcherRanking(t *testing.T) {
	table := []CompanyRequirement{
		{Company: "Alpha", Skills: []string{"python", "sql"}},
		{Company: "Beta", Skills: []string{"python", "sql", "react"}},
		{Company: "Gamma", Skills: []string{"java"}},
		{Company: "Delta", Skills: []string{"python", "sql"}},
	}
	matcher := NewCompanyMatcherService(table)

	matches := matcher.Match([]string{"python", "sql", "react"})
	require.Len(t, matches, 3)

	assert.Equal(t, "Beta", matches[0].Company)
	assert.Equal(t, 3, matches[0].MatchScore)
	assert.Equal(t, []string{"python", "sql", "react"}, matches[0].MatchedSkills)

	// Alpha and Delta tie on two matches; the stable sort keeps table order.
	assert.Equal(t, "Alpha", matches[1].Company)
	assert.Equal(t, "Delta", matches[2].Company)
}

func TestCompanyMatcherExcludesZeroMatches(t *testing.T) {
	matcher := NewCompanyMatcherService(DefaultCompanyRequirements)

	matches := matcher.Match([]string{"java"})
	for _, match := range matches {
		assert.NotZero(t, match.MatchScore)
		assert.NotEmpty(t, match.MatchedSkills)
	}
}
