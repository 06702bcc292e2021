package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFieldExtractor() FieldExtractorService {
	return NewFieldExtractorService(DefaultSkillVocabulary, DefaultDegreeRanks)
}

func TestFieldExtractorEmptyText(t *testing.T) {
	extractor := newTestFieldExtractor()

	for _, text := range []string{"", "   \n \n\t\n"} {
		fields := extractor.Extract(text)

		assert.Equal(t, "Unknown", fields.Name)
		assert.Equal(t, "Not found", fields.JobRole)
		assert.Equal(t, "Not Found", fields.Email)
		assert.Equal(t, "Not Found", fields.Phone)
		assert.Empty(t, fields.Skills)
		assert.Equal(t, "Unknown", fields.Degree)
		assert.Zero(t, fields.DegreeScore)
		assert.False(t, fields.HasExperience)
		assert.False(t, fields.HasProject)
	}
}

func TestFieldExtractorFullResume(t *testing.T) {
	extractor := newTestFieldExtractor()

	text := "Jane Doe\nSoftware Engineer\nEmail: jane@x.com\nSkills: python, sql\nphd experience project"
	fields := extractor.Extract(text)

	assert.Equal(t, "Jane Doe", fields.Name)
	assert.Equal(t, "Software Engineer", fields.JobRole)
	assert.Equal(t, "jane@x.com", fields.Email)
	assert.Subset(t, fields.Skills, []string{"python", "sql"})
	assert.Equal(t, "PHD", fields.Degree)
	assert.Equal(t, 5, fields.DegreeScore)
	assert.True(t, fields.HasExperience)
	assert.True(t, fields.HasProject)
}

func TestFieldExtractorName(t *testing.T) {
	extractor := newTestFieldExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "digits and punctuation stripped",
			text: "John O'Brien-Smith 3rd\nDeveloper",
			want: "John OBrienSmith rd",
		},
		{
			name: "leading blank lines skipped",
			text: "\n\n  Priya Sharma  \nData Analyst",
			want: "Priya Sharma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.text).Name)
		})
	}
}

func TestFieldExtractorSkillOrderStable(t *testing.T) {
	extractor := newTestFieldExtractor()

	// Mentions are deliberately out of vocabulary order.
	text := "Header\nRole\nI know react, SQL, Python and Linux plus git"

	first := extractor.Extract(text).Skills
	second := extractor.Extract(text).Skills

	require.Equal(t, []string{"python", "sql", "react", "linux", "git"}, first)
	assert.Equal(t, first, second)
}

func TestFieldExtractorWholeWordMatching(t *testing.T) {
	extractor := newTestFieldExtractor()

	tests := []struct {
		name  string
		text  string
		skill string
		found bool
	}{
		{name: "java not matched inside javascript", text: "loves javascript", skill: "java", found: false},
		{name: "java matched standalone", text: "loves java and more", skill: "java", found: true},
		{name: "case insensitive", text: "PYTHON developer", skill: "python", found: true},
		// A trailing word boundary after '+' needs a following word
		// character, so "c++" before a space is not matched. Matching
		// behavior is intentionally preserved from the original pattern.
		{name: "c++ before space not matched", text: "knows c++ well", skill: "c++", found: false},
		{name: "multi word skill", text: "did shell scripting daily", skill: "shell scripting", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := extractor.Extract(tt.text).Skills
			if tt.found {
				assert.Contains(t, skills, tt.skill)
			} else {
				assert.NotContains(t, skills, tt.skill)
			}
		})
	}
}

func TestFieldExtractorPhoneBestEffort(t *testing.T) {
	extractor := newTestFieldExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "dashed", text: "call 987-654-3210 anytime", want: "987-654-3210"},
		{name: "continuous digits", text: "contact 9876543210 now", want: "9876543210"},
		{name: "parenthesized area code", text: "tel (0123) 456-7890", want: "(0123) 456-7890"},
		// Anything with three close digit groups looks like a phone
		// number to the loose pattern. That false positive is accepted
		// behavior.
		{name: "part number false positive", text: "SKU 100-200-3000 in stock", want: "100-200-3000"},
		{name: "no digits", text: "no numbers here", want: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.text).Phone)
		})
	}
}

func TestFieldExtractorDegreeFirstMatchWins(t *testing.T) {
	extractor := newTestFieldExtractor()

	tests := []struct {
		name   string
		text   string
		degree string
		rank   int
	}{
		{name: "single degree", text: "holds an M.Tech degree", degree: "M.TECH", rank: 4},
		// b.tech comes before phd in the table, so it wins even though
		// phd ranks higher.
		{name: "table order beats rank", text: "phd after b.tech", degree: "B.TECH", rank: 3},
		{name: "case insensitive", text: "PHD in CS", degree: "PHD", rank: 5},
		{name: "none", text: "self taught", degree: "Unknown", rank: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := extractor.Extract(tt.text)
			assert.Equal(t, tt.degree, fields.Degree)
			assert.Equal(t, tt.rank, fields.DegreeScore)
		})
	}
}

func TestFieldExtractorExperienceMarkers(t *testing.T) {
	extractor := newTestFieldExtractor()

	assert.True(t, extractor.Extract("had an Internship at X").HasExperience)
	assert.True(t, extractor.Extract("Worked at BigCo").HasExperience)
	assert.False(t, extractor.Extract("enthusiastic fresher").HasExperience)
	assert.True(t, extractor.Extract("built a side Project").HasProject)
}
