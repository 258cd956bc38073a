package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJobPosting = `We are hiring a Backend Engineer.
Skills: Go, PostgreSQL, Docker
Experience in distributed systems; knowledge of Kubernetes.
Required: Python, SQL. 3+ years experience. Bachelor's degree required.
Familiarity with agile and ci/cd pipelines is a plus.`

func TestExtract_SkillPhrases(t *testing.T) {
	result := Extract(sampleJobPosting)

	assert.Contains(t, result.Skills, "Python")
	assert.Contains(t, result.Skills, "SQL")
	assert.Contains(t, result.Skills, "PostgreSQL")
	assert.Contains(t, result.Skills, "Docker")
	assert.Contains(t, result.Skills, "Kubernetes")
}

func TestExtract_SkillsDropShortPhrases(t *testing.T) {
	result := Extract("Skills: Go, R, C")
	for _, skill := range result.Skills {
		assert.Greater(t, len(skill), 2, "skill %q should have been filtered", skill)
	}
}

func TestExtract_ExperiencePhrases(t *testing.T) {
	result := Extract(sampleJobPosting)

	require.NotEmpty(t, result.Experience)
	found := false
	for _, exp := range result.Experience {
		if strings.Contains(exp, "3+ years") {
			found = true
		}
	}
	assert.True(t, found, "expected an experience phrase containing %q, got %v", "3+ years", result.Experience)
}

func TestExtract_MinimumExperiencePhrase(t *testing.T) {
	result := Extract("Candidates need a minimum of 5 years in production operations")

	require.NotEmpty(t, result.Experience)
	assert.Contains(t, result.Experience[0], "5 years")
}

func TestExtract_Qualifications(t *testing.T) {
	result := Extract(sampleJobPosting)

	found := false
	for _, q := range result.Qualifications {
		if strings.Contains(q, "Bachelor's degree") {
			found = true
		}
	}
	assert.True(t, found, "expected a qualification containing Bachelor's degree, got %v", result.Qualifications)
}

func TestExtract_KeywordsFromVocabulary(t *testing.T) {
	result := Extract(sampleJobPosting)

	assert.Contains(t, result.Keywords, "docker")
	assert.Contains(t, result.Keywords, "kubernetes")
	assert.Contains(t, result.Keywords, "agile")
	assert.Contains(t, result.Keywords, "ci/cd")
	assert.NotContains(t, result.Keywords, "mongodb")
}

func TestExtract_KeywordsInVocabularyOrder(t *testing.T) {
	result := Extract("We use Python and also javascript, plus docker.")

	// Vocabulary declaration order, not text order. "java" matches as a
	// substring of "javascript".
	require.Equal(t, []string{"javascript", "python", "java", "docker"}, result.Keywords)
}

func TestExtract_AllListsDeduplicated(t *testing.T) {
	text := sampleJobPosting + "\n" + sampleJobPosting
	result := Extract(text)

	for name, list := range map[string][]string{
		"skills":         result.Skills,
		"experience":     result.Experience,
		"qualifications": result.Qualifications,
		"keywords":       result.Keywords,
	} {
		seen := make(map[string]bool)
		for _, item := range list {
			assert.False(t, seen[item], "%s contains duplicate %q", name, item)
			seen[item] = true
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleJobPosting)
	second := Extract(sampleJobPosting)
	assert.Equal(t, first, second)
}

func TestExtract_EmptyText(t *testing.T) {
	result := Extract("")
	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Qualifications)
	assert.Empty(t, result.Keywords)
}

func TestBuildJobRequirement(t *testing.T) {
	raw := "  Required:   Python,  SQL.\n\n\n3+ years   experience.  "
	job := BuildJobRequirement(raw)

	assert.Equal(t, "Required: Python, SQL.\n3+ years experience.", job.RawContent)
	assert.Contains(t, job.RequiredSkills, "Python")
	assert.Contains(t, job.RequiredSkills, "SQL")
	assert.Contains(t, job.ExtractedKeywords, "python")
	assert.Contains(t, job.ExtractedKeywords, "sql")
}
