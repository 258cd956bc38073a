package skills

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_SubstringExclusion(t *testing.T) {
	got := Suggest([]string{"React"}, []string{"react", "Node.js"}, nil)
	assert.Equal(t, []string{"Node.js"}, got)
}

func TestSuggest_RequiredBeforeAIKeywords(t *testing.T) {
	got := Suggest(nil, []string{"Terraform", "Ansible"}, []string{"grpc", "kafka"})
	assert.Equal(t, []string{"Terraform", "Ansible", "grpc", "kafka"}, got)
}

func TestSuggest_AIKeywordsExcludedByEarlierPass(t *testing.T) {
	got := Suggest(nil, []string{"Kafka"}, []string{"kafka", "grpc"})
	assert.Equal(t, []string{"Kafka", "grpc"}, got)
}

func TestSuggest_CapTen(t *testing.T) {
	var required []string
	for i := 0; i < 15; i++ {
		required = append(required, fmt.Sprintf("skill-%02d", i))
	}
	got := Suggest(nil, required, []string{"extra"})
	assert.Len(t, got, 10)
	assert.Equal(t, "skill-00", got[0])
	assert.NotContains(t, got, "extra")
}

func TestSuggest_NoSuggestionMatchesCurrentSkill(t *testing.T) {
	current := []string{"Golang developer", "AWS Lambda", "CI/CD pipelines"}
	got := Suggest(current, []string{"golang", "aws", "terraform"}, []string{"ci/cd", "docker"})

	for _, suggestion := range got {
		for _, skill := range current {
			assert.False(t,
				strings.Contains(strings.ToLower(skill), strings.ToLower(suggestion)),
				"suggestion %q is covered by current skill %q", suggestion, skill)
		}
	}
	assert.Equal(t, []string{"terraform", "docker"}, got)
}

func TestSuggest_EmptyInputs(t *testing.T) {
	assert.Empty(t, Suggest(nil, nil, nil))
}
