package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_Buckets(t *testing.T) {
	buckets := Categorize([]string{"Python", "React Native", "Docker", "PostgreSQL", "Public Speaking"})

	assert.Equal(t, []string{"Python"}, buckets[CategoryLanguages])
	assert.Equal(t, []string{"React Native"}, buckets[CategoryFrameworks])
	assert.Equal(t, []string{"Docker"}, buckets[CategoryTools])
	assert.Equal(t, []string{"PostgreSQL"}, buckets[CategoryDatabases])
	assert.Equal(t, []string{"Public Speaking"}, buckets[CategoryOther])
}

func TestCategorize_PriorityOrderFirstMatchWins(t *testing.T) {
	// "JavaScript (React)" matches both the language and framework
	// vocabularies; languages are tested first.
	buckets := Categorize([]string{"JavaScript (React)"})
	assert.Equal(t, []string{"JavaScript (React)"}, buckets[CategoryLanguages])
	assert.Empty(t, buckets[CategoryFrameworks])
}

func TestCategorize_PreservesCasingAndOrder(t *testing.T) {
	buckets := Categorize([]string{"RUBY", "php", "GoLang"})
	assert.Equal(t, []string{"RUBY", "php", "GoLang"}, buckets[CategoryLanguages])
}

func TestCategorize_AlwaysFiveKeys(t *testing.T) {
	buckets := Categorize(nil)
	require.Len(t, buckets, 5)
	for _, c := range Categories {
		assert.NotNil(t, buckets[c])
		assert.Empty(t, buckets[c])
	}
}

func TestCategorize_PartitionsEveryInput(t *testing.T) {
	input := []string{"Python", "React", "Git", "Redis", "Leadership", "Kanban", "express"}
	buckets := Categorize(input)

	var union []string
	for _, c := range Categories {
		union = append(union, buckets[c]...)
	}
	require.Len(t, union, len(input))

	sortedInput := append([]string(nil), input...)
	sort.Strings(sortedInput)
	sort.Strings(union)
	assert.Equal(t, sortedInput, union)
}
