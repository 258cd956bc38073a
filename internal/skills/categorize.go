// Package skills provides skill categorization and keyword-gap suggestion.
// Both operations are pure functions of their inputs.
package skills

import (
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/vocab"
)

// Category is a semantic bucket for a skill.
type Category string

// The five fixed categories, in display order.
const (
	CategoryLanguages  Category = "Programming Languages"
	CategoryFrameworks Category = "Frameworks & Libraries"
	CategoryTools      Category = "Tools & Technologies"
	CategoryDatabases  Category = "Databases"
	CategoryOther      Category = "Other Skills"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryTools,
	CategoryDatabases,
	CategoryOther,
}

// Categorize partitions skills into the five fixed categories. Each skill is
// tested case-insensitively for substring membership against the language,
// framework, tool and database vocabularies in that priority order; first
// match wins, no match lands in Other Skills. Original casing and input order
// are preserved; the returned map always has all five keys.
func Categorize(skillList []string) map[Category][]string {
	v := vocab.MustLoad()

	vocabularies := []struct {
		category Category
		terms    []string
	}{
		{CategoryLanguages, v.ProgrammingLanguages},
		{CategoryFrameworks, v.Frameworks},
		{CategoryTools, v.Tools},
		{CategoryDatabases, v.Databases},
	}

	buckets := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		buckets[c] = []string{}
	}

	for _, skill := range skillList {
		lower := strings.ToLower(skill)
		category := CategoryOther
		for _, entry := range vocabularies {
			if matchesAny(lower, entry.terms) {
				category = entry.category
				break
			}
		}
		buckets[category] = append(buckets[category], skill)
	}

	return buckets
}

func matchesAny(lowerSkill string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowerSkill, term) {
			return true
		}
	}
	return false
}
