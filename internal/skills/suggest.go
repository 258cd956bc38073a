package skills

import "strings"

// maxSuggestions caps the gap suggestion list.
const maxSuggestions = 10

// Suggest compares the user's current skills against the job's required
// skills and AI-suggested keywords, returning missing terms. Required-skill
// survivors come first in their original order, then AI keywords, truncated
// to 10 total. A term is excluded when any current skill case-insensitively
// contains it as a substring.
func Suggest(currentSkills, requiredSkills, aiKeywords []string) []string {
	suggestions := make([]string, 0, maxSuggestions)
	added := make(map[string]bool)

	for _, required := range requiredSkills {
		if coveredBy(currentSkills, required) {
			continue
		}
		key := strings.ToLower(required)
		if added[key] {
			continue
		}
		added[key] = true
		suggestions = append(suggestions, required)
	}

	for _, keyword := range aiKeywords {
		if coveredBy(currentSkills, keyword) {
			continue
		}
		key := strings.ToLower(keyword)
		if added[key] {
			continue
		}
		added[key] = true
		suggestions = append(suggestions, keyword)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// coveredBy reports whether any current skill contains term as a
// case-insensitive substring.
func coveredBy(currentSkills []string, term string) bool {
	lowerTerm := strings.ToLower(term)
	for _, skill := range currentSkills {
		if strings.Contains(strings.ToLower(skill), lowerTerm) {
			return true
		}
	}
	return false
}
