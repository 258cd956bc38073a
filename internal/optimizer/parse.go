package optimizer

import "strings"

// parsedResponse holds what could be recovered from the free-form rewrite
// response. Parsing is best-effort by design: missing markers fall back to
// defaults and are never surfaced as errors.
type parsedResponse struct {
	Objective string
	Keywords  []string
}

// parseRewriteResponse scans the rewrite collaborator's free text line by
// line. The fallback chain is explicit: a line containing "summary" or
// "objective" promotes the following line to the rewritten objective,
// otherwise the original objective is kept; a line containing "keywords" or
// "skills" has its following line split on commas, otherwise the keyword
// list is empty.
func parseRewriteResponse(response, originalObjective string) parsedResponse {
	lines := strings.Split(response, "\n")

	parsed := parsedResponse{
		Objective: originalObjective,
		Keywords:  []string{},
	}

	if next, ok := lineAfterMarker(lines, "summary", "objective"); ok && next != "" {
		parsed.Objective = next
	}

	if next, ok := lineAfterMarker(lines, "keywords", "skills"); ok && next != "" {
		for _, part := range strings.Split(next, ",") {
			keyword := strings.TrimSpace(part)
			if keyword != "" {
				parsed.Keywords = append(parsed.Keywords, keyword)
			}
		}
	}

	return parsed
}

// lineAfterMarker finds the first line containing any marker
// (case-insensitive) and returns the trimmed line after it.
func lineAfterMarker(lines []string, markers ...string) (string, bool) {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range markers {
			if strings.Contains(lower, marker) {
				if i+1 < len(lines) {
					return strings.TrimSpace(lines[i+1]), true
				}
				return "", false
			}
		}
	}
	return "", false
}
