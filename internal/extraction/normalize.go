// Package extraction scans raw job-description text and produces candidate
// skills, experience-requirement phrases, qualification phrases and a
// fixed-vocabulary keyword set. Everything in this package is a pure text
// transform: no network, no file I/O, deterministic for identical input.
package extraction

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// CleanText normalizes whitespace in extracted or typed text: CRLF becomes
// LF, runs of spaces and tabs collapse to a single space, runs of newlines
// collapse to a single newline, and the result is trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = spaceRuns.ReplaceAllString(content, " ")
	content = newlineRuns.ReplaceAllString(content, "\n")

	return strings.TrimSpace(content)
}
