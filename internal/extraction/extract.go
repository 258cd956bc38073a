package extraction

import (
	"regexp"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/akhilmohan/resume-wizard/internal/vocab"
)

// JobExtraction is the structured output of Extract: four deduplicated lists
// of signals found in a job description.
type JobExtraction struct {
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Qualifications []string `json:"qualifications"`
	Keywords       []string `json:"keywords"`
}

// Skill phrase patterns. Each captures the trailing clause up to the next
// sentence boundary; the clause is then split into atomic phrases.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:skills?|technologies?|tools?)[:\-]?\s*([^.!?\n]+)`),
	regexp.MustCompile(`(?i)(?:experience in|proficiency in|knowledge of)[:\-]?\s*([^.!?\n]+)`),
	regexp.MustCompile(`(?i)(?:required|preferred)[:\-]?\s*([^.!?\n]+)`),
}

// Experience patterns match a number followed by a year unit, or an explicit
// minimum phrase. The whole matched span is kept verbatim.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+[+\-\s]*(?:years?|yrs?)[^.!?\n]*`),
	regexp.MustCompile(`(?i)(?:minimum of|minimum|at least)\s*\d+[^.!?\n]*`),
}

// Qualification patterns match degree/certification and education vocabulary,
// capturing from the match to the next sentence boundary.
var qualificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:degree|bachelor|master|phd|certification)[^.!?\n]*`),
	regexp.MustCompile(`(?i)(?:qualified|education|academic)[^.!?\n]*`),
}

var (
	phraseSeparators = regexp.MustCompile(`[,;|&\n\r\t]+`)
	phraseEdgeTrim   = regexp.MustCompile(`^\W+|\W+$`)
)

// Extract scans normalized job-description text and returns the four signal
// lists. All lists are deduplicated with first occurrence winning; skills are
// additionally filtered to length > 2.
func Extract(text string) *JobExtraction {
	v := vocab.MustLoad()

	skills := make([]string, 0)
	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			skills = append(skills, splitSkillClause(match[1])...)
		}
	}

	experience := collectMatches(experiencePatterns, text)
	qualifications := collectMatches(qualificationPatterns, text)

	// Fixed-vocabulary membership test, reported in declaration order.
	lower := strings.ToLower(text)
	keywords := make([]string, 0)
	for _, keyword := range v.ATSKeywords {
		if strings.Contains(lower, keyword) {
			keywords = append(keywords, keyword)
		}
	}

	return &JobExtraction{
		Skills:         filterShort(dedupe(skills), 2),
		Experience:     dedupe(experience),
		Qualifications: dedupe(qualifications),
		Keywords:       dedupe(keywords),
	}
}

// BuildJobRequirement normalizes raw job-description text, runs extraction
// and assembles the immutable JobRequirement record used by scoring.
func BuildJobRequirement(raw string) *types.JobRequirement {
	cleaned := CleanText(raw)
	extracted := Extract(cleaned)
	return &types.JobRequirement{
		RawContent:        cleaned,
		ExtractedKeywords: extracted.Keywords,
		RequiredSkills:    extracted.Skills,
	}
}

// splitSkillClause splits a captured clause into atomic skill phrases. Each
// phrase is trimmed of leading/trailing non-word characters; phrases of
// length <= 1 are dropped.
func splitSkillClause(clause string) []string {
	parts := phraseSeparators.Split(clause, -1)
	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		phrase := strings.TrimSpace(part)
		if len(phrase) <= 1 {
			continue
		}
		phrase = phraseEdgeTrim.ReplaceAllString(phrase, "")
		if phrase == "" {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}

func collectMatches(patterns []*regexp.Regexp, text string) []string {
	out := make([]string, 0)
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			trimmed := strings.TrimSpace(match)
			if trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// dedupe removes duplicates while preserving first-occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func filterShort(items []string, minLen int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if len(item) > minLen {
			out = append(out, item)
		}
	}
	return out
}
