// Package scoring computes a deterministic, explainable ATS compatibility
// score for a resume, optionally against an extracted job requirement.
package scoring

import (
	"math"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

const (
	baseScore = 60

	emailBonus      = 5
	phoneBonus      = 5
	objectiveBonus  = 10
	skillsBonus     = 10
	experienceBonus = 10

	// maxKeywordContribution caps the keyword-overlap portion of the score.
	maxKeywordContribution = 20

	maxScore = 100
)

// Breakdown explains how a score was assembled.
type Breakdown struct {
	Base            int     `json:"base"`
	Structural      int     `json:"structural"`
	KeywordMatched  int     `json:"keyword_matched"`
	KeywordTotal    int     `json:"keyword_total"`
	KeywordScore    float64 `json:"keyword_score"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// Score returns the ATS compatibility score in [0,100] for a resume, with an
// optional job requirement (nil means structural scoring only). Scoring the
// same inputs twice yields the same integer.
func Score(resume *types.ResumeRecord, job *types.JobRequirement) int {
	score, _ := ScoreWithBreakdown(resume, job)
	return score
}

// ScoreWithBreakdown is Score plus the per-component explanation.
func ScoreWithBreakdown(resume *types.ResumeRecord, job *types.JobRequirement) (int, *Breakdown) {
	breakdown := &Breakdown{Base: baseScore}

	structural := 0
	if resume.Personal.Email != "" {
		structural += emailBonus
	}
	if resume.Personal.Phone != "" {
		structural += phoneBonus
	}
	if resume.Objective != "" {
		structural += objectiveBonus
	}
	if len(resume.Skills) > 0 {
		structural += skillsBonus
	}
	if len(resume.WorkExperience) > 0 {
		structural += experienceBonus
	}
	breakdown.Structural = structural

	total := float64(baseScore + structural)

	// Keyword overlap against the job requirement. Zero extracted keywords
	// contribute zero rather than dividing by zero.
	if job != nil && len(job.ExtractedKeywords) > 0 {
		blob := resumeTextBlob(resume)
		matched := make([]string, 0, len(job.ExtractedKeywords))
		for _, keyword := range job.ExtractedKeywords {
			if strings.Contains(blob, strings.ToLower(keyword)) {
				matched = append(matched, keyword)
			}
		}
		contribution := math.Min(
			maxKeywordContribution,
			float64(len(matched))/float64(len(job.ExtractedKeywords))*maxKeywordContribution,
		)
		breakdown.KeywordMatched = len(matched)
		breakdown.KeywordTotal = len(job.ExtractedKeywords)
		breakdown.KeywordScore = contribution
		breakdown.MatchedKeywords = matched
		total += contribution
	} else if job != nil {
		breakdown.KeywordTotal = 0
	}

	score := int(math.Round(math.Min(maxScore, total)))
	return score, breakdown
}

// resumeTextBlob concatenates the searchable resume content into one
// lowercase string: objective, skills, work-experience responsibility lines
// and project descriptions.
func resumeTextBlob(resume *types.ResumeRecord) string {
	var sb strings.Builder
	sb.WriteString(resume.Objective)
	for _, skill := range resume.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill)
	}
	for _, exp := range resume.WorkExperience {
		for _, resp := range exp.Responsibilities {
			sb.WriteString(" ")
			sb.WriteString(resp)
		}
	}
	for _, project := range resume.Projects {
		sb.WriteString(" ")
		sb.WriteString(project.Description)
	}
	return strings.ToLower(sb.String())
}
