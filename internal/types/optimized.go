package types

// OptimizedResume is the output of one orchestrator call: the original resume
// plus rewritten variants of its prose sections, gap suggestions and an ATS
// score. It is produced atomically; a failed optimization yields no partial
// record.
type OptimizedResume struct {
	ResumeRecord

	OptimizedObjective  string           `json:"optimized_objective"`
	OptimizedExperience []WorkExperience `json:"optimized_experience"`
	OptimizedProjects   []Project        `json:"optimized_projects"`
	SuggestedKeywords   []string         `json:"suggested_keywords"`
	ATSScore            int              `json:"ats_score"`
}
