package types

// JobRequirement is the structured extraction derived from an uploaded or
// typed job description. Once produced it is treated as immutable input to
// scoring; a new upload fully supersedes the previous value, never merges.
type JobRequirement struct {
	RawContent        string   `json:"raw_content"`
	ExtractedKeywords []string `json:"extracted_keywords"`
	RequiredSkills    []string `json:"required_skills"`
}
