// Package vocab provides the fixed vocabularies used for keyword extraction
// and skill categorization. The lists are stored as a versioned JSON file and
// embedded at compile time, so they can be extended without touching the
// extraction logic.
package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed vocab.json
var vocabFile []byte

// Vocabulary holds the fixed term lists. Declaration order inside each list
// is significant: extracted keywords are reported in list order, and category
// lists are tested in priority order.
type Vocabulary struct {
	Version string `json:"version"`

	// ATSKeywords is the closed set of technical and soft-skill terms tested
	// for presence in job description text.
	ATSKeywords []string `json:"ats_keywords"`

	// Category vocabularies for skill bucketing, in match priority order:
	// languages, frameworks, tools, databases.
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Tools                []string `json:"tools"`
	Databases            []string `json:"databases"`

	// ActionVerbs is the pool of strong verbs prepended to responsibility
	// lines; ActionVerbPrefixes is the superset a line may already start with.
	ActionVerbs        []string `json:"action_verbs"`
	ActionVerbPrefixes []string `json:"action_verb_prefixes"`
}

var (
	loadOnce sync.Once
	loaded   *Vocabulary
	loadErr  error
)

// Load returns the embedded vocabulary, parsing it once.
func Load() (*Vocabulary, error) {
	loadOnce.Do(func() {
		var v Vocabulary
		if err := json.Unmarshal(vocabFile, &v); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded vocabulary: %w", err)
			return
		}
		loaded = &v
	})
	return loaded, loadErr
}

// MustLoad returns the embedded vocabulary, panicking if it cannot be parsed.
// The file is embedded and covered by tests, so a panic here means a broken
// build, not a runtime condition.
func MustLoad() *Vocabulary {
	v, err := Load()
	if err != nil {
		panic(err)
	}
	return v
}
