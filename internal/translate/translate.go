package translate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/llm"
)

// malayalamTerms maps common Malayalam resume terms to English. The table
// covers the frequent cases so the pipeline degrades gracefully when no LLM
// client is configured.
var malayalamTerms = map[string]string{
	"സോഫ്റ്റ്‌വെയർ ഡെവലപ്പർ": "Software Developer",
	"കമ്പ്യൂട്ടർ സയൻസ്":      "Computer Science",
	"പ്രോജക്റ്റ്":            "Project",
	"സ്കിൽസ്":                "Skills",
	"അനുഭവം":                 "Experience",
}

// manglishTerms maps common romanized Malayalam words to English.
var manglishTerms = map[string]string{
	"avam":   "them",
	"engane": "like this",
	"nithan": "you",
	"entha":  "what",
}

// Translator converts text to English. With a nil client it falls back to
// the built-in term tables; with a client, non-English text is translated by
// the model.
type Translator struct {
	client llm.Client
}

// New creates a Translator. client may be nil.
func New(client llm.Client) *Translator {
	return &Translator{client: client}
}

// ToEnglish returns the text normalized to English. English input is
// returned unchanged (identity), as required of the collaborator contract.
func (t *Translator) ToEnglish(ctx context.Context, text string) (string, error) {
	language := DetectLanguage(text)
	if language == LanguageEnglish {
		return text, nil
	}

	if t.client != nil {
		prompt := fmt.Sprintf(
			"Translate the following %s text to plain English. Return only the translation, no commentary.\n\n%s",
			language, text)
		translated, err := t.client.GenerateContent(ctx, prompt, llm.TierLite)
		if err != nil {
			return "", fmt.Errorf("translation failed: %w", err)
		}
		return strings.TrimSpace(translated), nil
	}

	if language == LanguageMalayalam {
		return replaceTerms(text, malayalamTerms), nil
	}
	return replaceManglish(text), nil
}

// ProcessSkills translates a free-form skill list and splits it into clean,
// capitalized skill entries.
func (t *Translator) ProcessSkills(ctx context.Context, skillsText string) ([]string, error) {
	translated, err := t.ToEnglish(ctx, skillsText)
	if err != nil {
		return nil, err
	}

	parts := regexp.MustCompile(`[,\n\r\t]+`).Split(translated, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		out = append(out, capitalize(skill))
	}
	return out, nil
}

func replaceTerms(text string, terms map[string]string) string {
	for malayalam, english := range terms {
		text = strings.ReplaceAll(text, malayalam, english)
	}
	return text
}

var manglishWord = regexp.MustCompile(`\b[a-z]+\b`)

func replaceManglish(text string) string {
	return manglishWord.ReplaceAllStringFunc(text, func(word string) string {
		if english, ok := manglishTerms[word]; ok {
			return english
		}
		return word
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
