// Package translate normalizes free-text input to English, the pipeline's
// working language. Input already in English passes through unchanged.
package translate

import "unicode"

// Language is the detected language class of a piece of input text.
type Language string

// Detected language classes. Manglish is romanized Malayalam mixed with
// English, common in typed job descriptions and skill lists from Kerala.
const (
	LanguageEnglish   Language = "english"
	LanguageMalayalam Language = "malayalam"
	LanguageManglish  Language = "manglish"
)

// DetectLanguage classifies text by script: Malayalam codepoints alone mean
// Malayalam, Malayalam mixed with Latin means Manglish, anything else is
// treated as English.
func DetectLanguage(text string) Language {
	hasMalayalam := false
	hasLatin := false
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Malayalam, r):
			hasMalayalam = true
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			hasLatin = true
		}
	}

	switch {
	case hasMalayalam && hasLatin:
		return LanguageManglish
	case hasMalayalam:
		return LanguageMalayalam
	default:
		return LanguageEnglish
	}
}
