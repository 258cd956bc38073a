package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/config"
	"github.com/akhilmohan/resume-wizard/internal/ingestion"
	"github.com/akhilmohan/resume-wizard/internal/llm"
	"github.com/akhilmohan/resume-wizard/internal/schemas"
	"github.com/akhilmohan/resume-wizard/internal/translate"
	"github.com/akhilmohan/resume-wizard/internal/types"
)

// mediaTypes maps file extensions to the media types the document extractor
// understands.
var mediaTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// loadCLIConfig loads the --config file when given, otherwise returns an
// empty config so flag and environment fallbacks apply.
func loadCLIConfig() (*config.Config, error) {
	if rootConfigPath == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveAPIKey prefers the flag, then the config file, then GEMINI_API_KEY.
func resolveAPIKey(flagKey string, cfg *config.Config) string {
	if flagKey != "" {
		return flagKey
	}
	return cfg.ResolveAPIKey()
}

// newLLMClient creates a Gemini client, applying any model override.
func newLLMClient(ctx context.Context, apiKey, modelOverride string) (llm.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	llmConfig := llm.DefaultConfig()
	if modelOverride != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, modelOverride)
	}

	return llm.NewClient(ctx, llmConfig, apiKey)
}

// loadResumeFile reads and schema-validates a resume JSON file.
func loadResumeFile(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return nil, fmt.Errorf("resume file %s is invalid: %w", path, err)
	}

	resume := types.NewResumeRecord()
	if err := json.Unmarshal(data, resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return resume, nil
}

// ingestJobFile extracts text from a job description file. The media type is
// inferred from the extension; images require a configured LLM client for
// OCR. Text in Malayalam or Manglish is translated to English before
// keyword extraction.
func ingestJobFile(ctx context.Context, path string, client llm.Client) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file: %w", err)
	}

	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mediaType = "text/plain"
	}

	extractor := ingestion.NewExtractor(client)
	text, err := extractor.ExtractText(ctx, data, mediaType)
	if err != nil {
		return "", err
	}

	if translate.DetectLanguage(text) != translate.LanguageEnglish {
		translator := translate.New(client)
		text, err = translator.ToEnglish(ctx, text)
		if err != nil {
			return "", fmt.Errorf("failed to translate job description: %w", err)
		}
	}

	return text, nil
}

// marshalIndent returns v as indented JSON text.
func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// writeJSONFile marshals v with indentation and writes it to path.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
