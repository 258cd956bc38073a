package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/observability"
	"github.com/akhilmohan/resume-wizard/internal/skills"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Categorize resume skills and suggest keyword gaps",
	Long:  "Group the resume's skills into display categories. With a job description, also suggest required skills and keywords the resume does not cover yet.",
	RunE:  runSkills,
}

var (
	skillsResumeFile string
	skillsJobFile    string
	skillsAPIKey     string
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	skillsCmd.Flags().StringVarP(&skillsJobFile, "job", "j", "", "Path to job description file")
	skillsCmd.Flags().StringVar(&skillsAPIKey, "api-key", "", "Gemini API key for OCR of image files (overrides GEMINI_API_KEY env var)")
	_ = skillsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	resume, err := loadResumeFile(skillsResumeFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCategorizedSkills(skills.Categorize(resume.Skills))

	if skillsJobFile == "" {
		return nil
	}

	ctx := context.Background()
	client, _ := newLLMClient(ctx, resolveAPIKey(skillsAPIKey, cfg), cfg.Model)
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	text, err := ingestJobFile(ctx, skillsJobFile, client)
	if err != nil {
		return fmt.Errorf("failed to extract job text: %w", err)
	}

	job := extraction.BuildJobRequirement(text)
	printer.PrintSuggestions(skills.Suggest(resume.Skills, job.RequiredSkills, job.ExtractedKeywords))
	return nil
}
