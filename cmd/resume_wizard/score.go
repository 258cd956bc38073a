package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/observability"
	"github.com/akhilmohan/resume-wizard/internal/scoring"
	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume for ATS compatibility",
	Long:  "Compute the ATS compatibility score for a resume, optionally matched against a job description for keyword overlap.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreAPIKey     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description file")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key for OCR of image files (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	resumePath := scoreResumeFile
	if resumePath == "" {
		resumePath = cfg.Resume
	}
	if resumePath == "" {
		return fmt.Errorf("--resume is required (or set resume in the config file)")
	}
	resume, err := loadResumeFile(resumePath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var job *types.JobRequirement
	jobPath := scoreJobFile
	if jobPath == "" {
		jobPath = cfg.Job
	}
	if jobPath != "" {
		client, _ := newLLMClient(ctx, resolveAPIKey(scoreAPIKey, cfg), cfg.Model)
		if client != nil {
			defer client.Close() //nolint:errcheck
		}

		text, err := ingestJobFile(ctx, jobPath, client)
		if err != nil {
			return fmt.Errorf("failed to extract job text: %w", err)
		}
		job = extraction.BuildJobRequirement(text)
	}

	score, breakdown := scoring.ScoreWithBreakdown(resume, job)

	if rootVerbose {
		observability.NewPrinter(os.Stderr).PrintScore(score, breakdown)
	}

	fmt.Printf("%d/100 (%s)\n", score, scoring.Label(score))
	return nil
}
