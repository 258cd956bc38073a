package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/observability"
	"github.com/akhilmohan/resume-wizard/internal/optimizer"
	"github.com/akhilmohan/resume-wizard/internal/scoring"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a resume against a job description",
	Long:  "Run the full optimization: extract job requirements, rewrite the objective and experience bullets via the model, augment projects with missing keywords, and report the ATS score.",
	RunE:  runOptimize,
}

var (
	optimizeResumeFile string
	optimizeJobFile    string
	optimizeOutputFile string
	optimizeAPIKey     string
	optimizeModel      string
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeJobFile, "job", "j", "", "Path to job description file (required)")
	optimizeCmd.Flags().StringVarP(&optimizeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	optimizeCmd.Flags().StringVar(&optimizeModel, "model", "", "Override the rewrite model")
	_ = optimizeCmd.MarkFlagRequired("resume")
	_ = optimizeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	resume, err := loadResumeFile(optimizeResumeFile)
	if err != nil {
		return err
	}

	model := optimizeModel
	if model == "" {
		model = cfg.Model
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, resolveAPIKey(optimizeAPIKey, cfg), model)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	text, err := ingestJobFile(ctx, optimizeJobFile, client)
	if err != nil {
		return fmt.Errorf("failed to extract job text: %w", err)
	}
	job := extraction.BuildJobRequirement(text)

	opt := optimizer.New(optimizer.NewLLMRewriter(client), nil)
	optimized, err := opt.Optimize(ctx, resume, job)
	if err != nil {
		return fmt.Errorf("optimization failed: %w", err)
	}

	if rootVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobExtraction(extraction.Extract(text))
		_, breakdown := scoring.ScoreWithBreakdown(resume, job)
		printer.PrintScore(optimized.ATSScore, breakdown)
		printer.PrintSuggestions(optimized.SuggestedKeywords)
	}

	if optimizeOutputFile != "" {
		return writeJSONFile(optimizeOutputFile, optimized)
	}

	data, err := marshalIndent(optimized)
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}
