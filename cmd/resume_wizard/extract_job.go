package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/observability"
	"github.com/spf13/cobra"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract requirement keywords from a job description",
	Long:  "Extract skills, experience requirements, qualifications and ATS keywords from a job description file (text, HTML, PDF, or an image via OCR).",
	RunE:  runExtractJob,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAPIKey     string
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to job description file (required)")
	extractJobCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	extractJobCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key for OCR of image files (overrides GEMINI_API_KEY env var)")
	_ = extractJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// OCR is only needed for image inputs, so the client is optional here.
	client, _ := newLLMClient(ctx, resolveAPIKey(extractAPIKey, cfg), cfg.Model)
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	text, err := ingestJobFile(ctx, extractInputFile, client)
	if err != nil {
		return fmt.Errorf("failed to extract job text: %w", err)
	}

	result := extraction.Extract(text)

	if rootVerbose {
		observability.NewPrinter(os.Stderr).PrintJobExtraction(result)
	}

	if extractOutputFile != "" {
		return writeJSONFile(extractOutputFile, result)
	}

	data, err := marshalIndent(result)
	if err != nil {
		return err
	}
	fmt.Println(data)
	return nil
}
