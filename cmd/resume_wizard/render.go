package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/rendering"
	"github.com/akhilmohan/resume-wizard/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to HTML or PDF",
	Long:  "Render a resume JSON file (raw, or the output of the optimize command) to a styled HTML document or a print-ready PDF.",
	RunE:  runRender,
}

var (
	renderResumeFile    string
	renderOptimizedFile string
	renderOutputFile    string
	renderFormat        string
	renderStyle         string
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to resume JSON file")
	renderCmd.Flags().StringVar(&renderOptimizedFile, "optimized", "", "Path to optimized resume JSON (output of the optimize command)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (required for pdf, defaults to stdout for html)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html or pdf")
	renderCmd.Flags().StringVarP(&renderStyle, "style", "s", "", "Rendering style: modern, classic, minimal (overrides the resume's style)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	doc, err := loadRenderable()
	if err != nil {
		return err
	}

	style := renderStyle
	if style == "" {
		style = cfg.Style
	}
	if style != "" {
		doc.Style = types.StyleVariant(style)
	}

	switch renderFormat {
	case "html":
		html, err := rendering.RenderHTML(doc)
		if err != nil {
			return err
		}
		if renderOutputFile == "" {
			fmt.Println(html)
			return nil
		}
		return os.WriteFile(renderOutputFile, []byte(html), 0644)

	case "pdf":
		if renderOutputFile == "" {
			return fmt.Errorf("--out is required for pdf output")
		}
		pdf, err := rendering.RenderPDF(context.Background(), doc)
		if err != nil {
			return err
		}
		return os.WriteFile(renderOutputFile, pdf, 0644)

	default:
		return fmt.Errorf("unknown format %q (expected html or pdf)", renderFormat)
	}
}

// loadRenderable builds the document to render from either input flag. A raw
// resume is wrapped so its own objective, experience and projects render
// unchanged.
func loadRenderable() (*types.OptimizedResume, error) {
	switch {
	case renderOptimizedFile != "" && renderResumeFile != "":
		return nil, fmt.Errorf("cannot use --resume with --optimized")

	case renderOptimizedFile != "":
		data, err := os.ReadFile(renderOptimizedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read optimized resume: %w", err)
		}
		var doc types.OptimizedResume
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse optimized resume JSON: %w", err)
		}
		return &doc, nil

	case renderResumeFile != "":
		resume, err := loadResumeFile(renderResumeFile)
		if err != nil {
			return nil, err
		}
		return &types.OptimizedResume{
			ResumeRecord:        *resume,
			OptimizedObjective:  resume.Objective,
			OptimizedExperience: resume.WorkExperience,
			OptimizedProjects:   resume.Projects,
		}, nil

	default:
		return nil, fmt.Errorf("either --resume or --optimized is required")
	}
}
