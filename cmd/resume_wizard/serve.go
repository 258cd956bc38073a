package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort  int
	serveStyle string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the resume wizard: resume state, job extraction, scoring, optimization, and rendering.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStyle, "style", "", "Default rendering style: modern, classic, minimal")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	port := servePort
	if cfg.Port != 0 && !cmd.Flags().Changed("port") {
		port = cfg.Port
	}
	style := serveStyle
	if style == "" {
		style = cfg.Style
	}

	// Without an API key the server still runs; the optimization and OCR
	// endpoints report 503.
	apiKey := resolveAPIKey("", cfg)
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; optimization and OCR endpoints will be unavailable")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:   port,
		APIKey: apiKey,
		Style:  style,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
