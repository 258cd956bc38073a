package main

import (
	"context"
	"fmt"
	"os"

	"github.com/akhilmohan/resume-wizard/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate Malayalam or Manglish text to English",
	Long:  "Detect the language of the input and translate Malayalam or Manglish to English. With an API key the model translates; without one a built-in term table is used.",
	RunE:  runTranslate,
}

var (
	translateInputFile string
	translateText      string
	translateAPIKey    string
)

func init() {
	translateCmd.Flags().StringVarP(&translateInputFile, "in", "i", "", "Path to text file to translate")
	translateCmd.Flags().StringVarP(&translateText, "text", "t", "", "Text to translate")
	translateCmd.Flags().StringVar(&translateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	text := translateText
	if translateInputFile != "" {
		data, err := os.ReadFile(translateInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("either --text or --in is required")
	}

	ctx := context.Background()
	client, _ := newLLMClient(ctx, resolveAPIKey(translateAPIKey, cfg), cfg.Model)
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	if rootVerbose {
		fmt.Fprintf(os.Stderr, "Detected language: %s\n", translate.DetectLanguage(text))
	}

	translated, err := translate.New(client).ToEnglish(ctx, text)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	fmt.Println(translated)
	return nil
}
