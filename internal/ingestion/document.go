// Package ingestion extracts raw text from uploaded job-description
// documents: plain text, HTML, PDF and images. Output is always
// whitespace-normalized, ready for the keyword extractor.
package ingestion

import (
	"context"
	"mime"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/llm"
)

// ocrPrompt asks the vision model for a faithful transcription.
const ocrPrompt = "Extract all text from this image of a job description. " +
	"Return the plain text content only, preserving line breaks. Do not summarize or comment."

// imageFormats maps supported image subtypes to the format tag passed to the
// vision model.
var imageFormats = map[string]string{
	"png":  "png",
	"jpeg": "jpeg",
	"jpg":  "jpeg",
	"webp": "webp",
}

// Extractor turns uploaded files into normalized text. The LLM client is
// only needed for image OCR and may be nil otherwise.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an Extractor. client may be nil when image OCR is not
// required.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractText extracts raw text from a file given its declared media type.
// Unsupported types yield an UnsupportedMediaTypeError; collaborator
// failures yield an ExtractionError. The result is CleanText-normalized.
func (e *Extractor) ExtractText(ctx context.Context, data []byte, mediaType string) (string, error) {
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return "", &UnsupportedMediaTypeError{MediaType: mediaType}
	}

	var text string
	switch {
	case parsed == "text/plain":
		text = string(data)
	case parsed == "text/html":
		text, err = htmlToText(data)
	case parsed == "application/pdf":
		text, err = pdfToText(data)
	case strings.HasPrefix(parsed, "image/"):
		format, ok := imageFormats[strings.TrimPrefix(parsed, "image/")]
		if !ok {
			return "", &UnsupportedMediaTypeError{MediaType: parsed}
		}
		text, err = e.imageToText(ctx, data, format)
	default:
		return "", &UnsupportedMediaTypeError{MediaType: parsed}
	}
	if err != nil {
		return "", err
	}

	return extraction.CleanText(text), nil
}

// pdfToText concatenates the text of every page.
func pdfToText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", &ExtractionError{Message: "failed to open PDF", Cause: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", &ExtractionError{Message: "failed to read PDF page", Cause: err}
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// imageToText runs vision OCR through the LLM client.
func (e *Extractor) imageToText(ctx context.Context, data []byte, format string) (string, error) {
	if e.client == nil {
		return "", &ExtractionError{Message: "no OCR client configured for image input"}
	}

	text, err := e.client.GenerateVision(ctx, ocrPrompt, data, format, llm.TierLite)
	if err != nil {
		return "", &ExtractionError{Message: "OCR call failed", Cause: err}
	}
	return text, nil
}
