package ingestion

import "fmt"

// UnsupportedMediaTypeError indicates the uploaded file type is outside the
// supported set (plain text, HTML, PDF, common image formats).
type UnsupportedMediaTypeError struct {
	MediaType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MediaType)
}

// ExtractionError indicates the text-extraction collaborator failed on a
// supported file.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
