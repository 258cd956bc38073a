package ingestion

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlToText extracts the visible text of an HTML document, dropping script,
// style and navigation chrome.
func htmlToText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element; fall back to the whole document.
		text = doc.Text()
	}
	return text, nil
}
