package rendering

import (
	"context"
	"net/url"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/akhilmohan/resume-wizard/internal/types"
)

// RenderPDF renders the resume to HTML and prints it to PDF through headless
// Chrome. Page breaks follow the stylesheet's break-inside rules, so a
// section that would cross the bottom of a page moves to the next one.
func RenderPDF(ctx context.Context, resume *types.OptimizedResume) ([]byte, error) {
	html, err := RenderHTML(resume)
	if err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "PDF print failed", Cause: err}
	}
	return pdf, nil
}
