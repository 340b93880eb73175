package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
)

var (
	exportURL     string
	exportOutput  string
	exportLang    string
	exportTimeout time.Duration
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render the résumé page to a PDF file",
	Long: `Load /resume from a running server in headless Chrome and print it to PDF.
The output is the file to upload wherever the hosted résumé PDF lives.`,
	RunE: runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVar(&exportURL, "url", "http://localhost:8080", "Base URL of a running server")
	exportPDFCmd.Flags().StringVar(&exportOutput, "output", "resume.pdf", "Output PDF path")
	exportPDFCmd.Flags().StringVar(&exportLang, "lang", "en", "Language to render (en or ja)")
	exportPDFCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Render timeout")
	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	target := fmt.Sprintf("%s/resume?lang=%s", strings.TrimRight(exportURL, "/"), exportLang)

	var pdf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", target, err)
	}

	if err := os.WriteFile(exportOutput, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", exportOutput, len(pdf))
	return nil
}
