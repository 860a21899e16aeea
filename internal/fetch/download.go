// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/mwbub/get-paper/internal/inspire"
)

// downloadPDF fetches url to destPath using a temporary file, renaming
// on success so a failed download never leaves a partial file behind.
func downloadPDF(ctx context.Context, client *inspire.Client, url, destPath string) error {
	resp, err := client.Get(ctx, url, "application/pdf")
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".get-paper-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// validatePDF opens the file with a PDF parser and checks that it has at
// least one page. Callers treat a failure as a warning, not an error;
// arXiv occasionally serves HTML error pages with a 200 status.
func validatePDF(path string) error {
	f, r, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("parsing PDF: %w", err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return fmt.Errorf("PDF has no pages")
	}
	return nil
}
