// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves papers end to end: the INSPIRE record, the
// PDF, and the BibTeX citation entry.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mwbub/get-paper/internal/bib"
	"github.com/mwbub/get-paper/internal/inspire"
	"github.com/mwbub/get-paper/internal/library"
	"github.com/mwbub/get-paper/internal/naming"
	"github.com/mwbub/get-paper/pkg/types"
)

// ErrNotDirectory reports that the destination path exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// FetchPaper retrieves the INSPIRE record for an identifier, downloads
// the PDF into cfg.Dir, and inserts the BibTeX entry into the citation
// file, replacing any previous entry with the same texkey. The PDF and
// citation file names are derived from the record metadata. Progress
// and warnings are written to w.
func FetchPaper(ctx context.Context, client *inspire.Client, typ inspire.IDType, id string, cfg types.FetchConfig, w io.Writer) (*types.Paper, error) {
	rec, err := client.FetchRecord(ctx, typ, id)
	if err != nil {
		return nil, err
	}

	title, err := rec.Title()
	if err != nil {
		return nil, fmt.Errorf("record for %s %s: %w", typ, id, err)
	}
	texkey, err := rec.Texkey()
	if err != nil {
		return nil, fmt.Errorf("record for %s %s: %w", typ, id, err)
	}

	dir, err := ensureDir(cfg.Dir)
	if err != nil {
		return nil, err
	}

	paper := &types.Paper{
		Texkey:    texkey,
		Title:     title,
		InspireID: rec.ControlNumber(),
		FetchedAt: time.Now().UTC(),
	}
	if ep, ok := rec.Eprint(); ok {
		paper.Eprint = ep
	}
	if doi, ok := rec.DOI(); ok {
		paper.DOI = doi
	}

	if pdfURL, ok := rec.PDFURL(); ok {
		pdfPath := filepath.Join(dir, naming.PDFName(texkey, title))
		if err := downloadPDF(ctx, client, pdfURL, pdfPath); err != nil {
			return nil, fmt.Errorf("downloading PDF for %s: %w", texkey, err)
		}
		if err := validatePDF(pdfPath); err != nil {
			fmt.Fprintf(w, "warning: %s does not look like a valid PDF: %v\n", pdfPath, err)
		}
		paper.PDFFile = pdfPath
		fmt.Fprintf(w, "Saved paper to %s\n", pdfPath)
	} else {
		fmt.Fprintf(w, "warning: no PDF available for %s, saving citation only\n", texkey)
	}

	entry, err := client.FetchBibTeX(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("fetching BibTeX for %s: %w", texkey, err)
	}

	bibPath := citationPath(dir, cfg)
	if err := bib.Update(bibPath, entry, texkey); err != nil {
		return nil, fmt.Errorf("updating %s: %w", bibPath, err)
	}
	paper.BibFile = bibPath
	fmt.Fprintf(w, "Saved BibTeX citation to %s\n", bibPath)

	if err := recordInLibrary(ctx, dir, paper); err != nil {
		fmt.Fprintf(w, "warning: updating library index: %v\n", err)
	}

	return paper, nil
}

// citationPath returns the citation-file path for a resolved directory,
// honoring the configured name override.
func citationPath(dir string, cfg types.FetchConfig) string {
	name := cfg.BibFile
	if name == "" {
		name = naming.BibName(dir)
	}
	return filepath.Join(dir, name)
}

// ensureDir resolves dir to an absolute path, creating it if missing.
// An existing non-directory path is an error.
func ensureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%s: %w", abs, ErrNotDirectory)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", abs, err)
		}
	default:
		return "", fmt.Errorf("checking %s: %w", abs, err)
	}
	return abs, nil
}

// recordInLibrary upserts the paper into the per-directory library index.
func recordInLibrary(ctx context.Context, dir string, paper *types.Paper) error {
	store, err := library.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, paper)
}
