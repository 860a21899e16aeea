// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/mwbub/get-paper/internal/bib"
	"github.com/mwbub/get-paper/internal/inspire"
	"github.com/mwbub/get-paper/pkg/types"
)

// UpdateResult holds the outcome of an update run.
type UpdateResult struct {
	Updated int
	Failed  int
}

// Total returns the total number of entries processed.
func (r UpdateResult) Total() int {
	return r.Updated + r.Failed
}

// HasFailures reports whether any entries failed to update.
func (r UpdateResult) HasFailures() bool {
	return r.Failed > 0
}

// UpdateAll re-fetches every entry in the directory's citation file that
// carries an eprint field, in file order. Each entry is fetched through
// FetchPaper, so the refreshed citation replaces the old one in place.
// It continues after individual failures and applies cfg.Delay between
// consecutive fetches.
func UpdateAll(ctx context.Context, client *inspire.Client, cfg types.FetchConfig, w io.Writer) (UpdateResult, error) {
	var result UpdateResult

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return result, fmt.Errorf("resolving %s: %w", cfg.Dir, err)
	}

	bibPath := citationPath(dir, cfg)
	text, err := bib.Load(bibPath)
	if err != nil {
		return result, fmt.Errorf("reading %s: %w", bibPath, err)
	}

	eprints := bib.Eprints(text)
	if len(eprints) == 0 {
		fmt.Fprintf(w, "No papers to update in %s\n", bibPath)
		return result, nil
	}

	for i, ep := range eprints {
		if i > 0 && cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
		fmt.Fprintf(w, "Updating %s (%d of %d)\n", ep, i+1, len(eprints))
		if _, err := FetchPaper(ctx, client, inspire.IDArxiv, ep, cfg, w); err != nil {
			fmt.Fprintf(w, "failed: %s (%d of %d): %v\n", ep, i+1, len(eprints), err)
			result.Failed++
			continue
		}
		result.Updated++
	}

	fmt.Fprintf(w, "\nUpdate summary: %d updated, %d failed (total: %d)\n",
		result.Updated, result.Failed, result.Total())
	return result, nil
}
