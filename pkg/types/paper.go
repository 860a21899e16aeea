// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared across the fetch,
// citation, and library packages.
package types

import "time"

// Paper holds the metadata and file locations recorded for a fetched paper.
type Paper struct {
	// Texkey is the INSPIRE citation key (e.g. "Smith:2020abc").
	Texkey string `json:"texkey" yaml:"texkey"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Eprint is the arXiv identifier, when the paper has one.
	Eprint string `json:"eprint,omitempty" yaml:"eprint,omitempty"`

	// DOI is the digital object identifier, when the paper has one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// InspireID is the INSPIRE literature control number.
	InspireID string `json:"inspire_id,omitempty" yaml:"inspire_id,omitempty"`

	// PDFFile is the saved PDF path, empty when no document was available.
	PDFFile string `json:"pdf_file,omitempty" yaml:"pdf_file,omitempty"`

	// BibFile is the citation file the paper's entry was written to.
	BibFile string `json:"bib_file" yaml:"bib_file"`

	// FetchedAt records when the paper was last fetched.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
