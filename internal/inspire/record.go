// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspire

import (
	"fmt"
	"strconv"
)

// recordMetadata captures the bibliographic fields get-paper consumes
// from an INSPIRE literature record.
type recordMetadata struct {
	Titles        []recordTitle    `json:"titles"`
	Texkeys       []string         `json:"texkeys"`
	ArxivEprints  []recordValue    `json:"arxiv_eprints"`
	DOIs          []recordValue    `json:"dois"`
	Documents     []recordDocument `json:"documents"`
	ControlNumber int              `json:"control_number"`
}

type recordTitle struct {
	Title string `json:"title"`
}

type recordValue struct {
	Value string `json:"value"`
}

type recordDocument struct {
	URL string `json:"url"`
}

type recordLinks struct {
	Bibtex string `json:"bibtex"`
}

// Record is one INSPIRE literature record.
type Record struct {
	Metadata recordMetadata `json:"metadata"`
	Links    recordLinks    `json:"links"`
}

// Title returns the record's primary title.
func (r *Record) Title() (string, error) {
	if len(r.Metadata.Titles) == 0 {
		return "", fmt.Errorf("record has no title")
	}
	return r.Metadata.Titles[0].Title, nil
}

// Texkey returns the record's citation key.
func (r *Record) Texkey() (string, error) {
	if len(r.Metadata.Texkeys) == 0 {
		return "", fmt.Errorf("record has no texkey")
	}
	return r.Metadata.Texkeys[0], nil
}

// Eprint returns the record's arXiv identifier, if it has one.
func (r *Record) Eprint() (string, bool) {
	if len(r.Metadata.ArxivEprints) == 0 {
		return "", false
	}
	return r.Metadata.ArxivEprints[0].Value, true
}

// DOI returns the record's primary DOI, if it has one.
func (r *Record) DOI() (string, bool) {
	if len(r.Metadata.DOIs) == 0 {
		return "", false
	}
	return r.Metadata.DOIs[0].Value, true
}

// PDFURL returns the download URL for the record's full text: the first
// document attached to the record when INSPIRE has one, otherwise the
// arXiv PDF endpoint for the record's eprint. ok is false when neither
// exists.
func (r *Record) PDFURL() (url string, ok bool) {
	if len(r.Metadata.Documents) > 0 {
		return r.Metadata.Documents[0].URL, true
	}
	if ep, hasEprint := r.Eprint(); hasEprint {
		return ArxivPDFBase + ep + ".pdf", true
	}
	return "", false
}

// BibtexURL returns the link to the record's BibTeX rendering.
func (r *Record) BibtexURL() (string, error) {
	if r.Links.Bibtex == "" {
		return "", fmt.Errorf("record has no bibtex link")
	}
	return r.Links.Bibtex, nil
}

// ControlNumber returns the INSPIRE literature ID as a string, or empty
// when the record carries none.
func (r *Record) ControlNumber() string {
	if r.Metadata.ControlNumber == 0 {
		return ""
	}
	return strconv.Itoa(r.Metadata.ControlNumber)
}
