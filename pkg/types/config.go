package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to INSPIRE and arXiv.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-paper/0.2").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for fetching papers into a directory.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Dir is the destination directory for PDFs and the citation file.
	Dir string `json:"dir" yaml:"dir"`

	// BibFile overrides the citation file name. When empty, the name is
	// derived from the directory name (lower snake case plus ".bib").
	BibFile string `json:"bib_file" yaml:"bib_file"`

	// Delay is the pause between consecutive fetches in update mode (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay"`
}
