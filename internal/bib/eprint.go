// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import "regexp"

// eprintRe matches arXiv identifiers in eprint fields: new-style
// "2301.01234" or old-style "hep-th/9901001" with an optional archive
// subcategory or subject class, either form with an optional version
// suffix.
var eprintRe = regexp.MustCompile(
	`eprint\s*=\s*["{]\s*(\d{4}\.\d{4,5}(?:v\d+)?|[a-z][a-z-]*(?:\.[A-Za-z-]+)?/\d{7}(?:v\d+)?)`,
)

// Eprints returns every arXiv identifier appearing as an eprint field
// value, in order of appearance. Duplicates are preserved.
func Eprints(text string) []string {
	var ids []string
	for _, m := range eprintRe.FindAllStringSubmatch(text, -1) {
		ids = append(ids, m[1])
	}
	return ids
}
