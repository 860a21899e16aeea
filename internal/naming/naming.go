// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming derives file names from INSPIRE citation keys and paper
// titles.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ParseTexkey shortens an INSPIRE citation key for use in file names:
// "Smith:2020abcde" becomes "Smith2020", dropping the colon and any
// suffix characters beyond the first four. A key without a colon is
// returned unchanged.
func ParseTexkey(texkey string) string {
	prefix, rest, found := strings.Cut(texkey, ":")
	if !found {
		return texkey
	}
	if len(rest) > 4 {
		rest = rest[:4]
	}
	return prefix + rest
}

// ToPascal converts a title to PascalCase: non-alphanumeric characters
// split words, fully lowercase words are capitalized, and mixed-case or
// uppercase words ("QCD") pass through unchanged.
func ToPascal(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	var b strings.Builder
	for _, word := range strings.Fields(cleaned) {
		if isLowerWord(word) {
			word = capitalize(word)
		}
		b.WriteString(word)
	}
	return b.String()
}

// isLowerWord reports whether word contains at least one letter and no
// uppercase letters.
func isLowerWord(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// capitalize uppercases the first letter of each letter run, so "of"
// becomes "Of" and "2d" becomes "2D".
func capitalize(word string) string {
	rs := []rune(word)
	prevLetter := false
	for i, r := range rs {
		if unicode.IsLetter(r) {
			if !prevLetter {
				rs[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(rs)
}

var (
	upperRunRe = regexp.MustCompile(`([A-Z]+)`)
	capWordRe  = regexp.MustCompile(`([A-Z][a-z]+)`)
)

// ToSnake converts a name to lower snake case: hyphens become spaces,
// word boundaries are inserted before uppercase runs and before
// capitalized words, and the words are lowercased and joined with
// underscores.
func ToSnake(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = upperRunRe.ReplaceAllString(s, " $1")
	s = capWordRe.ReplaceAllString(s, " $1")
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// PDFName derives the file name a fetched paper is saved under:
// "<ShortKey>_<PascalTitle>.pdf".
func PDFName(texkey, title string) string {
	return ParseTexkey(texkey) + "_" + ToPascal(title) + ".pdf"
}

// BibName derives the default citation file name for a destination
// directory from its base name. The directory should already be an
// absolute path so "." resolves to a real name.
func BibName(dir string) string {
	return ToSnake(filepath.Base(dir)) + ".bib"
}
