// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"regexp"
	"strings"
)

// Layout rules for escaped text. Only field separators and entry
// terminators survive escaping, so these match structure, never content.
var (
	commaRe  = regexp.MustCompile(`\s*,\s*`)
	equalsRe = regexp.MustCompile(`\s*=\s*`)
	braceRe  = regexp.MustCompile(`\s*\}\s*`)
)

// Reformat normalizes the layout of escaped citation text: each field
// starts on its own four-space-indented line, equals signs get a single
// space on each side, and each entry's closing brace sits on its own
// line followed by one blank line. Leading whitespace is stripped.
func Reformat(text string) string {
	text = commaRe.ReplaceAllString(text, ",\n    ")
	text = equalsRe.ReplaceAllString(text, " = ")
	text = braceRe.ReplaceAllString(text, "\n}\n\n")
	return strings.TrimLeft(text, " \t\r\n")
}

// deleteEntry removes every entry opening with the given key from
// escaped, reformatted text, through its terminating brace and blank
// line. The match is non-greedy, stopping at the first terminator.
// Matching is prefix-based: a key that is a strict prefix of another
// key also matches the longer key's entry.
func deleteEntry(text, key string) string {
	if key == "" {
		return text
	}
	re := regexp.MustCompile(`(?s)@\w+\{` + regexp.QuoteMeta(key) + `.*?\n\}\n\n`)
	return re.ReplaceAllString(text, "")
}

// Clean runs the full pipeline over raw citation text: escape, reformat,
// delete the entry keyed by key (when key is non-empty), restore.
// Cleaning already-clean text reproduces it byte for byte.
func Clean(text, key string) (string, error) {
	escaped, err := Escape(text)
	if err != nil {
		return "", err
	}
	formatted := deleteEntry(Reformat(escaped), key)
	return Restore(formatted), nil
}
