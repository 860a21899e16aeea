// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib rewrites BibTeX citation text without building an entry
// object model. Structural commas, equals signs, and braces inside field
// values are first swapped for placeholder bytes so the regex-based
// reformatting pass cannot touch them, then swapped back.
package bib

import (
	"errors"
	"strings"
)

// Placeholder bytes substituted for characters that occur inside field
// values. Control bytes cannot appear in well-formed citation text, so
// restoring them is unambiguous.
const (
	commaMark  = "\x00"
	equalsMark = "\x01"
	braceMark  = "\x02"
)

// Structural failures detected while scanning citation text. These abort
// the clean operation; callers must leave the on-disk file untouched.
var (
	ErrUnbalancedBrace = errors.New("unbalanced curly braces in citation text")
	ErrUnbalancedQuote = errors.New("unbalanced quotation marks in citation text")
	ErrReservedByte    = errors.New("citation text contains reserved control bytes")
)

// Escape replaces every comma, equals sign, and closing brace that lies
// inside a field value (nesting depth above 1) with a placeholder byte,
// leaving field separators and entry terminators untouched.
//
// The text is scanned back to front: braces and quotes close before they
// open when read backwards, so the depth at each character is known
// without lookahead. Depth 0 is outside any entry, depth 1 is the
// field-separator level inside an entry's outer braces, and anything
// deeper is literal field content.
func Escape(text string) (string, error) {
	if strings.ContainsAny(text, commaMark+equalsMark+braceMark) {
		return "", ErrReservedByte
	}

	out := []byte(text)
	level := 0
	quoteOpen := false

	for i := len(out) - 1; i >= 0; i-- {
		switch out[i] {
		case ',':
			if level > 1 {
				out[i] = commaMark[0]
			}
		case '=':
			if level > 1 {
				out[i] = equalsMark[0]
			}
		case '}':
			if level > 0 {
				out[i] = braceMark[0]
			}
			level++
		case '{':
			level--
		case '"':
			if i > 0 && out[i-1] == '\\' {
				continue
			}
			if quoteOpen {
				level--
			} else {
				level++
			}
			quoteOpen = !quoteOpen
		}
	}

	if level != 0 {
		return "", ErrUnbalancedBrace
	}
	if quoteOpen {
		return "", ErrUnbalancedQuote
	}
	return string(out), nil
}

// restorer maps placeholder bytes back to their literal characters.
var restorer = strings.NewReplacer(
	commaMark, ",",
	equalsMark, "=",
	braceMark, "}",
)

// Restore reverses Escape. It is safe on any successfully escaped text.
func Restore(text string) string {
	return restorer.Replace(text)
}
