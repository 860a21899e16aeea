// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"errors"
	"testing"
)

const twoEntries = "@article{A2020,\n    title = {First},\n    year = 2020\n}\n\n" +
	"@article{B2021,\n    title = {Second},\n    year = 2021\n}\n\n"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{
			"single-line entry",
			`@article{Smith:2020abc, author = "Smith, J.", title = "{A} Title", year = 2020}`,
			"",
			"@article{Smith:2020abc,\n    author = \"Smith, J.\",\n    title = \"{A} Title\",\n    year = 2020\n}\n\n",
		},
		{
			"ragged spacing normalized",
			"@article{k ,title={X},\n\n\n year   =   2020   }",
			"",
			"@article{k,\n    title = {X},\n    year = 2020\n}\n\n",
		},
		{
			"leading whitespace stripped",
			"\n\n   @article{k, year = 2020}",
			"",
			"@article{k,\n    year = 2020\n}\n\n",
		},
		{
			"interior comma survives",
			"@Article{k, title = {Has, a comma}, year = 2020}",
			"",
			"@Article{k,\n    title = {Has, a comma},\n    year = 2020\n}\n\n",
		},
		{
			"delete first entry",
			twoEntries,
			"A2020",
			"@article{B2021,\n    title = {Second},\n    year = 2021\n}\n\n",
		},
		{
			"delete second entry",
			twoEntries,
			"B2021",
			"@article{A2020,\n    title = {First},\n    year = 2020\n}\n\n",
		},
		{
			"delete absent key",
			twoEntries,
			"C2022",
			twoEntries,
		},
		{
			"empty key deletes nothing",
			twoEntries,
			"",
			twoEntries,
		},
		{
			"empty input",
			"",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.input, tt.key)
			if err != nil {
				t.Fatalf("Clean: %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q, %q) = %q, want %q", tt.input, tt.key, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		`@article{Smith:2020abc, author = "Smith, J.", title = "{A} Title", year = 2020}`,
		twoEntries,
		"@Article{k, title = {outer {inner} text}, pages = {1--10}}",
		"",
	}
	for _, input := range inputs {
		once, err := Clean(input, "")
		if err != nil {
			t.Fatalf("Clean(%q): %v", input, err)
		}
		twice, err := Clean(once, "")
		if err != nil {
			t.Fatalf("Clean(Clean(%q)): %v", input, err)
		}
		if twice != once {
			t.Errorf("Clean is not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestCleanUnbalancedInput(t *testing.T) {
	_, err := Clean(`@Article{x, title = "Unbalanced}`, "")
	if err == nil {
		t.Fatal("expected structural error for unbalanced input")
	}
	if !errors.Is(err, ErrUnbalancedBrace) {
		t.Errorf("error = %v, want %v", err, ErrUnbalancedBrace)
	}
}

func TestCleanDeletesAllEntriesWithKey(t *testing.T) {
	// The same key twice: both copies go.
	input := "@article{A2020,\n    year = 2020\n}\n\n" +
		"@article{B2021,\n    year = 2021\n}\n\n" +
		"@article{A2020,\n    year = 2022\n}\n\n"
	got, err := Clean(input, "A2020")
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	want := "@article{B2021,\n    year = 2021\n}\n\n"
	if got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}
