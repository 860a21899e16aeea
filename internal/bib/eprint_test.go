// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"reflect"
	"testing"
)

func TestEprints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"new style quoted",
			`eprint = "2301.01234"`,
			[]string{"2301.01234"},
		},
		{
			"old style braced",
			`eprint = {hep-th/9901001}`,
			[]string{"hep-th/9901001"},
		},
		{
			"old style with subject class",
			`eprint = "math.GT/0309136"`,
			[]string{"math.GT/0309136"},
		},
		{
			"versioned",
			`eprint = "2301.01234v2"`,
			[]string{"2301.01234v2"},
		},
		{
			"order of appearance",
			"@article{A2020,\n    eprint = \"2101.00001\",\n    year = 2020\n}\n\n" +
				"@article{B2021,\n    eprint = \"hep-ph/0001234\",\n    year = 2021\n}\n\n",
			[]string{"2101.00001", "hep-ph/0001234"},
		},
		{
			"duplicates preserved",
			"eprint = \"2101.00001\"\neprint = \"2101.00001\"\n",
			[]string{"2101.00001", "2101.00001"},
		},
		{
			"full inspire entry",
			"@article{Maldacena:1997re,\n" +
				"    author = \"Maldacena, Juan Martin\",\n" +
				"    title = \"{The Large N limit of superconformal field theories and supergravity}\",\n" +
				"    eprint = \"hep-th/9711200\",\n" +
				"    archivePrefix = \"arXiv\",\n" +
				"    doi = \"10.1023/A:1026654312961\",\n" +
				"    year = \"1998\"\n}\n\n",
			[]string{"hep-th/9711200"},
		},
		{
			"no eprint fields",
			"@article{k,\n    year = 2020\n}\n\n",
			nil,
		},
		{
			"empty text",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Eprints(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Eprints(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
