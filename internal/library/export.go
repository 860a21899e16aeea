// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the full index to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	papers, err := s.List(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the full index to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	papers, err := s.List(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}
