// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the citation file at path. A missing file is treated as
// empty citation text, not an error.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading citation file: %w", err)
	}
	return string(data), nil
}

// Write replaces the citation file at path via a temporary file in the
// same directory, so a failed write never leaves a truncated file.
func Write(path, text string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bib-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.WriteString(text)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing citation file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing citation file: %w", err)
	}
	return nil
}

// Update rewrites the citation file with entry appended: the stored text
// is cleaned, any previous entry keyed by key is removed, and the new
// entry goes at the end. The file is only replaced after the whole
// transform succeeds, so a structural error leaves it untouched.
func Update(path, entry, key string) error {
	text, err := Load(path)
	if err != nil {
		return err
	}
	cleaned, err := Clean(text, key)
	if err != nil {
		return err
	}
	return Write(path, cleaned+entry+"\n")
}

// CleanFile rewrites the citation file in canonical form, removing the
// entry keyed by key when key is non-empty.
func CleanFile(path, key string) error {
	text, err := Load(path)
	if err != nil {
		return err
	}
	cleaned, err := Clean(text, key)
	if err != nil {
		return err
	}
	return Write(path, cleaned)
}
