// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library maintains a per-directory SQLite index of fetched
// papers. The citation file stays the source of truth; the index is
// rebuilt row by row as papers are fetched.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mwbub/get-paper/pkg/types"
)

const (
	indexDir = ".get-paper"
	dbFile   = "library.db"
)

// Store manages the paper index database for one destination directory.
type Store struct {
	db *sql.DB
}

// Open opens or creates the index at dir/.get-paper/library.db, creating
// the schema if it does not exist.
func Open(dir string) (*Store, error) {
	dbDir := filepath.Join(dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			texkey TEXT PRIMARY KEY,
			title TEXT,
			eprint TEXT,
			doi TEXT,
			inspire_id TEXT,
			pdf_file TEXT,
			bib_file TEXT,
			fetched_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_eprint ON papers(eprint)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts a fetched paper by texkey, so re-fetching a paper
// refreshes its row.
func (s *Store) Record(ctx context.Context, p *types.Paper) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO papers (texkey, title, eprint, doi, inspire_id, pdf_file, bib_file, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(texkey) DO UPDATE SET
			title=excluded.title, eprint=excluded.eprint, doi=excluded.doi,
			inspire_id=excluded.inspire_id, pdf_file=excluded.pdf_file,
			bib_file=excluded.bib_file, fetched_at=excluded.fetched_at`,
		p.Texkey, p.Title, p.Eprint, p.DOI, p.InspireID, p.PDFFile, p.BibFile,
		p.FetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", p.Texkey, err)
	}
	return nil
}

// List returns all indexed papers ordered by texkey.
func (s *Store) List(ctx context.Context) ([]types.Paper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT texkey, title, eprint, doi, inspire_id, pdf_file, bib_file, fetched_at
		 FROM papers ORDER BY texkey`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var p types.Paper
		var fetchedAt string
		if err := rows.Scan(&p.Texkey, &p.Title, &p.Eprint, &p.DOI,
			&p.InspireID, &p.PDFFile, &p.BibFile, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, fetchedAt); parseErr == nil {
			p.FetchedAt = t
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
