// Package library provides a persistent, SQLite-backed store of citations.
//
// A library outlives any single document: citations are added once and
// exported into per-document bibliographies later. Rows keep insertion order,
// so an exported bibliography serializes in the order citations entered the
// library, mirroring declaration order in code-declared registries.
package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/errors"
	"github.com/texforge/texforge/core/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS citations (
	id       TEXT PRIMARY KEY,
	key      TEXT NOT NULL UNIQUE,
	kind     TEXT NOT NULL,
	title    TEXT NOT NULL,
	author   TEXT NOT NULL,
	year     TEXT NOT NULL,
	added_at INTEGER NOT NULL
);
`

// Store is a citation library backed by one SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the library at path and ensures its
// schema. Use ":memory:" for an ephemeral library in tests.
func Open(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure library schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a citation and returns the generated row ID. The citation key
// must be unique within the library; adding a key twice is an ErrDuplicate.
func (s *Store) Add(c bib.Citation) (string, error) {
	if c.Key == "" {
		return "", errors.NewValidation("key", "citation key must not be empty")
	}
	if !c.Kind.IsValid() {
		return "", errors.NewValidation("kind", fmt.Sprintf("unrecognized citation kind %q", c.Kind))
	}

	var exists int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM citations WHERE key = ?`, c.Key).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("check citation key: %w", err)
	}
	if exists > 0 {
		return "", errors.NewDuplicateName(c.Key)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO citations (id, key, kind, title, author, year, added_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, c.Key, string(c.Kind), c.Title, c.Author, c.Year, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert citation: %w", err)
	}
	return id, nil
}

// Get returns the citation stored under key.
func (s *Store) Get(key string) (bib.Citation, error) {
	var c bib.Citation
	var kind string
	err := s.db.QueryRow(
		`SELECT key, kind, title, author, year FROM citations WHERE key = ?`, key,
	).Scan(&c.Key, &kind, &c.Title, &c.Author, &c.Year)
	if err == sql.ErrNoRows {
		return bib.Citation{}, errors.NewNotFound("citation", key)
	}
	if err != nil {
		return bib.Citation{}, fmt.Errorf("query citation: %w", err)
	}
	c.Kind = bib.CitationKind(kind)
	return c, nil
}

// Remove deletes the citation stored under key.
func (s *Store) Remove(key string) error {
	res, err := s.db.Exec(`DELETE FROM citations WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete citation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete citation: %w", err)
	}
	if n == 0 {
		return errors.NewNotFound("citation", key)
	}
	return nil
}

// List returns all citations in insertion order.
func (s *Store) List() ([]bib.Citation, error) {
	rows, err := s.db.Query(
		`SELECT key, kind, title, author, year FROM citations ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list citations: %w", err)
	}
	defer rows.Close()

	var citations []bib.Citation
	for rows.Next() {
		var c bib.Citation
		var kind string
		if err := rows.Scan(&c.Key, &kind, &c.Title, &c.Author, &c.Year); err != nil {
			return nil, fmt.Errorf("scan citation: %w", err)
		}
		c.Kind = bib.CitationKind(kind)
		citations = append(citations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list citations: %w", err)
	}
	return citations, nil
}

// Bibliography materializes the whole library as one bibliography, in
// insertion order.
func (s *Store) Bibliography() (bib.Bibliography, error) {
	citations, err := s.List()
	if err != nil {
		return bib.Bibliography{}, err
	}
	return bib.NewBibliography(citations), nil
}

// Export writes the whole library as BibTeX text to path.
func (s *Store) Export(path string) error {
	b, err := s.Bibliography()
	if err != nil {
		return err
	}
	return b.WriteFile(path)
}
