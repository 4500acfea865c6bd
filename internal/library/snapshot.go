package library

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/bibtex"
	"github.com/texforge/texforge/core/digest"
	"github.com/texforge/texforge/core/errors"
)

// SnapshotManifest describes one written snapshot.
type SnapshotManifest struct {
	Path      string      `json:"path"`
	Citations int         `json:"citations"`
	Digest    digest.Pair `json:"digest"`
}

// Snapshot writes the library's BibTeX text, xz-compressed, to path and
// returns a manifest with the digest of the uncompressed text. Snapshots are
// the archival form of a library; ReadSnapshot restores the citations.
func (s *Store) Snapshot(path string) (*SnapshotManifest, error) {
	b, err := s.Bibliography()
	if err != nil {
		return nil, err
	}
	text := []byte(b.String())

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.NewIO("create", path, err)
	}
	defer f.Close()

	xw, err := xz.NewWriter(f)
	if err != nil {
		return nil, fmt.Errorf("xz writer: %w", err)
	}
	if _, err := xw.Write(text); err != nil {
		return nil, errors.NewIO("write", path, err)
	}
	if err := xw.Close(); err != nil {
		return nil, errors.NewIO("write", path, err)
	}

	return &SnapshotManifest{
		Path:      path,
		Citations: b.Len(),
		Digest:    digest.Sum(text),
	}, nil
}

// ReadSnapshot decompresses and parses a snapshot written by Snapshot,
// returning its citations in stored order.
func ReadSnapshot(path string) ([]bib.Citation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, xr); err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	return bibtex.Parse(buf.Bytes())
}

// Restore adds every citation from a snapshot into the library. It stops at
// the first failure, leaving earlier additions in place.
func (s *Store) Restore(path string) (int, error) {
	citations, err := ReadSnapshot(path)
	if err != nil {
		return 0, err
	}
	for i, c := range citations {
		if _, err := s.Add(c); err != nil {
			return i, fmt.Errorf("restore %q: %w", c.Key, err)
		}
	}
	return len(citations), nil
}
