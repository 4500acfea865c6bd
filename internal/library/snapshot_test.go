package library

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/digest"
	forgeerrors "github.com/texforge/texforge/core/errors"
)

func TestSnapshotAndRead(t *testing.T) {
	s := openTestStore(t)
	for _, c := range []bib.Citation{knuth, lamport} {
		if _, err := s.Add(c); err != nil {
			t.Fatalf("Add(%s) failed: %v", c.Key, err)
		}
	}

	path := filepath.Join(t.TempDir(), "library.bib.xz")
	manifest, err := s.Snapshot(path)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if manifest.Citations != 2 {
		t.Errorf("manifest.Citations = %d, want 2", manifest.Citations)
	}

	// The manifest digest covers the uncompressed text.
	b, err := s.Bibliography()
	if err != nil {
		t.Fatalf("Bibliography failed: %v", err)
	}
	if want := digest.Sum([]byte(b.String())); !manifest.Digest.Equal(want) {
		t.Errorf("manifest digest = %+v, want %+v", manifest.Digest, want)
	}

	citations, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	if len(citations) != 2 {
		t.Fatalf("ReadSnapshot returned %d citations, want 2", len(citations))
	}
	if citations[0] != knuth || citations[1] != lamport {
		t.Errorf("citations = %+v, want [knuth, lamport] in order", citations)
	}
}

func TestSnapshotIsCompressed(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Add(knuth); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "library.bib.xz")
	if _, err := s.Snapshot(path); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	// xz stream magic bytes
	if !bytes.HasPrefix(data, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}) {
		t.Errorf("snapshot does not start with the xz magic: % x", data[:min(len(data), 6)])
	}
}

func TestRestore(t *testing.T) {
	src := openTestStore(t)
	for _, c := range []bib.Citation{knuth, lamport} {
		if _, err := src.Add(c); err != nil {
			t.Fatalf("Add(%s) failed: %v", c.Key, err)
		}
	}

	path := filepath.Join(t.TempDir(), "library.bib.xz")
	if _, err := src.Snapshot(path); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	dst := openTestStore(t)
	n, err := dst.Restore(path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Restore = %d citations, want 2", n)
	}

	restored, err := dst.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(restored) != 2 || restored[0] != knuth || restored[1] != lamport {
		t.Errorf("restored = %+v, want [knuth, lamport] in order", restored)
	}
}

func TestRestoreDuplicateStops(t *testing.T) {
	src := openTestStore(t)
	if _, err := src.Add(knuth); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "library.bib.xz")
	if _, err := src.Snapshot(path); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	dst := openTestStore(t)
	if _, err := dst.Add(knuth); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := dst.Restore(path); !errors.Is(err, forgeerrors.ErrDuplicate) {
		t.Errorf("Restore with existing key = %v, want ErrDuplicate", err)
	}
}

func TestReadSnapshotMissingFile(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.xz"))
	if err == nil {
		t.Fatalf("ReadSnapshot on missing file did not fail")
	}
	var ioErr *forgeerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error = %v, want *errors.IOError", err)
	}
}
