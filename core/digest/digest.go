// Package digest computes content digests for rendered output.
//
// Generated .tex and .bib text must be byte-identical across renders and
// round-trips; digests are how that is checked without diffing whole files.
// SHA-256 is the primary digest. BLAKE3 is computed alongside it where a
// faster secondary fingerprint is useful (snapshot manifests, large corpora).
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// SHA256 computes the SHA-256 digest of data as a hex string.
func SHA256(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SHA256String computes the SHA-256 digest of a string as a hex string.
func SHA256String(s string) string {
	return SHA256([]byte(s))
}

// BLAKE3 computes the BLAKE3-256 digest of data as a hex string.
func BLAKE3(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Pair holds both digests for one blob of rendered text.
type Pair struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Sum computes both digests of data.
func Sum(data []byte) Pair {
	return Pair{
		SHA256: SHA256(data),
		BLAKE3: BLAKE3(data),
	}
}

// Equal reports whether two digest pairs describe the same bytes. Both hashes
// must match; a disagreement between them means one side is corrupt.
func (p Pair) Equal(other Pair) bool {
	return p.SHA256 == other.SHA256 && p.BLAKE3 == other.BLAKE3
}
