package bib

import "fmt"

// CitationKind identifies the BibTeX entry kind of a citation.
type CitationKind string

// Citation kind constants. The set is closed: serialization switches over it
// exhaustively and panics on anything else.
const (
	// Article is a journal or magazine article (@article).
	Article CitationKind = "article"
)

// validKinds is the set of recognized citation kinds.
var validKinds = map[CitationKind]bool{
	Article: true,
}

// IsValid returns true if the citation kind is recognized.
func (k CitationKind) IsValid() bool {
	return validKinds[k]
}

// Citation is one immutable bibliographic record.
//
// Citations are constructed once, typically inside a registry declaration, and
// never mutated. They are shared read-only between inline cite calls and the
// aggregate Bibliography, so concurrent use needs no locking.
type Citation struct {
	// Key is the unique reference key used by \cite and the BibTeX entry.
	// Uniqueness across one Bibliography is a caller obligation.
	Key string

	// Kind is the BibTeX entry kind.
	Kind CitationKind

	// Title is the work's title, emitted verbatim.
	Title string

	// Author is the author field, emitted verbatim.
	Author string

	// Year is the publication year as opaque text. It is deliberately not a
	// number; values like "2020" and "forthcoming" are equally valid.
	Year string
}

// Cite returns the inline reference marker for this citation: \cite{<key>}.
func (c Citation) Cite() string {
	return fmt.Sprintf("\\cite{%s}", c.Key)
}

// BibEntry returns the BibTeX entry text for this citation, without a trailing
// newline. Spacing between entries is the aggregator's concern.
//
// The kind enumeration is closed, so an unrecognized kind is a programming
// defect: BibEntry panics rather than emit text the external bibliography
// processor would misread.
func (c Citation) BibEntry() string {
	switch c.Kind {
	case Article:
		return fmt.Sprintf("@article{%s,\nauthor={%s},\ntitle={%s},\nyear={%s}\n}",
			c.Key, c.Author, c.Title, c.Year)
	default:
		panic(fmt.Sprintf("bib: unrecognized citation kind %q for key %q", c.Kind, c.Key))
	}
}
