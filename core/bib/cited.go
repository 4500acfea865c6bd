package bib

import (
	"fmt"
	"strings"

	"github.com/texforge/texforge/core/errors"
)

// Citer is the capability of producing an inline reference marker.
// It is implemented by a single Citation and by a Citations group, and the two
// are interchangeable everywhere a marker is embedded in prose.
type Citer interface {
	// Cite returns the inline reference marker text.
	Cite() string
}

// Citations is an ordered, non-owning group of citations cited at one point in
// the text. It borrows its members for the duration of a render call; nothing
// is copied.
type Citations []Citation

// Cite returns the concatenation of each member's marker, in order, with no
// separator: \cite{a}\cite{b}. An empty group yields "". See the package doc
// for why this is not a single comma-joined command.
func (cs Citations) Cite() string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Cite())
	}
	return b.String()
}

// Segment is one literal text fragment and the citation marker that
// immediately follows it.
type Segment struct {
	Text string
	Ref  Citer
}

// Cited assembles prose with inline citations: each segment's text is emitted
// followed directly by its marker, with nothing added or trimmed between them.
// Zero segments yield "". A segment with a nil Ref contributes its text alone,
// so trailing prose after the last citation needs no placeholder marker.
func Cited(segments ...Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
		if s.Ref != nil {
			b.WriteString(s.Ref.Cite())
		}
	}
	return b.String()
}

// Interleave is the two-slice form of Cited: texts[i] is emitted followed by
// refs[i].Cite(), in order. The slices must have equal length; a mismatch is
// reported as a validation error rather than silently truncating either side.
func Interleave(texts []string, refs []Citer) (string, error) {
	if len(texts) != len(refs) {
		return "", errors.NewValidation("segments",
			fmt.Sprintf("text and citation counts differ: %d texts, %d citations", len(texts), len(refs)))
	}
	var b strings.Builder
	for i, t := range texts {
		b.WriteString(t)
		b.WriteString(refs[i].Cite())
	}
	return b.String(), nil
}
