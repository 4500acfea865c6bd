package bib

import (
	"os"
	"strings"

	"github.com/texforge/texforge/core/errors"
)

// FilecontentsName is the fixed target filename inside the filecontents*
// envelope. External documents reference it as \bibliography{main}.
const FilecontentsName = "main.bib"

// Bibliography is the ordered, immutable set of all citations declared for one
// document. Order is declaration order and determines serialization order.
// A Bibliography does not own its members; the same Citation values are also
// cited individually in prose.
type Bibliography struct {
	citations []Citation
}

// NewBibliography builds a bibliography over the given citations, preserving
// their order. The slice is copied so later caller mutations cannot skew
// serialization.
func NewBibliography(citations []Citation) Bibliography {
	owned := make([]Citation, len(citations))
	copy(owned, citations)
	return Bibliography{citations: owned}
}

// Citations returns the member citations in declaration order.
// The returned slice is shared; callers must not modify it.
func (b Bibliography) Citations() []Citation {
	return b.citations
}

// Len returns the number of citations in the bibliography.
func (b Bibliography) Len() int {
	return len(b.citations)
}

// String returns the aggregate BibTeX text: every member's entry in
// declaration order, each followed by one newline, with no envelope. This is
// the form written to a standalone .bib file.
func (b Bibliography) String() string {
	var sb strings.Builder
	for _, c := range b.citations {
		sb.WriteString(c.BibEntry())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Filecontents returns the aggregate BibTeX text wrapped in the filecontents*
// envelope, for embedding the bibliography inline in a .tex document:
//
//	\begin{filecontents*}{main.bib}
//	...entries...
//	\end{filecontents*}
func (b Bibliography) Filecontents() string {
	var sb strings.Builder
	sb.WriteString("\\begin{filecontents*}{" + FilecontentsName + "}\n")
	sb.WriteString(b.String())
	sb.WriteString("\\end{filecontents*}\n")
	return sb.String()
}

// WriteFile writes the aggregate BibTeX text (no envelope) to path, creating
// or truncating the file. The failure is surfaced untranslated inside an
// IOError; nothing is retried and no parent directories are created.
func (b Bibliography) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}
