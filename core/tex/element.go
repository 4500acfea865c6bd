package tex

import (
	"fmt"
	"strings"
)

// Element is one body item of a document. The set of implementations is
// closed; each knows how to write its own lines of LaTeX source.
type Element interface {
	render(sb *strings.Builder)
}

// TitlePage emits \maketitle.
type TitlePage struct{}

func (TitlePage) render(sb *strings.Builder) {
	sb.WriteString("\\maketitle\n")
}

// ClearPage emits \clearpage.
type ClearPage struct{}

func (ClearPage) render(sb *strings.Builder) {
	sb.WriteString("\\clearpage\n")
}

// TableOfContents emits \tableofcontents.
type TableOfContents struct{}

func (TableOfContents) render(sb *strings.Builder) {
	sb.WriteString("\\tableofcontents\n")
}

// Paragraph is a block of prose, emitted verbatim followed by a blank line.
// Inline citation markers from bib.Cited are embedded here as plain text.
type Paragraph string

func (p Paragraph) render(sb *strings.Builder) {
	sb.WriteString(string(p))
	sb.WriteString("\n\n")
}

// Raw is a line of LaTeX source passed through untouched, for directives the
// element set does not model.
type Raw string

func (r Raw) render(sb *strings.Builder) {
	sb.WriteString(string(r))
	sb.WriteByte('\n')
}

// Section is a \section with its own ordered paragraphs.
type Section struct {
	name       string
	paragraphs []Paragraph
}

// NewSection creates a section with the given heading.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the section heading.
func (s *Section) Name() string {
	return s.name
}

// Push appends a paragraph to the section, returning the section for
// chaining.
func (s *Section) Push(text string) *Section {
	s.paragraphs = append(s.paragraphs, Paragraph(text))
	return s
}

func (s *Section) render(sb *strings.Builder) {
	fmt.Fprintf(sb, "\\section{%s}\n", s.name)
	for _, p := range s.paragraphs {
		p.render(sb)
	}
}
