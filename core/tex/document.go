package tex

import "github.com/texforge/texforge/core/bib"

// DocumentClass selects the LaTeX document class.
type DocumentClass string

// Document class constants.
const (
	ClassArticle DocumentClass = "article"
	ClassBook    DocumentClass = "book"
	ClassReport  DocumentClass = "report"
)

// validClasses is the set of supported document classes.
var validClasses = map[DocumentClass]bool{
	ClassArticle: true,
	ClassBook:    true,
	ClassReport:  true,
}

// IsValid returns true if the document class is supported.
func (c DocumentClass) IsValid() bool {
	return validClasses[c]
}

// Preamble holds everything emitted between \documentclass and
// \begin{document}.
type Preamble struct {
	title    string
	author   string
	packages []string
}

// Title sets the document title.
func (p *Preamble) Title(title string) *Preamble {
	p.title = title
	return p
}

// Author sets the document author.
func (p *Preamble) Author(author string) *Preamble {
	p.author = author
	return p
}

// UsePackage adds a \usepackage directive. Packages are emitted in the order
// they were added.
func (p *Preamble) UsePackage(name string) *Preamble {
	p.packages = append(p.packages, name)
	return p
}

// Document is a LaTeX document under construction: a class, a preamble, an
// ordered list of body elements, and optionally an attached bibliography.
type Document struct {
	// Preamble is the document preamble, mutated in place while building.
	Preamble Preamble

	class        DocumentClass
	elements     []Element
	bibliography *bib.Bibliography
}

// NewDocument creates an empty document with the given class.
func NewDocument(class DocumentClass) *Document {
	return &Document{class: class}
}

// Class returns the document class.
func (d *Document) Class() DocumentClass {
	return d.class
}

// Push appends a body element. It returns the document so elements can be
// pushed in a chain.
func (d *Document) Push(e Element) *Document {
	d.elements = append(d.elements, e)
	return d
}

// Elements returns the body elements in insertion order.
func (d *Document) Elements() []Element {
	return d.elements
}

// AttachBibliography attaches the document's bibliography. The renderer then
// emits the filecontents* envelope before \documentclass and the
// \bibliographystyle/\bibliography pair before \end{document}.
func (d *Document) AttachBibliography(b bib.Bibliography) *Document {
	d.bibliography = &b
	return d
}
