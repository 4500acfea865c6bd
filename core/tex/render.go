package tex

import (
	"fmt"
	"strings"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/errors"
)

// Render serializes the document to its complete .tex source text.
//
// Layout, in order: the bibliography filecontents* envelope (if attached),
// \documentclass, \usepackage directives, \title and \author, then the body
// between \begin{document} and \end{document} with each element rendered in
// insertion order. An attached bibliography also produces
// \bibliographystyle{plain} and \bibliography{main} at the end of the body.
//
// Rendering fails only on an unsupported document class; everything else is
// pure string assembly.
func Render(d *Document) (string, error) {
	if !d.class.IsValid() {
		return "", errors.NewValidation("class",
			fmt.Sprintf("unsupported document class %q", d.class))
	}

	var sb strings.Builder

	if d.bibliography != nil {
		sb.WriteString(d.bibliography.Filecontents())
	}

	fmt.Fprintf(&sb, "\\documentclass{%s}\n", d.class)

	for _, pkg := range d.Preamble.packages {
		fmt.Fprintf(&sb, "\\usepackage{%s}\n", pkg)
	}
	if d.Preamble.title != "" {
		fmt.Fprintf(&sb, "\\title{%s}\n", d.Preamble.title)
	}
	if d.Preamble.author != "" {
		fmt.Fprintf(&sb, "\\author{%s}\n", d.Preamble.author)
	}

	sb.WriteString("\\begin{document}\n")

	for _, e := range d.elements {
		e.render(&sb)
	}

	if d.bibliography != nil {
		sb.WriteString("\\bibliographystyle{plain}\n")
		fmt.Fprintf(&sb, "\\bibliography{%s}\n", strings.TrimSuffix(bib.FilecontentsName, ".bib"))
	}

	sb.WriteString("\\end{document}\n")
	return sb.String(), nil
}
