// Package tex provides the document model and renderer for LaTeX output.
//
// A Document is built programmatically (class, preamble, ordered elements) and
// rendered to the complete .tex source text in one pass. Rendering is
// deterministic: the same document value always produces the same bytes, which
// is what lets downstream tooling diff and verify generated sources.
//
// Citation markers produced by the bib package are embedded in paragraphs as
// opaque text; attaching a bib.Bibliography to the document makes the renderer
// emit the filecontents* envelope ahead of \documentclass and the closing
// \bibliography directives before \end{document}.
package tex
