// Package bib provides the citation and bibliography model for TexForge documents.
//
// The package is built around three pieces:
//
//   - Citation: one immutable bibliographic record (key, kind, title, author, year)
//   - Citer: the capability of producing an inline \cite marker, implemented by
//     both a single Citation and an ordered Citations group
//   - Bibliography: the ordered set of all citations declared for one document,
//     serialized to BibTeX text or to a filecontents* envelope
//
// # Output compatibility
//
// Every string this package emits is consumed by external TeX tooling that
// tolerates no deviation, so the formats here are byte-exact contracts:
//
//	\cite{<key>}
//
//	@article{<key>,
//	author={<author>},
//	title={<title>},
//	year={<year>}
//	}
//
// Field values are substituted verbatim with no escaping. Keys must be unique
// across one Bibliography; this package does not check that, and duplicate keys
// surface only when the external bibliography processor runs.
//
// # Group citation quirk
//
// Citations.Cite emits one complete \cite command per member with no separator
// (e.g. \cite{a}\cite{b}), not a single comma-joined \cite{a,b}. BibTeX would
// accept the joined form, but existing documents were produced with the
// per-member form, so it is kept for byte compatibility. Do not "fix" it.
//
// # Declaring a bibliography
//
// A whole bibliography is declared once, at a single call site, and referenced
// by name everywhere else:
//
//	var refs = bib.MustNewRegistry(
//		bib.Declare("KNUTH", bib.Citation{Key: "knuth84", Kind: bib.Article, ...}),
//		bib.Declare("LAMPORT", bib.Citation{Key: "lamport94", Kind: bib.Article, ...}),
//	)
//
// Duplicate declaration names are rejected before any document code runs.
package bib
