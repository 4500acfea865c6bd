// Package bibtex parses the reference-database text this system emits.
//
// The grammar covers the subset of BibTeX that bib.Bibliography produces:
// @article entries whose fields are braced values without nested braces.
// Parsing an emitted file and re-emitting it through bib yields byte-identical
// text, which is what `texforge bib verify` checks.
package bibtex

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/texforge/texforge/core/bib"
	"github.com/texforge/texforge/core/errors"
)

// bibGrammar is the participle grammar for a .bib file.
type bibGrammar struct {
	Entries []*entryGrammar `parser:"@@*"`
}

type entryGrammar struct {
	Kind   string          `parser:"'@' @Ident"`
	Key    string          `parser:"'{' @Ident ','"`
	Fields []*fieldGrammar `parser:"@@ ( ',' @@ )* ','? '}'"`
}

type fieldGrammar struct {
	Name  string `parser:"@Ident '='"`
	Value string `parser:"@Braced"`
}

// bibLexer defines the lexer for the .bib subset.
// Braced must precede Punct: a braced value like {Knuth} lexes as one token,
// while the entry-opening brace (which is always followed by another brace
// before any closing one) falls through to Punct.
var bibLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Braced", Pattern: `\{[^{}]*\}`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_:\-]*`},
	{Name: "Punct", Pattern: `[@{}=,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// bibParser is the participle parser for .bib files.
var bibParser = participle.MustBuild[bibGrammar](
	participle.Lexer(bibLexer),
	participle.Elide("Whitespace"),
)

// fieldNames is the set of recognized @article field names.
var fieldNames = map[string]bool{
	"author": true,
	"title":  true,
	"year":   true,
}

// Parse parses .bib text into citations, preserving entry order.
//
// Only @article entries are accepted; any other kind is an UnsupportedError
// so a caller never silently loses entries it cannot represent. Unrecognized
// field names are a ParseError for the same reason. Empty input yields an
// empty slice.
func Parse(data []byte) ([]bib.Citation, error) {
	return parse("", string(data))
}

// ParseString parses .bib text from a string.
func ParseString(s string) ([]bib.Citation, error) {
	return parse("", s)
}

// ParseFile reads and parses a .bib file.
func ParseFile(path string) ([]bib.Citation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return parse(path, string(data))
}

func parse(path, src string) ([]bib.Citation, error) {
	if strings.TrimSpace(src) == "" {
		return []bib.Citation{}, nil
	}

	parsed, err := bibParser.ParseString(path, src)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  "BibTeX",
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}

	citations := make([]bib.Citation, 0, len(parsed.Entries))
	for _, e := range parsed.Entries {
		c, err := toCitation(e)
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}
	return citations, nil
}

// toCitation converts one parsed entry into a bib.Citation.
func toCitation(e *entryGrammar) (bib.Citation, error) {
	kind := strings.ToLower(e.Kind)
	if bib.CitationKind(kind) != bib.Article {
		return bib.Citation{}, errors.NewUnsupported(
			fmt.Sprintf("entry kind @%s", e.Kind),
			"only @article entries are recognized",
		)
	}

	c := bib.Citation{Key: e.Key, Kind: bib.Article}
	for _, f := range e.Fields {
		name := strings.ToLower(f.Name)
		if !fieldNames[name] {
			return bib.Citation{}, &errors.ParseError{
				Format:  "BibTeX",
				Message: fmt.Sprintf("unrecognized field %q in entry %q", f.Name, e.Key),
			}
		}
		value := strings.TrimSuffix(strings.TrimPrefix(f.Value, "{"), "}")
		switch name {
		case "author":
			c.Author = value
		case "title":
			c.Title = value
		case "year":
			c.Year = value
		}
	}
	return c, nil
}
