package bib

import (
	"strings"
	"testing"
)

func TestCitationCite(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "simple key", key: "k1", want: `\cite{k1}`},
		{name: "descriptive key", key: "knuth1984", want: `\cite{knuth1984}`},
		{name: "key with punctuation", key: "smith:2020-a", want: `\cite{smith:2020-a}`},
		{name: "empty key", key: "", want: `\cite{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Citation{Key: tt.key, Kind: Article}
			if got := c.Cite(); got != tt.want {
				t.Errorf("Cite() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCitationBibEntry(t *testing.T) {
	c := Citation{
		Key:    "k1",
		Kind:   Article,
		Title:  "T",
		Author: "Au",
		Year:   "2020",
	}

	want := "@article{k1,\nauthor={Au},\ntitle={T},\nyear={2020}\n}"
	if got := c.BibEntry(); got != want {
		t.Errorf("BibEntry() = %q, want %q", got, want)
	}
}

func TestCitationBibEntryExactTemplate(t *testing.T) {
	c := Citation{
		Key:    "lamport1994",
		Kind:   Article,
		Title:  "LaTeX: A Document Preparation System",
		Author: "Leslie Lamport",
		Year:   "1994",
	}

	got := c.BibEntry()

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("BibEntry() has %d lines, want 5:\n%s", len(lines), got)
	}
	wantLines := []string{
		"@article{lamport1994,",
		"author={Leslie Lamport},",
		"title={LaTeX: A Document Preparation System},",
		"year={1994}",
		"}",
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("BibEntry() ends with a newline; spacing belongs to the aggregator")
	}
}

func TestCitationBibEntryNoEscaping(t *testing.T) {
	// Field values pass through verbatim, braces and backslashes included.
	c := Citation{
		Key:    "k1",
		Kind:   Article,
		Title:  `The {GNU} Project`,
		Author: `M\"uller`,
		Year:   "n.d.",
	}
	want := "@article{k1,\nauthor={M\\\"uller},\ntitle={The {GNU} Project},\nyear={n.d.}\n}"
	if got := c.BibEntry(); got != want {
		t.Errorf("BibEntry() = %q, want %q", got, want)
	}
}

func TestCitationBibEntryUnknownKindPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("BibEntry() with unknown kind did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "unrecognized citation kind") {
			t.Errorf("panic value = %v, want message naming the unrecognized kind", r)
		}
	}()

	c := Citation{Key: "k1", Kind: CitationKind("webpage")}
	c.BibEntry()
}

func TestCitationKindIsValid(t *testing.T) {
	tests := []struct {
		kind CitationKind
		want bool
	}{
		{Article, true},
		{CitationKind("book"), false},
		{CitationKind(""), false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("CitationKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
