package bib

import (
	"errors"
	"testing"

	forgeerrors "github.com/texforge/texforge/core/errors"
)

var (
	citeA = Citation{Key: "a", Kind: Article, Title: "A", Author: "AuA", Year: "2001"}
	citeB = Citation{Key: "b", Kind: Article, Title: "B", Author: "AuB", Year: "2002"}
	citeC = Citation{Key: "c", Kind: Article, Title: "C", Author: "AuC", Year: "2003"}
)

func TestCitationsCite(t *testing.T) {
	tests := []struct {
		name  string
		group Citations
		want  string
	}{
		{name: "empty group", group: Citations{}, want: ""},
		{name: "nil group", group: nil, want: ""},
		{name: "single member", group: Citations{citeA}, want: `\cite{a}`},
		{
			name:  "two members, no separator",
			group: Citations{citeB, citeA},
			want:  `\cite{b}\cite{a}`,
		},
		{
			name:  "order preserved",
			group: Citations{citeC, citeA, citeB},
			want:  `\cite{c}\cite{a}\cite{b}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.Cite(); got != tt.want {
				t.Errorf("Cite() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCitationsCiteEqualsMemberConcatenation(t *testing.T) {
	group := Citations{citeA, citeB, citeC}
	want := citeA.Cite() + citeB.Cite() + citeC.Cite()
	if got := group.Cite(); got != want {
		t.Errorf("group.Cite() = %q, want member concatenation %q", got, want)
	}
}

func TestCiterPolymorphism(t *testing.T) {
	// A single citation and a one-member group must render identically
	// through the Citer interface.
	var single Citer = citeA
	var group Citer = Citations{citeA}
	if single.Cite() != group.Cite() {
		t.Errorf("single = %q, group of one = %q; want identical", single.Cite(), group.Cite())
	}
}

func TestCited(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{name: "no segments", segments: nil, want: ""},
		{
			name:     "single pair",
			segments: []Segment{{Text: "As shown", Ref: citeA}},
			want:     `As shown\cite{a}`,
		},
		{
			name: "two pairs, exact adjacency",
			segments: []Segment{
				{Text: "First claim", Ref: citeA},
				{Text: " and second claim", Ref: citeB},
			},
			want: `First claim\cite{a} and second claim\cite{b}`,
		},
		{
			name: "group reference",
			segments: []Segment{
				{Text: "Surveyed in", Ref: Citations{citeB, citeA}},
			},
			want: `Surveyed in\cite{b}\cite{a}`,
		},
		{
			name: "trailing prose without marker",
			segments: []Segment{
				{Text: "Claim", Ref: citeA},
				{Text: ", concluded."},
			},
			want: `Claim\cite{a}, concluded.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cited(tt.segments...); got != tt.want {
				t.Errorf("Cited() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInterleave(t *testing.T) {
	got, err := Interleave(
		[]string{"see", " and "},
		[]Citer{citeA, Citations{citeB, citeC}},
	)
	if err != nil {
		t.Fatalf("Interleave failed: %v", err)
	}
	want := `see\cite{a} and \cite{b}\cite{c}`
	if got != want {
		t.Errorf("Interleave() = %q, want %q", got, want)
	}
}

func TestInterleaveEmpty(t *testing.T) {
	got, err := Interleave(nil, nil)
	if err != nil {
		t.Fatalf("Interleave failed: %v", err)
	}
	if got != "" {
		t.Errorf("Interleave(nil, nil) = %q, want \"\"", got)
	}
}

func TestInterleaveArityMismatch(t *testing.T) {
	_, err := Interleave([]string{"a", "b"}, []Citer{citeA})
	if err == nil {
		t.Fatalf("Interleave with mismatched lengths did not fail")
	}
	if !errors.Is(err, forgeerrors.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
