package bib

import (
	stderrors "errors"
	"fmt"

	"github.com/texforge/texforge/core/errors"
)

// Declaration is one name = citation pair inside a registry declaration.
type Declaration struct {
	Name     string
	Citation Citation
}

// Declare pairs a name with a citation for use in NewRegistry.
func Declare(name string, c Citation) Declaration {
	return Declaration{Name: name, Citation: c}
}

// Registry is the result of declaring a bibliography: a lookup table from
// declared names to citations plus one aggregate Bibliography over all of
// them, in declaration order. It is immutable after construction.
type Registry struct {
	byName       map[string]Citation
	bibliography Bibliography
}

// NewRegistry validates and materializes a bibliography declaration.
//
// Each declared name becomes addressable through Get, and the aggregate
// Bibliography preserves declaration order. Names must be unique within one
// call; a duplicate is a *errors.DuplicateNameError. Citation keys are not
// checked (see the package doc).
func NewRegistry(decls ...Declaration) (*Registry, error) {
	byName := make(map[string]Citation, len(decls))
	citations := make([]Citation, 0, len(decls))

	for _, d := range decls {
		if _, exists := byName[d.Name]; exists {
			return nil, errors.NewDuplicateName(d.Name)
		}
		byName[d.Name] = d.Citation
		citations = append(citations, d.Citation)
	}

	return &Registry{
		byName:       byName,
		bibliography: NewBibliography(citations),
	}, nil
}

// MustNewRegistry is NewRegistry for package-level var declarations, where a
// duplicate name is unrecoverable and should stop the program before any
// document is built. It panics on error.
func MustNewRegistry(decls ...Declaration) *Registry {
	r, err := NewRegistry(decls...)
	if err != nil {
		panic(fmt.Sprintf("bib: invalid bibliography declaration: %v", err))
	}
	return r
}

// Get returns the citation declared under name.
func (r *Registry) Get(name string) (Citation, error) {
	c, ok := r.byName[name]
	if !ok {
		return Citation{}, errors.NewNotFound("registry entry", name)
	}
	return c, nil
}

// MustGet returns the citation declared under name and panics if the name was
// never declared. Intended for document-building code that references its own
// declarations, where a miss is a typo, not a runtime condition.
func (r *Registry) MustGet(name string) Citation {
	c, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("bib: %v", err))
	}
	return c
}

// Has reports whether name was declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Bibliography returns the aggregate bibliography over every declaration, in
// declaration order.
func (r *Registry) Bibliography() Bibliography {
	return r.bibliography
}

// IsDuplicateName reports whether err is a duplicate-declaration error.
func IsDuplicateName(err error) bool {
	return stderrors.Is(err, errors.ErrDuplicate)
}
