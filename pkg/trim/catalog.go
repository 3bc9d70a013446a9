package trim

import (
	"errors"
	"fmt"
)

const (
	CatalogActive = "active"
	CatalogBasic  = "basic"
)

// ErrUnknownCatalog is returned by Lookup for names other than CatalogActive and CatalogBasic.
var ErrUnknownCatalog = errors.New("unknown trim catalog")

var active = []Pattern{
	// alternating
	{1, 2, 1},
	{2, 4, 2},
	{4, 8, 4},

	{1, 6, 1},
	{2, 12, 2},

	{3, 2, 3},
	{6, 4, 6},

	{1, 4, 2, 2, 2, 4, 1},
	{4, 2, 4, 2, 4},
}

var basic = []Pattern{
	{1, 1},
	{2, 2},
	{4, 4},
	{8, 8},
	{1, 3},
	{2, 6},
}

// Catalog returns a copy of the active trim catalog.
func Catalog() []Pattern { return clone(active) }

// BasicCatalog returns a copy of the earlier two-run catalog.
func BasicCatalog() []Pattern { return clone(basic) }

// Lookup returns a copy of the named catalog. An empty name selects the active one.
func Lookup(name string) ([]Pattern, error) {
	switch name {
	case "", CatalogActive:
		return Catalog(), nil
	case CatalogBasic:
		return BasicCatalog(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
	}
}

func clone(src []Pattern) []Pattern {
	out := make([]Pattern, len(src))
	for i, p := range src {
		out[i] = append(Pattern(nil), p...)
	}
	return out
}
