// Package types contains the value types and contracts shared by the header and uri packages.
package types

//go:generate go tool errtrace -w .

import "io"

// RenderOptions controls the wire form produced by the Render methods.
type RenderOptions struct {
	// Compact selects the single-letter header names, e.g. "v" for Via.
	Compact bool `json:"compact,omitempty"`
}

// Renderer produces the wire form of a value.
type Renderer interface {
	Render(opts *RenderOptions) string
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// Validator reports whether a value satisfies its grammar.
type Validator interface {
	IsValid() bool
}

// Equalable compares a value with another one, either a value or a pointer of the same type.
type Equalable interface {
	Equal(val any) bool
}

// Cloneable returns a deep copy.
type Cloneable[T any] interface {
	Clone() T
}
