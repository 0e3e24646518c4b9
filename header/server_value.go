package header

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Product is a single server-val: either a product with an optional version
// or a comment. Comment is stored without the outer parentheses.
type Product struct {
	Name    string
	Version string
	Comment string
}

// IsComment reports whether the entry is a comment.
func (p Product) IsComment() bool { return p.Name == "" && p.Comment != "" }

func (p Product) String() string {
	switch {
	case p.IsComment():
		return "(" + p.Comment + ")"
	case p.Version != "":
		return p.Name + "/" + p.Version
	default:
		return p.Name
	}
}

// IsValid checks whether the entry is syntactically valid.
func (p Product) IsValid() bool {
	if p.IsComment() {
		return true
	}
	return grammar.IsToken(p.Name) && (p.Version == "" || grammar.IsToken(p.Version))
}

// ServerValue is the common part of the Server and User-Agent headers:
// a sequence of products and comments separated by LWS.
//
//	HomeServer v2 (beta)
type ServerValue struct {
	Products []Product
}

func (sv *ServerValue) layers() []layer {
	return []layer{layerFunc{
		name:  "server-val",
		clear: func() { sv.Products = nil },
		fn:    sv.consume,
	}}
}

func (sv *ServerValue) consume(sc *grammar.Scanner) error {
	for !sc.EOF() {
		if sc.Peek() == '(' {
			c, err := sc.Comment()
			if err != nil {
				return errtrace.Wrap(err)
			}
			sv.Products = append(sv.Products, Product{Comment: c[1 : len(c)-1]})
		} else {
			var p Product
			if p.Name = sc.Token(); p.Name == "" {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid product at %q", util.Ellipsis(sc.Rest(), 16)))
			}
			if sc.Accept('/') {
				if p.Version = sc.Token(); p.Version == "" {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("missing version of product %q", p.Name))
				}
			}
			sv.Products = append(sv.Products, p)
		}

		if !sc.EOF() && !grammar.IsLWSChar(sc.Peek()) && sc.Peek() != '(' {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("unexpected input %q", util.Ellipsis(sc.Rest(), 16)))
		}
		sc.SkipLWS()
	}
	return nil
}

func (sv *ServerValue) renderValue() string {
	parts := make([]string, len(sv.Products))
	for i, p := range sv.Products {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (sv *ServerValue) clone() ServerValue { return ServerValue{Products: slices.Clone(sv.Products)} }

func (sv *ServerValue) equal(other *ServerValue) bool {
	return slices.EqualFunc(sv.Products, other.Products, func(a, b Product) bool {
		return util.EqFold(a.Name, b.Name) && a.Version == b.Version && a.Comment == b.Comment
	})
}

func (sv *ServerValue) isValid() bool {
	return len(sv.Products) > 0 && !slices.ContainsFunc(sv.Products, func(p Product) bool { return !p.IsValid() })
}
