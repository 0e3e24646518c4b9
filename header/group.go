package header

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/util"
)

// groupHeader is implemented by [Group] and [AuthGroup].
type groupHeader interface {
	Header
	Len() int
	add(hdr Header) error
	elems() []Header
}

var securityHdrs = []Name{"Authorization", "Proxy-Authorization", "WWW-Authenticate", "Proxy-Authenticate"}

// IsSecurityHeader reports whether the header name belongs to one of the security headers,
// whose values must not be combined with commas.
func IsSecurityHeader(name Name) bool { return slices.Contains(securityHdrs, CanonicName(name)) }

// Group holds the values of a header that may appear several times in a message
// or carry a comma separated list of values.
//
//	Route: <sip:p1.example.com;lr>, <sip:p2.example.com;lr>
//
// Groups are compared as multisets: the order of values does not matter.
type Group[T any, H interface {
	*T
	Header
}] struct {
	items []H
}

// NewGroup creates a group of T values.
// It fails with [ErrNotMultiple] when T does not allow multiple values
// and with [ErrSecurityGroup] for the security headers, which must be held by an [AuthGroup].
func NewGroup[T any, H interface {
	*T
	Header
}](items ...H) (*Group[T, H], error) {
	h := H(new(T))
	if !h.AllowMultiple() {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotMultiple, "%s", h.CanonicName()))
	}
	if IsSecurityHeader(h.CanonicName()) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrSecurityGroup, "%s", h.CanonicName()))
	}
	g := &Group[T, H]{}
	if err := g.Append(items...); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return g, nil
}

// CanonicName returns the canonical name of the grouped header.
func (*Group[T, H]) CanonicName() Name { return H(new(T)).CanonicName() }

// CompactName returns the compact name of the grouped header.
func (*Group[T, H]) CompactName() Name { return H(new(T)).CompactName() }

// AllowMultiple always reports true.
func (*Group[T, H]) AllowMultiple() bool { return true }

// Len returns the number of values.
func (g *Group[T, H]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// At returns the i-th value.
func (g *Group[T, H]) At(i int) H { return g.items[i] }

// All iterates over the values in order.
func (g *Group[T, H]) All() iter.Seq2[int, H] {
	return func(yield func(int, H) bool) {
		if g == nil {
			return
		}
		for i, h := range g.items {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Append adds values to the end of the group.
func (g *Group[T, H]) Append(items ...H) error {
	if slices.ContainsFunc(items, func(h H) bool { return h == nil }) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil %s value", g.CanonicName()))
	}
	g.items = append(g.items, items...)
	return nil
}

// Remove removes the i-th value.
func (g *Group[T, H]) Remove(i int) { g.items = slices.Delete(g.items, i, i+1) }

func (g *Group[T, H]) add(hdr Header) error {
	switch v := hdr.(type) {
	case H:
		return errtrace.Wrap(g.Append(v))
	case *Group[T, H]:
		return errtrace.Wrap(g.Append(v.items...))
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unexpected header %T, want %T", hdr, H(nil)))
	}
}

func (g *Group[T, H]) elems() []Header { return toHeaders(g.items) }

// Parse replaces the values with the ones parsed from the comma separated list.
// An empty value clears the group.
func (g *Group[T, H]) Parse(value string) error {
	items, err := parseItems[T, H](value, ",")
	if err != nil {
		return errtrace.Wrap(err)
	}
	g.items = items
	return nil
}

// RenderTo writes the header to the provided writer.
func (g *Group[T, H]) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if g == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, g, opts))
}

// Render returns the string representation of the header.
func (g *Group[T, H]) Render(opts *RenderOptions) string {
	if g == nil {
		return ""
	}
	return render(g, opts)
}

// RenderValue returns the values joined with commas.
func (g *Group[T, H]) RenderValue() string {
	if g == nil {
		return ""
	}
	return joinValues(g.items, ", ")
}

// String returns the string representation of the header value.
func (g *Group[T, H]) String() string { return g.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (g *Group[T, H]) Format(f fmt.State, verb rune) { formatHeader(f, verb, g) }

// Clone returns a deep copy of the group.
func (g *Group[T, H]) Clone() Header {
	if g == nil {
		return nil
	}
	return &Group[T, H]{items: cloneItems(g.items)}
}

// Equal reports whether both groups hold the same values regardless of their order.
func (g *Group[T, H]) Equal(val any) bool {
	var other *Group[T, H]
	switch v := val.(type) {
	case Group[T, H]:
		other = &v
	case *Group[T, H]:
		other = v
	default:
		return false
	}

	if g == other {
		return true
	} else if g == nil || other == nil {
		return false
	}
	if len(g.items) != len(other.items) {
		return false
	}

	used := make([]bool, len(other.items))
outer:
	for _, a := range g.items {
		for j, b := range other.items {
			if !used[j] && a.Equal(b) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// IsValid checks that the group is not empty and every value is valid.
func (g *Group[T, H]) IsValid() bool { return g != nil && validItems(g.items) }

// MarshalJSON implements [json.Marshaler].
func (g *Group[T, H]) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(g)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (g *Group[T, H]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalGroupJSON(data, g))
}

// AuthGroup holds several values of a security header:
// Authorization, Proxy-Authorization, WWW-Authenticate or Proxy-Authenticate.
// Their values are never combined with commas, every value takes its own header line.
// The parsed order is kept and taken into account by [AuthGroup.Equal].
type AuthGroup[T any, H interface {
	*T
	Header
}] struct {
	items []H
}

// NewAuthGroup creates a group of security header values.
// It fails with [ErrNotSecurityHeader] when T is not a security header.
func NewAuthGroup[T any, H interface {
	*T
	Header
}](items ...H) (*AuthGroup[T, H], error) {
	h := H(new(T))
	if !IsSecurityHeader(h.CanonicName()) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotSecurityHeader, "%s", h.CanonicName()))
	}
	g := &AuthGroup[T, H]{}
	if err := g.Append(items...); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return g, nil
}

// CanonicName returns the canonical name of the grouped header.
func (*AuthGroup[T, H]) CanonicName() Name { return H(new(T)).CanonicName() }

// CompactName returns the compact name of the grouped header.
func (*AuthGroup[T, H]) CompactName() Name { return H(new(T)).CompactName() }

// AllowMultiple always reports true.
func (*AuthGroup[T, H]) AllowMultiple() bool { return true }

// Len returns the number of values.
func (g *AuthGroup[T, H]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// At returns the i-th value.
func (g *AuthGroup[T, H]) At(i int) H { return g.items[i] }

// All iterates over the values in order.
func (g *AuthGroup[T, H]) All() iter.Seq2[int, H] {
	return func(yield func(int, H) bool) {
		if g == nil {
			return
		}
		for i, h := range g.items {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Append adds values to the end of the group.
func (g *AuthGroup[T, H]) Append(items ...H) error {
	if slices.ContainsFunc(items, func(h H) bool { return h == nil }) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil %s value", g.CanonicName()))
	}
	g.items = append(g.items, items...)
	return nil
}

// Remove removes the i-th value.
func (g *AuthGroup[T, H]) Remove(i int) { g.items = slices.Delete(g.items, i, i+1) }

func (g *AuthGroup[T, H]) add(hdr Header) error {
	switch v := hdr.(type) {
	case H:
		return errtrace.Wrap(g.Append(v))
	case *AuthGroup[T, H]:
		return errtrace.Wrap(g.Append(v.items...))
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unexpected header %T, want %T", hdr, H(nil)))
	}
}

func (g *AuthGroup[T, H]) elems() []Header { return toHeaders(g.items) }

// Parse replaces the values with the ones parsed from the CRLF separated lines.
// A line may repeat the header name, as in a message header block.
// An empty value clears the group.
func (g *AuthGroup[T, H]) Parse(value string) error {
	items, err := parseItems[T, H](value, "\r\n")
	if err != nil {
		return errtrace.Wrap(err)
	}
	g.items = items
	return nil
}

// RenderTo writes one header line per value, the lines are separated with CRLF.
func (g *AuthGroup[T, H]) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if g == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	return errtrace.Wrap2(cw.Each(len(g.items), "\r\n", func(i int, w io.Writer) (int, error) {
		return errtrace.Wrap2(g.items[i].RenderTo(w, opts))
	}).Result())
}

// Render returns the header lines separated with CRLF.
func (g *AuthGroup[T, H]) Render(opts *RenderOptions) string {
	if g == nil {
		return ""
	}
	return render(g, opts)
}

// RenderValue returns the values separated with CRLF.
func (g *AuthGroup[T, H]) RenderValue() string {
	if g == nil {
		return ""
	}
	return joinValues(g.items, "\r\n")
}

// String returns the string representation of the header value.
func (g *AuthGroup[T, H]) String() string { return g.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (g *AuthGroup[T, H]) Format(f fmt.State, verb rune) { formatHeader(f, verb, g) }

// Clone returns a deep copy of the group.
func (g *AuthGroup[T, H]) Clone() Header {
	if g == nil {
		return nil
	}
	return &AuthGroup[T, H]{items: cloneItems(g.items)}
}

// Equal reports whether both groups hold equal values in the same order.
func (g *AuthGroup[T, H]) Equal(val any) bool {
	var other *AuthGroup[T, H]
	switch v := val.(type) {
	case AuthGroup[T, H]:
		other = &v
	case *AuthGroup[T, H]:
		other = v
	default:
		return false
	}

	if g == other {
		return true
	} else if g == nil || other == nil {
		return false
	}
	return slices.EqualFunc(g.items, other.items, func(a, b H) bool { return a.Equal(b) })
}

// IsValid checks that the group is not empty and every value is valid.
func (g *AuthGroup[T, H]) IsValid() bool { return g != nil && validItems(g.items) }

// MarshalJSON implements [json.Marshaler].
func (g *AuthGroup[T, H]) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(g)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (g *AuthGroup[T, H]) UnmarshalJSON(data []byte) error {
	return errtrace.Wrap(unmarshalGroupJSON(data, g))
}

func parseItems[T any, H interface {
	*T
	Header
}](value, sep string) ([]H, error) {
	value = grammar.ReplaceFolding(value)
	if strings.Trim(value, " \t\r\n") == "" {
		return nil, nil
	}

	var chunks []string
	if sep == "\r\n" {
		chunks = strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
	} else {
		chunks = grammar.Split(value, sep)
	}

	var items []H
	for _, chunk := range chunks {
		if strings.Trim(chunk, " \t\r") == "" {
			continue
		}
		h := H(new(T))
		if sep == "\r\n" {
			// lines of a block may repeat the header name
			if name, val, ok := strings.Cut(chunk, ":"); ok && h.CanonicName().Equal(strings.Trim(name, " \t")) {
				chunk = val
			}
		}
		if err := h.Parse(chunk); err != nil {
			return nil, errtrace.Wrap(err)
		}
		items = append(items, h)
	}
	if len(items) == 0 {
		return nil, errtrace.Wrap(newParseError(H(new(T)).CanonicName(), "", value, ErrEmptyValue))
	}
	return items, nil
}

func joinValues[H Header](items []H, sep string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, h := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(h.RenderValue())
	}
	return sb.String()
}

func cloneItems[T any, H interface {
	*T
	Header
}](items []H) []H {
	if items == nil {
		return nil
	}
	out := make([]H, len(items))
	for i, h := range items {
		out[i], _ = h.Clone().(H)
	}
	return out
}

func validItems[H Header](items []H) bool {
	return len(items) > 0 && !slices.ContainsFunc(items, func(h H) bool { return !h.IsValid() })
}

func toHeaders[H Header](items []H) []Header {
	out := make([]Header, len(items))
	for i, h := range items {
		out[i] = h
	}
	return out
}

func unmarshalGroupJSON(data []byte, g groupHeader) error {
	var hd *headerData
	if err := json.Unmarshal(data, &hd); err != nil {
		return errtrace.Wrap(err)
	}
	if hd == nil {
		return errtrace.Wrap(g.Parse(""))
	}
	if !g.CanonicName().Equal(hd.Name) {
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %q, want %q", hd.Name, g.CanonicName()))
	}
	return errtrace.Wrap(g.Parse(hd.Value))
}
