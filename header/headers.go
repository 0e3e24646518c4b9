package header

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Headers is an ordered collection of header fields with distinct names.
// Repeated values of the same header are held by a single [Group] or [AuthGroup].
//
// The zero value is an empty collection ready to use.
type Headers struct {
	list []Header
}

// NewHeaders creates a collection from the given headers.
// Repeats are combined as by [Headers.Append].
func NewHeaders(hdrs ...Header) (*Headers, error) {
	hs := &Headers{}
	for _, h := range hdrs {
		if err := hs.Append(h); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return hs, nil
}

func (hs *Headers) index(name Name) int {
	if hs == nil {
		return -1
	}
	name = CanonicName(name)
	return slices.IndexFunc(hs.list, func(h Header) bool { return util.EqFold(h.CanonicName(), name) })
}

// Len returns the number of distinct header fields.
func (hs *Headers) Len() int {
	if hs == nil {
		return 0
	}
	return len(hs.list)
}

// At returns the i-th header field.
func (hs *Headers) At(i int) Header { return hs.list[i] }

// Get returns the header field by its long or compact name, case-insensitively.
func (hs *Headers) Get(name Name) (Header, bool) {
	if i := hs.index(name); i >= 0 {
		return hs.list[i], true
	}
	return nil, false
}

// Has checks whether the header field with the given name exists.
func (hs *Headers) Has(name Name) bool { return hs.index(name) >= 0 }

// Add adds the header field, failing with [ErrDuplicateItem] when a field with the same name exists.
func (hs *Headers) Add(hdr Header) error {
	if isNilHeader(hdr) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil header"))
	}
	if hs.Has(hdr.CanonicName()) {
		return errtrace.Wrap(errorutil.NewDuplicateItemError("header %q", hdr.CanonicName()))
	}
	hs.list = append(hs.list, hdr)
	return nil
}

// Set replaces the header field with the same name or adds it.
func (hs *Headers) Set(hdr Header) error {
	if isNilHeader(hdr) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil header"))
	}
	if i := hs.index(hdr.CanonicName()); i >= 0 {
		hs.list[i] = hdr
		return nil
	}
	hs.list = append(hs.list, hdr)
	return nil
}

// Append adds the header field, combining it with an existing field of the same name.
// Values of headers that allow multiple values are collected into a [Group] or an [AuthGroup],
// repeated extension headers are joined with a comma.
// Other repeats fail with [ErrDuplicateItem].
func (hs *Headers) Append(hdr Header) error {
	if isNilHeader(hdr) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil header"))
	}

	i := hs.index(hdr.CanonicName())
	if i < 0 {
		hs.list = append(hs.list, hdr)
		return nil
	}

	cur := hs.list[i]
	if g, ok := cur.(groupHeader); ok {
		return errtrace.Wrap(g.add(hdr))
	}
	if ext, ok := cur.(*Extension); ok {
		if other, ok := hdr.(*Extension); ok {
			ext.Value += ", " + other.Value
			return nil
		}
	}
	if !cur.AllowMultiple() {
		return errtrace.Wrap(errorutil.NewDuplicateItemError("header %q", hdr.CanonicName()))
	}

	g, err := newGroup(cur.CanonicName())
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := g.add(cur); err != nil {
		return errtrace.Wrap(err)
	}
	if err := g.add(hdr); err != nil {
		return errtrace.Wrap(err)
	}
	hs.list[i] = g
	return nil
}

// Remove removes the header field and reports whether it existed.
func (hs *Headers) Remove(name Name) bool {
	i := hs.index(name)
	if i < 0 {
		return false
	}
	hs.list = slices.Delete(hs.list, i, i+1)
	return true
}

// Clear removes all header fields.
func (hs *Headers) Clear() { hs.list = nil }

// All iterates over the header fields in insertion order.
func (hs *Headers) All() iter.Seq2[int, Header] {
	return func(yield func(int, Header) bool) {
		if hs == nil {
			return
		}
		for i, h := range hs.list {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Values iterates over every single header value, expanding the groups.
func (hs *Headers) Values() iter.Seq[Header] {
	return func(yield func(Header) bool) {
		for _, h := range hs.All() {
			elems := []Header{h}
			if g, ok := h.(groupHeader); ok {
				elems = g.elems()
			}
			for _, e := range elems {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the collection.
func (hs *Headers) Clone() *Headers {
	if hs == nil {
		return nil
	}
	out := &Headers{list: make([]Header, len(hs.list))}
	for i, h := range hs.list {
		out.list[i] = h.Clone()
	}
	return out
}

// Equal reports whether both collections hold equal header fields, the order of fields is ignored.
func (hs *Headers) Equal(val any) bool {
	var other *Headers
	switch v := val.(type) {
	case Headers:
		other = &v
	case *Headers:
		other = v
	default:
		return false
	}

	if hs == other {
		return true
	} else if hs == nil || other == nil {
		return false
	}
	if hs.Len() != other.Len() {
		return false
	}
	for _, h := range hs.list {
		oh, ok := other.Get(h.CanonicName())
		if !ok || !h.Equal(oh) {
			return false
		}
	}
	return true
}

// RenderTo writes every header field followed by CRLF.
func (hs *Headers) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hs == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, h := range hs.list {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(h.RenderTo(w, opts)) })
		cw.WriteString("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the header block, every header field is followed by CRLF.
func (hs *Headers) Render(opts *RenderOptions) string {
	if hs == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hs *Headers) String() string { return hs.Render(nil) }

// Format implements fmt.Formatter.
func (hs *Headers) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", hs.Render(nil))
	default:
		fmt.Fprint(f, hs.Render(nil))
	}
}

// IsValid checks whether every header field is valid.
func (hs *Headers) IsValid() bool { return hs.Validate() == nil }

// Validate returns an error listing the invalid header fields.
func (hs *Headers) Validate() error {
	var errs []error
	for _, h := range hs.All() {
		if !h.IsValid() {
			errs = append(errs, errorutil.NewInvalidFormatError("%s: %s", h.CanonicName(), util.Ellipsis(h.RenderValue(), 64)))
		}
	}
	return errtrace.Wrap(errorutil.JoinPrefix("invalid headers:", errs...))
}

func (hs *Headers) data() []headerData {
	data := make([]headerData, 0, hs.Len())
	for _, h := range hs.All() {
		data = append(data, headerData{Name: string(h.CanonicName()), Value: h.RenderValue()})
	}
	return data
}

func (hs *Headers) fromData(items []headerData) error {
	out := Headers{}
	for _, item := range items {
		h, err := Parse(item.Name + ": " + item.Value)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := out.Append(h); err != nil {
			return errtrace.Wrap(err)
		}
	}
	*hs = out
	return nil
}

// MarshalJSON encodes the collection as an array of {"name": ..., "value": ...} objects.
func (hs *Headers) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(json.Marshal(hs.data())) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hs *Headers) UnmarshalJSON(data []byte) error {
	var items []headerData
	if err := json.Unmarshal(data, &items); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(hs.fromData(items))
}

// MarshalYAML encodes the collection as a sequence of name/value mappings.
func (hs *Headers) MarshalYAML() (any, error) { return hs.data(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (hs *Headers) UnmarshalYAML(node *yaml.Node) error {
	var items []headerData
	if err := node.Decode(&items); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(hs.fromData(items))
}

func isNilHeader(hdr Header) bool { return hdr == nil || util.IsNil(hdr) }
