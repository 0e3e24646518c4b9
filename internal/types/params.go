package types

import (
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

// Params is an ordered list of parameters with unique names.
// The separator governs both parsing and rendering, the zero value uses ";".
type Params struct {
	sep  string
	kind ParamKind
	list []Param
}

// NewParams returns an empty header parameter list with the given separator.
func NewParams(sep string) Params { return Params{sep: sep} }

// NewMediaParams returns an empty media type parameter list separated by ";".
func NewMediaParams() Params { return Params{sep: ";", kind: MediaParam} }

// NewURIParams returns an empty URI parameter list separated by ";".
func NewURIParams() Params { return Params{sep: ";", kind: URIParam} }

// Rebuild returns a copy of the list with the given separator and kind.
// Parameters already stored keep their wire form.
func (ps *Params) Rebuild(sep string, kind ParamKind) Params {
	out := Params{sep: sep, kind: kind}
	if ps != nil {
		out.list = slices.Clone(ps.list)
	}
	return out
}

// Sep returns the separator.
func (ps *Params) Sep() string {
	if ps == nil || ps.sep == "" {
		return ";"
	}
	return ps.sep
}

// Kind returns the kind of parameters stored in the list.
func (ps *Params) Kind() ParamKind {
	if ps == nil {
		return HeaderParam
	}
	return ps.kind
}

func (ps *Params) joiner() string {
	if sep := ps.Sep(); sep != "," {
		return sep
	}
	return ", "
}

// Len returns the number of parameters.
func (ps *Params) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.list)
}

// At returns the parameter at position i.
func (ps *Params) At(i int) Param { return ps.list[i] }

// All returns an iterator over the parameters in order.
func (ps *Params) All() iter.Seq[Param] {
	return func(yield func(Param) bool) {
		if ps == nil {
			return
		}
		for _, p := range ps.list {
			if !yield(p) {
				return
			}
		}
	}
}

func (ps *Params) index(name string) int {
	if ps == nil {
		return -1
	}
	return slices.IndexFunc(ps.list, func(p Param) bool { return util.EqFold(p.name, name) })
}

// Get returns the parameter with the given name.
func (ps *Params) Get(name string) (Param, bool) {
	if i := ps.index(name); i >= 0 {
		return ps.list[i], true
	}
	return Param{}, false
}

// Has checks whether the parameter with the given name exists.
func (ps *Params) Has(name string) bool { return ps.index(name) >= 0 }

// Add appends the parameter, failing with [errorutil.ErrDuplicateItem] when the name is already taken.
func (ps *Params) Add(p Param) error {
	return errtrace.Wrap(ps.Insert(ps.Len(), p))
}

// Insert inserts the parameter at position i, failing with [errorutil.ErrDuplicateItem]
// when the name is already taken.
func (ps *Params) Insert(i int, p Param) error {
	if p.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter"))
	}
	if i < 0 || i > ps.Len() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("index %d is out of bounds", i))
	}
	if ps.Has(p.name) {
		return errtrace.Wrap(errorutil.NewDuplicateItemError("parameter %q", p.name))
	}
	ps.list = slices.Insert(ps.list, i, p)
	return nil
}

// Set updates the parameter with the same name in place or appends it.
func (ps *Params) Set(p Param) error {
	if p.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter"))
	}
	if i := ps.index(p.name); i >= 0 {
		ps.list[i] = p
		return nil
	}
	ps.list = append(ps.list, p)
	return nil
}

// Remove removes the parameter with the given name and reports whether it existed.
func (ps *Params) Remove(name string) bool {
	i := ps.index(name)
	if i < 0 {
		return false
	}
	ps.list = slices.Delete(ps.list, i, i+1)
	return true
}

// Clear removes all parameters keeping the separator and kind.
func (ps *Params) Clear() { ps.list = ps.list[:0:0] }

// Clone returns a deep copy.
func (ps *Params) Clone() Params {
	if ps == nil {
		return Params{}
	}
	return Params{sep: ps.sep, kind: ps.kind, list: slices.Clone(ps.list)}
}

// Equal reports whether both lists contain the same parameters, regardless of order.
func (ps *Params) Equal(val any) bool {
	var other *Params
	switch v := val.(type) {
	case Params:
		other = &v
	case *Params:
		other = v
	default:
		return false
	}

	if ps.Len() != other.Len() {
		return false
	}
	for p := range ps.All() {
		op, ok := other.Get(p.name)
		if !ok || !p.Equal(op) {
			return false
		}
	}
	return true
}

// IsValid checks whether every parameter is valid.
func (ps *Params) IsValid() bool {
	for p := range ps.All() {
		if !p.IsValid() {
			return false
		}
	}
	return true
}

// RenderTo writes the parameters joined by the separator, skipping the excluded names.
func (ps *Params) RenderTo(w io.Writer, exclude ...string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var n int
	for p := range ps.All() {
		if slices.ContainsFunc(exclude, func(s string) bool { return util.EqFold(s, p.name) }) {
			continue
		}
		if n > 0 {
			cw.WriteString(ps.joiner())
		}
		cw.WriteString(p.String())
		n++
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the parameters joined by the separator.
func (ps *Params) String() string {
	if ps.Len() == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Parse replaces the content with the parameters parsed from s.
// Empty chunks between separators are skipped.
func (ps *Params) Parse(s string) error {
	ps.Clear()
	for _, chunk := range grammar.Split(s, ps.Sep()) {
		if strings.Trim(chunk, " \t\r\n") == "" {
			continue
		}
		p, err := ParseParam(ps.kind, chunk)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := ps.Add(p); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
