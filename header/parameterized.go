package header

import (
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Parameterized holds the parameters of a header.
// Parameters whose names are registered as known are kept apart from the generic ones
// and rendered first. A known name never appears among the generic parameters.
//
// The zero value is ready to use, the owning header registers its known names
// the first time one of its methods is called. Names registered before that are kept.
type Parameterized struct {
	sep       string
	kind      types.ParamKind
	known     []string
	noGeneric bool
	ready     bool
	hdrParams Params
	genParams Params
}

// setup configures the separator, the parameter kind and the known names once.
func (ps *Parameterized) setup(sep string, kind types.ParamKind, noGeneric bool, known ...string) {
	if ps.ready {
		return
	}
	ps.ready = true
	ps.sep = sep
	ps.kind = kind
	ps.noGeneric = noGeneric
	ps.hdrParams = ps.hdrParams.Rebuild(sep, kind)
	ps.genParams = ps.genParams.Rebuild(sep, kind)
	for _, n := range known {
		ps.RegisterKnownParam(n)
	}
}

// Sep returns the parameter separator.
func (ps *Parameterized) Sep() string {
	if ps == nil || ps.sep == "" {
		return ";"
	}
	return ps.sep
}

// AllowGenericParams reports whether parameters with unknown names are accepted.
func (ps *Parameterized) AllowGenericParams() bool { return ps != nil && !ps.noGeneric }

// RegisterKnownParam registers the parameter name as known.
// A generic parameter with this name is moved to the known parameters.
func (ps *Parameterized) RegisterKnownParam(name string) {
	name = util.UCase(strings.TrimSpace(name))
	if name == "" || slices.Contains(ps.known, name) {
		return
	}
	ps.known = append(ps.known, name)
	if p, ok := ps.genParams.Get(name); ok {
		ps.genParams.Remove(name)
		ps.hdrParams.Set(p) //nolint:errcheck
	}
}

// UnregisterKnownParam removes the name from the known parameters.
// A parameter with this name is moved to the generic parameters.
func (ps *Parameterized) UnregisterKnownParam(name string) {
	name = util.UCase(strings.TrimSpace(name))
	i := slices.Index(ps.known, name)
	if i < 0 {
		return
	}
	ps.known = slices.Delete(ps.known, i, i+1)
	if p, ok := ps.hdrParams.Get(name); ok {
		ps.hdrParams.Remove(name)
		ps.genParams.Set(p) //nolint:errcheck
	}
}

// IsKnownParam reports whether the parameter name is registered as known.
func (ps *Parameterized) IsKnownParam(name string) bool {
	return ps != nil && slices.Contains(ps.known, util.UCase(name))
}

// HeaderParams returns a copy of the known parameters.
func (ps *Parameterized) HeaderParams() Params {
	if ps == nil {
		return Params{}
	}
	return ps.hdrParams.Clone()
}

// GenericParams returns a copy of the generic parameters.
func (ps *Parameterized) GenericParams() Params {
	if ps == nil {
		return Params{}
	}
	return ps.genParams.Clone()
}

// Param returns the parameter with the given name.
func (ps *Parameterized) Param(name string) (Param, bool) {
	if ps == nil {
		return Param{}, false
	}
	if p, ok := ps.hdrParams.Get(name); ok {
		return p, true
	}
	return ps.genParams.Get(name)
}

// HasParam checks whether the parameter with the given name exists.
func (ps *Parameterized) HasParam(name string) bool {
	_, ok := ps.Param(name)
	return ok
}

// ParamsLen returns the total number of parameters.
func (ps *Parameterized) ParamsLen() int {
	if ps == nil {
		return 0
	}
	return ps.hdrParams.Len() + ps.genParams.Len()
}

// AddParam adds the parameter, failing with [ErrDuplicateItem] when the name is taken.
func (ps *Parameterized) AddParam(p Param) error {
	if p.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter"))
	}
	if ps.HasParam(p.Name()) {
		return errtrace.Wrap(errorutil.NewDuplicateItemError("parameter %q", p.Name()))
	}
	if ps.IsKnownParam(p.Name()) {
		return errtrace.Wrap(ps.hdrParams.Add(p))
	}
	return errtrace.Wrap(ps.AddGenericParam(p))
}

// AddGenericParam adds a generic parameter.
// It fails with [ErrDuplicateItem] when the name is known or already taken and
// with [ErrGenericParamsNotAllowed] when the header accepts only known parameters.
func (ps *Parameterized) AddGenericParam(p Param) error {
	if p.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter"))
	}
	if ps.noGeneric {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrGenericParamsNotAllowed, "parameter %q", p.Name()))
	}
	if ps.IsKnownParam(p.Name()) {
		return errtrace.Wrap(errorutil.NewDuplicateItemError("parameter %q is a known parameter", p.Name()))
	}
	return errtrace.Wrap(ps.genParams.Add(p))
}

// SetParam updates the parameter with the same name or adds it.
func (ps *Parameterized) SetParam(p Param) error {
	if p.IsZero() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter"))
	}
	if ps.IsKnownParam(p.Name()) {
		return errtrace.Wrap(ps.hdrParams.Set(p))
	}
	if ps.noGeneric {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrGenericParamsNotAllowed, "parameter %q", p.Name()))
	}
	return errtrace.Wrap(ps.genParams.Set(p))
}

// RemoveParam removes the parameter and reports whether it existed.
func (ps *Parameterized) RemoveParam(name string) bool {
	if ps == nil {
		return false
	}
	return ps.hdrParams.Remove(name) || ps.genParams.Remove(name)
}

// ClearParams removes all parameters.
func (ps *Parameterized) ClearParams() {
	ps.hdrParams.Clear()
	ps.genParams.Clear()
}

func (ps *Parameterized) paramValue(name string) (string, bool) {
	p, ok := ps.Param(name)
	if !ok {
		return "", false
	}
	return p.Unquoted(), true
}

// setParamValue sets the value of a parameter, removing it when the value is empty.
func (ps *Parameterized) setParamValue(name, value string, quoted bool) error {
	if value == "" {
		ps.RemoveParam(name)
		return nil
	}
	var (
		p   Param
		err error
	)
	if quoted {
		p, err = types.NewQuotedParam(name, value)
	} else {
		p, err = types.NewParam(name, value)
	}
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(ps.SetParam(p))
}

func (ps *Parameterized) setFlag(name string, on bool) error {
	if !on {
		ps.RemoveParam(name)
		return nil
	}
	p, err := types.NewFlag(name)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(ps.SetParam(p))
}

// field, reset and consume make Parameterized the last layer of every header.

func (*Parameterized) field() string { return "params" }

// reset keeps the known names, including the registered ones.
func (ps *Parameterized) reset() { ps.ClearParams() }

func (ps *Parameterized) consume(sc *grammar.Scanner) error {
	if sc.EOF() {
		return nil
	}
	sep := ps.Sep()
	if !sc.Accept(sep[0]) && sep != "," {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("expected %q before parameters", sep))
	}

	rest := sc.Rest()
	sc.Skip(len(rest))
	for _, chunk := range grammar.Split(rest, sep) {
		if strings.Trim(chunk, " \t") == "" {
			continue
		}
		p, err := types.ParseParam(ps.kind, chunk)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := ps.AddParam(p); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (ps *Parameterized) renderParams(w io.Writer, lead bool) (int, error) {
	if ps.ParamsLen() == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	joiner := ps.Sep()
	if joiner == "," {
		joiner = ", "
	}
	if lead {
		cw.WriteString(joiner)
	}
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(ps.hdrParams.RenderTo(w)) })
	if ps.hdrParams.Len() > 0 && ps.genParams.Len() > 0 {
		cw.WriteString(joiner)
	}
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(ps.genParams.RenderTo(w)) })
	return errtrace.Wrap2(cw.Result())
}

func (ps *Parameterized) equalParams(other *Parameterized) bool {
	return ps.hdrParams.Equal(&other.hdrParams) && ps.genParams.Equal(&other.genParams)
}

func (ps *Parameterized) isValidParams() bool {
	if !ps.hdrParams.IsValid() || !ps.genParams.IsValid() {
		return false
	}
	if ps.noGeneric && ps.genParams.Len() > 0 {
		return false
	}
	for p := range ps.genParams.All() {
		if ps.IsKnownParam(p.Name()) {
			return false
		}
	}
	return true
}

func (ps *Parameterized) clone() Parameterized {
	return Parameterized{
		sep:       ps.sep,
		kind:      ps.kind,
		known:     slices.Clone(ps.known),
		noGeneric: ps.noGeneric,
		ready:     ps.ready,
		hdrParams: ps.hdrParams.Clone(),
		genParams: ps.genParams.Clone(),
	}
}
