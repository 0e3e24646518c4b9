package types

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
)

// ParamKind selects the grammar used for parameter values.
type ParamKind uint8

const (
	// HeaderParam values are tokens, hosts or quoted strings.
	HeaderParam ParamKind = iota
	// MediaParam values use the relaxed media token test before falling back to a quoted string.
	MediaParam
	// URIParam values are never quoted, they are %HH escaped instead.
	URIParam
)

func (k ParamKind) String() string {
	switch k {
	case HeaderParam:
		return "header"
	case MediaParam:
		return "media"
	case URIParam:
		return "uri"
	default:
		return "ParamKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Param is a single "name[=value]" parameter.
// The name is stored lower-cased. The value is stored in its wire form,
// i.e. quoted or escaped depending on the parameter kind.
type Param struct {
	name          string
	value         string
	valueless     bool
	caseSensitive bool
	kind          ParamKind
}

// NewParam creates a header parameter. A value that is neither a token nor a host
// is converted to a quoted string. An empty value creates a valueless parameter.
func NewParam(name, value string) (Param, error) {
	return errtrace.Wrap2(newParam(HeaderParam, name, value, false))
}

// NewQuotedParam creates a header parameter whose value is always rendered as a quoted string.
func NewQuotedParam(name, value string) (Param, error) {
	return errtrace.Wrap2(newParam(HeaderParam, name, value, true))
}

// NewMediaParam creates a media type parameter.
func NewMediaParam(name, value string) (Param, error) {
	return errtrace.Wrap2(newParam(MediaParam, name, value, false))
}

// NewURIParam creates a URI parameter, the value is escaped as needed.
func NewURIParam(name, value string) (Param, error) {
	return errtrace.Wrap2(newParam(URIParam, name, value, false))
}

// NewFlag creates a valueless header parameter, e.g. "lr".
func NewFlag(name string) (Param, error) {
	return errtrace.Wrap2(newParam(HeaderParam, name, "", false))
}

func newParam(kind ParamKind, name, value string, quote bool) (Param, error) {
	if name == "" {
		return Param{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty parameter name"))
	}
	if !grammar.IsToken(name) {
		return Param{}, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid parameter name %q", name))
	}

	p := Param{name: util.LCase(name), kind: kind}
	var err error
	if quote {
		err = p.SetQuotedValue(value)
	} else {
		err = p.SetValue(value)
	}
	if err != nil {
		return Param{}, errtrace.Wrap(err)
	}
	return p, nil
}

// ParseParam parses a single "name[=value]" parameter of the given kind.
// The value may contain "=" only inside a quoted string.
func ParseParam(kind ParamKind, s string) (Param, error) {
	s = strings.Trim(s, " \t\r\n")
	if s == "" {
		return Param{}, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	name, value, hasValue := strings.Cut(s, "=")
	name = strings.TrimRight(name, " \t")
	if !grammar.IsToken(name) {
		return Param{}, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid parameter name in %q", s))
	}

	p := Param{name: util.LCase(name), kind: kind}
	if !hasValue {
		p.valueless = true
		return p, nil
	}

	value = strings.TrimLeft(value, " \t")
	switch {
	case grammar.IsQuoted(value):
		if kind == URIParam {
			return Param{}, errtrace.Wrap(errorutil.NewInvalidFormatError("quoted value in URI parameter %q", s))
		}
		p.value = value
		p.caseSensitive = true
	case strings.Contains(value, "="):
		return Param{}, errtrace.Wrap(errorutil.NewInvalidFormatError("too many '=' in parameter %q", s))
	case isBareValue(kind, value):
		p.value = value
	default:
		return Param{}, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid value of parameter %q", s))
	}
	return p, nil
}

func isBareValue(kind ParamKind, v string) bool {
	switch kind {
	case MediaParam:
		return grammar.IsMediaToken(v)
	case URIParam:
		return isURIParamValue(v)
	default:
		return grammar.IsToken(v) || grammar.IsHost(v)
	}
}

func isURIParamValue(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] == '%' {
			if i+2 >= len(v) {
				return false
			}
			i += 2
			continue
		}
		if !grammar.IsURIParamCharUnreserved(v[i]) {
			return false
		}
	}
	return true
}

// Name returns the lower-cased parameter name.
func (p Param) Name() string { return p.name }

// Value returns the value in its wire form.
func (p Param) Value() string { return p.value }

// Unquoted returns the value with quotes removed or escapes resolved.
func (p Param) Unquoted() string {
	if p.kind == URIParam {
		return grammar.Unescape(p.value)
	}
	return grammar.Unquote(p.value)
}

// Kind returns the parameter kind.
func (p Param) Kind() ParamKind { return p.kind }

// IsValueless reports whether the parameter is a bare name.
func (p Param) IsValueless() bool { return p.valueless }

// IsCaseSensitive reports whether the value is compared case-sensitively,
// which is the case for quoted-string values.
func (p Param) IsCaseSensitive() bool { return p.caseSensitive }

// SetValue sets the value of the parameter.
// Quoted strings are kept as is, other values that do not fit the bare value
// grammar of the parameter kind are quoted (or escaped for URI parameters).
// An empty value makes the parameter valueless.
func (p *Param) SetValue(value string) error {
	if value == "" {
		p.value = ""
		p.valueless = true
		p.caseSensitive = false
		return nil
	}

	switch {
	case p.kind == URIParam:
		if !isURIParamValue(value) {
			value = grammar.Escape(value, func(c byte) bool { return !grammar.IsURIParamCharUnreserved(c) })
		}
		p.value, p.valueless, p.caseSensitive = value, false, false
		return nil
	case grammar.IsQuoted(value):
		p.value, p.valueless, p.caseSensitive = value, false, true
		return nil
	case isBareValue(p.kind, value):
		p.value, p.valueless, p.caseSensitive = value, false, false
		return nil
	default:
		return errtrace.Wrap(p.SetQuotedValue(value))
	}
}

// SetQuotedValue sets the unquoted value, it is always rendered as a quoted string.
func (p *Param) SetQuotedValue(value string) error {
	if p.kind == URIParam {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("URI parameter %q can not be quoted", p.name))
	}
	q := grammar.Quote(value)
	if !grammar.IsQuoted(q) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("value of parameter %q is not a valid quoted string", p.name))
	}
	p.value, p.valueless, p.caseSensitive = q, false, true
	return nil
}

// String renders the parameter as "name[=value]".
func (p Param) String() string {
	if p.name == "" {
		return ""
	}
	if p.valueless {
		return p.name
	}
	return p.name + "=" + p.value
}

// Format implements fmt.Formatter.
func (p Param) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if verb == 'v' && (f.Flag('+') || f.Flag('#')) {
			type hideMethods Param
			type Param hideMethods
			fmt.Fprintf(f, fmt.FormatString(f, verb), Param(p))
			return
		}
		fmt.Fprint(f, p.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), p.String())
	}
}

// Equal compares parameters. Names are always compared case-insensitively,
// values case-sensitively when at least one side holds a quoted string.
func (p Param) Equal(val any) bool {
	var other Param
	switch v := val.(type) {
	case Param:
		other = v
	case *Param:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if !util.EqFold(p.name, other.name) || p.valueless != other.valueless {
		return false
	}
	if p.valueless {
		return true
	}
	if p.caseSensitive || other.caseSensitive {
		return p.Unquoted() == other.Unquoted()
	}
	return util.EqFold(p.Unquoted(), other.Unquoted())
}

// IsValid reports whether the parameter is syntactically valid.
func (p Param) IsValid() bool {
	if !grammar.IsToken(p.name) {
		return false
	}
	if p.valueless {
		return true
	}
	if p.kind != URIParam && grammar.IsQuoted(p.value) {
		return true
	}
	return isBareValue(p.kind, p.value)
}

// IsZero reports whether the parameter is unset.
func (p Param) IsZero() bool { return p.name == "" }
