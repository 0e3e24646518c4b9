package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a network address from the given input s (string or []byte).
func ParseAddr[T grammar.Byteseq](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// Values represents URI headers as a multi-value map.
type Values = types.Values

// Params represents an ordered list of URI parameters.
type Params = types.Params

// Param represents a single URI parameter.
type Param = types.Param

// NewParams returns an empty list of URI parameters.
func NewParams() Params { return types.NewURIParams() }

// NewParam creates a URI parameter, the value is escaped as needed.
// An empty value creates a valueless parameter like "lr".
func NewParam(name, value string) (Param, error) { return errtrace.Wrap2(types.NewURIParam(name, value)) }

// RenderOptions contains options for rendering URIs and headers.
type RenderOptions = types.RenderOptions

type TransportProto = types.TransportProto

type RequestMethod = types.RequestMethod

// URI represents generic URI (SIP, SIPS or any other absolute URI).
type URI interface {
	types.Renderer
	types.Cloneable[URI]
	types.Validator
	types.Equalable
}

// Parse parses any URI from a given input s (string or []byte).
//
// Parsing of sip/sips returns [SIP], any other URI returns [Any].
//
// See [ParseSIP], [ParseAny].
func Parse[T grammar.Byteseq](s T) (URI, error) {
	if len(s) >= 4 {
		switch util.LCase(string(s[:4])) {
		case "sip:", "sips":
			return errtrace.Wrap2(ParseSIP(s))
		}
	}
	return errtrace.Wrap2(ParseAny(s))
}

// GetScheme returns the scheme of the URI.
//
// SIP and SIPS URIs return "sip" or "sips" respectively,
// Any URI returns the value of [net/url.URL.Scheme] field.
// If the URI is nil, an empty string is returned.
// If the URI is of unknown type, a panic is raised.
func GetScheme(u URI) string {
	if u == nil {
		return ""
	}

	switch u := u.(type) {
	case *SIP:
		return u.scheme()
	case *Any:
		return u.URL.Scheme
	default:
		panic(newUnexpectURITypeErr(u))
	}
}

// GetAddr returns the address of the URI.
//
// SIP and SIPS URIs returns the value of [SIP.Addr] field,
// Any URI returns the value of concatenated [net/url.URL.Host] and [net/url.URL.Path] fields.
// If the URI is nil, an empty string is returned.
// If the URI is of unknown type, a panic is raised.
func GetAddr(u URI) string {
	if u == nil {
		return ""
	}

	switch u := u.(type) {
	case *SIP:
		return u.Addr.String()
	case *Any:
		if u.Opaque != "" {
			return u.Opaque
		}
		return u.Host + u.Path
	default:
		panic(newUnexpectURITypeErr(u))
	}
}

func newUnexpectURITypeErr(u URI) error {
	return errorutil.Errorf("unexpected URI type %T", u) //errtrace:skip
}
