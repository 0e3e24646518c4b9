package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/ioutil"
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
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// ProtoInfo represents SIP protocol information (name and version).
type ProtoInfo = types.ProtoInfo

// TransportProto represents a transport protocol (UDP, TCP, TLS, SCTP, WS, WSS).
type TransportProto = types.TransportProto

// RequestMethod represents a SIP request method (INVITE, ACK, BYE, etc.).
type RequestMethod = types.RequestMethod

// RenderOptions contains options for rendering headers and URIs.
type RenderOptions = types.RenderOptions

// Param is a single header parameter.
type Param = types.Param

// Params is an ordered list of parameters with unique names.
type Params = types.Params

// NewParam creates a header parameter, non-token values are quoted.
func NewParam(name, value string) (Param, error) { return errtrace.Wrap2(types.NewParam(name, value)) }

// NewQuotedParam creates a header parameter rendered as a quoted string.
func NewQuotedParam(name, value string) (Param, error) {
	return errtrace.Wrap2(types.NewQuotedParam(name, value))
}

// NewFlag creates a valueless header parameter.
func NewFlag(name string) (Param, error) { return errtrace.Wrap2(types.NewFlag(name)) }

// NewMediaParam creates a media type parameter.
func NewMediaParam(name, value string) (Param, error) {
	return errtrace.Wrap2(types.NewMediaParam(name, value))
}

// Header represents a generic SIP header.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.Validator
	types.Equalable
	// CanonicName returns the long form of the header name.
	CanonicName() Name
	// CompactName returns the compact form of the header name, or the long form if there is none.
	CompactName() Name
	// AllowMultiple reports whether the header may be repeated in a message.
	AllowMultiple() bool
	// RenderValue returns the header value without the name prefix.
	RenderValue() string
	// Parse replaces the header state with the value parsed from the input.
	// An empty value resets the header to its initial state.
	Parse(value string) error
}

// Name represents a SIP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"c":                "Content-Type",
	"e":                "Content-Encoding",
	"f":                "From",
	"i":                "Call-ID",
	"k":                "Supported",
	"l":                "Content-Length",
	"m":                "Contact",
	"s":                "Subject",
	"t":                "To",
	"v":                "Via",
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Mime-Version":     "MIME-Version",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "accept-encoding" is "Accept-Encoding".
// Also, any compact name is converted to its full canonical form. For example, "c" converts to "Content-Type".
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[util.LCase(string(name))]; ok && len(name) == 1 {
		return n
	}
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	name = T(textproto.CanonicalMIMEHeaderKey(string(name)))
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}
	return Name(name)
}

func headerName(hdr Header, opts *RenderOptions) Name {
	if opts != nil && opts.Compact {
		return hdr.CompactName()
	}
	return hdr.CanonicName()
}

// renderTo writes "Name: value".
func renderTo(w io.Writer, hdr Header, opts *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(headerName(hdr, opts), ": ", hdr.RenderValue())
	return errtrace.Wrap2(cw.Result())
}

func render(hdr Header, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func formatHeader(f fmt.State, verb rune, hdr Header) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			hdr.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.RenderValue())
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render(nil)))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.RenderValue()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), hdr.RenderValue())
	}
}

// ParseInto parses the value into the header.
// A nil value is a no-op that keeps the current header state.
func ParseInto(hdr Header, value *string) error {
	if hdr == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil header"))
	}
	if value == nil {
		return nil
	}
	return errtrace.Wrap(hdr.Parse(*value))
}

// Compare orders headers by canonical name first (case-insensitive),
// then by the rendered value (ordinal).
func Compare(a, b Header) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := strings.Compare(util.LCase(string(a.CanonicName())), util.LCase(string(b.CanonicName()))); c != 0 {
		return c
	}
	return strings.Compare(a.RenderValue(), b.RenderValue())
}

// Bytes returns the UTF-8 encoded header line.
func Bytes(hdr Header, opts *RenderOptions) []byte {
	if hdr == nil {
		return nil
	}
	return []byte(hdr.Render(opts))
}

// Runes returns the header line as a slice of runes.
func Runes(hdr Header, opts *RenderOptions) []rune {
	if hdr == nil {
		return nil
	}
	return []rune(hdr.Render(opts))
}

// URIString returns the header in the "name=value" form
// escaped for the headers component of a SIP URI.
func URIString(hdr Header, opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	esc := func(c byte) bool { return !grammar.IsURIHeaderCharUnreserved(c) }
	return grammar.Escape(string(headerName(hdr, opts)), esc) + "=" + grammar.Escape(hdr.RenderValue(), esc)
}

type headerData struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ToJSON encodes the header as a {"name": ..., "value": ...} JSON object.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

var errNotHeaderJSON errorutil.Error = "not a header JSON"

// FromJSON decodes a header encoded by [ToJSON].
func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}

	hdr, err := Parse(hd.Name + ": " + hd.Value)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse header %q: %w", hd.Name, err))
	}
	return hdr, nil
}

func unmarshalJSON[T any, H interface {
	*T
	Header
}](data []byte, hdr H) error {
	var zero T
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zero
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(H)
	if !ok {
		*hdr = zero
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, hdr))
	}
	*hdr = *h
	return nil
}
