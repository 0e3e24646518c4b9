package header

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Via represents a single hop of the Via header field.
//
//	SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds
type Via struct {
	Proto     ProtoInfo
	Transport TransportProto
	Addr      Addr
	Parameterized
}

func (hdr *Via) base() *Via {
	hdr.Parameterized.setup(";", types.HeaderParam, false, "branch", "received", "maddr", "ttl", "rport")
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Via) CanonicName() Name { return "Via" }

// CompactName returns the compact name of the header.
func (*Via) CompactName() Name { return "v" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Via) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Via) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Via) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Via) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Via) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Via) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Via) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Via) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Via(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Via) Equal(val any) bool {
	var other *Via
	switch v := val.(type) {
	case Via:
		other = &v
	case *Via:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.base().equal(other.base())
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Via) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Via) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Via) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// MagicCookie prefixes the branch of requests sent by RFC 3261 compliant elements.
const MagicCookie = "z9hG4bK"

func (hdr *Via) layers() []layer {
	return []layer{
		layerFunc{
			name:  "sent-protocol",
			clear: func() { hdr.Proto, hdr.Transport = ProtoInfo{}, "" },
			fn:    hdr.consumeProto,
		},
		layerFunc{
			name:  "sent-by",
			clear: func() { hdr.Addr = Addr{} },
			fn: func(sc *grammar.Scanner) error {
				s := sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && c != ';' && c != ',' })
				addr, err := types.ParseAddr(s)
				if err != nil {
					return errtrace.Wrap(err)
				}
				hdr.Addr = addr
				return nil
			},
		},
		&hdr.Parameterized,
		layerFunc{name: "params", fn: func(*grammar.Scanner) error { return errtrace.Wrap(hdr.checkParams()) }},
	}
}

func (hdr *Via) consumeProto(sc *grammar.Scanner) error {
	var parts [3]string
	for i := range parts {
		if i > 0 {
			sc.SkipLWS()
			if !sc.Accept('/') {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("expected '/' in sent-protocol"))
			}
			sc.SkipLWS()
		}
		if parts[i] = sc.Token(); parts[i] == "" {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("incomplete sent-protocol"))
		}
	}
	hdr.Proto = ProtoInfo{Name: parts[0], Version: parts[1]}
	hdr.Transport = TransportProto(parts[2])
	return nil
}

func (hdr *Via) checkParams() error {
	if v, ok := hdr.paramValue("ttl"); ok {
		if _, err := strconv.ParseUint(v, 10, 8); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrOutOfRange, "ttl %q is outside of [0, 255]", v))
		}
	}
	for _, name := range [...]string{"received", "maddr"} {
		if v, ok := hdr.paramValue(name); ok && !grammar.IsHost(v) && net.ParseIP(v) == nil {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid %s %q", name, v))
		}
	}
	if p, ok := hdr.Param("rport"); ok && !p.IsValueless() {
		if _, err := strconv.ParseUint(p.Value(), 10, 16); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrOutOfRange, "rport %q is outside of [0, 65535]", p.Value()))
		}
	}
	return nil
}

func (hdr *Via) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if !hdr.Proto.IsZero() || hdr.Transport != "" {
		sb.WriteString(hdr.Proto.String())
		sb.WriteByte('/')
		sb.WriteString(string(hdr.Transport))
		sb.WriteByte(' ')
	}
	sb.WriteString(hdr.Addr.String())
	hdr.renderParams(sb, true) //nolint:errcheck
	return sb.String()
}

func (hdr *Via) clone() Via {
	return Via{
		Proto:         hdr.Proto,
		Transport:     hdr.Transport,
		Addr:          hdr.Addr.Clone(),
		Parameterized: hdr.Parameterized.clone(),
	}
}

func (hdr *Via) equal(other *Via) bool {
	return hdr.Proto.Equal(other.Proto) &&
		hdr.Transport.Equal(other.Transport) &&
		hdr.Addr.Equal(other.Addr) &&
		hdr.equalParams(&other.Parameterized)
}

func (hdr *Via) isValid() bool {
	return hdr.Proto.IsValid() &&
		hdr.Transport.IsValid() &&
		hdr.Addr.IsValid() &&
		hdr.isValidParams() &&
		hdr.checkParams() == nil
}

// Branch returns the branch parameter.
func (hdr *Via) Branch() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("branch")
}

// SetBranch sets the branch parameter, an empty value removes it.
func (hdr *Via) SetBranch(branch string) error {
	return errtrace.Wrap(hdr.base().setParamValue("branch", branch, false))
}

// IsRFC3261 reports whether the branch starts with [MagicCookie].
func (hdr *Via) IsRFC3261() bool {
	branch, ok := hdr.Branch()
	return ok && strings.HasPrefix(branch, MagicCookie)
}

// Received returns the received parameter.
func (hdr *Via) Received() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("received")
}

// SetReceived sets the received parameter, an empty value removes it.
func (hdr *Via) SetReceived(host string) error {
	if host != "" && !grammar.IsHost(host) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid received %q", host))
	}
	return errtrace.Wrap(hdr.base().setParamValue("received", host, false))
}

// TTL returns the ttl parameter.
func (hdr *Via) TTL() (uint8, bool) {
	if hdr == nil {
		return 0, false
	}
	v, ok := hdr.paramValue("ttl")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 8)
	return uint8(n), err == nil
}

// RPort returns the rport parameter, ok is true when the parameter is present.
// A valueless rport yields zero.
func (hdr *Via) RPort() (port uint16, ok bool) {
	if hdr == nil {
		return 0, false
	}
	p, ok := hdr.Param("rport")
	if !ok {
		return 0, false
	}
	n, _ := strconv.ParseUint(p.Value(), 10, 16)
	return uint16(n), true
}
