package types

import (
	"errors"
	"fmt"
	"io"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Addr is the host[:port] pair of sent-by, received and URI host parts.
// Hosts that are IP literals are kept parsed for comparison.
type Addr struct {
	host    string
	ip      net.IP
	port    uint16
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	host = strings.Trim(host, "[]")
	ip := net.ParseIP(host)
	if v := ip.To4(); v != nil {
		ip = v
	}
	return Addr{
		host: host,
		ip:   ip,
	}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint16) Addr {
	host = strings.Trim(host, "[]")
	ip := net.ParseIP(host)
	if v := ip.To4(); v != nil {
		ip = v
	}
	return Addr{
		host:    host,
		ip:      ip,
		port:    port,
		hasPort: true,
	}
}

// ParseAddr parses a "host[:port]" string into an [Addr].
// Internationalized host names are converted to their ASCII form.
func ParseAddr[T grammar.Byteseq](s T) (Addr, error) {
	if len(s) == 0 {
		return Addr{}, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	sc := grammar.NewScanner(string(s))
	var host string
	if sc.Accept('[') {
		host = sc.TakeWhile(func(c byte) bool { return c != ']' })
		if !sc.Accept(']') {
			return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, "missing closing bracket"))
		}
		host = "[" + host + "]"
	} else {
		host = sc.TakeWhile(func(c byte) bool { return c != ':' })
		if !isASCII(host) {
			ah, err := idna.Lookup.ToASCII(host)
			if err != nil {
				return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, err))
			}
			host = ah
		}
	}
	if !grammar.IsHost(host) {
		return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, "invalid host %q", host))
	}
	if sc.EOF() {
		return Host(host), nil
	}

	if !sc.Accept(':') {
		return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, "unexpected %q", sc.Rest()))
	}
	ps := sc.Rest()
	if !grammar.IsDigits(ps) {
		return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, "invalid port %q", ps))
	}
	port, err := strconv.ParseUint(ps, 10, 16)
	if err != nil {
		return Addr{}, errtrace.Wrap(newMalformedAddrErr(s, err))
	}
	return HostPort(host, uint16(port)), nil
}

func newMalformedAddrErr[T grammar.Byteseq](s T, args ...any) error {
	return errorutil.NewWrapperError( //errtrace:skip
		grammar.ErrMalformedInput,
		fmt.Errorf("address %q: %w", string(s), errorutil.NewWrapperError(errorutil.ErrInvalidFormat, args...)),
	)
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// IP returns the parsed IP representation when the host is an IP literal, otherwise nil.
func (addr Addr) IP() net.IP { return addr.ip }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint16, bool) { return addr.port, addr.hasPort }

// String formats the address as host[:port], adding brackets for IPv6 literals when required.
func (addr Addr) String() string {
	var host string
	if addr.ip == nil {
		host = addr.host
	} else {
		host = addr.ip.String()
	}
	if !addr.hasPort {
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(int(addr.port)))
}

// Format prints host[:port], %#v prints the fields.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'q':
		io.WriteString(f, strconv.Quote(addr.String())) //nolint:errcheck
	case verb == 'v' && f.Flag('#'):
		type fields Addr
		fmt.Fprintf(f, "%#v", fields(addr))
	default:
		io.WriteString(f, addr.String()) //nolint:errcheck
	}
}

// Clone returns a deep copy of the address including the underlying IP slice.
func (addr Addr) Clone() Addr {
	addr.ip = slices.Clone(addr.ip)
	return addr
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	var hostMatch bool
	switch {
	case addr.ip == nil && other.ip == nil:
		hostMatch = util.EqFold(addr.host, other.host)
	case addr.ip != nil && other.ip != nil:
		hostMatch = addr.ip.Equal(other.ip)
	default:
		return false
	}

	return hostMatch && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsValid reports whether the address contains a syntactically valid host component.
func (addr Addr) IsValid() bool {
	if addr.ip != nil {
		return true
	}
	return grammar.IsHost(addr.host)
}

// IsZero reports whether the address has zero host, IP and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && addr.ip == nil && !addr.hasPort }

// MarshalText encodes the address into its textual representation suitable for JSON/Text marshalling.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (addr *Addr) UnmarshalText(text []byte) error {
	var err error
	*addr, err = ParseAddr(text)
	if errors.Is(err, grammar.ErrEmptyInput) {
		return nil
	}
	return errtrace.Wrap(err)
}
