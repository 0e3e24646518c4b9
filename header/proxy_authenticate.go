package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ProxyAuthenticate represents the Proxy-Authenticate header field.
type ProxyAuthenticate struct {
	Challenge
}

func (hdr *ProxyAuthenticate) base() *Challenge {
	hdr.Challenge.setup()
	return &hdr.Challenge
}

// CanonicName returns the canonical name of the header.
func (*ProxyAuthenticate) CanonicName() Name { return "Proxy-Authenticate" }

// CompactName returns the compact name of the header (Proxy-Authenticate has no compact form).
func (*ProxyAuthenticate) CompactName() Name { return "Proxy-Authenticate" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ProxyAuthenticate) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ProxyAuthenticate) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthenticate) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthenticate) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ProxyAuthenticate) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ProxyAuthenticate) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ProxyAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthenticate{hdr.base().clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthenticate) Equal(val any) bool {
	var other *ProxyAuthenticate
	switch v := val.(type) {
	case ProxyAuthenticate:
		other = &v
	case *ProxyAuthenticate:
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
func (hdr *ProxyAuthenticate) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ProxyAuthenticate) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ProxyAuthenticate) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// NewProxyAuthenticate creates the header with the given authentication scheme.
// The Basic scheme is rejected with [ErrBasicScheme].
func NewProxyAuthenticate(scheme string) (*ProxyAuthenticate, error) {
	hdr := new(ProxyAuthenticate)
	if err := hdr.base().SetScheme(scheme); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}
