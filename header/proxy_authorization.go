package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ProxyAuthorization represents the Proxy-Authorization header field.
type ProxyAuthorization struct {
	Credentials
}

func (hdr *ProxyAuthorization) base() *Credentials {
	hdr.Credentials.setup()
	return &hdr.Credentials
}

// CanonicName returns the canonical name of the header.
func (*ProxyAuthorization) CanonicName() Name { return "Proxy-Authorization" }

// CompactName returns the compact name of the header (Proxy-Authorization has no compact form).
func (*ProxyAuthorization) CompactName() Name { return "Proxy-Authorization" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ProxyAuthorization) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ProxyAuthorization) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthorization) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthorization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ProxyAuthorization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ProxyAuthorization) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ProxyAuthorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthorization{hdr.base().clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthorization) Equal(val any) bool {
	var other *ProxyAuthorization
	switch v := val.(type) {
	case ProxyAuthorization:
		other = &v
	case *ProxyAuthorization:
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
func (hdr *ProxyAuthorization) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ProxyAuthorization) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ProxyAuthorization) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// NewProxyAuthorization creates the header with the given authentication scheme.
// The Basic scheme is rejected with [ErrBasicScheme].
func NewProxyAuthorization(scheme string) (*ProxyAuthorization, error) {
	hdr := new(ProxyAuthorization)
	if err := hdr.base().SetScheme(scheme); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}
