package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ProxyRequire represents a single option tag of the Proxy-Require header field.
type ProxyRequire Option

func (hdr *ProxyRequire) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*ProxyRequire) CanonicName() Name { return "Proxy-Require" }

// CompactName returns the compact name of the header (Proxy-Require has no compact form).
func (*ProxyRequire) CompactName() Name { return "Proxy-Require" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ProxyRequire) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ProxyRequire) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ProxyRequire) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ProxyRequire) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyRequire) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ProxyRequire) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ProxyRequire) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ProxyRequire) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ProxyRequire(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ProxyRequire) Equal(val any) bool {
	var other *ProxyRequire
	switch v := val.(type) {
	case ProxyRequire:
		other = &v
	case *ProxyRequire:
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
func (hdr *ProxyRequire) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ProxyRequire) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ProxyRequire) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
