package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Route represents a single value of the Route header field.
// The Route header field is used to force routing for a request through the listed set of proxies.
type Route Addressed

func (hdr *Route) base() *Addressed {
	addr := (*Addressed)(hdr)
	addr.setup()
	return addr
}

// CanonicName returns the canonical name of the header.
func (*Route) CanonicName() Name { return "Route" }

// CompactName returns the compact name of the header (Route has no compact form).
func (*Route) CompactName() Name { return "Route" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Route) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Route) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Route) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Route) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Route) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Route) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Route) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Route) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Route(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Route) Equal(val any) bool {
	var other *Route
	switch v := val.(type) {
	case Route:
		other = &v
	case *Route:
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
func (hdr *Route) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Route) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Route) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
