package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// RecordRoute represents a single value of the Record-Route header field.
type RecordRoute Addressed

func (hdr *RecordRoute) base() *Addressed {
	addr := (*Addressed)(hdr)
	addr.setup()
	return addr
}

// CanonicName returns the canonical name of the header.
func (*RecordRoute) CanonicName() Name { return "Record-Route" }

// CompactName returns the compact name of the header (Record-Route has no compact form).
func (*RecordRoute) CompactName() Name { return "Record-Route" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*RecordRoute) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *RecordRoute) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *RecordRoute) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *RecordRoute) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *RecordRoute) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *RecordRoute) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RecordRoute) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *RecordRoute) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := RecordRoute(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *RecordRoute) Equal(val any) bool {
	var other *RecordRoute
	switch v := val.(type) {
	case RecordRoute:
		other = &v
	case *RecordRoute:
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
func (hdr *RecordRoute) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *RecordRoute) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *RecordRoute) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
