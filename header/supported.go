package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Supported represents a single option tag of the Supported header field.
type Supported Option

func (hdr *Supported) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Supported) CanonicName() Name { return "Supported" }

// CompactName returns the compact name of the header.
func (*Supported) CompactName() Name { return "k" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Supported) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Supported) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Supported) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Supported) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Supported) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Supported) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Supported) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Supported) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Supported(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Supported) Equal(val any) bool {
	var other *Supported
	switch v := val.(type) {
	case Supported:
		other = &v
	case *Supported:
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
func (hdr *Supported) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Supported) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Supported) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
