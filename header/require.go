package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Require represents a single option tag of the Require header field.
type Require Option

func (hdr *Require) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Require) CanonicName() Name { return "Require" }

// CompactName returns the compact name of the header (Require has no compact form).
func (*Require) CompactName() Name { return "Require" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Require) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Require) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Require) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Require) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Require) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Require) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Require) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Require) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Require(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Require) Equal(val any) bool {
	var other *Require
	switch v := val.(type) {
	case Require:
		other = &v
	case *Require:
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
func (hdr *Require) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Require) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Require) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
