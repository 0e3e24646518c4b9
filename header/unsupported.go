package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Unsupported represents a single option tag of the Unsupported header field.
type Unsupported Option

func (hdr *Unsupported) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Unsupported) CanonicName() Name { return "Unsupported" }

// CompactName returns the compact name of the header (Unsupported has no compact form).
func (*Unsupported) CompactName() Name { return "Unsupported" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Unsupported) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Unsupported) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Unsupported) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Unsupported) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Unsupported) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Unsupported) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Unsupported) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Unsupported) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Unsupported(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Unsupported) Equal(val any) bool {
	var other *Unsupported
	switch v := val.(type) {
	case Unsupported:
		other = &v
	case *Unsupported:
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
func (hdr *Unsupported) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Unsupported) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Unsupported) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
