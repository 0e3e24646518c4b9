package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Priority represents the Priority header field: emergency, urgent, normal, non-urgent or an extension token.
type Priority Option

func (hdr *Priority) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Priority) CanonicName() Name { return "Priority" }

// CompactName returns the compact name of the header (Priority has no compact form).
func (*Priority) CompactName() Name { return "Priority" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Priority) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Priority) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Priority) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Priority) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Priority) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Priority) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Priority) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Priority) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Priority(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Priority) Equal(val any) bool {
	var other *Priority
	switch v := val.(type) {
	case Priority:
		other = &v
	case *Priority:
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
func (hdr *Priority) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Priority) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Priority) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
