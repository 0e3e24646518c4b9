package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"
)

// MinExpires represents the Min-Expires header field.
type MinExpires Seconds

func (hdr *MinExpires) base() *Seconds {
	return (*Seconds)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*MinExpires) CanonicName() Name { return "Min-Expires" }

// CompactName returns the compact name of the header (Min-Expires has no compact form).
func (*MinExpires) CompactName() Name { return "Min-Expires" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*MinExpires) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *MinExpires) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *MinExpires) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *MinExpires) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *MinExpires) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *MinExpires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *MinExpires) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *MinExpires) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := MinExpires(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *MinExpires) Equal(val any) bool {
	var other *MinExpires
	switch v := val.(type) {
	case MinExpires:
		other = &v
	case *MinExpires:
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
func (hdr *MinExpires) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *MinExpires) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *MinExpires) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Duration returns the value as a duration.
func (hdr *MinExpires) Duration() time.Duration {
	if hdr == nil {
		return 0
	}
	return hdr.base().duration()
}

// SetSeconds sets the value, failing with [ErrSecondsRange] outside of [0, MaxSeconds].
func (hdr *MinExpires) SetSeconds(sec int64) error { return errtrace.Wrap(hdr.base().set(sec)) }
