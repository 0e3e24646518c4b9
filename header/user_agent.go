package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// UserAgent represents the User-Agent header field.
type UserAgent ServerValue

func (hdr *UserAgent) base() *ServerValue {
	return (*ServerValue)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*UserAgent) CanonicName() Name { return "User-Agent" }

// CompactName returns the compact name of the header (User-Agent has no compact form).
func (*UserAgent) CompactName() Name { return "User-Agent" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*UserAgent) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *UserAgent) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *UserAgent) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *UserAgent) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *UserAgent) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *UserAgent) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *UserAgent) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *UserAgent) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := UserAgent(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *UserAgent) Equal(val any) bool {
	var other *UserAgent
	switch v := val.(type) {
	case UserAgent:
		other = &v
	case *UserAgent:
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
func (hdr *UserAgent) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *UserAgent) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *UserAgent) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
