package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ErrorInfo represents a single value of the Error-Info header field.
type ErrorInfo AbsoluteURIParams

func (hdr *ErrorInfo) base() *AbsoluteURIParams {
	u := (*AbsoluteURIParams)(hdr)
	u.setup()
	return u
}

// CanonicName returns the canonical name of the header.
func (*ErrorInfo) CanonicName() Name { return "Error-Info" }

// CompactName returns the compact name of the header (Error-Info has no compact form).
func (*ErrorInfo) CompactName() Name { return "Error-Info" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ErrorInfo) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ErrorInfo) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ErrorInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ErrorInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ErrorInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ErrorInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ErrorInfo) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ErrorInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ErrorInfo(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ErrorInfo) Equal(val any) bool {
	var other *ErrorInfo
	switch v := val.(type) {
	case ErrorInfo:
		other = &v
	case *ErrorInfo:
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
func (hdr *ErrorInfo) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ErrorInfo) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ErrorInfo) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
