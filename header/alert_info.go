package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AlertInfo represents a single value of the Alert-Info header field.
// It specifies an alternative ring tone to the UAS.
type AlertInfo AbsoluteURIParams

func (hdr *AlertInfo) base() *AbsoluteURIParams {
	u := (*AbsoluteURIParams)(hdr)
	u.setup()
	return u
}

// CanonicName returns the canonical name of the header.
func (*AlertInfo) CanonicName() Name { return "Alert-Info" }

// CompactName returns the compact name of the header (Alert-Info has no compact form).
func (*AlertInfo) CompactName() Name { return "Alert-Info" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*AlertInfo) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *AlertInfo) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *AlertInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *AlertInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *AlertInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *AlertInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *AlertInfo) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *AlertInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := AlertInfo(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *AlertInfo) Equal(val any) bool {
	var other *AlertInfo
	switch v := val.(type) {
	case AlertInfo:
		other = &v
	case *AlertInfo:
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
func (hdr *AlertInfo) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *AlertInfo) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *AlertInfo) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
