package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// CallInfo represents a single value of the Call-Info header field.
// The purpose parameter describes what the URI refers to, e.g. icon, info or card.
type CallInfo AbsoluteURIParams

func (hdr *CallInfo) base() *AbsoluteURIParams {
	u := (*AbsoluteURIParams)(hdr)
	u.setup("purpose")
	return u
}

// CanonicName returns the canonical name of the header.
func (*CallInfo) CanonicName() Name { return "Call-Info" }

// CompactName returns the compact name of the header (Call-Info has no compact form).
func (*CallInfo) CompactName() Name { return "Call-Info" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*CallInfo) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *CallInfo) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *CallInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *CallInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *CallInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *CallInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *CallInfo) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *CallInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := CallInfo(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *CallInfo) Equal(val any) bool {
	var other *CallInfo
	switch v := val.(type) {
	case CallInfo:
		other = &v
	case *CallInfo:
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
func (hdr *CallInfo) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *CallInfo) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *CallInfo) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Purpose returns the purpose parameter.
func (hdr *CallInfo) Purpose() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("purpose")
}

// SetPurpose sets the purpose parameter, an empty value removes it.
func (hdr *CallInfo) SetPurpose(purpose string) error {
	return errtrace.Wrap(hdr.base().setParamValue("purpose", purpose, false))
}
