package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ContentDisposition represents the Content-Disposition header field.
type ContentDisposition OptionParams

func (hdr *ContentDisposition) base() *OptionParams {
	o := (*OptionParams)(hdr)
	o.setup("handling")
	return o
}

// CanonicName returns the canonical name of the header.
func (*ContentDisposition) CanonicName() Name { return "Content-Disposition" }

// CompactName returns the compact name of the header (Content-Disposition has no compact form).
func (*ContentDisposition) CompactName() Name { return "Content-Disposition" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ContentDisposition) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *ContentDisposition) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ContentDisposition) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ContentDisposition) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentDisposition) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ContentDisposition) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentDisposition) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ContentDisposition) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ContentDisposition(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ContentDisposition) Equal(val any) bool {
	var other *ContentDisposition
	switch v := val.(type) {
	case ContentDisposition:
		other = &v
	case *ContentDisposition:
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
func (hdr *ContentDisposition) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ContentDisposition) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ContentDisposition) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Handling returns the handling parameter, e.g. "optional" or "required".
func (hdr *ContentDisposition) Handling() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("handling")
}

// SetHandling sets the handling parameter, an empty value removes it.
func (hdr *ContentDisposition) SetHandling(handling string) error {
	return errtrace.Wrap(hdr.base().setParamValue("handling", handling, false))
}
