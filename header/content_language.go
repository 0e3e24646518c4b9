package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ContentLanguage represents a single language tag of the Content-Language header field.
type ContentLanguage Option

func (hdr *ContentLanguage) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*ContentLanguage) CanonicName() Name { return "Content-Language" }

// CompactName returns the compact name of the header (Content-Language has no compact form).
func (*ContentLanguage) CompactName() Name { return "Content-Language" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ContentLanguage) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ContentLanguage) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ContentLanguage) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ContentLanguage) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentLanguage) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ContentLanguage) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentLanguage) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ContentLanguage) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ContentLanguage(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ContentLanguage) Equal(val any) bool {
	var other *ContentLanguage
	switch v := val.(type) {
	case ContentLanguage:
		other = &v
	case *ContentLanguage:
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
func (hdr *ContentLanguage) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ContentLanguage) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ContentLanguage) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
