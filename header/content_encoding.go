package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ContentEncoding represents a single coding of the Content-Encoding header field.
type ContentEncoding Option

func (hdr *ContentEncoding) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*ContentEncoding) CanonicName() Name { return "Content-Encoding" }

// CompactName returns the compact name of the header.
func (*ContentEncoding) CompactName() Name { return "e" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ContentEncoding) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *ContentEncoding) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ContentEncoding) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ContentEncoding) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentEncoding) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ContentEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentEncoding) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ContentEncoding) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ContentEncoding(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ContentEncoding) Equal(val any) bool {
	var other *ContentEncoding
	switch v := val.(type) {
	case ContentEncoding:
		other = &v
	case *ContentEncoding:
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
func (hdr *ContentEncoding) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ContentEncoding) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ContentEncoding) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
