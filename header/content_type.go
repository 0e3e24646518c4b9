package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ContentType represents the Content-Type header field.
// The Content-Type header field indicates the media type of the message-body sent to the recipient.
type ContentType MediaType

func (hdr *ContentType) base() *MediaType {
	mt := (*MediaType)(hdr)
	mt.setup()
	return mt
}

// CanonicName returns the canonical name of the header.
func (*ContentType) CanonicName() Name { return "Content-Type" }

// CompactName returns the compact name of the header.
func (*ContentType) CompactName() Name { return "c" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ContentType) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *ContentType) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ContentType) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ContentType) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentType) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ContentType) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentType) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ContentType) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ContentType(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ContentType) Equal(val any) bool {
	var other *ContentType
	switch v := val.(type) {
	case ContentType:
		other = &v
	case *ContentType:
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
func (hdr *ContentType) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ContentType) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ContentType) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// MIMEType returns "type/subtype" in lower case.
func (hdr *ContentType) MIMEType() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().MIMEType()
}
