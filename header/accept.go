package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Accept represents a single media range of the Accept header field.
type Accept MediaType

func (hdr *Accept) base() *MediaType {
	mt := (*MediaType)(hdr)
	mt.setup("q")
	return mt
}

// CanonicName returns the canonical name of the header.
func (*Accept) CanonicName() Name { return "Accept" }

// CompactName returns the compact name of the header (Accept has no compact form).
func (*Accept) CompactName() Name { return "Accept" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Accept) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Accept) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers(qValueCheck{&hdr.Parameterized})...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Accept) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Accept) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Accept) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Accept) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Accept) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Accept) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Accept(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Accept) Equal(val any) bool {
	var other *Accept
	switch v := val.(type) {
	case Accept:
		other = &v
	case *Accept:
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
func (hdr *Accept) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Accept) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Accept) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// MIMEType returns "type/subtype" in lower case.
func (hdr *Accept) MIMEType() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().MIMEType()
}

// QValue returns the q-value.
func (hdr *Accept) QValue() (float64, bool) {
	if hdr == nil {
		return 0, false
	}
	return qValue(&hdr.Parameterized)
}

// SetQValue sets the q-value, failing with [ErrOutOfRange] outside of [0, 1].
func (hdr *Accept) SetQValue(q float64) error {
	hdr.base()
	return errtrace.Wrap(setQValue(&hdr.Parameterized, q))
}
