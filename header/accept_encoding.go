package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AcceptEncoding represents a single coding of the Accept-Encoding header field.
type AcceptEncoding OptionParams

func (hdr *AcceptEncoding) base() *OptionParams {
	o := (*OptionParams)(hdr)
	o.setup("q")
	return o
}

// CanonicName returns the canonical name of the header.
func (*AcceptEncoding) CanonicName() Name { return "Accept-Encoding" }

// CompactName returns the compact name of the header (Accept-Encoding has no compact form).
func (*AcceptEncoding) CompactName() Name { return "Accept-Encoding" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*AcceptEncoding) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *AcceptEncoding) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers(qValueCheck{&hdr.Parameterized})...))
}

// RenderTo writes the header to the provided writer.
func (hdr *AcceptEncoding) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *AcceptEncoding) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *AcceptEncoding) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *AcceptEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *AcceptEncoding) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *AcceptEncoding) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := AcceptEncoding(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *AcceptEncoding) Equal(val any) bool {
	var other *AcceptEncoding
	switch v := val.(type) {
	case AcceptEncoding:
		other = &v
	case *AcceptEncoding:
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
func (hdr *AcceptEncoding) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *AcceptEncoding) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *AcceptEncoding) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// QValue returns the q-value.
func (hdr *AcceptEncoding) QValue() (float64, bool) {
	if hdr == nil {
		return 0, false
	}
	return qValue(&hdr.Parameterized)
}

// SetQValue sets the q-value, failing with [ErrOutOfRange] outside of [0, 1].
func (hdr *AcceptEncoding) SetQValue(q float64) error {
	hdr.base()
	return errtrace.Wrap(setQValue(&hdr.Parameterized, q))
}
