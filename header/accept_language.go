package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// AcceptLanguage represents a single language range of the Accept-Language header field.
type AcceptLanguage OptionParams

func (hdr *AcceptLanguage) base() *OptionParams {
	o := (*OptionParams)(hdr)
	o.setup("q")
	return o
}

// CanonicName returns the canonical name of the header.
func (*AcceptLanguage) CanonicName() Name { return "Accept-Language" }

// CompactName returns the compact name of the header (Accept-Language has no compact form).
func (*AcceptLanguage) CompactName() Name { return "Accept-Language" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*AcceptLanguage) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *AcceptLanguage) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers(qValueCheck{&hdr.Parameterized})...))
}

// RenderTo writes the header to the provided writer.
func (hdr *AcceptLanguage) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *AcceptLanguage) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *AcceptLanguage) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *AcceptLanguage) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *AcceptLanguage) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *AcceptLanguage) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := AcceptLanguage(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *AcceptLanguage) Equal(val any) bool {
	var other *AcceptLanguage
	switch v := val.(type) {
	case AcceptLanguage:
		other = &v
	case *AcceptLanguage:
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
func (hdr *AcceptLanguage) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *AcceptLanguage) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *AcceptLanguage) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// QValue returns the q-value.
func (hdr *AcceptLanguage) QValue() (float64, bool) {
	if hdr == nil {
		return 0, false
	}
	return qValue(&hdr.Parameterized)
}

// SetQValue sets the q-value, failing with [ErrOutOfRange] outside of [0, 1].
func (hdr *AcceptLanguage) SetQValue(q float64) error {
	hdr.base()
	return errtrace.Wrap(setQValue(&hdr.Parameterized, q))
}
