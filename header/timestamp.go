package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

type Timestamp struct {
	Value string
	Delay string
}

func (hdr *Timestamp) base() *Timestamp {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Timestamp) CanonicName() Name { return "Timestamp" }

// CompactName returns the compact name of the header (Timestamp has no compact form).
func (*Timestamp) CompactName() Name { return "Timestamp" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Timestamp) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Timestamp) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Timestamp) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Timestamp) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Timestamp) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Timestamp) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Timestamp) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Timestamp) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Timestamp(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Timestamp) Equal(val any) bool {
	var other *Timestamp
	switch v := val.(type) {
	case Timestamp:
		other = &v
	case *Timestamp:
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
func (hdr *Timestamp) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Timestamp) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Timestamp) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *Timestamp) layers() []layer {
	return []layer{
		layerFunc{
			name:  "time",
			clear: func() { hdr.Value = "" },
			fn: func(sc *grammar.Scanner) error {
				s := sc.TakeWhile(isDecimalChar)
				if !isDecimal(s, true) {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid timestamp %q", s))
				}
				hdr.Value = s
				return nil
			},
		},
		layerFunc{
			name:  "delay",
			clear: func() { hdr.Delay = "" },
			fn: func(sc *grammar.Scanner) error {
				s := sc.TakeWhile(isDecimalChar)
				if s != "" && !isDecimal(s, false) {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid delay %q", s))
				}
				hdr.Delay = s
				return nil
			},
		},
	}
}

func isDecimalChar(c byte) bool { return grammar.IsDigit(c) || c == '.' }

// isDecimal matches *DIGIT ["." *DIGIT] with at least one digit,
// the integer part is mandatory when lead is set.
func isDecimal(s string, lead bool) bool {
	ip, fp, _ := strings.Cut(s, ".")
	if ip == "" && (lead || fp == "") {
		return false
	}
	return (ip == "" || grammar.IsDigits(ip)) && (fp == "" || grammar.IsDigits(fp))
}

func (hdr *Timestamp) renderValue() string {
	if hdr.Delay == "" {
		return hdr.Value
	}
	return hdr.Value + " " + hdr.Delay
}

func (hdr *Timestamp) clone() Timestamp { return *hdr }

func (hdr *Timestamp) equal(other *Timestamp) bool { return *hdr == *other }

func (hdr *Timestamp) isValid() bool {
	return isDecimal(hdr.Value, true) && (hdr.Delay == "" || isDecimal(hdr.Delay, false))
}
