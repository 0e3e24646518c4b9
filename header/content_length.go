package header

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"braces.dev/errtrace"
)

// ContentLength represents the Content-Length header field.
// The Content-Length header field indicates the size of the message-body, in decimal number of octets.
type ContentLength uint32

func (hdr *ContentLength) base() *ContentLength {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*ContentLength) CanonicName() Name { return "Content-Length" }

// CompactName returns the compact name of the header.
func (*ContentLength) CompactName() Name { return "l" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*ContentLength) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *ContentLength) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *ContentLength) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *ContentLength) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *ContentLength) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *ContentLength) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentLength) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *ContentLength) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := ContentLength(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *ContentLength) Equal(val any) bool {
	var other *ContentLength
	switch v := val.(type) {
	case ContentLength:
		other = &v
	case *ContentLength:
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
func (hdr *ContentLength) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *ContentLength) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *ContentLength) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *ContentLength) layers() []layer {
	return []layer{uintLayer{
		name:     "length",
		set:      func(v uint64) { *hdr = ContentLength(v) },
		max:      math.MaxUint32,
		rangeErr: ErrOutOfRange,
	}}
}

func (hdr *ContentLength) renderValue() string { return strconv.FormatUint(uint64(*hdr), 10) }

func (hdr *ContentLength) clone() ContentLength { return *hdr }

func (hdr *ContentLength) equal(other *ContentLength) bool { return *hdr == *other }

func (*ContentLength) isValid() bool { return true }
