package header

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"braces.dev/errtrace"
)

type MaxForwards uint8

func (hdr *MaxForwards) base() *MaxForwards {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*MaxForwards) CanonicName() Name { return "Max-Forwards" }

// CompactName returns the compact name of the header (Max-Forwards has no compact form).
func (*MaxForwards) CompactName() Name { return "Max-Forwards" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*MaxForwards) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *MaxForwards) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *MaxForwards) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *MaxForwards) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *MaxForwards) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *MaxForwards) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *MaxForwards) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *MaxForwards) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := MaxForwards(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *MaxForwards) Equal(val any) bool {
	var other *MaxForwards
	switch v := val.(type) {
	case MaxForwards:
		other = &v
	case *MaxForwards:
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
func (hdr *MaxForwards) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *MaxForwards) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *MaxForwards) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *MaxForwards) layers() []layer {
	return []layer{uintLayer{
		name:     "hops",
		set:      func(v uint64) { *hdr = MaxForwards(v) },
		max:      math.MaxUint8,
		rangeErr: ErrOutOfRange,
	}}
}

func (hdr *MaxForwards) renderValue() string { return strconv.FormatUint(uint64(*hdr), 10) }

func (hdr *MaxForwards) clone() MaxForwards { return *hdr }

func (hdr *MaxForwards) equal(other *MaxForwards) bool { return *hdr == *other }

func (*MaxForwards) isValid() bool { return true }
