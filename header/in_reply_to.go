package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// InReplyTo represents a single Call-ID of the In-Reply-To header field.
type InReplyTo string

func (hdr *InReplyTo) base() *InReplyTo {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*InReplyTo) CanonicName() Name { return "In-Reply-To" }

// CompactName returns the compact name of the header (In-Reply-To has no compact form).
func (*InReplyTo) CompactName() Name { return "In-Reply-To" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*InReplyTo) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *InReplyTo) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *InReplyTo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *InReplyTo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *InReplyTo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *InReplyTo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *InReplyTo) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *InReplyTo) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := InReplyTo(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *InReplyTo) Equal(val any) bool {
	var other *InReplyTo
	switch v := val.(type) {
	case InReplyTo:
		other = &v
	case *InReplyTo:
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
func (hdr *InReplyTo) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *InReplyTo) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *InReplyTo) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *InReplyTo) layers() []layer {
	return []layer{layerFunc{
		name:  "callid",
		clear: func() { *hdr = "" },
		fn: func(sc *grammar.Scanner) error {
			s := sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && c != ',' })
			if !isCallID(s) {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid callid %q", s))
			}
			*hdr = InReplyTo(s)
			return nil
		},
	}}
}

func (hdr *InReplyTo) renderValue() string { return string(*hdr) }

func (hdr *InReplyTo) clone() InReplyTo { return *hdr }

func (hdr *InReplyTo) equal(other *InReplyTo) bool { return *hdr == *other }

func (hdr *InReplyTo) isValid() bool { return isCallID(string(*hdr)) }
