package header

import (
	"fmt"
	"io"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

type Date struct {
	time.Time
}

func (hdr *Date) base() *Date {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Date) CanonicName() Name { return "Date" }

// CompactName returns the compact name of the header (Date has no compact form).
func (*Date) CompactName() Name { return "Date" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Date) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Date) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Date) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Date) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Date) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Date) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Date) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Date) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Date(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Date) Equal(val any) bool {
	var other *Date
	switch v := val.(type) {
	case Date:
		other = &v
	case *Date:
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
func (hdr *Date) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Date) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Date) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// DateLayout is the RFC 1123 layout of the Date header field, always in GMT.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func (hdr *Date) layers() []layer {
	return []layer{layerFunc{
		name:  "sip-date",
		clear: func() { hdr.Time = time.Time{} },
		fn: func(sc *grammar.Scanner) error {
			s := strings.TrimRight(sc.Rest(), " \t")
			sc.Skip(len(sc.Rest()))
			t, err := time.Parse(DateLayout, s)
			if err != nil {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid date %q", s))
			}
			hdr.Time = t
			return nil
		},
	}}
}

func (hdr *Date) renderValue() string {
	if hdr.IsZero() {
		return ""
	}
	return hdr.UTC().Format(DateLayout)
}

func (hdr *Date) clone() Date { return *hdr }

func (hdr *Date) equal(other *Date) bool { return hdr.Time.Equal(other.Time) }

func (hdr *Date) isValid() bool { return !hdr.IsZero() }
