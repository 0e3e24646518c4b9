package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/grammar"
)

// Organization represents the Organization header field.
type Organization string

func (hdr *Organization) base() *Organization {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Organization) CanonicName() Name { return "Organization" }

// CompactName returns the compact name of the header (Organization has no compact form).
func (*Organization) CompactName() Name { return "Organization" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Organization) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Organization) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Organization) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Organization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Organization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Organization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Organization) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Organization) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Organization(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Organization) Equal(val any) bool {
	var other *Organization
	switch v := val.(type) {
	case Organization:
		other = &v
	case *Organization:
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
func (hdr *Organization) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Organization) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Organization) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *Organization) layers() []layer {
	return []layer{layerFunc{
		name:  "text",
		clear: func() { *hdr = "" },
		fn: func(sc *grammar.Scanner) error {
			*hdr = Organization(strings.TrimRight(sc.Rest(), " \t"))
			sc.Skip(len(sc.Rest()))
			return nil
		},
	}}
}

func (hdr *Organization) renderValue() string { return string(*hdr) }

func (hdr *Organization) clone() Organization { return *hdr }

func (hdr *Organization) equal(other *Organization) bool { return *hdr == *other }

func (hdr *Organization) isValid() bool { return !strings.ContainsAny(string(*hdr), "\r\n") }
