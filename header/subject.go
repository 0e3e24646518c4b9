package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/grammar"
)

// Subject represents the Subject header field.
type Subject string

func (hdr *Subject) base() *Subject {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Subject) CanonicName() Name { return "Subject" }

// CompactName returns the compact name of the header.
func (*Subject) CompactName() Name { return "s" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Subject) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Subject) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Subject) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Subject) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Subject) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Subject) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Subject) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Subject) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Subject(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Subject) Equal(val any) bool {
	var other *Subject
	switch v := val.(type) {
	case Subject:
		other = &v
	case *Subject:
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
func (hdr *Subject) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Subject) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Subject) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *Subject) layers() []layer {
	return []layer{layerFunc{
		name:  "text",
		clear: func() { *hdr = "" },
		fn: func(sc *grammar.Scanner) error {
			*hdr = Subject(strings.TrimRight(sc.Rest(), " \t"))
			sc.Skip(len(sc.Rest()))
			return nil
		},
	}}
}

func (hdr *Subject) renderValue() string { return string(*hdr) }

func (hdr *Subject) clone() Subject { return *hdr }

func (hdr *Subject) equal(other *Subject) bool { return *hdr == *other }

func (hdr *Subject) isValid() bool { return !strings.ContainsAny(string(*hdr), "\r\n") }
