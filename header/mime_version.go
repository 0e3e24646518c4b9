package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

type MIMEVersion string

func (hdr *MIMEVersion) base() *MIMEVersion {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*MIMEVersion) CanonicName() Name { return "MIME-Version" }

// CompactName returns the compact name of the header (MIME-Version has no compact form).
func (*MIMEVersion) CompactName() Name { return "MIME-Version" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*MIMEVersion) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *MIMEVersion) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *MIMEVersion) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *MIMEVersion) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *MIMEVersion) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *MIMEVersion) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *MIMEVersion) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *MIMEVersion) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := MIMEVersion(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *MIMEVersion) Equal(val any) bool {
	var other *MIMEVersion
	switch v := val.(type) {
	case MIMEVersion:
		other = &v
	case *MIMEVersion:
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
func (hdr *MIMEVersion) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *MIMEVersion) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *MIMEVersion) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *MIMEVersion) layers() []layer {
	return []layer{layerFunc{
		name:  "version",
		clear: func() { *hdr = "" },
		fn: func(sc *grammar.Scanner) error {
			s := sc.TakeWhile(func(c byte) bool { return grammar.IsDigit(c) || c == '.' })
			if !isMIMEVersion(s) {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid version %q", s))
			}
			*hdr = MIMEVersion(s)
			return nil
		},
	}}
}

func isMIMEVersion(s string) bool {
	major, minor, ok := strings.Cut(s, ".")
	return ok && grammar.IsDigits(major) && grammar.IsDigits(minor)
}

func (hdr *MIMEVersion) renderValue() string { return string(*hdr) }

func (hdr *MIMEVersion) clone() MIMEVersion { return *hdr }

func (hdr *MIMEVersion) equal(other *MIMEVersion) bool { return *hdr == *other }

func (hdr *MIMEVersion) isValid() bool { return isMIMEVersion(string(*hdr)) }
