package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// WWWAuthenticate represents the WWW-Authenticate header field.
// It carries an authentication challenge, a response may contain several of them, see [AuthGroup].
type WWWAuthenticate struct {
	Challenge
}

func (hdr *WWWAuthenticate) base() *Challenge {
	hdr.Challenge.setup()
	return &hdr.Challenge
}

// CanonicName returns the canonical name of the header.
func (*WWWAuthenticate) CanonicName() Name { return "WWW-Authenticate" }

// CompactName returns the compact name of the header (WWW-Authenticate has no compact form).
func (*WWWAuthenticate) CompactName() Name { return "WWW-Authenticate" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*WWWAuthenticate) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *WWWAuthenticate) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *WWWAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *WWWAuthenticate) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *WWWAuthenticate) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *WWWAuthenticate) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *WWWAuthenticate) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *WWWAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &WWWAuthenticate{hdr.base().clone()}
}

// Equal compares this header with another for equality.
func (hdr *WWWAuthenticate) Equal(val any) bool {
	var other *WWWAuthenticate
	switch v := val.(type) {
	case WWWAuthenticate:
		other = &v
	case *WWWAuthenticate:
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
func (hdr *WWWAuthenticate) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *WWWAuthenticate) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *WWWAuthenticate) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// NewWWWAuthenticate creates the header with the given authentication scheme.
// The Basic scheme is rejected with [ErrBasicScheme].
func NewWWWAuthenticate(scheme string) (*WWWAuthenticate, error) {
	hdr := new(WWWAuthenticate)
	if err := hdr.base().SetScheme(scheme); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}
