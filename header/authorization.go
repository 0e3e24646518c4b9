package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Authorization represents the Authorization header field.
// It carries the credentials of a user agent, a request may contain several of them, see [AuthGroup].
type Authorization struct {
	Credentials
}

func (hdr *Authorization) base() *Credentials {
	hdr.Credentials.setup()
	return &hdr.Credentials
}

// CanonicName returns the canonical name of the header.
func (*Authorization) CanonicName() Name { return "Authorization" }

// CompactName returns the compact name of the header (Authorization has no compact form).
func (*Authorization) CompactName() Name { return "Authorization" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Authorization) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Authorization) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Authorization) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Authorization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Authorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Authorization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Authorization) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Authorization{hdr.base().clone()}
}

// Equal compares this header with another for equality.
func (hdr *Authorization) Equal(val any) bool {
	var other *Authorization
	switch v := val.(type) {
	case Authorization:
		other = &v
	case *Authorization:
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
func (hdr *Authorization) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Authorization) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Authorization) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// NewAuthorization creates the header with the given authentication scheme.
// The Basic scheme is rejected with [ErrBasicScheme].
func NewAuthorization(scheme string) (*Authorization, error) {
	hdr := new(Authorization)
	if err := hdr.base().SetScheme(scheme); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}
