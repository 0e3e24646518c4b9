package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Allow represents a single method of the Allow header field.
type Allow Option

func (hdr *Allow) base() *Option {
	return (*Option)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Allow) CanonicName() Name { return "Allow" }

// CompactName returns the compact name of the header (Allow has no compact form).
func (*Allow) CompactName() Name { return "Allow" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Allow) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Allow) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Allow) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Allow) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Allow) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Allow) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Allow) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Allow) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Allow(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Allow) Equal(val any) bool {
	var other *Allow
	switch v := val.(type) {
	case Allow:
		other = &v
	case *Allow:
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
func (hdr *Allow) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Allow) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Allow) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Method returns the value as a request method.
func (hdr *Allow) Method() RequestMethod {
	if hdr == nil {
		return ""
	}
	return RequestMethod(hdr.Value)
}
