package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// From represents the From header field.
// The From header field indicates the initiator of the request.
type From Addressed

func (hdr *From) base() *Addressed {
	addr := (*Addressed)(hdr)
	addr.setup("tag")
	return addr
}

// CanonicName returns the canonical name of the header.
func (*From) CanonicName() Name { return "From" }

// CompactName returns the compact name of the header.
func (*From) CompactName() Name { return "f" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*From) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *From) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *From) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *From) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *From) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *From) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *From) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *From) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := From(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *From) Equal(val any) bool {
	var other *From
	switch v := val.(type) {
	case From:
		other = &v
	case *From:
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
func (hdr *From) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *From) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *From) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Tag returns the tag parameter.
func (hdr *From) Tag() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("tag")
}

// SetTag sets the tag parameter, an empty tag removes it.
func (hdr *From) SetTag(tag string) error {
	return errtrace.Wrap(hdr.base().setParamValue("tag", tag, false))
}
