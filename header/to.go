package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// To represents the To header field.
// The To header field specifies the logical recipient of the request.
type To Addressed

func (hdr *To) base() *Addressed {
	addr := (*Addressed)(hdr)
	addr.setup("tag")
	return addr
}

// CanonicName returns the canonical name of the header.
func (*To) CanonicName() Name { return "To" }

// CompactName returns the compact name of the header.
func (*To) CompactName() Name { return "t" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*To) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *To) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *To) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *To) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *To) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *To) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *To) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *To) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := To(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *To) Equal(val any) bool {
	var other *To
	switch v := val.(type) {
	case To:
		other = &v
	case *To:
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
func (hdr *To) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *To) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *To) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// Tag returns the tag parameter.
func (hdr *To) Tag() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.paramValue("tag")
}

// SetTag sets the tag parameter, an empty tag removes it.
func (hdr *To) SetTag(tag string) error {
	return errtrace.Wrap(hdr.base().setParamValue("tag", tag, false))
}
