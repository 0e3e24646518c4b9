package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// Extension represents a header field that has no dedicated type.
// The value is kept as is, with line folding replaced by a single space.
type Extension struct {
	Name  Name
	Value string
}

// NewExtension creates an extension header.
func NewExtension(name, value string) (*Extension, error) {
	hdr := &Extension{Name: CanonicName(name)}
	if !hdr.Name.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid header name %q", name))
	}
	if err := hdr.Parse(value); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}

// CanonicName returns the canonical name of the header.
func (hdr *Extension) CanonicName() Name {
	if hdr == nil {
		return ""
	}
	return CanonicName(hdr.Name)
}

// CompactName returns the canonical name, extension headers have no compact form.
func (hdr *Extension) CompactName() Name { return hdr.CanonicName() }

// AllowMultiple reports false, repeated extension headers are joined into a single value.
func (*Extension) AllowMultiple() bool { return false }

// Parse replaces the value, an empty value resets it.
func (hdr *Extension) Parse(value string) error {
	value = strings.Trim(grammar.ReplaceFolding(value), " \t")
	if strings.ContainsAny(value, "\r\n") {
		hdr.Value = ""
		return errtrace.Wrap(newParseError(hdr.CanonicName(), "value", value,
			errorutil.NewInvalidFormatError("line break in value")))
	}
	hdr.Value = value
	return nil
}

// RenderTo writes the header to the provided writer.
func (hdr *Extension) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Extension) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Extension) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Value
}

// String returns the string representation of the header value.
func (hdr *Extension) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Extension) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Extension) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := *hdr
	return &c
}

// Equal compares this header with another for equality.
// Names are compared case-insensitively, values exactly.
func (hdr *Extension) Equal(val any) bool {
	var other *Extension
	switch v := val.(type) {
	case Extension:
		other = &v
	case *Extension:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.Name.Equal(other.Name) && hdr.Value == other.Value
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Extension) IsValid() bool {
	return hdr != nil && hdr.Name.IsValid() && !strings.ContainsAny(hdr.Value, "\r\n")
}

// MarshalJSON implements [json.Marshaler].
func (hdr *Extension) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Extension) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
