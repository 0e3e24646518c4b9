package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// Contact represents a single value of the Contact header field.
// A wildcard Contact ("*") carries neither a URI nor parameters.
type Contact struct {
	Wildcard bool
	Addressed
}

func (hdr *Contact) base() *Contact {
	hdr.Addressed.setup("q", "expires")
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Contact) CanonicName() Name { return "Contact" }

// CompactName returns the compact name of the header.
func (*Contact) CompactName() Name { return "m" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Contact) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Contact) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Contact) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Contact) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Contact) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Contact) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Contact) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Contact) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Contact(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Contact) Equal(val any) bool {
	var other *Contact
	switch v := val.(type) {
	case Contact:
		other = &v
	case *Contact:
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
func (hdr *Contact) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Contact) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Contact) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *Contact) layers() []layer {
	return []layer{
		layerFunc{
			name:  "wildcard",
			clear: func() { hdr.Wildcard = false },
			fn: func(sc *grammar.Scanner) error {
				hdr.Wildcard = sc.Accept('*')
				return nil
			},
		},
		displayNameLayer{&hdr.DisplayName},
		sipURILayer{dst: &hdr.URI, optional: true},
		&hdr.Parameterized,
		qValueCheck{&hdr.Parameterized},
		secondsParamCheck{&hdr.Parameterized, "expires"},
		layerFunc{name: "uri", fn: func(*grammar.Scanner) error {
			switch {
			case hdr.Wildcard && (hdr.URI != nil || hdr.DisplayName != ""):
				return errtrace.Wrap(errorutil.NewInvalidFormatError("wildcard contact with address"))
			case !hdr.Wildcard && hdr.URI == nil:
				return errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyValue, "missing URI"))
			}
			return nil
		}},
	}
}

func (hdr *Contact) renderValue() string {
	if hdr.Wildcard {
		return "*"
	}
	return hdr.Addressed.renderValue()
}

func (hdr *Contact) clone() Contact {
	return Contact{Wildcard: hdr.Wildcard, Addressed: hdr.Addressed.clone()}
}

func (hdr *Contact) equal(other *Contact) bool {
	if hdr.Wildcard || other.Wildcard {
		return hdr.Wildcard == other.Wildcard
	}
	return hdr.Addressed.equal(&other.Addressed)
}

func (hdr *Contact) isValid() bool {
	if hdr.Wildcard {
		return hdr.URI == nil
	}
	return hdr.Addressed.isValid()
}

// QValue returns the q-value.
func (hdr *Contact) QValue() (float64, bool) {
	if hdr == nil {
		return 0, false
	}
	return qValue(&hdr.Parameterized)
}

// SetQValue sets the q-value, failing with [ErrOutOfRange] outside of [0, 1].
func (hdr *Contact) SetQValue(q float64) error {
	hdr.base()
	return errtrace.Wrap(setQValue(&hdr.Parameterized, q))
}

// Expires returns the value of the expires parameter.
func (hdr *Contact) Expires() (time.Duration, bool) {
	if hdr == nil {
		return 0, false
	}
	sec, ok := paramSeconds(&hdr.Parameterized, "expires")
	return time.Duration(sec) * time.Second, ok
}

// SetExpires sets the expires parameter in seconds.
func (hdr *Contact) SetExpires(sec int64) error {
	hdr.base()
	return errtrace.Wrap(setParamSeconds(&hdr.Parameterized, "expires", sec))
}
