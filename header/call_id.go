package header

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// CallID represents the Call-ID header field.
// The Call-ID header field uniquely identifies a particular invitation or all registrations of a particular client.
type CallID string

func (hdr *CallID) base() *CallID {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*CallID) CanonicName() Name { return "Call-ID" }

// CompactName returns the compact name of the header.
func (*CallID) CompactName() Name { return "i" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*CallID) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *CallID) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *CallID) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *CallID) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *CallID) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *CallID) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *CallID) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *CallID) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := CallID(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *CallID) Equal(val any) bool {
	var other *CallID
	switch v := val.(type) {
	case CallID:
		other = &v
	case *CallID:
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
func (hdr *CallID) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *CallID) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *CallID) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *CallID) layers() []layer {
	return []layer{layerFunc{
		name:  "callid",
		clear: func() { *hdr = "" },
		fn: func(sc *grammar.Scanner) error {
			s := sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && c != ',' })
			if !isCallID(s) {
				return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid callid %q", s))
			}
			*hdr = CallID(s)
			return nil
		},
	}}
}

func (hdr *CallID) renderValue() string { return string(*hdr) }

func (hdr *CallID) clone() CallID { return *hdr }

func (hdr *CallID) equal(other *CallID) bool { return *hdr == *other }

func (hdr *CallID) isValid() bool { return isCallID(string(*hdr)) }

func isCallID(s string) bool {
	word, host, ok := strings.Cut(s, "@")
	return isCallIDWord(word) && (!ok || isCallIDWord(host))
}

func isCallIDWord(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !grammar.IsTokenChar(s[i]) && strings.IndexByte(`()<>:\"/[]?{}`, s[i]) < 0 {
			return false
		}
	}
	return true
}
