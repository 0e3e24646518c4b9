package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Warning represents a single value of the Warning header field.
//
//	307 isi.edu "Session parameter 'foo' not understood"
type Warning struct {
	Code  uint16
	Agent string
	Text  string
}

func (hdr *Warning) base() *Warning {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*Warning) CanonicName() Name { return "Warning" }

// CompactName returns the compact name of the header (Warning has no compact form).
func (*Warning) CompactName() Name { return "Warning" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Warning) AllowMultiple() bool { return true }

// Parse parses the header value, an empty value resets the header.
func (hdr *Warning) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Warning) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Warning) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Warning) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Warning) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Warning) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Warning) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Warning(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Warning) Equal(val any) bool {
	var other *Warning
	switch v := val.(type) {
	case Warning:
		other = &v
	case *Warning:
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
func (hdr *Warning) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Warning) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Warning) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *Warning) layers() []layer {
	return []layer{
		layerFunc{
			name:  "warn-code",
			clear: func() { hdr.Code = 0 },
			fn: func(sc *grammar.Scanner) error {
				s := sc.TakeWhile(grammar.IsDigit)
				if len(s) != 3 {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid warn-code %q", s))
				}
				code, _ := strconv.ParseUint(s, 10, 16)
				hdr.Code = uint16(code)
				return nil
			},
		},
		layerFunc{
			name:  "warn-agent",
			clear: func() { hdr.Agent = "" },
			fn: func(sc *grammar.Scanner) error {
				s := sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && c != '"' })
				if !isWarnAgent(s) {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid warn-agent %q", s))
				}
				hdr.Agent = s
				return nil
			},
		},
		layerFunc{
			name:  "warn-text",
			clear: func() { hdr.Text = "" },
			fn: func(sc *grammar.Scanner) error {
				if sc.Peek() != '"' {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("warn-text must be a quoted string"))
				}
				q, err := sc.Quoted()
				if err != nil {
					return errtrace.Wrap(err)
				}
				hdr.Text = grammar.Unquote(q)
				return nil
			},
		},
	}
}

func isWarnAgent(s string) bool {
	if grammar.IsToken(s) {
		return true
	}
	_, err := types.ParseAddr(s)
	return err == nil
}

func (hdr *Warning) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	code := strconv.FormatUint(uint64(hdr.Code), 10)
	for range 3 - len(code) {
		sb.WriteByte('0')
	}
	sb.WriteString(code)
	sb.WriteByte(' ')
	sb.WriteString(hdr.Agent)
	sb.WriteByte(' ')
	sb.WriteString(grammar.Quote(hdr.Text))
	return sb.String()
}

func (hdr *Warning) clone() Warning { return *hdr }

func (hdr *Warning) equal(other *Warning) bool {
	return hdr.Code == other.Code && util.EqFold(hdr.Agent, other.Agent) && hdr.Text == other.Text
}

func (hdr *Warning) isValid() bool { return hdr.Code >= 100 && hdr.Code <= 999 && isWarnAgent(hdr.Agent) }
