package header

import (
	"fmt"
	"io"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

type RetryAfter struct {
	Seconds
	Comment string
	Parameterized
}

func (hdr *RetryAfter) base() *RetryAfter {
	hdr.Parameterized.setup(";", types.HeaderParam, false, "duration")
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*RetryAfter) CanonicName() Name { return "Retry-After" }

// CompactName returns the compact name of the header (Retry-After has no compact form).
func (*RetryAfter) CompactName() Name { return "Retry-After" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*RetryAfter) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *RetryAfter) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *RetryAfter) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *RetryAfter) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *RetryAfter) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *RetryAfter) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RetryAfter) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *RetryAfter) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := RetryAfter(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *RetryAfter) Equal(val any) bool {
	var other *RetryAfter
	switch v := val.(type) {
	case RetryAfter:
		other = &v
	case *RetryAfter:
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
func (hdr *RetryAfter) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *RetryAfter) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *RetryAfter) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *RetryAfter) layers() []layer {
	return append(hdr.Seconds.layers(),
		commentLayer{&hdr.Comment},
		&hdr.Parameterized,
		secondsParamCheck{&hdr.Parameterized, "duration"},
	)
}

func (hdr *RetryAfter) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(hdr.Seconds.renderValue())
	if hdr.Comment != "" {
		sb.WriteString(" (")
		sb.WriteString(hdr.Comment)
		sb.WriteByte(')')
	}
	hdr.renderParams(sb, true) //nolint:errcheck
	return sb.String()
}

func (hdr *RetryAfter) clone() RetryAfter {
	return RetryAfter{
		Seconds:       hdr.Seconds.clone(),
		Comment:       hdr.Comment,
		Parameterized: hdr.Parameterized.clone(),
	}
}

func (hdr *RetryAfter) equal(other *RetryAfter) bool {
	return hdr.Seconds.equal(&other.Seconds) && hdr.Comment == other.Comment && hdr.equalParams(&other.Parameterized)
}

func (hdr *RetryAfter) isValid() bool {
	if !hdr.isValidParams() {
		return false
	}
	if v, ok := hdr.paramValue("duration"); ok {
		if _, err := parseSeconds(v); err != nil {
			return false
		}
	}
	return true
}

// Delay returns the retry delay.
func (hdr *RetryAfter) Delay() time.Duration {
	if hdr == nil {
		return 0
	}
	return hdr.duration()
}

// SetSeconds sets the retry delay, failing with [ErrSecondsRange] outside of [0, MaxSeconds].
func (hdr *RetryAfter) SetSeconds(sec int64) error { return errtrace.Wrap(hdr.set(sec)) }

// Duration returns the duration parameter, the time the callee is available for.
func (hdr *RetryAfter) Duration() (time.Duration, bool) {
	if hdr == nil {
		return 0, false
	}
	sec, ok := paramSeconds(&hdr.Parameterized, "duration")
	return time.Duration(sec) * time.Second, ok
}

// SetDuration sets the duration parameter in seconds.
func (hdr *RetryAfter) SetDuration(sec int64) error {
	hdr.base()
	return errtrace.Wrap(setParamSeconds(&hdr.Parameterized, "duration", sec))
}
