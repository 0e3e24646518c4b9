package header

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
)

// CSeq represents the CSeq header field.
// It contains a sequence number and the request method.
type CSeq struct {
	SeqNum uint32
	Method RequestMethod
}

func (hdr *CSeq) base() *CSeq {
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*CSeq) CanonicName() Name { return "CSeq" }

// CompactName returns the compact name of the header (CSeq has no compact form).
func (*CSeq) CompactName() Name { return "CSeq" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*CSeq) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *CSeq) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *CSeq) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *CSeq) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *CSeq) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *CSeq) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *CSeq) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *CSeq) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := CSeq(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *CSeq) Equal(val any) bool {
	var other *CSeq
	switch v := val.(type) {
	case CSeq:
		other = &v
	case *CSeq:
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
func (hdr *CSeq) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *CSeq) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *CSeq) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

// MaxCSeq is the largest CSeq sequence number.
const MaxCSeq = 1<<31 - 1

func (hdr *CSeq) layers() []layer {
	return []layer{
		uintLayer{
			name:     "sequence",
			set:      func(v uint64) { hdr.SeqNum = uint32(v) },
			max:      MaxCSeq,
			rangeErr: ErrOutOfRange,
		},
		layerFunc{
			name:  "method",
			clear: func() { hdr.Method = "" },
			fn: func(sc *grammar.Scanner) error {
				if sc.Pos() == 0 || !grammar.IsLWSChar(sc.Source()[sc.Pos()-1]) {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("missing LWS before method"))
				}
				m := sc.Token()
				if m == "" {
					return errtrace.Wrap(errorutil.NewInvalidFormatError("missing method"))
				}
				hdr.Method = RequestMethod(m)
				return nil
			},
		},
	}
}

func (hdr *CSeq) renderValue() string {
	return strconv.FormatUint(uint64(hdr.SeqNum), 10) + " " + string(hdr.Method)
}

func (hdr *CSeq) clone() CSeq { return *hdr }

func (hdr *CSeq) equal(other *CSeq) bool {
	return hdr.SeqNum == other.SeqNum && hdr.Method.Equal(other.Method)
}

func (hdr *CSeq) isValid() bool { return hdr.SeqNum <= MaxCSeq && hdr.Method.IsValid() }

// SetSeqNum sets the sequence number, failing with [ErrOutOfRange] outside of [0, MaxCSeq].
func (hdr *CSeq) SetSeqNum(seq int64) error {
	if seq < 0 || seq > MaxCSeq {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrOutOfRange, "sequence %d is outside of [0, %d]", seq, MaxCSeq))
	}
	hdr.SeqNum = uint32(seq)
	return nil
}
