package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// AuthenticationInfo represents the Authentication-Info header field.
// It accepts only the nextnonce, qop, rspauth, cnonce and nc parameters.
type AuthenticationInfo struct {
	Parameterized
}

func (hdr *AuthenticationInfo) base() *AuthenticationInfo {
	hdr.Parameterized.setup(",", types.HeaderParam, true, "nextnonce", "qop", "rspauth", "cnonce", "nc")
	return hdr
}

// CanonicName returns the canonical name of the header.
func (*AuthenticationInfo) CanonicName() Name { return "Authentication-Info" }

// CompactName returns the compact name of the header (Authentication-Info has no compact form).
func (*AuthenticationInfo) CompactName() Name { return "Authentication-Info" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*AuthenticationInfo) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *AuthenticationInfo) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *AuthenticationInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *AuthenticationInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *AuthenticationInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *AuthenticationInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *AuthenticationInfo) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *AuthenticationInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := AuthenticationInfo(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *AuthenticationInfo) Equal(val any) bool {
	var other *AuthenticationInfo
	switch v := val.(type) {
	case AuthenticationInfo:
		other = &v
	case *AuthenticationInfo:
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
func (hdr *AuthenticationInfo) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *AuthenticationInfo) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *AuthenticationInfo) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }

func (hdr *AuthenticationInfo) layers() []layer {
	return []layer{
		&hdr.Parameterized,
		nonceCountCheck{&hdr.Parameterized},
		lhexCheck{&hdr.Parameterized, "rspauth"},
		lhexCheck{&hdr.Parameterized, "cnonce"},
	}
}

func (hdr *AuthenticationInfo) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.renderParams(sb, false) //nolint:errcheck
	return sb.String()
}

func (hdr *AuthenticationInfo) clone() AuthenticationInfo {
	return AuthenticationInfo{hdr.Parameterized.clone()}
}

func (hdr *AuthenticationInfo) equal(other *AuthenticationInfo) bool {
	return hdr.equalParams(&other.Parameterized)
}

func (hdr *AuthenticationInfo) isValid() bool {
	return hdr.ParamsLen() > 0 && hdr.isValidParams()
}

func (hdr *AuthenticationInfo) value(name string) string {
	v, _ := hdr.paramValue(name)
	return v
}

// NextNonce returns the unquoted next nonce.
func (hdr *AuthenticationInfo) NextNonce() string { return hdr.value("nextnonce") }

// SetNextNonce sets the next nonce, an empty value removes it.
func (hdr *AuthenticationInfo) SetNextNonce(nonce string) error {
	return errtrace.Wrap(hdr.base().setParamValue("nextnonce", nonce, true))
}

// ResponseAuth returns the unquoted response digest.
func (hdr *AuthenticationInfo) ResponseAuth() string { return hdr.value("rspauth") }

// SetResponseAuth sets the response digest, it must consist of lower-case hex digits.
func (hdr *AuthenticationInfo) SetResponseAuth(rspauth string) error {
	if rspauth != "" && !grammar.IsLHex(rspauth) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("rspauth %q is not LHEX", rspauth))
	}
	return errtrace.Wrap(hdr.base().setParamValue("rspauth", rspauth, true))
}

// QOP returns the message qop.
func (hdr *AuthenticationInfo) QOP() string { return hdr.value("qop") }

// SetQOP sets the message qop token.
func (hdr *AuthenticationInfo) SetQOP(qop string) error {
	if qop != "" && !grammar.IsToken(qop) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid qop %q", qop))
	}
	return errtrace.Wrap(hdr.base().setParamValue("qop", qop, false))
}

// CNonce returns the unquoted client nonce.
func (hdr *AuthenticationInfo) CNonce() string { return hdr.value("cnonce") }

// SetCNonce sets the client nonce, it must consist of lower-case hex digits.
func (hdr *AuthenticationInfo) SetCNonce(cnonce string) error {
	if cnonce != "" && !grammar.IsLHex(cnonce) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("cnonce %q is not LHEX", cnonce))
	}
	return errtrace.Wrap(hdr.base().setParamValue("cnonce", cnonce, true))
}

// NonceCount returns the nonce count.
func (hdr *AuthenticationInfo) NonceCount() string { return hdr.value("nc") }

// SetNonceCount sets the nonce count.
func (hdr *AuthenticationInfo) SetNonceCount(nc string) error {
	if err := checkNonceCount(nc); nc != "" && err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(hdr.base().setParamValue("nc", nc, false))
}
