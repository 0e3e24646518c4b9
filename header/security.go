package header

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// MaxNonceCountLen is the maximum length of the nonce count value.
const MaxNonceCountLen = 24

// SchemeAuth is the common part of the security headers: an authentication
// scheme followed by comma separated parameters.
// The realm, nonce, opaque and algorithm values are stored as parameters.
type SchemeAuth struct {
	Scheme string
	Parameterized
}

var schemeAuthParams = []string{"realm", "nonce", "opaque", "algorithm"}

func (sa *SchemeAuth) setup(known ...string) {
	sa.Parameterized.setup(",", types.HeaderParam, false, slices.Concat(schemeAuthParams, known)...)
}

func (sa *SchemeAuth) layers(extra ...layer) []layer {
	return append([]layer{schemeLayer{&sa.Scheme}, &sa.Parameterized}, extra...)
}

func checkScheme(s string) error {
	if s == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyValue, "empty scheme"))
	}
	if !grammar.IsToken(s) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid scheme %q", s))
	}
	if util.EqFold(s, "basic") {
		return errtrace.Wrap(ErrBasicScheme)
	}
	return nil
}

// SetScheme sets the authentication scheme. The Basic scheme is rejected with [ErrBasicScheme].
func (sa *SchemeAuth) SetScheme(scheme string) error {
	if err := checkScheme(scheme); err != nil {
		return errtrace.Wrap(err)
	}
	sa.Scheme = scheme
	return nil
}

// Realm returns the unquoted realm.
func (sa *SchemeAuth) Realm() string { return sa.value("realm") }

// SetRealm sets the realm, an empty value removes it.
func (sa *SchemeAuth) SetRealm(realm string) error {
	return errtrace.Wrap(sa.setParamValue("realm", realm, true))
}

// Nonce returns the unquoted nonce.
func (sa *SchemeAuth) Nonce() string { return sa.value("nonce") }

// SetNonce sets the nonce, an empty value removes it.
func (sa *SchemeAuth) SetNonce(nonce string) error {
	return errtrace.Wrap(sa.setParamValue("nonce", nonce, true))
}

// Opaque returns the unquoted opaque value.
func (sa *SchemeAuth) Opaque() string { return sa.value("opaque") }

// SetOpaque sets the opaque value, an empty value removes it.
func (sa *SchemeAuth) SetOpaque(opaque string) error {
	return errtrace.Wrap(sa.setParamValue("opaque", opaque, true))
}

// Algorithm returns the algorithm, e.g. MD5.
func (sa *SchemeAuth) Algorithm() string { return sa.value("algorithm") }

// SetAlgorithm sets the algorithm token, an empty value removes it.
func (sa *SchemeAuth) SetAlgorithm(alg string) error {
	if alg != "" && !grammar.IsToken(alg) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid algorithm %q", alg))
	}
	return errtrace.Wrap(sa.setParamValue("algorithm", alg, false))
}

func (sa *SchemeAuth) value(name string) string {
	v, _ := sa.paramValue(name)
	return v
}

func (sa *SchemeAuth) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(sa.Scheme)
	if sa.ParamsLen() > 0 {
		sb.WriteByte(' ')
		sa.renderParams(sb, false) //nolint:errcheck
	}
	return sb.String()
}

func (sa *SchemeAuth) clone() SchemeAuth {
	return SchemeAuth{Scheme: sa.Scheme, Parameterized: sa.Parameterized.clone()}
}

func (sa *SchemeAuth) equal(other *SchemeAuth) bool {
	return util.EqFold(sa.Scheme, other.Scheme) && sa.equalParams(&other.Parameterized)
}

func (sa *SchemeAuth) isValid() bool {
	return checkScheme(sa.Scheme) == nil && sa.isValidParams()
}

// Credentials is the common part of the Authorization and Proxy-Authorization headers.
//
//	Digest username="Alice", realm="atlanta.com", nonce="84a4cc6f", response="7587245234b3434cc3412213e5f113a5432"
type Credentials struct {
	SchemeAuth
}

func (cr *Credentials) setup() {
	cr.SchemeAuth.setup("username", "uri", "response", "cnonce", "nc", "qop")
}

func (cr *Credentials) layers() []layer {
	return cr.SchemeAuth.layers(
		nonceCountCheck{&cr.Parameterized},
		lhexCheck{&cr.Parameterized, "response"},
		lhexCheck{&cr.Parameterized, "cnonce"},
	)
}

// Username returns the unquoted user name.
func (cr *Credentials) Username() string { return cr.value("username") }

// SetUsername sets the user name, an empty value removes it.
func (cr *Credentials) SetUsername(name string) error {
	return errtrace.Wrap(cr.setParamValue("username", name, true))
}

// DigestURI returns the unquoted digest URI.
func (cr *Credentials) DigestURI() string { return cr.value("uri") }

// SetDigestURI sets the digest URI, an empty value removes it.
func (cr *Credentials) SetDigestURI(u string) error {
	return errtrace.Wrap(cr.setParamValue("uri", u, true))
}

// Response returns the unquoted request digest.
func (cr *Credentials) Response() string { return cr.value("response") }

// SetResponse sets the request digest, it must consist of lower-case hex digits.
func (cr *Credentials) SetResponse(resp string) error {
	if resp != "" && !grammar.IsLHex(resp) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("response %q is not LHEX", resp))
	}
	return errtrace.Wrap(cr.setParamValue("response", resp, true))
}

// CNonce returns the unquoted client nonce.
func (cr *Credentials) CNonce() string { return cr.value("cnonce") }

// SetCNonce sets the client nonce, it must consist of lower-case hex digits.
func (cr *Credentials) SetCNonce(cnonce string) error {
	if cnonce != "" && !grammar.IsLHex(cnonce) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("cnonce %q is not LHEX", cnonce))
	}
	return errtrace.Wrap(cr.setParamValue("cnonce", cnonce, true))
}

// NonceCount returns the nonce count.
func (cr *Credentials) NonceCount() string { return cr.value("nc") }

// SetNonceCount sets the nonce count.
// Values longer than [MaxNonceCountLen] fail with [ErrNonceCountLength].
func (cr *Credentials) SetNonceCount(nc string) error {
	if err := checkNonceCount(nc); nc != "" && err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(cr.setParamValue("nc", nc, false))
}

// QOP returns the message qop, e.g. "auth".
func (cr *Credentials) QOP() string { return cr.value("qop") }

// SetQOP sets the message qop token.
func (cr *Credentials) SetQOP(qop string) error {
	if qop != "" && !grammar.IsToken(qop) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid qop %q", qop))
	}
	return errtrace.Wrap(cr.setParamValue("qop", qop, false))
}

func (cr *Credentials) clone() Credentials { return Credentials{cr.SchemeAuth.clone()} }

// equal compares the scheme and all parameters, the digest URI included,
// so two credentials without an URI are equal.
func (cr *Credentials) equal(other *Credentials) bool { return cr.SchemeAuth.equal(&other.SchemeAuth) }

func (cr *Credentials) isValid() bool {
	if !cr.SchemeAuth.isValid() {
		return false
	}
	if nc, ok := cr.paramValue("nc"); ok && checkNonceCount(nc) != nil {
		return false
	}
	return true
}

// Challenge is the common part of the WWW-Authenticate and Proxy-Authenticate headers.
//
//	Digest realm="atlanta.com", domain="sip:boxesbybob.com", qop="auth", nonce="f84f1cec41e6cbe5aea9c8e88d359", stale=FALSE, algorithm=MD5
type Challenge struct {
	SchemeAuth
}

func (ch *Challenge) setup() {
	ch.SchemeAuth.setup("domain", "qop", "stale")
}

func (ch *Challenge) layers() []layer {
	return ch.SchemeAuth.layers(staleCheck{&ch.Parameterized})
}

// Domain returns the list of URIs of the protection space.
func (ch *Challenge) Domain() []string { return strings.Fields(ch.value("domain")) }

// SetDomain sets the protection space URIs, an empty list removes the parameter.
func (ch *Challenge) SetDomain(uris ...string) error {
	return errtrace.Wrap(ch.setParamValue("domain", strings.Join(uris, " "), true))
}

// QOP returns the list of supported qop options.
func (ch *Challenge) QOP() []string {
	var opts []string
	for o := range strings.SplitSeq(ch.value("qop"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// SetQOP sets the qop options, an empty list removes the parameter.
func (ch *Challenge) SetQOP(opts ...string) error {
	for _, o := range opts {
		if !grammar.IsToken(o) {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid qop option %q", o))
		}
	}
	return errtrace.Wrap(ch.setParamValue("qop", strings.Join(opts, ","), true))
}

// Stale returns the stale flag, an absent flag is false.
func (ch *Challenge) Stale() bool { return util.EqFold(ch.value("stale"), "true") }

// SetStale sets the stale flag.
func (ch *Challenge) SetStale(stale bool) error {
	v := "FALSE"
	if stale {
		v = "TRUE"
	}
	return errtrace.Wrap(ch.setParamValue("stale", v, false))
}

func (ch *Challenge) clone() Challenge { return Challenge{ch.SchemeAuth.clone()} }

func (ch *Challenge) equal(other *Challenge) bool { return ch.SchemeAuth.equal(&other.SchemeAuth) }

func (ch *Challenge) isValid() bool { return ch.SchemeAuth.isValid() }

// schemeLayer consumes the authentication scheme.
type schemeLayer struct{ dst *string }

func (schemeLayer) field() string { return "scheme" }

func (l schemeLayer) reset() { *l.dst = "" }

func (l schemeLayer) consume(sc *grammar.Scanner) error {
	s := sc.Token()
	if err := checkScheme(s); err != nil {
		return errtrace.Wrap(err)
	}
	if !sc.EOF() && !grammar.IsLWSChar(sc.Peek()) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("scheme %q must be followed by LWS", s))
	}
	*l.dst = s
	return nil
}

func checkNonceCount(nc string) error {
	if len(nc) > MaxNonceCountLen {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNonceCountLength, "%d characters", len(nc)))
	}
	if !grammar.IsLHex(nc) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("nonce count %q is not LHEX", nc))
	}
	return nil
}

// nonceCountCheck validates the parsed "nc" parameter.
type nonceCountCheck struct{ ps *Parameterized }

func (nonceCountCheck) field() string { return "nc" }

func (nonceCountCheck) reset() {}

func (l nonceCountCheck) consume(*grammar.Scanner) error {
	p, ok := l.ps.Param("nc")
	if !ok {
		return nil
	}
	return errtrace.Wrap(checkNonceCount(p.Value()))
}

// lhexCheck validates that a parsed parameter holds lower-case hex digits, quoted or not.
type lhexCheck struct {
	ps   *Parameterized
	name string
}

func (l lhexCheck) field() string { return l.name }

func (lhexCheck) reset() {}

func (l lhexCheck) consume(*grammar.Scanner) error {
	p, ok := l.ps.Param(l.name)
	if !ok {
		return nil
	}
	if v := p.Value(); !grammar.IsLHex(v) && !grammar.IsLHexQuoted(v) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("%s %s is not LHEX", l.name, v))
	}
	return nil
}

// staleCheck validates the parsed "stale" parameter and stores it upper-cased.
type staleCheck struct{ ps *Parameterized }

func (staleCheck) field() string { return "stale" }

func (staleCheck) reset() {}

func (l staleCheck) consume(*grammar.Scanner) error {
	p, ok := l.ps.Param("stale")
	if !ok {
		return nil
	}
	v := p.Unquoted()
	if !util.EqFold(v, "true") && !util.EqFold(v, "false") {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrNotBoolean, "stale=%s", p.Value()))
	}
	np, err := types.NewParam("stale", util.UCase(v))
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(l.ps.SetParam(np))
}
