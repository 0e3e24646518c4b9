package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// SIP represents a SIP or SIPS URI.
type SIP struct {
	User    UserInfo // username and passwd
	Addr    Addr     // host and port
	Params  Params   // parameters, in order
	Headers Values   // headers
	Secured bool
}

// Clone returns a deep copy of the SIP URI.
func (u *SIP) Clone() URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.Addr = u.Addr.Clone()
	u2.Params = u.Params.Clone()
	u2.Headers = u.Headers.Clone()
	return &u2
}

// Scheme returns the URI scheme.
func (u *SIP) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme()
}

// RenderTo writes the SIP URI to the provided writer.
func (u *SIP) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(u.scheme(), ":")
	if !u.User.IsZero() {
		cw.Fprint(u.User, "@")
	}
	cw.Fprint(u.Addr)
	cw.Call(u.renderParams)
	cw.Call(u.renderHeaders)
	return errtrace.Wrap2(cw.Result())
}

func (u *SIP) scheme() string {
	if u.Secured {
		return "sips"
	}
	return "sip"
}

func (u *SIP) renderParams(w io.Writer) (num int, err error) {
	if u.Params.Len() == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(";")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.Params.RenderTo(w)) })
	return errtrace.Wrap2(cw.Result())
}

func (u *SIP) renderHeaders(w io.Writer) (num int, err error) {
	if len(u.Headers) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?")

	var i int
	for _, k := range u.Headers.Names() {
		for _, v := range u.Headers.Get(k) {
			if i > 0 {
				cw.Fprint("&")
			}
			cw.Fprint(grammar.Escape(k, shouldEscapeURIHeaderChar), "=", grammar.Escape(v, shouldEscapeURIHeaderChar))
			i++
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the SIP URI.
func (u *SIP) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the SIP URI.
func (u *SIP) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format prints the URI text, %+s renders directly into the state and %#v prints the fields.
func (u *SIP) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'q':
		io.WriteString(f, strconv.Quote(u.String())) //nolint:errcheck
	case verb == 'v' && f.Flag('#'):
		type fields SIP
		fmt.Fprintf(f, "%#v", (*fields)(u))
	case verb == 's' && f.Flag('+'):
		u.RenderTo(f, nil) //nolint:errcheck
	default:
		io.WriteString(f, u.String()) //nolint:errcheck
	}
}

// Equal compares this SIP URI with another for equality according to RFC 3261 Section 19.1.4.
func (u *SIP) Equal(val any) bool {
	var other *SIP
	switch v := val.(type) {
	case SIP:
		other = &v
	case *SIP:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.Secured == other.Secured &&
		u.User.Equal(other.User) &&
		u.Addr.Equal(other.Addr) &&
		u.compareParams(other.Params) &&
		u.Headers.Equal(other.Headers)
}

func (u *SIP) compareParams(params Params) bool {
	switch {
	case u.Params.Len() == 0 && params.Len() == 0:
		return true
	case u.Params.Len() == 0:
		return !hasSIPURISpecParam(params)
	case params.Len() == 0:
		return !hasSIPURISpecParam(u.Params)
	}

	checked := map[string]bool{}
	// Any non-special parameters appearing in only one list are ignored.
	// First, traverse over self-parameters, compare values appearing in both lists,
	// check on speciality and save checked param names.
	for p := range u.Params.All() {
		if op, ok := params.Get(p.Name()); ok {
			// Any parameter appearing in both URIs must match.
			if !p.Equal(op) {
				return false
			}
		} else if sipURISpecParams[p.Name()] {
			// Any special SIP URI parameter appearing in one URI must appear in the other.
			return false
		}
		checked[p.Name()] = true
	}
	// Then need only check that there are no non-checked special parameters in the other list.
	for k := range sipURISpecParams {
		if checked[k] {
			continue
		}
		if params.Has(k) {
			return false
		}
	}
	return true
}

var sipURISpecParams = map[string]bool{
	"transport": true,
	"user":      true,
	"method":    true,
	"maddr":     true,
	"ttl":       true,
	"lr":        true,
}

func hasSIPURISpecParam(ps Params) bool {
	for k := range sipURISpecParams {
		if ps.Has(k) {
			return true
		}
	}
	return false
}


// IsValid checks whether the SIP URI is syntactically valid.
func (u *SIP) IsValid() bool {
	return u != nil && u.Addr.IsValid() && (u.User.IsZero() || u.User.IsValid()) && u.Params.IsValid()
}

// MarshalText implements [encoding.TextMarshaler].
func (u *SIP) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *SIP) UnmarshalText(text []byte) error {
	u1, err := ParseSIP(string(text))
	if err != nil {
		*u = SIP{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

func (u *SIP) param(name string) (string, bool) {
	p, ok := u.Params.Get(name)
	if !ok {
		return "", false
	}
	return p.Unquoted(), true
}

func (u *SIP) Transport() (TransportProto, bool) {
	tp, ok := u.param("transport")
	return TransportProto(tp), ok
}

func (u *SIP) UserType() (string, bool) {
	return u.param("user")
}

func (u *SIP) Method() (RequestMethod, bool) {
	mtd, ok := u.param("method")
	return RequestMethod(mtd), ok
}

func (u *SIP) MAddr() (string, bool) {
	return u.param("maddr")
}

func (u *SIP) TTL() (uint8, bool) {
	val, ok := u.param("ttl")
	if !ok {
		return 0, false
	}
	tts, err := strconv.ParseUint(val, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(tts), true
}

func (u *SIP) LR() bool {
	return u.Params.Has("lr")
}

// ParseSIP parses a SIP or SIPS URI from the given input src (string or []byte).
// Internationalized host names are converted to their ASCII form.
func ParseSIP[T grammar.Byteseq](src T) (*SIP, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	sc := grammar.NewScanner(string(src))
	u := &SIP{Params: NewParams()}
	switch {
	case sc.AcceptFold("sips:"):
		u.Secured = true
	case sc.AcceptFold("sip:"):
	default:
		return nil, errtrace.Wrap(newMalformedURIErr(src, "missing sip or sips scheme"))
	}

	rest := sc.Rest()
	rest, hdrs, hasHdrs := strings.Cut(rest, "?")
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		ui, err := parseUserInfo(rest[:i])
		if err != nil {
			return nil, errtrace.Wrap(newMalformedURIErr(src, err))
		}
		u.User = ui
		rest = rest[i+1:]
	}

	hostport, params, hasParams := strings.Cut(rest, ";")
	addr, err := types.ParseAddr(hostport)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedURIErr(src, err))
	}
	u.Addr = addr

	if hasParams {
		if err := u.Params.Parse(params); err != nil {
			return nil, errtrace.Wrap(newMalformedURIErr(src, err))
		}
	}
	if hasHdrs {
		if u.Headers, err = parseURIHeaders(hdrs); err != nil {
			return nil, errtrace.Wrap(newMalformedURIErr(src, err))
		}
	}
	return u, nil
}

func newMalformedURIErr[T grammar.Byteseq](src T, args ...any) error {
	return errorutil.NewWrapperError( //errtrace:skip
		grammar.ErrMalformedInput,
		fmt.Errorf("uri %q: %w", string(src), errorutil.NewWrapperError(errorutil.ErrInvalidFormat, args...)),
	)
}

func parseUserInfo(s string) (UserInfo, error) {
	usr, pwd, hasPwd := strings.Cut(s, ":")
	if usr == "" || !isEscapedSeq(usr, grammar.IsURIUserCharUnreserved) {
		return UserInfo{}, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid user %q", usr))
	}
	if !hasPwd {
		return User(grammar.Unescape(usr)), nil
	}
	if !isEscapedSeq(pwd, grammar.IsURIPasswdCharUnreserved) {
		return UserInfo{}, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid password"))
	}
	return UserPassword(grammar.Unescape(usr), grammar.Unescape(pwd)), nil
}

func parseURIHeaders(s string) (Values, error) {
	hdrs := make(Values)
	for _, kv := range strings.Split(s, "&") {
		k, v, _ := strings.Cut(kv, "=")
		if k == "" ||
			!isEscapedSeq(k, grammar.IsURIHeaderCharUnreserved) ||
			!isEscapedSeq(v, grammar.IsURIHeaderCharUnreserved) {
			return nil, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid header %q", kv))
		}
		hdrs.Append(grammar.Unescape(k), grammar.Unescape(v))
	}
	return hdrs, nil
}

// UserInfo is a container for user credentials.
// It is typically used in [SIP] to store userinfo part.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// String returns the string representation of the UserInfo.
func (ui UserInfo) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if ui.usrname != "" {
		sb.WriteString(grammar.Escape(ui.usrname, shouldEscapeUserChar))
	}
	if ui.hasPasswd {
		sb.WriteString(":")
		sb.WriteString(grammar.Escape(ui.passwd, shouldEscapePasswdChar))
	}
	return sb.String()
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsValid checks whether the UserInfo is syntactically valid.
func (ui UserInfo) IsValid() bool { return ui.usrname != "" }

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
