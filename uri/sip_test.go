package uri_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
	"github.com/ghettovoice/sipheader/uri"
)

func params(pairs ...string) uri.Params {
	ps := uri.NewParams()
	for i := 0; i < len(pairs); i += 2 {
		util.Must(ps.Add(util.Must2(uri.NewParam(pairs[i], pairs[i+1]))))
	}
	return ps
}

func TestSIP_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  *uri.SIP
		want string
	}{
		{"nil", (*uri.SIP)(nil), ""},
		{"zero", &uri.SIP{}, "sip:"},
		{"host and port", &uri.SIP{Addr: uri.HostPort("example.com", 5060)}, "sip:example.com:5060"},
		{"secured", &uri.SIP{Secured: true, Addr: uri.HostPort("example.com", 5060)}, "sips:example.com:5060"},
		{
			"user with empty password",
			&uri.SIP{Addr: uri.Host("example.com"), User: uri.UserPassword("root", "")},
			"sip:root:@example.com",
		},
		{
			"user with params encoded and password",
			&uri.SIP{
				Addr: uri.Host("example.com"),
				User: uri.UserPassword("root@;field=123", "p@sswd;qwe"),
			},
			"sip:root%40;field=123:p%40sswd%3Bqwe@example.com",
		},
		{
			"uri params and headers",
			&uri.SIP{
				User:   uri.UserPassword("root", ""),
				Addr:   uri.Host("example.com"),
				Params: params("transport", "UDP", "lr", ""),
				Headers: make(uri.Values).
					Append("Subject", "Hello world!").
					Append("priority", "emergency").
					Append("x-hE@DER", "").
					Append("priority", "URGENT"),
			},
			"sip:root:@example.com;transport=UDP;lr?priority=emergency&priority=URGENT&subject=Hello%20world!&x-he%40der=",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.Render(nil); got != c.want {
				t.Errorf("uri.Render(nil) = %q, want %q", got, c.want)
			}
		})
	}
}

func TestSIP_RenderTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		uri     *uri.SIP
		wantRes string
		wantErr error
	}{
		{"nil", (*uri.SIP)(nil), "", nil},
		{"zero", &uri.SIP{}, "sip:", nil},
		{"filled", &uri.SIP{Addr: uri.HostPort("example.com", 5060)}, "sip:example.com:5060", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			_, err := c.uri.RenderTo(&sb, nil)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.RenderTo(sb, nil) error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got := sb.String(); got != c.wantRes {
				t.Errorf("sb.String() = %q, want %q", got, c.wantRes)
			}
		})
	}
}

func TestSIP_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  *uri.SIP
		val  any
		want bool
	}{
		{"nil ptr to nil", (*uri.SIP)(nil), nil, false},
		{"nil ptr to nil ptr", (*uri.SIP)(nil), (*uri.SIP)(nil), true},
		{"zero to zero", &uri.SIP{}, uri.SIP{}, true},
		{
			"host case",
			&uri.SIP{User: uri.User("alice"), Addr: uri.Host("AtLanTa.CoM")},
			&uri.SIP{User: uri.User("alice"), Addr: uri.Host("atlanta.com")},
			true,
		},
		{
			"user case",
			&uri.SIP{User: uri.User("ALICE"), Addr: uri.Host("atlanta.com")},
			&uri.SIP{User: uri.User("alice"), Addr: uri.Host("atlanta.com")},
			false,
		},
		{
			"scheme",
			&uri.SIP{Addr: uri.Host("atlanta.com"), Secured: true},
			&uri.SIP{Addr: uri.Host("atlanta.com")},
			false,
		},
		{
			"param order",
			&uri.SIP{Addr: uri.Host("atlanta.com"), Params: params("transport", "tcp", "lr", "")},
			&uri.SIP{Addr: uri.Host("atlanta.com"), Params: params("lr", "", "transport", "TCP")},
			true,
		},
		{
			"other param ignored",
			&uri.SIP{Addr: uri.Host("atlanta.com"), Params: params("foo", "bar")},
			&uri.SIP{Addr: uri.Host("atlanta.com")},
			true,
		},
		{
			"special param missing",
			&uri.SIP{Addr: uri.Host("atlanta.com"), Params: params("transport", "tcp")},
			&uri.SIP{Addr: uri.Host("atlanta.com")},
			false,
		},
		{
			"port",
			&uri.SIP{Addr: uri.Host("atlanta.com")},
			&uri.SIP{Addr: uri.HostPort("atlanta.com", 5060)},
			false,
		},
		{
			"headers",
			&uri.SIP{Addr: uri.Host("atlanta.com"), Headers: make(uri.Values).Set("subject", "x")},
			&uri.SIP{Addr: uri.Host("atlanta.com")},
			false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.Equal(c.val); got != c.want {
				t.Errorf("uri.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSIP_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  *uri.SIP
		want bool
	}{
		{"nil", (*uri.SIP)(nil), false},
		{"zero", &uri.SIP{}, false},
		{"host", &uri.SIP{Addr: uri.Host("example.com")}, true},
		{"ipv6", &uri.SIP{Addr: uri.Host("2001:db8::1")}, true},
		{"bad host", &uri.SIP{Addr: uri.Host("exa mple")}, false},
		{"empty user with password", &uri.SIP{Addr: uri.Host("example.com"), User: uri.UserPassword("", "x")}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.IsValid(); got != c.want {
				t.Errorf("uri.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSIP_Clone(t *testing.T) {
	t.Parallel()

	u1 := &uri.SIP{
		User:    uri.User("alice"),
		Addr:    uri.HostPort("atlanta.com", 5060),
		Params:  params("transport", "tcp"),
		Headers: make(uri.Values).Set("subject", "x"),
	}
	u2, _ := u1.Clone().(*uri.SIP)
	if !u1.Equal(u2) {
		t.Fatalf("u1.Equal(u1.Clone()) = false, want true")
	}
	u2.Params.Remove("transport")
	u2.Headers.Del("subject")
	if !u1.Params.Has("transport") || !u1.Headers.Has("subject") {
		t.Errorf("clone shares state with the original: %v", u1)
	}
}

func TestParseSIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *uri.SIP
		wantErr error
	}{
		{"empty", "", nil, grammar.ErrEmptyInput},
		{"no scheme", "alice@atlanta.com", nil, grammar.ErrMalformedInput},
		{"other scheme", "tel:+12345", nil, grammar.ErrMalformedInput},
		{"host only", "sip:atlanta.com", &uri.SIP{Addr: uri.Host("atlanta.com"), Params: uri.NewParams()}, nil},
		{
			"full",
			"SIPS:alice:secret@atlanta.com:5061;transport=tcp;lr?subject=project%20x&priority=urgent",
			&uri.SIP{
				Secured: true,
				User:    uri.UserPassword("alice", "secret"),
				Addr:    uri.HostPort("atlanta.com", 5061),
				Params:  params("transport", "tcp", "lr", ""),
				Headers: make(uri.Values).Set("subject", "project x").Set("priority", "urgent"),
			},
			nil,
		},
		{
			"user with semicolon",
			"sip:alice;day=tue@atlanta.com",
			&uri.SIP{User: uri.User("alice;day=tue"), Addr: uri.Host("atlanta.com"), Params: uri.NewParams()},
			nil,
		},
		{
			"ipv6",
			"sip:[2001:db8::10]:5070;maddr=239.255.255.1",
			&uri.SIP{Addr: uri.HostPort("2001:db8::10", 5070), Params: params("maddr", "239.255.255.1")},
			nil,
		},
		{
			"idna host",
			"sip:bob@пример.рф",
			&uri.SIP{User: uri.User("bob"), Addr: uri.Host("xn--e1afmkfd.xn--p1ai"), Params: uri.NewParams()},
			nil,
		},
		{"bad port", "sip:atlanta.com:abc", nil, grammar.ErrMalformedInput},
		{"bad user", "sip:al ice@atlanta.com", nil, grammar.ErrMalformedInput},
		{"duplicate param", "sip:atlanta.com;lr;lr", nil, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseSIP(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ParseSIP(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.want == nil {
				if got != nil {
					t.Errorf("uri.ParseSIP(%q) = %v, want nil", c.in, got)
				}
				return
			}
			if !got.Equal(c.want) || got.Params.Len() != c.want.Params.Len() {
				t.Errorf("uri.ParseSIP(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestSIP_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"sip:atlanta.com",
		"sip:alice@atlanta.com;transport=tcp",
		"sips:alice:pass@[2001:db8::1]:5061;lr;maddr=example.net",
		"sip:watson@worcester.bell-telephone.co",
		"sip:alice@atlanta.com?subject=hi",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			u, err := uri.ParseSIP(in)
			if err != nil {
				t.Fatalf("uri.ParseSIP(%q) error = %v, want nil", in, err)
			}
			if got := u.String(); got != in {
				t.Errorf("uri.ParseSIP(%q).String() = %q, want %q", in, got, in)
			}
		})
	}
}

func TestSIP_Accessors(t *testing.T) {
	t.Parallel()

	u := util.Must2(uri.ParseSIP("sip:alice@atlanta.com;transport=TCP;user=phone;method=INVITE;maddr=1.2.3.4;ttl=15;lr"))
	if tp, ok := u.Transport(); !ok || tp != "TCP" {
		t.Errorf("u.Transport() = (%q, %v), want (%q, true)", tp, ok, "TCP")
	}
	if ut, ok := u.UserType(); !ok || ut != "phone" {
		t.Errorf("u.UserType() = (%q, %v), want (%q, true)", ut, ok, "phone")
	}
	if m, ok := u.Method(); !ok || m != "INVITE" {
		t.Errorf("u.Method() = (%q, %v), want (%q, true)", m, ok, "INVITE")
	}
	if ma, ok := u.MAddr(); !ok || ma != "1.2.3.4" {
		t.Errorf("u.MAddr() = (%q, %v), want (%q, true)", ma, ok, "1.2.3.4")
	}
	if ttl, ok := u.TTL(); !ok || ttl != 15 {
		t.Errorf("u.TTL() = (%d, %v), want (15, true)", ttl, ok)
	}
	if !u.LR() {
		t.Errorf("u.LR() = false, want true")
	}
}

func TestUserInfo_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ui   uri.UserInfo
		want string
	}{
		{"zero", uri.UserInfo{}, ""},
		{"user", uri.User("alice"), "alice"},
		{"user and password", uri.UserPassword("alice", "p@ss"), "alice:p%40ss"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ui.String(); got != c.want {
				t.Errorf("ui.String() = %q, want %q", got, c.want)
			}
		})
	}
}
