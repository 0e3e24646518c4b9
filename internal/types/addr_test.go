package types_test

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
)

var cmpAddr = cmp.AllowUnexported(types.Addr{})

func TestAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		addr     types.Addr
		host     string
		port     uint16
		hasPort  bool
		want     string
		wantZero bool
		wantOK   bool
	}{
		{"zero", types.Addr{}, "", 0, false, "", true, false},
		{"empty host", types.Host(""), "", 0, false, "", true, false},
		{"port only", types.HostPort("", 5060), "", 5060, true, ":5060", false, false},
		{"domain", types.Host("pc33.atlanta.com"), "pc33.atlanta.com", 0, false, "pc33.atlanta.com", false, true},
		{"domain port", types.HostPort("Biloxi.COM", 5061), "Biloxi.COM", 5061, true, "Biloxi.COM:5061", false, true},
		{"zero port", types.HostPort("atlanta.com", 0), "atlanta.com", 0, true, "atlanta.com:0", false, true},
		{"ipv4", types.HostPort("192.0.2.4", 5060), "192.0.2.4", 5060, true, "192.0.2.4:5060", false, true},
		{"ipv6", types.Host("2001:db8::9:1"), "2001:db8::9:1", 0, false, "[2001:db8::9:1]", false, true},
		{"ipv6 port", types.HostPort("2001:db8::9:1", 5060), "2001:db8::9:1", 5060, true, "[2001:db8::9:1]:5060", false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.Host(); got != c.host {
				t.Errorf("addr.Host() = %q, want %q", got, c.host)
			}
			if port, ok := c.addr.Port(); port != c.port || ok != c.hasPort {
				t.Errorf("addr.Port() = (%d, %v), want (%d, %v)", port, ok, c.port, c.hasPort)
			}
			if ip := net.ParseIP(c.host); ip != nil && !c.addr.IP().Equal(ip) {
				t.Errorf("addr.IP() = %v, want %v", c.addr.IP(), ip)
			}
			if got := c.addr.String(); got != c.want {
				t.Errorf("addr.String() = %q, want %q", got, c.want)
			}
			if got := c.addr.IsZero(); got != c.wantZero {
				t.Errorf("addr.IsZero() = %v, want %v", got, c.wantZero)
			}
			if got := c.addr.IsValid(); got != c.wantOK {
				t.Errorf("addr.IsValid() = %v, want %v", got, c.wantOK)
			}
			if diff := cmp.Diff(c.addr, c.addr.Clone(), cmpAddr); diff != "" {
				t.Errorf("addr.Clone() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddr_Equal(t *testing.T) {
	t.Parallel()

	sentBy := types.HostPort("192.0.2.128", 5060)
	cases := []struct {
		name string
		addr types.Addr
		val  any
		want bool
	}{
		{"nil", types.Addr{}, nil, false},
		{"zero", types.Addr{}, types.Addr{}, true},
		{"nil pointer", types.Addr{}, (*types.Addr)(nil), false},
		{"pointer", sentBy, &sentBy, true},
		{"missing port", types.HostPort("atlanta.com", 0), types.Host("atlanta.com"), false},
		{"host case", types.HostPort("atlanta.com", 5060), types.HostPort("ATLANTA.COM", 5060), true},
		{"port differs", sentBy, types.HostPort("192.0.2.128", 5070), false},
		{"ipv4 mapped", sentBy, types.HostPort("::ffff:192.0.2.128", 5060), true},
		{"ipv6 notation", types.Host("2001:db8::9:1"), types.Host("2001:db8::9:01"), true},
		{"name vs ip", types.HostPort("localhost", 5060), types.HostPort("127.0.0.1", 5060), false},
		{"other type", sentBy, "192.0.2.128:5060", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.Equal(c.val); got != c.want {
				t.Errorf("addr.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestParseAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    types.Addr
		wantErr error
	}{
		{"empty", "", types.Addr{}, grammar.ErrEmptyInput},
		{"host", "atlanta.com", types.Host("atlanta.com"), nil},
		{"host port", "atlanta.com:5060", types.HostPort("atlanta.com", 5060), nil},
		{"ipv4 port", "192.0.2.4:5061", types.HostPort("192.0.2.4", 5061), nil},
		{"ipv6", "[2001:db8::9:1]", types.Host("2001:db8::9:1"), nil},
		{"ipv6 port", "[2001:db8::9:1]:5060", types.HostPort("2001:db8::9:1", 5060), nil},
		{"idna", "пример.рф", types.Host("xn--e1afmkfd.xn--p1ai"), nil},
		{"bad port", "atlanta.com:50x", types.Addr{}, grammar.ErrMalformedInput},
		{"port overflow", "atlanta.com:65536", types.Addr{}, grammar.ErrMalformedInput},
		{"unclosed ipv6", "[::1", types.Addr{}, grammar.ErrMalformedInput},
		{"bad host", "atl anta.com", types.Addr{}, grammar.ErrMalformedInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseAddr(c.in)
			if diff := cmp.Diff(c.wantErr, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("types.ParseAddr(%q) error mismatch (-want +got):\n%s", c.in, diff)
			}
			if diff := cmp.Diff(c.want, got, cmpAddr); diff != "" {
				t.Errorf("types.ParseAddr(%q) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestAddr_Text(t *testing.T) {
	t.Parallel()

	for _, addr := range []types.Addr{
		types.Host("atlanta.com"),
		types.HostPort("atlanta.com", 5060),
		types.HostPort("192.0.2.4", 5060),
		types.HostPort("2001:db8::9:1", 5060),
	} {
		text, err := addr.MarshalText()
		if err != nil {
			t.Fatalf("addr.MarshalText() error = %v, want nil", err)
		}
		var got types.Addr
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("addr.UnmarshalText(%q) error = %v, want nil", text, err)
		}
		if diff := cmp.Diff(addr, got, cmpAddr); diff != "" {
			t.Errorf("text round trip mismatch (-want +got):\n%s", diff)
		}
	}

	got := types.HostPort("atlanta.com", 5060)
	if err := got.UnmarshalText([]byte("://bad")); err == nil {
		t.Error("addr.UnmarshalText(\"://bad\") error = nil, want error")
	}
	if diff := cmp.Diff(types.Addr{}, got, cmpAddr); diff != "" {
		t.Errorf("addr after failed UnmarshalText mismatch (-want +got):\n%s", diff)
	}
}
