package header_test

import (
	"testing"

	"github.com/ghettovoice/sipheader/header"
)

var roundTripCases = []struct {
	line string
	want string // rendered line, same as line when empty
}{
	{line: "Accept: application/sdp;q=0.5;level=1"},
	{line: "Accept-Encoding: gzip;q=0.8"},
	{line: "Accept-Language: da;q=0.7"},
	{line: "Alert-Info: <http://www.example.com/sounds/moo.wav>"},
	{line: "Allow: INVITE"},
	{line: `Authentication-Info: nextnonce="47364c23432d2e131a5fb210812c", qop=auth, rspauth="a1b2c3", cnonce="0a4f113b", nc=00000001`},
	{line: `Authorization: Digest username="bob", realm="biloxi.com", nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", ` +
		`uri="sip:bob@biloxi.com", qop=auth, nc=00000001, cnonce="0a4f113b", ` +
		`response="6629fae49393a05397450978507c4ef1", opaque="5ccc069c403ebaf9f0171e9517f40e41"`},
	{line: "Call-ID: a84b4c76e66710@pc33.atlanta.com"},
	{line: "i: f81d4fae-7dec-11d0-a765-00a0c91e6bf6@foo.bar.com", want: "Call-ID: f81d4fae-7dec-11d0-a765-00a0c91e6bf6@foo.bar.com"},
	{line: "Call-Info: <http://wwww.example.com/alice/photo.jpg>;purpose=icon"},
	{line: `Contact: "Mr. Watson" <sip:watson@worcester.bell-telephone.co>;q=0.7;expires=3600`},
	{line: "Contact: *"},
	{line: "Content-Disposition: session;handling=optional"},
	{line: "Content-Encoding: gzip"},
	{line: "Content-Language: fr"},
	{line: "Content-Length: 349"},
	{line: "Content-Type: application/sdp"},
	{line: "CSeq: 4711 INVITE"},
	{line: "Date: Sat, 13 Nov 2010 23:29:00 GMT"},
	{line: "Error-Info: <sip:not-in-service-recmsg@atlanta.com>"},
	{line: "Expires: 5"},
	{line: `From: "Bob" <sips:bob@biloxi.com>;tag=a48s`},
	{line: "f: <sip:alice@atlanta.com>;tag=1928301774", want: "From: <sip:alice@atlanta.com>;tag=1928301774"},
	{line: "In-Reply-To: 70710@saturn.bell-tel.com"},
	{line: "Max-Forwards: 70"},
	{line: "MIME-Version: 1.0"},
	{line: "Min-Expires: 60"},
	{line: "Organization: Boxes by Bob"},
	{line: "Priority: emergency"},
	{line: `Proxy-Authenticate: Digest realm="atlanta.com", domain="sip:ss1.carrier.com", qop="auth", ` +
		`nonce="f84f1cec41e6cbe5aea9c8e88d359", opaque="", stale=FALSE, algorithm=MD5`},
	{line: `Proxy-Authorization: Digest username="Alice", realm="atlanta.com", nonce="c60f3082ee1212b402a21831ae", ` +
		`response="245f23415f11432b3434341c022"`},
	{line: "Proxy-Require: foo"},
	{line: "Record-Route: <sip:server10.biloxi.com;lr>"},
	{line: "Reply-To: Bob <sip:bob@biloxi.com>", want: `Reply-To: "Bob" <sip:bob@biloxi.com>`},
	{line: "Require: 100rel"},
	{line: "Retry-After: 18000;duration=3600"},
	{line: "Retry-After: 120 (I'm in a meeting)"},
	{line: "Route: <sip:bigbox3.site3.atlanta.com;lr>"},
	{line: "Server: HomeServer v2"},
	{line: "Subject: Need more boxes"},
	{line: "Supported: 100rel"},
	{line: "Timestamp: 54 0.3"},
	{line: "To: <sip:carol@chicago.com>;tag=287447"},
	{line: "Unsupported: foo"},
	{line: "User-Agent: Softphone/1.5 (beta)"},
	{line: "Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"},
	{line: "v: SIP / 2.0 / TCP client.atlanta.example.com:5060;branch=z9hG4bK74b43;rport;received=192.0.2.101",
		want: "Via: SIP/2.0/TCP client.atlanta.example.com:5060;branch=z9hG4bK74b43;rport;received=192.0.2.101"},
	{line: `Warning: 307 isi.edu "Session parameter 'foo' not understood"`},
	{line: `WWW-Authenticate: Digest realm="atlanta.com", domain="sip:boxesbybob.com", qop="auth", ` +
		`nonce="f84f1cec41e6cbe5aea9c8e88d359", opaque="", stale=FALSE, algorithm=MD5`},
	{line: "X-Custom: anything, goes"},
}

func TestHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range roundTripCases {
		t.Run(c.line, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(c.line)
			if err != nil {
				t.Fatalf("header.Parse(%q) error = %v, want nil", c.line, err)
			}
			want := c.want
			if want == "" {
				want = c.line
			}
			if got := hdr.Render(nil); got != want {
				t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
			}
			if !hdr.IsValid() {
				t.Errorf("hdr.IsValid() = false, want true")
			}

			hdr2, err := header.New(hdr.CanonicName())
			if err != nil {
				t.Fatalf("header.New(%q) error = %v, want nil", hdr.CanonicName(), err)
			}
			if err := hdr2.Parse(hdr.RenderValue()); err != nil {
				t.Fatalf("hdr2.Parse(%q) error = %v, want nil", hdr.RenderValue(), err)
			}
			if !hdr2.Equal(hdr) {
				t.Errorf("reparsed header = %+v, want %+v", hdr2, hdr)
			}
		})
	}
}

func TestHeader_Clone(t *testing.T) {
	t.Parallel()

	for _, c := range roundTripCases {
		t.Run(c.line, func(t *testing.T) {
			t.Parallel()

			hdr := mustParse[header.Header](t, c.line)
			clone := hdr.Clone()
			if !clone.Equal(hdr) {
				t.Fatalf("hdr.Clone() = %+v, want %+v", clone, hdr)
			}

			want := hdr.Render(nil)
			if err := clone.Parse(""); err != nil {
				t.Fatalf("clone.Parse(\"\") error = %v, want nil", err)
			}
			if got := hdr.Render(nil); got != want {
				t.Errorf("hdr after clone reset = %q, want %q", got, want)
			}
		})
	}
}

func TestHeader_IdempotentClear(t *testing.T) {
	t.Parallel()

	for _, c := range roundTripCases {
		t.Run(c.line, func(t *testing.T) {
			t.Parallel()

			hdr := mustParse[header.Header](t, c.line)
			before := hdr.Clone()
			if err := header.ParseInto(hdr, nil); err != nil {
				t.Fatalf("header.ParseInto(hdr, nil) error = %v, want nil", err)
			}
			if !hdr.Equal(before) {
				t.Errorf("hdr after nil parse = %+v, want %+v", hdr, before)
			}

			if err := hdr.Parse(""); err != nil {
				t.Fatalf("hdr.Parse(\"\") error = %v, want nil", err)
			}
			fresh, err := header.New(hdr.CanonicName())
			if err != nil {
				t.Fatalf("header.New(%q) error = %v, want nil", hdr.CanonicName(), err)
			}
			if !hdr.Equal(fresh) {
				t.Errorf("hdr after empty parse = %+v, want %+v", hdr, fresh)
			}
			if got, want := hdr.RenderValue(), fresh.RenderValue(); got != want {
				t.Errorf("hdr.RenderValue() after empty parse = %q, want %q", got, want)
			}
		})
	}
}

func TestHeader_CompactRender(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want string
	}{
		{"Content-Type: application/sdp", "c: application/sdp"},
		{"Content-Encoding: gzip", "e: gzip"},
		{"From: <sip:alice@atlanta.com>", "f: <sip:alice@atlanta.com>"},
		{"Call-ID: a84b4c76e66710", "i: a84b4c76e66710"},
		{"Supported: 100rel", "k: 100rel"},
		{"Content-Length: 0", "l: 0"},
		{"Contact: <sip:alice@pc33.atlanta.com>", "m: <sip:alice@pc33.atlanta.com>"},
		{"Subject: Hi", "s: Hi"},
		{"To: <sip:bob@biloxi.com>", "t: <sip:bob@biloxi.com>"},
		{"Via: SIP/2.0/UDP pc33.atlanta.com", "v: SIP/2.0/UDP pc33.atlanta.com"},
		{"CSeq: 1 ACK", "CSeq: 1 ACK"},
	}

	for _, c := range cases {
		hdr := mustParse[header.Header](t, c.line)
		if got := hdr.Render(&header.RenderOptions{Compact: true}); got != c.want {
			t.Errorf("header.Parse(%q).Render(compact) = %q, want %q", c.line, got, c.want)
		}
	}
}
