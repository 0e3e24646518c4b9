package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipheader/header"
	"github.com/ghettovoice/sipheader/uri"
)

func TestContentType_MediaType(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.ContentType](t, "text/html;level=1")
	if hdr.Type != "text" || hdr.Subtype != "html" {
		t.Errorf("hdr type = %q/%q, want \"text/html\"", hdr.Type, hdr.Subtype)
	}
	if got := hdr.MIMEType(); got != "text/html" {
		t.Errorf("hdr.MIMEType() = %q, want \"text/html\"", got)
	}

	gps := hdr.GenericParams()
	p, ok := gps.Get("level")
	if !ok || p.Value() != "1" {
		t.Errorf("generic param level = %v, %v, want 1, true", p, ok)
	}
	if hps := hdr.HeaderParams(); hps.Len() != 0 {
		t.Errorf("hdr.HeaderParams().Len() = %d, want 0", hps.Len())
	}
	if got, want := hdr.RenderValue(), "text/html;level=1"; got != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, want)
	}
}

func TestAuthorization_Digest(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.Authorization](t,
		`Digest username="Alice", realm="atlanta.com", nonce="84a4cc6f", response="7587245234b3434cc3412213e5f113a5432"`)

	got := map[string]string{
		"scheme":   hdr.Scheme,
		"username": hdr.Username(),
		"realm":    hdr.Realm(),
		"nonce":    hdr.Nonce(),
		"response": hdr.Response(),
	}
	want := map[string]string{
		"scheme":   "Digest",
		"username": "Alice",
		"realm":    "atlanta.com",
		"nonce":    "84a4cc6f",
		"response": "7587245234b3434cc3412213e5f113a5432",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parsed credentials mismatch (-want +got):\n%s", diff)
	}
	if gps := hdr.GenericParams(); gps.Len() != 0 {
		t.Errorf("hdr.GenericParams().Len() = %d, want 0", gps.Len())
	}
	if !hdr.IsValid() {
		t.Error("hdr.IsValid() = false, want true")
	}
}

func TestAlertInfo_AbsoluteURI(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.AlertInfo](t, "<http://www.example.com/sounds/moo.wav>")
	if hdr.URI == nil {
		t.Fatal("hdr.URI = nil, want URI")
	}
	if got, want := hdr.URI.Render(nil), "http://www.example.com/sounds/moo.wav"; got != want {
		t.Errorf("hdr.URI = %q, want %q", got, want)
	}
	if got, want := uri.GetScheme(hdr.URI), "http"; got != want {
		t.Errorf("uri.GetScheme(hdr.URI) = %q, want %q", got, want)
	}
	if got, want := hdr.Render(nil), "Alert-Info: <http://www.example.com/sounds/moo.wav>"; got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}
}

func TestContact_Addressed(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.Contact](t, `"Mr. Watson" <sip:watson@worcester.bell-telephone.co>;q=0.7`)
	if got, want := hdr.DisplayName, "Mr. Watson"; got != want {
		t.Errorf("hdr.DisplayName = %q, want %q", got, want)
	}
	if hdr.URI == nil {
		t.Fatal("hdr.URI = nil, want URI")
	}
	if got, want := hdr.URI.Scheme(), "sip"; got != want {
		t.Errorf("hdr.URI.Scheme() = %q, want %q", got, want)
	}
	if got, want := hdr.URI.Addr.Host(), "worcester.bell-telephone.co"; got != want {
		t.Errorf("hdr.URI.Addr.Host() = %q, want %q", got, want)
	}

	hps := hdr.HeaderParams()
	if p, ok := hps.Get("q"); !ok || p.Value() != "0.7" {
		t.Errorf("header param q = %v, %v, want 0.7, true", p, ok)
	}
	if gps := hdr.GenericParams(); gps.Has("q") {
		t.Error("q is present among generic parameters")
	}
	if q, ok := hdr.QValue(); !ok || q != 0.7 {
		t.Errorf("hdr.QValue() = %v, %v, want 0.7, true", q, ok)
	}
}

func TestRoute_Group(t *testing.T) {
	t.Parallel()

	var g header.Group[header.Route, *header.Route]
	if err := g.Parse("<sip:alice@atlanta.com>, <sip:bob@biloxi.com>"); err != nil {
		t.Fatalf("g.Parse() error = %v, want nil", err)
	}
	if got, want := g.Len(), 2; got != want {
		t.Fatalf("g.Len() = %d, want %d", got, want)
	}
	for i, want := range []string{"<sip:alice@atlanta.com>", "<sip:bob@biloxi.com>"} {
		if got := g.At(i).RenderValue(); got != want {
			t.Errorf("g.At(%d) = %q, want %q", i, got, want)
		}
	}
	if got, want := g.RenderValue(), "<sip:alice@atlanta.com>, <sip:bob@biloxi.com>"; got != want {
		t.Errorf("g.RenderValue() = %q, want %q", got, want)
	}

	r1 := parseValue[header.Route](t, "<sip:alice@atlanta.com>")
	r2 := parseValue[header.Route](t, "<sip:bob@biloxi.com>")
	built, err := header.NewGroup(r1, r2)
	if err != nil {
		t.Fatalf("header.NewGroup(r1, r2) error = %v, want nil", err)
	}
	if !built.Equal(&g) {
		t.Errorf("built group = %q, want %q", built, &g)
	}
}

func TestWWWAuthenticate_AuthGroup(t *testing.T) {
	t.Parallel()

	var g header.AuthGroup[header.WWWAuthenticate, *header.WWWAuthenticate]
	err := g.Parse(lines(
		`Digest realm="atlanta.com", nonce="84a4cc6f", qop="auth"`,
		`Digest realm="biloxi.com", nonce="5ee9e1a1", stale=false`,
	))
	if err != nil {
		t.Fatalf("g.Parse() error = %v, want nil", err)
	}
	if got, want := g.Len(), 2; got != want {
		t.Fatalf("g.Len() = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]string{"atlanta.com", "biloxi.com"}, []string{g.At(0).Realm(), g.At(1).Realm()}); diff != "" {
		t.Errorf("realms mismatch (-want +got):\n%s", diff)
	}
	if g.At(1).Stale() {
		t.Error("g.At(1).Stale() = true, want false")
	}

	single, err := header.NewAuthGroup(g.At(0).Clone().(*header.WWWAuthenticate))
	if err != nil {
		t.Fatalf("header.NewAuthGroup() error = %v, want nil", err)
	}
	if g.Equal(single) {
		t.Error("two-element group equals single-element group")
	}

	want := lines(
		`WWW-Authenticate: Digest realm="atlanta.com", nonce="84a4cc6f", qop="auth"`,
		`WWW-Authenticate: Digest realm="biloxi.com", nonce="5ee9e1a1", stale=FALSE`,
	)
	if got := g.Render(nil); got != want {
		t.Errorf("g.Render(nil) = %q, want %q", got, want)
	}

	var g2 header.AuthGroup[header.WWWAuthenticate, *header.WWWAuthenticate]
	if err := g2.Parse(want); err != nil {
		t.Fatalf("g2.Parse(rendered) error = %v, want nil", err)
	}
	if !g2.Equal(&g) {
		t.Errorf("reparsed group = %q, want %q", &g2, &g)
	}
}
