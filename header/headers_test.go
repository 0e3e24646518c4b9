package header_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/sipheader/header"
)

func TestHeaders_CRUD(t *testing.T) {
	t.Parallel()

	var hs header.Headers
	from := mustParse[*header.From](t, "From: <sip:alice@atlanta.com>;tag=1928301774")
	to := mustParse[*header.To](t, "To: <sip:bob@biloxi.com>")

	if err := hs.Add(from); err != nil {
		t.Fatalf("hs.Add(from) error = %v, want nil", err)
	}
	if err := hs.Add(to); err != nil {
		t.Fatalf("hs.Add(to) error = %v, want nil", err)
	}
	if err := hs.Add(from.Clone()); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hs.Add(from again) error = %v, want %v", err, header.ErrDuplicateItem)
	}
	if err := hs.Add(nil); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("hs.Add(nil) error = %v, want %v", err, header.ErrInvalidArgument)
	}
	if err := hs.Add((*header.Via)(nil)); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("hs.Add(nil Via) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	for _, name := range []header.Name{"From", "from", "f", "F"} {
		got, ok := hs.Get(name)
		if !ok || got != header.Header(from) {
			t.Errorf("hs.Get(%q) = %v, %v, want From, true", name, got, ok)
		}
	}
	if _, ok := hs.Get("Via"); ok {
		t.Error("hs.Get(\"Via\") = _, true, want _, false")
	}
	if got := hs.At(1); got != header.Header(to) {
		t.Errorf("hs.At(1) = %v, want To", got)
	}

	to2 := mustParse[*header.To](t, "To: <sip:carol@chicago.com>")
	if err := hs.Set(to2); err != nil {
		t.Fatalf("hs.Set(to2) error = %v, want nil", err)
	}
	if got, want := hs.Len(), 2; got != want {
		t.Errorf("hs.Len() = %d, want %d", got, want)
	}
	if got := hs.At(1); got != header.Header(to2) {
		t.Errorf("hs.At(1) after set = %v, want %v", got, to2)
	}

	if !hs.Remove("t") {
		t.Error("hs.Remove(\"t\") = false, want true")
	}
	if hs.Remove("To") {
		t.Error("hs.Remove(\"To\") twice = true, want false")
	}

	want := "From: <sip:alice@atlanta.com>;tag=1928301774\r\n"
	if got := hs.Render(nil); got != want {
		t.Errorf("hs.Render(nil) = %q, want %q", got, want)
	}
	if got, want := hs.Render(&header.RenderOptions{Compact: true}), "f: <sip:alice@atlanta.com>;tag=1928301774\r\n"; got != want {
		t.Errorf("hs.Render(compact) = %q, want %q", got, want)
	}

	hs.Clear()
	if hs.Len() != 0 || hs.Render(nil) != "" {
		t.Errorf("hs after Clear = %d %q, want 0 \"\"", hs.Len(), hs.Render(nil))
	}
}

func TestHeaders_Append(t *testing.T) {
	t.Parallel()

	hs, err := header.NewHeaders(
		mustParse[header.Header](t, "Via: SIP/2.0/UDP a.example.com;branch=z9hG4bK1"),
		mustParse[header.Header](t, "Max-Forwards: 70"),
		mustParse[header.Header](t, "Via: SIP/2.0/UDP b.example.com;branch=z9hG4bK2, SIP/2.0/UDP c.example.com;branch=z9hG4bK3"),
		mustParse[header.Header](t, `WWW-Authenticate: Digest realm="a"`),
		mustParse[header.Header](t, `WWW-Authenticate: Digest realm="b"`),
		mustParse[header.Header](t, "X-Foo: 1"),
		mustParse[header.Header](t, "x-foo: 2"),
	)
	if err != nil {
		t.Fatalf("header.NewHeaders() error = %v, want nil", err)
	}

	if got, want := hs.Len(), 4; got != want {
		t.Fatalf("hs.Len() = %d, want %d", got, want)
	}
	via, _ := hs.Get("v")
	vias, ok := via.(*header.Group[header.Via, *header.Via])
	if !ok {
		t.Fatalf("hs.Get(\"v\") = %T, want *Group[Via]", via)
	}
	if got, want := vias.Len(), 3; got != want {
		t.Errorf("vias.Len() = %d, want %d", got, want)
	}
	auth, _ := hs.Get("WWW-Authenticate")
	if _, ok := auth.(*header.AuthGroup[header.WWWAuthenticate, *header.WWWAuthenticate]); !ok {
		t.Errorf("hs.Get(\"WWW-Authenticate\") = %T, want *AuthGroup[WWWAuthenticate]", auth)
	}

	want := lines(
		"Via: SIP/2.0/UDP a.example.com;branch=z9hG4bK1, SIP/2.0/UDP b.example.com;branch=z9hG4bK2, SIP/2.0/UDP c.example.com;branch=z9hG4bK3",
		"Max-Forwards: 70",
		`WWW-Authenticate: Digest realm="a"`,
		`WWW-Authenticate: Digest realm="b"`,
		"X-Foo: 1, 2",
		"",
	)
	if got := hs.Render(nil); got != want {
		t.Errorf("hs.Render(nil) = %q, want %q", got, want)
	}

	var n int
	for range hs.Values() {
		n++
	}
	if got, want := n, 7; got != want {
		t.Errorf("len(hs.Values()) = %d, want %d", got, want)
	}

	if err := hs.Append(mustParse[header.Header](t, "Max-Forwards: 69")); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hs.Append(Max-Forwards) error = %v, want %v", err, header.ErrDuplicateItem)
	}

	clone := hs.Clone()
	if !clone.Equal(hs) {
		t.Errorf("hs.Clone() = %q, want %q", clone, hs)
	}
	clone.Remove("Via")
	if !hs.Has("Via") {
		t.Error("hs lost Via after clone change")
	}
	if clone.Equal(hs) {
		t.Error("clone.Equal(hs) after change = true, want false")
	}
	if !hs.IsValid() {
		t.Errorf("hs.Validate() = %v, want nil", hs.Validate())
	}
}

func TestHeaders_Validate(t *testing.T) {
	t.Parallel()

	var hs header.Headers
	if err := hs.Add(&header.From{}); err != nil {
		t.Fatalf("hs.Add() error = %v, want nil", err)
	}
	if err := hs.Validate(); !cmp.Equal(err, header.ErrInvalidFormat, cmpopts.EquateErrors()) {
		t.Errorf("hs.Validate() error = %v, want %v", err, header.ErrInvalidFormat)
	}
}

func TestHeaders_JSON(t *testing.T) {
	t.Parallel()

	hs, err := header.ParseBlock(lines(
		"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds",
		"Max-Forwards: 70",
		"To: Bob <sip:bob@biloxi.com>",
	))
	if err != nil {
		t.Fatalf("header.ParseBlock() error = %v, want nil", err)
	}

	data, err := json.Marshal(hs)
	if err != nil {
		t.Fatalf("json.Marshal(hs) error = %v, want nil", err)
	}
	var got header.Headers
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal(data) error = %v, want nil", err)
	}
	if !got.Equal(hs) {
		t.Errorf("decoded headers = %q, want %q", &got, hs)
	}
}

func TestHeaders_YAML(t *testing.T) {
	t.Parallel()

	hs, err := header.ParseBlock(lines(
		"Max-Forwards: 70",
		`WWW-Authenticate: Digest realm="atlanta.com", nonce="84a4cc6f3082121f32b42a2187831a9e"`,
		`WWW-Authenticate: Digest realm="biloxi.com", nonce="a1b2"`,
	))
	if err != nil {
		t.Fatalf("header.ParseBlock() error = %v, want nil", err)
	}

	data, err := yaml.Marshal(hs)
	if err != nil {
		t.Fatalf("yaml.Marshal(hs) error = %v, want nil", err)
	}
	var items []map[string]string
	if err := yaml.Unmarshal(data, &items); err != nil {
		t.Fatalf("yaml.Unmarshal(data) error = %v, want nil", err)
	}
	if got, want := len(items), 2; got != want {
		t.Fatalf("len(items) = %d, want %d", got, want)
	}
	if diff := cmp.Diff(map[string]string{"name": "Max-Forwards", "value": "70"}, items[0]); diff != "" {
		t.Errorf("items[0] mismatch (-want +got):\n%s", diff)
	}

	var got header.Headers
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal(data, &got) error = %v, want nil", err)
	}
	if !got.Equal(hs) {
		t.Errorf("decoded headers = %q, want %q", &got, hs)
	}

	if err := yaml.Unmarshal([]byte("- name: CSeq\n  value: abc\n"), &got); !cmp.Equal(err, header.ErrInvalidFormat, cmpopts.EquateErrors()) {
		t.Errorf("yaml.Unmarshal(bad CSeq) error = %v, want %v", err, header.ErrInvalidFormat)
	}
}

func TestParseBlock(t *testing.T) {
	t.Parallel()

	block := "Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
		"Max-Forwards: 70\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>\r\n" +
		" ;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
		"v: SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1\r\n" +
		"Content-Type: application/sdp\r\n" +
		"l: 142\r\n" +
		"\r\n" +
		"v=0\r\n"

	hs, err := header.ParseBlock(block)
	if err != nil {
		t.Fatalf("header.ParseBlock() error = %v, want nil", err)
	}
	if got, want := hs.Len(), 9; got != want {
		t.Fatalf("hs.Len() = %d, want %d", got, want)
	}

	from, ok := hs.Get("From")
	if !ok {
		t.Fatal("hs.Get(\"From\") = _, false, want _, true")
	}
	if tag, _ := from.(*header.From).Tag(); tag != "1928301774" {
		t.Errorf("from tag = %q, want \"1928301774\"", tag)
	}

	want := "Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds, SIP/2.0/UDP bigbox3.site3.atlanta.com;branch=z9hG4bK77ef4c2312983.1\r\n" +
		"Max-Forwards: 70\r\n" +
		"To: \"Bob\" <sip:bob@biloxi.com>\r\n" +
		"From: \"Alice\" <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
		"CSeq: 314159 INVITE\r\n" +
		"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
		"Content-Type: application/sdp\r\n" +
		"Content-Length: 142\r\n"
	if got := hs.Render(nil); got != want {
		t.Errorf("hs.Render(nil) = %q, want %q", got, want)
	}
}

func TestParseBlock_Errors(t *testing.T) {
	t.Parallel()

	hs, err := header.ParseBlock(lines(
		"Max-Forwards: 70",
		"CSeq: abc INVITE",
		"no colon here",
		"To: <sip:bob@biloxi.com>",
		"To: <sip:carol@chicago.com>",
	))
	if err == nil {
		t.Fatal("header.ParseBlock() error = nil, want error")
	}
	if !cmp.Equal(err, header.ErrInvalidFormat, cmpopts.EquateErrors()) {
		t.Errorf("header.ParseBlock() error = %v, want %v", err, header.ErrInvalidFormat)
	}
	if !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("header.ParseBlock() error = %v, want %v", err, header.ErrDuplicateItem)
	}
	if got, want := hs.Len(), 2; got != want {
		t.Errorf("hs.Len() = %d, want %d", got, want)
	}
}
