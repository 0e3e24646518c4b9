package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipheader/header"
)

func TestNewGroup(t *testing.T) {
	t.Parallel()

	if _, err := header.NewGroup[header.From](); !cmp.Equal(err, header.ErrNotMultiple, cmpopts.EquateErrors()) {
		t.Errorf("header.NewGroup[From]() error = %v, want %v", err, header.ErrNotMultiple)
	}
	if _, err := header.NewGroup[header.Authorization](); !cmp.Equal(err, header.ErrSecurityGroup, cmpopts.EquateErrors()) {
		t.Errorf("header.NewGroup[Authorization]() error = %v, want %v", err, header.ErrSecurityGroup)
	}
	if _, err := header.NewAuthGroup[header.Contact](); !cmp.Equal(err, header.ErrNotSecurityHeader, cmpopts.EquateErrors()) {
		t.Errorf("header.NewAuthGroup[Contact]() error = %v, want %v", err, header.ErrNotSecurityHeader)
	}
	if _, err := header.NewGroup[header.Via](nil); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("header.NewGroup[Via](nil) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	g, err := header.NewGroup[header.Supported]()
	if err != nil {
		t.Fatalf("header.NewGroup[Supported]() error = %v, want nil", err)
	}
	if g.Len() != 0 || g.CanonicName() != "Supported" || g.CompactName() != "k" {
		t.Errorf("empty group = %d %q %q, want 0 \"Supported\" \"k\"", g.Len(), g.CanonicName(), g.CompactName())
	}
	if g.IsValid() {
		t.Error("empty g.IsValid() = true, want false")
	}
}

func TestGroup_Parse(t *testing.T) {
	t.Parallel()

	var g header.Group[header.Contact, *header.Contact]
	err := g.Parse(`"Doe, John" <sip:john@example.com;transport=tcp>;q=0.5,` + "\r\n" +
		` <sip:john@10.0.0.1>;expires=60 ,sip:john@example.net`)
	if err != nil {
		t.Fatalf("g.Parse() error = %v, want nil", err)
	}
	if got, want := g.Len(), 3; got != want {
		t.Fatalf("g.Len() = %d, want %d", got, want)
	}
	if got, want := g.At(0).DisplayName, "Doe, John"; got != want {
		t.Errorf("g.At(0).DisplayName = %q, want %q", got, want)
	}
	want := `"Doe, John" <sip:john@example.com;transport=tcp>;q=0.5, <sip:john@10.0.0.1>;expires=60, <sip:john@example.net>`
	if got := g.RenderValue(); got != want {
		t.Errorf("g.RenderValue() = %q, want %q", got, want)
	}
	if got, want := g.Render(&header.RenderOptions{Compact: true}), "m: "+want; got != want {
		t.Errorf("g.Render(compact) = %q, want %q", got, want)
	}

	var idx []int
	for i := range g.All() {
		idx = append(idx, i)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, idx); diff != "" {
		t.Errorf("g.All() indexes mismatch (-want +got):\n%s", diff)
	}

	g.Remove(1)
	if got, want := g.Len(), 2; got != want {
		t.Errorf("g.Len() after remove = %d, want %d", got, want)
	}

	if err := g.Parse(" , "); !cmp.Equal(err, header.ErrEmptyValue, cmpopts.EquateErrors()) {
		t.Errorf("g.Parse(\" , \") error = %v, want %v", err, header.ErrEmptyValue)
	}
	if err := g.Parse("<sip:a@example.com>, <bad"); err == nil {
		t.Error("g.Parse(bad) error = nil, want error")
	}
	if err := g.Parse(""); err != nil || g.Len() != 0 {
		t.Errorf("g.Parse(\"\") = %v, len %d, want nil, 0", err, g.Len())
	}
}

func TestGroup_Equal(t *testing.T) {
	t.Parallel()

	parse := func(v string) *header.Group[header.Via, *header.Via] {
		t.Helper()
		var g header.Group[header.Via, *header.Via]
		if err := g.Parse(v); err != nil {
			t.Fatalf("g.Parse(%q) error = %v, want nil", v, err)
		}
		return &g
	}

	a := parse("SIP/2.0/UDP a.example.com;branch=z9hG4bK1, SIP/2.0/TCP b.example.com;branch=z9hG4bK2")
	b := parse("SIP/2.0/TCP b.example.com;branch=z9hG4bK2, SIP/2.0/UDP a.example.com;branch=z9hG4bK1")
	c := parse("SIP/2.0/UDP a.example.com;branch=z9hG4bK1, SIP/2.0/UDP a.example.com;branch=z9hG4bK1")
	d := parse("SIP/2.0/UDP a.example.com;branch=z9hG4bK1")

	cases := []struct {
		name string
		x, y any
		want bool
	}{
		{"reordered", a, b, true},
		{"value", a, *b, true},
		{"repeated", a, c, false},
		{"repeated reversed", c, a, false},
		{"shorter", a, d, false},
		{"nil", a, (*header.Group[header.Via, *header.Via])(nil), false},
		{"other type", a, d.At(0), false},
	}
	for _, c := range cases {
		if got := c.x.(header.Header).Equal(c.y); got != c.want {
			t.Errorf("%s: Equal() = %v, want %v", c.name, got, c.want)
		}
	}

	clone, ok := a.Clone().(*header.Group[header.Via, *header.Via])
	if !ok {
		t.Fatalf("a.Clone() = %T, want *Group[Via]", a.Clone())
	}
	if !clone.Equal(a) {
		t.Errorf("a.Clone() = %q, want %q", clone, a)
	}
	if err := clone.At(0).SetBranch("z9hG4bKchanged"); err != nil {
		t.Fatalf("SetBranch() error = %v, want nil", err)
	}
	if branch, _ := a.At(0).Branch(); branch != "z9hG4bK1" {
		t.Errorf("original branch = %q after clone change, want \"z9hG4bK1\"", branch)
	}
}

func TestAuthGroup_Order(t *testing.T) {
	t.Parallel()

	a1 := parseValue[header.Authorization](t, `Digest username="alice", realm="atlanta.com"`)
	a2 := parseValue[header.Authorization](t, `Digest username="alice", realm="biloxi.com"`)

	g1, err := header.NewAuthGroup(a1, a2)
	if err != nil {
		t.Fatalf("header.NewAuthGroup(a1, a2) error = %v, want nil", err)
	}
	g2, _ := header.NewAuthGroup(a2, a1)
	if g1.Equal(g2) {
		t.Error("groups with different order are equal")
	}
	g3, _ := header.NewAuthGroup(a1.Clone().(*header.Authorization), a2.Clone().(*header.Authorization))
	if !g1.Equal(g3) {
		t.Errorf("g1.Equal(g3) = false, want true")
	}
	if err := g1.Append(nil); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("g1.Append(nil) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	want := lines(
		`Authorization: Digest username="alice", realm="atlanta.com"`,
		`Authorization: Digest username="alice", realm="biloxi.com"`,
	)
	if got := g1.Render(nil); got != want {
		t.Errorf("g1.Render(nil) = %q, want %q", got, want)
	}
	if !g1.IsValid() {
		t.Error("g1.IsValid() = false, want true")
	}
}
