package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipheader/header"
)

func TestParameterized_KnownGenericPartition(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.To](t, "<sip:bob@biloxi.com>;foo=bar;TAG=8321234356;lr")
	hps, gps := hdr.HeaderParams(), hdr.GenericParams()

	if got, want := hps.Len(), 1; got != want {
		t.Errorf("hdr.HeaderParams().Len() = %d, want %d", got, want)
	}
	if !hps.Has("tag") {
		t.Error("tag is missing among header parameters")
	}
	if gps.Has("tag") {
		t.Error("tag is present among generic parameters")
	}
	if got, want := gps.Len(), 2; got != want {
		t.Errorf("hdr.GenericParams().Len() = %d, want %d", got, want)
	}
	for p := range gps.All() {
		if hdr.IsKnownParam(p.Name()) {
			t.Errorf("known parameter %q is among generic parameters", p.Name())
		}
	}
	if tag, ok := hdr.Tag(); !ok || tag != "8321234356" {
		t.Errorf("hdr.Tag() = %q, %v, want \"8321234356\", true", tag, ok)
	}
	if got, want := hdr.RenderValue(), "<sip:bob@biloxi.com>;tag=8321234356;foo=bar;lr"; got != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, want)
	}
}

func TestParameterized_RegisterKnownParam(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.Route](t, "<sip:p1.example.com;lr>;x-ext=1;y=2")
	if hdr.IsKnownParam("x-ext") {
		t.Fatal("x-ext is known before registration")
	}

	hdr.RegisterKnownParam("X-Ext")
	hps, gps := hdr.HeaderParams(), hdr.GenericParams()
	if !hps.Has("x-ext") || gps.Has("x-ext") {
		t.Errorf("x-ext after registration: header = %v, generic = %v, want true, false", hps.Has("x-ext"), gps.Has("x-ext"))
	}
	if got, want := hdr.RenderValue(), "<sip:p1.example.com;lr>;x-ext=1;y=2"; got != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, want)
	}

	hdr.UnregisterKnownParam("x-ext")
	hps, gps = hdr.HeaderParams(), hdr.GenericParams()
	if hps.Has("x-ext") || !gps.Has("x-ext") {
		t.Errorf("x-ext after unregistration: header = %v, generic = %v, want false, true", hps.Has("x-ext"), gps.Has("x-ext"))
	}
}

func TestParameterized_RegisterKnownParam_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  func(t *testing.T) *header.From
	}{
		{"zero value", func(*testing.T) *header.From { return new(header.From) }},
		{"parsed", func(t *testing.T) *header.From { return parseValue[header.From](t, "<sip:bob@biloxi.com>;tag=2") }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := c.hdr(t)
			hdr.RegisterKnownParam("foo")
			for _, value := range []string{
				"<sip:alice@atlanta.com>;tag=1;foo=bar",
				"<sip:carol@chicago.com>;foo=baz;tag=3",
			} {
				if err := hdr.Parse(value); err != nil {
					t.Fatalf("hdr.Parse(%q) error = %v, want nil", value, err)
				}
				hps, gps := hdr.HeaderParams(), hdr.GenericParams()
				if !hps.Has("foo") || gps.Has("foo") {
					t.Errorf("foo after hdr.Parse(%q): header = %v, generic = %v, want true, false", value, hps.Has("foo"), gps.Has("foo"))
				}
				if !hdr.IsKnownParam("foo") || !hdr.IsKnownParam("tag") {
					t.Errorf("hdr.IsKnownParam(foo), hdr.IsKnownParam(tag) = %v, %v, want true, true",
						hdr.IsKnownParam("foo"), hdr.IsKnownParam("tag"))
				}
			}
		})
	}
}

func TestParameterized_Duplicates(t *testing.T) {
	t.Parallel()

	hdr := parseValue[header.From](t, "<sip:alice@atlanta.com>;tag=1;foo=bar")

	tag, err := header.NewParam("tag", "2")
	if err != nil {
		t.Fatalf("header.NewParam() error = %v, want nil", err)
	}
	if err := hdr.AddParam(tag); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hdr.AddParam(tag) error = %v, want %v", err, header.ErrDuplicateItem)
	}
	if err := hdr.AddGenericParam(tag); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hdr.AddGenericParam(tag) error = %v, want %v", err, header.ErrDuplicateItem)
	}

	foo, _ := header.NewParam("FOO", "baz")
	if err := hdr.AddParam(foo); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hdr.AddParam(foo) error = %v, want %v", err, header.ErrDuplicateItem)
	}
	if err := hdr.SetParam(foo); err != nil {
		t.Errorf("hdr.SetParam(foo) error = %v, want nil", err)
	}
	if err := hdr.SetParam(tag); err != nil {
		t.Errorf("hdr.SetParam(tag) error = %v, want nil", err)
	}
	if got, want := hdr.RenderValue(), "<sip:alice@atlanta.com>;tag=2;foo=baz"; got != want {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, want)
	}

	if err := hdr.AddParam(header.Param{}); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("hdr.AddParam(zero) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	var to header.To
	err = to.Parse("<sip:bob@biloxi.com>;tag=1;tag=2")
	if !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("to.Parse(dup tag) error = %v, want %v", err, header.ErrDuplicateItem)
	}
	var perr *header.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("to.Parse(dup tag) error = %T, want *header.ParseError", err)
	}
	if perr.Header != "To" || perr.Field != "params" {
		t.Errorf("parse error header, field = %q, %q, want \"To\", \"params\"", perr.Header, perr.Field)
	}
}

func TestParameterized_GenericNotAllowed(t *testing.T) {
	t.Parallel()

	var hdr header.AuthenticationInfo
	err := hdr.Parse(`nextnonce="47364c23432d2e131a5fb210812c", foo=bar`)
	if !cmp.Equal(err, header.ErrGenericParamsNotAllowed, cmpopts.EquateErrors()) {
		t.Errorf("hdr.Parse(generic) error = %v, want %v", err, header.ErrGenericParamsNotAllowed)
	}

	if err := hdr.Parse(`nextnonce="47364c23432d2e131a5fb210812c"`); err != nil {
		t.Fatalf("hdr.Parse() error = %v, want nil", err)
	}
	if hdr.AllowGenericParams() {
		t.Error("hdr.AllowGenericParams() = true, want false")
	}
	foo, _ := header.NewParam("foo", "bar")
	if err := hdr.AddParam(foo); !cmp.Equal(err, header.ErrGenericParamsNotAllowed, cmpopts.EquateErrors()) {
		t.Errorf("hdr.AddParam(foo) error = %v, want %v", err, header.ErrGenericParamsNotAllowed)
	}
	if err := hdr.SetParam(foo); !cmp.Equal(err, header.ErrGenericParamsNotAllowed, cmpopts.EquateErrors()) {
		t.Errorf("hdr.SetParam(foo) error = %v, want %v", err, header.ErrGenericParamsNotAllowed)
	}
	if got, want := hdr.NextNonce(), "47364c23432d2e131a5fb210812c"; got != want {
		t.Errorf("hdr.NextNonce() = %q, want %q", got, want)
	}
}

func TestParameterized_EqualIgnoresOrder(t *testing.T) {
	t.Parallel()

	a := parseValue[header.Contact](t, "<sip:alice@pc33.atlanta.com>;expires=60;q=0.5;foo=1;bar")
	b := parseValue[header.Contact](t, "<sip:alice@pc33.atlanta.com>;bar;q=0.5;FOO=1;expires=60")
	if !a.Equal(b) {
		t.Errorf("%q.Equal(%q) = false, want true", a, b)
	}

	c := parseValue[header.Contact](t, "<sip:alice@pc33.atlanta.com>;expires=60;q=0.5;foo=2;bar")
	if a.Equal(c) {
		t.Errorf("%q.Equal(%q) = true, want false", a, c)
	}

	d := parseValue[header.Contact](t, `<sip:alice@pc33.atlanta.com>;expires=60;q=0.5;foo="1";bar`)
	if !a.Equal(d) {
		t.Errorf("%q.Equal(%q) = false, want true", a, d)
	}
}
