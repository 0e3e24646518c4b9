package header_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"

	"github.com/ghettovoice/sipheader/header"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    header.Name
		want    string
		wantErr error
	}{
		{"From", "*header.From", nil},
		{"f", "*header.From", nil},
		{"WWW-AUTHENTICATE", "*header.WWWAuthenticate", nil},
		{"v", "*header.Via", nil},
		{"cseq", "*header.CSeq", nil},
		{"X-Unknown", "*header.Extension", nil},
		{"Bad Name", "", header.ErrInvalidFormat},
		{"", "", header.ErrInvalidFormat},
		{"Bad:Name", "", header.ErrInvalidFormat},
	}

	for _, c := range cases {
		hdr, err := header.New(c.name)
		if !cmp.Equal(err, c.wantErr, cmpopts.EquateErrors()) {
			t.Errorf("header.New(%q) error = %v, want %v", c.name, err, c.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if got := fmt.Sprintf("%T", hdr); got != c.want {
			t.Errorf("header.New(%q) = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line    string
		wantErr error
	}{
		{"From <sip:alice@atlanta.com>", header.ErrInvalidFormat},
		{"Bad Name: value", header.ErrInvalidFormat},
		{": value", header.ErrInvalidFormat},
		{"From: sip:alice@atlanta.com;tag=1 junk", header.ErrInvalidFormat},
		{"Contact: *;q=0.5, <sip:a@example.com>", nil},
		{`Contact: * <sip:a@example.com>`, header.ErrInvalidFormat},
		{"Contact: ", nil},
		{"Content-Length: 12a", header.ErrInvalidFormat},
	}

	for _, c := range cases {
		_, err := header.Parse(c.line)
		if !cmp.Equal(err, c.wantErr, cmpopts.EquateErrors()) {
			t.Errorf("header.Parse(%q) error = %v, want %v", c.line, err, c.wantErr)
		}
	}

	if _, err := header.Parse("From: <sip:alice@atlanta.com"); err == nil {
		t.Error("header.Parse(unclosed addr) error = nil, want error")
	}
}

type sessionExpires struct {
	header.Extension
}

func TestRegister(t *testing.T) {
	t.Parallel()

	const name = "Session-Expires"
	ctor := func() header.Header { return &sessionExpires{header.Extension{Name: name}} }

	if err := header.Register("bad name", ctor); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("header.Register(\"bad name\") error = %v, want %v", err, header.ErrInvalidArgument)
	}
	if err := header.Register(name, nil); !cmp.Equal(err, header.ErrInvalidArgument, cmpopts.EquateErrors()) {
		t.Errorf("header.Register(nil ctor) error = %v, want %v", err, header.ErrInvalidArgument)
	}
	if err := header.Register(name, ctor); err != nil {
		t.Fatalf("header.Register(%q) error = %v, want nil", name, err)
	}

	hdr := mustParse[*sessionExpires](t, "session-expires: 1800;refresher=uac")
	if got, want := hdr.Render(nil), "Session-Expires: 1800;refresher=uac"; got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}

	var hs header.Headers
	if err := hs.Append(hdr); err != nil {
		t.Fatalf("hs.Append(hdr) error = %v, want nil", err)
	}
	if err := hs.Append(mustParse[header.Header](t, "Session-Expires: 90")); !cmp.Equal(err, header.ErrDuplicateItem, cmpopts.EquateErrors()) {
		t.Errorf("hs.Append(repeat) error = %v, want %v", err, header.ErrDuplicateItem)
	}

	if !header.Unregister(name) {
		t.Errorf("header.Unregister(%q) = false, want true", name)
	}
	if header.Unregister(name) {
		t.Errorf("header.Unregister(%q) twice = true, want false", name)
	}
	mustParse[*header.Extension](t, "Session-Expires: 1800")
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	var eg errgroup.Group
	for i := range 32 {
		eg.Go(func() error {
			name := header.Name(fmt.Sprintf("X-Worker-%d", i%4))
			if i%2 == 0 {
				if err := header.Register(name, func() header.Header { return &header.Extension{Name: name} }); err != nil {
					return err
				}
				defer header.Unregister(name)
			}

			for _, c := range roundTripCases {
				hdr, err := header.Parse(c.line)
				if err != nil {
					return fmt.Errorf("parse %q: %w", c.line, err)
				}
				if !hdr.IsValid() {
					return fmt.Errorf("parse %q: invalid header", c.line)
				}
			}
			if _, err := header.Parse(string(name) + ": value"); err != nil {
				return fmt.Errorf("parse %s: %w", name, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestNew_ConcurrentReads(t *testing.T) {
	t.Parallel()

	for _, name := range []header.Name{"From", "Via", "Contact", "Content-Type", "Authorization", "Retry-After"} {
		hdr, err := header.New(name)
		if err != nil {
			t.Fatalf("header.New(%q) error = %v, want nil", name, err)
		}

		var eg errgroup.Group
		for range 8 {
			eg.Go(func() error {
				_ = hdr.RenderValue()
				_ = hdr.IsValid()
				if !hdr.Equal(hdr.Clone()) {
					return fmt.Errorf("%s: clone is not equal to the header", name)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}
	}
}
