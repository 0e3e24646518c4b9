package grammar_test

import (
	"testing"

	"github.com/ghettovoice/sipheader/internal/grammar"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", `""`},
		{"no quote", "abc", `"abc"`},
		{"with quote", `"ab"c"`, `"\"ab\"c\""`},
		{"with backslash quote", `ab\"c`, `"ab\\\"c"`},
		{"utf8", "Анна", `"Анна"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Quote(c.str), c.want; got != want {
				t.Errorf("grammar.Quote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"empty quote", `""`, ""},
		{"no quote", "abc", "abc"},
		{"with quote", `"abc"`, "abc"},
		{"with backslash quote", `"\"ab\"c\\\""`, `"ab"c\"`},
		{"unterminated", `"abc`, `"abc`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unquote(c.str), c.want; got != want {
				t.Errorf("grammar.Unquote(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"abc", true},
		{"z9hG4bK-776.asdhds", true},
		{"!%*_+`'~", true},
		{"a b", false},
		{"a;b", false},
		{"a,b", false},
		{`"a"`, false},
		{"a/b", false},
		{"a\r\n", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsToken(c.str), c.want; got != want {
				t.Errorf("grammar.IsToken(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsMediaToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"utf-8", true},
		{"a/b:c", true},
		{"a b", false},
		{"a;b", false},
		{`a"b`, false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsMediaToken(c.str), c.want; got != want {
				t.Errorf("grammar.IsMediaToken(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsQuoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{`"`, false},
		{`""`, true},
		{`"abc"`, true},
		{`"a\"b"`, true},
		{`"a"b"`, false},
		{`"abc`, false},
		{"\"a\r\n b\"", true},
		{"\"a\r\nb\"", false},
		{"\"Анна\"", true},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsQuoted(c.str), c.want; got != want {
				t.Errorf("grammar.IsQuoted(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"example.com", true},
		{"example.com.", true},
		{"a-b.example.com", true},
		{"-ab.example.com", false},
		{"example..com", false},
		{"192.168.0.1", true},
		{"1.2.3", false},
		{"[::1]", true},
		{"[2001:db8::1]", true},
		{"::1", false},
		{"[192.168.0.1]", false},
		{"exa_mple.com", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsHost(c.str), c.want; got != want {
				t.Errorf("grammar.IsHost(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsLHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str        string
		want       bool
		wantQuoted bool
	}{
		{"", false, false},
		{"0a1b2c", true, false},
		{"0A1B2C", false, false},
		{`"0a1b2c"`, false, true},
		{`""`, false, false},
		{"xyz", false, false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsLHex(c.str), c.want; got != want {
				t.Errorf("grammar.IsLHex(%q) = %v, want %v", c.str, got, want)
			}
			if got, want := grammar.IsLHexQuoted(c.str), c.wantQuoted; got != want {
				t.Errorf("grammar.IsLHexQuoted(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestReplaceFolding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no folding", "abc def", "abc def"},
		{"crlf sp", "abc,\r\n def", "abc, def"},
		{"crlf tab", "abc,\r\n\t\tdef", "abc, def"},
		{"lf sp", "abc \n  def", "abc def"},
		{"bare crlf", "abc\r\ndef", "abc\r\ndef"},
		{"multiple", "a\r\n b\r\n c", "a b c"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.ReplaceFolding(c.str), c.want; got != want {
				t.Errorf("grammar.ReplaceFolding(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"0", true},
		{"314159", true},
		{"12a", false},
		{"-1", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsDigits(c.str), c.want; got != want {
				t.Errorf("grammar.IsDigits(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}
