package header

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
	"github.com/ghettovoice/sipheader/uri"
)

// layer consumes one piece of a header value from the shared scanner.
// Layers of a header run in a fixed order, each starting where the previous one stopped.
type layer interface {
	field() string
	reset()
	consume(sc *grammar.Scanner) error
}

// parseValue resets every layer and runs them in order over the unfolded value.
// An empty value leaves the layers reset.
func parseValue(hdr Name, value string, layers ...layer) error {
	for _, l := range layers {
		l.reset()
	}

	value = strings.Trim(grammar.ReplaceFolding(value), " \t\r\n")
	if value == "" {
		return nil
	}

	sc := grammar.NewScanner(value)
	for _, l := range layers {
		sc.SkipLWS()
		if err := l.consume(sc); err != nil {
			return errtrace.Wrap(newParseError(hdr, l.field(), value, err))
		}
	}
	sc.SkipLWS()
	if !sc.EOF() {
		return errtrace.Wrap(newParseError(hdr, "", value,
			errorutil.NewInvalidFormatError("unexpected input %q", util.Ellipsis(sc.Rest(), 32))))
	}
	return nil
}

// layerFunc adapts a consume function with its reset.
type layerFunc struct {
	name  string
	clear func()
	fn    func(sc *grammar.Scanner) error
}

func (l layerFunc) field() string { return l.name }

func (l layerFunc) reset() {
	if l.clear != nil {
		l.clear()
	}
}

func (l layerFunc) consume(sc *grammar.Scanner) error { return errtrace.Wrap(l.fn(sc)) }

// displayNameLayer consumes an optional display name, either a quoted string
// or a sequence of tokens in front of "<". The stored value is unquoted.
type displayNameLayer struct{ dst *string }

func (displayNameLayer) field() string { return "display-name" }

func (l displayNameLayer) reset() { *l.dst = "" }

func (l displayNameLayer) consume(sc *grammar.Scanner) error {
	if sc.Peek() == '"' {
		q, err := sc.Quoted()
		if err != nil {
			return errtrace.Wrap(err)
		}
		*l.dst = grammar.Unquote(q)
		sc.SkipLWS()
		if sc.Peek() != '<' {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("display name must be followed by <URI>"))
		}
		return nil
	}
	if sc.Peek() == '<' {
		return nil
	}

	start := sc.Pos()
	text := sc.Until("<")
	if sc.EOF() {
		// bare URI without display name
		sc.Reset(sc.Source())
		sc.Skip(start)
		return nil
	}
	words := strings.Fields(text)
	for _, w := range words {
		if !grammar.IsToken(w) {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid display name %q", text))
		}
	}
	*l.dst = strings.Join(words, " ")
	return nil
}

// uriSpan consumes a URI enclosed in angle brackets or a bare one up to the first
// of the stop bytes.
func uriSpan(sc *grammar.Scanner, stops string) (string, bool, error) {
	if sc.Accept('<') {
		s := sc.Until(">")
		if !sc.Accept('>') {
			return "", true, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "missing closing '>'"))
		}
		return strings.TrimSpace(s), true, nil
	}
	s := sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && strings.IndexByte(stops, c) < 0 })
	return s, false, nil
}

// sipURILayer consumes a sip or sips URI.
// A bare URI ends at the first ";" since the parameters that follow belong to the header.
type sipURILayer struct {
	dst      **uri.SIP
	optional bool
}

func (sipURILayer) field() string { return "uri" }

func (l sipURILayer) reset() { *l.dst = nil }

func (l sipURILayer) consume(sc *grammar.Scanner) error {
	s, _, err := uriSpan(sc, ";,")
	if err != nil {
		return errtrace.Wrap(err)
	}
	if s == "" {
		if l.optional {
			return nil
		}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyValue, "missing URI"))
	}
	u, err := uri.ParseSIP(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*l.dst = u
	return nil
}

// absURILayer consumes an absolute URI of any scheme enclosed in angle brackets.
type absURILayer struct{ dst *uri.URI }

func (absURILayer) field() string { return "uri" }

func (l absURILayer) reset() { *l.dst = nil }

func (l absURILayer) consume(sc *grammar.Scanner) error {
	s, bracketed, err := uriSpan(sc, ";,")
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !bracketed {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("URI must be enclosed in angle brackets"))
	}
	if s == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyValue, "missing URI"))
	}
	u, err := uri.Parse(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*l.dst = u
	return nil
}

// tokenLayer consumes a single token, e.g. an option tag or a media type.
type tokenLayer struct {
	name string
	dst  *string
	test func(s string) bool
}

func (l tokenLayer) field() string { return l.name }

func (l tokenLayer) reset() { *l.dst = "" }

func (l tokenLayer) consume(sc *grammar.Scanner) error {
	var s string
	if l.test == nil {
		s = sc.Token()
	} else {
		s = sc.TakeWhile(func(c byte) bool { return !grammar.IsLWSChar(c) && c != ';' && c != ',' })
		if s != "" && !l.test(s) {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid %s %q", l.name, s))
		}
	}
	if s == "" {
		if !sc.EOF() {
			return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid %s at %q", l.name, util.Ellipsis(sc.Rest(), 16)))
		}
		return errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyValue, l.name))
	}
	*l.dst = s
	return nil
}

// literalLayer consumes a fixed separator character, e.g. "/" in a media type.
type literalLayer byte

func (l literalLayer) field() string { return strconv.QuoteRune(rune(l)) }

func (literalLayer) reset() {}

func (l literalLayer) consume(sc *grammar.Scanner) error {
	if !sc.Accept(byte(l)) {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("expected %q", rune(l)))
	}
	return nil
}

// uintLayer consumes an unsigned decimal number not greater than max.
// Values outside of the domain fail with rangeErr.
type uintLayer struct {
	name     string
	set      func(v uint64)
	max      uint64
	rangeErr error
}

func (l uintLayer) field() string { return l.name }

func (l uintLayer) reset() { l.set(0) }

func (l uintLayer) consume(sc *grammar.Scanner) error {
	neg := sc.Accept('-')
	digits := sc.TakeWhile(grammar.IsDigit)
	if digits == "" {
		return errtrace.Wrap(errorutil.NewInvalidFormatError("invalid %s at %q", l.name, util.Ellipsis(sc.Rest(), 16)))
	}
	if neg {
		return errtrace.Wrap(errorutil.NewWrapperError(l.rangeErr, "negative %s -%s", l.name, digits))
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > l.max {
		return errtrace.Wrap(errorutil.NewWrapperError(l.rangeErr, "%s %s exceeds %d", l.name, digits, l.max))
	}
	l.set(v)
	return nil
}

// commentLayer consumes an optional comment, stored without the outer parentheses.
type commentLayer struct{ dst *string }

func (commentLayer) field() string { return "comment" }

func (l commentLayer) reset() { *l.dst = "" }

func (l commentLayer) consume(sc *grammar.Scanner) error {
	if sc.Peek() != '(' {
		return nil
	}
	c, err := sc.Comment()
	if err != nil {
		return errtrace.Wrap(err)
	}
	*l.dst = c[1 : len(c)-1]
	return nil
}

// textLayer consumes the rest of the value as free text.
type textLayer struct{ dst *string }

func (textLayer) field() string { return "text" }

func (l textLayer) reset() { *l.dst = "" }

func (l textLayer) consume(sc *grammar.Scanner) error {
	*l.dst = strings.TrimRight(sc.Rest(), " \t")
	sc.Skip(len(sc.Rest()))
	return nil
}
