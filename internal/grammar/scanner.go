package grammar

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipheader/internal/errorutil"
)

// Scanner is a cursor over a header value.
// Every read advances the cursor, nothing is ever cut out of the source string.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a scanner positioned at the start of s.
func NewScanner(s string) *Scanner { return &Scanner{src: s} }

// Reset repositions the scanner at the start of s.
func (sc *Scanner) Reset(s string) {
	sc.src = s
	sc.pos = 0
}

// EOF reports whether the whole input was consumed.
func (sc *Scanner) EOF() bool { return sc.pos >= len(sc.src) }

// Pos returns the current offset.
func (sc *Scanner) Pos() int { return sc.pos }

// Source returns the whole input.
func (sc *Scanner) Source() string { return sc.src }

// Rest returns the not consumed part of the input.
func (sc *Scanner) Rest() string { return sc.src[sc.pos:] }

// Peek returns the current byte or 0 at the end of input.
func (sc *Scanner) Peek() byte {
	if sc.EOF() {
		return 0
	}
	return sc.src[sc.pos]
}

// Skip moves the cursor n bytes forward.
func (sc *Scanner) Skip(n int) {
	sc.pos = min(sc.pos+n, len(sc.src))
}

// Match runs op at the cursor and consumes its longest match.
func (sc *Scanner) Match(op abnf.Operator) (string, bool) {
	n := matchLen(op, []byte(sc.Rest()))
	if n <= 0 {
		return "", false
	}
	s := sc.src[sc.pos : sc.pos+n]
	sc.pos += n
	return s, true
}

// SkipLWS skips linear whitespace.
func (sc *Scanner) SkipLWS() { sc.Match(lwsRun) }

// Accept consumes c if it is the current byte.
func (sc *Scanner) Accept(c byte) bool {
	if sc.Peek() != c || sc.EOF() {
		return false
	}
	sc.pos++
	return true
}

// HasPrefixFold reports whether the rest of the input starts with prefix, case-insensitively.
func (sc *Scanner) HasPrefixFold(prefix string) bool {
	rest := sc.Rest()
	return len(rest) >= len(prefix) && strings.EqualFold(rest[:len(prefix)], prefix)
}

// AcceptFold consumes prefix if the rest of the input starts with it, case-insensitively.
func (sc *Scanner) AcceptFold(prefix string) bool {
	if !sc.HasPrefixFold(prefix) {
		return false
	}
	sc.pos += len(prefix)
	return true
}

// TakeWhile consumes the longest run of bytes matched by fn.
func (sc *Scanner) TakeWhile(fn func(c byte) bool) string {
	start := sc.pos
	for !sc.EOF() && fn(sc.src[sc.pos]) {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

// Token consumes a token, an empty string means there is none at the cursor.
func (sc *Scanner) Token() string {
	s, _ := sc.Match(token)
	return s
}

// Quoted consumes a quoted string and returns it with the surrounding quotes.
func (sc *Scanner) Quoted() (string, error) {
	s, ok := sc.Match(quotedString)
	if !ok {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "invalid quoted string at %d", sc.pos))
	}
	return s, nil
}

// Comment consumes a parenthesized comment, nested comments included,
// and returns it with the outer parentheses.
func (sc *Scanner) Comment() (string, error) {
	s, ok := sc.Match(comment)
	if !ok {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, "invalid comment at %d", sc.pos))
	}
	return s, nil
}

// Until consumes everything up to the first byte from stops found outside
// of quoted strings and angle brackets. The stop byte itself is not consumed.
func (sc *Scanner) Until(stops string) string {
	start := sc.pos
	sc.pos += indexUnprotected(sc.Rest(), func(s string, i int) int {
		if strings.IndexByte(stops, s[i]) >= 0 {
			return 1
		}
		return 0
	})
	return sc.src[start:sc.pos]
}

// indexUnprotected returns the offset of the first separator match outside of
// quoted strings and angle brackets, or len(s) when there is none.
func indexUnprotected(s string, match func(s string, i int) int) int {
	var inQuote, inAngle bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			if c == '\\' {
				i++
			} else if c == '"' {
				inQuote = false
			}
			continue
		case inAngle:
			if c == '>' {
				inAngle = false
			}
			continue
		}
		if match(s, i) > 0 {
			return i
		}
		switch c {
		case '"':
			inQuote = true
		case '<':
			inAngle = true
		}
	}
	return len(s)
}

// Split slices s into all substrings separated by sep, ignoring separators
// inside quoted strings and angle brackets.
func Split(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}

	var parts []string
	match := func(s string, i int) int {
		if strings.HasPrefix(s[i:], sep) {
			return len(sep)
		}
		return 0
	}
	for {
		i := indexUnprotected(s, match)
		if i == len(s) {
			parts = append(parts, s)
			return parts
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}
