// Package grammar implements the lexical layer of the RFC 3261 message-header grammar.
// The rules are ABNF operators, the predicates and the cursor based scanner run them
// against header values.
package grammar

//go:generate go tool errtrace -w .

import (
	"net"
	"strings"
)

// Byteseq is a string or a byte slice holding UTF-8 text.
type Byteseq interface {
	~string | ~[]byte
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

var tokenChars = [256]bool{
	'-': true, '.': true, '!': true, '%': true, '*': true,
	'_': true, '+': true, '`': true, '\'': true, '~': true,
}

func init() {
	for c := '0'; c <= '9'; c++ {
		tokenChars[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		tokenChars[c] = true
		tokenChars[c-'a'+'A'] = true
	}
}

// IsTokenChar checks the token character class.
func IsTokenChar(c byte) bool { return tokenChars[c] }

// IsWSP reports whether c is SP or HTAB.
func IsWSP(c byte) bool { return c == ' ' || c == '\t' }

// IsLWSChar reports whether c is SP, HTAB, CR or LF.
func IsLWSChar(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsLHexChar reports whether c is a lower-case hex digit.
func IsLHexChar(c byte) bool { return IsDigit(c) || 'a' <= c && c <= 'f' }

func isAlphanum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func IsToken[T Byteseq](s T) bool { return matchAll(token, s) }

// IsMediaToken is the relaxed token test used for media type parameter values.
// It accepts any visible character except the ones that delimit parameters and quoted strings.
func IsMediaToken[T Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if c <= ' ' || c == 0x7f || c == ';' || c == ',' || c == '"' || c == '\\' {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits[T Byteseq](s T) bool { return matchAll(digits, s) }

// IsLHex checks the LHEX rule repeated at least once.
func IsLHex[T Byteseq](s T) bool { return matchAll(lhexRun, s) }

// IsLHexQuoted checks for a quoted string carrying only LHEX characters.
func IsLHexQuoted[T Byteseq](s T) bool { return matchAll(lhexQuoted, s) }

func IsQuoted[T Byteseq](s T) bool { return matchAll(quotedString, s) }

func isFoldAt(s string, i int) bool {
	if s[i] == '\r' {
		i++
		if i >= len(s) || s[i] != '\n' {
			return false
		}
	}
	return i+1 < len(s) && IsWSP(s[i+1])
}

func IsHost[T Byteseq](s T) bool {
	if !matchAll(host, s) {
		return false
	}
	if h := string(s); h[0] == '[' {
		ip := net.ParseIP(h[1 : len(h)-1])
		return ip != nil && ip.To4() == nil
	}
	return true
}

// Quote wraps s into double quotes, escaping backslashes and double quotes.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := range len(s) {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote removes surrounding double quotes and resolves quoted pairs.
// Strings that are not quoted-string are returned as is.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	s = s[1 : len(s)-1]
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// ReplaceFolding collapses every folded line break (optional whitespace, CRLF or LF and
// at least one SP/HTAB) into a single SP. Unfolded line breaks are kept as is.
func ReplaceFolding(s string) string {
	if strings.IndexByte(s, '\n') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '\r' || c == '\n') && isFoldAt(s, i) {
			out := strings.TrimRight(sb.String(), " \t")
			sb.Reset()
			sb.WriteString(out)
			sb.WriteByte(' ')
			if c == '\r' {
				i++
			}
			for i+1 < len(s) && IsWSP(s[i+1]) {
				i++
			}
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
