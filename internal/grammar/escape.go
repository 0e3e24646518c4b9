package grammar

import "bytes"

// charSet is a byte class lookup table.
type charSet [256]bool

func newCharSet(base *charSet, extra string) *charSet {
	var cs charSet
	if base != nil {
		cs = *base
	}
	for i := range len(extra) {
		cs[extra[i]] = true
	}
	return &cs
}

var (
	// unreserved = alphanum / mark (RFC 3261 Section 25.1)
	unreserved = func() *charSet {
		cs := newCharSet(nil, "-_.!~*'()")
		for c := range 256 {
			if isAlphanum(byte(c)) {
				cs[c] = true
			}
		}
		return cs
	}()
	userUnreserved   = newCharSet(unreserved, "&=+$,;?/")
	passwdUnreserved = newCharSet(unreserved, "&=+$,")
	paramUnreserved  = newCharSet(unreserved, "[]/:&+$")
	hnvUnreserved    = newCharSet(unreserved, "[]/?:+$")
)

func IsCharUnreserved(c byte) bool { return unreserved[c] }

// IsURIUserCharUnreserved checks the characters allowed unescaped in the user part of a SIP URI.
func IsURIUserCharUnreserved(c byte) bool { return userUnreserved[c] }

func IsURIPasswdCharUnreserved(c byte) bool { return passwdUnreserved[c] }

// IsURIParamCharUnreserved checks the characters allowed unescaped in URI parameter names and values.
func IsURIParamCharUnreserved(c byte) bool { return paramUnreserved[c] }

// IsURIHeaderCharUnreserved checks the characters allowed unescaped in URI header components.
func IsURIHeaderCharUnreserved(c byte) bool { return hnvUnreserved[c] }

// Unescape decodes every "%" HEXDIG HEXDIG triplet, malformed triplets are kept as is.
func Unescape[T Byteseq](s T) T {
	if bytes.IndexByte([]byte(s), '%') < 0 {
		return s
	}
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isEscapedAt(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return T(b.Bytes())
}

// Escape percent-encodes every byte matched by shouldEscape.
// Triplets that are already escaped are kept, a nil shouldEscape keeps only unreserved characters.
func Escape[T Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !unreserved[c] }
	}

	const hexDigits = "0123456789ABCDEF"
	var b bytes.Buffer
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isEscapedAt(s, i):
			b.Write([]byte{c, s[i+1], s[i+2]})
			i += 2
		case shouldEscape(c):
			b.Write([]byte{'%', hexDigits[c>>4], hexDigits[c&0x0f]})
		default:
			b.WriteByte(c)
		}
	}
	return T(b.Bytes())
}

func isEscapedAt[T Byteseq](s T, i int) bool {
	return s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])
}

func isHex(c byte) bool { return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F' }

func unhex(c byte) byte {
	switch {
	case IsDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
