package grammar

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// maxCommentDepth limits the nesting of comments accepted by the comment rule.
const maxCommentDepth = 8

func lit(s string) abnf.Operator { return abnf.Literal(s, []byte(s)) }

func rng(key string, lo, hi byte) abnf.Operator {
	return abnf.Range(key, []byte{lo}, []byte{hi})
}

// RFC 3261 section 25.1 lexical rules.
var (
	digit    = rng("DIGIT", '0', '9')
	alpha    = abnf.Alt("ALPHA", rng("ALPHA", 'A', 'Z'), rng("ALPHA", 'a', 'z'))
	alphanum = abnf.Alt("alphanum", alpha, digit)
	hexdig   = abnf.Alt("HEXDIG", digit, rng("HEXDIG", 'a', 'f'), rng("HEXDIG", 'A', 'F'))
	lhex     = abnf.Alt("LHEX", digit, rng("LHEX", 'a', 'f'))
	wsp      = abnf.Alt("WSP", lit(" "), lit("\t"))
	dquote   = lit(`"`)
	lineEnd  = abnf.AltFirst("CRLF", lit("\r\n"), lit("\n"))

	// fold is a line break followed by whitespace, the remaining whitespace is left to the caller rule.
	fold = abnf.Concat("fold", lineEnd, wsp)

	lwsRun = abnf.Repeat1Inf("LWS", abnf.AltFirst("LWS", wsp, lit("\r"), lit("\n")))

	tokenChar = abnf.Alt("token-char",
		alphanum,
		lit("-"), lit("."), lit("!"), lit("%"), lit("*"),
		lit("_"), lit("+"), lit("`"), lit("'"), lit("~"),
	)
	token = abnf.Repeat1Inf("token", tokenChar)

	digits = abnf.Repeat1Inf("digits", digit)

	lhexRun    = abnf.Repeat1Inf("lhex", lhex)
	lhexQuoted = abnf.Concat("lhex-quoted", dquote, lhexRun, dquote)

	utf8NonASCII = rng("UTF8-NONASCII", 0x80, 0xff)

	quotedPair = abnf.Concat("quoted-pair",
		lit(`\`),
		abnf.Alt("quoted-pair-char", rng("", 0x00, 0x09), rng("", 0x0b, 0x0c), rng("", 0x0e, 0x7f)),
	)

	qdtext = abnf.AltFirst("qdtext",
		wsp,
		lit("!"),
		rng("qdtext", 0x23, 0x5b),
		rng("qdtext", 0x5d, 0x7e),
		utf8NonASCII,
		fold,
	)

	quotedString = abnf.Concat("quoted-string",
		dquote,
		abnf.Repeat0Inf("quoted-string-text", abnf.AltFirst("quoted-string-text", qdtext, quotedPair)),
		dquote,
	)

	ctext = abnf.AltFirst("ctext",
		wsp,
		rng("ctext", 0x21, 0x27),
		rng("ctext", 0x2a, 0x5b),
		rng("ctext", 0x5d, 0x7e),
		utf8NonASCII,
		fold,
	)

	comment = commentRule(maxCommentDepth)

	labelTail = abnf.Optional("label-tail",
		abnf.Concat("label-tail",
			abnf.Repeat0Inf("label-mid", abnf.Alt("label-mid", alphanum, lit("-"))),
			alphanum,
		),
	)
	domainlabel = abnf.Concat("domainlabel", alphanum, labelTail)
	toplabel    = abnf.Concat("toplabel", alpha, labelTail)
	hostname    = abnf.Concat("hostname",
		abnf.Repeat0Inf("domainlabels", abnf.Concat("domainlabel-dot", domainlabel, lit("."))),
		toplabel,
		abnf.Optional("hostname-dot", lit(".")),
	)

	ipv4Octet   = abnf.Repeat("ipv4-octet", 1, 3, digit)
	ipv4address = abnf.Concat("IPv4address",
		ipv4Octet, lit("."), ipv4Octet, lit("."), ipv4Octet, lit("."), ipv4Octet,
	)
	// ipv6reference accepts the character set of IPv6reference, the address itself is checked by IsHost.
	ipv6reference = abnf.Concat("IPv6reference",
		lit("["),
		abnf.Repeat1Inf("IPv6address", abnf.Alt("IPv6address", hexdig, lit(":"), lit("."))),
		lit("]"),
	)

	host = abnf.Alt("host", hostname, ipv4address, ipv6reference)
)

// commentRule builds the comment rule allowing up to depth levels of nested comments.
func commentRule(depth int) abnf.Operator {
	content := abnf.AltFirst("comment-text", ctext, quotedPair)
	op := abnf.Concat("comment", lit("("), abnf.Repeat0Inf("comment-text", content), lit(")"))
	for range depth {
		content = abnf.AltFirst("comment-text", ctext, quotedPair, op)
		op = abnf.Concat("comment", lit("("), abnf.Repeat0Inf("comment-text", content), lit(")"))
	}
	return op
}

// matchLen runs op at the start of s and returns the length of the longest match or -1.
func matchLen(op abnf.Operator, s []byte) int {
	if len(s) == 0 {
		return -1
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return -1
	}
	best := ns.Best()
	if best == nil {
		return -1
	}
	return best.Len()
}

func matchAll[T Byteseq](op abnf.Operator, s T) bool {
	return len(s) > 0 && matchLen(op, []byte(s)) == len(s)
}
