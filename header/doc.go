// Package header provides typed SIP header fields defined by RFC 3261.
//
// Every header field type parses its value from the wire form, validates it,
// renders it back, compares it with another value of the same type and clones it.
// Parsing a value replaces the whole state of the header, an empty value resets it.
//
// # Overview
//
// All header types implement the [Header] interface. Related headers share a family struct
// holding their fields: [Addressed] for From, To, Contact, Route and friends,
// [MediaType] for Content-Type and Accept, [SchemeAuth] with [Credentials] and [Challenge]
// for the security headers, [Seconds], [Option], [ServerValue] and others.
// Header names without a dedicated type are handled by [Extension].
//
// # Parsing
//
// Use [Parse] to parse a header line and [ParseBlock] to parse a block of lines:
//
//	hdr, err := header.Parse("From: \"Alice\" <sip:alice@atlanta.com>;tag=1928301774")
//	hs, err := header.ParseBlock("Via: SIP/2.0/UDP pc33.atlanta.com\r\nMax-Forwards: 70\r\n")
//
// A typed header may also parse just the value:
//
//	var from header.From
//	err := from.Parse(`"Alice" <sip:alice@atlanta.com>;tag=1928301774`)
//
// Folded lines (CRLF followed by whitespace) are replaced by a single space before parsing.
// Failures are reported as [*ParseError] wrapping one of the package sentinels,
// e.g. [ErrInvalidFormat] or [ErrOutOfRange].
//
// # Header Naming and Canonicalization
//
// [CanonicName] converts a long or compact name to the canonical form:
//
//	"c" → "Content-Type"
//	"e" → "Content-Encoding"
//	"f" → "From"
//	"i" → "Call-ID"
//	"k" → "Supported"
//	"l" → "Content-Length"
//	"m" → "Contact"
//	"s" → "Subject"
//	"t" → "To"
//	"v" → "Via"
//
// # Parameters
//
// Parameterized headers embed [Parameterized]. Parameters whose names the header knows
// (e.g. tag, branch, q, expires) are kept apart from the generic ones and rendered first.
// A known name never appears among the generic parameters: adding such a generic parameter
// fails with [ErrDuplicateItem]. Headers that accept only their own parameters,
// such as Authentication-Info, reject generic ones with [ErrGenericParamsNotAllowed].
//
// # Multiple Values
//
// Values of headers that may be repeated are collected by [Group], which parses and renders
// a comma separated list and compares values regardless of their order.
// The security headers (Authorization, Proxy-Authorization, WWW-Authenticate, Proxy-Authenticate)
// cannot be combined with commas, their values are collected by [AuthGroup],
// which keeps one header line per value and compares values in order.
//
// [Headers] is the ordered collection of header fields of a message,
// it holds at most one field per name.
//
// # Custom Headers
//
// [Register] installs a constructor for an extension header name, [Unregister] removes it.
// The registry is safe for concurrent use:
//
//	func init() {
//		header.Register("X-Custom", func() header.Header { return new(MyHeader) })
//	}
//
// # Rendering
//
//	str := hdr.Render(nil)          // "Name: value"
//	val := hdr.RenderValue()        // "value"
//	hdr.RenderTo(w, &header.RenderOptions{Compact: true})
//
// # JSON Serialization
//
// Headers are encoded as {"name":"<CanonicName>","value":"<RenderValue>"} by [ToJSON]
// and decoded by [FromJSON], which parses the value again.
//
// # Concurrency
//
// Header values are not safe for concurrent mutation. Concurrent reads are safe for headers
// returned by [New], [Parse] and [ParseBlock] and for headers after their first Parse call.
// A parameterized header declared as a zero value registers its known parameters on the first
// method call, so it must be parsed or read once before it is shared between goroutines.
package header
