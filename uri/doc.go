// Package uri provides parsing, rendering and comparison of the URIs carried by SIP header fields.
//
// # Overview
//
// Two URI types are implemented:
//
//   - [SIP]: SIP and SIPS URIs (sip:, sips:) as defined in RFC 3261 Section 19.1. Supports user credentials,
//     host:port addressing, ordered URI parameters and URI headers.
//   - [Any]: a generic absolute URI based on [net/url.URL] for every other scheme (http:, mailto:, urn:...),
//     used by the Alert-Info, Call-Info and Error-Info header fields.
//
// Both types implement the [URI] interface.
//
// # Parsing
//
//	u, err := uri.Parse("sip:alice@atlanta.com;transport=tcp")
//	// u is *uri.SIP
//
//	u, err = uri.Parse("http://www.example.com/sounds/moo.wav")
//	// u is *uri.Any
//
// Internationalized host names of SIP URIs are converted to their ASCII (punycode) form while parsing.
//
// # Comparison
//
// SIP URI equality follows RFC 3261 Section 19.1.4: the user part is case-sensitive, the host is not,
// special parameters (transport, user, method, maddr, ttl, lr) must match when present in either URI,
// other parameters are compared only when present in both, headers must always match.
//
// # Thread Safety
//
// URI types are not safe for concurrent modification. Use Clone to share a copy across goroutines.
package uri
