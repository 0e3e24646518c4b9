package header

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Server represents the Server header field.
// The Server header field contains information about the software used by the UAS to handle the request.
type Server ServerValue

func (hdr *Server) base() *ServerValue {
	return (*ServerValue)(hdr)
}

// CanonicName returns the canonical name of the header.
func (*Server) CanonicName() Name { return "Server" }

// CompactName returns the compact name of the header (Server has no compact form).
func (*Server) CompactName() Name { return "Server" }

// AllowMultiple reports whether the header may be repeated in a message.
func (*Server) AllowMultiple() bool { return false }

// Parse parses the header value, an empty value resets the header.
func (hdr *Server) Parse(value string) error {
	return errtrace.Wrap(parseValue(hdr.CanonicName(), value, hdr.base().layers()...))
}

// RenderTo writes the header to the provided writer.
func (hdr *Server) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the string representation of the header.
func (hdr *Server) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}
	return render(hdr, opts)
}

// RenderValue returns the header value without the name prefix.
func (hdr *Server) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.base().renderValue()
}

// String returns the string representation of the header value.
func (hdr *Server) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Server) Format(f fmt.State, verb rune) { formatHeader(f, verb, hdr) }

// Clone returns a deep copy of the header.
func (hdr *Server) Clone() Header {
	if hdr == nil {
		return nil
	}
	c := Server(hdr.base().clone())
	return &c
}

// Equal compares this header with another for equality.
func (hdr *Server) Equal(val any) bool {
	var other *Server
	switch v := val.(type) {
	case Server:
		other = &v
	case *Server:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}
	return hdr.base().equal(other.base())
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Server) IsValid() bool { return hdr != nil && hdr.base().isValid() }

// MarshalJSON implements [json.Marshaler].
func (hdr *Server) MarshalJSON() ([]byte, error) { return errtrace.Wrap2(ToJSON(hdr)) }

// UnmarshalJSON implements [json.Unmarshaler].
func (hdr *Server) UnmarshalJSON(data []byte) error { return errtrace.Wrap(unmarshalJSON(data, hdr)) }
