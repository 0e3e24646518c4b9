package uri

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Any is an absolute URI of a scheme other than sip and sips, e.g. http, mailto, tel or urn.
// Such URIs appear in Call-Info, Alert-Info, Error-Info and in name-addr of the address headers.
type Any struct {
	url.URL
}

// ParseAny parses an absolute URI from the given input src (string or []byte).
func ParseAny[T grammar.Byteseq](src T) (*Any, error) {
	if len(src) == 0 {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}
	u, err := url.Parse(string(src))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, err))
	}
	if u.Scheme == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMalformedInput, "missing scheme in %q", string(src)))
	}
	return &Any{URL: *u}, nil
}

func (u *Any) Scheme() string {
	if u == nil {
		return ""
	}
	return u.URL.Scheme
}

// RenderTo writes the URI to the provided writer.
func (u *Any) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.URL.String()))
}

// Render returns the string representation of the URI.
func (u *Any) Render(_ *RenderOptions) string {
	if u == nil {
		return ""
	}
	return u.URL.String()
}

func (u *Any) String() string { return u.Render(nil) }

// Format prints the URI text, %#v prints the Go syntax of the underlying URL.
func (u *Any) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'q':
		io.WriteString(f, strconv.Quote(u.String())) //nolint:errcheck
	case verb == 'v' && f.Flag('#'):
		type fields Any
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*fields)(u))
	default:
		io.WriteString(f, u.String()) //nolint:errcheck
	}
}

// Equal reports whether both URIs address the same resource.
// Scheme and host are compared case-insensitively, the rest of the URI as is.
func (u *Any) Equal(val any) bool {
	var other *Any
	switch v := val.(type) {
	case Any:
		other = &v
	case *Any:
		other = v
	default:
		return false
	}
	if u == nil || other == nil {
		return u == other
	}
	return util.EqFold(u.URL.Scheme, other.URL.Scheme) &&
		util.EqFold(u.Host, other.Host) &&
		u.User.String() == other.User.String() &&
		u.Opaque == other.Opaque &&
		u.EscapedPath() == other.EscapedPath() &&
		u.RawQuery == other.RawQuery &&
		u.Fragment == other.Fragment
}

// IsValid reports whether the URI has a scheme and a non-empty hier-part or opaque part.
func (u *Any) IsValid() bool {
	if u == nil || u.URL.Scheme == "" {
		return false
	}
	for _, s := range [...]string{u.Opaque, u.Host, u.Path, u.RawPath} {
		if util.TrimSP(s) != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the URI.
func (u *Any) Clone() URI {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		if pwd, ok := u.User.Password(); ok {
			c.User = url.UserPassword(u.User.Username(), pwd)
		} else {
			c.User = url.User(u.User.Username())
		}
	}
	return &c
}

func (u *Any) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Any) UnmarshalText(text []byte) error {
	parsed, err := ParseAny(text)
	if err != nil {
		*u = Any{}
		return errtrace.Wrap(err)
	}
	*u = *parsed
	return nil
}
