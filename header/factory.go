package header

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/syncutil"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Constructor creates an empty header.
type Constructor func() Header

type hdrCtor struct {
	new   Constructor
	group func() groupHeader
}

// newEmpty returns a set up header, so that reading it never mutates it.
func newEmpty[T any, H interface {
	*T
	Header
}]() Header {
	hdr := H(new(T))
	hdr.Parse("") //nolint:errcheck
	return hdr
}

func single[T any, H interface {
	*T
	Header
}]() hdrCtor {
	return hdrCtor{new: newEmpty[T, H]}
}

func multi[T any, H interface {
	*T
	Header
}]() hdrCtor {
	return hdrCtor{
		new:   newEmpty[T, H],
		group: func() groupHeader { return &Group[T, H]{} },
	}
}

func auth[T any, H interface {
	*T
	Header
}]() hdrCtor {
	return hdrCtor{
		new:   newEmpty[T, H],
		group: func() groupHeader { return &AuthGroup[T, H]{} },
	}
}

var builtinHdrs map[string]hdrCtor

func init() {
	builtinHdrs = map[string]hdrCtor{
		"accept":              multi[Accept](),
		"accept-encoding":     multi[AcceptEncoding](),
		"accept-language":     multi[AcceptLanguage](),
		"alert-info":          multi[AlertInfo](),
		"allow":               multi[Allow](),
		"authentication-info": single[AuthenticationInfo](),
		"authorization":       auth[Authorization](),
		"call-id":             single[CallID](),
		"call-info":           multi[CallInfo](),
		"contact":             multi[Contact](),
		"content-disposition": single[ContentDisposition](),
		"content-encoding":    multi[ContentEncoding](),
		"content-language":    multi[ContentLanguage](),
		"content-length":      single[ContentLength](),
		"content-type":        single[ContentType](),
		"cseq":                single[CSeq](),
		"date":                single[Date](),
		"error-info":          multi[ErrorInfo](),
		"expires":             single[Expires](),
		"from":                single[From](),
		"in-reply-to":         multi[InReplyTo](),
		"max-forwards":        single[MaxForwards](),
		"mime-version":        single[MIMEVersion](),
		"min-expires":         single[MinExpires](),
		"organization":        single[Organization](),
		"priority":            single[Priority](),
		"proxy-authenticate":  auth[ProxyAuthenticate](),
		"proxy-authorization": auth[ProxyAuthorization](),
		"proxy-require":       multi[ProxyRequire](),
		"record-route":        multi[RecordRoute](),
		"reply-to":            single[ReplyTo](),
		"require":             multi[Require](),
		"retry-after":         single[RetryAfter](),
		"route":               multi[Route](),
		"server":              single[Server](),
		"subject":             single[Subject](),
		"supported":           multi[Supported](),
		"timestamp":           single[Timestamp](),
		"to":                  single[To](),
		"unsupported":         multi[Unsupported](),
		"user-agent":          single[UserAgent](),
		"via":                 multi[Via](),
		"warning":             multi[Warning](),
		"www-authenticate":    auth[WWWAuthenticate](),
	}
}

var customHdrs syncutil.RWMap[string, Constructor]

func ctorKey(name Name) string { return util.LCase(string(CanonicName(name))) }

// Register registers a constructor for the header name, it takes precedence over the built-in headers.
// Repeated values of registered headers are not combined into groups.
func Register(name Name, ctor Constructor) error {
	if !CanonicName(name).IsValid() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid header name %q", name))
	}
	if ctor == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil constructor"))
	}
	customHdrs.Set(ctorKey(name), ctor)
	return nil
}

// Unregister removes the constructor registered for the header name and reports whether it existed.
func Unregister(name Name) bool {
	return customHdrs.Delete(ctorKey(name))
}

// New creates an empty header by its long or compact name.
// Names without a dedicated type produce an [Extension].
func New(name Name) (Header, error) {
	name = CanonicName(name)
	if !name.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidFormatError("invalid header name %q", name))
	}
	if ctor, ok := customHdrs.Get(ctorKey(name)); ok {
		return ctor(), nil
	}
	if c, ok := builtinHdrs[ctorKey(name)]; ok {
		return c.new(), nil
	}
	return &Extension{Name: name}, nil
}

func newGroup(name Name) (groupHeader, error) {
	if c, ok := builtinHdrs[ctorKey(name)]; ok && c.group != nil {
		return c.group(), nil
	}
	return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotMultiple, "%s", name))
}

// Parse parses a single header line "Name: value".
// A line of a header that allows multiple values may carry a comma separated list:
// a list of several values is returned as a [Group], or an [AuthGroup] for the security headers.
func Parse(line string) (Header, error) {
	line = grammar.ReplaceFolding(line)
	rawName, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil, errtrace.Wrap(&ParseError{
			Field: "name",
			Input: line,
			Err:   errorutil.NewInvalidFormatError("missing colon"),
		})
	}

	name := Name(strings.Trim(rawName, " \t"))
	hdr, err := New(name)
	if err != nil {
		return nil, errtrace.Wrap(&ParseError{Header: name, Field: "name", Input: line, Err: err})
	}

	if _, ok := customHdrs.Get(ctorKey(name)); !ok && hdr.AllowMultiple() {
		if g, err := newGroup(hdr.CanonicName()); err == nil {
			if err := g.Parse(value); err != nil {
				return nil, errtrace.Wrap(err)
			}
			if g.Len() == 1 {
				return g.elems()[0], nil
			}
			if g.Len() > 1 {
				return g, nil
			}
			return hdr, nil
		}
	}

	if err := hdr.Parse(value); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return hdr, nil
}

// ParseBlock parses a block of header lines separated with CRLF or LF, up to the first empty line.
// Folded lines are unfolded, repeated headers are combined as by [Headers.Append].
// Lines that fail to parse are skipped, their errors are joined in the returned error
// along with the headers that were parsed.
func ParseBlock(text string) (*Headers, error) {
	text = grammar.ReplaceFolding(text)

	var (
		hs   Headers
		errs []error
	)
	for num, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.Trim(line, " \t") == "" {
			if hs.Len() > 0 || len(errs) > 0 {
				break
			}
			continue
		}

		hdr, err := Parse(line)
		if err == nil {
			err = hs.Append(hdr)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", num+1, err))
		}
	}
	return &hs, errtrace.Wrap(errorutil.Join(errs...))
}
