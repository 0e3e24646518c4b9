package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
	"github.com/ghettovoice/sipheader/uri"
)

// Addressed is the common part of the headers carrying a name-addr:
// an optional display name, a SIP URI and parameters.
//
//	"Mr. Watson" <sip:watson@worcester.bell-telephone.com>;q=0.7
type Addressed struct {
	DisplayName string   // unquoted
	URI         *uri.SIP // nil if unset
	Parameterized
}

func (addr *Addressed) setup(known ...string) {
	addr.Parameterized.setup(";", types.HeaderParam, false, known...)
}

func (addr *Addressed) layers(extra ...layer) []layer {
	return append([]layer{
		displayNameLayer{&addr.DisplayName},
		sipURILayer{dst: &addr.URI},
		&addr.Parameterized,
	}, extra...)
}

func (addr *Addressed) renderValueTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if addr.DisplayName != "" {
		cw.Fprint(grammar.Quote(addr.DisplayName), " ")
	}
	cw.WriteString("<")
	if addr.URI != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.URI.RenderTo(w, nil)) })
	}
	cw.WriteString(">")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.renderParams(w, true)) })
	return errtrace.Wrap2(cw.Result())
}

func (addr *Addressed) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	addr.renderValueTo(sb) //nolint:errcheck
	return sb.String()
}

func (addr *Addressed) clone() Addressed {
	return Addressed{
		DisplayName:   addr.DisplayName,
		URI:           cloneSIP(addr.URI),
		Parameterized: addr.Parameterized.clone(),
	}
}

// equal compares URIs and parameters, the display name is not significant.
func (addr *Addressed) equal(other *Addressed) bool {
	return equalSIP(addr.URI, other.URI) && addr.equalParams(&other.Parameterized)
}

func (addr *Addressed) isValid() bool {
	return addr.URI != nil && addr.URI.IsValid() && addr.isValidParams()
}

func cloneSIP(u *uri.SIP) *uri.SIP {
	if u == nil {
		return nil
	}
	u2, _ := u.Clone().(*uri.SIP)
	return u2
}

func equalSIP(u1, u2 *uri.SIP) bool {
	if u1 == nil || u2 == nil {
		return u1 == u2
	}
	return u1.Equal(u2)
}

func cloneURI(u uri.URI) uri.URI {
	if u == nil {
		return nil
	}
	return u.Clone()
}

func equalURI(u1, u2 uri.URI) bool {
	if u1 == nil || u2 == nil {
		return u1 == nil && u2 == nil
	}
	return u1.Equal(u2)
}
