package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipheader/internal/ioutil"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
	"github.com/ghettovoice/sipheader/uri"
)

// AbsoluteURIParams is the common part of the headers carrying an absolute URI
// in angle brackets followed by parameters.
//
//	<http://www.example.com/alice/photo.jpg>;purpose=icon
type AbsoluteURIParams struct {
	URI uri.URI
	Parameterized
}

func (u *AbsoluteURIParams) setup(known ...string) {
	u.Parameterized.setup(";", types.HeaderParam, false, known...)
}

func (u *AbsoluteURIParams) layers(extra ...layer) []layer {
	return append([]layer{absURILayer{&u.URI}, &u.Parameterized}, extra...)
}

func (u *AbsoluteURIParams) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	cw := ioutil.GetCountingWriter(sb)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("<")
	if u.URI != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.URI.RenderTo(w, nil)) })
	}
	cw.WriteString(">")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.renderParams(w, true)) })
	return sb.String()
}

func (u *AbsoluteURIParams) clone() AbsoluteURIParams {
	return AbsoluteURIParams{URI: cloneURI(u.URI), Parameterized: u.Parameterized.clone()}
}

func (u *AbsoluteURIParams) equal(other *AbsoluteURIParams) bool {
	return equalURI(u.URI, other.URI) && u.equalParams(&other.Parameterized)
}

func (u *AbsoluteURIParams) isValid() bool {
	return u.URI != nil && u.URI.IsValid() && u.isValidParams()
}
