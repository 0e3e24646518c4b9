package header

import (
	"strings"

	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// MediaType is the common part of the headers carrying a media type
// with media parameters.
//
//	text/html;level=1
type MediaType struct {
	Type    string
	Subtype string
	Parameterized
}

func (mt *MediaType) setup(known ...string) {
	mt.Parameterized.setup(";", types.MediaParam, false, known...)
}

func (mt *MediaType) layers(extra ...layer) []layer {
	return append([]layer{
		tokenLayer{name: "type", dst: &mt.Type},
		literalLayer('/'),
		tokenLayer{name: "subtype", dst: &mt.Subtype},
		&mt.Parameterized,
	}, extra...)
}

func (mt *MediaType) renderValue() string {
	if mt.Type == "" && mt.Subtype == "" && mt.ParamsLen() == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(mt.Type)
	sb.WriteByte('/')
	sb.WriteString(mt.Subtype)
	mt.renderParams(sb, true) //nolint:errcheck
	return sb.String()
}

// MIMEType returns "type/subtype" in lower case.
func (mt *MediaType) MIMEType() string {
	return strings.ToLower(mt.Type + "/" + mt.Subtype)
}

func (mt *MediaType) clone() MediaType {
	return MediaType{Type: mt.Type, Subtype: mt.Subtype, Parameterized: mt.Parameterized.clone()}
}

func (mt *MediaType) equal(other *MediaType) bool {
	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		mt.equalParams(&other.Parameterized)
}

func (mt *MediaType) isValid() bool {
	return grammar.IsToken(mt.Type) && grammar.IsToken(mt.Subtype) && mt.isValidParams()
}
