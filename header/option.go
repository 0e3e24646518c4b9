package header

import (
	"github.com/ghettovoice/sipheader/internal/grammar"
	"github.com/ghettovoice/sipheader/internal/types"
	"github.com/ghettovoice/sipheader/internal/util"
)

// Option is the common part of the headers carrying a single token,
// such as an option tag, a method or a content coding.
// A list of values is represented by a [Group] of such headers.
type Option struct {
	Value string
}

func (o *Option) layers() []layer {
	return []layer{tokenLayer{name: "value", dst: &o.Value}}
}

func (o *Option) renderValue() string { return o.Value }

func (o *Option) clone() Option { return *o }

func (o *Option) equal(other *Option) bool { return util.EqFold(o.Value, other.Value) }

func (o *Option) isValid() bool { return grammar.IsToken(o.Value) }

// OptionParams is the common part of the headers carrying a single token
// followed by parameters, e.g. a content coding with a q-value.
//
//	gzip;q=0.5
type OptionParams struct {
	Value string
	Parameterized
}

func (o *OptionParams) setup(known ...string) {
	o.Parameterized.setup(";", types.HeaderParam, false, known...)
}

func (o *OptionParams) layers(extra ...layer) []layer {
	return append([]layer{tokenLayer{name: "value", dst: &o.Value}, &o.Parameterized}, extra...)
}

func (o *OptionParams) renderValue() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(o.Value)
	o.renderParams(sb, true) //nolint:errcheck
	return sb.String()
}

func (o *OptionParams) clone() OptionParams {
	return OptionParams{Value: o.Value, Parameterized: o.Parameterized.clone()}
}

func (o *OptionParams) equal(other *OptionParams) bool {
	return util.EqFold(o.Value, other.Value) && o.equalParams(&other.Parameterized)
}

func (o *OptionParams) isValid() bool { return grammar.IsToken(o.Value) && o.isValidParams() }
