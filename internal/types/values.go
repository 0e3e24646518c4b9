package types

import (
	"maps"
	"slices"

	"github.com/ghettovoice/sipheader/internal/util"
)

// Values holds the header components of a SIP URI ("?subject=x&priority=urgent").
// Names are stored lower-cased, a name may carry several values.
type Values map[string][]string

// Get returns the values of the header component.
func (vals Values) Get(name string) []string { return vals[util.LCase(name)] }

// Has checks whether the header component is present.
func (vals Values) Has(name string) bool {
	_, ok := vals[util.LCase(name)]
	return ok
}

// Set replaces the values of the header component.
func (vals Values) Set(name, value string) Values {
	vals[util.LCase(name)] = []string{value}
	return vals
}

// Append adds a value to the header component.
func (vals Values) Append(name, value string) Values {
	name = util.LCase(name)
	vals[name] = append(vals[name], value)
	return vals
}

// Del removes the header component.
func (vals Values) Del(name string) Values {
	delete(vals, util.LCase(name))
	return vals
}

// Names returns the header component names in ascending order.
func (vals Values) Names() []string { return slices.Sorted(maps.Keys(vals)) }

// Clone returns a deep copy.
func (vals Values) Clone() Values {
	if len(vals) == 0 {
		return nil
	}
	out := make(Values, len(vals))
	for k, vs := range vals {
		out[k] = slices.Clone(vs)
	}
	return out
}

// Equal reports whether both sets hold the same components.
// Values are compared case-insensitively, the order of values of a repeated name matters.
func (vals Values) Equal(other Values) bool {
	if len(vals) != len(other) {
		return false
	}
	for k, vs := range vals {
		ovs, ok := other[k]
		if !ok || !slices.EqualFunc(vs, ovs, util.EqFold[string, string]) {
			return false
		}
	}
	return true
}
