package gtool

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Params is an ordered set of named scalar parameters for one tool
// invocation. Insertion order is preserved so rendered command lines and
// dry-run logs are stable.
type Params struct {
	names  []string
	values map[string]cty.Value
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]cty.Value)}
}

// Set assigns a value to name, appending the name on first assignment.
func (p *Params) Set(name string, v cty.Value) {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = v
}

// SetString assigns a string parameter.
func (p *Params) SetString(name, v string) { p.Set(name, cty.StringVal(v)) }

// SetInt assigns an integer parameter.
func (p *Params) SetInt(name string, v int) { p.Set(name, cty.NumberIntVal(int64(v))) }

// SetFloat assigns a floating-point parameter.
func (p *Params) SetFloat(name string, v float64) { p.Set(name, cty.NumberFloatVal(v)) }

// SetFlag assigns a yes/no parameter, the boolean convention the external
// tools use.
func (p *Params) SetFlag(name string, v bool) {
	if v {
		p.Set(name, cty.StringVal("yes"))
	} else {
		p.Set(name, cty.StringVal("no"))
	}
}

// Get returns the value assigned to name.
func (p *Params) Get(name string) (cty.Value, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Len returns the number of assigned parameters.
func (p *Params) Len() int { return len(p.names) }

// Pairs renders the set as key=value argument strings in insertion order.
func (p *Params) Pairs() ([]string, error) {
	pairs := make([]string, 0, len(p.names))
	for _, name := range p.names {
		s, err := convert.Convert(p.values[name], cty.String)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		pairs = append(pairs, name+"="+s.AsString())
	}
	return pairs, nil
}
