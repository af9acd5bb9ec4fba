package params

import (
	"reflect"
	"strings"
)

// Baseline pairs the design and economic parameter sets that a study
// perturbs. Overrides are routed to whichever set declares the field.
type Baseline struct {
	Design Design    `yaml:"design"`
	Econ   Economics `yaml:"economics"`
}

// DefaultBaseline is the nominal GCMR design under nominal economics.
func DefaultBaseline() Baseline {
	return Baseline{Design: DefaultGCMRDesign(), Econ: DefaultEconomics()}
}

// HasParameter reports whether field names an overridable parameter of
// either set.
func (b Baseline) HasParameter(field string) bool {
	return hasTag(&b.Design, field) || hasTag(&b.Econ, field)
}

// Apply folds the overrides over a copy of the baseline; the receiver is
// never modified.
func (b Baseline) Apply(overrides []Override) (Baseline, error) {
	out := b
	var err error
	for _, o := range overrides {
		if hasTag(&out.Design, o.Field) {
			out.Design, err = out.Design.WithOverride(o.Field, o.Value)
		} else if hasTag(&out.Econ, o.Field) {
			out.Econ, err = out.Econ.WithOverride(o.Field, o.Value)
		} else {
			err = invalidf(o.Field, "no such parameter")
		}
		if err != nil {
			return b, err
		}
	}
	return out, nil
}

func hasTag(target any, name string) bool {
	v := reflect.ValueOf(target).Elem()
	path := strings.SplitN(name, ".", 2)
	field, ok := fieldByYAMLTag(v, path[0])
	if !ok {
		return false
	}
	if len(path) == 2 {
		if field.Kind() != reflect.Struct {
			return false
		}
		_, ok = fieldByYAMLTag(field, path[1])
	}
	return ok
}
