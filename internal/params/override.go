package params

import (
	"reflect"
	"strings"
)

// Override is one sweep-point modification: a field named by its yaml key
// bound to a replacement value.
type Override struct {
	Field string `yaml:"field"`
	Value any    `yaml:"value"`
}

// WithOverride returns a copy of d with one field replaced. The receiver is
// never modified; unaffected fields are shared by the struct copy. Field
// names are the yaml keys of Design.
func (d Design) WithOverride(field string, value any) (Design, error) {
	out := d
	if field == "fuel_pin_radii" {
		radii, err := asFloatSlice(field, value)
		if err != nil {
			return d, err
		}
		out.FuelPinRadii = radii
		return out, nil
	}
	if err := setByTag(&out, field, value); err != nil {
		return d, err
	}
	return out, nil
}

// WithOverride returns a copy of e with one field replaced; see
// Design.WithOverride.
func (e Economics) WithOverride(field string, value any) (Economics, error) {
	out := e
	if err := setByTag(&out, field, value); err != nil {
		return e, err
	}
	return out, nil
}

// Apply folds a list of overrides over a baseline design.
func (d Design) Apply(overrides []Override) (Design, error) {
	out := d
	var err error
	for _, o := range overrides {
		out, err = out.WithOverride(o.Field, o.Value)
		if err != nil {
			return d, err
		}
	}
	return out, nil
}

// setByTag assigns value to the struct field whose yaml tag matches name.
// Nested structs (learning rates) are addressed with a dotted path.
func setByTag(target any, name string, value any) error {
	v := reflect.ValueOf(target).Elem()
	path := strings.SplitN(name, ".", 2)

	field, ok := fieldByYAMLTag(v, path[0])
	if !ok {
		return invalidf(name, "no such parameter")
	}
	if len(path) == 2 {
		if field.Kind() != reflect.Struct {
			return invalidf(name, "parameter %q has no sub-fields", path[0])
		}
		sub, ok := fieldByYAMLTag(field, path[1])
		if !ok {
			return invalidf(name, "no such parameter")
		}
		field = sub
	}

	switch field.Kind() {
	case reflect.Float64:
		f, err := asFloat(name, value)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Int, reflect.Int64:
		i, err := asInt(name, value)
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return invalidf(name, "expected a string, got %T", value)
		}
		field.SetString(s)
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return invalidf(name, "expected a bool, got %T", value)
		}
		field.SetBool(b)
	default:
		return invalidf(name, "parameter is not overridable")
	}
	return nil
}

func fieldByYAMLTag(v reflect.Value, tag string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name == tag {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func asFloat(name string, value any) (float64, error) {
	switch x := value.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, invalidf(name, "expected a number, got %T", value)
	}
}

func asInt(name string, value any) (int64, error) {
	switch x := value.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		if x != float64(int64(x)) {
			return 0, invalidf(name, "expected an integer, got %g", x)
		}
		return int64(x), nil
	default:
		return 0, invalidf(name, "expected an integer, got %T", value)
	}
}

func asFloatSlice(name string, value any) ([]float64, error) {
	switch xs := value.(type) {
	case []float64:
		return append([]float64(nil), xs...), nil
	case []any:
		out := make([]float64, len(xs))
		for i, x := range xs {
			f, err := asFloat(name, x)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, invalidf(name, "expected a list of numbers, got %T", value)
	}
}
