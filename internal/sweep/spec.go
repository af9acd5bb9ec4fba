// Package sweep enumerates and executes parameter studies: a cross-product
// grid or an explicit variant list over the baseline parameter sets.
package sweep

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/okhalaf/mreval/internal/params"
)

// Axis is one swept parameter with its value list. Axis order in the spec
// is the enumeration order.
type Axis struct {
	Field  string `yaml:"field"`
	Values []any  `yaml:"values"`
}

// Variant is one named, complete override set.
type Variant struct {
	Name      string            `yaml:"name"`
	Overrides []params.Override `yaml:"overrides"`
}

// Spec is a parsed sweep specification: exactly one of Grid or Variants.
type Spec struct {
	Name     string    `yaml:"name"`
	Grid     []Axis    `yaml:"grid,omitempty"`
	Variants []Variant `yaml:"variants,omitempty"`
}

// SpecError is a defect in the sweep spec itself. Spec errors are fatal
// before any point is dispatched; they are never folded into case results.
type SpecError struct {
	Reason string
}

func (e *SpecError) Error() string { return "sweep spec: " + e.Reason }

func specErrf(format string, args ...any) *SpecError {
	return &SpecError{Reason: fmt.Sprintf(format, args...)}
}

// ParseSpec decodes a sweep spec, rejecting unknown fields.
func ParseSpec(data []byte) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Spec{}, specErrf("parse: %v", err)
	}
	return s, nil
}

// Validate checks the spec against the baseline before enumeration.
func (s Spec) Validate(base params.Baseline) error {
	if len(s.Grid) > 0 && len(s.Variants) > 0 {
		return specErrf("grid and variants are mutually exclusive")
	}
	if len(s.Grid) == 0 && len(s.Variants) == 0 {
		return specErrf("neither grid nor variants declared")
	}
	for _, ax := range s.Grid {
		if ax.Field == "" {
			return specErrf("grid axis with an empty field name")
		}
		if len(ax.Values) == 0 {
			return specErrf("axis %q has no values", ax.Field)
		}
		if !base.HasParameter(ax.Field) {
			return specErrf("axis %q names no known parameter", ax.Field)
		}
	}
	for i, v := range s.Variants {
		if v.Name == "" {
			return specErrf("variant %d has no name", i)
		}
		for _, o := range v.Overrides {
			if !base.HasParameter(o.Field) {
				return specErrf("variant %q overrides unknown parameter %q", v.Name, o.Field)
			}
		}
	}
	return nil
}

// Point is one enumerated design point.
type Point struct {
	Index     int
	Name      string
	Overrides []params.Override
}

// Enumerate materializes the point list. Grid enumeration is the
// lexicographic cross product over the declared axis order: the first axis
// varies slowest, the last fastest. Variant enumeration follows the
// declared order. The output is deterministic for a given spec.
func (s Spec) Enumerate(base params.Baseline) ([]Point, error) {
	if err := s.Validate(base); err != nil {
		return nil, err
	}

	if len(s.Variants) > 0 {
		points := make([]Point, len(s.Variants))
		for i, v := range s.Variants {
			points[i] = Point{
				Index:     i,
				Name:      v.Name,
				Overrides: append([]params.Override(nil), v.Overrides...),
			}
		}
		return points, nil
	}

	total := 1
	for _, ax := range s.Grid {
		total *= len(ax.Values)
	}
	points := make([]Point, 0, total)
	idx := make([]int, len(s.Grid))
	for i := 0; i < total; i++ {
		ovs := make([]params.Override, len(s.Grid))
		for a, ax := range s.Grid {
			ovs[a] = params.Override{Field: ax.Field, Value: ax.Values[idx[a]]}
		}
		points = append(points, Point{
			Index:     i,
			Name:      fmt.Sprintf("point-%04d", i),
			Overrides: ovs,
		})
		// advance the odometer, last axis fastest
		for a := len(idx) - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < len(s.Grid[a].Values) {
				break
			}
			idx[a] = 0
		}
	}
	return points, nil
}
