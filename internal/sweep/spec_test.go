package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhalaf/mreval/internal/params"
)

func TestParseSpecGrid(t *testing.T) {
	src := []byte(`
name: power-enrichment-scan
grid:
  - field: power_mwt
    values: [10, 15, 20]
  - field: enrichment
    values: [0.15, 0.1975]
`)
	spec, err := ParseSpec(src)
	require.NoError(t, err)
	assert.Equal(t, "power-enrichment-scan", spec.Name)
	require.Len(t, spec.Grid, 2)
	assert.Equal(t, "power_mwt", spec.Grid[0].Field)
	assert.Len(t, spec.Grid[1].Values, 2)
}

func TestParseSpecRejectsUnknownKeys(t *testing.T) {
	_, err := ParseSpec([]byte("name: x\ngrdi:\n  - field: power_mwt\n    values: [1]\n"))
	var se *SpecError
	require.True(t, errors.As(err, &se))
}

func TestEnumerateLexicographicOrder(t *testing.T) {
	spec := Spec{
		Name: "order",
		Grid: []Axis{
			{Field: "power_mwt", Values: []any{10, 20}},
			{Field: "enrichment", Values: []any{0.1, 0.15, 0.1975}},
		},
	}
	points, err := spec.Enumerate(params.DefaultBaseline())
	require.NoError(t, err)
	require.Len(t, points, 6)

	// first axis slowest, second fastest
	wantPower := []any{10, 10, 10, 20, 20, 20}
	wantEnrich := []any{0.1, 0.15, 0.1975, 0.1, 0.15, 0.1975}
	for i, pt := range points {
		assert.Equal(t, i, pt.Index)
		require.Len(t, pt.Overrides, 2)
		assert.Equal(t, "power_mwt", pt.Overrides[0].Field)
		assert.Equal(t, wantPower[i], pt.Overrides[0].Value)
		assert.Equal(t, wantEnrich[i], pt.Overrides[1].Value)
	}

	// the enumeration is a pure function of the spec
	again, err := spec.Enumerate(params.DefaultBaseline())
	require.NoError(t, err)
	assert.Equal(t, points, again)
}

func TestEnumerateVariantsInDeclaredOrder(t *testing.T) {
	spec := Spec{
		Name: "named",
		Variants: []Variant{
			{Name: "hot", Overrides: []params.Override{{Field: "outlet_temperature", Value: 900.0}}},
			{Name: "cold", Overrides: []params.Override{{Field: "outlet_temperature", Value: 750.0}}},
		},
	}
	points, err := spec.Enumerate(params.DefaultBaseline())
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "hot", points[0].Name)
	assert.Equal(t, "cold", points[1].Name)
}

func TestSpecValidation(t *testing.T) {
	base := params.DefaultBaseline()
	cases := []struct {
		name string
		spec Spec
	}{
		{"empty", Spec{Name: "x"}},
		{"both modes", Spec{
			Grid:     []Axis{{Field: "power_mwt", Values: []any{1}}},
			Variants: []Variant{{Name: "v"}},
		}},
		{"empty axis", Spec{Grid: []Axis{{Field: "power_mwt"}}}},
		{"unknown field", Spec{Grid: []Axis{{Field: "warp_factor", Values: []any{9}}}}},
		{"unknown variant field", Spec{Variants: []Variant{
			{Name: "v", Overrides: []params.Override{{Field: "warp_factor", Value: 9}}},
		}}},
		{"unnamed variant", Spec{Variants: []Variant{{}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.spec.Enumerate(base)
			var se *SpecError
			require.True(t, errors.As(err, &se), "got %v", err)
		})
	}
}

func TestSpecValidationAcceptsEconFields(t *testing.T) {
	spec := Spec{
		Grid: []Axis{
			{Field: "interest_rate", Values: []any{0.05, 0.07}},
			{Field: "learning.onsite", Values: []any{0.1, 0.2}},
		},
	}
	_, err := spec.Enumerate(params.DefaultBaseline())
	assert.NoError(t, err)
}
