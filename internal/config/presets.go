package config

import "github.com/okhalaf/mreval/internal/params"

// Presets are ready-made design variants per reactor line, keyed by
// line name then preset name.
var Presets = map[string]map[string]func() params.Design{
	"gcmr": {
		"nominal": params.DefaultGCMRDesign,
		"high-power": func() params.Design {
			d := params.DefaultGCMRDesign()
			d.PowerMWt = 20
			d.CoreRings = 6
			return d
		},
		"compact": func() params.Design {
			d := params.DefaultGCMRDesign()
			d.PowerMWt = 10
			d.CoreRings = 4
			d.ActiveHeight = 140
			return d
		},
		"single-loop": func() params.Design {
			d := params.DefaultGCMRDesign()
			d.PrimaryLoopCount = 1
			d.BoPCount = 1
			return d
		},
	},
}

// GetPreset returns a fresh copy of the named design preset, or nil when
// the line or preset does not exist.
func GetPreset(line, preset string) *params.Design {
	linePresets, ok := Presets[line]
	if !ok {
		return nil
	}
	mk, ok := linePresets[preset]
	if !ok {
		return nil
	}
	d := mk()
	return &d
}

// ListPresets names the presets of one reactor line.
func ListPresets(line string) []string {
	linePresets, ok := Presets[line]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(linePresets))
	for name := range linePresets {
		names = append(names, name)
	}
	return names
}
