package engineering

import (
	"math"

	"github.com/okhalaf/mreval/internal/params"
)

// deriveDrums computes control-drum volumes and masses. Drums span the
// active height; the absorber is a one-third arc coating of the drum
// surface and the remainder of the drum is reflector material.
func deriveDrums(p *Plant, d params.Design, cat *params.Catalog) {
	h := d.ActiveHeight
	drumVolume := math.Pi * d.DrumRadius * d.DrumRadius * h
	inner := d.DrumRadius - d.DrumAbsorberThickness
	absorberVolume := math.Pi * (d.DrumRadius*d.DrumRadius - inner*inner) * h / 3
	reflectorVolume := drumVolume - absorberVolume

	n := float64(d.DrumCount)
	p.DrumAbsorberMass = absorberVolume * n * cat.Density(d.DrumAbsorber) / 1000
	p.DrumReflectorMass = reflectorVolume * n * cat.Density(d.DrumReflector) / 1000
	p.DrumMass = p.DrumAbsorberMass + p.DrumReflectorMass
}
