package engineering

import (
	"math"

	"github.com/okhalaf/mreval/internal/params"
)

// uraniumWeightFraction is the uranium share of each fuel compound by mass.
var uraniumWeightFraction = map[string]float64{
	"UN":          0.944,
	"UO2":         0.881,
	"UC":          0.952,
	"UCO":         0.90,
	"TRIGA_fuel":  0.30,
	"homog_TRISO": 0.10,
}

const (
	feedAssay  = 0.00711 // natural uranium
	tailsAssay = 0.0025
)

// deriveFuel computes the uranium inventory of the core and the separative
// work needed to enrich it from natural feed.
func deriveFuel(p *Plant, d params.Design, cat *params.Catalog) {
	fuelVolume := d.PackingFraction * circleArea(d.CompactFuelRadius) *
		float64(p.FuelElementCount) * d.ActiveHeight // cm3

	compoundMass := fuelVolume * cat.Density(d.Fuel) / 1000 // kg
	p.UraniumMassKg = compoundMass * uraniumWeightFraction[d.Fuel]
	p.U235MassKg = p.UraniumMassKg * d.Enrichment
	p.SWUKg = separativeWork(p.UraniumMassKg, d.Enrichment)
}

// separativeWork returns the SWU (kg) to produce productKg of uranium at
// the given assay from natural feed with the standard value function
// V(x) = (1-2x) ln((1-x)/x).
func separativeWork(productKg, productAssay float64) float64 {
	feedKg := productKg * (productAssay - tailsAssay) / (feedAssay - tailsAssay)
	tailsKg := feedKg - productKg
	return productKg*valueFunction(productAssay) +
		tailsKg*valueFunction(tailsAssay) -
		feedKg*valueFunction(feedAssay)
}

func valueFunction(x float64) float64 {
	return (1 - 2*x) * math.Log((1-x)/x)
}
