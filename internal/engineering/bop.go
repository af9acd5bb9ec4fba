package engineering

import "github.com/okhalaf/mreval/internal/params"

// Helium density at circulator suction conditions (4 MPa, 300 C), kg/m3.
const heliumDensityKgM3 = 3.3297

// deriveBOP sizes the primary-loop components: coolant mass flow from the
// loop temperature rise, circulator (or pump) power from the loop pressure
// drop, and the heat exchanger inventory across loops.
func deriveBOP(p *Plant, d params.Design, cat *params.Catalog) {
	coolant, _ := cat.Lookup(d.Coolant)
	if coolant.SpecificHeat == 0 {
		// heat-pipe cooling: no forced primary loop to size
		p.HXMass = d.HXMassKg
		return
	}
	deltaT := d.OutletTempK - d.InletTempK

	// total core flow, split evenly between primary loops
	p.MassFlowRateKgS = 1e6 * d.PowerMWt / (deltaT * coolant.SpecificHeat)
	p.LoopMassFlowKgS = p.MassFlowRateKgS / float64(d.PrimaryLoopCount)

	density := heliumDensityKgM3
	eff := d.CompressorEff
	if d.Coolant != "Helium" {
		// liquid coolant: pump against the same pressure drop
		density = coolant.Density * 1000 // g/cm3 -> kg/m3
		eff = d.PumpEff
	}
	p.CirculatorPowerW = d.LoopPressureDropPa * p.LoopMassFlowKgS / (eff * density)

	p.HXMass = d.HXMassKg * float64(d.PrimaryLoopCount)
}
