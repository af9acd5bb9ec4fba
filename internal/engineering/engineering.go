// Package engineering derives the plant-level quantities the cost model
// scales against: component masses and volumes, thermal-hydraulic sizing,
// fuel inventory and separative work. Everything here is a pure function of
// a validated design and the materials catalog.
package engineering

import (
	"fmt"
	"math"

	"github.com/okhalaf/mreval/internal/params"
)

// Plant is the full set of derived quantities for one design point.
type Plant struct {
	// Core layout
	AssemblyFTF             float64 // cm, assembly flat-to-flat
	CoreRadius              float64 // cm
	AssemblyCount           int
	FuelElementsPerAssembly int
	FuelElementCount        int

	// Masses, kg
	DrumAbsorberMass   float64
	DrumReflectorMass  float64
	DrumMass           float64
	ReflectorMass      float64
	AxialReflectorMass float64
	ModeratorMass      float64
	VesselMass         float64
	InShieldMass       float64
	OutShieldMass      float64
	HXMass             float64

	// Thermal hydraulics
	HeatTransferAreaM2 float64 // m2
	PeakHeatFluxMWm2   float64 // MW/m2
	HeatFluxOK         bool
	MassFlowRateKgS    float64 // kg/s, total
	LoopMassFlowKgS    float64 // kg/s, per primary loop
	CirculatorPowerW   float64 // W, per primary loop

	// Fuel cycle
	UraniumMassKg float64
	U235MassKg    float64
	SWUKg         float64

	// Power
	PowerMWe float64
}

// Derive computes the Plant for a validated design. It assumes the design
// already passed params validation; geometry that still produces a
// non-physical quantity (for example a reflector thinner than the drums it
// must house) is reported as an error.
func Derive(d params.Design, cat *params.Catalog) (Plant, error) {
	var p Plant

	p.AssemblyFTF = d.LatticePitch*float64(d.AssemblyRings-1)*math.Sqrt(3) + 2*d.CompactFuelRadius
	p.CoreRadius = p.AssemblyFTF*float64(d.CoreRings) + d.ReflectorThickness
	p.AssemblyCount = hexPositions(d.CoreRings)
	p.FuelElementsPerAssembly = hexPositions(d.AssemblyRings - 1)
	p.FuelElementCount = p.AssemblyCount * p.FuelElementsPerAssembly
	p.PowerMWe = d.PowerMWe()

	deriveDrums(&p, d, cat)
	if err := deriveReflectorAndModerator(&p, d, cat); err != nil {
		return Plant{}, err
	}
	deriveVessels(&p, d, cat)
	deriveBOP(&p, d, cat)
	deriveFuel(&p, d, cat)

	p.HeatTransferAreaM2 = cylinderRadialShell(d.CompactFuelRadius, d.ActiveHeight) *
		float64(p.FuelElementCount) * 1e-4
	p.PeakHeatFluxMWm2 = d.PowerMWt / p.HeatTransferAreaM2
	p.HeatFluxOK = p.PeakHeatFluxMWm2 <= d.HeatFluxLimit

	return p, nil
}

func deriveReflectorAndModerator(p *Plant, d params.Design, cat *params.Catalog) error {
	drumArea := circleArea(d.DrumRadius) * float64(d.DrumCount)
	assemblyArea := hexArea(p.AssemblyFTF) * float64(p.AssemblyCount)
	reflectorArea := circleArea(p.CoreRadius) - assemblyArea - drumArea
	if reflectorArea <= 0 {
		return fmt.Errorf("reflector region area is non-positive (%.1f cm2): drums and assemblies exceed the core envelope", reflectorArea)
	}
	rho := cat.Density(d.Reflector)
	p.ReflectorMass = reflectorArea * d.ActiveHeight * rho / 1000
	p.AxialReflectorMass = 2 * cylinderVolume(p.CoreRadius, d.AxialReflectorThickness) * rho / 1000

	fuelArea := d.PackingFraction * circleArea(d.CompactFuelRadius) * float64(p.FuelElementsPerAssembly)
	coolantArea := 2 * float64(p.FuelElementsPerAssembly) * circleArea(d.CoolantChannelRad)
	moderatorArea := hexArea(p.AssemblyFTF) - fuelArea - coolantArea
	if moderatorArea <= 0 {
		return fmt.Errorf("moderator area per assembly is non-positive: fuel and coolant channels overfill the lattice")
	}
	p.ModeratorMass = float64(p.AssemblyCount) * moderatorArea * d.ActiveHeight *
		cat.Density(d.Moderator) / 1000
	return nil
}
