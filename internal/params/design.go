package params

// ReactorType selects the core layout the solver model is rendered for.
type ReactorType string

const (
	GCMR ReactorType = "GCMR" // gas-cooled microreactor
	LTMR ReactorType = "LTMR" // liquid-metal thermal microreactor
	HPMR ReactorType = "HPMR" // heat-pipe microreactor
)

// Design holds every physical, geometric and material input of one reactor
// design point. Instances are treated as immutable once validated: sweep
// variants are produced with WithOverride, never by mutating a shared
// baseline.
type Design struct {
	ReactorType ReactorType `yaml:"reactor_type"`

	// Overall system
	PowerMWt          float64 `yaml:"power_mwt"`
	ThermalEfficiency float64 `yaml:"thermal_efficiency"`
	HeatFluxLimit     float64 `yaml:"heat_flux_limit"` // MW/m2

	// Materials
	Fuel          string  `yaml:"fuel"`
	Enrichment    float64 `yaml:"enrichment"`
	Coolant       string  `yaml:"coolant"`
	Moderator     string  `yaml:"moderator"`
	Reflector     string  `yaml:"reflector"`
	DrumAbsorber  string  `yaml:"drum_absorber"`
	DrumReflector string  `yaml:"drum_reflector"`
	Temperature   float64 `yaml:"temperature"` // K, isothermal model temperature

	// Fuel element geometry (cm)
	FuelPinRadii      []float64 `yaml:"fuel_pin_radii"`
	CompactFuelRadius float64   `yaml:"compact_fuel_radius"`
	PackingFraction   float64   `yaml:"packing_fraction"`
	CoolantChannelRad float64   `yaml:"coolant_channel_radius"`
	LatticePitch      float64   `yaml:"lattice_pitch"`
	AssemblyRings     int       `yaml:"assembly_rings"`
	CoreRings         int       `yaml:"core_rings"`
	ActiveHeight      float64   `yaml:"active_height"`

	// Reflector (cm)
	ReflectorThickness      float64 `yaml:"reflector_thickness"`
	AxialReflectorThickness float64 `yaml:"axial_reflector_thickness"`

	// Control drums (cm)
	DrumRadius            float64 `yaml:"drum_radius"`
	DrumAbsorberThickness float64 `yaml:"drum_absorber_thickness"`
	DrumCount             int     `yaml:"drum_count"`

	// Vessel stack (cm)
	VesselThickness      float64 `yaml:"vessel_thickness"`
	VesselMaterial       string  `yaml:"vessel_material"`
	VesselPlenumHeight   float64 `yaml:"vessel_plenum_height"`
	VesselBottomDepth    float64 `yaml:"vessel_bottom_depth"`
	InShieldThickness    float64 `yaml:"in_vessel_shield_thickness"`
	InShieldMaterial     string  `yaml:"in_vessel_shield_material"`
	OutShieldThickness   float64 `yaml:"out_of_vessel_shield_thickness"`
	OutShieldMaterial    string  `yaml:"out_of_vessel_shield_material"`
	OutShieldDensityFrac float64 `yaml:"out_of_vessel_shield_density_factor"`

	// Primary loop and balance of plant
	InletTempK         float64 `yaml:"inlet_temperature"`     // K
	OutletTempK        float64 `yaml:"outlet_temperature"`    // K
	LoopPressureDropPa float64 `yaml:"loop_pressure_drop"`    // Pa
	CompressorEff      float64 `yaml:"compressor_efficiency"` // isentropic
	PumpEff            float64 `yaml:"pump_efficiency"`       // isentropic
	PrimaryLoopCount   int     `yaml:"primary_loop_count"`    //
	BoPCount           int     `yaml:"bop_count"`             //
	HXMaterial         string  `yaml:"hx_material"`           //
	HXMassKg           float64 `yaml:"hx_mass"`               // kg, primary heat exchanger
	LoopPurified       bool    `yaml:"primary_loop_purification"`

	// Solver fidelity
	Particles  int `yaml:"particles"`
	Batches    int `yaml:"batches"`
	SkipCycles int `yaml:"skip_cycles"`
}

// Validate checks range and reference invariants against the catalog.
// It returns a *ValidationError and leaves d untouched on failure.
func (d Design) Validate(cat *Catalog) error {
	switch d.ReactorType {
	case GCMR, LTMR, HPMR:
	default:
		return invalidf("reactor_type", "unknown reactor type %q", d.ReactorType)
	}

	positives := []struct {
		name string
		v    float64
	}{
		{"power_mwt", d.PowerMWt},
		{"heat_flux_limit", d.HeatFluxLimit},
		{"compact_fuel_radius", d.CompactFuelRadius},
		{"lattice_pitch", d.LatticePitch},
		{"active_height", d.ActiveHeight},
		{"reflector_thickness", d.ReflectorThickness},
		{"axial_reflector_thickness", d.AxialReflectorThickness},
		{"drum_radius", d.DrumRadius},
		{"drum_absorber_thickness", d.DrumAbsorberThickness},
		{"vessel_thickness", d.VesselThickness},
		{"loop_pressure_drop", d.LoopPressureDropPa},
		{"temperature", d.Temperature},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return invalidf(p.name, "must be strictly positive, got %g", p.v)
		}
	}

	if d.ThermalEfficiency <= 0 || d.ThermalEfficiency >= 1 {
		return invalidf("thermal_efficiency", "must be in (0,1), got %g", d.ThermalEfficiency)
	}
	if d.Enrichment <= 0 || d.Enrichment > 1 {
		return invalidf("enrichment", "must be in (0,1], got %g", d.Enrichment)
	}
	// HALEU licensing bound; the fuel-cost premium table is undefined above it.
	if d.Enrichment >= 0.2 {
		return invalidf("enrichment", "enrichment %g exceeds the 20%% HALEU bound", d.Enrichment)
	}
	if d.PackingFraction < 0 || d.PackingFraction > 1 {
		return invalidf("packing_fraction", "must be in [0,1], got %g", d.PackingFraction)
	}
	if len(d.FuelPinRadii) == 0 {
		return invalidf("fuel_pin_radii", "at least one radius is required")
	}
	prev := 0.0
	for i, r := range d.FuelPinRadii {
		if r <= prev {
			return invalidf("fuel_pin_radii", "radii must be strictly increasing, index %d is %g", i, r)
		}
		prev = r
	}
	if d.AssemblyRings < 1 {
		return invalidf("assembly_rings", "must be at least 1, got %d", d.AssemblyRings)
	}
	if d.CoreRings < 1 {
		return invalidf("core_rings", "must be at least 1, got %d", d.CoreRings)
	}
	if d.DrumCount < 1 {
		return invalidf("drum_count", "must be at least 1, got %d", d.DrumCount)
	}
	if d.DrumAbsorberThickness >= d.DrumRadius {
		return invalidf("drum_absorber_thickness", "absorber thickness %g must be below drum radius %g",
			d.DrumAbsorberThickness, d.DrumRadius)
	}
	if d.OutletTempK <= d.InletTempK {
		return invalidf("outlet_temperature", "outlet %g K must exceed inlet %g K", d.OutletTempK, d.InletTempK)
	}
	if d.CompressorEff <= 0 || d.CompressorEff >= 1 {
		return invalidf("compressor_efficiency", "must be in (0,1), got %g", d.CompressorEff)
	}
	if d.PrimaryLoopCount < 1 {
		return invalidf("primary_loop_count", "must be at least 1, got %d", d.PrimaryLoopCount)
	}
	if d.BoPCount < 1 {
		return invalidf("bop_count", "must be at least 1, got %d", d.BoPCount)
	}
	if d.Particles < 1 || d.Batches < 1 {
		return invalidf("particles", "particles and batches must be at least 1")
	}

	type slot struct {
		field string
		name  string
		kinds []MaterialKind
	}
	slots := []slot{
		{"fuel", d.Fuel, []MaterialKind{KindFuel}},
		{"coolant", d.Coolant, []MaterialKind{KindCoolant}},
		{"moderator", d.Moderator, []MaterialKind{KindModerator}},
		{"reflector", d.Reflector, []MaterialKind{KindReflector, KindModerator}},
		{"drum_absorber", d.DrumAbsorber, []MaterialKind{KindAbsorber}},
		{"drum_reflector", d.DrumReflector, []MaterialKind{KindReflector, KindModerator}},
		{"vessel_material", d.VesselMaterial, []MaterialKind{KindStructure}},
		{"in_vessel_shield_material", d.InShieldMaterial, []MaterialKind{KindAbsorber, KindShield}},
		{"out_of_vessel_shield_material", d.OutShieldMaterial, []MaterialKind{KindShield, KindAbsorber}},
		{"hx_material", d.HXMaterial, []MaterialKind{KindStructure}},
	}
	for _, s := range slots {
		if _, ok := cat.Lookup(s.name); !ok {
			return invalidf(s.field, "unknown material %q", s.name)
		}
		if !cat.validSlot(s.name, s.kinds...) {
			return invalidf(s.field, "material %q is not usable in this position", s.name)
		}
	}

	return nil
}

// PowerMWe is the rated electric output.
func (d Design) PowerMWe() float64 {
	return d.PowerMWt * d.ThermalEfficiency
}
