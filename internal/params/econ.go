package params

// LearningRates hold the per-class FOAK-to-NOAK learning rates. Classes
// follow the cost database's multiplier types; a rate of 0 means no
// learning for that class.
type LearningRates struct {
	None         float64 `yaml:"none"`
	Licensing    float64 `yaml:"licensing"`
	FactoryParts float64 `yaml:"factory_parts"`
	FactoryDrums float64 `yaml:"factory_drums"`
	FactoryOther float64 `yaml:"factory_other"`
	Onsite       float64 `yaml:"onsite"`
	OffTheShelf  float64 `yaml:"off_the_shelf"`
}

// Economics holds every economic and operational input of an evaluation.
// Like Design it is immutable after validation.
type Economics struct {
	EscalationYear int     `yaml:"escalation_year"`
	InterestRate   float64 `yaml:"interest_rate"`
	// ConstructionMonths is the construction duration used for interest
	// during construction.
	ConstructionMonths float64 `yaml:"construction_months"`
	DebtToEquity       float64 `yaml:"debt_to_equity"`
	// AnnualReturn is the return assumed on the decommissioning fund.
	AnnualReturn float64 `yaml:"annual_return"`

	// Operation
	LevelizationYears        int     `yaml:"levelization_years"`
	RefuelingDays            float64 `yaml:"refueling_days"`
	StartupAfterRefuelDays   float64 `yaml:"startup_after_refueling_days"`
	StartupAfterScramDays    float64 `yaml:"startup_after_scram_days"`
	EmergencyShutdownsPerYr  float64 `yaml:"emergency_shutdowns_per_year"`
	Operators                int     `yaml:"operators"`
	ReactorsPerOperator      float64 `yaml:"reactors_per_operator"`
	SecurityStaffPerShift    float64 `yaml:"security_staff_per_shift"`
	FTEsPerOnsiteOperator    float64 `yaml:"ftes_per_onsite_operator"`
	FTEsPerOffsiteOperator   float64 `yaml:"ftes_per_offsite_operator"`
	FTEsPerSecurityStaff     float64 `yaml:"ftes_per_security_staff"`
	CoolantResupplyPerYear   float64 `yaml:"coolant_resupply_per_year"`
	OnsiteCoolantInventoryKg float64 `yaml:"onsite_coolant_inventory_kg"`

	// Site and buildings
	LandAreaAcres        float64 `yaml:"land_area_acres"`
	ExcavationVolumeM3   float64 `yaml:"excavation_volume_m3"`
	ReactorBuildingM3    float64 `yaml:"reactor_building_concrete_m3"`
	TurbineBuildingM3    float64 `yaml:"turbine_building_concrete_m3"`
	ControlBuildingM3    float64 `yaml:"control_building_concrete_m3"`
	StorageBuildingM3    float64 `yaml:"storage_building_concrete_m3"`
	SuperstructureAreaM2 float64 `yaml:"superstructure_area_m2"`

	// Ratios
	IndirectToDirectRatio    float64 `yaml:"indirect_to_direct_ratio"`
	MaintenanceToDirectRatio float64 `yaml:"maintenance_to_direct_ratio"`
	DecommissioningRatio     float64 `yaml:"decommissioning_to_capex_ratio"`
	// Replacement periods are in refueling cycles, not calendar years; the
	// calendar period is the cycle length times the cycle count.
	VesselReplacementCycles    float64 `yaml:"vessel_replacement_cycles"`
	ReflectorReplacementCycles float64 `yaml:"reflector_replacement_cycles"`
	DrumReplacementCycles      float64 `yaml:"drum_replacement_cycles"`
	ShieldReplacementCycles    float64 `yaml:"shield_replacement_cycles"`
	HXReplacementCycles        float64 `yaml:"hx_replacement_cycles"`

	// Learning
	NOAKUnitNumber int           `yaml:"noak_unit_number"`
	Learning       LearningRates `yaml:"learning"`

	// Cost uncertainty sampling
	Samples int   `yaml:"samples"`
	Seed    int64 `yaml:"seed"`
}

// Validate checks positivity and range invariants.
func (e Economics) Validate() error {
	if e.EscalationYear < 1990 || e.EscalationYear > 2100 {
		return invalidf("escalation_year", "year %d outside the escalation index range", e.EscalationYear)
	}
	if e.InterestRate <= 0 || e.InterestRate >= 1 {
		return invalidf("interest_rate", "must be in (0,1), got %g", e.InterestRate)
	}
	positives := []struct {
		name string
		v    float64
	}{
		{"construction_months", e.ConstructionMonths},
		{"refueling_days", e.RefuelingDays},
		{"startup_after_refueling_days", e.StartupAfterRefuelDays},
		{"startup_after_scram_days", e.StartupAfterScramDays},
		{"maintenance_to_direct_ratio", e.MaintenanceToDirectRatio},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return invalidf(p.name, "must be strictly positive, got %g", p.v)
		}
	}
	if e.LevelizationYears < 1 {
		return invalidf("levelization_years", "must be at least 1, got %d", e.LevelizationYears)
	}
	if e.EmergencyShutdownsPerYr < 0 {
		return invalidf("emergency_shutdowns_per_year", "must be non-negative, got %g", e.EmergencyShutdownsPerYr)
	}
	if e.DebtToEquity < 0 || e.DebtToEquity > 1 {
		return invalidf("debt_to_equity", "must be in [0,1], got %g", e.DebtToEquity)
	}
	if e.AnnualReturn <= 0 || e.AnnualReturn >= 1 {
		return invalidf("annual_return", "must be in (0,1), got %g", e.AnnualReturn)
	}
	if e.DecommissioningRatio < 0 || e.DecommissioningRatio > 1 {
		return invalidf("decommissioning_to_capex_ratio", "must be in [0,1], got %g", e.DecommissioningRatio)
	}
	if e.Operators < 1 {
		return invalidf("operators", "must be at least 1, got %d", e.Operators)
	}
	if e.NOAKUnitNumber < 0 {
		return invalidf("noak_unit_number", "must be non-negative, got %d", e.NOAKUnitNumber)
	}
	for _, lr := range []struct {
		name string
		v    float64
	}{
		{"learning.none", e.Learning.None},
		{"learning.licensing", e.Learning.Licensing},
		{"learning.factory_parts", e.Learning.FactoryParts},
		{"learning.factory_drums", e.Learning.FactoryDrums},
		{"learning.factory_other", e.Learning.FactoryOther},
		{"learning.onsite", e.Learning.Onsite},
		{"learning.off_the_shelf", e.Learning.OffTheShelf},
	} {
		if lr.v < 0 || lr.v >= 1 {
			return invalidf(lr.name, "learning rate must be in [0,1), got %g", lr.v)
		}
	}
	if e.Samples < 1 {
		return invalidf("samples", "must be at least 1, got %d", e.Samples)
	}
	return nil
}

// NOAKUnits returns the nth-of-a-kind unit number, applying the default
// when unset.
func (e Economics) NOAKUnits() int {
	if e.NOAKUnitNumber == 0 {
		return 10
	}
	return e.NOAKUnitNumber
}
