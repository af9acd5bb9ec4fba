package cost

// The code-of-accounts database. Accounts follow the generic nuclear
// code-of-accounts numbering: 10 preconstruction, 20 direct, 30 indirect,
// 40 owner's, 50 training and startup, 60 financial, 70 annualized O&M,
// 80 annualized fuel. Leaf accounts carry cost data; parents are rolled up
// from their children.

// LearningClass selects which learning-rate curve applies when reducing a
// FOAK cost to its NOAK value.
type LearningClass string

const (
	LearnNone         LearningClass = "none"
	LearnLicensing    LearningClass = "licensing"
	LearnFactoryParts LearningClass = "factory_parts"
	LearnFactoryDrums LearningClass = "factory_drums"
	LearnFactoryOther LearningClass = "factory_other"
	LearnOnsite       LearningClass = "onsite"
	LearnOffTheShelf  LearningClass = "off_the_shelf"
)

// Equation selects the scaling law for a leaf account.
type Equation int

const (
	// EqStandard is fixed + unit*sv^exp/ref^(exp-1), degrading to
	// fixed + unit*sv when no reference value is given.
	EqStandard Equation = iota
	// EqNonStandard dispatches to a per-account correlation.
	EqNonStandard
	// EqDerived accounts are computed by the pipeline (ratios, CRF
	// annuities, financing) rather than scaled from inputs.
	EqDerived
)

// Dist names the uncertainty distribution attached to a cost figure.
type Dist int

const (
	DistNone Dist = iota
	DistLognormal
	DistUniform
	DistTruncNormal
)

// Scaling variable keys resolved against the values table built from the
// design, the derived plant, and the economic parameters.
const (
	svLandAcres        = "land_area_acres"
	svExcavationM3     = "excavation_m3"
	svReactorBldgM3    = "reactor_building_m3"
	svTurbineBldgM3    = "turbine_building_m3"
	svControlBldgM3    = "control_building_m3"
	svStorageBldgM3    = "storage_building_m3"
	svSuperstructureM2 = "superstructure_m2"
	svVesselMassKg     = "vessel_mass_kg"
	svInShieldMassKg   = "in_shield_mass_kg"
	svOutShieldMassKg  = "out_shield_mass_kg"
	svDrumMassKg       = "drum_mass_kg"
	svReflectorMassKg  = "reflector_mass_kg"
	svModeratorMassKg  = "moderator_mass_kg"
	svLoopMassFlowKgS  = "loop_mass_flow_kgs"
	svPumpMassFlowKgS  = "pump_mass_flow_kgs"
	svCirculatorKW     = "circulator_power_kw"
	svHXMassKg         = "hx_mass_kg"
	svPowerMWe         = "power_mwe"
	svPowerMWt         = "power_mwt"
	svUraniumMassKg    = "uranium_mass_kg"
	svSWUKg            = "swu_kg"
	svOperators        = "operators"
	svReactorsPerOp    = "reactors_per_operator"
	svSecurityStaff    = "security_staff_per_shift"
	svCoolantInvKg     = "coolant_inventory_kg"
	svStaffTotal       = "staff_total"
)

// Account is one row of the embedded cost database.
type Account struct {
	Code   string
	Parent string
	Title  string

	Learning LearningClass
	Equation Equation

	Fixed     float64
	FixedLo   float64
	FixedHi   float64
	FixedDist Dist

	Unit     float64
	UnitLo   float64
	UnitHi   float64
	UnitDist Dist

	Scaling string
	Ref     float64

	Exponent float64
	ExpStd   float64
	ExpMin   float64
	ExpMax   float64
	ExpDist  Dist

	DollarYear int
	Inflation  InflationType
}

// Database returns the embedded code-of-accounts table. The slice order is
// the canonical report order.
func Database() []Account {
	return []Account{
		// 10 preconstruction
		{Code: "10", Title: "Preconstruction Costs", Equation: EqDerived},
		{Code: "11", Parent: "10", Title: "Land and Land Rights", Learning: LearnNone, Equation: EqStandard,
			Unit: 9000, UnitLo: 5000, UnitHi: 20000, UnitDist: DistUniform,
			Scaling: svLandAcres, Exponent: 1, DollarYear: 2019, Inflation: InflGeneral},
		{Code: "12", Parent: "10", Title: "Site Permits", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 500000, DollarYear: 2020, Inflation: InflGeneral},
		{Code: "13", Parent: "10", Title: "Plant Licensing", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 12000000, FixedLo: 6000000, FixedHi: 30000000, FixedDist: DistLognormal,
			DollarYear: 2020, Inflation: InflGeneral},
		{Code: "14", Parent: "10", Title: "Plant Permits", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 250000, DollarYear: 2020, Inflation: InflGeneral},
		{Code: "15", Parent: "10", Title: "Plant Studies", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 1000000, DollarYear: 2020, Inflation: InflGeneral},
		{Code: "16", Parent: "10", Title: "Plant Reports", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 300000, DollarYear: 2020, Inflation: InflGeneral},

		// 20 capitalized direct
		{Code: "20", Title: "Capitalized Direct Costs", Equation: EqDerived},
		{Code: "21", Parent: "20", Title: "Structures and Improvements", Equation: EqDerived},
		{Code: "211", Parent: "21", Title: "Site Preparation and Excavation", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 200, UnitLo: 120, UnitHi: 400, UnitDist: DistUniform,
			Scaling: svExcavationM3, Exponent: 1, DollarYear: 2019, Inflation: InflLabor},
		{Code: "212", Parent: "21", Title: "Reactor Building", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 2100, UnitLo: 1500, UnitHi: 3600, UnitDist: DistLognormal,
			Scaling: svReactorBldgM3, Exponent: 1, DollarYear: 2019, Inflation: InflConcrete},
		{Code: "213.1", Parent: "21", Title: "Balance of Plant Building", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 1400, Scaling: svTurbineBldgM3, Exponent: 1, DollarYear: 2019, Inflation: InflConcrete},
		{Code: "215", Parent: "21", Title: "Control Building", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 1400, Scaling: svControlBldgM3, Exponent: 1, DollarYear: 2019, Inflation: InflConcrete},
		{Code: "216", Parent: "21", Title: "Storage Building", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 900, Scaling: svStorageBldgM3, Exponent: 1, DollarYear: 2019, Inflation: InflConcrete},
		{Code: "218", Parent: "21", Title: "Superstructure", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 1800, Scaling: svSuperstructureM2, Exponent: 1, DollarYear: 2019, Inflation: InflConcrete},

		{Code: "22", Parent: "20", Title: "Reactor Systems", Equation: EqDerived},
		{Code: "221.12", Parent: "22", Title: "Reactor Vessel", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 95, UnitLo: 60, UnitHi: 180, UnitDist: DistLognormal,
			Scaling: svVesselMassKg, Ref: 10000, Exponent: 0.85,
			ExpStd: 0.05, ExpMin: 0.7, ExpMax: 1.0, ExpDist: DistTruncNormal,
			DollarYear: 2018, Inflation: InflSteel},
		{Code: "221.13", Parent: "22", Title: "In-Vessel Shielding", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 120, Scaling: svInShieldMassKg, Exponent: 1, DollarYear: 2018, Inflation: InflSteel},
		{Code: "221.2", Parent: "22", Title: "Control Drums", Learning: LearnFactoryDrums, Equation: EqStandard,
			Unit: 480, UnitLo: 300, UnitHi: 900, UnitDist: DistLognormal,
			Scaling: svDrumMassKg, Ref: 500, Exponent: 0.9,
			ExpStd: 0.05, ExpMin: 0.75, ExpMax: 1.0, ExpDist: DistTruncNormal,
			DollarYear: 2018, Inflation: InflSteel},
		{Code: "221.31", Parent: "22", Title: "Radial and Axial Reflector", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 55, Scaling: svReflectorMassKg, Ref: 20000, Exponent: 0.9, DollarYear: 2018, Inflation: InflGeneral},
		{Code: "221.33", Parent: "22", Title: "Moderator Blocks", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 65, Scaling: svModeratorMassKg, Ref: 20000, Exponent: 0.9, DollarYear: 2018, Inflation: InflGeneral},
		{Code: "222.11", Parent: "22", Title: "Primary Coolant Pumps", Learning: LearnFactoryOther, Equation: EqNonStandard,
			Unit: 25000, Scaling: svPumpMassFlowKgS, Exponent: 0.6, DollarYear: 2018, Inflation: InflSteel},
		{Code: "222.13", Parent: "22", Title: "Primary Circulators", Learning: LearnFactoryOther, Equation: EqNonStandard,
			Unit: 1400000, UnitLo: 900000, UnitHi: 2400000, UnitDist: DistLognormal,
			Scaling: svCirculatorKW, Exponent: 0.74, DollarYear: 2020, Inflation: InflSteel},
		{Code: "222.2", Parent: "22", Title: "Primary Piping", Learning: LearnFactoryOther, Equation: EqStandard,
			Unit: 42000, Scaling: svLoopMassFlowKgS, Ref: 10, Exponent: 0.6, DollarYear: 2018, Inflation: InflSteel},
		{Code: "222.3", Parent: "22", Title: "Intermediate Heat Exchangers", Learning: LearnFactoryOther, Equation: EqStandard,
			Unit: 85, Scaling: svHXMassKg, Ref: 2500, Exponent: 0.8, DollarYear: 2018, Inflation: InflSteel},
		{Code: "222.61", Parent: "22", Title: "Primary Isolation Valves", Learning: LearnFactoryOther, Equation: EqStandard,
			Fixed: 350000, DollarYear: 2018, Inflation: InflSteel},
		{Code: "226", Parent: "22", Title: "Primary Coolant Purification", Learning: LearnFactoryOther, Equation: EqStandard,
			Fixed: 1200000, DollarYear: 2020, Inflation: InflGeneral},

		{Code: "23", Parent: "20", Title: "Energy Conversion Systems", Equation: EqDerived},
		{Code: "231", Parent: "23", Title: "Turbine Generator", Learning: LearnOffTheShelf, Equation: EqStandard,
			Unit: 1300000, UnitLo: 900000, UnitHi: 2000000, UnitDist: DistUniform,
			Scaling: svPowerMWe, Ref: 5, Exponent: 0.8, DollarYear: 2019, Inflation: InflSteel},
		{Code: "232", Parent: "23", Title: "Balance of Plant Heat Exchange", Learning: LearnOffTheShelf, Equation: EqStandard,
			Unit: 260000, Scaling: svPowerMWe, Ref: 5, Exponent: 0.8, DollarYear: 2019, Inflation: InflSteel},
		{Code: "233", Parent: "23", Title: "Condenser and Heat Rejection", Learning: LearnOffTheShelf, Equation: EqStandard,
			Unit: 180000, Scaling: svPowerMWe, Ref: 5, Exponent: 0.8, DollarYear: 2019, Inflation: InflSteel},
		{Code: "235", Parent: "23", Title: "Instrumentation and Control", Learning: LearnFactoryOther, Equation: EqStandard,
			Fixed: 2500000, FixedLo: 1500000, FixedHi: 5000000, FixedDist: DistLognormal,
			DollarYear: 2020, Inflation: InflGeneral},

		{Code: "25", Parent: "20", Title: "Initial Fuel Inventory", Equation: EqDerived},
		{Code: "251", Parent: "25", Title: "Uranium Ore and Conversion", Learning: LearnNone, Equation: EqStandard,
			Unit: 280, UnitLo: 180, UnitHi: 450, UnitDist: DistUniform,
			Scaling: svUraniumMassKg, Exponent: 1, DollarYear: 2021, Inflation: InflGeneral},
		{Code: "253", Parent: "25", Title: "Enrichment", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 120, UnitLo: 80, UnitHi: 200, UnitDist: DistLognormal,
			Scaling: svSWUKg, Exponent: 1, DollarYear: 2021, Inflation: InflGeneral},
		{Code: "254", Parent: "25", Title: "Fuel Fabrication", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 12000, UnitLo: 8000, UnitHi: 22000, UnitDist: DistLognormal,
			Scaling: svUraniumMassKg, Exponent: 1, DollarYear: 2021, Inflation: InflGeneral},

		{Code: "26", Parent: "20", Title: "Radiation Protection Systems", Equation: EqDerived},
		{Code: "261", Parent: "26", Title: "Out-of-Vessel Shielding", Learning: LearnFactoryParts, Equation: EqStandard,
			Unit: 30, Scaling: svOutShieldMassKg, Exponent: 1, DollarYear: 2019, Inflation: InflGeneral},

		// 30 capitalized indirect
		{Code: "30", Title: "Capitalized Indirect Services", Equation: EqDerived},
		{Code: "31", Parent: "30", Title: "Factory and Field Indirect Costs", Equation: EqDerived},
		{Code: "32", Parent: "30", Title: "Factory and Construction Supervision", Equation: EqDerived},
		{Code: "35", Parent: "30", Title: "Design Services", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 6000000, FixedLo: 3000000, FixedHi: 15000000, FixedDist: DistLognormal,
			DollarYear: 2020, Inflation: InflGeneral},

		// 40 capitalized owner's costs
		{Code: "40", Title: "Capitalized Owner's Costs", Equation: EqDerived},
		{Code: "41", Parent: "40", Title: "Owner's Engineering and Oversight", Learning: LearnLicensing, Equation: EqStandard,
			Fixed: 2000000, DollarYear: 2020, Inflation: InflGeneral},
		{Code: "44", Parent: "40", Title: "Transport and Insurance", Learning: LearnNone, Equation: EqStandard,
			Fixed: 800000, DollarYear: 2020, Inflation: InflGeneral},

		// 50 capitalized supplementary (training, startup)
		{Code: "50", Title: "Capitalized Supplementary Costs", Equation: EqDerived},
		{Code: "51", Parent: "50", Title: "Staff Recruitment and Training", Learning: LearnOnsite, Equation: EqStandard,
			Unit: 250000, Scaling: svStaffTotal, Exponent: 1, DollarYear: 2020, Inflation: InflLabor},
		{Code: "53", Parent: "50", Title: "Startup and Commissioning", Learning: LearnOnsite, Equation: EqStandard,
			Fixed: 1500000, DollarYear: 2020, Inflation: InflLabor},

		// 60 financial costs
		{Code: "60", Title: "Financial Costs", Equation: EqDerived},
		{Code: "62", Parent: "60", Title: "Interest During Construction", Equation: EqDerived},

		// 70 annualized O&M
		{Code: "70", Title: "Annualized O&M Costs", Equation: EqDerived},
		{Code: "71", Parent: "70", Title: "Staffing", Equation: EqDerived},
		{Code: "711", Parent: "71", Title: "Onsite Operations Staff", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 160000, UnitLo: 120000, UnitHi: 220000, UnitDist: DistUniform,
			Scaling: svOperators, Exponent: 1, DollarYear: 2021, Inflation: InflLabor},
		{Code: "712", Parent: "71", Title: "Offsite Support Staff", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 1600000, Scaling: svReactorsPerOp, Exponent: 1, DollarYear: 2021, Inflation: InflLabor},
		{Code: "713", Parent: "71", Title: "Security Staff", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 130000, Scaling: svSecurityStaff, Exponent: 1, DollarYear: 2021, Inflation: InflLabor},
		{Code: "72", Parent: "70", Title: "Consumables", Equation: EqDerived},
		{Code: "721", Parent: "72", Title: "Coolant Makeup", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 28, Scaling: svCoolantInvKg, Exponent: 1, DollarYear: 2021, Inflation: InflGeneral},
		{Code: "74", Parent: "70", Title: "Fees and Insurance", Learning: LearnNone, Equation: EqStandard,
			Fixed: 400000, DollarYear: 2021, Inflation: InflGeneral},
		{Code: "75", Parent: "70", Title: "Annualized Capital Expenditures", Equation: EqDerived},
		{Code: "751", Parent: "75", Title: "Vessel Replacement", Equation: EqDerived},
		{Code: "752", Parent: "75", Title: "Moderator Block Replacement", Equation: EqDerived},
		{Code: "753", Parent: "75", Title: "In-Vessel Shielding Replacement", Equation: EqDerived},
		{Code: "754", Parent: "75", Title: "Reflector Replacement", Equation: EqDerived},
		{Code: "755", Parent: "75", Title: "Control Drum Replacement", Equation: EqDerived},
		{Code: "756", Parent: "75", Title: "Heat Exchanger Replacement", Equation: EqDerived},
		{Code: "759", Parent: "75", Title: "Other Maintenance Capital", Equation: EqDerived},
		{Code: "78", Parent: "70", Title: "Annualized Decommissioning Cost", Equation: EqDerived},

		// 80 annualized fuel
		{Code: "80", Title: "Annualized Fuel Costs", Equation: EqDerived},
		{Code: "81", Parent: "80", Title: "Refueling Operations", Learning: LearnNone, Equation: EqNonStandard,
			Unit: 90000, Scaling: svOperators, Exponent: 1, DollarYear: 2021, Inflation: InflLabor},
		{Code: "82", Parent: "80", Title: "Annualized Fuel Cost", Equation: EqDerived},
	}
}
