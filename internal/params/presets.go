package params

// DefaultGCMRDesign returns the nominal gas-cooled microreactor baseline.
// Values follow the reference 15 MWt TRISO-fueled helium design.
func DefaultGCMRDesign() Design {
	return Design{
		ReactorType:       GCMR,
		PowerMWt:          15,
		ThermalEfficiency: 0.33,
		HeatFluxLimit:     0.9,

		Fuel:          "UN",
		Enrichment:    0.1975,
		Coolant:       "Helium",
		Moderator:     "Graphite",
		Reflector:     "Graphite",
		DrumAbsorber:  "B4C_enriched",
		DrumReflector: "Graphite",
		Temperature:   850,

		FuelPinRadii:      []float64{0.025, 0.035, 0.039, 0.0425, 0.047},
		CompactFuelRadius: 0.6225,
		PackingFraction:   0.3,
		CoolantChannelRad: 0.35,
		LatticePitch:      2.25,
		AssemblyRings:     6,
		CoreRings:         5,
		ActiveHeight:      160,

		ReflectorThickness:      15,
		AxialReflectorThickness: 15,

		DrumRadius:            10,
		DrumAbsorberThickness: 1,
		DrumCount:             24,

		VesselThickness:      1,
		VesselMaterial:       "stainless_steel",
		VesselPlenumHeight:   47.152,
		VesselBottomDepth:    32.129,
		InShieldThickness:    0,
		InShieldMaterial:     "B4C_natural",
		OutShieldThickness:   39.37,
		OutShieldMaterial:    "WEP",
		OutShieldDensityFrac: 0.5,

		InletTempK:         300 + 273.15,
		OutletTempK:        550 + 273.15,
		LoopPressureDropPa: 50e3,
		CompressorEff:      0.8,
		PumpEff:            0.75,
		PrimaryLoopCount:   2,
		BoPCount:           2,
		HXMaterial:         "SS316",
		HXMassKg:           2500,
		LoopPurified:       true,

		Particles:  10000,
		Batches:    120,
		SkipCycles: 20,
	}
}

// DefaultEconomics returns the nominal economic and operational baseline.
func DefaultEconomics() Economics {
	return Economics{
		EscalationYear:     2024,
		InterestRate:       0.07,
		ConstructionMonths: 12,
		DebtToEquity:       0.5,
		AnnualReturn:       0.0475,

		LevelizationYears:        60,
		RefuelingDays:            7,
		StartupAfterRefuelDays:   2,
		StartupAfterScramDays:    14,
		EmergencyShutdownsPerYr:  0.2,
		Operators:                2,
		ReactorsPerOperator:      10,
		SecurityStaffPerShift:    1,
		FTEsPerOnsiteOperator:    4.5,
		FTEsPerOffsiteOperator:   4.5,
		FTEsPerSecurityStaff:     4.5,
		CoolantResupplyPerYear:   1,
		OnsiteCoolantInventoryKg: 2012,

		LandAreaAcres:        18,
		ExcavationVolumeM3:   412.6,
		ReactorBuildingM3:    190,
		TurbineBuildingM3:    24,
		ControlBuildingM3:    24,
		StorageBuildingM3:    34,
		SuperstructureAreaM2: 77,

		IndirectToDirectRatio:      0.7,
		MaintenanceToDirectRatio:   0.015,
		DecommissioningRatio:       0.15,
		VesselReplacementCycles:    10,
		ReflectorReplacementCycles: 10,
		DrumReplacementCycles:      10,
		ShieldReplacementCycles:    10,
		HXReplacementCycles:        10,

		NOAKUnitNumber: 10,
		Learning: LearningRates{
			None:         0,
			Licensing:    0.3,
			FactoryParts: 0.15,
			FactoryDrums: 0.15,
			FactoryOther: 0.1,
			Onsite:       0.2,
			OffTheShelf:  0.05,
		},

		Samples: 1,
		Seed:    23,
	}
}
