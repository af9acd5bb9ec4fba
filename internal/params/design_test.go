package params

import (
	"errors"
	"testing"
)

func TestDefaultDesignValidates(t *testing.T) {
	cat := DefaultCatalog()
	if err := DefaultGCMRDesign().Validate(cat); err != nil {
		t.Fatalf("default design should validate: %v", err)
	}
	if err := DefaultEconomics().Validate(); err != nil {
		t.Fatalf("default economics should validate: %v", err)
	}
}

func TestDesignValidation(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		name   string
		mutate func(*Design)
		field  string
	}{
		{"zero power", func(d *Design) { d.PowerMWt = 0 }, "power_mwt"},
		{"negative height", func(d *Design) { d.ActiveHeight = -10 }, "active_height"},
		{"efficiency above one", func(d *Design) { d.ThermalEfficiency = 1.2 }, "thermal_efficiency"},
		{"enrichment above HALEU", func(d *Design) { d.Enrichment = 0.25 }, "enrichment"},
		{"zero enrichment", func(d *Design) { d.Enrichment = 0 }, "enrichment"},
		{"packing fraction above one", func(d *Design) { d.PackingFraction = 1.1 }, "packing_fraction"},
		{"unknown fuel", func(d *Design) { d.Fuel = "thorium_oxide" }, "fuel"},
		{"coolant as fuel", func(d *Design) { d.Fuel = "Helium" }, "fuel"},
		{"non-increasing radii", func(d *Design) { d.FuelPinRadii = []float64{0.04, 0.03} }, "fuel_pin_radii"},
		{"absorber thicker than drum", func(d *Design) { d.DrumAbsorberThickness = 20 }, "drum_absorber_thickness"},
		{"inverted loop temperatures", func(d *Design) { d.OutletTempK = d.InletTempK - 1 }, "outlet_temperature"},
		{"bad reactor type", func(d *Design) { d.ReactorType = "PWR" }, "reactor_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultGCMRDesign()
			tt.mutate(&d)
			err := d.Validate(cat)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestEconomicsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Economics)
	}{
		{"zero interest", func(e *Economics) { e.InterestRate = 0 }},
		{"zero refueling", func(e *Economics) { e.RefuelingDays = 0 }},
		{"negative scrams", func(e *Economics) { e.EmergencyShutdownsPerYr = -1 }},
		{"learning rate of one", func(e *Economics) { e.Learning.Onsite = 1 }},
		{"zero samples", func(e *Economics) { e.Samples = 0 }},
		{"zero levelization", func(e *Economics) { e.LevelizationYears = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DefaultEconomics()
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPowerMWe(t *testing.T) {
	d := DefaultGCMRDesign()
	d.PowerMWt = 10
	d.ThermalEfficiency = 0.3
	if got := d.PowerMWe(); got != 3.0 {
		t.Errorf("expected 3 MWe, got %g", got)
	}
}
