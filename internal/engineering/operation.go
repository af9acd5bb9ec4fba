package engineering

import (
	"fmt"

	"github.com/okhalaf/mreval/internal/params"
)

const hoursPerYear = 8760

// CapacityFactor derives the fraction of rated energy the plant delivers,
// accounting for refueling outages over the fuel cycle and unplanned scram
// recovery time.
func CapacityFactor(e params.Economics, fuelLifetimeDays float64) (float64, error) {
	if fuelLifetimeDays <= 0 {
		return 0, fmt.Errorf("fuel lifetime must be positive, got %g days", fuelLifetimeDays)
	}
	cycleDays := fuelLifetimeDays + e.RefuelingDays + e.StartupAfterRefuelDays
	cycleAvailability := fuelLifetimeDays / cycleDays

	scramOutage := e.EmergencyShutdownsPerYr * e.StartupAfterScramDays / 365
	cf := cycleAvailability * (1 - scramOutage)
	if cf <= 0 || cf > 1 {
		return 0, fmt.Errorf("derived capacity factor %g is outside (0,1]", cf)
	}
	return cf, nil
}

// AnnualGenerationMWh is the energy delivered per year at the given
// capacity factor.
func AnnualGenerationMWh(powerMWe, capacityFactor float64) float64 {
	return powerMWe * capacityFactor * hoursPerYear
}
