package cost

import (
	"math"

	"github.com/okhalaf/mreval/internal/params"
)

// crf is the capital recovery factor for the given rate and period in
// years. A zero period means the component is never replaced and recovers
// nothing.
func crf(rate, periodYears float64) float64 {
	if periodYears <= 0 {
		return 0
	}
	g := math.Pow(1+rate, periodYears)
	return rate * g / (g - 1)
}

// sinkingFund converts a future value due after periodYears into the level
// annual payment that accumulates to it at the given return.
func sinkingFund(rate, periodYears float64) float64 {
	return rate / (math.Pow(1+rate, periodYears) - 1)
}

// interestDuringConstruction is the financing cost accrued over the build,
// from the closed-form approximation of a sinusoidal spend profile.
func interestDuringConstruction(e params.Economics, occ float64) float64 {
	months := float64(e.ConstructionMonths)
	b := 1 + math.Exp(math.Log(1+e.InterestRate)*months/12)
	c := math.Pow(math.Log(1+e.InterestRate)*(months/12)/3.14, 2) + 1
	return e.DebtToEquity * occ * (0.5*b/c - 1)
}

// learningMultiplier is the FOAK to NOAK cost multiplier for a class with
// the given learning rate at unit n. Learning plateaus at the 100th unit.
func learningMultiplier(rate float64, units int) float64 {
	if units < 1 {
		units = 1
	}
	return math.Pow(1-rate, math.Log2(math.Min(100, float64(units))))
}

// learningMultipliers resolves every learning class to its multiplier for
// this run. Onsite learning assumes twice the fleet size, since siting work
// repeats per installation rather than per factory order.
func learningMultipliers(e params.Economics) map[LearningClass]float64 {
	n := e.NOAKUnits()
	lr := e.Learning
	return map[LearningClass]float64{
		LearnNone:         learningMultiplier(lr.None, n),
		LearnLicensing:    learningMultiplier(lr.Licensing, n),
		LearnFactoryParts: learningMultiplier(lr.FactoryParts, n),
		LearnFactoryDrums: learningMultiplier(lr.FactoryDrums, n),
		LearnFactoryOther: learningMultiplier(lr.FactoryOther, n),
		LearnOffTheShelf:  learningMultiplier(lr.OffTheShelf, n),
		LearnOnsite:       learningMultiplier(lr.Onsite, 2*n),
	}
}
