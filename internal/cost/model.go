// Package cost implements the bottom-up capital cost and LCOE estimate over
// the embedded code-of-accounts database. The model is pure: the same
// inputs always produce the same estimate, and every out-of-range input or
// intermediate fails with a ModelError instead of being clamped.
package cost

import (
	"math"

	"github.com/okhalaf/mreval/internal/engineering"
	"github.com/okhalaf/mreval/internal/params"
)

// Inputs collects everything the cost model consumes: the design and
// economic parameter sets, the derived plant quantities, and the fuel
// lifetime from the neutronics solution.
type Inputs struct {
	Design           params.Design
	Econ             params.Economics
	Plant            engineering.Plant
	FuelLifetimeDays float64
}

// Model evaluates cost estimates against the embedded account database.
type Model struct {
	accounts []Account
	index    map[string]Account
	children map[string][]string
}

// NewModel builds a model over the embedded database.
func NewModel() *Model {
	accounts := Database()
	m := &Model{
		accounts: accounts,
		index:    make(map[string]Account, len(accounts)),
		children: make(map[string][]string),
	}
	for _, a := range accounts {
		m.index[a.Code] = a
		if a.Parent != "" {
			m.children[a.Parent] = append(m.children[a.Parent], a.Code)
		}
	}
	return m
}

// Estimate runs the full pipeline. With Samples > 1 the per-account costs
// are drawn from their uncertainty distributions and the reported figures
// are means over the draws.
func (m *Model) Estimate(in Inputs) (Estimate, error) {
	cf, err := engineering.CapacityFactor(in.Econ, in.FuelLifetimeDays)
	if err != nil {
		return Estimate{}, modelErrf("", "%v", err)
	}
	annualGen := engineering.AnnualGenerationMWh(in.Plant.PowerMWe, cf)
	if annualGen <= 0 {
		return Estimate{}, modelErrf("", "annual generation %.2f MWh is not positive", annualGen)
	}

	samples := in.Econ.Samples
	if samples < 1 {
		samples = 1
	}
	var smp *sampler
	if samples > 1 {
		smp = newSampler(uint64(in.Econ.Seed))
	}

	values := scalingValues(in.Design, in.Econ, in.Plant)
	multipliers := learningMultipliers(in.Econ)

	foaks := make([]Breakdown, 0, samples)
	noaks := make([]Breakdown, 0, samples)
	for i := 0; i < samples; i++ {
		leaves, err := m.scaleLeaves(in, values, smp)
		if err != nil {
			return Estimate{}, err
		}
		applyMultiplicity(leaves, in.Design)

		noakLeaves := make(map[string]float64, len(leaves))
		for code, v := range leaves {
			noakLeaves[code] = v * multipliers[m.index[code].Learning]
		}

		foak, err := m.assemble(leaves, in, annualGen)
		if err != nil {
			return Estimate{}, err
		}
		noak, err := m.assemble(noakLeaves, in, annualGen)
		if err != nil {
			return Estimate{}, err
		}
		foaks = append(foaks, foak)
		noaks = append(noaks, noak)
	}

	est := Estimate{
		FOAK:                meanBreakdowns(foaks),
		NOAK:                meanBreakdowns(noaks),
		CapacityFactor:      cf,
		AnnualGenerationMWh: annualGen,
		Samples:             samples,
	}
	est.LCOEStdFOAK = lcoeStd(foaks, est.FOAK.LCOE)
	est.LCOEStdNOAK = lcoeStd(noaks, est.NOAK.LCOE)
	if err := est.FOAK.checkConsistent(); err != nil {
		return Estimate{}, err
	}
	if err := est.NOAK.checkConsistent(); err != nil {
		return Estimate{}, err
	}
	return est, nil
}

func (m *Model) scaleLeaves(in Inputs, values map[string]float64, smp *sampler) (map[string]float64, error) {
	leaves := make(map[string]float64)
	for _, a := range m.accounts {
		if a.Equation == EqDerived {
			continue
		}
		c, err := scaleAccount(a, in.Design, in.Econ, values, smp)
		if err != nil {
			return nil, err
		}
		leaves[a.Code] = c
	}
	return leaves, nil
}

// assemble runs the rollup and derived-account stages over one set of leaf
// costs and finishes with the discounted cash-flow LCOE.
func (m *Model) assemble(leaves map[string]float64, in Inputs, annualGen float64) (Breakdown, error) {
	costs := make(map[string]float64, len(m.accounts))
	for code, v := range leaves {
		costs[code] = v
	}
	e := in.Econ

	// base accounts
	m.rollup(costs, "10")
	m.rollup(costs, "20")

	// indirect from field-cost ratios
	fieldDirect := costs["21"] + costs["22"] + costs["23"]
	costs["31"] = e.IndirectToDirectRatio * fieldDirect
	if costs["22"] == 0 {
		return Breakdown{}, modelErrf("32", "reactor systems cost is zero, supervision ratio undefined")
	}
	costs["32"] = costs["21"] * costs["31"] / costs["22"]

	// annualized capital replacements over refueling cycles; moderator
	// blocks are replaced with the fuel every cycle
	cycleYears := (in.FuelLifetimeDays + e.RefuelingDays + e.StartupAfterRefuelDays) / 365
	costs["751"] = costs["221.12"] * crf(e.InterestRate, cycleYears*e.VesselReplacementCycles)
	costs["752"] = costs["221.33"] * crf(e.InterestRate, cycleYears)
	costs["753"] = costs["221.13"] * crf(e.InterestRate, cycleYears*e.ShieldReplacementCycles)
	costs["754"] = costs["221.31"] * crf(e.InterestRate, cycleYears*e.ReflectorReplacementCycles)
	costs["755"] = costs["221.2"] * crf(e.InterestRate, cycleYears*e.DrumReplacementCycles)
	costs["756"] = costs["222.3"] * crf(e.InterestRate, cycleYears*e.HXReplacementCycles)
	replaced := costs["221.12"] + costs["221.33"] + costs["221.13"] +
		costs["221.31"] + costs["221.2"] + costs["222.3"]
	costs["759"] = (costs["20"] - replaced) * e.MaintenanceToDirectRatio

	// annualized fuel over the refueling cycle
	costs["82"] = costs["25"] * crf(e.InterestRate, cycleYears)

	// decommissioning annuity on the capital base
	decomFV := (costs["10"] + costs["20"]) * e.DecommissioningRatio
	costs["78"] = decomFV * sinkingFund(e.AnnualReturn, float64(e.LevelizationYears))

	m.rollup(costs, "30")
	m.rollup(costs, "40")
	m.rollup(costs, "50")

	occ := costs["10"] + costs["20"] + costs["30"] + costs["40"] + costs["50"]
	costs["62"] = interestDuringConstruction(e, occ)
	m.rollup(costs, "60")
	tci := occ + costs["60"]

	m.rollup(costs, "70")
	m.rollup(costs, "80")

	lcoe, capL, omL, fuelL := levelize(tci, costs["70"], costs["80"],
		annualGen, e.LevelizationYears, e.InterestRate)

	b := Breakdown{
		Preconstruction:            costs["10"],
		Direct:                     costs["20"],
		Indirect:                   costs["30"],
		OwnersCost:                 costs["40"],
		Training:                   costs["50"],
		InterestDuringConstruction: costs["60"],
		OCC:                        occ,
		TCI:                        tci,
		AnnualOM:                   costs["70"],
		AnnualFuel:                 costs["80"],
		LCOE:                       lcoe,
		LCOECapital:                capL,
		LCOEOM:                     omL,
		LCOEFuel:                   fuelL,
		Accounts:                   costs,
	}
	return b, nil
}

// rollup fills every derived account under root with the sum of its
// children, depth first. Leaf costs are left untouched.
func (m *Model) rollup(costs map[string]float64, root string) float64 {
	children := m.children[root]
	if len(children) == 0 {
		return costs[root]
	}
	var sum float64
	for _, c := range children {
		sum += m.rollup(costs, c)
	}
	costs[root] = sum
	return sum
}

// levelize computes the discounted cash-flow LCOE: capital lands in year
// zero, the annual costs and generation run over the levelization period.
func levelize(capital, annualOM, annualFuel, annualGen float64, years int, rate float64) (lcoe, capL, omL, fuelL float64) {
	var sumCost, sumElec float64
	capL = capital
	for i := 1; i <= years; i++ {
		disc := math.Pow(1+rate, float64(i))
		sumCost += (annualOM + annualFuel) / disc
		omL += annualOM / disc
		fuelL += annualFuel / disc
		sumElec += annualGen / disc
	}
	sumCost += capital
	lcoe = sumCost / sumElec
	capL /= sumElec
	omL /= sumElec
	fuelL /= sumElec
	return lcoe, capL, omL, fuelL
}
