package cost

import (
	"math"

	"github.com/okhalaf/mreval/internal/engineering"
	"github.com/okhalaf/mreval/internal/params"
)

// scalingValues builds the table the account scaling variables resolve
// against. A variable that resolves to zero zeroes its account, which is
// how configuration-dependent accounts (pumps vs circulators, optional
// shields) drop out of a given design. The coolant drive variables are
// mutually exclusive by coolant phase; the loop mass flow itself is always
// present because piping scales on it in either configuration.
func scalingValues(d params.Design, e params.Economics, p engineering.Plant) map[string]float64 {
	pumpFlow, circulatorKW := 0.0, 0.0
	if d.Coolant == "Helium" {
		circulatorKW = p.CirculatorPowerW / 1000
	} else {
		pumpFlow = p.LoopMassFlowKgS
	}
	return map[string]float64{
		svLandAcres:        e.LandAreaAcres,
		svExcavationM3:     e.ExcavationVolumeM3,
		svReactorBldgM3:    e.ReactorBuildingM3,
		svTurbineBldgM3:    e.TurbineBuildingM3,
		svControlBldgM3:    e.ControlBuildingM3,
		svStorageBldgM3:    e.StorageBuildingM3,
		svSuperstructureM2: e.SuperstructureAreaM2,

		svVesselMassKg:    p.VesselMass,
		svInShieldMassKg:  p.InShieldMass,
		svOutShieldMassKg: p.OutShieldMass,
		svDrumMassKg:      p.DrumMass,
		svReflectorMassKg: p.ReflectorMass + p.AxialReflectorMass,
		svModeratorMassKg: p.ModeratorMass,
		svLoopMassFlowKgS: p.LoopMassFlowKgS,
		svPumpMassFlowKgS: pumpFlow,
		svCirculatorKW:    circulatorKW,
		svHXMassKg:        p.HXMass,

		svPowerMWe: p.PowerMWe,
		svPowerMWt: d.PowerMWt,

		svUraniumMassKg: p.UraniumMassKg,
		svSWUKg:         p.SWUKg,

		svOperators:     float64(e.Operators),
		svReactorsPerOp: e.ReactorsPerOperator,
		svSecurityStaff: e.SecurityStaffPerShift,
		svCoolantInvKg:  e.OnsiteCoolantInventoryKg,
		svStaffTotal: float64(e.Operators)*e.FTEsPerOnsiteOperator +
			e.SecurityStaffPerShift*e.FTEsPerSecurityStaff,
	}
}

// scaleAccount computes the escalated FOAK cost of one leaf account. The
// sampler draws uncertain figures when the run asks for more than one
// sample; with a nil sampler the nominal values are used.
func scaleAccount(a Account, d params.Design, e params.Economics,
	values map[string]float64, smp *sampler) (float64, error) {

	mult, err := escalationMultiplier(a.Inflation, a.DollarYear, e.EscalationYear)
	if err != nil {
		return 0, modelErrf(a.Code, "%v", err)
	}

	fixed := a.Fixed
	unit := a.Unit
	exponent := a.Exponent
	if smp != nil {
		fixed = smp.draw(a.FixedDist, a.Fixed, a.FixedLo, a.FixedHi)
		unit = smp.draw(a.UnitDist, a.Unit, a.UnitLo, a.UnitHi)
		exponent = smp.drawExponent(a.ExpDist, a.Exponent, a.ExpStd, a.ExpMin, a.ExpMax)
	}
	fixed *= mult
	unit *= mult

	sv := 0.0
	if a.Scaling != "" {
		v, ok := values[a.Scaling]
		if !ok {
			return 0, modelErrf(a.Code, "unknown scaling variable %q", a.Scaling)
		}
		if v == 0 {
			// variable declared but absent from this design
			return 0, nil
		}
		sv = v
	}

	var cost float64
	switch a.Equation {
	case EqStandard:
		if a.Ref > 0 {
			cost = fixed + unit*math.Pow(sv, exponent)/math.Pow(a.Ref, exponent-1)
		} else {
			cost = fixed + unit*sv
		}
	case EqNonStandard:
		cost, err = nonStandardCost(a.Code, unit, sv, exponent, d, e)
		if err != nil {
			return 0, err
		}
	default:
		return 0, modelErrf(a.Code, "derived account has no scaling law")
	}

	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, modelErrf(a.Code, "scaled cost is not finite")
	}
	if cost < 0 {
		return 0, modelErrf(a.Code, "scaled cost is negative (%.2f)", cost)
	}
	return cost, nil
}

// nonStandardCost holds the per-account correlations that do not follow the
// standard power law.
func nonStandardCost(code string, unit, sv, exponent float64,
	d params.Design, e params.Economics) (float64, error) {

	switch code {
	case "222.11": // liquid coolant pumps, efficiency-penalized
		m := 0.2/(1-d.PumpEff) + 1
		return m * unit * math.Pow(sv, exponent), nil

	case "222.13": // helium circulators, temperature and rated-load correlation
		m := math.Pow((d.OutletTempK-273.15)/650, 1.29) *
			math.Pow(sv/1000/2.6, exponent)
		return m * unit, nil

	case "253": // enrichment with the HALEU price premium
		premium := 1.0
		switch {
		case d.Enrichment < 0.1:
			premium = 1.0
		case d.Enrichment < 0.2:
			premium = 1.15
		default:
			return 0, modelErrf(code, "enrichment %.3f above the 20%% supply limit", d.Enrichment)
		}
		return premium * unit * math.Pow(sv, exponent), nil

	case "711":
		return e.FTEsPerOnsiteOperator * unit * math.Pow(sv, exponent), nil

	case "712": // shared offsite staff, split across the fleet
		return e.FTEsPerOffsiteOperator * unit * math.Pow(1/sv, exponent), nil

	case "713":
		return e.FTEsPerSecurityStaff * unit * math.Pow(sv, exponent), nil

	case "721":
		return e.CoolantResupplyPerYear * unit * sv, nil

	case "81":
		return e.FTEsPerOnsiteOperator * unit * math.Pow(sv, exponent), nil
	}
	return 0, modelErrf(code, "no non-standard correlation registered")
}

// applyMultiplicity scales the loop-dependent accounts by the configured
// redundancy: every primary-loop account by the loop count, the balance of
// plant train and its building by the BoP count, and purification by its
// presence flag.
func applyMultiplicity(costs map[string]float64, d params.Design) {
	for code := range costs {
		switch {
		case len(code) >= 3 && code[:3] == "222":
			costs[code] *= float64(d.PrimaryLoopCount)
		case code == "232" || code == "213.1":
			costs[code] *= float64(d.BoPCount)
		case code == "226":
			if !d.LoopPurified {
				costs[code] = 0
			}
		}
	}
}
