package cost

import "math"

// sumTolerance is the relative tolerance on the capital sum identity.
const sumTolerance = 1e-6

// Breakdown is the rolled-up cost estimate for one variant (FOAK or NOAK).
// All capital figures are escalation-year dollars; LCOE figures are $/MWh.
type Breakdown struct {
	Preconstruction            float64 `json:"preconstruction"`
	Direct                     float64 `json:"direct"`
	Indirect                   float64 `json:"indirect"`
	OwnersCost                 float64 `json:"owners_cost"`
	Training                   float64 `json:"training"`
	InterestDuringConstruction float64 `json:"interest_during_construction"`

	OCC float64 `json:"occ"`
	TCI float64 `json:"tci"`

	AnnualOM   float64 `json:"annual_om"`
	AnnualFuel float64 `json:"annual_fuel"`

	LCOE        float64 `json:"lcoe"`
	LCOECapital float64 `json:"lcoe_capital"`
	LCOEOM      float64 `json:"lcoe_om"`
	LCOEFuel    float64 `json:"lcoe_fuel"`

	// Accounts holds every account's rolled-up cost by code.
	Accounts map[string]float64 `json:"accounts"`
}

// TotalCapital is the sum of the capitalized categories. It equals TCI by
// construction; checkConsistent enforces the identity.
func (b Breakdown) TotalCapital() float64 {
	return b.Preconstruction + b.Direct + b.Indirect + b.OwnersCost +
		b.Training + b.InterestDuringConstruction
}

func (b Breakdown) checkConsistent() error {
	for name, v := range map[string]float64{
		"preconstruction": b.Preconstruction,
		"direct":          b.Direct,
		"indirect":        b.Indirect,
		"owners_cost":     b.OwnersCost,
		"training":        b.Training,
		"idc":             b.InterestDuringConstruction,
		"annual_om":       b.AnnualOM,
		"annual_fuel":     b.AnnualFuel,
		"occ":             b.OCC,
		"tci":             b.TCI,
		"lcoe":            b.LCOE,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return modelErrf("", "%s is not finite", name)
		}
		if v < 0 {
			return modelErrf("", "%s is negative (%.2f)", name, v)
		}
	}
	if diff := math.Abs(b.TotalCapital() - b.TCI); diff > sumTolerance*b.TCI {
		return modelErrf("", "capital categories sum to %.2f but TCI is %.2f", b.TotalCapital(), b.TCI)
	}
	return nil
}

// Estimate is the full output of one cost-model run.
type Estimate struct {
	FOAK Breakdown `json:"foak"`
	NOAK Breakdown `json:"noak"`

	CapacityFactor      float64 `json:"capacity_factor"`
	AnnualGenerationMWh float64 `json:"annual_generation_mwh"`

	// Samples is how many uncertainty draws the figures average over;
	// 1 means nominal values. The std fields are zero for a single sample.
	Samples     int     `json:"samples"`
	LCOEStdFOAK float64 `json:"lcoe_std_foak,omitempty"`
	LCOEStdNOAK float64 `json:"lcoe_std_noak,omitempty"`
}

func meanBreakdowns(bs []Breakdown) Breakdown {
	n := float64(len(bs))
	var out Breakdown
	out.Accounts = make(map[string]float64)
	for _, b := range bs {
		out.Preconstruction += b.Preconstruction / n
		out.Direct += b.Direct / n
		out.Indirect += b.Indirect / n
		out.OwnersCost += b.OwnersCost / n
		out.Training += b.Training / n
		out.InterestDuringConstruction += b.InterestDuringConstruction / n
		out.OCC += b.OCC / n
		out.TCI += b.TCI / n
		out.AnnualOM += b.AnnualOM / n
		out.AnnualFuel += b.AnnualFuel / n
		out.LCOE += b.LCOE / n
		out.LCOECapital += b.LCOECapital / n
		out.LCOEOM += b.LCOEOM / n
		out.LCOEFuel += b.LCOEFuel / n
		for code, v := range b.Accounts {
			out.Accounts[code] += v / n
		}
	}
	return out
}

func lcoeStd(bs []Breakdown, mean float64) float64 {
	if len(bs) < 2 {
		return 0
	}
	var ss float64
	for _, b := range bs {
		d := b.LCOE - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(bs)-1))
}
