package cost

// InflationType picks the price index used to escalate an account's dollar
// year to the run's escalation year.
type InflationType string

const (
	InflNone     InflationType = "none"
	InflGeneral  InflationType = "general"
	InflSteel    InflationType = "steel"
	InflConcrete InflationType = "concrete"
	InflLabor    InflationType = "labor"
)

// Price indices, 2015 = 100. General tracks CPI, the commodity and labor
// series track the relevant producer price indices.
var priceIndex = map[InflationType]map[int]float64{
	InflGeneral: {
		2015: 100.0, 2016: 101.3, 2017: 103.4, 2018: 105.9, 2019: 107.8,
		2020: 109.1, 2021: 114.2, 2022: 123.4, 2023: 128.5, 2024: 132.2,
	},
	InflSteel: {
		2015: 100.0, 2016: 97.2, 2017: 104.1, 2018: 113.6, 2019: 110.9,
		2020: 108.3, 2021: 168.2, 2022: 186.4, 2023: 160.1, 2024: 155.3,
	},
	InflConcrete: {
		2015: 100.0, 2016: 103.1, 2017: 106.4, 2018: 109.9, 2019: 113.0,
		2020: 115.6, 2021: 121.4, 2022: 135.8, 2023: 146.9, 2024: 152.1,
	},
	InflLabor: {
		2015: 100.0, 2016: 102.2, 2017: 104.8, 2018: 107.9, 2019: 111.0,
		2020: 114.3, 2021: 119.2, 2022: 125.4, 2023: 131.1, 2024: 136.6,
	},
}

// escalationMultiplier converts dollars of baseYear into dollars of
// escalationYear on the account's index. Mixing dollar years the index does
// not cover is an error, never a silent pass-through.
func escalationMultiplier(infl InflationType, baseYear, escalationYear int) (float64, error) {
	if infl == InflNone {
		return 1, nil
	}
	series, ok := priceIndex[infl]
	if !ok {
		return 0, modelErrf("", "unknown inflation type %q", infl)
	}
	base, ok := series[baseYear]
	if !ok {
		return 0, modelErrf("", "dollar year %d not covered by the %s price index", baseYear, infl)
	}
	target, ok := series[escalationYear]
	if !ok {
		return 0, modelErrf("", "escalation year %d not covered by the %s price index", escalationYear, infl)
	}
	return target / base, nil
}
