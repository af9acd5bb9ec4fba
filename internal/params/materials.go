package params

// MaterialKind classifies catalog entries so validation can check that a
// referenced material makes sense for its slot (a coolant cannot be used
// as drum absorber, and so on).
type MaterialKind int

const (
	KindFuel MaterialKind = iota
	KindCoolant
	KindModerator
	KindReflector
	KindAbsorber
	KindStructure
	KindShield
)

// Material is one entry of the materials catalog.
type Material struct {
	Name    string
	Kind    MaterialKind
	Density float64 // g/cm3
	// SpecificHeat is set for coolants only, J/(kg K).
	SpecificHeat float64
}

// Catalog resolves material names referenced by a Design.
type Catalog struct {
	entries map[string]Material
}

// DefaultCatalog returns the built-in materials catalog. Densities follow
// standard handbook values for the materials used in microreactor designs.
func DefaultCatalog() *Catalog {
	list := []Material{
		{Name: "UO2", Kind: KindFuel, Density: 10.97},
		{Name: "UN", Kind: KindFuel, Density: 14.3},
		{Name: "UC", Kind: KindFuel, Density: 13.63},
		{Name: "UCO", Kind: KindFuel, Density: 11.4},
		{Name: "TRIGA_fuel", Kind: KindFuel, Density: 5.95},
		{Name: "homog_TRISO", Kind: KindFuel, Density: 2.48},

		{Name: "Helium", Kind: KindCoolant, Density: 0.0033297, SpecificHeat: 5193},
		{Name: "NaK", Kind: KindCoolant, Density: 0.868, SpecificHeat: 982},
		{Name: "homog_heatpipe", Kind: KindCoolant, Density: 6.2},

		{Name: "Graphite", Kind: KindModerator, Density: 1.7},
		{Name: "monolith_graphite", Kind: KindModerator, Density: 1.75},
		{Name: "ZrH", Kind: KindModerator, Density: 5.66},
		{Name: "YHx", Kind: KindModerator, Density: 4.28},

		{Name: "Be", Kind: KindReflector, Density: 1.85},
		{Name: "BeO", Kind: KindReflector, Density: 3.02},

		{Name: "B4C_natural", Kind: KindAbsorber, Density: 2.52},
		{Name: "B4C_enriched", Kind: KindAbsorber, Density: 2.52},

		{Name: "stainless_steel", Kind: KindStructure, Density: 8.0},
		{Name: "SS316", Kind: KindStructure, Density: 8.0},
		{Name: "SS304", Kind: KindStructure, Density: 7.93},
		{Name: "SA508", Kind: KindStructure, Density: 7.85},
		{Name: "low_alloy_steel", Kind: KindStructure, Density: 7.85},
		{Name: "Zr", Kind: KindStructure, Density: 6.52},
		{Name: "SiC", Kind: KindStructure, Density: 3.21},
		{Name: "PyC", Kind: KindStructure, Density: 1.9},
		{Name: "buffer_graphite", Kind: KindStructure, Density: 1.05},

		{Name: "WEP", Kind: KindShield, Density: 1.1},
	}

	c := &Catalog{entries: make(map[string]Material, len(list))}
	for _, m := range list {
		c.entries[m.Name] = m
	}
	return c
}

// Lookup returns the material entry for name.
func (c *Catalog) Lookup(name string) (Material, bool) {
	m, ok := c.entries[name]
	return m, ok
}

// Density returns the density of name in g/cm3, or 0 if unknown.
func (c *Catalog) Density(name string) float64 {
	return c.entries[name].Density
}

// Graphite also moderates in reflector position; the reflector slot accepts
// both kinds.
func (c *Catalog) validSlot(name string, kinds ...MaterialKind) bool {
	m, ok := c.entries[name]
	if !ok {
		return false
	}
	for _, k := range kinds {
		if m.Kind == k {
			return true
		}
	}
	return false
}
