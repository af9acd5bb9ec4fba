package neutronics

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okhalaf/mreval/internal/params"
)

// OpenMC XML input documents. Only the elements the renderer emits are
// modeled; the solver ignores nothing we write here.

type xmlMaterials struct {
	XMLName   xml.Name      `xml:"materials"`
	Materials []xmlMaterial `xml:"material"`
}

type xmlMaterial struct {
	ID       int          `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Density  xmlDensity   `xml:"density"`
	Nuclides []xmlNuclide `xml:"nuclide"`
}

type xmlDensity struct {
	Value float64 `xml:"value,attr"`
	Units string  `xml:"units,attr"`
}

type xmlNuclide struct {
	Name string  `xml:"name,attr"`
	WO   float64 `xml:"wo,attr"`
}

type xmlGeometry struct {
	XMLName  xml.Name     `xml:"geometry"`
	Surfaces []xmlSurface `xml:"surface"`
	Cells    []xmlCell    `xml:"cell"`
	Lattices []xmlLattice `xml:"hex_lattice"`
}

type xmlSurface struct {
	ID       int    `xml:"id,attr"`
	Type     string `xml:"type,attr"`
	Coeffs   string `xml:"coeffs,attr"`
	Boundary string `xml:"boundary,attr,omitempty"`
}

type xmlCell struct {
	ID       int    `xml:"id,attr"`
	Universe int    `xml:"universe,attr"`
	Material string `xml:"material,attr,omitempty"`
	Fill     int    `xml:"fill,attr,omitempty"`
	Region   string `xml:"region,attr,omitempty"`
}

type xmlLattice struct {
	ID        int     `xml:"id,attr"`
	NRings    int     `xml:"n_rings,attr"`
	Pitch     float64 `xml:"pitch,attr"`
	Center    string  `xml:"center,attr"`
	Outer     int     `xml:"outer,attr"`
	Universes string  `xml:"universes"`
}

type xmlSettings struct {
	XMLName   xml.Name  `xml:"settings"`
	RunMode   string    `xml:"run_mode"`
	Particles int       `xml:"particles"`
	Batches   int       `xml:"batches"`
	Inactive  int       `xml:"inactive"`
	Source    xmlSource `xml:"source"`
}

type xmlSource struct {
	Space xmlSpace `xml:"space"`
}

type xmlSpace struct {
	Type       string `xml:"type,attr"`
	Parameters string `xml:"parameters"`
}

type xmlTallies struct {
	XMLName xml.Name   `xml:"tallies"`
	Filters []xmlTFilt `xml:"filter"`
	Tallies []xmlTally `xml:"tally"`
}

type xmlTFilt struct {
	ID   int    `xml:"id,attr"`
	Type string `xml:"type,attr"`
	Bins string `xml:"bins"`
}

type xmlTally struct {
	ID      int    `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Filters string `xml:"filters,omitempty"`
	Scores  string `xml:"scores"`
}

// renderInputs writes the four OpenMC XML input files for the design into
// dir. The rendering is deterministic: the same design always produces
// byte-identical files.
func renderInputs(d params.Design, cat *params.Catalog, dir string) error {
	docs := map[string]any{
		"materials.xml": materialsDoc(d, cat),
		"geometry.xml":  geometryDoc(d),
		"settings.xml":  settingsDoc(d),
		"tallies.xml":   talliesDoc(),
	}
	for name, doc := range docs {
		if err := writeXML(filepath.Join(dir, name), doc); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
	}
	return nil
}

func writeXML(path string, doc any) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	return os.WriteFile(path, out, 0o644)
}

func materialsDoc(d params.Design, cat *params.Catalog) xmlMaterials {
	fuel := xmlMaterial{
		ID:      1,
		Name:    d.Fuel,
		Density: xmlDensity{Value: cat.Density(d.Fuel), Units: "g/cm3"},
		Nuclides: []xmlNuclide{
			{Name: "U235", WO: uraniumWeightFraction(d.Fuel) * d.Enrichment},
			{Name: "U238", WO: uraniumWeightFraction(d.Fuel) * (1 - d.Enrichment)},
			{Name: nonUranium(d.Fuel), WO: 1 - uraniumWeightFraction(d.Fuel)},
		},
	}
	simple := func(id int, name, nuclide string) xmlMaterial {
		return xmlMaterial{
			ID:       id,
			Name:     name,
			Density:  xmlDensity{Value: cat.Density(name), Units: "g/cm3"},
			Nuclides: []xmlNuclide{{Name: nuclide, WO: 1}},
		}
	}
	return xmlMaterials{Materials: []xmlMaterial{
		fuel,
		simple(2, d.Coolant, "He4"),
		simple(3, d.Moderator, "C0"),
		simple(4, d.Reflector, "C0"),
		simple(5, d.DrumAbsorber, "B10"),
	}}
}

// uraniumWeightFraction mirrors the engineering package's fuel composition
// table for the purposes of nuclide weight fractions.
func uraniumWeightFraction(fuel string) float64 {
	switch fuel {
	case "UN":
		return 0.944
	case "UO2":
		return 0.881
	case "UC":
		return 0.952
	case "UCO":
		return 0.90
	default:
		return 0.5
	}
}

func nonUranium(fuel string) string {
	switch fuel {
	case "UN":
		return "N14"
	case "UO2", "UCO":
		return "O16"
	default:
		return "C0"
	}
}

func geometryDoc(d params.Design) xmlGeometry {
	var surfaces []xmlSurface
	var cells []xmlCell

	// pin universe: concentric cylinders for each layer of the fuel pin
	sid := 1
	for _, r := range d.FuelPinRadii {
		surfaces = append(surfaces, xmlSurface{
			ID: sid, Type: "z-cylinder", Coeffs: coeffs(0, 0, r),
		})
		sid++
	}
	surfaces = append(surfaces,
		xmlSurface{ID: sid, Type: "z-cylinder", Coeffs: coeffs(0, 0, d.CompactFuelRadius)},
		xmlSurface{ID: sid + 1, Type: "z-cylinder", Coeffs: coeffs(0, 0, d.CoolantChannelRad)},
	)
	coreR := sid + 2
	surfaces = append(surfaces, xmlSurface{
		ID: coreR, Type: "z-cylinder",
		Coeffs:   coeffs(0, 0, d.LatticePitch*float64(d.AssemblyRings*d.CoreRings)),
		Boundary: "vacuum",
	})

	cid := 1
	prev := 0
	for i := range d.FuelPinRadii {
		region := fmt.Sprintf("-%d", i+1)
		if prev > 0 {
			region = fmt.Sprintf("%d -%d", prev, i+1)
		}
		cells = append(cells, xmlCell{ID: cid, Universe: 1, Material: "1", Region: region})
		prev = i + 1
		cid++
	}
	cells = append(cells,
		xmlCell{ID: cid, Universe: 1, Material: "3", Region: fmt.Sprintf("%d", prev)},
		xmlCell{ID: cid + 1, Universe: 2, Material: "2", Region: fmt.Sprintf("-%d", len(d.FuelPinRadii)+2)},
		xmlCell{ID: cid + 2, Universe: 2, Material: "3", Region: fmt.Sprintf("%d", len(d.FuelPinRadii)+2)},
		xmlCell{ID: cid + 3, Universe: 3, Material: "4"}, // lattice outer filler
		xmlCell{ID: cid + 4, Universe: 0, Fill: 10, Region: fmt.Sprintf("-%d", coreR)},
	)

	lattice := xmlLattice{
		ID:        10,
		NRings:    d.AssemblyRings,
		Pitch:     d.LatticePitch,
		Center:    "0.0 0.0",
		Outer:     3,
		Universes: latticeMap(d.AssemblyRings),
	}
	return xmlGeometry{Surfaces: surfaces, Cells: cells, Lattices: []xmlLattice{lattice}}
}

// latticeMap emits the ring-by-ring universe layout: fuel pins with coolant
// channels interleaved two-to-one, matching the compact arrangement.
func latticeMap(rings int) string {
	var b strings.Builder
	for ring := rings - 1; ring >= 0; ring-- {
		n := 6 * ring
		if ring == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			if i%3 == 2 {
				b.WriteByte('2')
			} else {
				b.WriteByte('1')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func coeffs(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func settingsDoc(d params.Design) xmlSettings {
	return xmlSettings{
		RunMode:   "eigenvalue",
		Particles: d.Particles,
		Batches:   d.Batches,
		Inactive:  d.SkipCycles,
		Source: xmlSource{Space: xmlSpace{
			Type:       "box",
			Parameters: fmt.Sprintf("-1 -1 0 1 1 %g", d.ActiveHeight),
		}},
	}
}

func talliesDoc() xmlTallies {
	return xmlTallies{
		Filters: []xmlTFilt{{ID: 1, Type: "distribcell", Bins: "1"}},
		Tallies: []xmlTally{{
			ID: 1, Name: "pin_power_kappa", Filters: "1", Scores: "kappa-fission",
		}},
	}
}
