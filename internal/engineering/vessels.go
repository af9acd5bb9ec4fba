package engineering

import "github.com/okhalaf/mreval/internal/params"

// deriveVessels computes vessel and shield masses. The vessel is a
// cylindrical shell with an ellipsoidal head and bottom; shields are
// annular shells, the outer one derated by its effective density factor
// (shield assemblies are not solid material).
func deriveVessels(p *Plant, d params.Design, cat *params.Catalog) {
	vesselInner := p.CoreRadius + d.InShieldThickness
	vesselOuter := vesselInner + d.VesselThickness
	vesselHeight := d.ActiveHeight + 2*d.AxialReflectorThickness + d.VesselPlenumHeight

	rho := cat.Density(d.VesselMaterial)
	shellMass := annulusMassKg(vesselOuter, vesselInner, vesselHeight, rho)
	headArea := ellipsoidShellArea(vesselOuter, vesselOuter, d.VesselBottomDepth) / 2
	headMass := 2 * headArea * d.VesselThickness * rho / 1000
	p.VesselMass = shellMass + headMass

	if d.InShieldThickness > 0 {
		p.InShieldMass = annulusMassKg(vesselInner, p.CoreRadius, vesselHeight,
			cat.Density(d.InShieldMaterial))
	}
	if d.OutShieldThickness > 0 {
		outInner := vesselOuter
		outOuter := outInner + d.OutShieldThickness
		p.OutShieldMass = d.OutShieldDensityFrac *
			annulusMassKg(outOuter, outInner, vesselHeight, cat.Density(d.OutShieldMaterial))
	}
}
