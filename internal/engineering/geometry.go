package engineering

import "math"

func circleArea(r float64) float64 { return math.Pi * r * r }

func circlePerimeter(r float64) float64 { return 2 * math.Pi * r }

func cylinderVolume(r, h float64) float64 { return circleArea(r) * h }

// cylinderRadialShell is the lateral surface area of a cylinder.
func cylinderRadialShell(r, h float64) float64 { return circlePerimeter(r) * h }

func cylinderAnnulusVolume(outer, inner, h float64) float64 {
	return (circleArea(outer) - circleArea(inner)) * h
}

// ellipsoidShellArea approximates the surface area of an ellipsoid with
// semi-axes a, b, c (Thomsen's formula, p = 1.6).
func ellipsoidShellArea(a, b, c float64) float64 {
	const p = 1.6
	s := (math.Pow(a*b, p) + math.Pow(a*c, p) + math.Pow(b*c, p)) / 3
	return 4 * math.Pi * math.Pow(s, 1/p)
}

// hexArea is the area of a regular hexagon given its flat-to-flat distance.
func hexArea(ftf float64) float64 {
	return math.Sqrt(3) / 2 * ftf * ftf
}

// hexPositions is the number of lattice positions in a hexagonal arrangement
// of n rings (centered hexagonal number).
func hexPositions(n int) int {
	if n < 1 {
		return 0
	}
	return 3*n*(n-1) + 1
}

// annulusMassKg converts an annular shell to mass in kg given a density in
// g/cm3 and dimensions in cm.
func annulusMassKg(outer, inner, h, density float64) float64 {
	return cylinderAnnulusVolume(outer, inner, h) * density / 1000
}
