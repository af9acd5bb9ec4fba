package cost

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// sampler draws account cost figures from their declared uncertainty
// distributions. All draws share one seeded source so a run with a fixed
// seed reproduces bit for bit.
type sampler struct {
	src *rand.Rand
}

func newSampler(seed uint64) *sampler {
	return &sampler{src: rand.New(rand.NewPCG(seed, seed))}
}

// draw samples a cost figure. Lognormal treats the nominal figure as the
// median and derives sigma from the declared low/high pair read as a 90%
// interval; Uniform draws between low and high directly.
func (s *sampler) draw(dist Dist, nominal, low, high float64) float64 {
	switch dist {
	case DistLognormal:
		if nominal <= 0 || low <= 0 || high <= low {
			return nominal
		}
		sigma := (math.Log(high) - math.Log(low)) / (2 * 1.645)
		ln := distuv.LogNormal{Mu: math.Log(nominal), Sigma: sigma, Src: s.src}
		return ln.Rand()
	case DistUniform:
		if high <= low {
			return nominal
		}
		u := distuv.Uniform{Min: low, Max: high, Src: s.src}
		return u.Rand()
	default:
		return nominal
	}
}

// drawExponent samples a scaling exponent from a truncated normal by
// rejection; the truncation window is narrow so this terminates quickly.
func (s *sampler) drawExponent(dist Dist, mean, std, min, max float64) float64 {
	if dist != DistTruncNormal || std <= 0 || max <= min {
		return mean
	}
	n := distuv.Normal{Mu: mean, Sigma: std, Src: s.src}
	for i := 0; i < 1000; i++ {
		v := n.Rand()
		if v >= min && v <= max {
			return v
		}
	}
	return mean
}
