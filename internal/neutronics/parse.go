package neutronics

import (
	"encoding/csv"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	keffRe  = regexp.MustCompile(`Combined k-effective\s*=\s*([0-9.eE+-]+)\s*\+/-\s*([0-9.eE+-]+)`)
	tallyRe = regexp.MustCompile(`Kappa-Fission Rate\s+([0-9.eE+-]+)\s*\+/-`)
)

// parseKeff pulls the combined k-effective estimate and its standard
// deviation from the solver console log.
func parseKeff(log string) (keff, std float64, err error) {
	m := keffRe.FindStringSubmatch(log)
	if m == nil {
		return 0, 0, &OutputError{File: stdoutFile, Reason: "no combined k-effective line"}
	}
	keff, err1 := strconv.ParseFloat(m[1], 64)
	std, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, &OutputError{File: stdoutFile, Reason: "malformed k-effective line: " + m[0]}
	}
	return keff, std, nil
}

// parsePeakingFactor computes max/mean over the per-pin kappa-fission tally
// bins in tallies.out.
func parsePeakingFactor(tallies string) (float64, error) {
	matches := tallyRe.FindAllStringSubmatch(tallies, -1)
	if len(matches) == 0 {
		return 0, &OutputError{File: "tallies.out", Reason: "no kappa-fission bins"}
	}
	var sum, max float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsNaN(v) {
			return 0, &OutputError{File: "tallies.out", Reason: "malformed tally value: " + m[1]}
		}
		sum += v
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(matches))
	if mean <= 0 {
		return 0, &OutputError{File: "tallies.out", Reason: "non-positive mean pin power"}
	}
	return max / mean, nil
}

// fuelLifetime finds the time at which k-effective crosses 1.0 in the
// depletion summary by linear interpolation between the bracketing steps.
// A core that never reaches criticality, or is still critical at the last
// step, has no defined lifetime.
func fuelLifetime(depletionCSV string) (float64, error) {
	r := csv.NewReader(strings.NewReader(depletionCSV))
	rows, err := r.ReadAll()
	if err != nil {
		return 0, &OutputError{File: depletionFile, Reason: "unreadable CSV: " + err.Error()}
	}
	type step struct{ t, k float64 }
	var steps []step
	for i, row := range rows {
		if i == 0 && !isNumeric(row[0]) {
			continue // header
		}
		if len(row) < 2 {
			return 0, &OutputError{File: depletionFile, Reason: "short row"}
		}
		t, err1 := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		k, err2 := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err1 != nil || err2 != nil {
			return 0, &OutputError{File: depletionFile, Reason: "malformed row: " + strings.Join(row, ",")}
		}
		steps = append(steps, step{t, k})
	}
	if len(steps) < 2 {
		return 0, &OutputError{File: depletionFile, Reason: "fewer than two depletion steps"}
	}
	for i := 1; i < len(steps); i++ {
		k1, k2 := steps[i-1].k, steps[i].k
		if (k1 >= 1.0 && k2 < 1.0) || (k1 < 1.0 && k2 >= 1.0) {
			t1, t2 := steps[i-1].t, steps[i].t
			slope := (k2 - k1) / (t2 - t1)
			return t1 + (1.0-k1)/slope, nil
		}
	}
	return 0, &OutputError{File: depletionFile, Reason: "k-effective never crosses 1.0"}
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
