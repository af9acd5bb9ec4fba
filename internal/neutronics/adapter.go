package neutronics

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/okhalaf/mreval/internal/params"
)

// Plausibility bounds for an eigenvalue calculation of a real core. Values
// outside this window indicate a broken model, not an uneconomic design.
const (
	keffMin = 0.5
	keffMax = 2.0
)

// Adapter wraps a Solver with the per-case run policy: a private working
// directory, a wall-clock timeout, and a plausibility gate on the parsed
// output.
type Adapter struct {
	Solver  Solver
	Timeout time.Duration
	Log     *zap.Logger
}

// NewAdapter returns an adapter over s. A zero timeout disables the
// deadline.
func NewAdapter(s Solver, timeout time.Duration, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{Solver: s, Timeout: timeout, Log: log}
}

// Run renders, invokes, and parses one solver case inside workdir. The
// workdir must exist and be private to this case; Run never writes outside
// it. Errors carry their origin: a render failure comes back untyped, a
// process failure as *ExecError, a bad or implausible output as
// *OutputError.
func (a *Adapter) Run(ctx context.Context, d params.Design, workdir string) (Result, error) {
	if err := a.Solver.Render(d, workdir); err != nil {
		return Result{}, fmt.Errorf("render input deck: %w", err)
	}

	runCtx := ctx
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := a.Solver.Invoke(runCtx, workdir); err != nil {
		a.Log.Warn("solver failed",
			zap.String("workdir", workdir),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Result{}, err
	}

	res, err := a.Solver.Parse(workdir)
	if err != nil {
		return Result{}, err
	}
	if err := checkPlausible(res); err != nil {
		return Result{}, err
	}

	a.Log.Debug("solver case done",
		zap.String("workdir", workdir),
		zap.Float64("keff", res.Keff),
		zap.Float64("fuel_lifetime_days", res.FuelLifetimeDays),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func checkPlausible(r Result) error {
	for name, v := range map[string]float64{
		"keff":               r.Keff,
		"keff_std":           r.KeffStd,
		"peaking_factor":     r.PeakingFactor,
		"fuel_lifetime_days": r.FuelLifetimeDays,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &OutputError{Reason: fmt.Sprintf("%s is not finite", name)}
		}
	}
	if r.Keff < keffMin || r.Keff > keffMax {
		return &OutputError{Reason: fmt.Sprintf("k-effective %.4f outside plausible range [%.1f, %.1f]", r.Keff, keffMin, keffMax)}
	}
	if r.FuelLifetimeDays <= 0 {
		return &OutputError{Reason: fmt.Sprintf("non-positive fuel lifetime %.1f days", r.FuelLifetimeDays)}
	}
	return nil
}
