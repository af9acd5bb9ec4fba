// Package evaluate runs one design point end to end: parameter validation,
// plant derivation, the neutronics solve, and the cost estimate. Every
// failure is captured in the case result with the stage it came from;
// nothing a case does can disturb its siblings.
package evaluate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/okhalaf/mreval/internal/cost"
	"github.com/okhalaf/mreval/internal/engineering"
	"github.com/okhalaf/mreval/internal/neutronics"
	"github.com/okhalaf/mreval/internal/params"
)

// Stage names the pipeline step a case failed in.
type Stage string

const (
	StageValidate Stage = "validate"
	StageRender   Stage = "render"
	StageSolver   Stage = "solver"
	StageParse    Stage = "parse"
	StageCost     Stage = "cost"
	StageWorker   Stage = "worker"
)

// Case is one design point to evaluate: the baseline with a list of
// overrides and a stable identifier.
type Case struct {
	ID        string            `json:"id"`
	Overrides []params.Override `json:"overrides"`
}

// CaseResult is the complete outcome of one case, success or failure.
type CaseResult struct {
	ID        string            `json:"id"`
	Overrides []params.Override `json:"overrides"`

	OK    bool   `json:"ok"`
	Stage Stage  `json:"stage,omitempty"`
	Error string `json:"error,omitempty"`

	Simulation neutronics.Result `json:"simulation,omitempty"`
	Estimate   cost.Estimate     `json:"estimate,omitempty"`

	HeatFluxOK bool          `json:"heat_flux_ok"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

func failed(c Case, stage Stage, err error, elapsed time.Duration) CaseResult {
	return CaseResult{
		ID:        c.ID,
		Overrides: c.Overrides,
		Stage:     stage,
		Error:     err.Error(),
		Elapsed:   elapsed,
	}
}

// Evaluator holds everything shared across cases. It is safe for
// concurrent use; all per-case state lives in the case workdir.
type Evaluator struct {
	Baseline params.Baseline
	Catalog  *params.Catalog
	Adapter  *neutronics.Adapter
	Model    *cost.Model

	// RunDir is the parent of per-case workdirs.
	RunDir string
	// KeepWorkdirs retains every case workdir; KeepOnFailure retains only
	// the workdirs of failed cases for diagnosis.
	KeepWorkdirs  bool
	KeepOnFailure bool

	Log *zap.Logger
}

// Evaluate runs one case to completion. It never returns an error; any
// failure is folded into the CaseResult under its stage tag.
func (ev *Evaluator) Evaluate(ctx context.Context, c Case) CaseResult {
	start := time.Now()
	log := ev.logger().With(zap.String("case", c.ID))

	base, err := ev.Baseline.Apply(c.Overrides)
	if err != nil {
		return failed(c, StageValidate, err, time.Since(start))
	}
	if err := base.Design.Validate(ev.Catalog); err != nil {
		return failed(c, StageValidate, err, time.Since(start))
	}
	if err := base.Econ.Validate(); err != nil {
		return failed(c, StageValidate, err, time.Since(start))
	}

	plant, err := engineering.Derive(base.Design, ev.Catalog)
	if err != nil {
		return failed(c, StageValidate, err, time.Since(start))
	}

	workdir := filepath.Join(ev.RunDir, "work", c.ID)
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return failed(c, StageRender, fmt.Errorf("create workdir: %w", err), time.Since(start))
	}
	keep := ev.KeepWorkdirs
	defer func() {
		if !keep {
			os.RemoveAll(workdir)
		}
	}()

	sim, err := ev.Adapter.Run(ctx, base.Design, workdir)
	if err != nil {
		if ev.KeepOnFailure {
			keep = true
		}
		return failed(c, solveStage(err), err, time.Since(start))
	}

	est, err := ev.Model.Estimate(cost.Inputs{
		Design:           base.Design,
		Econ:             base.Econ,
		Plant:            plant,
		FuelLifetimeDays: sim.FuelLifetimeDays,
	})
	if err != nil {
		if ev.KeepOnFailure {
			keep = true
		}
		return failed(c, StageCost, err, time.Since(start))
	}

	log.Info("case evaluated",
		zap.Float64("lcoe_noak", est.NOAK.LCOE),
		zap.Float64("fuel_lifetime_days", sim.FuelLifetimeDays),
		zap.Duration("elapsed", time.Since(start)))

	return CaseResult{
		ID:         c.ID,
		Overrides:  c.Overrides,
		OK:         true,
		Simulation: sim,
		Estimate:   est,
		HeatFluxOK: plant.HeatFluxOK,
		Elapsed:    time.Since(start),
	}
}

// solveStage classifies an adapter error: a process failure is the solver's
// fault, unusable output is a parse failure, and anything earlier is the
// input rendering.
func solveStage(err error) Stage {
	var ee *neutronics.ExecError
	if errors.As(err, &ee) {
		return StageSolver
	}
	var oe *neutronics.OutputError
	if errors.As(err, &oe) {
		return StageParse
	}
	return StageRender
}

func (ev *Evaluator) logger() *zap.Logger {
	if ev.Log == nil {
		return zap.NewNop()
	}
	return ev.Log
}
