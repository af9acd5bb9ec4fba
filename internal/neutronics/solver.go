// Package neutronics drives the external neutron-transport solver. A case
// gets a private working directory where the solver input deck is rendered,
// the solver binary runs, and its output is parsed back into a Result. The
// package never interprets costs; it only answers the physics questions the
// rest of the pipeline needs (criticality, power peaking, fuel lifetime).
package neutronics

import (
	"context"
	"fmt"

	"github.com/okhalaf/mreval/internal/params"
)

// Result is the solver output for one design point.
type Result struct {
	Keff             float64 `json:"keff"`
	KeffStd          float64 `json:"keff_std"`
	PeakingFactor    float64 `json:"peaking_factor"`
	FuelLifetimeDays float64 `json:"fuel_lifetime_days"`
	Converged        bool    `json:"converged"`
}

// Solver abstracts the render/invoke/parse cycle so tests can substitute a
// fake without touching a real transport code.
type Solver interface {
	// Render writes the complete input deck for the design into dir.
	Render(d params.Design, dir string) error
	// Invoke runs the solver in dir. It must honor ctx cancellation.
	Invoke(ctx context.Context, dir string) error
	// Parse reads the solver output from dir.
	Parse(dir string) (Result, error)
}

// ExecError reports a solver process that did not complete: non-zero exit,
// failure to start, or a deadline hit. Stderr is captured for diagnostics.
type ExecError struct {
	Cmd      string
	Err      error
	Stderr   string
	TimedOut bool
}

func (e *ExecError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("solver %s: killed on timeout", e.Cmd)
	}
	if e.Stderr != "" {
		return fmt.Sprintf("solver %s: %v: %s", e.Cmd, e.Err, e.Stderr)
	}
	return fmt.Sprintf("solver %s: %v", e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// OutputError reports solver output that completed but cannot be trusted:
// missing or unparseable files, or physically implausible values.
type OutputError struct {
	File   string
	Reason string
}

func (e *OutputError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("solver output: %s", e.Reason)
	}
	return fmt.Sprintf("solver output %s: %s", e.File, e.Reason)
}
