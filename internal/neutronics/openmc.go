package neutronics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okhalaf/mreval/internal/params"
)

// stdoutFile holds the solver console output inside the case workdir so the
// k-effective summary can be parsed after the process exits.
const stdoutFile = "openmc.log"

// depletionFile is the per-step depletion summary the solver run script
// leaves behind: one "time_days,keff" row per burnup step.
const depletionFile = "depletion_results.csv"

// OpenMC runs the OpenMC transport code as a subprocess.
type OpenMC struct {
	// Binary is the solver executable path.
	Binary string
	// CrossSections is the cross_sections.xml path exported to the solver
	// through OPENMC_CROSS_SECTIONS.
	CrossSections string
	// Threads caps the solver's OpenMP thread count; 0 lets the solver
	// decide.
	Threads int

	catalog *params.Catalog
}

// NewOpenMC returns a solver bound to the given executable and data library.
func NewOpenMC(binary, crossSections string, threads int) *OpenMC {
	return &OpenMC{
		Binary:        binary,
		CrossSections: crossSections,
		Threads:       threads,
		catalog:       params.DefaultCatalog(),
	}
}

// Render writes the XML input deck for the design into dir.
func (o *OpenMC) Render(d params.Design, dir string) error {
	return renderInputs(d, o.catalog, dir)
}

// Invoke runs the solver in dir, capturing its console output to a log file
// and its stderr for diagnostics. Cancellation of ctx kills the process.
func (o *OpenMC) Invoke(ctx context.Context, dir string) error {
	args := []string{}
	if o.Threads > 0 {
		args = append(args, "-s", strconv.Itoa(o.Threads))
	}
	cmd := exec.CommandContext(ctx, o.Binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "OPENMC_CROSS_SECTIONS="+o.CrossSections)

	logf, err := os.Create(filepath.Join(dir, stdoutFile))
	if err != nil {
		return fmt.Errorf("create solver log: %w", err)
	}
	defer logf.Close()
	cmd.Stdout = logf

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &ExecError{
			Cmd:      o.Binary,
			Err:      err,
			Stderr:   lastLines(stderr.String(), 5),
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
		}
	}
	return nil
}

// Parse extracts the Result from the solver's output in dir: the combined
// k-effective from the console log, the peaking factor from the tally
// output, and the fuel lifetime from the depletion summary.
func (o *OpenMC) Parse(dir string) (Result, error) {
	var res Result

	log, err := os.ReadFile(filepath.Join(dir, stdoutFile))
	if err != nil {
		return res, &OutputError{File: stdoutFile, Reason: "missing solver log"}
	}
	res.Keff, res.KeffStd, err = parseKeff(string(log))
	if err != nil {
		return res, err
	}

	tallies, err := os.ReadFile(filepath.Join(dir, "tallies.out"))
	if err != nil {
		return res, &OutputError{File: "tallies.out", Reason: "missing tally output"}
	}
	res.PeakingFactor, err = parsePeakingFactor(string(tallies))
	if err != nil {
		return res, err
	}

	depl, err := os.ReadFile(filepath.Join(dir, depletionFile))
	if err != nil {
		return res, &OutputError{File: depletionFile, Reason: "missing depletion summary"}
	}
	res.FuelLifetimeDays, err = fuelLifetime(string(depl))
	if err != nil {
		return res, err
	}

	res.Converged = true
	return res, nil
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
