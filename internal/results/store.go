package results

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okhalaf/mreval/internal/evaluate"
)

const (
	casesDir    = "cases"
	sweepCSV    = "sweep.csv"
	runMetaFile = "run.json"
)

// RunMeta describes one sweep run, written alongside its dataset.
type RunMeta struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Workers    int       `json:"workers"`
	Total      int       `json:"total"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	FailedIDs  []string  `json:"failed_ids,omitempty"`
}

// Store writes the run directory: one JSON record per case under cases/,
// the ordered dataset as sweep.csv, and the run metadata.
type Store struct {
	dir string
}

// NewStore creates the run directory layout under dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, casesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir is the run directory root.
func (s *Store) Dir() string { return s.dir }

// WriteCase persists one case record. Records are written atomically via a
// rename so a crashed run never leaves a half-written case behind.
func (s *Store) WriteCase(res evaluate.CaseResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode case %s: %w", res.ID, err)
	}
	final := filepath.Join(s.dir, casesDir, res.ID+".json")
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write case %s: %w", res.ID, err)
	}
	return os.Rename(tmp, final)
}

// LoadCases reads every case record already present in the run directory.
// Records decode concurrently; the result keeps the glob order.
func (s *Store) LoadCases() ([]evaluate.CaseResult, error) {
	pattern := filepath.Join(s.dir, casesDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	out := make([]evaluate.CaseResult, len(files))
	var g errgroup.Group
	g.SetLimit(8)
	for i, f := range files {
		g.Go(func() error {
			data, err := os.ReadFile(f)
			if err != nil {
				return fmt.Errorf("read case record %s: %w", f, err)
			}
			if err := json.Unmarshal(data, &out[i]); err != nil {
				return fmt.Errorf("decode case record %s: %w", f, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteMeta persists the run metadata.
func (s *Store) WriteMeta(meta RunMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, runMetaFile), data, 0o644)
}

// WriteCSV exports the dataset in enumeration order, one row per point,
// failures included with their stage so a sweep is auditable from the CSV
// alone. The swept parameter values get one column each, in first-seen
// order, so a row carries the point it belongs to.
func (s *Store) WriteCSV(results []evaluate.CaseResult) error {
	f, err := os.Create(filepath.Join(s.dir, sweepCSV))
	if err != nil {
		return err
	}
	defer f.Close()

	fields := overrideFields(results)

	w := csv.NewWriter(f)
	header := append([]string{"id"}, fields...)
	header = append(header,
		"ok", "stage", "error",
		"keff", "keff_std", "peaking_factor", "fuel_lifetime_days",
		"capacity_factor", "heat_flux_ok",
		"occ_foak", "tci_foak", "lcoe_foak",
		"occ_noak", "tci_noak", "lcoe_noak",
	)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		byField := make(map[string]string, len(r.Overrides))
		for _, o := range r.Overrides {
			byField[o.Field] = fmt.Sprintf("%v", o.Value)
		}
		row := []string{r.ID}
		for _, name := range fields {
			row = append(row, byField[name])
		}
		row = append(row,
			strconv.FormatBool(r.OK),
			string(r.Stage),
			r.Error,
			ftoa(r.Simulation.Keff),
			ftoa(r.Simulation.KeffStd),
			ftoa(r.Simulation.PeakingFactor),
			ftoa(r.Simulation.FuelLifetimeDays),
			ftoa(r.Estimate.CapacityFactor),
			strconv.FormatBool(r.HeatFluxOK),
			ftoa(r.Estimate.FOAK.OCC),
			ftoa(r.Estimate.FOAK.TCI),
			ftoa(r.Estimate.FOAK.LCOE),
			ftoa(r.Estimate.NOAK.OCC),
			ftoa(r.Estimate.NOAK.TCI),
			ftoa(r.Estimate.NOAK.LCOE),
		)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// overrideFields collects the swept parameter names across the dataset in
// first-seen order. Grid sweeps share one field set; variant sweeps may
// not, so absent fields leave empty cells.
func overrideFields(results []evaluate.CaseResult) []string {
	var fields []string
	seen := make(map[string]bool)
	for _, r := range results {
		for _, o := range r.Overrides {
			if !seen[o.Field] {
				seen[o.Field] = true
				fields = append(fields, o.Field)
			}
		}
	}
	return fields
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
