package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/okhalaf/mreval/internal/config"
	"github.com/okhalaf/mreval/internal/cost"
	"github.com/okhalaf/mreval/internal/evaluate"
	"github.com/okhalaf/mreval/internal/neutronics"
	"github.com/okhalaf/mreval/internal/params"
	"github.com/okhalaf/mreval/internal/pool"
	"github.com/okhalaf/mreval/internal/results"
	"github.com/okhalaf/mreval/internal/sweep"
)

const timeRound = time.Millisecond

var (
	configFile string
	verbose    bool
	outDir     string
	workers    int
	keepWork   bool
	preset     string
	overrides  []string
	samples    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mreval",
		Short:         "microreactor capital cost and LCOE evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	sweepCmd := &cobra.Command{
		Use:   "sweep [spec.yaml]",
		Short: "run a parameter sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&outDir, "out", "", "run directory (default from config)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "worker count (default from config)")
	sweepCmd.Flags().BoolVar(&keepWork, "keep-workdirs", false, "retain every solver workdir")

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "evaluate a single design point",
		Args:  cobra.NoArgs,
		RunE:  runEstimate,
	}
	estimateCmd.Flags().StringVar(&preset, "preset", "", "design preset (e.g. gcmr/nominal)")
	estimateCmd.Flags().StringArrayVar(&overrides, "set", nil, "parameter override field=value (repeatable)")
	estimateCmd.Flags().StringVar(&outDir, "out", "", "run directory (default from config)")
	estimateCmd.Flags().IntVar(&samples, "samples", 0, "uncertainty samples (default from config)")

	validateCmd := &cobra.Command{
		Use:   "validate [spec.yaml]",
		Short: "check a sweep spec and print its points",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	listCmd := &cobra.Command{
		Use:   "list [run-dir]",
		Short: "list case records of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  listCases,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [line]",
		Short: "list design presets for a reactor line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for line: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mreval.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(sweepCmd, estimateCmd, validateCmd, listCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func buildLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func newEvaluator(cfg *config.Config, runDir string, log *zap.Logger) *evaluate.Evaluator {
	catalog := params.DefaultCatalog()
	solver := neutronics.NewOpenMC(cfg.Solver.Binary, cfg.Solver.CrossSections, cfg.Solver.Threads)
	return &evaluate.Evaluator{
		Baseline:      cfg.Baseline,
		Catalog:       catalog,
		Adapter:       neutronics.NewAdapter(solver, cfg.Solver.Timeout.Std(), log),
		Model:         cost.NewModel(),
		RunDir:        runDir,
		KeepWorkdirs:  keepWork || cfg.Output.KeepWorkdirs,
		KeepOnFailure: cfg.Output.KeepOnFailure,
		Log:           log,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := buildLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	spec, err := sweep.ParseSpec(src)
	if err != nil {
		return err
	}

	dir := cfg.Output.Dir
	if outDir != "" {
		dir = outDir
	}
	store, err := results.NewStore(dir)
	if err != nil {
		return err
	}
	cache, err := results.WarmCache(store)
	if err != nil {
		return err
	}

	n := cfg.Workers
	if workers > 0 {
		n = workers
	}
	local := pool.NewLocal(n, log)
	defer local.Close()

	eng := &sweep.Engine{
		Coordinator: local,
		Evaluator:   newEvaluator(cfg, dir, log),
		Store:       store,
		Cache:       cache,
		Log:         log,
	}

	ctx, stop := signalContext()
	defer stop()

	summary, err := eng.Run(ctx, spec)
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s: %d points, %d succeeded, %d failed, %d skipped in %v\n",
		spec.Name, summary.Total, summary.Succeeded, summary.Failed, summary.Skipped, summary.Elapsed.Round(timeRound))
	if summary.Failed > 0 {
		fmt.Println("failed cases:")
		for _, id := range summary.FailedIDs {
			fmt.Printf("  %s\n", id)
		}
	}
	fmt.Printf("dataset: %s\n", dir)
	return nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := buildLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	if preset != "" {
		line, name, ok := strings.Cut(preset, "/")
		if !ok {
			return fmt.Errorf("preset must be line/name, got %q", preset)
		}
		d := config.GetPreset(line, name)
		if d == nil {
			return fmt.Errorf("unknown preset %s (available: %v)", preset, config.ListPresets(line))
		}
		cfg.Baseline.Design = *d
	}
	if samples > 0 {
		cfg.Baseline.Econ.Samples = samples
	}

	ovs, err := parseOverrides(overrides)
	if err != nil {
		return err
	}

	dir := cfg.Output.Dir
	if outDir != "" {
		dir = outDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	ev := newEvaluator(cfg, dir, log)
	res := ev.Evaluate(ctx, evaluate.Case{ID: results.PointID(ovs), Overrides: ovs})
	if !res.OK {
		return fmt.Errorf("case failed in stage %s: %s", res.Stage, res.Error)
	}
	printEstimate(res)
	return nil
}

func printEstimate(res evaluate.CaseResult) {
	fmt.Printf("case %s evaluated in %v\n\n", res.ID, res.Elapsed.Round(timeRound))
	fmt.Printf("k-effective: %.5f +/- %.5f\n", res.Simulation.Keff, res.Simulation.KeffStd)
	fmt.Printf("peaking factor: %.3f\n", res.Simulation.PeakingFactor)
	fmt.Printf("fuel lifetime: %.0f days\n", res.Simulation.FuelLifetimeDays)
	fmt.Printf("capacity factor: %.3f\n", res.Estimate.CapacityFactor)
	if !res.HeatFluxOK {
		fmt.Println("warning: core heat flux exceeds the design limit")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nCATEGORY\tFOAK\tNOAK")
	rows := []struct {
		name string
		f, n float64
	}{
		{"preconstruction", res.Estimate.FOAK.Preconstruction, res.Estimate.NOAK.Preconstruction},
		{"direct", res.Estimate.FOAK.Direct, res.Estimate.NOAK.Direct},
		{"indirect", res.Estimate.FOAK.Indirect, res.Estimate.NOAK.Indirect},
		{"owners cost", res.Estimate.FOAK.OwnersCost, res.Estimate.NOAK.OwnersCost},
		{"training", res.Estimate.FOAK.Training, res.Estimate.NOAK.Training},
		{"interest during construction", res.Estimate.FOAK.InterestDuringConstruction, res.Estimate.NOAK.InterestDuringConstruction},
		{"overnight capital (OCC)", res.Estimate.FOAK.OCC, res.Estimate.NOAK.OCC},
		{"total capital (TCI)", res.Estimate.FOAK.TCI, res.Estimate.NOAK.TCI},
		{"annual O&M", res.Estimate.FOAK.AnnualOM, res.Estimate.NOAK.AnnualOM},
		{"annual fuel", res.Estimate.FOAK.AnnualFuel, res.Estimate.NOAK.AnnualFuel},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\n", r.name, r.f, r.n)
	}
	fmt.Fprintf(w, "LCOE ($/MWh)\t%.2f\t%.2f\n", res.Estimate.FOAK.LCOE, res.Estimate.NOAK.LCOE)
	fmt.Fprintf(w, "  capital\t%.2f\t%.2f\n", res.Estimate.FOAK.LCOECapital, res.Estimate.NOAK.LCOECapital)
	fmt.Fprintf(w, "  O&M\t%.2f\t%.2f\n", res.Estimate.FOAK.LCOEOM, res.Estimate.NOAK.LCOEOM)
	fmt.Fprintf(w, "  fuel\t%.2f\t%.2f\n", res.Estimate.FOAK.LCOEFuel, res.Estimate.NOAK.LCOEFuel)
	w.Flush()

	if res.Estimate.Samples > 1 {
		fmt.Printf("\nLCOE std over %d samples: FOAK %.2f, NOAK %.2f\n",
			res.Estimate.Samples, res.Estimate.LCOEStdFOAK, res.Estimate.LCOEStdNOAK)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	spec, err := sweep.ParseSpec(src)
	if err != nil {
		return err
	}
	points, err := spec.Enumerate(cfg.Baseline)
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s: %d points\n", spec.Name, len(points))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tID\tNAME\tOVERRIDES")
	for _, pt := range points {
		parts := make([]string, len(pt.Overrides))
		for i, o := range pt.Overrides {
			parts[i] = fmt.Sprintf("%s=%v", o.Field, o.Value)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", pt.Index, results.PointID(pt.Overrides), pt.Name, strings.Join(parts, " "))
	}
	return w.Flush()
}

func listCases(cmd *cobra.Command, args []string) error {
	store, err := results.NewStore(args[0])
	if err != nil {
		return err
	}
	records, err := store.LoadCases()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no case records found")
		return nil
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOK\tSTAGE\tKEFF\tLIFETIME_D\tLCOE_NOAK")
	for _, r := range records {
		if r.OK {
			fmt.Fprintf(w, "%s\tok\t\t%.4f\t%.0f\t%.2f\n",
				r.ID, r.Simulation.Keff, r.Simulation.FuelLifetimeDays, r.Estimate.NOAK.LCOE)
		} else {
			fmt.Fprintf(w, "%s\tFAIL\t%s\t\t\t\n", r.ID, r.Stage)
		}
	}
	return w.Flush()
}

// parseOverrides turns field=value pairs into typed overrides: numbers
// become float64, booleans bool, anything else stays a string.
func parseOverrides(pairs []string) ([]params.Override, error) {
	out := make([]params.Override, 0, len(pairs))
	for _, p := range pairs {
		field, raw, ok := strings.Cut(p, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("override must be field=value, got %q", p)
		}
		var value any = raw
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			value = f
		} else if b, err := strconv.ParseBool(raw); err == nil {
			value = b
		}
		out = append(out, params.Override{Field: field, Value: value})
	}
	return out, nil
}
