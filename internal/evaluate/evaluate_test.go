package evaluate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhalaf/mreval/internal/cost"
	"github.com/okhalaf/mreval/internal/neutronics"
	"github.com/okhalaf/mreval/internal/params"
)

// scriptedSolver lets each test choose the outcome of every stage.
type scriptedSolver struct {
	renderErr error
	invokeErr error
	result    neutronics.Result
	parseErr  error
}

func (s *scriptedSolver) Render(params.Design, string) error { return s.renderErr }

func (s *scriptedSolver) Invoke(context.Context, string) error { return s.invokeErr }

func (s *scriptedSolver) Parse(string) (neutronics.Result, error) { return s.result, s.parseErr }

func healthyResult() neutronics.Result {
	return neutronics.Result{Keff: 1.01, KeffStd: 0.001, PeakingFactor: 1.25, FuelLifetimeDays: 1900, Converged: true}
}

func newEvaluator(t *testing.T, solver neutronics.Solver) *Evaluator {
	t.Helper()
	return &Evaluator{
		Baseline: params.DefaultBaseline(),
		Catalog:  params.DefaultCatalog(),
		Adapter:  neutronics.NewAdapter(solver, 0, nil),
		Model:    cost.NewModel(),
		RunDir:   t.TempDir(),
	}
}

func TestEvaluateSuccess(t *testing.T) {
	ev := newEvaluator(t, &scriptedSolver{result: healthyResult()})
	res := ev.Evaluate(context.Background(), Case{ID: "case-0000"})

	require.True(t, res.OK, "unexpected failure: stage=%s err=%s", res.Stage, res.Error)
	assert.Equal(t, "case-0000", res.ID)
	assert.Greater(t, res.Estimate.NOAK.LCOE, 0.0)
	assert.Less(t, res.Estimate.NOAK.LCOE, res.Estimate.FOAK.LCOE)
	assert.True(t, res.HeatFluxOK)

	// workdir is removed after a clean run
	_, err := os.Stat(filepath.Join(ev.RunDir, "work", "case-0000"))
	assert.True(t, os.IsNotExist(err))
}

func TestEvaluateStageTags(t *testing.T) {
	execErr := &neutronics.ExecError{Cmd: "openmc", Err: context.DeadlineExceeded, TimedOut: true}
	outErr := &neutronics.OutputError{Reason: "no combined k-effective line"}

	cases := []struct {
		name   string
		solver *scriptedSolver
		kase   Case
		stage  Stage
	}{
		{
			name:   "bad override",
			solver: &scriptedSolver{result: healthyResult()},
			kase:   Case{ID: "c1", Overrides: []params.Override{{Field: "no_such_field", Value: 1.0}}},
			stage:  StageValidate,
		},
		{
			name:   "invalid design value",
			solver: &scriptedSolver{result: healthyResult()},
			kase:   Case{ID: "c2", Overrides: []params.Override{{Field: "power_mwt", Value: -3.0}}},
			stage:  StageValidate,
		},
		{
			name:   "render failure",
			solver: &scriptedSolver{renderErr: os.ErrPermission},
			kase:   Case{ID: "c3"},
			stage:  StageRender,
		},
		{
			name:   "solver timeout",
			solver: &scriptedSolver{invokeErr: execErr},
			kase:   Case{ID: "c4"},
			stage:  StageSolver,
		},
		{
			name:   "unparseable output",
			solver: &scriptedSolver{parseErr: outErr},
			kase:   Case{ID: "c5"},
			stage:  StageParse,
		},
		{
			name:   "implausible keff",
			solver: &scriptedSolver{result: neutronics.Result{Keff: 4.2, FuelLifetimeDays: 100}},
			kase:   Case{ID: "c6"},
			stage:  StageParse,
		},
		{
			name:   "cost model rejection",
			solver: &scriptedSolver{result: healthyResult()},
			kase:   Case{ID: "c7", Overrides: []params.Override{{Field: "escalation_year", Value: 1995}}},
			stage:  StageCost,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := newEvaluator(t, tc.solver)
			res := ev.Evaluate(context.Background(), tc.kase)
			require.False(t, res.OK)
			assert.Equal(t, tc.stage, res.Stage)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestEvaluateKeepsWorkdirOnFailure(t *testing.T) {
	ev := newEvaluator(t, &scriptedSolver{invokeErr: &neutronics.ExecError{Cmd: "openmc", Err: os.ErrNotExist}})
	ev.KeepOnFailure = true

	res := ev.Evaluate(context.Background(), Case{ID: "broken"})
	require.False(t, res.OK)

	_, err := os.Stat(filepath.Join(ev.RunDir, "work", "broken"))
	assert.NoError(t, err, "failed case workdir should be retained for diagnosis")
}

func TestEvaluateFailureDoesNotPoisonNextCase(t *testing.T) {
	solver := &scriptedSolver{parseErr: &neutronics.OutputError{Reason: "truncated"}}
	ev := newEvaluator(t, solver)

	bad := ev.Evaluate(context.Background(), Case{ID: "bad"})
	require.False(t, bad.OK)

	solver.parseErr = nil
	solver.result = healthyResult()
	good := ev.Evaluate(context.Background(), Case{ID: "good"})
	require.True(t, good.OK, "stage=%s err=%s", good.Stage, good.Error)
}
