package neutronics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okhalaf/mreval/internal/params"
)

// fakeSolver scripts each stage of the solver cycle.
type fakeSolver struct {
	renderErr error
	invoke    func(ctx context.Context) error
	result    Result
	parseErr  error
}

func (f *fakeSolver) Render(params.Design, string) error { return f.renderErr }

func (f *fakeSolver) Invoke(ctx context.Context, _ string) error {
	if f.invoke != nil {
		return f.invoke(ctx)
	}
	return nil
}

func (f *fakeSolver) Parse(string) (Result, error) { return f.result, f.parseErr }

func goodResult() Result {
	return Result{Keff: 1.02, KeffStd: 0.001, PeakingFactor: 1.3, FuelLifetimeDays: 1800, Converged: true}
}

func TestAdapterRunHappyPath(t *testing.T) {
	a := NewAdapter(&fakeSolver{result: goodResult()}, 0, nil)
	res, err := a.Run(context.Background(), params.DefaultGCMRDesign(), t.TempDir())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res != goodResult() {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAdapterTimeout(t *testing.T) {
	slow := &fakeSolver{
		invoke: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return &ExecError{Cmd: "openmc", Err: ctx.Err(), TimedOut: true}
			case <-time.After(5 * time.Second):
				return nil
			}
		},
		result: goodResult(),
	}
	a := NewAdapter(slow, 20*time.Millisecond, nil)
	_, err := a.Run(context.Background(), params.DefaultGCMRDesign(), t.TempDir())
	var ee *ExecError
	if !errors.As(err, &ee) || !ee.TimedOut {
		t.Fatalf("expected timed-out ExecError, got %v", err)
	}
}

func TestAdapterPlausibilityGate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Result)
	}{
		{"keff too low", func(r *Result) { r.Keff = 0.3 }},
		{"keff too high", func(r *Result) { r.Keff = 2.5 }},
		{"keff NaN", func(r *Result) { r.Keff = nan() }},
		{"zero lifetime", func(r *Result) { r.FuelLifetimeDays = 0 }},
		{"negative lifetime", func(r *Result) { r.FuelLifetimeDays = -12 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := goodResult()
			tc.mutate(&r)
			a := NewAdapter(&fakeSolver{result: r}, 0, nil)
			_, err := a.Run(context.Background(), params.DefaultGCMRDesign(), t.TempDir())
			var oe *OutputError
			if !errors.As(err, &oe) {
				t.Fatalf("expected OutputError, got %v", err)
			}
		})
	}
}

func TestAdapterRenderFailureIsNotExec(t *testing.T) {
	a := NewAdapter(&fakeSolver{renderErr: errors.New("disk full")}, 0, nil)
	_, err := a.Run(context.Background(), params.DefaultGCMRDesign(), t.TempDir())
	if err == nil {
		t.Fatal("expected render error")
	}
	var ee *ExecError
	if errors.As(err, &ee) {
		t.Error("render failure must not be classified as a process failure")
	}
}

func TestRenderInputsDeterministic(t *testing.T) {
	d := params.DefaultGCMRDesign()
	o := NewOpenMC("openmc", "/data/cross_sections.xml", 4)

	dir1, dir2 := t.TempDir(), t.TempDir()
	if err := o.Render(d, dir1); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := o.Render(d, dir2); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"materials.xml", "geometry.xml", "settings.xml", "tallies.xml"} {
		a, b := readFile(t, dir1, name), readFile(t, dir2, name)
		if a != b {
			t.Errorf("%s differs between identical renders", name)
		}
		if len(a) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
