package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/okhalaf/mreval/internal/evaluate"
	"github.com/okhalaf/mreval/internal/pool"
	"github.com/okhalaf/mreval/internal/results"
)

// Summary is the outcome of one sweep run. Results are in enumeration
// order regardless of completion order.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	FailedIDs []string
	Results   []evaluate.CaseResult
	Elapsed   time.Duration
}

// Engine dispatches sweep points through the coordinator and collects the
// dataset. A case failure never halts the sweep; only a spec defect or a
// canceled context does.
type Engine struct {
	Coordinator pool.Coordinator
	Evaluator   *evaluate.Evaluator
	Store       *results.Store
	Cache       *results.Cache
	Log         *zap.Logger
}

// Run enumerates the spec, skips points already in the cache, evaluates
// the rest, and persists the dataset.
func (e *Engine) Run(ctx context.Context, spec Spec) (Summary, error) {
	start := time.Now()
	log := e.logger()

	points, err := spec.Enumerate(e.Evaluator.Baseline)
	if err != nil {
		return Summary{}, err
	}
	log.Info("sweep enumerated",
		zap.String("sweep", spec.Name),
		zap.Int("points", len(points)),
		zap.Int("workers", e.Coordinator.Workers()))

	type slot struct {
		future *pool.Future
		cached evaluate.CaseResult
		hit    bool
	}
	slots := make([]slot, len(points))
	summary := Summary{Total: len(points)}

	for i, pt := range points {
		id := results.PointID(pt.Overrides)
		if cached, ok := e.Cache.Get(id); ok {
			slots[i] = slot{cached: cached, hit: true}
			summary.Skipped++
			continue
		}
		c := evaluate.Case{ID: id, Overrides: pt.Overrides}
		slots[i].future = e.Coordinator.Submit(ctx, func(ctx context.Context) (any, error) {
			return e.Evaluator.Evaluate(ctx, c), nil
		})
	}

	summary.Results = make([]evaluate.CaseResult, len(points))
	for i, pt := range points {
		var res evaluate.CaseResult
		switch {
		case slots[i].hit:
			res = slots[i].cached
		default:
			v, err := slots[i].future.Wait(ctx)
			switch {
			case err == nil:
				res = v.(evaluate.CaseResult)
			case isWorkerFailure(err):
				res = evaluate.CaseResult{
					ID:        results.PointID(pt.Overrides),
					Overrides: pt.Overrides,
					Stage:     evaluate.StageWorker,
					Error:     err.Error(),
				}
			default:
				// context gone: the sweep itself is being torn down
				return summary, fmt.Errorf("sweep interrupted at point %d: %w", i, err)
			}
			if e.Cache.PutIfAbsent(res) {
				if err := e.Store.WriteCase(res); err != nil {
					log.Warn("case record not persisted", zap.String("case", res.ID), zap.Error(err))
				}
			}
		}
		summary.Results[i] = res
		if res.OK {
			summary.Succeeded++
		} else {
			summary.Failed++
			summary.FailedIDs = append(summary.FailedIDs, res.ID)
			log.Warn("point failed",
				zap.String("case", res.ID),
				zap.String("stage", string(res.Stage)),
				zap.String("error", res.Error))
		}
	}
	summary.Elapsed = time.Since(start)

	if err := e.Store.WriteCSV(summary.Results); err != nil {
		return summary, fmt.Errorf("write dataset: %w", err)
	}
	meta := results.RunMeta{
		StartedAt:  start,
		FinishedAt: time.Now(),
		Workers:    e.Coordinator.Workers(),
		Total:      summary.Total,
		Succeeded:  summary.Succeeded,
		Failed:     summary.Failed,
		Skipped:    summary.Skipped,
		FailedIDs:  summary.FailedIDs,
	}
	if err := e.Store.WriteMeta(meta); err != nil {
		return summary, fmt.Errorf("write run metadata: %w", err)
	}

	log.Info("sweep finished",
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func isWorkerFailure(err error) bool {
	var wf *pool.WorkerFailure
	return errors.As(err, &wf)
}

func (e *Engine) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
