package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhalaf/mreval/internal/evaluate"
	"github.com/okhalaf/mreval/internal/params"
)

func TestPointIDStableAndOrderSensitive(t *testing.T) {
	a := []params.Override{{Field: "power_mwt", Value: 15.0}, {Field: "enrichment", Value: 0.1975}}
	b := []params.Override{{Field: "power_mwt", Value: 15.0}, {Field: "enrichment", Value: 0.1975}}
	assert.Equal(t, PointID(a), PointID(b))

	swapped := []params.Override{a[1], a[0]}
	assert.NotEqual(t, PointID(a), PointID(swapped),
		"axis order is part of the identity")

	changed := []params.Override{{Field: "power_mwt", Value: 20.0}, a[1]}
	assert.NotEqual(t, PointID(a), PointID(changed))

	assert.Len(t, PointID(a), 16)
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	res := evaluate.CaseResult{
		ID:        PointID([]params.Override{{Field: "power_mwt", Value: 15.0}}),
		Overrides: []params.Override{{Field: "power_mwt", Value: 15.0}},
		OK:        true,
	}
	res.Simulation.Keff = 1.02
	res.Estimate.NOAK.LCOE = 145.5
	require.NoError(t, store.WriteCase(res))

	loaded, err := store.LoadCases()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, res.ID, loaded[0].ID)
	assert.Equal(t, 1.02, loaded[0].Simulation.Keff)
	assert.True(t, loaded[0].OK)

	// no leftover temp files from the atomic write
	leftovers, err := filepath.Glob(filepath.Join(dir, "cases", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWarmCacheSeedsFromStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, id := range []string{"aaaa", "bbbb"} {
		require.NoError(t, store.WriteCase(evaluate.CaseResult{ID: id, OK: true}))
	}

	cache, err := WarmCache(store)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("aaaa")
	assert.True(t, ok)
	_, ok = cache.Get("cccc")
	assert.False(t, ok)
}

func TestCacheInsertIfAbsentConcurrent(t *testing.T) {
	cache := NewCache()

	const goroutines = 32
	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cache.PutIfAbsent(evaluate.CaseResult{ID: "same-point", OK: true}) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins, "exactly one insert wins for a given point")
	assert.Equal(t, 1, cache.Len())
}

func TestWriteCSVIncludesFailures(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ok := evaluate.CaseResult{ID: "good", OK: true}
	ok.Estimate.NOAK.LCOE = 120
	bad := evaluate.CaseResult{ID: "bad", Stage: evaluate.StageSolver, Error: "killed on timeout"}

	require.NoError(t, store.WriteCSV([]evaluate.CaseResult{ok, bad}))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "sweep.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "lcoe_noak")
	assert.Contains(t, lines[1], "good")
	assert.Contains(t, lines[2], "solver")
	assert.Contains(t, lines[2], "killed on timeout")
}

func TestWriteCSVCarriesOverrideColumns(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a := evaluate.CaseResult{
		ID: "pt-a",
		OK: true,
		Overrides: []params.Override{
			{Field: "power_mwt", Value: 15.0},
			{Field: "enrichment", Value: 0.1975},
		},
	}
	// variant rows may sweep different parameters; absent cells stay empty
	b := evaluate.CaseResult{
		ID:        "pt-b",
		OK:        true,
		Overrides: []params.Override{{Field: "interest_rate", Value: 0.05}},
	}
	require.NoError(t, store.WriteCSV([]evaluate.CaseResult{a, b}))

	f, err := os.Open(filepath.Join(store.Dir(), "sweep.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	assert.Equal(t, []string{"id", "power_mwt", "enrichment", "interest_rate"}, header[:4],
		"override columns follow the id in first-seen order")

	assert.Equal(t, []string{"pt-a", "15", "0.1975", ""}, rows[1][:4])
	assert.Equal(t, []string{"pt-b", "", "", "0.05"}, rows[2][:4])
}
