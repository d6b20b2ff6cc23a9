package pmtable_test

import (
	"testing"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strictTempProfile() pmtable.ArrayProfile {
	return pmtable.ArrayProfile{
		Mode:      pmtable.ModeStrict,
		Value:     pmtable.Range{Name: "core_temperature", Low: 25, High: 100},
		Mean:      pmtable.Range{Low: 35, High: 85},
		MaxSpread: 30,
	}
}

func tolerantFreqProfile() pmtable.ArrayProfile {
	return pmtable.ArrayProfile{
		Mode:     pmtable.ModeTolerant,
		Value:    pmtable.Range{Name: "core_frequency", Low: 400, High: 6000},
		Outliers: 2,
	}
}

func TestFindArraysStrict(t *testing.T) {
	// 8 core temps clustered around 55°C, preceded by padding that
	// keeps any overlapping window from matching.
	table := encode(0, 0, 52.5, 54.0, 55.5, 53.0, 56.0, 58.5, 51.0, 57.5)

	candidates := pmtable.FindArrays(table, 8, strictTempProfile())
	require.Len(t, candidates, 1, "Expected exactly one candidate window")

	c := candidates[0]
	assert.Equal(t, 8, c.Base, "Expected window at base 0x8")
	require.Len(t, c.Values, 8, "Expected window length to match core count")
	assert.InDelta(t, 54.75, c.Mean, 0.01, "Expected window mean")
	assert.InDelta(t, 7.5, c.Spread, 0.01, "Expected window spread")
}

func TestFindArraysStrictRejectsOutOfRangeValue(t *testing.T) {
	// One value outside (25,100) sinks the whole window.
	table := encode(52.5, 54.0, 55.5, 53.0, 56.0, 58.5, 20.0, 57.5)
	assert.Empty(t, pmtable.FindArrays(table, 8, strictTempProfile()), "Expected rejection on out-of-range value")
}

func TestFindArraysStrictRejectsMeanOutOfBounds(t *testing.T) {
	// All values inside (25,100) but the mean lands above 85.
	table := encode(95.0, 94.0, 96.0, 95.5, 94.5, 96.5, 95.0, 94.0)
	assert.Empty(t, pmtable.FindArrays(table, 8, strictTempProfile()), "Expected rejection on mean outside bounds")
}

func TestFindArraysStrictRejectsWideSpread(t *testing.T) {
	// Mean is fine but max-min reaches 34, above the 30 limit.
	table := encode(30.0, 64.0, 45.0, 50.0, 55.0, 48.0, 52.0, 47.0)
	assert.Empty(t, pmtable.FindArrays(table, 8, strictTempProfile()), "Expected rejection on spread")
}

func TestFindArraysTolerant(t *testing.T) {
	// 6 of 8 cores active, 2 idle at 0 MHz: passes with 2 outliers allowed.
	table := encode(4550, 4525, 0, 4600, 4575, 0, 4500, 4625)

	candidates := pmtable.FindArrays(table, 8, tolerantFreqProfile())
	require.Len(t, candidates, 1, "Expected idle cores tolerated")
	assert.Equal(t, 0, candidates[0].Base, "Expected window at base 0")
}

func TestFindArraysTolerantRejectsTooManyOutliers(t *testing.T) {
	// Only 5 of 8 values valid: one below the count-2 threshold.
	table := encode(4550, 4525, 0, 4600, 4575, 0, -1.0, 4625)
	assert.Empty(t, pmtable.FindArrays(table, 8, tolerantFreqProfile()), "Expected rejection with 3 outliers")
}

func TestFindArraysOverlappingWindows(t *testing.T) {
	// A long run of plausible temperatures produces overlapping
	// candidates at adjacent bases; the detector must not deduplicate.
	table := encode(52, 54, 55, 53, 56, 58, 51, 57, 54, 55)

	candidates := pmtable.FindArrays(table, 8, strictTempProfile())
	require.Len(t, candidates, 3, "Expected overlapping windows at bases 0, 4, 8")
	assert.Equal(t, 0, candidates[0].Base, "Expected ascending base order")
	assert.Equal(t, 4, candidates[1].Base, "Expected ascending base order")
	assert.Equal(t, 8, candidates[2].Base, "Expected ascending base order")
}

func TestFindArraysShortTable(t *testing.T) {
	table := encode(52, 54, 55)
	assert.Empty(t, pmtable.FindArrays(table, 8, strictTempProfile()), "Expected no window on a table shorter than the span")
	assert.Empty(t, pmtable.FindArrays(table, 0, strictTempProfile()), "Expected no window for zero core count")
}
