package pmtable_test

import (
	"math"
	"testing"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	table := encode(50.0, 96.0, 10.0, 45.0)
	temps := pmtable.Range{Name: "temperature", Low: 30, High: 95}

	fields := pmtable.Classify(table, temps)
	require.Len(t, fields, 2, "Expected exactly two matches")
	assert.Equal(t, 0, fields[0].Offset, "Expected first match at offset 0")
	assert.InDelta(t, 50.0, fields[0].Value, 0.001, "Expected 50.0 at offset 0")
	assert.Equal(t, 12, fields[1].Offset, "Expected second match at offset 12")
	assert.InDelta(t, 45.0, fields[1].Value, 0.001, "Expected 45.0 at offset 12")
}

func TestClassifyExcludesBounds(t *testing.T) {
	table := encode(30.0, 95.0, 30.001, 94.999)
	temps := pmtable.Range{Name: "temperature", Low: 30, High: 95}

	fields := pmtable.Classify(table, temps)
	require.Len(t, fields, 2, "Expected boundary values excluded")
	assert.Equal(t, 8, fields[0].Offset, "Expected interior value just above lower bound")
	assert.Equal(t, 12, fields[1].Offset, "Expected interior value just below upper bound")
}

func TestClassifyExcludesNonFinite(t *testing.T) {
	table := encode(float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), 60.0)
	temps := pmtable.Range{Name: "temperature", Low: 30, High: 95}

	fields := pmtable.Classify(table, temps)
	require.Len(t, fields, 1, "Expected only the finite value to match")
	assert.Equal(t, 12, fields[0].Offset, "Expected match at the finite value")
}

func TestClassifyShortTable(t *testing.T) {
	assert.Empty(t, pmtable.Classify(nil, pmtable.Range{Low: 0, High: 1}), "Expected no matches on empty table")
	assert.Empty(t, pmtable.Classify([]byte{0, 0, 0}, pmtable.Range{Low: -1, High: 1}), "Expected no matches when under 4 bytes")

	// A trailing partial field is ignored, the aligned prefix still scans.
	table := append(encode(0.725), 0xff, 0xff)
	volts := pmtable.Range{Name: "voltage", Low: 0.5, High: 2.0}
	fields := pmtable.Classify(table, volts)
	require.Len(t, fields, 1, "Expected the aligned prefix to match")
	assert.Equal(t, 0, fields[0].Offset, "Expected match at offset 0")
}
