package cpuinfo_test

import (
	"encoding/binary"
	"math"
	"testing"

	"codeberg.org/mutker/smuscan/internal/cpuinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(values ...float32) []byte {
	table := make([]byte, 0, len(values)*4)
	for _, v := range values {
		table = binary.LittleEndian.AppendUint32(table, math.Float32bits(v))
	}
	return table
}

func TestMatchTable(t *testing.T) {
	table := encode(4451.0, 95.5, 4400.0, 2200.0)

	fields := cpuinfo.MatchTable(table, 4450.0, 100.0)
	require.Len(t, fields, 2, "Expected matches within tolerance only")
	assert.Equal(t, 0, fields[0].Offset, "Expected near match at offset 0")
	assert.Equal(t, 8, fields[1].Offset, "Expected near match at offset 8")
}

func TestMatchTableStrictTolerance(t *testing.T) {
	// |v - mhz| must be strictly below tolerance: a delta of exactly
	// 100 sits on the open bound and is excluded.
	table := encode(4550.0, 4450.0, 4350.0, 4549.9)

	fields := cpuinfo.MatchTable(table, 4450.0, 100.0)
	require.Len(t, fields, 2, "Expected exact-delta values excluded")
	assert.Equal(t, 4, fields[0].Offset, "Expected exact match included")
	assert.Equal(t, 12, fields[1].Offset, "Expected in-tolerance value included")
}

func TestMatchTableEmpty(t *testing.T) {
	assert.Empty(t, cpuinfo.MatchTable(nil, 4450.0, 100.0), "Expected no matches on empty table")
}
