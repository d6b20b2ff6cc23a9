package pmtable_test

import (
	"testing"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFieldsValueDesc(t *testing.T) {
	fields := []pmtable.Field{
		{Offset: 0, Value: 50.0},
		{Offset: 4, Value: 72.5},
		{Offset: 8, Value: 45.0},
		{Offset: 12, Value: 72.5},
	}

	ranked := pmtable.RankFields(fields, pmtable.OrderValueDesc)
	require.Len(t, ranked, 4, "Expected all candidates preserved")
	assert.Equal(t, 4, ranked[0].Offset, "Expected highest value first")
	assert.Equal(t, 12, ranked[1].Offset, "Expected tie broken by ascending offset")
	assert.Equal(t, 0, ranked[2].Offset, "Expected 50.0 third")
	assert.Equal(t, 8, ranked[3].Offset, "Expected lowest value last")

	// The input order is left untouched.
	assert.Equal(t, 0, fields[0].Offset, "Expected input unmodified")
}

func TestRankFieldsOffsetOrder(t *testing.T) {
	fields := []pmtable.Field{
		{Offset: 0, Value: 40.0},
		{Offset: 4, Value: 65.0},
	}

	ranked := pmtable.RankFields(fields, pmtable.OrderOffset)
	assert.Equal(t, fields, ranked, "Expected offset order preserved")
}

func TestRankArraysMeanDesc(t *testing.T) {
	candidates := []pmtable.ArrayCandidate{
		{Base: 0, Mean: 42.0},
		{Base: 4, Mean: 61.5},
		{Base: 8, Mean: 61.5},
	}

	ranked := pmtable.RankArrays(candidates, pmtable.OrderMeanDesc)
	require.Len(t, ranked, 3, "Expected all candidates preserved")
	assert.Equal(t, 4, ranked[0].Base, "Expected highest mean first")
	assert.Equal(t, 8, ranked[1].Base, "Expected tie broken by ascending base")
	assert.Equal(t, 0, ranked[2].Base, "Expected lowest mean last")
}

func TestRankArraysOffsetOrder(t *testing.T) {
	candidates := []pmtable.ArrayCandidate{
		{Base: 0, Mean: 42.0},
		{Base: 4, Mean: 61.5},
	}

	ranked := pmtable.RankArrays(candidates, pmtable.OrderOffset)
	assert.Equal(t, candidates, ranked, "Expected base order preserved")
}
