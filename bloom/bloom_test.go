// Package bloom_test checks the filter's sizing, the no-false-negative
// guarantee, and the fill-based estimators.
package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/bloom"
)

func TestConstruction(t *testing.T) {
	f := bloom.New(1024, 3)
	require.Equal(t, 1024, f.NumBits())
	require.Equal(t, 3, f.NumHashes())
	require.Equal(t, 0, f.NumSetBits())

	// Bit counts round up to whole words.
	require.Equal(t, 64, bloom.New(1, 1).NumBits())

	require.Panics(t, func() { bloom.New(1024, 0) })
	require.Panics(t, func() { bloom.New(1024, 65) })
}

func TestNoFalseNegatives(t *testing.T) {
	f := bloom.New(4096, 4)
	for i := 0; i < 200; i++ {
		f.InsertString(fmt.Sprintf("key-%d", i))
	}
	for i := 0; i < 200; i++ {
		require.True(t, f.HasString(fmt.Sprintf("key-%d", i)), "inserted key %d missing", i)
	}
}

func TestMostlyNoFalsePositivesWhenSparse(t *testing.T) {
	f := bloom.New(1<<16, 5)
	for i := 0; i < 100; i++ {
		f.InsertString(fmt.Sprintf("present-%d", i))
	}

	falsePositives := 0
	for i := 0; i < 1000; i++ {
		if f.HasString(fmt.Sprintf("absent-%d", i)) {
			falsePositives++
		}
	}
	// At this fill the predicted rate is far below 1e-6; a handful would
	// already mean the hashing is broken.
	require.Less(t, falsePositives, 5)
}

func TestNewOptimal(t *testing.T) {
	f := bloom.NewOptimal(1000, 0.01)
	// k = ln(1/0.01)/ln 2 ≈ 6.6 → 6; m ≈ 2.08·ln(1/0.01)·n ≈ 9.6 kbit.
	require.Equal(t, 6, f.NumHashes())
	require.Greater(t, f.NumBits(), 9000)
	require.Less(t, f.NumBits(), 11000)
}

func TestApproxItems(t *testing.T) {
	f := bloom.NewOptimal(1000, 0.01)
	const inserted = 500
	for i := 0; i < inserted; i++ {
		f.InsertString(fmt.Sprintf("item-%d", i))
	}

	got := f.ApproxItems()
	require.InDelta(t, inserted, got, inserted/10)
}

func TestFalsePositiveChanceGrowsWithFill(t *testing.T) {
	f := bloom.New(1024, 3)
	require.Equal(t, 0.0, f.FalsePositiveChance())

	f.InsertString("a")
	low := f.FalsePositiveChance()
	for i := 0; i < 100; i++ {
		f.InsertString(fmt.Sprintf("fill-%d", i))
	}
	high := f.FalsePositiveChance()
	require.Greater(t, high, low)
	require.Less(t, high, 1.0)
}
