// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func TestRandomDistribution_SumIsExact(t *testing.T) {
	optionCounts := []int{1, 2, 3, 7, 13}
	totals := []int{1, 2, 5, 13, 99, 1000, 12345}

	for seed := uint64(0); seed < 25; seed++ {
		d := RandomDistribution{Rand: rand.New(rand.NewPCG(seed, seed*31+7))}
		for _, n := range optionCounts {
			for _, total := range totals {
				counts := d.Distribute(n, total)
				require.Len(t, counts, n)
				require.Equal(t, total, sum(counts), "seed=%d options=%d total=%d", seed, n, total)

				for _, c := range counts {
					require.GreaterOrEqual(t, c, 0)
					if total >= n {
						require.Greater(t, c, 0, "seed=%d options=%d total=%d counts=%v", seed, n, total, counts)
					}
				}
			}
		}
	}
}

func TestRandomDistribution_FewerVotesThanOptions(t *testing.T) {
	d := RandomDistribution{Rand: rand.New(rand.NewPCG(1, 2))}

	counts := d.Distribute(5, 3)
	assert.Len(t, counts, 5)
	assert.Equal(t, 3, sum(counts))
}

func TestRandomDistribution_SeededIsRepeatable(t *testing.T) {
	a := RandomDistribution{Rand: rand.New(rand.NewPCG(42, 42))}.Distribute(4, 1000)
	b := RandomDistribution{Rand: rand.New(rand.NewPCG(42, 42))}.Distribute(4, 1000)
	assert.Equal(t, a, b)
}

type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func TestRandomDistribution_ZeroWeightsFallBackToEqual(t *testing.T) {
	d := RandomDistribution{Rand: rand.New(zeroSource{})}

	assert.Equal(t, []int{4, 3, 3}, d.Distribute(3, 10))
	assert.Equal(t, []int{1, 1, 0}, d.Distribute(3, 2))
}

func TestRandomDistribution_Degenerate(t *testing.T) {
	d := RandomDistribution{}
	assert.Empty(t, d.Distribute(0, 10))
	assert.Equal(t, []int{0, 0}, d.Distribute(2, 0))
	assert.Equal(t, []int{1, 1}, d.Distribute(2, 2))
}

func TestOneSidedDistribution(t *testing.T) {
	tests := []struct {
		name    string
		winner  int
		options int
		want    []int
	}{
		{"first by default", 0, 3, []int{1000, 0, 0}},
		{"explicit winner", 2, 3, []int{0, 0, 1000}},
		{"winner out of range", 5, 3, []int{1000, 0, 0}},
		{"negative winner", -1, 2, []int{1000, 0}},
		{"single option", 0, 1, []int{1000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OneSidedDistribution{Winner: tc.winner}.Distribute(tc.options, 1000)
			assert.Equal(t, tc.want, got)
		})
	}
}
