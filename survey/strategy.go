// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// VoteDistributionStrategy allocates totalVotes across optionCount options.
// The result has length optionCount and sums to totalVotes.
type VoteDistributionStrategy interface {
	Distribute(optionCount, totalVotes int) []int
}

// Distribution names a strategy on the wire.
type Distribution string

const (
	DistributionRandom   Distribution = "random"
	DistributionOneSided Distribution = "one_sided"
)

// ParseDistribution maps a wire name to a Distribution. Empty means random.
func ParseDistribution(name string) (Distribution, error) {
	switch Distribution(strings.ToLower(strings.TrimSpace(name))) {
	case "", DistributionRandom:
		return DistributionRandom, nil
	case DistributionOneSided:
		return DistributionOneSided, nil
	default:
		return "", invalid("distribution", "unknown distribution %q (want %q or %q)", name, DistributionRandom, DistributionOneSided)
	}
}

// RandomDistribution spreads votes proportionally to random weights. When
// there are at least as many votes as options every option gets one vote
// before the rest is spread.
type RandomDistribution struct {
	Rand *rand.Rand // nil uses the global source
}

func (d RandomDistribution) Distribute(optionCount, totalVotes int) []int {
	if optionCount <= 0 {
		return []int{}
	}
	counts := make([]int, optionCount)
	if totalVotes <= 0 {
		return counts
	}

	remaining := totalVotes
	if totalVotes >= optionCount {
		for i := range counts {
			counts[i] = 1
		}
		remaining -= optionCount
	}
	if remaining == 0 {
		return counts
	}

	weights := make([]float64, optionCount)
	var sum float64
	for i := range weights {
		weights[i] = d.float64()
		sum += weights[i]
	}
	if sum == 0 {
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(optionCount)
	}

	// Largest remainder: floor each share, then hand leftover votes to the
	// biggest fractional parts, lower index first on ties.
	shares := make([]int, optionCount)
	fractions := make([]float64, optionCount)
	assigned := 0
	for i, w := range weights {
		share := w / sum * float64(remaining)
		whole := int(share)
		if whole > remaining-assigned {
			whole = remaining - assigned
		}
		shares[i] = whole
		fractions[i] = share - float64(whole)
		assigned += whole
	}

	order := make([]int, optionCount)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fractions[order[a]] > fractions[order[b]]
	})
	for i := 0; assigned < remaining; i++ {
		shares[order[i%optionCount]]++
		assigned++
	}

	for i := range counts {
		counts[i] += shares[i]
	}
	return counts
}

func (d RandomDistribution) float64() float64 {
	if d.Rand != nil {
		return d.Rand.Float64()
	}
	return rand.Float64()
}

// OneSidedDistribution gives every vote to a single option.
type OneSidedDistribution struct {
	Winner int // option index; out of range falls back to the first option
}

func (d OneSidedDistribution) Distribute(optionCount, totalVotes int) []int {
	if optionCount <= 0 {
		return []int{}
	}
	counts := make([]int, optionCount)
	winner := d.Winner
	if winner < 0 || winner >= optionCount {
		winner = 0
	}
	counts[winner] = totalVotes
	return counts
}

// StrategyFor builds the strategy for a distribution kind. One-sided surveys
// hand every vote to the option ranked 1, or the first option.
func (s *Survey) StrategyFor(kind Distribution) (VoteDistributionStrategy, error) {
	switch kind {
	case DistributionRandom:
		return RandomDistribution{}, nil
	case DistributionOneSided:
		return OneSidedDistribution{Winner: s.PreferredOptionIndex()}, nil
	default:
		return nil, invalid("distribution", "unknown distribution %q", kind)
	}
}

func strategyName(strategy VoteDistributionStrategy) string {
	switch strategy.(type) {
	case RandomDistribution, *RandomDistribution:
		return string(DistributionRandom)
	case OneSidedDistribution, *OneSidedDistribution:
		return string(DistributionOneSided)
	default:
		return "custom"
	}
}
