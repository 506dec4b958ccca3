package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/fit-scorer/internal/types"
)

func TestCalculateBonus(t *testing.T) {
	tests := []struct {
		name             string
		counts           types.MatchCounts
		essentialBonus   float64
		essentialPenalty float64
		preferredBonus   float64
		preferredPenalty float64
		total            float64
	}{
		{
			name:           "all of two required matched",
			counts:         types.MatchCounts{TotalRequired: 2, MatchedRequired: 2},
			essentialBonus: 2.0,
			total:          2.0,
		},
		{
			name:             "one of five required matched",
			counts:           types.MatchCounts{TotalRequired: 5, MatchedRequired: 1},
			essentialBonus:   2.0,
			essentialPenalty: -4.0,
			total:            -2.0,
		},
		{
			name:             "more than four required matched",
			counts:           types.MatchCounts{TotalRequired: 6, MatchedRequired: 5},
			essentialBonus:   3.0,
			essentialPenalty: -5.0 / 6.0,
			total:            3.0 - 5.0/6.0,
		},
		{
			name:             "none of two preferred matched",
			counts:           types.MatchCounts{TotalPreferred: 2},
			preferredBonus:   -1.0,
			preferredPenalty: -1.0,
			total:            -1.0,
		},
		{
			name:           "both preferred matched",
			counts:         types.MatchCounts{TotalPreferred: 2, MatchedPreferred: 2},
			preferredBonus: 1.0,
			total:          1.0,
		},
		{
			name:   "one preferred matched is neutral",
			counts: types.MatchCounts{TotalPreferred: 3, MatchedPreferred: 1},
		},
		{
			name:   "no requirements at all",
			counts: types.MatchCounts{},
		},
		{
			name:   "matched without any required total is gated",
			counts: types.MatchCounts{MatchedRequired: 3, MatchedPreferred: 2},
		},
		{
			name:             "matched above total is clamped",
			counts:           types.MatchCounts{TotalRequired: 2, MatchedRequired: 9},
			essentialBonus:   2.0,
			essentialPenalty: 0,
			total:            2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBonus(tt.counts)

			assert.InDelta(t, tt.essentialBonus, got.EssentialBonus, 1e-9)
			assert.InDelta(t, tt.essentialPenalty, got.EssentialPenalty, 1e-9)
			assert.InDelta(t, tt.preferredBonus, got.PreferredBonus, 1e-9)
			assert.InDelta(t, tt.preferredPenalty, got.PreferredPenalty, 1e-9)
			assert.InDelta(t, tt.total, got.TotalBonus, 1e-9)
		})
	}
}

func TestCalculateBonus_GatingIgnoresMatched(t *testing.T) {
	for matched := 0; matched <= 10; matched++ {
		got := CalculateBonus(types.MatchCounts{MatchedRequired: matched})

		assert.Zero(t, got.EssentialBonus)
		assert.Zero(t, got.EssentialPenalty)
	}
}

func TestCalculateBonus_KeepsCounts(t *testing.T) {
	counts := types.MatchCounts{TotalRequired: 3, TotalPreferred: 1, MatchedRequired: 2, MatchedPreferred: 1}

	assert.Equal(t, counts, CalculateBonus(counts).MatchCounts)
}
