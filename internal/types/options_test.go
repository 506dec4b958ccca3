package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ScoreOptions
		wantErr bool
	}{
		{name: "zero value", opts: ScoreOptions{}},
		{
			name: "valid",
			opts: ScoreOptions{
				YearsExperience: 5,
				CurrentIndustry: "technology",
				ComponentScores: map[string]float64{"technical_depth": 80},
			},
		},
		{name: "negative years", opts: ScoreOptions{YearsExperience: -1}, wantErr: true},
		{name: "years too large", opts: ScoreOptions{YearsExperience: 71}, wantErr: true},
		{name: "score above range", opts: ScoreOptions{ComponentScores: map[string]float64{"x": 101}}, wantErr: true},
		{name: "empty score name", opts: ScoreOptions{ComponentScores: map[string]float64{"": 50}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoreOptions_Sanitized(t *testing.T) {
	opts := ScoreOptions{
		YearsExperience: 90,
		ComponentScores: map[string]float64{"a": -5, "b": 150, "c": 42, "": 10},
	}

	got := opts.Sanitized()

	assert.Equal(t, 70, got.YearsExperience)
	assert.Equal(t, map[string]float64{"a": 0, "b": 100, "c": 42}, got.ComponentScores)
	// the receiver's map is left untouched
	assert.Equal(t, 150.0, opts.ComponentScores["b"])

	assert.Equal(t, 0, ScoreOptions{YearsExperience: -3}.Sanitized().YearsExperience)
	sanitized := opts.Sanitized()
	assert.NoError(t, sanitized.Validate())
}

func TestScoreOptions_SanitizedDropsNonFinite(t *testing.T) {
	opts := ScoreOptions{ComponentScores: map[string]float64{
		"a": math.NaN(),
		"b": math.Inf(1),
		"c": math.Inf(-1),
		"d": 55,
	}}

	assert.Equal(t, map[string]float64{"d": 55}, opts.Sanitized().ComponentScores)
}
