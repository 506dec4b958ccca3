// Package types provides type definitions for structured data used throughout the fit scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// ScoreOptions carries the optional metadata supplied alongside a CV and job description
type ScoreOptions struct {
	CompanyInfo     string             `json:"company_info,omitempty" validate:"max=20000"`
	YearsExperience int                `json:"years_experience,omitempty" validate:"gte=0,lte=70"`
	CurrentIndustry string             `json:"current_industry,omitempty" validate:"max=100"`
	ComponentScores map[string]float64 `json:"component_scores,omitempty" validate:"dive,keys,required,endkeys,gte=0,lte=100"`
}

// Validate validates the ScoreOptions using the validator.
func (o *ScoreOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Sanitized returns a copy with out-of-range values pulled back to usable ones
func (o ScoreOptions) Sanitized() ScoreOptions {
	if o.YearsExperience < 0 {
		o.YearsExperience = 0
	}
	if o.YearsExperience > 70 {
		o.YearsExperience = 70
	}
	if len(o.ComponentScores) > 0 {
		scores := make(map[string]float64, len(o.ComponentScores))
		for name, v := range o.ComponentScores {
			if name == "" || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			switch {
			case v < 0:
				v = 0
			case v > 100:
				v = 100
			}
			scores[name] = v
		}
		o.ComponentScores = scores
	}
	return o
}
