package scorer

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

// LevelWeights holds the score contribution of each level of a factor
type LevelWeights struct {
	Low    float64 `toml:"low"`
	Medium float64 `toml:"medium"`
	High   float64 `toml:"high"`
}

func (w LevelWeights) of(l types.Level) float64 {
	switch l {
	case types.LevelLow:
		return w.Low
	case types.LevelMedium:
		return w.Medium
	case types.LevelHigh:
		return w.High
	default:
		return 0
	}
}

func (w LevelWeights) validate() error {
	if w.Low < 0 || w.Medium < 0 || w.High < 0 {
		return goerr.New("weights must not be negative",
			goerr.V("low", w.Low), goerr.V("medium", w.Medium), goerr.V("high", w.High))
	}
	return nil
}

// SizeWeights holds the score contribution of each project size
type SizeWeights struct {
	Small  float64 `toml:"small"`
	Medium float64 `toml:"medium"`
	Large  float64 `toml:"large"`
}

func (w SizeWeights) of(s types.ProjectSize) float64 {
	switch s {
	case types.ProjectSizeSmall:
		return w.Small
	case types.ProjectSizeMedium:
		return w.Medium
	case types.ProjectSizeLarge:
		return w.Large
	default:
		return 0
	}
}

// Classification holds the score bands used to derive risk level and probability.
//
//	score < MediumThreshold                  low,    score/MediumThreshold
//	MediumThreshold <= score < HighThreshold medium, position within the band
//	score >= HighThreshold                   high,   (score-HighThreshold)/HighSpan*100 + HighFloor
type Classification struct {
	MediumThreshold float64 `toml:"medium_threshold"`
	HighThreshold   float64 `toml:"high_threshold"`
	HighSpan        float64 `toml:"high_span"`
	HighFloor       float64 `toml:"high_floor"`
}

// Profile is the full set of constants of the scoring formula
type Profile struct {
	ProjectSize            SizeWeights    `toml:"project_size"`
	DurationFactor         float64        `toml:"duration_factor"`
	DurationCap            float64        `toml:"duration_cap"`
	WorkforceFactor        float64        `toml:"workforce_factor"`
	SupplyChainStability   LevelWeights   `toml:"supply_chain_stability"`
	MaterialCostVolatility LevelWeights   `toml:"material_cost_volatility"`
	ProjectComplexity      LevelWeights   `toml:"project_complexity"`
	Classification         Classification `toml:"classification"`
}

// DefaultProfile returns the built-in scoring constants
func DefaultProfile() Profile {
	return Profile{
		ProjectSize:     SizeWeights{Small: 10, Medium: 20, Large: 30},
		DurationFactor:  1.5,
		DurationCap:     30,
		WorkforceFactor: 0.5,
		// Stability is inverted: an unstable supply chain adds the most risk.
		SupplyChainStability:   LevelWeights{Low: 30, Medium: 15, High: 5},
		MaterialCostVolatility: LevelWeights{Low: 5, Medium: 15, High: 30},
		ProjectComplexity:      LevelWeights{Low: 5, Medium: 20, High: 35},
		Classification: Classification{
			MediumThreshold: 60,
			HighThreshold:   100,
			HighSpan:        50,
			HighFloor:       70,
		},
	}
}

// Validate checks that the profile describes a usable formula
func (p Profile) Validate() error {
	if p.ProjectSize.Small < 0 || p.ProjectSize.Medium < 0 || p.ProjectSize.Large < 0 {
		return goerr.New("project size weights must not be negative")
	}
	if p.DurationFactor < 0 || p.DurationCap < 0 {
		return goerr.New("duration factor and cap must not be negative",
			goerr.V("duration_factor", p.DurationFactor), goerr.V("duration_cap", p.DurationCap))
	}
	if p.WorkforceFactor < 0 {
		return goerr.New("workforce factor must not be negative", goerr.V("workforce_factor", p.WorkforceFactor))
	}
	if err := p.SupplyChainStability.validate(); err != nil {
		return goerr.Wrap(err, "invalid supply chain stability weights")
	}
	if err := p.MaterialCostVolatility.validate(); err != nil {
		return goerr.Wrap(err, "invalid material cost volatility weights")
	}
	if err := p.ProjectComplexity.validate(); err != nil {
		return goerr.Wrap(err, "invalid project complexity weights")
	}

	c := p.Classification
	if c.MediumThreshold <= 0 {
		return goerr.New("medium threshold must be positive", goerr.V("medium_threshold", c.MediumThreshold))
	}
	if c.HighThreshold <= c.MediumThreshold {
		return goerr.New("high threshold must be greater than medium threshold",
			goerr.V("medium_threshold", c.MediumThreshold), goerr.V("high_threshold", c.HighThreshold))
	}
	if c.HighSpan <= 0 {
		return goerr.New("high span must be positive", goerr.V("high_span", c.HighSpan))
	}
	if c.HighFloor < 0 || c.HighFloor > 100 {
		return goerr.New("high floor must be between 0 and 100", goerr.V("high_floor", c.HighFloor))
	}
	return nil
}
