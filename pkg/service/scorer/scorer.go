package scorer

import (
	"fmt"
	"math"

	"github.com/secmon-lab/constrisk/pkg/domain/model"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

// Recommendation rule constants
const (
	workforceTarget        = 70
	workforceGapFactor     = 1.5
	longDurationMonths     = 18
	minFallbackEntries     = 2
	minRecommendations     = 3
	maxRecommendations     = 5
	fallbackMonitoring     = "Maintain regular project status monitoring"
	fallbackChangeTracking = "Document and track all project changes"
)

// Scorer computes risk predictions. It holds no mutable state and is safe
// for concurrent use.
type Scorer struct {
	profile Profile
}

// New returns a Scorer using profile. The profile is not validated here;
// callers loading it from outside should call Profile.Validate first.
func New(profile Profile) *Scorer {
	return &Scorer{profile: profile}
}

// Default returns a Scorer with the built-in profile
func Default() *Scorer {
	return New(DefaultProfile())
}

// Profile returns the constants the scorer was built with
func (s *Scorer) Profile() Profile {
	return s.profile
}

// ComputeScore returns the weighted sum of all six input factors
func (s *Scorer) ComputeScore(in model.PredictionInput) float64 {
	p := s.profile

	score := p.ProjectSize.of(in.ProjectSize)
	score += math.Min(p.DurationCap, float64(in.Duration)*p.DurationFactor)
	score += math.Max(0, float64(100-in.WorkforceAvailability)*p.WorkforceFactor)
	score += p.SupplyChainStability.of(in.SupplyChainStability)
	score += p.MaterialCostVolatility.of(in.MaterialCostVolatility)
	score += p.ProjectComplexity.of(in.ProjectComplexity)

	return score
}

// Classify maps a score to its risk level and a probability in [0, 100]
func (s *Scorer) Classify(score float64) (types.RiskLevel, int) {
	c := s.profile.Classification

	switch {
	case score < c.MediumThreshold:
		return types.RiskLevelLow, percent(score / c.MediumThreshold * 100)
	case score < c.HighThreshold:
		band := c.HighThreshold - c.MediumThreshold
		return types.RiskLevelMedium, percent((score - c.MediumThreshold) / band * 100)
	default:
		return types.RiskLevelHigh, percent(math.Min((score-c.HighThreshold)/c.HighSpan*100+c.HighFloor, 100))
	}
}

// Recommend returns 3 to 5 mitigation hints triggered by the raw input. When
// no rule fires only the two fallback entries are returned. score is not
// consulted by the current rule set.
func (s *Scorer) Recommend(in model.PredictionInput, score float64) []string {
	var recs []string

	if in.WorkforceAvailability < workforceTarget {
		gap := round(float64(workforceTarget-in.WorkforceAvailability) * workforceGapFactor)
		recs = append(recs, fmt.Sprintf("Increase workforce allocation by %d%%", gap))
	}

	if in.MaterialCostVolatility == types.LevelHigh {
		recs = append(recs,
			"Implement material cost hedging strategies",
			"Establish contracts with multiple suppliers to mitigate cost risks",
		)
	}

	if in.SupplyChainStability == types.LevelLow {
		recs = append(recs,
			"Develop backup supply chain routes",
			"Maintain higher inventory levels for critical materials",
		)
	}

	if in.ProjectComplexity == types.LevelHigh {
		recs = append(recs,
			"Break down the project into smaller, manageable phases",
			"Implement additional quality control checkpoints",
		)
	}

	if in.Duration > longDurationMonths {
		recs = append(recs,
			"Consider a phased delivery approach",
			"Establish quarterly project review milestones",
		)
	}

	if len(recs) < minFallbackEntries {
		recs = append(recs, fallbackMonitoring, fallbackChangeTracking)
	}

	// Slicing past the end is clipped, so two fallback entries stay two.
	limit := min(max(len(recs), minRecommendations), maxRecommendations)
	return recs[:min(limit, len(recs))]
}

// Predict runs the full pipeline and returns the prediction with its score
func (s *Scorer) Predict(in model.PredictionInput) model.Assessment {
	score := s.ComputeScore(in)
	level, probability := s.Classify(score)

	return model.Assessment{
		Prediction: model.Prediction{
			RiskLevel:       level,
			Probability:     probability,
			Recommendations: s.Recommend(in, score),
		},
		Score: score,
	}
}

// round rounds half toward positive infinity.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func percent(x float64) int {
	return min(max(round(x), 0), 100)
}
