package model

import (
	"strings"

	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

// JSON field names of PredictionInput, used in validation errors
const (
	FieldProjectSize            = "projectSize"
	FieldDuration               = "duration"
	FieldWorkforceAvailability  = "workforceAvailability"
	FieldSupplyChainStability   = "supplyChainStability"
	FieldMaterialCostVolatility = "materialCostVolatility"
	FieldProjectComplexity      = "projectComplexity"
)

// Bounds of numeric inputs
const (
	MinDuration              = 0
	MinWorkforceAvailability = 0
	MaxWorkforceAvailability = 100
)

// Accepted domains of the numeric inputs, as reported in validation errors
const (
	DurationDomain              = "integer >= 0"
	WorkforceAvailabilityDomain = "0..100"
)

// PredictionInput is the set of project factors scored by the risk scorer.
// Duration is in months; WorkforceAvailability is a percentage.
type PredictionInput struct {
	ProjectSize            types.ProjectSize `json:"projectSize"`
	Duration               int               `json:"duration"`
	WorkforceAvailability  int               `json:"workforceAvailability"`
	SupplyChainStability   types.Level       `json:"supplyChainStability"`
	MaterialCostVolatility types.Level       `json:"materialCostVolatility"`
	ProjectComplexity      types.Level       `json:"projectComplexity"`
}

// DefaultPredictionInput returns the values the prediction form starts with
func DefaultPredictionInput() PredictionInput {
	return PredictionInput{
		ProjectSize:            types.ProjectSizeMedium,
		Duration:               12,
		WorkforceAvailability:  80,
		SupplyChainStability:   types.LevelMedium,
		MaterialCostVolatility: types.LevelMedium,
		ProjectComplexity:      types.LevelMedium,
	}
}

// Validate checks every field and returns the first violation found, in
// field declaration order.
func (in PredictionInput) Validate() error {
	if !in.ProjectSize.IsValid() {
		return invalidField("invalid project size", FieldProjectSize, ProjectSizeDomain(), in.ProjectSize)
	}
	if in.Duration < MinDuration {
		return invalidField("duration must not be negative", FieldDuration, DurationDomain, in.Duration)
	}
	if in.WorkforceAvailability < MinWorkforceAvailability || in.WorkforceAvailability > MaxWorkforceAvailability {
		return invalidField("workforce availability out of range", FieldWorkforceAvailability, WorkforceAvailabilityDomain, in.WorkforceAvailability)
	}
	if !in.SupplyChainStability.IsValid() {
		return invalidField("invalid supply chain stability", FieldSupplyChainStability, LevelDomain(), in.SupplyChainStability)
	}
	if !in.MaterialCostVolatility.IsValid() {
		return invalidField("invalid material cost volatility", FieldMaterialCostVolatility, LevelDomain(), in.MaterialCostVolatility)
	}
	if !in.ProjectComplexity.IsValid() {
		return invalidField("invalid project complexity", FieldProjectComplexity, LevelDomain(), in.ProjectComplexity)
	}
	return nil
}

// FieldDomain returns the accepted domain of a PredictionInput field by its
// JSON name, or "" for names that are not input fields.
func FieldDomain(field string) string {
	switch field {
	case FieldProjectSize:
		return ProjectSizeDomain()
	case FieldDuration:
		return DurationDomain
	case FieldWorkforceAvailability:
		return WorkforceAvailabilityDomain
	case FieldSupplyChainStability, FieldMaterialCostVolatility, FieldProjectComplexity:
		return LevelDomain()
	}
	return ""
}

// ProjectSizeDomain describes the accepted project sizes, e.g. "small|medium|large"
func ProjectSizeDomain() string {
	sizes := types.AllProjectSizes()
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = s.String()
	}
	return strings.Join(names, "|")
}

// LevelDomain describes the accepted levels, e.g. "low|medium|high"
func LevelDomain() string {
	levels := types.AllLevels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return strings.Join(names, "|")
}

// Prediction is the outcome of scoring a PredictionInput
type Prediction struct {
	RiskLevel       types.RiskLevel `json:"riskLevel"`
	Probability     int             `json:"probability"`
	Recommendations []string        `json:"recommendations"`
}

// Assessment is a Prediction together with the raw score it was derived from
type Assessment struct {
	Prediction
	Score float64 `json:"score"`
}
