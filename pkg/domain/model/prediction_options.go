package model

import "github.com/secmon-lab/constrisk/pkg/domain/types"

// FormOption is one selectable value of an enumerated input
type FormOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// NumberBounds describes an integer input. Max of zero means unbounded.
type NumberBounds struct {
	Min  int    `json:"min"`
	Max  int    `json:"max,omitempty"`
	Unit string `json:"unit"`
}

// PredictionOptions lists the accepted values of every PredictionInput field
// along with the initial form state.
type PredictionOptions struct {
	ProjectSize            []FormOption    `json:"projectSize"`
	Duration               NumberBounds    `json:"duration"`
	WorkforceAvailability  NumberBounds    `json:"workforceAvailability"`
	SupplyChainStability   []FormOption    `json:"supplyChainStability"`
	MaterialCostVolatility []FormOption    `json:"materialCostVolatility"`
	ProjectComplexity      []FormOption    `json:"projectComplexity"`
	Defaults               PredictionInput `json:"defaults"`
}

// NewPredictionOptions builds the option catalogue from the domain enums
func NewPredictionOptions() PredictionOptions {
	var sizes []FormOption
	for _, s := range types.AllProjectSizes() {
		sizes = append(sizes, FormOption{Value: s.String(), Label: s.Label()})
	}

	var levels []FormOption
	for _, l := range types.AllLevels() {
		levels = append(levels, FormOption{Value: l.String(), Label: l.Label()})
	}

	return PredictionOptions{
		ProjectSize:            sizes,
		Duration:               NumberBounds{Min: MinDuration, Unit: "months"},
		WorkforceAvailability:  NumberBounds{Min: MinWorkforceAvailability, Max: MaxWorkforceAvailability, Unit: "%"},
		SupplyChainStability:   levels,
		MaterialCostVolatility: levels,
		ProjectComplexity:      levels,
		Defaults:               DefaultPredictionInput(),
	}
}
