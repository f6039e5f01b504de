package types

// RiskLevel is the coarse classification of a prediction score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// AllRiskLevels returns all risk levels in ascending order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
	}
}

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh:
		return true
	default:
		return false
	}
}

// Label returns a human readable name
func (r RiskLevel) Label() string {
	return titleCase(string(r))
}

func (r RiskLevel) String() string {
	return string(r)
}
