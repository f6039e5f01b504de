package types

import (
	"fmt"
	"strings"
)

// Level is the three step rating used for supply chain stability, material
// cost volatility and project complexity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// AllLevels returns all valid levels in ascending order
func AllLevels() []Level {
	return []Level{
		LevelLow,
		LevelMedium,
		LevelHigh,
	}
}

// IsValid checks if the level is valid
func (l Level) IsValid() bool {
	switch l {
	case LevelLow,
		LevelMedium,
		LevelHigh:
		return true
	default:
		return false
	}
}

// Label returns a human readable name
func (l Level) Label() string {
	return titleCase(string(l))
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid level: %s", s)
	}
	return level, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
