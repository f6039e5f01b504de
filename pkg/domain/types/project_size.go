package types

import "fmt"

// ProjectSize represents the overall scale of a construction project
type ProjectSize string

const (
	ProjectSizeSmall  ProjectSize = "small"
	ProjectSizeMedium ProjectSize = "medium"
	ProjectSizeLarge  ProjectSize = "large"
)

// AllProjectSizes returns all valid project sizes
func AllProjectSizes() []ProjectSize {
	return []ProjectSize{
		ProjectSizeSmall,
		ProjectSizeMedium,
		ProjectSizeLarge,
	}
}

// IsValid checks if the project size is valid
func (s ProjectSize) IsValid() bool {
	switch s {
	case ProjectSizeSmall,
		ProjectSizeMedium,
		ProjectSizeLarge:
		return true
	default:
		return false
	}
}

// Label returns a human readable name
func (s ProjectSize) Label() string {
	return titleCase(string(s))
}

// String returns the string representation of the project size
func (s ProjectSize) String() string {
	return string(s)
}

// ParseProjectSize parses a string into a ProjectSize
func ParseProjectSize(s string) (ProjectSize, error) {
	size := ProjectSize(s)
	if !size.IsValid() {
		return "", fmt.Errorf("invalid project size: %s", s)
	}
	return size, nil
}
