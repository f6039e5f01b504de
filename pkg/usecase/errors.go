package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrScorerNotConfigured = errors.New("scorer is not configured")
)

// Context keys for error values
const (
	ContactIDKey = "contact_id"
)
