package utils

import "github.com/google/uuid"

// NewTraceID returns a fresh identifier for request tracing. Version 7
// UUIDs are time-ordered, so trace IDs minted by one process sort in
// arrival order in the logs. Falls back to a random UUID when the clock
// reading fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
