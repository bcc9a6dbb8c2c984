package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Define errors
var (
	// ErrPlatform wraps any platform REST failure without a more
	// specific classification.
	ErrPlatform = errors.New("platform request failed")

	// ErrNotFound is returned when a referenced guild, member, role or
	// emoji does not exist.
	ErrNotFound = errors.New("not found")
)

// ResourceLimitError is returned when the platform rejects a request
// because a per-guild resource cap was reached. Limit is the numeric cap
// when it could be parsed out of the platform's message, 0 otherwise.
type ResourceLimitError struct {
	// Resource names the capped resource, e.g. "emoji"
	Resource string

	Limit int
}

// Error implements the error interface.
func (e *ResourceLimitError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s limit reached (%d)", e.Resource, e.Limit)
	}
	return fmt.Sprintf("%s limit reached", e.Resource)
}

var limitPattern = regexp.MustCompile(`\((\d+)\)`)

// parseLimit extracts the parenthesized numeric cap from a platform
// error message, e.g. "Maximum number of emojis reached (50)".
func parseLimit(message string) int {
	m := limitPattern.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	limit, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return limit
}
