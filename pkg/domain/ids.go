package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern matches valid ID formats: alphanumeric with hyphens/underscores
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// SessionID represents a validated assessment session identifier.
type SessionID struct {
	value string
}

// NewSessionID creates a new SessionID from a string value.
// Returns an error if the value is invalid.
func NewSessionID(value string) (SessionID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SessionID{}, fmt.Errorf("session ID cannot be empty")
	}
	if !idPattern.MatchString(value) {
		return SessionID{}, fmt.Errorf("invalid session ID format: %s", value)
	}
	return SessionID{value: value}, nil
}

// MustSessionID creates a SessionID or panics if invalid. Use only in tests.
func MustSessionID(value string) SessionID {
	id, err := NewSessionID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation of the SessionID.
func (id SessionID) String() string {
	return id.value
}

// IsZero returns true if the SessionID is empty.
func (id SessionID) IsZero() bool {
	return id.value == ""
}

// Equals checks if two SessionIDs are equal.
func (id SessionID) Equals(other SessionID) bool {
	return id.value == other.value
}

// DimensionKey represents a validated readiness dimension key.
type DimensionKey struct {
	value string
}

// NewDimensionKey creates a new DimensionKey from a string value.
func NewDimensionKey(value string) (DimensionKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DimensionKey{}, fmt.Errorf("dimension key cannot be empty")
	}
	if !idPattern.MatchString(value) {
		return DimensionKey{}, fmt.Errorf("invalid dimension key format: %s", value)
	}
	return DimensionKey{value: value}, nil
}

// MustDimensionKey creates a DimensionKey or panics if invalid. Use only in tests.
func MustDimensionKey(value string) DimensionKey {
	k, err := NewDimensionKey(value)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the string representation of the DimensionKey.
func (k DimensionKey) String() string {
	return k.value
}

// IsZero returns true if the DimensionKey is empty.
func (k DimensionKey) IsZero() bool {
	return k.value == ""
}

// Equals checks if two DimensionKeys are equal.
func (k DimensionKey) Equals(other DimensionKey) bool {
	return k.value == other.value
}
