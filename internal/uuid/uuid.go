// Package uuid generates the time-ordered identifiers attached to requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7. It falls back to a random UUIDv4 if the clock-based
// generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// FromHeader reuses a caller-supplied request id when it is a well-formed
// UUID and generates a new one otherwise.
func FromHeader(value string) string {
	if value != "" && IsValid(value) {
		return value
	}
	return New()
}
