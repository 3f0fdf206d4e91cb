// Package uuid generates the string identifiers used as primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 string.
//
// IDs generated by one process are strictly increasing, including within the
// same millisecond, so rows sort by insertion order on id. It panics if the
// random source fails rather than handing out an unordered ID.
func New() string {
	return googleuuid.Must(googleuuid.NewV7()).String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
