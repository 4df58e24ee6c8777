package domain

import "github.com/google/uuid"

// idLength is the number of characters kept from the generated UUID.
const idLength = 8

// NewID creates a new opaque short identifier for tasks and references.
// Format: the first 8 hex characters of a random UUID (e.g. "a1b2c3d4").
func NewID() string {
	return uuid.New().String()[:idLength]
}
