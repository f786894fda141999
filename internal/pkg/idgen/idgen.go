package idgen

import "github.com/google/uuid"

// Generator produces identifiers for new records.
type Generator interface {
	NewID() string
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Valid reports whether id is a well-formed UUID.
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
