// Package uuid wraps ID generation behind an interface so tests can pin IDs.
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

// Generator produces unique string IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with google/uuid v4.
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New generates a new UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}
