package utils

import "github.com/google/uuid"

// IDGenerator produces client-side activity ids.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewID returns a time-ordered UUIDv7, or a random UUIDv4 if v7 generation fails.
func (g *IDGenerator) NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
