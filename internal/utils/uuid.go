package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for token jti claims.
// Time-ordered V7 UUIDs are preferred so that token records sort naturally
// by issuance time; V4 is the fallback when V7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
