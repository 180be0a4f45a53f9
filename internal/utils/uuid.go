// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for stored records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
// Used for PostgreSQL user ids where index locality matters.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Random returns a random UUIDv4. Session ids and OAuth nonces use it since
// they must not be guessable from creation time.
func (g *UUIDGenerator) Random() string {
	return uuid.NewString()
}
