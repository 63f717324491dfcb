// Package tools implements the computations behind the catalog's
// built-in utilities. Every function is pure (or draws only on
// crypto-grade randomness) and carries no shared state; the catalog
// entry's Path is what binds a UI page to one of these.
package tools

import "github.com/google/uuid"

// NewUUID returns a random version 4 UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// NewUUIDs returns count random UUIDs. A non-positive count yields an
// empty slice.
func NewUUIDs(count int) []string {
	if count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}
