// Package id generates record identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh globally unique record id.
func New() string {
	return uuid.NewString()
}
