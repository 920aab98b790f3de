package model

import "github.com/google/uuid"

// NewID returns a fresh opaque item id. IDs are assigned once at creation
// and never reused.
func NewID() string {
	return uuid.NewString()
}
