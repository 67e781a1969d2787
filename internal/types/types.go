// internal/types/types.go
package types

import "github.com/google/uuid"

// EntityID identifies a tank or bullet for the lifetime of a run.
type EntityID string

// NewEntityID returns a fresh random ID.
func NewEntityID() EntityID {
	return EntityID(uuid.NewString())
}

// Short returns the first eight characters, enough for log lines.
func (id EntityID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}
