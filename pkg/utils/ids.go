package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// NewSortableID returns a UUIDv7 string, so ids of queued emails and sessions
// sort by creation time. Falls back to v4 when v7 generation fails.
func NewSortableID() string {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
