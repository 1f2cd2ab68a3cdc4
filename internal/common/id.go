package common

import (
	"github.com/google/uuid"
)

// Entity IDs carry a typed prefix so a bare id is self-describing in
// logs and API responses.

// NewPersonID generates a unique person ID with the "person_" prefix
func NewPersonID() string {
	return "person_" + uuid.New().String()
}

// NewRelationshipID generates a unique relationship ID with the "rel_" prefix
func NewRelationshipID() string {
	return "rel_" + uuid.New().String()
}

// NewEventID generates a unique event ID with the "event_" prefix
func NewEventID() string {
	return "event_" + uuid.New().String()
}

// NewMediaID generates a unique media ID with the "media_" prefix
func NewMediaID() string {
	return "media_" + uuid.New().String()
}
