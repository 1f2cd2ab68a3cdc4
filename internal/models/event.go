package models

import "time"

// EventType is the closed enumeration of genealogical event categories.
type EventType string

const (
	EventTypeBirth          EventType = "birth"
	EventTypeDeath          EventType = "death"
	EventTypeMarriage       EventType = "marriage"
	EventTypeDivorce        EventType = "divorce"
	EventTypeEngagement     EventType = "engagement"
	EventTypeResidence      EventType = "residence"
	EventTypeWork           EventType = "work"
	EventTypeEducation      EventType = "education"
	EventTypeGraduation     EventType = "graduation"
	EventTypeMilitary       EventType = "military"
	EventTypeMedical        EventType = "medical"
	EventTypeTravel         EventType = "travel"
	EventTypeAchievement    EventType = "achievement"
	EventTypeReligious      EventType = "religious"
	EventTypeBurial         EventType = "burial"
	EventTypeCremation      EventType = "cremation"
	EventTypeAdoption       EventType = "adoption"
	EventTypeBaptism        EventType = "baptism"
	EventTypeChristening    EventType = "christening"
	EventTypeConfirmation   EventType = "confirmation"
	EventTypeOrdination     EventType = "ordination"
	EventTypeNaturalization EventType = "naturalization"
	EventTypeEmigration     EventType = "emigration"
	EventTypeImmigration    EventType = "immigration"
	EventTypeCensus         EventType = "census"
	EventTypeWill           EventType = "will"
	EventTypeProbate        EventType = "probate"
	EventTypeRetirement     EventType = "retirement"
	EventTypeCustom         EventType = "custom"
)

// EventDate holds a normalized point or range in time.
type EventDate struct {
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	IsRange bool       `json:"is_range"`
}

// EventLocation holds the place detail attached to an event.
type EventLocation struct {
	Place       string `json:"place,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
}

// Event represents a dated occurrence in one or more persons' lives,
// extracted per-individual (birth, residence, occupation, ...) or
// per-family (marriage, divorce).
type Event struct {
	ID string `json:"id"` // event_{uuid}

	// PersonIDs is ordered; the primary participant comes first.
	PersonIDs []string `json:"person_ids"`

	Type        EventType     `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        EventDate     `json:"date"`
	Location    EventLocation `json:"location"`
	Notes       string        `json:"notes,omitempty"`
	Sources     []string      `json:"sources,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
