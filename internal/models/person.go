package models

import "time"

// Gender values follow the GEDCOM SEX tag vocabulary.
type Gender string

const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderOther   Gender = "O"
	GenderUnknown Gender = "U"
)

// PersonName is a single name entry. A person may carry several names
// (birth name, married name, aliases); the first entry is the primary
// name used for display.
type PersonName struct {
	Given   string `json:"given"`
	Surname string `json:"surname"`
}

// LifeEvent captures the date/place detail attached to a birth or death.
type LifeEvent struct {
	Date  *time.Time `json:"date,omitempty"` // nil when the source date was absent or unparseable
	Place string     `json:"place,omitempty"`
	Notes string     `json:"notes,omitempty"`
}

// Person represents a normalized individual extracted from a GEDCOM INDI record
type Person struct {
	// Identity
	ID       string `json:"id"`        // person_{uuid}
	SourceID string `json:"source_id"` // Original GEDCOM cross-reference ID (e.g. "@I1@")

	Names  []PersonName `json:"names"`
	Gender Gender       `json:"gender"`

	Birth *LifeEvent `json:"birth,omitempty"`
	Death *LifeEvent `json:"death,omitempty"`

	// Notes is the concatenation of all NOTE children including continuation lines
	Notes string `json:"notes,omitempty"`

	// CustomFields is an open map for data that has no first-class field:
	// "email", "sources" (citations), and the raw "childInFamilies"/
	// "spouseInFamilies" pointer lists kept for reference verification.
	CustomFields map[string][]string `json:"custom_fields,omitempty"`

	// MediaIDs are populated by the media linker. Set semantics, no duplicates.
	MediaIDs []string `json:"media_ids,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrimaryName returns the first name entry, or a zero value when the
// source record carried no NAME at all.
func (p *Person) PrimaryName() PersonName {
	if len(p.Names) == 0 {
		return PersonName{}
	}
	return p.Names[0]
}

// HasMedia reports whether the given media id is already linked.
func (p *Person) HasMedia(mediaID string) bool {
	for _, id := range p.MediaIDs {
		if id == mediaID {
			return true
		}
	}
	return false
}

// AddMedia links a media id, preserving set semantics.
func (p *Person) AddMedia(mediaID string) {
	if !p.HasMedia(mediaID) {
		p.MediaIDs = append(p.MediaIDs, mediaID)
	}
}
