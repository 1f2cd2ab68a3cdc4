package models

import "time"

// RelationshipType is the closed set of relationship kinds the import
// pipeline produces.
type RelationshipType string

const (
	RelationshipSpouse      RelationshipType = "spouse"
	RelationshipParentChild RelationshipType = "parent-child"
	RelationshipSibling     RelationshipType = "sibling"
)

// Relationship links exactly two persons. For parent-child relationships
// PersonIDs is conventionally [parent, child]; the order is not enforced
// at the data level.
type Relationship struct {
	ID   string           `json:"id"` // rel_{uuid}
	Type RelationshipType `json:"type"`

	PersonIDs []string `json:"person_ids"`

	// Date is only meaningful for spouse relationships (marriage date).
	Date  *time.Time `json:"date,omitempty"`
	Notes string     `json:"notes,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Involves reports whether the relationship references the given person.
func (r *Relationship) Involves(personID string) bool {
	for _, id := range r.PersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}
