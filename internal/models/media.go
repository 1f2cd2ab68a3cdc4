package models

import "time"

// MediaType is inferred from the file extension, falling back to the
// declared format/MIME type, defaulting to Document.
type MediaType string

const (
	MediaTypePhoto    MediaType = "photo"
	MediaTypeDocument MediaType = "document"
	MediaTypeAudio    MediaType = "audio"
	MediaTypeVideo    MediaType = "video"
)

// MediaFile describes the underlying file of a media object.
type MediaFile struct {
	Path         string `json:"path"`
	OriginalName string `json:"original_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
}

// Media represents a photo, document, audio or video object extracted
// from a GEDCOM OBJE record (top-level or inline under an individual).
type Media struct {
	ID       string `json:"id"`                  // media_{uuid}
	SourceID string `json:"source_id,omitempty"` // GEDCOM cross-reference ID for top-level records

	Type  MediaType `json:"type"`
	Title string    `json:"title,omitempty"`
	File  MediaFile `json:"file"`
	Notes string    `json:"notes,omitempty"`

	// Back-references populated by the media linker. Set semantics.
	PersonIDs []string `json:"person_ids,omitempty"`
	EventIDs  []string `json:"event_ids,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPerson reports whether the person is already back-referenced.
func (m *Media) HasPerson(personID string) bool {
	for _, id := range m.PersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}

// AddPerson back-references a person, preserving set semantics.
func (m *Media) AddPerson(personID string) {
	if !m.HasPerson(personID) {
		m.PersonIDs = append(m.PersonIDs, personID)
	}
}
