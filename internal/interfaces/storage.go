package interfaces

import (
	"github.com/ternarybob/lineage/internal/models"
)

// ListOptions controls pagination for list operations.
type ListOptions struct {
	Limit  int
	Offset int
}

// PersonStorage - interface for person persistence
type PersonStorage interface {
	SavePerson(person *models.Person) error
	GetPerson(id string) (*models.Person, error)
	GetPersonBySourceID(sourceID string) (*models.Person, error)
	ListPersons(opts *ListOptions) ([]*models.Person, error)
	DeletePerson(id string) error
	CountPersons() (int, error)
	ClearAll() error
}

// RelationshipStorage - interface for relationship persistence
type RelationshipStorage interface {
	SaveRelationship(rel *models.Relationship) error
	GetRelationship(id string) (*models.Relationship, error)
	ListRelationshipsByPerson(personID string, relType models.RelationshipType) ([]*models.Relationship, error)
	ListRelationships(opts *ListOptions) ([]*models.Relationship, error)
	DeleteRelationship(id string) error
	CountRelationships() (int, error)
	ClearAll() error
}

// EventStorage - interface for event persistence
type EventStorage interface {
	SaveEvent(event *models.Event) error
	GetEvent(id string) (*models.Event, error)
	ListEventsByPerson(personID string) ([]*models.Event, error)
	ListEvents(opts *ListOptions) ([]*models.Event, error)
	DeleteEvent(id string) error
	CountEvents() (int, error)
	ClearAll() error
}

// MediaStorage - interface for media persistence
type MediaStorage interface {
	SaveMedia(media *models.Media) error
	GetMedia(id string) (*models.Media, error)
	ListMedia(opts *ListOptions) ([]*models.Media, error)
	DeleteMedia(id string) error
	CountMedia() (int, error)
	ClearAll() error
}

// StorageManager - composite interface for all storage operations
type StorageManager interface {
	PersonStorage() PersonStorage
	RelationshipStorage() RelationshipStorage
	EventStorage() EventStorage
	MediaStorage() MediaStorage
	DB() interface{}
	Close() error
}
