package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/interfaces"
	"github.com/ternarybob/lineage/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// PersonStorage implements the PersonStorage interface for Badger
type PersonStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewPersonStorage creates a new PersonStorage instance
func NewPersonStorage(db *BadgerDB, logger arbor.ILogger) interfaces.PersonStorage {
	return &PersonStorage{
		db:     db,
		logger: logger,
	}
}

func (s *PersonStorage) SavePerson(person *models.Person) error {
	if person.ID == "" {
		return fmt.Errorf("person ID is required")
	}

	now := time.Now()
	if person.CreatedAt.IsZero() {
		person.CreatedAt = now
	}
	person.UpdatedAt = now

	if err := s.db.Store().Upsert(person.ID, person); err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

func (s *PersonStorage) GetPerson(id string) (*models.Person, error) {
	var person models.Person
	if err := s.db.Store().Get(id, &person); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("person not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

// GetPersonBySourceID looks a person up by their original GEDCOM
// cross-reference id, which re-imports use to stay idempotent.
func (s *PersonStorage) GetPersonBySourceID(sourceID string) (*models.Person, error) {
	var persons []models.Person
	err := s.db.Store().Find(&persons, badgerhold.Where("SourceID").Eq(sourceID))
	if err != nil {
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	if len(persons) == 0 {
		return nil, fmt.Errorf("person not found for source: %s", sourceID)
	}
	return &persons[0], nil
}

func (s *PersonStorage) ListPersons(opts *interfaces.ListOptions) ([]*models.Person, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var persons []models.Person
	if err := s.db.Store().Find(&persons, query); err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	result := make([]*models.Person, len(persons))
	for i := range persons {
		result[i] = &persons[i]
	}
	return result, nil
}

func (s *PersonStorage) DeletePerson(id string) error {
	if err := s.db.Store().Delete(id, &models.Person{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (s *PersonStorage) CountPersons() (int, error) {
	count, err := s.db.Store().Count(&models.Person{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return int(count), nil
}

func (s *PersonStorage) ClearAll() error {
	return s.db.Store().DeleteMatching(&models.Person{}, nil)
}
