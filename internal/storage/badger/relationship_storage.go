package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/interfaces"
	"github.com/ternarybob/lineage/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// RelationshipStorage implements the RelationshipStorage interface for Badger
type RelationshipStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewRelationshipStorage creates a new RelationshipStorage instance
func NewRelationshipStorage(db *BadgerDB, logger arbor.ILogger) interfaces.RelationshipStorage {
	return &RelationshipStorage{
		db:     db,
		logger: logger,
	}
}

func (s *RelationshipStorage) SaveRelationship(rel *models.Relationship) error {
	if rel.ID == "" {
		return fmt.Errorf("relationship ID is required")
	}
	if len(rel.PersonIDs) != 2 {
		return fmt.Errorf("relationship requires exactly two persons, got %d", len(rel.PersonIDs))
	}

	now := time.Now()
	if rel.CreatedAt.IsZero() {
		rel.CreatedAt = now
	}
	rel.UpdatedAt = now

	if err := s.db.Store().Upsert(rel.ID, rel); err != nil {
		return fmt.Errorf("failed to save relationship: %w", err)
	}
	return nil
}

func (s *RelationshipStorage) GetRelationship(id string) (*models.Relationship, error) {
	var rel models.Relationship
	if err := s.db.Store().Get(id, &rel); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("relationship not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get relationship: %w", err)
	}
	return &rel, nil
}

// ListRelationshipsByPerson returns every relationship involving the
// person, optionally filtered by type. This is the read path behind
// "list family of person X".
func (s *RelationshipStorage) ListRelationshipsByPerson(personID string, relType models.RelationshipType) ([]*models.Relationship, error) {
	query := badgerhold.Where("PersonIDs").Contains(personID)
	if relType != "" {
		query = query.And("Type").Eq(relType)
	}

	var rels []models.Relationship
	if err := s.db.Store().Find(&rels, query); err != nil {
		return nil, fmt.Errorf("failed to list relationships for person %s: %w", personID, err)
	}

	result := make([]*models.Relationship, len(rels))
	for i := range rels {
		result[i] = &rels[i]
	}
	return result, nil
}

func (s *RelationshipStorage) ListRelationships(opts *interfaces.ListOptions) ([]*models.Relationship, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var rels []models.Relationship
	if err := s.db.Store().Find(&rels, query); err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	result := make([]*models.Relationship, len(rels))
	for i := range rels {
		result[i] = &rels[i]
	}
	return result, nil
}

func (s *RelationshipStorage) DeleteRelationship(id string) error {
	if err := s.db.Store().Delete(id, &models.Relationship{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete relationship: %w", err)
	}
	return nil
}

func (s *RelationshipStorage) CountRelationships() (int, error) {
	count, err := s.db.Store().Count(&models.Relationship{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count relationships: %w", err)
	}
	return int(count), nil
}

func (s *RelationshipStorage) ClearAll() error {
	return s.db.Store().DeleteMatching(&models.Relationship{}, nil)
}
