package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/interfaces"
	"github.com/ternarybob/lineage/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// EventStorage implements the EventStorage interface for Badger
type EventStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewEventStorage creates a new EventStorage instance
func NewEventStorage(db *BadgerDB, logger arbor.ILogger) interfaces.EventStorage {
	return &EventStorage{
		db:     db,
		logger: logger,
	}
}

func (s *EventStorage) SaveEvent(event *models.Event) error {
	if event.ID == "" {
		return fmt.Errorf("event ID is required")
	}
	if len(event.PersonIDs) == 0 {
		return fmt.Errorf("event requires at least one person")
	}

	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	if err := s.db.Store().Upsert(event.ID, event); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (s *EventStorage) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	if err := s.db.Store().Get(id, &event); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("event not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEventsByPerson returns every event the person participates in,
// the read path behind chronological timeline views.
func (s *EventStorage) ListEventsByPerson(personID string) ([]*models.Event, error) {
	var events []models.Event
	err := s.db.Store().Find(&events, badgerhold.Where("PersonIDs").Contains(personID))
	if err != nil {
		return nil, fmt.Errorf("failed to list events for person %s: %w", personID, err)
	}

	result := make([]*models.Event, len(events))
	for i := range events {
		result[i] = &events[i]
	}
	return result, nil
}

func (s *EventStorage) ListEvents(opts *interfaces.ListOptions) ([]*models.Event, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var events []models.Event
	if err := s.db.Store().Find(&events, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]*models.Event, len(events))
	for i := range events {
		result[i] = &events[i]
	}
	return result, nil
}

func (s *EventStorage) DeleteEvent(id string) error {
	if err := s.db.Store().Delete(id, &models.Event{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *EventStorage) CountEvents() (int, error) {
	count, err := s.db.Store().Count(&models.Event{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return int(count), nil
}

func (s *EventStorage) ClearAll() error {
	return s.db.Store().DeleteMatching(&models.Event{}, nil)
}
