package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/interfaces"
	"github.com/ternarybob/lineage/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// MediaStorage implements the MediaStorage interface for Badger
type MediaStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewMediaStorage creates a new MediaStorage instance
func NewMediaStorage(db *BadgerDB, logger arbor.ILogger) interfaces.MediaStorage {
	return &MediaStorage{
		db:     db,
		logger: logger,
	}
}

func (s *MediaStorage) SaveMedia(media *models.Media) error {
	if media.ID == "" {
		return fmt.Errorf("media ID is required")
	}

	now := time.Now()
	if media.CreatedAt.IsZero() {
		media.CreatedAt = now
	}
	media.UpdatedAt = now

	if err := s.db.Store().Upsert(media.ID, media); err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}
	return nil
}

func (s *MediaStorage) GetMedia(id string) (*models.Media, error) {
	var media models.Media
	if err := s.db.Store().Get(id, &media); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("media not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

func (s *MediaStorage) ListMedia(opts *interfaces.ListOptions) ([]*models.Media, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	if opts != nil {
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var media []models.Media
	if err := s.db.Store().Find(&media, query); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	result := make([]*models.Media, len(media))
	for i := range media {
		result[i] = &media[i]
	}
	return result, nil
}

func (s *MediaStorage) DeleteMedia(id string) error {
	if err := s.db.Store().Delete(id, &models.Media{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}

func (s *MediaStorage) CountMedia() (int, error) {
	count, err := s.db.Store().Count(&models.Media{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count media: %w", err)
	}
	return int(count), nil
}

func (s *MediaStorage) ClearAll() error {
	return s.db.Store().DeleteMatching(&models.Media{}, nil)
}
