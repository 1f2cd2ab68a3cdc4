package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/lineage/internal/common"
	"github.com/ternarybob/lineage/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db           *BadgerDB
	person       interfaces.PersonStorage
	relationship interfaces.RelationshipStorage
	event        interfaces.EventStorage
	media        interfaces.MediaStorage
	logger       arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:           db,
		person:       NewPersonStorage(db, logger),
		relationship: NewRelationshipStorage(db, logger),
		event:        NewEventStorage(db, logger),
		media:        NewMediaStorage(db, logger),
		logger:       logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// PersonStorage returns the Person storage interface
func (m *Manager) PersonStorage() interfaces.PersonStorage {
	return m.person
}

// RelationshipStorage returns the Relationship storage interface
func (m *Manager) RelationshipStorage() interfaces.RelationshipStorage {
	return m.relationship
}

// EventStorage returns the Event storage interface
func (m *Manager) EventStorage() interfaces.EventStorage {
	return m.event
}

// MediaStorage returns the Media storage interface
func (m *Manager) MediaStorage() interfaces.MediaStorage {
	return m.media
}

// DB returns the underlying database connection
func (m *Manager) DB() interface{} {
	if m.db != nil {
		return m.db.Store()
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
