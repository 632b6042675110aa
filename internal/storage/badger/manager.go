package badger

import (
	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/config"
	"github.com/opennotebook/toolbridge/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger.
type Manager struct {
	db      *BadgerDB
	history interfaces.InvocationStore
	logger  *common.Logger
}

// NewManager creates a new Badger storage manager.
func NewManager(logger *common.Logger, cfg *config.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, cfg)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:      db,
		history: NewHistoryStore(db, logger),
		logger:  logger,
	}

	logger.Debug().Msg("Badger storage manager initialized")

	return manager, nil
}

// Invocations returns the invocation history store.
func (m *Manager) Invocations() interfaces.InvocationStore {
	return m.history
}

// Close closes the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
