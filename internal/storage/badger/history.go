package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/models"
)

// invocationRecord is the stored shape of one invocation.
type invocationRecord struct {
	ID         string `badgerhold:"key"`
	Tool       string
	Args       string
	Status     string
	Code       string
	ExitCode   int
	DurationMs int64
	Stderr     string
	Created    time.Time
}

// HistoryStore implements interfaces.InvocationStore using BadgerDB.
type HistoryStore struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewHistoryStore creates an invocation history store backed by BadgerDB.
func NewHistoryStore(db *BadgerDB, logger *common.Logger) *HistoryStore {
	return &HistoryStore{
		db:     db,
		logger: logger,
	}
}

// Record stores one invocation outcome.
func (s *HistoryStore) Record(_ context.Context, inv models.Invocation) error {
	rec := invocationRecord{
		ID:         inv.ID,
		Tool:       inv.Tool,
		Args:       inv.Args,
		Status:     inv.Status,
		Code:       inv.Code,
		ExitCode:   inv.ExitCode,
		DurationMs: inv.DurationMs,
		Stderr:     inv.Stderr,
		Created:    inv.Created,
	}
	if err := s.db.Store().Upsert(inv.ID, &rec); err != nil {
		return fmt.Errorf("failed to record invocation %s: %w", inv.ID, err)
	}
	return nil
}

// Get retrieves one invocation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (models.Invocation, error) {
	var rec invocationRecord
	err := s.db.Store().Get(id, &rec)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return models.Invocation{}, fmt.Errorf("invocation not found: %s", id)
		}
		return models.Invocation{}, fmt.Errorf("failed to get invocation %s: %w", id, err)
	}
	return toModel(rec), nil
}

// List returns the most recent invocations, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]models.Invocation, error) {
	var records []invocationRecord
	if err := s.db.Store().Find(&records, nil); err != nil {
		return nil, fmt.Errorf("failed to list invocations: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Created.After(records[j].Created)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := make([]models.Invocation, 0, len(records))
	for _, rec := range records {
		out = append(out, toModel(rec))
	}
	return out, nil
}

func toModel(rec invocationRecord) models.Invocation {
	return models.Invocation{
		ID:         rec.ID,
		Tool:       rec.Tool,
		Args:       rec.Args,
		Status:     rec.Status,
		Code:       rec.Code,
		ExitCode:   rec.ExitCode,
		DurationMs: rec.DurationMs,
		Stderr:     rec.Stderr,
		Created:    rec.Created,
	}
}
