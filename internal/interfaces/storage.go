// Package interfaces defines the storage contracts of the bridge.
package interfaces

import (
	"context"

	"github.com/opennotebook/toolbridge/internal/models"
)

// StorageManager provides access to domain-specific storage interfaces.
// Implementations can be swapped (BadgerDB now, something centralised later).
type StorageManager interface {
	Invocations() InvocationStore
	Close() error
}

// InvocationStore records and retrieves tool invocation history.
type InvocationStore interface {
	Record(ctx context.Context, inv models.Invocation) error
	Get(ctx context.Context, id string) (models.Invocation, error)
	// List returns the most recent invocations, newest first.
	List(ctx context.Context, limit int) ([]models.Invocation, error)
}
