// Package storage defines the persistence interface for services and its
// SQLite implementation. The search core treats the store as an external,
// already-materialized data source: it only ever reads.
package storage

import (
	"context"
	"errors"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// ErrNotFound is returned when a service does not exist.
var ErrNotFound = errors.New("service not found")

// ServiceStore defines service persistence operations.
type ServiceStore interface {
	// LoadServices returns the full, non-paginated candidate set in
	// data-set order, enriched with embeddings where available.
	LoadServices(ctx context.Context) ([]*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	PutService(ctx context.Context, svc *models.Service) error
	CountServices(ctx context.Context) (int64, error)
	Close() error
}
