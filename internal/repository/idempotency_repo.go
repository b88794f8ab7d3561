// internal/repository/idempotency_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
)

// IdempotencyRepository persists idempotency records. Get returns
// util.ErrNotFound when no record exists for the owner and key. Create
// returns util.ErrDuplicateEntry when a concurrent writer already stored a
// record for the same pair.
type IdempotencyRepository interface {
	Get(ctx context.Context, q DBExecutor, ownerID uuid.UUID, key string) (*domain.IdempotencyRecord, error)
	Create(ctx context.Context, q DBExecutor, record *domain.IdempotencyRecord) error
}
