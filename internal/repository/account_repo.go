// internal/repository/account_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
)

// AccountRepository persists accounts. Update takes the version the caller
// observed when it loaded the row; the implementation must refuse the write
// if the stored version has moved on.
type AccountRepository interface {
	Create(ctx context.Context, q DBExecutor, account *domain.Account) error
	GetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Account, error)
	GetByIDForOwner(ctx context.Context, q DBExecutor, id, ownerID uuid.UUID) (*domain.Account, error)
	ListByOwner(ctx context.Context, q DBExecutor, ownerID uuid.UUID) ([]domain.Account, error)
	Update(ctx context.Context, q DBExecutor, account *domain.Account, observedVersion int64) error
}
