// internal/repository/transfer_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
)

// TransferRepository persists transfer records. ListByAccount returns
// transfers touching the account on either side, newest first, plus the
// total count for pagination.
type TransferRepository interface {
	Create(ctx context.Context, q DBExecutor, transfer *domain.Transfer) error
	ListByAccount(ctx context.Context, q DBExecutor, accountID uuid.UUID, limit, offset int) ([]domain.Transfer, int64, error)
}
