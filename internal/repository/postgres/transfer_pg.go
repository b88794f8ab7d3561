// internal/repository/postgres/transfer_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
	"banktransfer/internal/repository"
)

type transferRepo struct{}

// NewTransferRepository returns the PostgreSQL TransferRepository.
func NewTransferRepository() repository.TransferRepository {
	return &transferRepo{}
}

func (r *transferRepo) Create(ctx context.Context, q repository.DBExecutor, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, from_account_id, to_account_id, amount, currency, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.ExecContext(ctx, query,
		transfer.ID, transfer.FromAccountID, transfer.ToAccountID,
		transfer.Amount, transfer.Currency, transfer.IdempotencyKey, transfer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

func (r *transferRepo) ListByAccount(ctx context.Context, q repository.DBExecutor, accountID uuid.UUID, limit, offset int) ([]domain.Transfer, int64, error) {
	transfers := []domain.Transfer{}
	query := `
		SELECT id, from_account_id, to_account_id, amount, currency, idempotency_key, created_at
		FROM transfers
		WHERE from_account_id = $1 OR to_account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	if err := q.SelectContext(ctx, &transfers, query, accountID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transfers WHERE from_account_id = $1 OR to_account_id = $1`
	if err := q.GetContext(ctx, &total, countQuery, accountID); err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	return transfers, total, nil
}
