// internal/repository/postgres/idempotency_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"banktransfer/internal/domain"
	"banktransfer/internal/repository"
	"banktransfer/internal/util"
)

type idempotencyRepo struct{}

// NewIdempotencyRepository returns the PostgreSQL IdempotencyRepository.
func NewIdempotencyRepository() repository.IdempotencyRepository {
	return &idempotencyRepo{}
}

func (r *idempotencyRepo) Get(ctx context.Context, q repository.DBExecutor, ownerID uuid.UUID, key string) (*domain.IdempotencyRecord, error) {
	var record domain.IdempotencyRecord
	query := `SELECT id, owner_id, key, transfer_id, request_hash, response_json, created_at
		FROM idempotency_records WHERE owner_id = $1 AND key = $2`

	if err := q.GetContext(ctx, &record, query, ownerID, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: idempotency record for key %q", util.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get idempotency record: %w", err)
	}
	return &record, nil
}

// Create inserts the record. The UNIQUE (owner_id, key) constraint is the
// arbiter for concurrent writers; a violation surfaces as ErrDuplicateEntry
// so the caller can re-read the winner's record.
func (r *idempotencyRepo) Create(ctx context.Context, q repository.DBExecutor, record *domain.IdempotencyRecord) error {
	query := `
		INSERT INTO idempotency_records (id, owner_id, key, transfer_id, request_hash, response_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.ExecContext(ctx, query,
		record.ID, record.OwnerID, record.Key, record.TransferID,
		record.RequestHash, record.ResponseJSON, record.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: idempotency key %q", util.ErrDuplicateEntry, record.Key)
		}
		return fmt.Errorf("failed to create idempotency record: %w", err)
	}
	return nil
}
