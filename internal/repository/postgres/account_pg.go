// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
	"banktransfer/internal/repository"
	"banktransfer/internal/util"
)

type accountRepo struct{}

// NewAccountRepository returns the PostgreSQL AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepo{}
}

func (r *accountRepo) Create(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, owner_id, name, balance, currency, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.ExecContext(ctx, query,
		account.ID, account.OwnerID, account.Name, account.Balance,
		account.Currency, account.Version, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, owner_id, name, balance, currency, version, created_at, updated_at
		FROM accounts WHERE id = $1`

	if err := q.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", util.ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepo) GetByIDForOwner(ctx context.Context, q repository.DBExecutor, id, ownerID uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, owner_id, name, balance, currency, version, created_at, updated_at
		FROM accounts WHERE id = $1 AND owner_id = $2`

	if err := q.GetContext(ctx, &account, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", util.ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account for owner: %w", err)
	}
	return &account, nil
}

func (r *accountRepo) ListByOwner(ctx context.Context, q repository.DBExecutor, ownerID uuid.UUID) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT id, owner_id, name, balance, currency, version, created_at, updated_at
		FROM accounts WHERE owner_id = $1 ORDER BY created_at`

	if err := q.SelectContext(ctx, &accounts, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update writes the account's current state guarded by the version the caller
// observed at load time. Zero affected rows means another writer got there
// first.
func (r *accountRepo) Update(ctx context.Context, q repository.DBExecutor, account *domain.Account, observedVersion int64) error {
	account.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE accounts
		SET balance = $1, version = $2, updated_at = $3
		WHERE id = $4 AND version = $5`

	res, err := q.ExecContext(ctx, query,
		account.Balance, account.Version, account.UpdatedAt, account.ID, observedVersion)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s changed since version %d",
			util.ErrConcurrencyConflict, account.ID, observedVersion)
	}
	return nil
}
