// internal/domain/transfer.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"banktransfer/internal/util"
)

// Transfer is the immutable record of a completed movement between two
// accounts. It carries the idempotency key that produced it.
type Transfer struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	FromAccountID  uuid.UUID       `db:"from_account_id" json:"from_account_id"`
	ToAccountID    uuid.UUID       `db:"to_account_id" json:"to_account_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Currency       string          `db:"currency" json:"currency"`
	IdempotencyKey string          `db:"idempotency_key" json:"-"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// NewTransfer validates and creates a transfer record. The currency comes from
// the source account at execution time.
func NewTransfer(fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, currency, idempotencyKey string) (*Transfer, error) {
	if fromAccountID == uuid.Nil || toAccountID == uuid.Nil {
		return nil, fmt.Errorf("%w: both account ids are required", util.ErrInvalidInput)
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: account %s", util.ErrSameAccountTransfer, fromAccountID)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", util.ErrInvalidInput)
	}

	return &Transfer{
		ID:             uuid.New(),
		FromAccountID:  fromAccountID,
		ToAccountID:    toAccountID,
		Amount:         amount,
		Currency:       cur,
		IdempotencyKey: key,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
