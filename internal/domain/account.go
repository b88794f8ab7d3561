// internal/domain/account.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"banktransfer/internal/util"
)

// Account holds a user's balance in a single currency.
// The balance never goes negative and is only mutated through Debit/Credit,
// both of which bump Version, the optimistic-concurrency token checked by the
// repository on update.
type Account struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	OwnerID   uuid.UUID       `db:"owner_id" json:"owner_id"`
	Name      string          `db:"name" json:"name"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	Currency  string          `db:"currency" json:"currency"` // ISO-4217 style, stored uppercase
	Version   int64           `db:"version" json:"version"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewAccount validates and creates an account for the given owner.
func NewAccount(ownerID uuid.UUID, name string, initialBalance decimal.Decimal, currency string) (*Account, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", util.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", util.ErrInvalidInput)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative", util.ErrInvalidInput)
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Balance:   initialBalance,
		Currency:  cur,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Debit removes amount from the balance. On any failure the account is left
// byte-for-byte unchanged.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("%w: account %s has %s, requested %s",
			util.ErrInsufficientFunds, a.ID, a.Balance, amount)
	}
	a.Balance = a.Balance.Sub(amount)
	a.Version++
	return nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.Version++
	return nil
}

// NormalizeCurrency trims and uppercases a currency code, rejecting anything
// that is not exactly three ASCII letters.
func NormalizeCurrency(currency string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if len(cur) != 3 {
		return "", fmt.Errorf("%w: %q", util.ErrInvalidCurrency, currency)
	}
	for _, r := range cur {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", util.ErrInvalidCurrency, currency)
		}
	}
	return cur, nil
}
