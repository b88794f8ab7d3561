// internal/service/account_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"banktransfer/internal/domain"
	"banktransfer/internal/repository"
	"banktransfer/internal/util"
)

// AccountService reads account state.
type AccountService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Account, error)
	ListTransfers(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]TransferHistoryItem, int64, error)
}

type accountService struct {
	dbExecutor   repository.DBExecutor
	accountRepo  repository.AccountRepository
	transferRepo repository.TransferRepository
}

// NewAccountService wires an AccountService. Reads run outside transactions
// on the shared pool handle.
func NewAccountService(
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	transferRepo repository.TransferRepository,
) AccountService {
	return &accountService{
		dbExecutor:   dbExecutor,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

func (s *accountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: account id is required", util.ErrInvalidInput)
	}
	return s.accountRepo.GetByID(ctx, s.dbExecutor, id)
}

func (s *accountService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Account, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", util.ErrInvalidInput)
	}
	return s.accountRepo.ListByOwner(ctx, s.dbExecutor, ownerID)
}

// ListTransfers returns the account's transfer history without an ownership
// check, for the public account view.
func (s *accountService) ListTransfers(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]TransferHistoryItem, int64, error) {
	if accountID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: account id is required", util.ErrInvalidInput)
	}

	account, err := s.accountRepo.GetByID(ctx, s.dbExecutor, accountID)
	if err != nil {
		return nil, 0, err
	}

	transfers, total, err := s.transferRepo.ListByAccount(ctx, s.dbExecutor, account.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	items := make([]TransferHistoryItem, 0, len(transfers))
	for _, tr := range transfers {
		items = append(items, toHistoryItem(tr, account.ID))
	}
	return items, total, nil
}
