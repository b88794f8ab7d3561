// internal/service/transfer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"banktransfer/internal/domain"
	"banktransfer/internal/repository"
	"banktransfer/internal/util"
	"banktransfer/pkg/db"
)

// maxExecuteAttempts bounds the retry loop around version and unique-key
// conflicts. A lost race converges on the next attempt's idempotency lookup,
// so a small bound is enough.
const maxExecuteAttempts = 3

// TransferRequest is the caller's intent to move funds.
type TransferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferResult is the response for a completed transfer. It is serialized
// into the idempotency record, so replays of the same key return these exact
// bytes.
type TransferResult struct {
	TransferID    uuid.UUID       `json:"transfer_id"`
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferHistoryItem is one entry in an account's transfer history.
// Direction is OUT when the account is the source and IN when it is the
// destination.
type TransferHistoryItem struct {
	TransferID    uuid.UUID       `json:"transfer_id"`
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Direction     string          `json:"direction"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferService executes fund transfers and reads transfer history.
type TransferService interface {
	Execute(ctx context.Context, ownerID uuid.UUID, idempotencyKey string, req TransferRequest) (*TransferResult, error)
	GetHistoryByAccount(ctx context.Context, ownerID, accountID uuid.UUID, limit, offset int) ([]TransferHistoryItem, int64, error)
}

type transferService struct {
	dbBeginner      db.DBTxBeginner
	dbExecutor      repository.DBExecutor
	accountRepo     repository.AccountRepository
	transferRepo    repository.TransferRepository
	idempotencyRepo repository.IdempotencyRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
	logger          *slog.Logger
}

// NewTransferService creates a TransferService over the given repositories
// and transaction controls.
func NewTransferService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	transferRepo repository.TransferRepository,
	idempotencyRepo repository.IdempotencyRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) TransferService {
	return &transferService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		transferRepo:    transferRepo,
		idempotencyRepo: idempotencyRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
		logger:          util.GetLogger(),
	}
}

// Execute moves funds from the owner's source account to the destination
// account, exactly once per (owner, idempotency key) pair. Retrying the same
// key replays the original response; reusing the key with different
// parameters is rejected. Version and duplicate-key conflicts are retried a
// bounded number of times; a retry that finds the winner's idempotency record
// replays it.
func (s *transferService) Execute(ctx context.Context, ownerID uuid.UUID, idempotencyKey string, req TransferRequest) (*TransferResult, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", util.ErrInvalidInput)
	}
	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", util.ErrInvalidInput)
	}
	if req.FromAccountID == uuid.Nil || req.ToAccountID == uuid.Nil {
		return nil, fmt.Errorf("%w: both account ids are required", util.ErrInvalidInput)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: account %s", util.ErrSameAccountTransfer, req.FromAccountID)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidAmount
	}

	requestHash := FingerprintTransferRequest(req.FromAccountID, req.ToAccountID, req.Amount)

	var lastErr error
	for attempt := 1; attempt <= maxExecuteAttempts; attempt++ {
		result, err := s.executeOnce(ctx, ownerID, key, requestHash, req)
		if err == nil {
			return result, nil
		}
		if !util.IsError(err, util.ErrConcurrencyConflict) && !util.IsError(err, util.ErrDuplicateEntry) {
			return nil, err
		}
		lastErr = err
		s.logger.WarnContext(ctx, "transfer attempt lost a write race, retrying",
			slog.Int("attempt", attempt),
			slog.String("idempotency_key", key),
			slog.String("error", err.Error()))
	}
	return nil, lastErr
}

func (s *transferService) executeOnce(ctx context.Context, ownerID uuid.UUID, key, requestHash string, req TransferRequest) (*TransferResult, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("transfer: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("transfer: transaction controller does not implement DBExecutor")
	}

	record, err := s.idempotencyRepo.Get(ctx, txExecutor, ownerID, key)
	if err == nil {
		return s.replay(record, requestHash, key)
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, err
	}

	source, err := s.accountRepo.GetByIDForOwner(ctx, txExecutor, req.FromAccountID, ownerID)
	if err != nil {
		return nil, err
	}
	dest, err := s.accountRepo.GetByID(ctx, txExecutor, req.ToAccountID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(source.Currency, dest.Currency) {
		return nil, fmt.Errorf("%w: %s -> %s", util.ErrCurrencyMismatch, source.Currency, dest.Currency)
	}

	sourceVersion := source.Version
	destVersion := dest.Version

	if err := source.Debit(req.Amount); err != nil {
		return nil, err
	}
	if err := dest.Credit(req.Amount); err != nil {
		return nil, err
	}

	transfer, err := domain.NewTransfer(source.ID, dest.ID, req.Amount, source.Currency, key)
	if err != nil {
		return nil, err
	}

	if err := s.transferRepo.Create(ctx, txExecutor, transfer); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(ctx, txExecutor, source, sourceVersion); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(ctx, txExecutor, dest, destVersion); err != nil {
		return nil, err
	}

	result := &TransferResult{
		TransferID:    transfer.ID,
		FromAccountID: transfer.FromAccountID,
		ToAccountID:   transfer.ToAccountID,
		Amount:        transfer.Amount,
		Currency:      transfer.Currency,
		CreatedAt:     transfer.CreatedAt,
	}
	responseJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("transfer: failed to serialize result: %w", err)
	}

	record, err = domain.NewIdempotencyRecord(ownerID, key, transfer.ID, requestHash, responseJSON)
	if err != nil {
		return nil, err
	}
	if err := s.idempotencyRepo.Create(ctx, txExecutor, record); err != nil {
		return nil, err
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("transfer: failed to commit transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer executed",
		slog.String("transfer_id", transfer.ID.String()),
		slog.String("from_account_id", transfer.FromAccountID.String()),
		slog.String("to_account_id", transfer.ToAccountID.String()),
		slog.String("amount", transfer.Amount.String()))

	return result, nil
}

// replay returns the stored response for a key that already executed. The
// stored request hash must match the incoming one, otherwise the caller is
// reusing the key with different parameters.
func (s *transferService) replay(record *domain.IdempotencyRecord, requestHash, key string) (*TransferResult, error) {
	if record.RequestHash != requestHash {
		return nil, fmt.Errorf("%w: key %q was used with different parameters", util.ErrIdempotencyConflict, key)
	}
	var result TransferResult
	if err := json.Unmarshal(record.ResponseJSON, &result); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", util.ErrMalformedStoredResponse, key, err)
	}
	return &result, nil
}

// GetHistoryByAccount lists transfers touching one of the owner's accounts,
// newest first. Accounts the owner does not hold are reported as not found.
func (s *transferService) GetHistoryByAccount(ctx context.Context, ownerID, accountID uuid.UUID, limit, offset int) ([]TransferHistoryItem, int64, error) {
	if ownerID == uuid.Nil || accountID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: owner and account ids are required", util.ErrInvalidInput)
	}

	account, err := s.accountRepo.GetByIDForOwner(ctx, s.dbExecutor, accountID, ownerID)
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

func toHistoryItem(tr domain.Transfer, accountID uuid.UUID) TransferHistoryItem {
	direction := "IN"
	if tr.FromAccountID == accountID {
		direction = "OUT"
	}
	return TransferHistoryItem{
		TransferID:    tr.ID,
		FromAccountID: tr.FromAccountID,
		ToAccountID:   tr.ToAccountID,
		Amount:        tr.Amount,
		Currency:      tr.Currency,
		Direction:     direction,
		CreatedAt:     tr.CreatedAt,
	}
}
