// internal/api/handler/mocks_test.go
package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"banktransfer/internal/domain"
	"banktransfer/internal/service"
)

// MockTransferService is a mock implementation of service.TransferService.
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Execute(ctx context.Context, ownerID uuid.UUID, idempotencyKey string, req service.TransferRequest) (*service.TransferResult, error) {
	args := m.Called(ctx, ownerID, idempotencyKey, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransferResult), args.Error(1)
}

func (m *MockTransferService) GetHistoryByAccount(ctx context.Context, ownerID, accountID uuid.UUID, limit, offset int) ([]service.TransferHistoryItem, int64, error) {
	args := m.Called(ctx, ownerID, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]service.TransferHistoryItem), args.Get(1).(int64), args.Error(2)
}

// MockAccountService is a mock implementation of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListTransfers(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]service.TransferHistoryItem, int64, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]service.TransferHistoryItem), args.Get(1).(int64), args.Error(2)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}
