// internal/api/handler/account_test.go
package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"banktransfer/internal/api/middleware"
	"banktransfer/internal/api/types"
	"banktransfer/internal/domain"
	"banktransfer/internal/service"
	"banktransfer/internal/util"
)

func newAccountRouter(svc service.AccountService) http.Handler {
	h := NewAccountHandler(svc, util.GetLogger())
	r := chi.NewRouter()
	r.Get("/api/accounts", h.ListMine)
	r.Get("/api/accounts/{accountID}", h.GetByID)
	r.Get("/api/accounts/{accountID}/transfers", h.Transfers)
	return r
}

func TestAccountGetByID(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		mockSvc := new(MockAccountService)
		account := &domain.Account{
			ID:       uuid.New(),
			OwnerID:  uuid.New(),
			Name:     "Luana",
			Balance:  decimal.NewFromInt(1000),
			Currency: "PYG",
		}
		mockSvc.On("GetByID", mock.Anything, account.ID).Return(account, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+account.ID.String(), nil)
		rec := httptest.NewRecorder()
		newAccountRouter(mockSvc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, "PYG", got.Currency)
	})

	t.Run("unknown account is a 404", func(t *testing.T) {
		mockSvc := new(MockAccountService)
		id := uuid.New()
		mockSvc.On("GetByID", mock.Anything, id).Return(nil, util.ErrAccountNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+id.String(), nil)
		rec := httptest.NewRecorder()
		newAccountRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		mockSvc := new(MockAccountService)
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/nope", nil)
		rec := httptest.NewRecorder()
		newAccountRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountListMine(t *testing.T) {
	t.Run("lists the caller's accounts", func(t *testing.T) {
		mockSvc := new(MockAccountService)
		ownerID := uuid.New()
		accounts := []domain.Account{
			{ID: uuid.New(), OwnerID: ownerID, Currency: "PYG", Balance: decimal.NewFromInt(1000)},
			{ID: uuid.New(), OwnerID: ownerID, Currency: "USD", Balance: decimal.NewFromInt(200)},
		}
		mockSvc.On("ListByOwner", mock.Anything, ownerID).Return(accounts, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newAccountRouter(mockSvc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("requires authentication", func(t *testing.T) {
		mockSvc := new(MockAccountService)
		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		rec := httptest.NewRecorder()
		newAccountRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAccountTransfers(t *testing.T) {
	mockSvc := new(MockAccountService)
	accountID := uuid.New()
	items := []service.TransferHistoryItem{
		{TransferID: uuid.New(), ToAccountID: accountID, Direction: "IN", Amount: decimal.NewFromInt(50), Currency: "USD"},
	}
	mockSvc.On("ListTransfers", mock.Anything, accountID, 20, 0).Return(items, int64(1), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+accountID.String()+"/transfers", nil)
	rec := httptest.NewRecorder()
	newAccountRouter(mockSvc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got types.PaginatedResponse[service.TransferHistoryItem]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.TotalCount)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "IN", got.Data[0].Direction)
}
