// internal/api/handler/transfer_test.go
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"banktransfer/internal/api/middleware"
	"banktransfer/internal/api/types"
	"banktransfer/internal/service"
	"banktransfer/internal/util"
)

func newTransferRouter(svc service.TransferService) http.Handler {
	h := NewTransferHandler(svc, util.GetLogger())
	r := chi.NewRouter()
	r.Post("/api/transfers", h.Create)
	r.Get("/api/transfers/by-account/{accountID}", h.HistoryByAccount)
	return r
}

func postTransfer(t *testing.T, router http.Handler, ownerID uuid.UUID, key string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader(raw))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	if ownerID != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTransferCreate(t *testing.T) {
	ownerID := uuid.New()
	from := uuid.New()
	to := uuid.New()
	amount := decimal.NewFromInt(100)
	body := service.TransferRequest{FromAccountID: from, ToAccountID: to, Amount: amount}

	t.Run("201 with Location on success", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		result := &service.TransferResult{
			TransferID:    uuid.New(),
			FromAccountID: from,
			ToAccountID:   to,
			Amount:        amount,
			Currency:      "PYG",
			CreatedAt:     time.Now().UTC(),
		}
		mockSvc.On("Execute", mock.Anything, ownerID, "key-1", body).Return(result, nil).Once()

		rec := postTransfer(t, newTransferRouter(mockSvc), ownerID, "key-1", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/transfers/"+result.TransferID.String(), rec.Header().Get("Location"))

		var got service.TransferResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, result.TransferID, got.TransferID)
		assert.True(t, got.Amount.Equal(amount))
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing idempotency key is a 400 before the service runs", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		rec := postTransfer(t, newTransferRouter(mockSvc), ownerID, "", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated requests get 401", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		rec := postTransfer(t, newTransferRouter(mockSvc), uuid.Nil, "key-1", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		req := httptest.NewRequest(http.MethodPost, "/api/transfers", bytes.NewReader([]byte("{not json")))
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newTransferRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"insufficient funds", util.ErrInsufficientFunds, http.StatusUnprocessableEntity},
			{"currency mismatch", util.ErrCurrencyMismatch, http.StatusUnprocessableEntity},
			{"idempotency conflict", util.ErrIdempotencyConflict, http.StatusConflict},
			{"concurrency conflict", util.ErrConcurrencyConflict, http.StatusConflict},
			{"account not found", util.ErrAccountNotFound, http.StatusNotFound},
			{"same account", util.ErrSameAccountTransfer, http.StatusBadRequest},
			{"invalid amount", util.ErrInvalidAmount, http.StatusBadRequest},
			{"malformed stored response", util.ErrMalformedStoredResponse, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockSvc := new(MockTransferService)
				mockSvc.On("Execute", mock.Anything, ownerID, "key-1", body).Return(nil, tc.err).Once()

				rec := postTransfer(t, newTransferRouter(mockSvc), ownerID, "key-1", body)
				assert.Equal(t, tc.want, rec.Code)
			})
		}
	})
}

func TestTransferHistoryByAccount(t *testing.T) {
	ownerID := uuid.New()
	accountID := uuid.New()

	t.Run("returns a paginated envelope", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		items := []service.TransferHistoryItem{
			{TransferID: uuid.New(), FromAccountID: accountID, Direction: "OUT", Amount: decimal.NewFromInt(100), Currency: "PYG"},
		}
		mockSvc.On("GetHistoryByAccount", mock.Anything, ownerID, accountID, 20, 0).Return(items, int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/transfers/by-account/"+accountID.String(), nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newTransferRouter(mockSvc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got types.PaginatedResponse[service.TransferHistoryItem]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.TotalCount)
		require.Len(t, got.Data, 1)
		assert.Equal(t, "OUT", got.Data[0].Direction)
	})

	t.Run("honors limit and offset query parameters", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		mockSvc.On("GetHistoryByAccount", mock.Anything, ownerID, accountID, 5, 10).
			Return([]service.TransferHistoryItem{}, int64(0), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/transfers/by-account/"+accountID.String()+"?limit=5&offset=10", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newTransferRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("someone else's account reads as 404", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		mockSvc.On("GetHistoryByAccount", mock.Anything, ownerID, accountID, 20, 0).
			Return(nil, int64(0), util.ErrAccountNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/transfers/by-account/"+accountID.String(), nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newTransferRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed account id is a 400", func(t *testing.T) {
		mockSvc := new(MockTransferService)
		req := httptest.NewRequest(http.MethodGet, "/api/transfers/by-account/not-a-uuid", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), ownerID))
		rec := httptest.NewRecorder()
		newTransferRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
