// internal/api/handler/transfer.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"banktransfer/internal/api/middleware"
	"banktransfer/internal/api/types"
	"banktransfer/internal/service"
	"banktransfer/internal/util"
)

// IdempotencyKeyHeader carries the client's idempotency key for transfer
// creation. Requests without it are rejected.
const IdempotencyKeyHeader = "Idempotency-Key"

// TransferHandler handles HTTP requests for transfer operations.
type TransferHandler struct {
	service service.TransferService
	logger  *slog.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc service.TransferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		service: svc,
		logger:  logger,
	}
}

// Create handles transfer execution.
// POST /api/transfers
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	key := r.Header.Get(IdempotencyKeyHeader)
	if key == "" {
		transfersTotal.WithLabelValues("rejected").Inc()
		respondWithError(h.logger, w, fmt.Errorf("%w: missing %s header", util.ErrInvalidInput, IdempotencyKeyHeader))
		return
	}

	var req service.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transfersTotal.WithLabelValues("rejected").Inc()
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed request body", util.ErrInvalidInput))
		return
	}

	result, err := h.service.Execute(r.Context(), ownerID, key, req)
	if err != nil {
		transfersTotal.WithLabelValues(outcomeLabel(err)).Inc()
		respondWithError(h.logger, w, err)
		return
	}

	transfersTotal.WithLabelValues("success").Inc()
	transferDuration.Observe(time.Since(start).Seconds())

	// Replays of an already-executed key return the same representation and
	// status as the original request.
	w.Header().Set("Location", "/api/transfers/"+result.TransferID.String())
	respondWithJSON(h.logger, w, http.StatusCreated, result)
}

// HistoryByAccount lists transfers for one of the caller's accounts.
// GET /api/transfers/by-account/{accountID}
func (h *TransferHandler) HistoryByAccount(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed account id", util.ErrInvalidInput))
		return
	}

	limit, offset := parsePagination(r)
	items, total, err := h.service.GetHistoryByAccount(r.Context(), ownerID, accountID, limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[service.TransferHistoryItem]{
		Data:       items,
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
	})
}

func outcomeLabel(err error) string {
	switch {
	case util.IsError(err, util.ErrInsufficientFunds):
		return "insufficient_funds"
	case util.IsError(err, util.ErrIdempotencyConflict):
		return "idempotency_conflict"
	case util.IsError(err, util.ErrConcurrencyConflict):
		return "concurrency_conflict"
	case util.IsError(err, util.ErrAccountNotFound), util.IsError(err, util.ErrNotFound):
		return "not_found"
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrInvalidAmount),
		util.IsError(err, util.ErrSameAccountTransfer),
		util.IsError(err, util.ErrCurrencyMismatch):
		return "rejected"
	default:
		return "error"
	}
}
