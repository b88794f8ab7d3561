// internal/api/handler/account.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"banktransfer/internal/api/middleware"
	"banktransfer/internal/api/types"
	"banktransfer/internal/service"
	"banktransfer/internal/util"
)

// AccountHandler handles HTTP requests for account reads.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: svc,
		logger:  logger,
	}
}

// GetByID returns a single account. The endpoint is public so destination
// accounts can be looked up before transferring.
// GET /api/accounts/{accountID}
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed account id", util.ErrInvalidInput))
		return
	}

	account, err := h.service.GetByID(r.Context(), accountID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, account)
}

// ListMine returns the caller's accounts.
// GET /api/accounts
func (h *AccountHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	accounts, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, accounts)
}

// Transfers returns an account's transfer history. Public counterpart of the
// owner-scoped history endpoint.
// GET /api/accounts/{accountID}/transfers
func (h *AccountHandler) Transfers(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: malformed account id", util.ErrInvalidInput))
		return
	}

	limit, offset := parsePagination(r)
	items, total, err := h.service.ListTransfers(r.Context(), accountID, limit, offset)
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
