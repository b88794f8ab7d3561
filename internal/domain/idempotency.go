// internal/domain/idempotency.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"banktransfer/internal/util"
)

// IdempotencyRecord maps an (owner, client-supplied key) pair to the request
// fingerprint and the serialized response produced the first time that key was
// executed. Records are written atomically with their transfer and never
// updated afterwards.
type IdempotencyRecord struct {
	ID           uuid.UUID `db:"id"`
	OwnerID      uuid.UUID `db:"owner_id"`
	Key          string    `db:"key"`
	TransferID   uuid.UUID `db:"transfer_id"`
	RequestHash  string    `db:"request_hash"`
	ResponseJSON []byte    `db:"response_json"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewIdempotencyRecord validates and creates a record for a successful
// execution.
func NewIdempotencyRecord(ownerID uuid.UUID, key string, transferID uuid.UUID, requestHash string, responseJSON []byte) (*IdempotencyRecord, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner id is required", util.ErrInvalidInput)
	}
	if transferID == uuid.Nil {
		return nil, fmt.Errorf("%w: transfer id is required", util.ErrInvalidInput)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", util.ErrInvalidInput)
	}
	requestHash = strings.TrimSpace(requestHash)
	if requestHash == "" {
		return nil, fmt.Errorf("%w: request hash is required", util.ErrInvalidInput)
	}
	if len(responseJSON) == 0 {
		return nil, fmt.Errorf("%w: response json is required", util.ErrInvalidInput)
	}

	return &IdempotencyRecord{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Key:          key,
		TransferID:   transferID,
		RequestHash:  requestHash,
		ResponseJSON: responseJSON,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
