// internal/service/fingerprint.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FingerprintTransferRequest hashes the semantic content of a transfer
// request. Two requests with the same source, destination and amount produce
// the same fingerprint regardless of formatting, header order or retries.
func FingerprintTransferRequest(from, to uuid.UUID, amount decimal.Decimal) string {
	payload := fmt.Sprintf("%s|%s|%s", from, to, amount)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
