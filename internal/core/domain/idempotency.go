package domain

import (
	"github.com/google/uuid"
)

// RechargeResult is the cached outcome of a recharge, replayed on duplicate submissions.
type RechargeResult struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	NewBalance    int64     `json:"new_balance"`
	Replayed      bool      `json:"replayed"`
}

// BuildRechargeKey constructs the idempotency key of a wallet recharge.
func BuildRechargeKey(artisanID uuid.UUID, reference string) string {
	return "recharge:" + artisanID.String() + ":" + reference
}

// BuildCallbackNonce constructs the replay-protection key of a provider callback.
func BuildCallbackNonce(provider ProviderID, eventID string) string {
	return "callback:" + string(provider) + ":" + eventID
}
