package domain

import (
	"time"

	"github.com/google/uuid"
)

// WalletEntryType is the kind of ledger movement on an artisan wallet.
type WalletEntryType string

const (
	WalletEntryRecharge WalletEntryType = "recharge"
	WalletEntryDebit    WalletEntryType = "debit"
	WalletEntryRefund   WalletEntryType = "refund"
)

// WalletEntryStatus is the lifecycle state of a ledger entry.
type WalletEntryStatus string

const (
	WalletEntryPending   WalletEntryStatus = "pending"
	WalletEntryCompleted WalletEntryStatus = "completed"
	WalletEntryFailed    WalletEntryStatus = "failed"
)

// WalletBalance is an artisan's prepaid balance (amounts in XOF units).
type WalletBalance struct {
	ArtisanID      uuid.UUID `json:"artisan_id"`
	Balance        int64     `json:"balance"`
	TotalRecharged int64     `json:"total_recharged"`
	TotalSpent     int64     `json:"total_spent"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Consistent reports whether balance = total_recharged - total_spent and balance >= 0.
func (w *WalletBalance) Consistent() bool {
	return w.Balance >= 0 && w.Balance == w.TotalRecharged-w.TotalSpent
}

// Covers returns true if the balance can pay amount.
func (w *WalletBalance) Covers(amount int64) bool {
	return w.Balance >= amount
}

// WalletTransaction is an append-only ledger entry.
type WalletTransaction struct {
	ID           uuid.UUID         `json:"id"`
	ArtisanID    uuid.UUID         `json:"artisan_id"`
	Type         WalletEntryType   `json:"type"`
	Amount       int64             `json:"amount"`
	BalanceAfter int64             `json:"balance_after"`
	Description  string            `json:"description"`
	Reference    string            `json:"reference,omitempty"`
	RelatedJobID *uuid.UUID        `json:"related_job_id,omitempty"`
	Status       WalletEntryStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// SignedAmount returns the entry's effect on the balance.
func (t *WalletTransaction) SignedAmount() int64 {
	if t.Type == WalletEntryDebit {
		return -t.Amount
	}
	return t.Amount
}

// ReplayBalance reconstructs a balance from completed ledger entries.
func ReplayBalance(entries []WalletTransaction) int64 {
	var sum int64
	for i := range entries {
		if entries[i].Status != WalletEntryCompleted {
			continue
		}
		sum += entries[i].SignedAmount()
	}
	return sum
}
