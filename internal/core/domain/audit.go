package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionWalletRecharge  AuditAction = "WALLET_RECHARGE"
	AuditActionWalletDebit     AuditAction = "WALLET_DEBIT"
	AuditActionWalletRefund    AuditAction = "WALLET_REFUND"
	AuditActionPaymentInitiate AuditAction = "PAYMENT_INITIATE"
	AuditActionPaymentCancel   AuditAction = "PAYMENT_CANCEL"
	AuditActionPaymentConfirm  AuditAction = "PAYMENT_CONFIRM"
	AuditActionPaymentMethod   AuditAction = "PAYMENT_METHOD"
	AuditActionEscrow          AuditAction = "ESCROW"
	AuditActionProviderCall    AuditAction = "PROVIDER_CALLBACK"
	AuditActionSettingsReload  AuditAction = "SETTINGS_RELOAD"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
