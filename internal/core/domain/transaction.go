package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a contract payment.
type TransactionType string

const (
	TransactionTypeAcompte         TransactionType = "acompte"
	TransactionTypePaiementPartiel TransactionType = "paiement_partiel"
	TransactionTypeSolde           TransactionType = "solde"
	TransactionTypeRemboursement   TransactionType = "remboursement"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeAcompte, TransactionTypePaiementPartiel, TransactionTypeSolde, TransactionTypeRemboursement:
		return true
	}
	return false
}

// FundsEscrow reports whether a successful payment of this type credits the escrow account.
func (t TransactionType) FundsEscrow() bool {
	return t == TransactionTypeAcompte
}

// TransactionStatus is the lifecycle state of a contract payment.
type TransactionStatus string

const (
	TransactionStatusEnAttente  TransactionStatus = "en_attente"
	TransactionStatusTraitement TransactionStatus = "traitement"
	TransactionStatusComplete   TransactionStatus = "complete"
	TransactionStatusEchoue     TransactionStatus = "echoue"
	TransactionStatusAnnule     TransactionStatus = "annule"
)

// AllowedTransactionTransitions defines the payment state machine.
// en_attente -> complete is only taken by manual cash confirmation.
func AllowedTransactionTransitions() map[TransactionStatus][]TransactionStatus {
	return map[TransactionStatus][]TransactionStatus{
		TransactionStatusEnAttente:  {TransactionStatusTraitement, TransactionStatusEchoue, TransactionStatusAnnule, TransactionStatusComplete},
		TransactionStatusTraitement: {TransactionStatusComplete, TransactionStatusEchoue, TransactionStatusAnnule},
		TransactionStatusComplete:   {},
		TransactionStatusEchoue:     {},
		TransactionStatusAnnule:     {},
	}
}

// CanTransition checks the state machine.
func CanTransition(from, to TransactionStatus) bool {
	for _, s := range AllowedTransactionTransitions()[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransactionMetadata is the free-form payload stored with a payment.
type TransactionMetadata struct {
	PlatformFee    int64   `json:"platform_fee"`
	TotalCharged   int64   `json:"total_charged"`
	FeeRate        float64 `json:"fee_rate"`
	Description    string  `json:"description,omitempty"`
	Phone          string  `json:"phone,omitempty"` // masked
	EscrowFunded   bool    `json:"escrow_funded,omitempty"`
	EscrowRejected bool    `json:"escrow_rejected,omitempty"` // accepted after the escrow closed
}

// Transaction is a contract-bound payment attempt.
type Transaction struct {
	ID                    uuid.UUID           `json:"id"`
	ContractID            uuid.UUID           `json:"contract_id"`
	PayerID               uuid.UUID           `json:"payer_id"`
	ReceiverID            uuid.UUID           `json:"receiver_id"`
	PaymentMethodID       *uuid.UUID          `json:"payment_method_id,omitempty"`
	Amount                int64               `json:"amount"`
	TransactionType       TransactionType     `json:"transaction_type"`
	Status                TransactionStatus   `json:"status"`
	Provider              ProviderID          `json:"provider,omitempty"`
	ProviderTransactionID *string             `json:"provider_transaction_id,omitempty"`
	ProviderReference     *string             `json:"provider_reference,omitempty"`
	CheckoutURL           *string             `json:"checkout_url,omitempty"`
	FailureReason         *string             `json:"failure_reason,omitempty"`
	Metadata              TransactionMetadata `json:"metadata"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
	ProcessedAt           *time.Time          `json:"processed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusComplete ||
		t.Status == TransactionStatusEchoue ||
		t.Status == TransactionStatusAnnule
}

// Reference is the external reference sent to providers.
func (t *Transaction) Reference() string {
	return "BH-" + t.ID.String()
}

// StatusUpdate describes one transition of a transaction.
type StatusUpdate struct {
	TransactionID         uuid.UUID
	Status                TransactionStatus
	ProviderTransactionID *string
	ProviderReference     *string
	CheckoutURL           *string
	FailureReason         *string
}
