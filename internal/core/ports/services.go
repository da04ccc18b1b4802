package ports

import (
	"context"
	"time"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService validates bearer tokens issued by the platform.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the token carries the admin role.
func (c *TokenClaims) IsAdmin() bool {
	return c.Role == "admin"
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
	// Release forgets a nonce whose event could not be applied, so a redelivery is processed.
	Release(ctx context.Context, scope string, nonce string) error
}

// --- Gateway ---

// GatewayRequest is a payment intent sent to a mobile-money provider.
type GatewayRequest struct {
	Amount        int64  `json:"amount"`
	Phone         string `json:"phone"`
	Reference     string `json:"reference"`
	Description   string `json:"description,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	// FeeInclusive marks an amount that already carries the platform fee;
	// the 5 FCFA step applies to the pre-fee amount only.
	FeeInclusive bool `json:"-"`
}

// GatewayResponse is the normalized outcome of a provider call.
type GatewayResponse struct {
	Success           bool   `json:"success"`
	TransactionID     string `json:"transactionId,omitempty"`
	ProviderReference string `json:"providerReference,omitempty"`
	CheckoutURL       string `json:"checkoutUrl,omitempty"`
	Message           string `json:"message,omitempty"`
	Error             string `json:"error,omitempty"`
}

// GatewayDispatcher routes a payment intent to one provider.
type GatewayDispatcher interface {
	// Validate applies the provider's amount and phone rules without I/O; "" means acceptable.
	Validate(provider domain.ProviderID, req GatewayRequest) string
	Process(ctx context.Context, provider domain.ProviderID, req GatewayRequest) *GatewayResponse
}

// --- Service Ports (Business Logic) ---

// WalletService is the artisan prepaid ledger.
type WalletService interface {
	GetBalance(ctx context.Context, artisanID uuid.UUID) (*domain.WalletBalance, error)
	Recharge(ctx context.Context, req RechargeRequest) (*domain.RechargeResult, error)
	Debit(ctx context.Context, req DebitRequest) (int64, error)
	CanApplyForJob(ctx context.Context, artisanID uuid.UUID) (*ApplyEligibility, error)
	ChargeApplicationFee(ctx context.Context, artisanID, jobID uuid.UUID) (int64, error)
	Refund(ctx context.Context, req WalletRefundRequest) (int64, error)
	ListTransactions(ctx context.Context, artisanID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
}

// RechargeRequest holds validated input for a wallet recharge.
type RechargeRequest struct {
	ArtisanID uuid.UUID
	Amount    int64
	Reference string
}

// DebitRequest holds validated input for a wallet debit.
type DebitRequest struct {
	ArtisanID    uuid.UUID
	Amount       int64
	RelatedJobID *uuid.UUID
	Description  string
}

// WalletRefundRequest credits back previously spent funds.
type WalletRefundRequest struct {
	ArtisanID    uuid.UUID
	Amount       int64
	RelatedJobID *uuid.UUID
	Reason       string
}

// ApplyEligibility is the advisory answer of CanApplyForJob.
type ApplyEligibility struct {
	CanApply bool  `json:"can_apply"`
	Balance  int64 `json:"balance"`
	Fee      int64 `json:"application_fee"`
}

// SettingsService exposes the reloadable fee configuration.
type SettingsService interface {
	Current(ctx context.Context) (domain.FeeSettings, error)
	Reload(ctx context.Context) (domain.FeeSettings, error)
	Invalidate()
}

// RecordService keeps the lifecycle record of contract payments and funds escrow.
type RecordService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, update domain.StatusUpdate) (*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Transaction, error)
}

// CreateTransactionRequest holds the fields of a new en_attente transaction.
type CreateTransactionRequest struct {
	ContractID      uuid.UUID
	PayerID         uuid.UUID
	ReceiverID      uuid.UUID
	PaymentMethodID *uuid.UUID
	Amount          int64
	Type            domain.TransactionType
	Provider        domain.ProviderID
	Metadata        domain.TransactionMetadata
}

// EscrowService manages contract escrow accounts.
type EscrowService interface {
	// CheckParty returns TXN_002 unless actorID is a payer or receiver on the contract.
	CheckParty(ctx context.Context, actorID, contractID uuid.UUID) error
	Open(ctx context.Context, contractID uuid.UUID, totalAmount int64) (*domain.EscrowAccount, error)
	Get(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error)
	Release(ctx context.Context, contractID uuid.UUID, amount int64) (*domain.EscrowAccount, error)
	Dispute(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error)
	Close(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error)
}

// PaymentMethodService manages saved payment instruments.
type PaymentMethodService interface {
	Create(ctx context.Context, req CreatePaymentMethodRequest) (*domain.PaymentMethod, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.PaymentMethod, error)
	SetDefault(ctx context.Context, ownerID, id uuid.UUID) (*domain.PaymentMethod, error)
	// Resolve loads a method owned by ownerID and returns its decrypted phone number.
	Resolve(ctx context.Context, ownerID, id uuid.UUID) (*domain.PaymentMethod, string, error)
}

// CreatePaymentMethodRequest holds input for a new payment method.
type CreatePaymentMethodRequest struct {
	OwnerID     uuid.UUID
	Type        domain.PaymentMethodType
	Provider    domain.ProviderID
	DisplayName string
	Phone       string
	CardLast4   string
	IsDefault   bool
}

// PaymentService is the client-facing payment orchestration flow.
type PaymentService interface {
	Initiate(ctx context.Context, req InitiatePaymentRequest) (*PaymentResult, error)
	Get(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error)
	Cancel(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error)
	ConfirmCash(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error)
}

// InitiatePaymentRequest holds validated input for a contract payment.
type InitiatePaymentRequest struct {
	ContractID      uuid.UUID
	PayerID         uuid.UUID
	ReceiverID      uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          int64
	Type            domain.TransactionType
	Description     string
	CustomerName    string
	CustomerEmail   string
}

// PaymentResult is returned to the client; CheckoutURL must be opened when present.
type PaymentResult struct {
	Transaction *domain.Transaction `json:"transaction"`
	CheckoutURL string              `json:"checkout_url,omitempty"`
	Message     string              `json:"message,omitempty"`
}

// CallbackService applies provider confirmations.
type CallbackService interface {
	Handle(ctx context.Context, provider domain.ProviderID, signature string, body []byte) (*domain.Transaction, error)
}

// NotificationService dispatches user notifications.
type NotificationService interface {
	Send(ctx context.Context, n domain.Notification) *domain.NotificationResult
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
