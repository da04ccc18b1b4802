package dto

import "builderhub-payments/internal/core/domain"

// --- Wallet ---

// RechargeRequest is the body of POST /api/v1/wallet/recharge.
type RechargeRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Reference string `json:"reference" binding:"required,max=128,safe_id"`
}

// DebitRequest is the body of POST /api/v1/wallet/debit.
type DebitRequest struct {
	Amount       int64   `json:"amount" binding:"required,gt=0"`
	RelatedJobID *string `json:"related_job_id" binding:"omitempty,uuid"`
	Description  string  `json:"description" binding:"max=255"`
}

// ApplyFeeRequest is the body of POST /api/v1/wallet/apply-fee.
type ApplyFeeRequest struct {
	JobID string `json:"job_id" binding:"required,uuid"`
}

// WalletRefundRequest is the body of POST /api/v1/wallet/refund.
type WalletRefundRequest struct {
	ArtisanID    string  `json:"artisan_id" binding:"required,uuid"`
	Amount       int64   `json:"amount" binding:"required,gt=0"`
	RelatedJobID *string `json:"related_job_id" binding:"omitempty,uuid"`
	Reason       string  `json:"reason" binding:"required,max=255"`
}

// BalanceResponse is returned by wallet mutations.
type BalanceResponse struct {
	ArtisanID  string `json:"artisan_id"`
	NewBalance int64  `json:"new_balance"`
}

// RechargeResponse is returned by POST /api/v1/wallet/recharge.
type RechargeResponse struct {
	TransactionID string `json:"transaction_id"`
	NewBalance    int64  `json:"new_balance"`
	Replayed      bool   `json:"replayed"`
}

// WalletTransactionListResponse is a page of ledger entries.
type WalletTransactionListResponse struct {
	Data       []domain.WalletTransaction `json:"data"`
	Pagination Pagination                 `json:"pagination"`
}

// Pagination describes one page of a list.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// --- Payment methods ---

// CreatePaymentMethodRequest is the body of POST /api/v1/payment-methods.
type CreatePaymentMethodRequest struct {
	Type        string `json:"type" binding:"required,oneof=mobile_money bank_card cash"`
	Provider    string `json:"provider" binding:"omitempty,provider_id"`
	DisplayName string `json:"display_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	CardLast4   string `json:"card_last4" binding:"omitempty,len=4,numeric"`
	IsDefault   bool   `json:"is_default"`
}

// --- Payments ---

// InitiatePaymentRequest is the body of POST /api/v1/payments.
type InitiatePaymentRequest struct {
	ContractID      string `json:"contract_id" binding:"required,uuid"`
	ReceiverID      string `json:"receiver_id" binding:"required,uuid"`
	PaymentMethodID string `json:"payment_method_id" binding:"required,uuid"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	Type            string `json:"type" binding:"required,oneof=acompte paiement_partiel solde remboursement"`
	Description     string `json:"description" binding:"max=255"`
	CustomerName    string `json:"customer_name" binding:"max=100"`
	CustomerEmail   string `json:"customer_email" binding:"omitempty,email"`
}

// ProcessPaymentRequest is the body of POST /process-payment. Field names
// follow the camelCase contract of the calling web client.
type ProcessPaymentRequest struct {
	Provider      string `json:"provider" binding:"required,provider_id"`
	Amount        int64  `json:"amount" binding:"required,gt=0,multiple_of_five"`
	Phone         string `json:"phone" binding:"max=20"`
	Reference     string `json:"reference" binding:"required,max=128"`
	Description   string `json:"description" binding:"max=255"`
	CustomerName  string `json:"customerName" binding:"max=100"`
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email"`
}

// ContractPaymentsResponse lists the payments of one contract.
type ContractPaymentsResponse struct {
	ContractID   string               `json:"contract_id"`
	Transactions []domain.Transaction `json:"transactions"`
}

// --- Escrow ---

// OpenEscrowRequest is the body of POST /api/v1/escrow.
type OpenEscrowRequest struct {
	ContractID  string `json:"contract_id" binding:"required,uuid"`
	TotalAmount int64  `json:"total_amount" binding:"required,gt=0"`
}

// ReleaseEscrowRequest is the body of POST /api/v1/escrow/:contract_id/release.
type ReleaseEscrowRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// --- Notifications ---

// SendNotificationRequest is the body of POST /send-notifications.
type SendNotificationRequest struct {
	UserID    string         `json:"user_id" binding:"required,uuid"`
	Type      string         `json:"type" binding:"required,max=64"`
	Channel   string         `json:"channel" binding:"required,oneof=email sms both"`
	Recipient string         `json:"recipient" binding:"required,max=255"`
	Subject   string         `json:"subject" binding:"max=255"`
	Message   string         `json:"message" binding:"required,max=2000"`
	Metadata  map[string]any `json:"metadata"`
}

// NotificationResponse reports the outcome per channel.
type NotificationResponse struct {
	Success bool                `json:"success"`
	Results NotificationResults `json:"results"`
}

// NotificationResults holds the channels that were attempted.
type NotificationResults struct {
	Email *domain.ChannelResult `json:"email,omitempty"`
	SMS   *domain.ChannelResult `json:"sms,omitempty"`
}
