package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodType is the instrument family.
type PaymentMethodType string

const (
	PaymentMethodMobileMoney PaymentMethodType = "mobile_money"
	PaymentMethodBankCard    PaymentMethodType = "bank_card"
	PaymentMethodCash        PaymentMethodType = "cash"
)

// PaymentMethod is a saved payment instrument of a client or artisan.
type PaymentMethod struct {
	ID             uuid.UUID         `json:"id"`
	OwnerID        uuid.UUID         `json:"owner_id"`
	Type           PaymentMethodType `json:"type"`
	Provider       ProviderID        `json:"provider"`
	DisplayName    string            `json:"display_name"`
	CardLast4      *string           `json:"card_last4,omitempty"`
	PhoneMasked    *string           `json:"phone_masked,omitempty"`
	PhoneEncrypted string            `json:"-"` // AES-256 encrypted, never expose
	IsDefault      bool              `json:"is_default"`
	IsVerified     bool              `json:"is_verified"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// RequiresGateway reports whether payments with this method go through a provider.
func (m *PaymentMethod) RequiresGateway() bool {
	return m.Type == PaymentMethodMobileMoney && m.Provider.IsMobileMoney()
}

// MaskPhone keeps only the last four digits of a phone number ("•••• 4567").
func MaskPhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) <= 4 {
		return "****"
	}
	tail := string(digits[len(digits)-4:])
	return "•••• " + tail
}
