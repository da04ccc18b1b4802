package service

import (
	"github.com/shopspring/decimal"
)

// FeeBreakdown is the result of applying the platform fee to a payment.
type FeeBreakdown struct {
	Amount       int64   `json:"amount"`
	PlatformFee  int64   `json:"platform_fee"`
	TotalCharged int64   `json:"total_charged"`
	FeeRate      float64 `json:"fee_rate"`
}

// ComputeFee returns round_half_up(amount * rate) and amount + fee.
// Amounts are whole XOF; decimal arithmetic keeps the rounding exact.
func ComputeFee(amount int64, rate float64) FeeBreakdown {
	fee := decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(0).
		IntPart()
	return FeeBreakdown{
		Amount:       amount,
		PlatformFee:  fee,
		TotalCharged: amount + fee,
		FeeRate:      rate,
	}
}
