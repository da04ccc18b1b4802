package domain

import "time"

// Platform setting keys overriding configuration defaults.
const (
	SettingPlatformFeeRate      = "platform_fee_rate"
	SettingWalletApplicationFee = "wallet_application_fee"
)

// PlatformSetting is one key/value override row.
type PlatformSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeeSettings is the resolved snapshot used by the payment flow and the wallet.
type FeeSettings struct {
	PlatformFeeRate float64 `json:"platform_fee_rate"`
	ApplicationFee  int64   `json:"wallet_application_fee"`
}
