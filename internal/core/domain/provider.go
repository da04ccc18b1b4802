package domain

// ProviderID identifies a payment network.
type ProviderID string

const (
	ProviderOrangeMoney  ProviderID = "orange_money"
	ProviderMoovMoney    ProviderID = "moov_money"
	ProviderWave         ProviderID = "wave"
	ProviderTelecelMoney ProviderID = "telecel_money"

	// Non-gateway instruments.
	ProviderCash ProviderID = "cash"
	ProviderCard ProviderID = "card"
)

// MobileMoneyProviders lists the providers reachable through the gateway.
func MobileMoneyProviders() []ProviderID {
	return []ProviderID{ProviderOrangeMoney, ProviderMoovMoney, ProviderWave, ProviderTelecelMoney}
}

// IsMobileMoney reports whether the gateway dispatcher handles this provider.
func (p ProviderID) IsMobileMoney() bool {
	switch p {
	case ProviderOrangeMoney, ProviderMoovMoney, ProviderWave, ProviderTelecelMoney:
		return true
	}
	return false
}

// DisplayName is the label shown to users.
func (p ProviderID) DisplayName() string {
	switch p {
	case ProviderOrangeMoney:
		return "Orange Money"
	case ProviderMoovMoney:
		return "Moov Money"
	case ProviderWave:
		return "Wave"
	case ProviderTelecelMoney:
		return "Telecel Money"
	case ProviderCash:
		return "Espèces"
	case ProviderCard:
		return "Carte bancaire"
	}
	return string(p)
}
