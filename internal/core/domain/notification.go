package domain

import "github.com/google/uuid"

// NotificationChannel selects how a notification is delivered.
type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelBoth  NotificationChannel = "both"
)

// Notification is a user-facing message about a payment event.
type Notification struct {
	UserID    uuid.UUID           `json:"user_id"`
	Type      string              `json:"type"`
	Channel   NotificationChannel `json:"channel"`
	Recipient string              `json:"recipient"`
	Subject   string              `json:"subject,omitempty"`
	Message   string              `json:"message"`
	Metadata  map[string]any      `json:"metadata,omitempty"`
}

// ChannelResult is the delivery outcome on one channel.
type ChannelResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NotificationResult aggregates per-channel outcomes.
type NotificationResult struct {
	Success bool           `json:"success"`
	Email   *ChannelResult `json:"email,omitempty"`
	SMS     *ChannelResult `json:"sms,omitempty"`
}

// WantsEmail reports whether the channel includes email.
func (c NotificationChannel) WantsEmail() bool {
	return c == NotificationChannelEmail || c == NotificationChannelBoth
}

// WantsSMS reports whether the channel includes SMS.
func (c NotificationChannel) WantsSMS() bool {
	return c == NotificationChannelSMS || c == NotificationChannelBoth
}
