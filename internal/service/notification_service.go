package service

import (
	"context"
	"strings"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/pkg/logger"

	"github.com/rs/zerolog"
)

// LogNotificationService implements ports.NotificationService by writing
// each delivery to the log. No email or SMS provider is wired.
type LogNotificationService struct {
	log zerolog.Logger
}

// NewLogNotificationService creates a log-only notifier.
func NewLogNotificationService(log zerolog.Logger) *LogNotificationService {
	return &LogNotificationService{log: log}
}

// Send reports success when every requested channel accepted the message.
func (s *LogNotificationService) Send(_ context.Context, n domain.Notification) *domain.NotificationResult {
	result := &domain.NotificationResult{}
	if !n.Channel.WantsEmail() && !n.Channel.WantsSMS() {
		return result
	}

	ok := true
	if n.Channel.WantsEmail() {
		result.Email = s.deliver(n, "email", strings.Contains(n.Recipient, "@"), n.Recipient)
		ok = ok && result.Email.Success
	}
	if n.Channel.WantsSMS() {
		result.SMS = s.deliver(n, "sms", countDigits(n.Recipient) >= 8, logger.MaskPhone(n.Recipient))
		ok = ok && result.SMS.Success
	}
	result.Success = ok
	return result
}

func (s *LogNotificationService) deliver(n domain.Notification, channel string, valid bool, shownRecipient string) *domain.ChannelResult {
	if !valid {
		s.log.Warn().
			Str("channel", channel).
			Str("user_id", n.UserID.String()).
			Msg("notification recipient invalid for channel")
		return &domain.ChannelResult{Success: false, Error: "Destinataire invalide pour " + channel}
	}
	s.log.Info().
		Str("channel", channel).
		Str("user_id", n.UserID.String()).
		Str("type", n.Type).
		Str("recipient", shownRecipient).
		Str("subject", n.Subject).
		Msg("notification sent")
	return &domain.ChannelResult{Success: true}
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
