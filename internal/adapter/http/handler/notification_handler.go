package handler

import (
	"net/http"

	"builderhub-payments/internal/adapter/http/dto"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler serves POST /send-notifications.
type NotificationHandler struct {
	notifySvc ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifySvc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// Send dispatches one notification and reports the outcome per channel.
// A channel failure is reported in the body, not as an HTTP error.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result := h.notifySvc.Send(c.Request.Context(), domain.Notification{
		UserID:    uuid.MustParse(req.UserID),
		Type:      req.Type,
		Channel:   domain.NotificationChannel(req.Channel),
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Message:   req.Message,
		Metadata:  req.Metadata,
	})

	c.JSON(http.StatusOK, dto.NotificationResponse{
		Success: result.Success,
		Results: dto.NotificationResults{Email: result.Email, SMS: result.SMS},
	})
}
