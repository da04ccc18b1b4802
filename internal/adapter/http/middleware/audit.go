package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful write operations once the handler has answered.
// Routes are matched on their template, so path parameters become the resource id.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if id, ok := UserID(c); ok {
			actorID = &id
		}

		details, _ := json.Marshal(map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID(c),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func resourceID(c *gin.Context) string {
	for _, name := range []string{"id", "contract_id", "provider"} {
		if v := c.Param(name); v != "" {
			return v
		}
	}
	if id, ok := UserID(c); ok {
		return id.String()
	}
	return ""
}

func mapPathToAction(route, method string) (domain.AuditAction, string) {
	if method != http.MethodPost && method != http.MethodPut {
		return "", ""
	}
	switch route {
	case "/api/v1/wallet/recharge":
		return domain.AuditActionWalletRecharge, "wallet"
	case "/api/v1/wallet/debit", "/api/v1/wallet/apply-fee":
		return domain.AuditActionWalletDebit, "wallet"
	case "/api/v1/wallet/refund":
		return domain.AuditActionWalletRefund, "wallet"
	case "/api/v1/payment-methods", "/api/v1/payment-methods/:id/default":
		return domain.AuditActionPaymentMethod, "payment_method"
	case "/api/v1/payments":
		return domain.AuditActionPaymentInitiate, "transaction"
	case "/api/v1/payments/:id/cancel":
		return domain.AuditActionPaymentCancel, "transaction"
	case "/api/v1/payments/:id/confirm-cash":
		return domain.AuditActionPaymentConfirm, "transaction"
	case "/api/v1/escrow",
		"/api/v1/escrow/:contract_id/release",
		"/api/v1/escrow/:contract_id/dispute",
		"/api/v1/escrow/:contract_id/close":
		return domain.AuditActionEscrow, "escrow"
	case "/api/v1/callbacks/:provider":
		return domain.AuditActionProviderCall, "provider"
	case "/api/v1/admin/settings/reload":
		return domain.AuditActionSettingsReload, "settings"
	}
	return "", ""
}
