package handler

import (
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the fee configuration to administrators.
type SettingsHandler struct {
	settingsSvc ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsSvc ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// Get handles GET /api/v1/admin/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.settingsSvc.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, current)
}

// Reload handles POST /api/v1/admin/settings/reload, re-reading
// platform_settings after an operator changed them.
func (h *SettingsHandler) Reload(c *gin.Context) {
	reloaded, err := h.settingsSvc.Reload(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, reloaded)
}
