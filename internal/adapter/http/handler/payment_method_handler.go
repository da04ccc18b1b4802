package handler

import (
	"builderhub-payments/internal/adapter/http/dto"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler manages the caller's saved payment instruments.
type PaymentMethodHandler struct {
	methodSvc ports.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(methodSvc ports.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodSvc: methodSvc}
}

// List handles GET /api/v1/payment-methods.
func (h *PaymentMethodHandler) List(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}

	methods, err := h.methodSvc.List(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if methods == nil {
		methods = []domain.PaymentMethod{}
	}
	response.OK(c, methods)
}

// Create handles POST /api/v1/payment-methods. The phone number is stored
// encrypted and only its masked form is returned.
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.methodSvc.Create(c.Request.Context(), ports.CreatePaymentMethodRequest{
		OwnerID:     ownerID,
		Type:        domain.PaymentMethodType(req.Type),
		Provider:    domain.ProviderID(req.Provider),
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		CardLast4:   req.CardLast4,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, method)
}

// SetDefault handles PUT /api/v1/payment-methods/:id/default.
func (h *PaymentMethodHandler) SetDefault(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	method, err := h.methodSvc.SetDefault(c.Request.Context(), ownerID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, method)
}
