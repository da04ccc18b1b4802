package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"builderhub-payments/internal/adapter/http/dto"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/gateway"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	msgInvalidRequest    = "Requête invalide"
	msgReferenceRequired = "Référence de paiement requise"
	msgRequestTooLarge   = "Requête trop volumineuse"
)

// GatewayHandler serves POST /process-payment, the server-side dispatch
// endpoint that holds provider credentials. Responses use the flat
// {success, ...} shape expected by the web client instead of the API envelope.
type GatewayHandler struct {
	dispatcher ports.GatewayDispatcher
	log        zerolog.Logger
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(dispatcher ports.GatewayDispatcher, log zerolog.Logger) *GatewayHandler {
	return &GatewayHandler{dispatcher: dispatcher, log: log}
}

// ProcessPayment handles POST /process-payment.
func (h *GatewayHandler) ProcessPayment(c *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, msg := processPaymentBindError(err)
		h.log.Debug().Err(err).Str("reason", msg).Msg("process-payment: invalid body")
		c.JSON(status, ports.GatewayResponse{Success: false, Error: msg})
		return
	}
	dto.SanitizeStruct(&req)

	provider := domain.ProviderID(req.Provider)
	gwReq := ports.GatewayRequest{
		Amount:        req.Amount,
		Phone:         req.Phone,
		Reference:     req.Reference,
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}

	if msg := h.dispatcher.Validate(provider, gwReq); msg != "" {
		h.log.Debug().Str("provider", req.Provider).Str("reason", msg).Msg("process-payment: rejected")
		c.JSON(http.StatusBadRequest, ports.GatewayResponse{Success: false, Error: msg})
		return
	}

	resp := h.dispatcher.Process(c.Request.Context(), provider, gwReq)
	c.JSON(gatewayStatus(resp), resp)
}

func gatewayStatus(resp *ports.GatewayResponse) int {
	switch {
	case resp.Success:
		return http.StatusOK
	case resp.Error == gateway.MsgNotConfigured:
		return http.StatusServiceUnavailable
	case resp.Error == gateway.MsgUnsupportedProvider:
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// processPaymentBindError turns a binding failure into the user-facing message
// the dispatcher would have produced for the same input.
func processPaymentBindError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, msgRequestTooLarge
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "amount" {
		return http.StatusBadRequest, gateway.MsgInvalidAmount
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return http.StatusBadRequest, msgInvalidRequest
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Provider":
		return http.StatusBadRequest, gateway.MsgUnsupportedProvider
	case "Amount":
		if fe.Tag() == "multiple_of_five" {
			return http.StatusBadRequest, gateway.MsgNotMultipleOfFive
		}
		return http.StatusBadRequest, gateway.MsgInvalidAmount
	case "Reference":
		return http.StatusBadRequest, msgReferenceRequired
	}
	return http.StatusBadRequest, msgInvalidRequest
}

// Providers handles GET /api/v1/admin/providers.
func Providers(d *gateway.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, d.Providers())
	}
}
