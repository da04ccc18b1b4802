package handler

import (
	"errors"
	"io"

	"builderhub-payments/internal/adapter/http/middleware"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/apperror"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderCallbackSignature carries the hex HMAC-SHA256 of the raw callback body.
const HeaderCallbackSignature = "X-Callback-Signature"

// CallbackHandler receives provider payment confirmations.
type CallbackHandler struct {
	callbackSvc ports.CallbackService
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(callbackSvc ports.CallbackService) *CallbackHandler {
	return &CallbackHandler{callbackSvc: callbackSvc}
}

type callbackAck struct {
	Acknowledged  bool   `json:"acknowledged"`
	Duplicate     bool   `json:"duplicate,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Handle handles POST /api/v1/callbacks/:provider. The signature covers the
// raw body, so it is read before any decoding. A replayed event is
// acknowledged without effect so the provider stops retrying.
func (h *CallbackHandler) Handle(c *gin.Context) {
	provider := domain.ProviderID(c.Param("provider"))

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, middleware.BindError(err))
		return
	}

	txn, err := h.callbackSvc.Handle(c.Request.Context(), provider, c.GetHeader(HeaderCallbackSignature), body)
	if err != nil {
		if errors.Is(err, apperror.ErrNonceUsed()) {
			response.OK(c, callbackAck{Acknowledged: true, Duplicate: true})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, callbackAck{
		Acknowledged:  true,
		TransactionID: txn.ID.String(),
		Status:        string(txn.Status),
	})
}
