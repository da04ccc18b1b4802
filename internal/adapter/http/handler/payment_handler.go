package handler

import (
	"context"

	"builderhub-payments/internal/adapter/http/dto"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles contract payment endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	recordSvc  ports.RecordService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, recordSvc ports.RecordService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, recordSvc: recordSvc}
}

// Initiate handles POST /api/v1/payments. The caller is the payer. When the
// result carries a checkout_url the client must open it to finish paying.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	payerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.InitiatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.paymentSvc.Initiate(c.Request.Context(), ports.InitiatePaymentRequest{
		ContractID:      uuid.MustParse(req.ContractID),
		PayerID:         payerID,
		ReceiverID:      uuid.MustParse(req.ReceiverID),
		PaymentMethodID: uuid.MustParse(req.PaymentMethodID),
		Amount:          req.Amount,
		Type:            domain.TransactionType(req.Type),
		Description:     req.Description,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	h.withTransaction(c, h.paymentSvc.Get)
}

// Cancel handles POST /api/v1/payments/:id/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.withTransaction(c, h.paymentSvc.Cancel)
}

// ConfirmCash handles POST /api/v1/payments/:id/confirm-cash. Only the
// receiver of a cash payment may confirm it.
func (h *PaymentHandler) ConfirmCash(c *gin.Context) {
	h.withTransaction(c, h.paymentSvc.ConfirmCash)
}

type transactionOp func(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error)

func (h *PaymentHandler) withTransaction(c *gin.Context, op transactionOp) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	txID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	txn, err := op(c.Request.Context(), actorID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txn)
}

// ListByContract handles GET /api/v1/contracts/:id/payments. Non-admin
// callers only see payments they are a party to.
func (h *PaymentHandler) ListByContract(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	contractID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	txns, err := h.recordSvc.ListByContract(c.Request.Context(), contractID)
	if err != nil {
		response.Error(c, err)
		return
	}

	visible := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if isAdmin(c) || t.PayerID == actorID || t.ReceiverID == actorID {
			visible = append(visible, t)
		}
	}

	response.OK(c, dto.ContractPaymentsResponse{
		ContractID:   contractID.String(),
		Transactions: visible,
	})
}
