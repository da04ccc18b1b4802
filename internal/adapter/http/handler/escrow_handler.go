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

// EscrowHandler exposes contract escrow accounts.
type EscrowHandler struct {
	escrowSvc ports.EscrowService
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(escrowSvc ports.EscrowService) *EscrowHandler {
	return &EscrowHandler{escrowSvc: escrowSvc}
}

// Open handles POST /api/v1/escrow.
func (h *EscrowHandler) Open(c *gin.Context) {
	var req dto.OpenEscrowRequest
	if !bindJSON(c, &req) {
		return
	}
	contractID := uuid.MustParse(req.ContractID)
	if !h.authorize(c, contractID) {
		return
	}

	account, err := h.escrowSvc.Open(c.Request.Context(), contractID, req.TotalAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, account)
}

// Get handles GET /api/v1/escrow/:contract_id.
func (h *EscrowHandler) Get(c *gin.Context) {
	h.withAccount(c, true, h.escrowSvc.Get)
}

// Release handles POST /api/v1/escrow/:contract_id/release.
func (h *EscrowHandler) Release(c *gin.Context) {
	contractID, ok := uuidParam(c, "contract_id")
	if !ok {
		return
	}
	var req dto.ReleaseEscrowRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.escrowSvc.Release(c.Request.Context(), contractID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}

// Dispute handles POST /api/v1/escrow/:contract_id/dispute.
func (h *EscrowHandler) Dispute(c *gin.Context) {
	h.withAccount(c, true, h.escrowSvc.Dispute)
}

// Close handles POST /api/v1/escrow/:contract_id/close.
func (h *EscrowHandler) Close(c *gin.Context) {
	h.withAccount(c, false, h.escrowSvc.Close)
}

// authorize lets admins through and requires everyone else to be a party
// to the contract's payments.
func (h *EscrowHandler) authorize(c *gin.Context, contractID uuid.UUID) bool {
	if isAdmin(c) {
		return true
	}
	actorID, ok := currentUser(c)
	if !ok {
		return false
	}
	if err := h.escrowSvc.CheckParty(c.Request.Context(), actorID, contractID); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

func (h *EscrowHandler) withAccount(c *gin.Context, partyOnly bool, op func(context.Context, uuid.UUID) (*domain.EscrowAccount, error)) {
	contractID, ok := uuidParam(c, "contract_id")
	if !ok {
		return
	}
	if partyOnly && !h.authorize(c, contractID) {
		return
	}

	account, err := op(c.Request.Context(), contractID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}
