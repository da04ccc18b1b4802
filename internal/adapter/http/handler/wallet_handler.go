package handler

import (
	"time"

	"builderhub-payments/internal/adapter/http/dto"
	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler serves the artisan's prepaid wallet.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/wallet. An artisan without a wallet sees a zero balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.GetBalance(c.Request.Context(), artisanID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallet == nil {
		now := time.Now().UTC()
		wallet = &domain.WalletBalance{ArtisanID: artisanID, CreatedAt: now, UpdatedAt: now}
	}

	response.OK(c, wallet)
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	entries, total, err := h.walletSvc.ListTransactions(c.Request.Context(), artisanID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.WalletTransaction{}
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	response.OK(c, dto.WalletTransactionListResponse{
		Data: entries,
		Pagination: dto.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// Recharge handles POST /api/v1/wallet/recharge.
func (h *WalletHandler) Recharge(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.RechargeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.walletSvc.Recharge(c.Request.Context(), ports.RechargeRequest{
		ArtisanID: artisanID,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RechargeResponse{
		TransactionID: result.TransactionID.String(),
		NewBalance:    result.NewBalance,
		Replayed:      result.Replayed,
	})
}

// Debit handles POST /api/v1/wallet/debit.
func (h *WalletHandler) Debit(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.DebitRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.walletSvc.Debit(c.Request.Context(), ports.DebitRequest{
		ArtisanID:    artisanID,
		Amount:       req.Amount,
		RelatedJobID: optionalUUID(req.RelatedJobID),
		Description:  req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{ArtisanID: artisanID.String(), NewBalance: balance})
}

// CanApply handles GET /api/v1/wallet/can-apply. The answer is advisory;
// ApplyFee re-checks under lock.
func (h *WalletHandler) CanApply(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}

	eligibility, err := h.walletSvc.CanApplyForJob(c.Request.Context(), artisanID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, eligibility)
}

// ApplyFee handles POST /api/v1/wallet/apply-fee.
func (h *WalletHandler) ApplyFee(c *gin.Context) {
	artisanID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ApplyFeeRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.walletSvc.ChargeApplicationFee(c.Request.Context(), artisanID, uuid.MustParse(req.JobID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{ArtisanID: artisanID.String(), NewBalance: balance})
}

// Refund handles POST /api/v1/wallet/refund (admin only).
func (h *WalletHandler) Refund(c *gin.Context) {
	var req dto.WalletRefundRequest
	if !bindJSON(c, &req) {
		return
	}
	artisanID := uuid.MustParse(req.ArtisanID)

	balance, err := h.walletSvc.Refund(c.Request.Context(), ports.WalletRefundRequest{
		ArtisanID:    artisanID,
		Amount:       req.Amount,
		RelatedJobID: optionalUUID(req.RelatedJobID),
		Reason:       req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{ArtisanID: artisanID.String(), NewBalance: balance})
}
