package handler

import (
	"context"
	"net/http"

	"storefront/internal/models"
	wallet "storefront/internal/walletService"
	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet_handler.go -destination=mock_wallet_service.go -package=handler

type WalletServiceInterface interface {
	GetWallet(ctx context.Context, userID string) (wallet.Wallet, error)
	UpdateAddress(ctx context.Context, userID, address string) (wallet.Wallet, error)
	DepositFromClaim(ctx context.Context, userID, txID string) (wallet.Wallet, decimal.Decimal, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (models.Withdrawal, error)
}

type WalletHandler struct {
	service WalletServiceInterface
}

func NewWalletHandler(service WalletServiceInterface) *WalletHandler {
	return &WalletHandler{service: service}
}

// GetWalletHandler handles GET /wallet
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	w, err := h.service.GetWallet(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetWalletHandler", "read wallet", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, w, "wallet retrieved successfully")
	helpers.LogSuccess("GetWalletHandler", "wallet retrieved successfully", map[string]any{"user_id": userID})
}

// UpdateAddressHandler handles PUT /wallet/address
func (h *WalletHandler) UpdateAddressHandler(c *gin.Context) {
	var req helpers.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAddressHandler", err)
		return
	}
	userID := helpers.UserID(c)

	w, err := h.service.UpdateAddress(c.Request.Context(), userID, req.Address)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateAddressHandler", "update payout address", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, w, "payout address updated")
	helpers.LogSuccess("UpdateAddressHandler", "payout address updated", map[string]any{"user_id": userID})
}

// DepositHandler handles POST /wallet/deposit
func (h *WalletHandler) DepositHandler(c *gin.Context) {
	var req helpers.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DepositHandler", err)
		return
	}
	userID := helpers.UserID(c)

	w, credited, err := h.service.DepositFromClaim(c.Request.Context(), userID, req.TxID)
	if err != nil {
		helpers.HandleServiceError(c, "DepositHandler", "credit deposit", err, map[string]any{
			"user_id": userID,
			"txid":    req.TxID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.DepositResponse{Credited: credited, Balance: w.Balance}, "deposit credited")
	helpers.LogSuccess("DepositHandler", "deposit credited", map[string]any{
		"user_id":  userID,
		"txid":     req.TxID,
		"credited": credited.StringFixed(models.MoneyScale),
	})
}

// WithdrawHandler handles POST /wallet/withdraw
func (h *WalletHandler) WithdrawHandler(c *gin.Context) {
	var req helpers.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawHandler", err)
		return
	}
	userID := helpers.UserID(c)

	wd, err := h.service.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "WithdrawHandler", "withdraw", err, map[string]any{
			"user_id": userID,
			"amount":  req.Amount.String(),
		})
		return
	}

	resp := helpers.WithdrawalResponse{
		WithdrawalID:   wd.ID,
		Address:        wd.Address,
		Amount:         wd.Amount,
		ExternalTxID:   wd.ExternalTxID,
		ConfirmedRound: wd.ConfirmedRound,
		CreatedAt:      helpers.FormatTime(wd.CreatedAt),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "withdrawal sent")
	helpers.LogSuccess("WithdrawHandler", "withdrawal sent", map[string]any{
		"user_id":        userID,
		"withdrawal_id":  wd.ID,
		"external_tx_id": wd.ExternalTxID,
	})
}
