package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	checkout "storefront/internal/checkoutService"
	"storefront/internal/models"
	pending "storefront/internal/pendingRegistry"
	"storefront/internal/shoperrors"
	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=checkout_handler.go -destination=mock_checkout_service.go -package=handler

type CheckoutServiceInterface interface {
	StartWalletCheckout(ctx context.Context, userID string) (pending.Token, error)
	ValidatePending(ctx context.Context, token, userID string) (pending.Claims, error)
	CancelPending(ctx context.Context, token, userID string) (pending.Claims, error)
	SettleCartCheckout(ctx context.Context, req checkout.SettleRequest) (models.Transaction, error)
}

type CheckoutHandler struct {
	service CheckoutServiceInterface
	now     func() time.Time
}

func NewCheckoutHandler(service CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: service, now: time.Now}
}

// bindOptional accepts an empty body; state then comes from cookies
func bindOptional(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *CheckoutHandler) pendingToken(c *gin.Context, handlerName string) (string, bool) {
	var req helpers.PendingTokenRequest
	if err := bindOptional(c, &req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return "", false
	}
	if req.Token == "" {
		req.Token = helpers.Cookie(c, helpers.CookieTransactionID)
	}
	if req.Token == "" {
		helpers.HandleBindError(c, handlerName, fmt.Errorf("%w - missing pending token", shoperrors.ErrInvalidRequest))
		return "", false
	}
	return req.Token, true
}

// StartWalletCheckoutHandler handles POST /checkout/wallet
func (h *CheckoutHandler) StartWalletCheckoutHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	token, err := h.service.StartWalletCheckout(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "StartWalletCheckoutHandler", "reserve cart total", err, map[string]any{"user_id": userID})
		return
	}

	ttl := token.ExpiresAt.Sub(h.now())
	helpers.SetCheckoutCookie(c, helpers.CookieTransactionID, token.Token, ttl)
	helpers.SetCheckoutCookie(c, helpers.CookieType, models.RailWallet, ttl)

	resp := helpers.PendingResponse{
		TransactionID: token.TransactionID,
		Amount:        token.Amount,
		ExpiresAt:     helpers.FormatTime(token.ExpiresAt),
		Token:         token.Token,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "wallet checkout started")
	helpers.LogSuccess("StartWalletCheckoutHandler", "wallet checkout started", map[string]any{
		"user_id":        userID,
		"transaction_id": token.TransactionID,
		"amount":         token.Amount.StringFixed(models.MoneyScale),
	})
}

// ValidatePendingHandler handles POST /checkout/wallet/validate
func (h *CheckoutHandler) ValidatePendingHandler(c *gin.Context) {
	token, ok := h.pendingToken(c, "ValidatePendingHandler")
	if !ok {
		return
	}
	userID := helpers.UserID(c)

	claims, err := h.service.ValidatePending(c.Request.Context(), token, userID)
	if err != nil {
		helpers.HandleServiceError(c, "ValidatePendingHandler", "validate pending transaction", err, map[string]any{"user_id": userID})
		return
	}

	resp := helpers.PendingResponse{TransactionID: claims.TransactionID, Amount: claims.Amount}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = helpers.FormatTime(claims.ExpiresAt.Time)
	}
	utils.JSONResponse(c, http.StatusOK, resp, "pending transaction is valid")
	helpers.LogSuccess("ValidatePendingHandler", "pending transaction is valid", map[string]any{
		"user_id":        userID,
		"transaction_id": claims.TransactionID,
	})
}

// CancelPendingHandler handles POST /checkout/wallet/cancel
func (h *CheckoutHandler) CancelPendingHandler(c *gin.Context) {
	token, ok := h.pendingToken(c, "CancelPendingHandler")
	if !ok {
		return
	}
	userID := helpers.UserID(c)

	claims, err := h.service.CancelPending(c.Request.Context(), token, userID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelPendingHandler", "cancel pending transaction", err, map[string]any{"user_id": userID})
		return
	}

	helpers.ClearCheckoutCookies(c)
	resp := helpers.PendingResponse{TransactionID: claims.TransactionID, Amount: claims.Amount}
	utils.JSONResponse(c, http.StatusOK, resp, "pending transaction cancelled")
	helpers.LogSuccess("CancelPendingHandler", "pending transaction cancelled", map[string]any{
		"user_id":        userID,
		"transaction_id": claims.TransactionID,
		"refunded":       claims.Amount.StringFixed(models.MoneyScale),
	})
}

// SettleCheckoutHandler handles POST /checkout
func (h *CheckoutHandler) SettleCheckoutHandler(c *gin.Context) {
	var req helpers.SettleRequest
	if err := bindOptional(c, &req); err != nil {
		helpers.HandleBindError(c, "SettleCheckoutHandler", err)
		return
	}
	if req.Rail == "" {
		req.Rail = helpers.Cookie(c, helpers.CookieType)
	}
	if req.Token == "" {
		req.Token = helpers.Cookie(c, helpers.CookieTransactionID)
	}
	if req.TxID == "" {
		req.TxID = helpers.Cookie(c, helpers.CookieTxID)
	}
	userID := helpers.UserID(c)

	txn, err := h.service.SettleCartCheckout(c.Request.Context(), checkout.SettleRequest{
		UserID: userID,
		Rail:   req.Rail,
		Token:  req.Token,
		TxID:   req.TxID,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SettleCheckoutHandler", "settle checkout", err, map[string]any{
			"user_id": userID,
			"rail":    req.Rail,
		})
		return
	}

	// only a committed sale may drop the payment state
	helpers.ClearCheckoutCookies(c)

	resp := helpers.ReceiptResponse{
		TransactionID: txn.ID,
		Total:         txn.TotalAmount,
		Rail:          txn.PaymentRail,
		PaymentRef:    txn.PaymentRef,
		Items:         make([]helpers.SaleItemResponse, 0, len(txn.SaleItems)),
		CreatedAt:     helpers.FormatTime(txn.CreatedAt),
	}
	for _, item := range txn.SaleItems {
		resp.Items = append(resp.Items, helpers.SaleItemResponse{
			ItemID:   item.ItemID,
			SellerID: item.SellerID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "checkout completed")
	helpers.LogSuccess("SettleCheckoutHandler", "checkout completed", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"rail":           txn.PaymentRail,
		"total":          txn.TotalAmount.StringFixed(models.MoneyScale),
	})
}
