package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/models"
	payment "storefront/internal/paymentService"
	"storefront/internal/shoperrors"
	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_handler.go -destination=mock_payment_service.go -package=handler

type PaymentServiceInterface interface {
	CreateIntent(ctx context.Context, userID, purpose string, amount decimal.Decimal) (payment.Intent, error)
	VerifyAndRecord(ctx context.Context, userID, txID, note string) (models.PaymentClaim, error)
}

type PaymentHandler struct {
	service PaymentServiceInterface
	now     func() time.Time
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service, now: time.Now}
}

// CreateIntentHandler handles POST /payments/intents
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var req helpers.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateIntentHandler", err)
		return
	}
	userID := helpers.UserID(c)

	intent, err := h.service.CreateIntent(c.Request.Context(), userID, req.Purpose, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "CreateIntentHandler", "create payment intent", err, map[string]any{
			"user_id": userID,
			"purpose": req.Purpose,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, intent, "payment intent created")
	helpers.LogSuccess("CreateIntentHandler", "payment intent created", map[string]any{
		"user_id":      userID,
		"purpose":      intent.Purpose,
		"amount_minor": intent.AmountMinor,
	})
}

// ConfirmPaymentHandler handles POST /payments/confirm. Clients poll it until
// the transfer is final; unconfirmed or mismatching transfers answer 202.
func (h *PaymentHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req helpers.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ConfirmPaymentHandler", err)
		return
	}
	userID := helpers.UserID(c)

	claim, err := h.service.VerifyAndRecord(c.Request.Context(), userID, req.TxID, req.Note)
	if errors.Is(err, shoperrors.ErrNotYetConfirmed) || errors.Is(err, shoperrors.ErrDetailsMismatch) {
		status, reason := helpers.MapErrorToHTTP(err)
		utils.JSONPending(c, status, reason, helpers.PollRetrySeconds)
		utils.Debug("ConfirmPaymentHandler: payment pending", map[string]any{
			"user_id": userID,
			"txid":    req.TxID,
			"reason":  reason,
		})
		return
	}
	if err != nil {
		helpers.HandleServiceError(c, "ConfirmPaymentHandler", "confirm payment", err, map[string]any{
			"user_id": userID,
			"txid":    req.TxID,
		})
		return
	}

	if claim.Purpose == models.PurposeCart {
		ttl := claim.ExpiresAt.Sub(h.now())
		helpers.SetCheckoutCookie(c, helpers.CookieTxID, claim.TxID, ttl)
		helpers.SetCheckoutCookie(c, helpers.CookieType, models.RailExternal, ttl)
	}

	resp := helpers.ClaimResponse{
		TxID:           claim.TxID,
		Purpose:        claim.Purpose,
		AmountMinor:    claim.Amount,
		ConfirmedRound: claim.ConfirmedRound,
		ExpiresAt:      helpers.FormatTime(claim.ExpiresAt),
		Completed:      true,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "payment confirmed")
	helpers.LogSuccess("ConfirmPaymentHandler", "payment confirmed", map[string]any{
		"user_id": userID,
		"txid":    claim.TxID,
		"purpose": claim.Purpose,
		"round":   claim.ConfirmedRound,
	})
}
