package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated caller
const UserIDKey = "user_id"

// Checkout cookies carrying payment state between the payment and settle calls
const (
	CookieTransactionID = "transaction_id"
	CookieType          = "type"
	CookieTxID          = "txid"
)

// PollRetrySeconds is suggested to clients polling an unconfirmed payment
const PollRetrySeconds = 3

// UserID returns the caller id set by the identity middleware
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status, writes the error envelope and logs it
func HandleServiceError(c *gin.Context, handlerName, action string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": failed to "+action, fields)
		return
	}
	utils.Warn(handlerName+": failed to "+action, fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, shoperrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, shoperrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, shoperrors.ErrCartItemNotFound):
		return http.StatusNotFound, "item not found in cart"
	case errors.Is(err, shoperrors.ErrTransactionNotFound):
		return http.StatusNotFound, "pending transaction not found"
	case errors.Is(err, shoperrors.ErrIntentNotFound):
		return http.StatusNotFound, "payment intent not found"
	case errors.Is(err, shoperrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for item"
	case errors.Is(err, shoperrors.ErrUserNoBids):
		return http.StatusOK, "no auctions found for user"

	case errors.Is(err, shoperrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, shoperrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, shoperrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired transaction token"

	case errors.Is(err, shoperrors.ErrUserIDMismatch):
		return http.StatusForbidden, "user id mismatch"

	case errors.Is(err, shoperrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is not open"
	case errors.Is(err, shoperrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, shoperrors.ErrInsufficientFunds):
		return http.StatusConflict, "insufficient funds"
	case errors.Is(err, shoperrors.ErrInsufficientStock):
		return http.StatusConflict, "insufficient stock"
	case errors.Is(err, shoperrors.ErrEmptyCart):
		return http.StatusConflict, "cart is empty"
	case errors.Is(err, shoperrors.ErrPaymentAlreadyUsed):
		return http.StatusConflict, "payment already used"
	case errors.Is(err, shoperrors.ErrPaymentAmountMismatch):
		return http.StatusConflict, "payment amount does not match cart total"
	case errors.Is(err, shoperrors.ErrNoPayoutAddress):
		return http.StatusConflict, "no payout address set"

	case errors.Is(err, shoperrors.ErrPaymentNotConfirmed):
		return http.StatusPaymentRequired, "payment not confirmed"
	case errors.Is(err, shoperrors.ErrNotYetConfirmed):
		return http.StatusAccepted, "transaction not yet confirmed"
	case errors.Is(err, shoperrors.ErrDetailsMismatch):
		return http.StatusAccepted, "transaction details do not match"

	case errors.Is(err, shoperrors.ErrIndexerUnavailable):
		return http.StatusServiceUnavailable, "indexer unavailable"
	case errors.Is(err, shoperrors.ErrWithdrawalFailed):
		return http.StatusBadGateway, "blockchain withdrawal failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// FormatTime renders t in RFC3339 UTC, or "" for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// SetCheckoutCookie stores one piece of checkout state on the client
func SetCheckoutCookie(c *gin.Context, name, value string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, int(maxAge.Seconds()), "/", "", false, true)
}

// ClearCheckoutCookies drops every cookie that could replay a settled payment
func ClearCheckoutCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	for _, name := range []string{CookieTransactionID, CookieType, CookieTxID} {
		c.SetCookie(name, "", -1, "/", "", false, true)
	}
}

// Cookie returns the named cookie or ""
func Cookie(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return value
}
