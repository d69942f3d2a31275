package shoperrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoBids              = errors.New("no bids found for item")
	ErrUserNoBids          = errors.New("user has not placed any bids")
	ErrCartItemNotFound    = errors.New("item not found in cart")
	ErrTransactionNotFound = errors.New("pending transaction not found")
	ErrIntentNotFound      = errors.New("payment intent not found")
)

// Validation errors, rejected before any mutation
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidToken   = errors.New("invalid or expired transaction token")
)

// Conflict errors, rejected after a consistent read
var (
	ErrAuctionClosed         = errors.New("auction is not open")
	ErrBidTooLow             = errors.New("bid amount too low")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrUserIDMismatch        = errors.New("user id mismatch")
	ErrPaymentNotConfirmed   = errors.New("payment not confirmed")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match cart total")
	ErrPaymentAlreadyUsed    = errors.New("payment already used")
	ErrNoPayoutAddress       = errors.New("no payout address set")
)

// External payment confirmation outcomes. Both are non-fatal: the caller keeps polling.
var (
	ErrNotYetConfirmed = errors.New("transaction not yet confirmed")
	ErrDetailsMismatch = errors.New("transaction details do not match")
)

// External dependency failures
var (
	ErrIndexerUnavailable = errors.New("indexer unavailable")
	ErrWithdrawalFailed   = errors.New("blockchain withdrawal failed")
)
