package helpers

import (
	"github.com/shopspring/decimal"
)

// Request/Response DTOs

// Amounts are accepted as JSON strings or numbers and validated by the services.
type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string           `json:"auction_id"`
	SellerID      string           `json:"seller_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	StartingPrice decimal.Decimal  `json:"starting_price"`
	StartingTime  string           `json:"starting_time,omitempty"`
	EndsAt        string           `json:"ends_at,omitempty"`
	State         string           `json:"state,omitempty"`
	HighestBid    *decimal.Decimal `json:"highest_bid,omitempty"`
}

type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

// PendingTokenRequest may be empty when the token travels in the transaction_id cookie.
type PendingTokenRequest struct {
	Token string `json:"token"`
}

type PendingResponse struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ExpiresAt     string          `json:"expires_at,omitempty"`
	Token         string          `json:"token,omitempty"`
}

// SettleRequest falls back to the checkout cookies for any empty field.
type SettleRequest struct {
	Rail  string `json:"rail" binding:"omitempty,oneof=wallet external"`
	Token string `json:"token"`
	TxID  string `json:"txid"`
}

type SaleItemResponse struct {
	ItemID   string          `json:"item_id"`
	SellerID string          `json:"seller_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ReceiptResponse struct {
	TransactionID string             `json:"transaction_id"`
	Total         decimal.Decimal    `json:"total"`
	Rail          string             `json:"rail"`
	PaymentRef    string             `json:"payment_ref"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

type CreateIntentRequest struct {
	Purpose string          `json:"purpose" binding:"required,oneof=cart deposit"`
	Amount  decimal.Decimal `json:"amount"`
}

type ConfirmPaymentRequest struct {
	TxID string `json:"txid" binding:"required"`
	Note string `json:"note" binding:"required"`
}

type ClaimResponse struct {
	TxID           string `json:"txid"`
	Purpose        string `json:"purpose"`
	AmountMinor    uint64 `json:"amount_minor"`
	ConfirmedRound uint64 `json:"confirmed_round"`
	ExpiresAt      string `json:"expires_at"`
	Completed      bool   `json:"completed"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

type DepositRequest struct {
	TxID string `json:"txid" binding:"required"`
}

type DepositResponse struct {
	Credited decimal.Decimal `json:"credited"`
	Balance  decimal.Decimal `json:"balance"`
}

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type WithdrawalResponse struct {
	WithdrawalID   string          `json:"withdrawal_id"`
	Address        string          `json:"address"`
	Amount         decimal.Decimal `json:"amount"`
	ExternalTxID   string          `json:"external_tx_id"`
	ConfirmedRound uint64          `json:"confirmed_round"`
	CreatedAt      string          `json:"created_at"`
}
