package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MoneyScale is the number of implied decimal places carried by wallet and price amounts.
const MoneyScale = 2

// IsValidAmount reports whether d is positive with at most MoneyScale decimals.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(MoneyScale))
}

// User represents a shop participant and their internal wallet
type User struct {
	ID        string          `gorm:"primaryKey;size:36" json:"user_id"`
	Username  string          `gorm:"size:64;uniqueIndex" json:"username"`
	Wallet    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"wallet"`
	Address   *string         `gorm:"size:128" json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AuctionState is derived from the start time and duration, never stored.
type AuctionState string

const (
	AuctionUpcoming AuctionState = "upcoming"
	AuctionOngoing  AuctionState = "ongoing"
	AuctionExpired  AuctionState = "expired"
)

// AuctionItem represents an item sold by auction
type AuctionItem struct {
	ID            string          `gorm:"primaryKey;size:36" json:"item_id"`
	SellerID      string          `gorm:"size:36;index;not null" json:"seller_id"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	Category      string          `gorm:"size:64" json:"category"`
	StartingPrice decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"starting_price"`
	Stock         int             `gorm:"not null;default:1" json:"stock"`
	StartingTime  *time.Time      `json:"starting_time,omitempty"`
	Duration      int64           `gorm:"not null" json:"duration"` // seconds
	IsExpired     bool            `gorm:"not null;default:false" json:"is_expired"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EndsAt returns the closing instant, or false when the auction has no start time yet.
func (a AuctionItem) EndsAt() (time.Time, bool) {
	if a.StartingTime == nil {
		return time.Time{}, false
	}
	return a.StartingTime.Add(time.Duration(a.Duration) * time.Second), true
}

// StateAt derives the auction state at now. The window is [start, start+duration).
func (a AuctionItem) StateAt(now time.Time) AuctionState {
	if a.IsExpired {
		return AuctionExpired
	}
	if a.StartingTime == nil || now.Before(*a.StartingTime) {
		return AuctionUpcoming
	}
	end, _ := a.EndsAt()
	if now.Before(end) {
		return AuctionOngoing
	}
	return AuctionExpired
}

// Bid represents a user's bid on an auction item. Bids are append-only.
type Bid struct {
	ID            string          `gorm:"primaryKey;size:36" json:"bid_id"`
	AuctionItemID string          `gorm:"size:36;index;not null" json:"item_id"`
	UserID        string          `gorm:"size:36;index;not null" json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

// Item is a catalog product sold at a fixed price
type Item struct {
	ID          string          `gorm:"primaryKey;size:36" json:"item_id"`
	SellerID    string          `gorm:"size:36;index;not null" json:"seller_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"size:64" json:"category"`
	Price       decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Cart holds a user's line items until checkout
type Cart struct {
	ID        string     `gorm:"primaryKey;size:36"`
	UserID    string     `gorm:"size:36;uniqueIndex;not null"`
	Items     []CartItem `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
}

// CartItem stores the price at the time the item was added
type CartItem struct {
	ID       string          `gorm:"primaryKey;size:36"`
	CartID   string          `gorm:"size:36;uniqueIndex:idx_cart_item;not null"`
	ItemID   string          `gorm:"size:36;uniqueIndex:idx_cart_item;not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
}

// CartLine is a cart item joined with its catalog row, as read back for checkout.
type CartLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	SellerID string          `json:"seller_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// LineTotal is quantity times the snapshot price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotal sums the line totals of a cart
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Payment rails
const (
	RailWallet   = "wallet"
	RailExternal = "external"
)

// Transaction is a committed sale; immutable once created.
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:36" json:"transaction_id"`
	UserID      string          `gorm:"size:36;index;not null" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"total_amount"`
	PaymentRail string          `gorm:"size:16;not null" json:"payment_rail"`
	PaymentRef  string          `gorm:"size:128" json:"payment_ref"`
	SaleItems   []SaleItem      `gorm:"foreignKey:TransactionID" json:"sale_items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleItem is one line of a committed sale
type SaleItem struct {
	ID            string          `gorm:"primaryKey;size:36" json:"sale_item_id"`
	TransactionID string          `gorm:"size:36;index;not null" json:"transaction_id"`
	ItemID        string          `gorm:"size:36;index;not null" json:"item_id"`
	SellerID      string          `gorm:"size:36;index;not null" json:"seller_id"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"price"`
}

// PendingTransaction links a signed token to a wallet debit awaiting settlement.
type PendingTransaction struct {
	TransactionID string          `gorm:"primaryKey;size:64"`
	UserID        string          `gorm:"size:36;index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt     time.Time
}

// Payment purposes
const (
	PurposeCart    = "cart"
	PurposeDeposit = "deposit"
)

// PaymentIntent binds a single-use note to the user and amount it was issued for.
// Amount is in the asset's minor units.
type PaymentIntent struct {
	Note      string `gorm:"primaryKey;size:255"`
	UserID    string `gorm:"size:36;index;not null"`
	Purpose   string `gorm:"size:16;not null"`
	Recipient string `gorm:"size:128;not null"`
	AssetID   uint64 `gorm:"not null"`
	Amount    uint64 `gorm:"not null"`
	CreatedAt time.Time
}

// PaymentClaim is a confirmed external transfer awaiting settlement.
// Amount is in the asset's minor units.
type PaymentClaim struct {
	TxID           string `gorm:"primaryKey;size:128"`
	UserID         string `gorm:"size:36;index;not null"`
	Purpose        string `gorm:"size:16;not null"`
	Note           string `gorm:"size:255;uniqueIndex;not null"`
	Recipient      string `gorm:"size:128;not null"`
	AssetID        uint64 `gorm:"not null"`
	Amount         uint64 `gorm:"not null"`
	ConfirmedRound uint64 `gorm:"not null"`
	Payload        datatypes.JSON
	ExpiresAt      time.Time `gorm:"index;not null"`
	ConsumedAt     *time.Time
	CreatedAt      time.Time
}

// Withdrawal records a completed payout to a user's external address
type Withdrawal struct {
	ID             string          `gorm:"primaryKey;size:36" json:"withdrawal_id"`
	UserID         string          `gorm:"size:36;index;not null" json:"user_id"`
	Address        string          `gorm:"size:128;not null" json:"address"`
	Amount         decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	ExternalTxID   string          `gorm:"size:128" json:"external_tx_id"`
	ConfirmedRound uint64          `json:"confirmed_round"`
	CreatedAt      time.Time       `json:"created_at"`
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&User{},
		&AuctionItem{},
		&Bid{},
		&Item{},
		&Cart{},
		&CartItem{},
		&Transaction{},
		&SaleItem{},
		&PendingTransaction{},
		&PaymentIntent{},
		&PaymentClaim{},
		&Withdrawal{},
	}
}
