package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// Queries defines every read and write the shop core performs against the store.
// The same set is available directly on ShopDB and inside WithinTransaction.
type Queries interface {
	// Ledger
	GetUser(ctx context.Context, userID string) (models.User, error)
	AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error)
	SetAddress(ctx context.Context, userID, address string) error
	CreateUser(ctx context.Context, user *models.User) error

	// Auctions and bids
	CreateAuctionItem(ctx context.Context, item *models.AuctionItem) error
	GetAuctionItem(ctx context.Context, itemID string) (models.AuctionItem, error)
	LockAuctionItem(ctx context.Context, itemID string) (models.AuctionItem, error)
	ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error)
	ListAuctionItemsBySeller(ctx context.Context, sellerID string) ([]models.AuctionItem, error)
	RecordBidForItem(ctx context.Context, bid *models.Bid) error
	GetBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, itemID string) (models.Bid, error)
	GetItemsByUser(ctx context.Context, userID string) ([]models.AuctionItem, error)

	// Catalog
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	DecrementStock(ctx context.Context, itemID string, quantity int) error

	// Cart
	GetOrCreateCart(ctx context.Context, userID string) (models.Cart, error)
	AddCartItem(ctx context.Context, cartID, itemID string, quantity int, price decimal.Decimal) error
	SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, userID, itemID string) error
	GetCartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	DeleteCart(ctx context.Context, userID string) error

	// Sales
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// Pending wallet debits
	CreatePendingTransaction(ctx context.Context, pending *models.PendingTransaction) error
	GetPendingTransaction(ctx context.Context, transactionID string) (models.PendingTransaction, error)
	DeletePendingTransaction(ctx context.Context, transactionID, userID string, amount decimal.Decimal) error
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.PendingTransaction, error)

	// External payments
	CreatePaymentIntent(ctx context.Context, intent *models.PaymentIntent) error
	GetPaymentIntent(ctx context.Context, note string) (models.PaymentIntent, error)
	CreatePaymentClaim(ctx context.Context, claim *models.PaymentClaim) error
	GetPaymentClaim(ctx context.Context, txID string) (models.PaymentClaim, error)
	ConsumePaymentClaim(ctx context.Context, userID, txID, purpose string, now time.Time) (models.PaymentClaim, error)
	FindOpenPaymentClaim(ctx context.Context, userID, purpose string, amount uint64, now time.Time) (models.PaymentClaim, error)

	// Withdrawals
	CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error
}

// ShopDB is the store used by the services. WithinTransaction runs fn as one
// all-or-nothing unit: any error returned by fn rolls back every step.
type ShopDB interface {
	Queries
	WithinTransaction(ctx context.Context, fn func(q Queries) error) error
}

// Options tunes transaction behaviour.
type Options struct {
	Serializable bool
	MaxAttempts  int
}

// GormRepo is the gorm implementation of ShopDB
type GormRepo struct {
	db   *gorm.DB
	opts Options
	inTx bool
}

// NewGormRepo creates a new repository on top of db
func NewGormRepo(db *gorm.DB, opts Options) *GormRepo {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &GormRepo{db: db, opts: opts}
}

// WithinTransaction executes fn inside a database transaction, retrying the
// whole unit when the database reports a serialization failure or deadlock.
func (r *GormRepo) WithinTransaction(ctx context.Context, fn func(q Queries) error) error {
	if r.inTx {
		return fn(r)
	}

	var txOpts []*sql.TxOptions
	if r.opts.Serializable {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	var err error
	for attempt := 1; attempt <= r.opts.MaxAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&GormRepo{db: tx, opts: r.opts, inTx: true})
		}, txOpts...)
		if err == nil || !isRetryable(err) {
			return err
		}
		utils.Warn("repository: retrying transaction", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
	}
	return fmt.Errorf("repository: transaction retries exhausted: %w", err)
}

// isRetryable reports serialization failures (40001) and deadlocks (40P01).
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
