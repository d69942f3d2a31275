package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens a private in-memory database with the full schema
func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return NewGormRepo(db, Options{MaxAttempts: 3})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedUser(t *testing.T, repo *GormRepo, id string, wallet string) {
	t.Helper()
	require.NoError(t, repo.CreateUser(context.Background(), &models.User{ID: id, Username: id, Wallet: dec(wallet)}))
}

func seedAuction(t *testing.T, repo *GormRepo, id string, startingPrice string) {
	t.Helper()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateAuctionItem(context.Background(), &models.AuctionItem{
		ID:            id,
		SellerID:      "seller",
		Title:         fmt.Sprintf("%s title", id),
		StartingPrice: dec(startingPrice),
		Stock:         1,
		StartingTime:  &start,
		Duration:      3600,
	}))
}

func seedItem(t *testing.T, repo *GormRepo, id, sellerID, price string, stock int) {
	t.Helper()
	require.NoError(t, repo.CreateItem(context.Background(), &models.Item{
		ID:       id,
		SellerID: sellerID,
		Name:     fmt.Sprintf("%s name", id),
		Price:    dec(price),
		Stock:    stock,
	}))
}

func newBid(id, itemID, userID, amount string, createdAt time.Time) *models.Bid {
	return &models.Bid{
		ID:            id,
		AuctionItemID: itemID,
		UserID:        userID,
		Amount:        dec(amount),
		CreatedAt:     createdAt,
	}
}

func balanceOf(t *testing.T, repo *GormRepo, userID string) decimal.Decimal {
	t.Helper()
	user, err := repo.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return user.Wallet
}

// Test AdjustBalance
func TestGormRepo_AdjustBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      string
		delta       string
		wantBalance string
		wantErr     error
	}{
		{name: "credit", userID: "user1", delta: "25.50", wantBalance: "125.50"},
		{name: "debit", userID: "user1", delta: "-40", wantBalance: "60"},
		{name: "debit_whole_balance", userID: "user1", delta: "-100", wantBalance: "0"},
		{name: "overdraft", userID: "user1", delta: "-100.01", wantBalance: "100", wantErr: shoperrors.ErrInsufficientFunds},
		{name: "unknown_user", userID: "ghost", delta: "10", wantErr: shoperrors.ErrUserNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newTestRepo(t)
			seedUser(t, repo, "user1", "100")

			balance, err := repo.AdjustBalance(ctx, tc.userID, dec(tc.delta))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				if tc.userID == "user1" {
					require.True(t, balanceOf(t, repo, "user1").Equal(dec(tc.wantBalance)))
				}
				return
			}
			require.NoError(t, err)
			require.True(t, balance.Equal(dec(tc.wantBalance)), "got %s", balance)
			require.True(t, balanceOf(t, repo, "user1").Equal(dec(tc.wantBalance)))
		})
	}

	t.Run("concurrent_debits_never_overdraw", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		seedUser(t, repo, "user1", "100")

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.AdjustBalance(ctx, "user1", dec("-1"))
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
					return
				}
				require.ErrorIs(t, err, shoperrors.ErrInsufficientFunds)
			}()
		}
		wg.Wait()

		require.Equal(t, 100, succeeded)
		require.True(t, balanceOf(t, repo, "user1").IsZero())
	})
}

// Test WithinTransaction
func TestGormRepo_WithinTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("error_rolls_back_every_step", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		seedUser(t, repo, "user1", "100")
		seedUser(t, repo, "user2", "10")

		err := repo.WithinTransaction(ctx, func(q Queries) error {
			if _, err := q.AdjustBalance(ctx, "user1", dec("50")); err != nil {
				return err
			}
			_, err := q.AdjustBalance(ctx, "user2", dec("-20"))
			return err
		})
		require.ErrorIs(t, err, shoperrors.ErrInsufficientFunds)
		require.True(t, balanceOf(t, repo, "user1").Equal(dec("100")))
		require.True(t, balanceOf(t, repo, "user2").Equal(dec("10")))
	})

	t.Run("commit_applies_every_step", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		seedUser(t, repo, "user1", "100")
		seedUser(t, repo, "user2", "10")

		err := repo.WithinTransaction(ctx, func(q Queries) error {
			if _, err := q.AdjustBalance(ctx, "user1", dec("-30")); err != nil {
				return err
			}
			_, err := q.AdjustBalance(ctx, "user2", dec("30"))
			return err
		})
		require.NoError(t, err)
		require.True(t, balanceOf(t, repo, "user1").Equal(dec("70")))
		require.True(t, balanceOf(t, repo, "user2").Equal(dec("40")))
	})

	t.Run("nested_call_joins_outer_unit", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		seedUser(t, repo, "user1", "100")

		sentinel := errors.New("abort")
		err := repo.WithinTransaction(ctx, func(q Queries) error {
			inner := q.(ShopDB)
			require.NoError(t, inner.WithinTransaction(ctx, func(q Queries) error {
				_, err := q.AdjustBalance(ctx, "user1", dec("5"))
				return err
			}))
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		require.True(t, balanceOf(t, repo, "user1").Equal(dec("100")))
	})
}

// Test SetAddress
func TestGormRepo_SetAddress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	seedUser(t, repo, "user1", "0")

	require.NoError(t, repo.SetAddress(ctx, "user1", "ADDR1"))
	user, err := repo.GetUser(ctx, "user1")
	require.NoError(t, err)
	require.NotNil(t, user.Address)
	require.Equal(t, "ADDR1", *user.Address)

	require.ErrorIs(t, repo.SetAddress(ctx, "ghost", "ADDR1"), shoperrors.ErrUserNotFound)
}

// Test RecordBidForItem
func TestGormRepo_RecordBidForItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		bid     *models.Bid
		wantErr error
	}{
		{name: "valid_bid", bid: newBid("bid1", "item1", "user1", "100", now)},
		{name: "item_not_found", bid: newBid("bid2", "itemX", "user1", "50", now), wantErr: shoperrors.ErrItemNotFound},
		{name: "empty_itemID", bid: newBid("bid3", "", "user1", "50", now), wantErr: shoperrors.ErrItemNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newTestRepo(t)
			seedAuction(t, repo, "item1", "50")

			err := repo.RecordBidForItem(ctx, tc.bid)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			bids, err := repo.GetBidsByItem(ctx, tc.bid.AuctionItemID)
			require.NoError(t, err)
			require.Len(t, bids, 1)
			require.Equal(t, tc.bid.ID, bids[0].ID)
		})
	}
}

// Test GetBidsByItem
func TestGormRepo_GetBidsByItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	seedAuction(t, repo, "item1", "50")
	seedAuction(t, repo, "item2", "75")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid1", "item1", "user1", "100", base)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid2", "item1", "user2", "150", base.Add(time.Minute))))

	tests := []struct {
		name    string
		itemID  string
		wantIDs []string
		wantErr error
	}{
		{name: "newest_first", itemID: "item1", wantIDs: []string{"bid2", "bid1"}},
		{name: "existing_item_no_bids", itemID: "item2", wantErr: shoperrors.ErrNoBids},
		{name: "non_existing_item", itemID: "itemX", wantErr: shoperrors.ErrNoBids},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			bids, err := repo.GetBidsByItem(ctx, tc.itemID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(bids))
			for _, b := range bids {
				ids = append(ids, b.ID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}

// Test GetWinningBid
func TestGormRepo_GetWinningBid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	seedAuction(t, repo, "item1", "50")
	seedAuction(t, repo, "item2", "75")
	seedAuction(t, repo, "item5", "150")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid1", "item1", "user1", "100", base)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid2", "item1", "user2", "150.25", base.Add(time.Second))))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid-tie1", "item5", "userA", "200", base)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid-tie2", "item5", "userB", "200", base.Add(time.Second))))

	tests := []struct {
		name    string
		itemID  string
		wantID  string
		wantErr error
	}{
		{name: "existing_item_with_bids", itemID: "item1", wantID: "bid2"},
		{name: "tie_bids_first_wins", itemID: "item5", wantID: "bid-tie1"},
		{name: "existing_item_no_bids", itemID: "item2", wantErr: shoperrors.ErrNoBids},
		{name: "empty_itemID", itemID: "", wantErr: shoperrors.ErrNoBids},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			bid, err := repo.GetWinningBid(ctx, tc.itemID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantID, bid.ID)
		})
	}

	bid, err := repo.GetWinningBid(ctx, "item1")
	require.NoError(t, err)
	require.True(t, bid.Amount.Equal(dec("150.25")))
}

// Test GetItemsByUser
func TestGormRepo_GetItemsByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	seedAuction(t, repo, "item1", "50")
	seedAuction(t, repo, "item2", "75")
	seedAuction(t, repo, "item3", "10")

	now := time.Now().UTC()
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid1", "item1", "user1", "100", now)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid2", "item2", "user1", "80", now)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid3", "item1", "user1", "120", now)))
	require.NoError(t, repo.RecordBidForItem(ctx, newBid("bid4", "item3", "user2", "20", now)))

	items, err := repo.GetItemsByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "item1", items[0].ID)
	require.Equal(t, "item2", items[1].ID)

	_, err = repo.GetItemsByUser(ctx, "user-without-bids")
	require.ErrorIs(t, err, shoperrors.ErrUserNoBids)
}

// Test DecrementStock
func TestGormRepo_DecrementStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name      string
		itemID    string
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "partial", itemID: "item1", quantity: 2, wantStock: 3},
		{name: "all_remaining", itemID: "item1", quantity: 5, wantStock: 0},
		{name: "more_than_stock", itemID: "item1", quantity: 6, wantStock: 5, wantErr: shoperrors.ErrInsufficientStock},
		{name: "unknown_item", itemID: "itemX", quantity: 1, wantErr: shoperrors.ErrItemNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newTestRepo(t)
			seedItem(t, repo, "item1", "seller1", "10", 5)

			err := repo.DecrementStock(ctx, tc.itemID, tc.quantity)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tc.itemID == "item1" {
				item, err := repo.GetItem(ctx, "item1")
				require.NoError(t, err)
				require.Equal(t, tc.wantStock, item.Stock)
			}
		})
	}
}

// Test cart maintenance
func TestGormRepo_Cart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	seedItem(t, repo, "item1", "seller1", "10", 5)
	seedItem(t, repo, "item2", "seller2", "2.50", 1)

	cart, err := repo.GetOrCreateCart(ctx, "user1")
	require.NoError(t, err)
	again, err := repo.GetOrCreateCart(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, cart.ID, again.ID)

	require.NoError(t, repo.AddCartItem(ctx, cart.ID, "item1", 1, dec("10")))
	require.NoError(t, repo.AddCartItem(ctx, cart.ID, "item1", 2, dec("12")))
	require.NoError(t, repo.AddCartItem(ctx, cart.ID, "item2", 1, dec("2.50")))

	lines, err := repo.GetCartLines(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "item1", lines[0].ItemID)
	require.Equal(t, 3, lines[0].Quantity)
	require.True(t, lines[0].Price.Equal(dec("12")))
	require.Equal(t, "seller1", lines[0].SellerID)
	require.Equal(t, 5, lines[0].Stock)
	require.True(t, lines[0].LineTotal().Equal(dec("36")))

	require.NoError(t, repo.SetCartItemQuantity(ctx, "user1", "item2", 4))
	require.ErrorIs(t, repo.SetCartItemQuantity(ctx, "user1", "itemX", 1), shoperrors.ErrCartItemNotFound)
	require.ErrorIs(t, repo.SetCartItemQuantity(ctx, "user2", "item1", 1), shoperrors.ErrCartItemNotFound)

	require.NoError(t, repo.RemoveCartItem(ctx, "user1", "item2"))
	require.ErrorIs(t, repo.RemoveCartItem(ctx, "user1", "item2"), shoperrors.ErrCartItemNotFound)

	require.NoError(t, repo.DeleteCart(ctx, "user1"))
	lines, err = repo.GetCartLines(ctx, "user1")
	require.NoError(t, err)
	require.Empty(t, lines)
}

// Test pending transactions
func TestGormRepo_PendingTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	require.NoError(t, repo.CreatePendingTransaction(ctx, &models.PendingTransaction{
		TransactionID: "tx1",
		UserID:        "user1",
		Amount:        dec("50"),
	}))

	require.ErrorIs(t, repo.DeletePendingTransaction(ctx, "tx1", "user2", dec("50")), shoperrors.ErrTransactionNotFound)
	require.ErrorIs(t, repo.DeletePendingTransaction(ctx, "tx1", "user1", dec("49.99")), shoperrors.ErrTransactionNotFound)

	require.NoError(t, repo.DeletePendingTransaction(ctx, "tx1", "user1", dec("50.00")))
	require.ErrorIs(t, repo.DeletePendingTransaction(ctx, "tx1", "user1", dec("50")), shoperrors.ErrTransactionNotFound)

	_, err := repo.GetPendingTransaction(ctx, "tx1")
	require.ErrorIs(t, err, shoperrors.ErrTransactionNotFound)
}

// Test payment claims
func TestGormRepo_PaymentClaims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	newClaim := func(txID, userID, note string, amount uint64) *models.PaymentClaim {
		return &models.PaymentClaim{
			TxID:           txID,
			UserID:         userID,
			Purpose:        models.PurposeCart,
			Note:           note,
			Recipient:      "SHOP",
			AssetID:        7,
			Amount:         amount,
			ConfirmedRound: 10,
			ExpiresAt:      now.Add(15 * time.Minute),
			CreatedAt:      now,
		}
	}

	t.Run("duplicate_txid_or_note", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		require.NoError(t, repo.CreatePaymentClaim(ctx, newClaim("tx1", "user1", "order_a", 5000)))
		require.ErrorIs(t, repo.CreatePaymentClaim(ctx, newClaim("tx1", "user1", "order_b", 5000)), shoperrors.ErrPaymentAlreadyUsed)
		require.ErrorIs(t, repo.CreatePaymentClaim(ctx, newClaim("tx2", "user1", "order_a", 5000)), shoperrors.ErrPaymentAlreadyUsed)
	})

	t.Run("consume_once", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		require.NoError(t, repo.CreatePaymentClaim(ctx, newClaim("tx1", "user1", "order_a", 5000)))

		_, err := repo.ConsumePaymentClaim(ctx, "user2", "tx1", models.PurposeCart, now)
		require.ErrorIs(t, err, shoperrors.ErrPaymentNotConfirmed)

		claim, err := repo.ConsumePaymentClaim(ctx, "user1", "tx1", models.PurposeCart, now)
		require.NoError(t, err)
		require.NotNil(t, claim.ConsumedAt)

		_, err = repo.ConsumePaymentClaim(ctx, "user1", "tx1", models.PurposeCart, now)
		require.ErrorIs(t, err, shoperrors.ErrPaymentAlreadyUsed)

		_, err = repo.FindOpenPaymentClaim(ctx, "user1", models.PurposeCart, 5000, now)
		require.ErrorIs(t, err, shoperrors.ErrPaymentNotConfirmed)
	})

	t.Run("expired_claim_is_unusable", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		require.NoError(t, repo.CreatePaymentClaim(ctx, newClaim("tx1", "user1", "order_a", 5000)))

		later := now.Add(15 * time.Minute)
		_, err := repo.FindOpenPaymentClaim(ctx, "user1", models.PurposeCart, 5000, later)
		require.ErrorIs(t, err, shoperrors.ErrPaymentNotConfirmed)
		_, err = repo.ConsumePaymentClaim(ctx, "user1", "tx1", models.PurposeCart, later)
		require.ErrorIs(t, err, shoperrors.ErrPaymentNotConfirmed)
	})

	t.Run("find_open_matches_amount", func(t *testing.T) {
		t.Parallel()

		repo := newTestRepo(t)
		require.NoError(t, repo.CreatePaymentClaim(ctx, newClaim("tx1", "user1", "order_a", 4999)))
		require.NoError(t, repo.CreatePaymentClaim(ctx, newClaim("tx2", "user1", "order_b", 5000)))

		claim, err := repo.FindOpenPaymentClaim(ctx, "user1", models.PurposeCart, 5000, now)
		require.NoError(t, err)
		require.Equal(t, "tx2", claim.TxID)

		_, err = repo.FindOpenPaymentClaim(ctx, "user2", models.PurposeCart, 5000, now)
		require.ErrorIs(t, err, shoperrors.ErrPaymentNotConfirmed)
	})
}

// Test CreateTransaction
func TestGormRepo_CreateTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	txn := &models.Transaction{
		ID:          "txn1",
		UserID:      "buyer",
		TotalAmount: dec("25"),
		PaymentRail: models.RailWallet,
		SaleItems: []models.SaleItem{
			{ID: "s1", ItemID: "item1", SellerID: "seller1", Quantity: 2, Price: dec("10")},
			{ID: "s2", ItemID: "item2", SellerID: "seller2", Quantity: 1, Price: dec("5")},
		},
	}
	require.NoError(t, repo.CreateTransaction(ctx, txn))

	var saleItems []models.SaleItem
	require.NoError(t, repo.db.Where("transaction_id = ?", "txn1").Order("id").Find(&saleItems).Error)
	require.Len(t, saleItems, 2)
	require.Equal(t, "seller2", saleItems[1].SellerID)
}

// Test payment intents
func TestGormRepo_PaymentIntent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newTestRepo(t)
	require.NoError(t, repo.CreatePaymentIntent(ctx, &models.PaymentIntent{
		Note:      "order_1",
		UserID:    "user1",
		Purpose:   models.PurposeDeposit,
		Recipient: "SHOP",
		AssetID:   7,
		Amount:    1250,
	}))

	intent, err := repo.GetPaymentIntent(ctx, "order_1")
	require.NoError(t, err)
	require.Equal(t, "user1", intent.UserID)
	require.Equal(t, uint64(1250), intent.Amount)

	_, err = repo.GetPaymentIntent(ctx, "order_missing")
	require.ErrorIs(t, err, shoperrors.ErrIntentNotFound)
}
