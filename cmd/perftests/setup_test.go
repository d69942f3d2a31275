package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	bidding "storefront/internal/biddingService"
	"storefront/internal/clock"
	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// benchStart pins every auction window so no benchmark outlives one
var benchStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	// per-operation info logs would dominate the measurements
	logrus.SetLevel(logrus.WarnLevel)
}

// newStore opens a private in-memory SQLite store with numUsers funded users
func newStore(b *testing.B, numUsers int) *repository.GormRepo {
	b.Helper()

	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID()),
	})
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	b.Cleanup(func() { _ = database.Close(db) })
	if err := database.Migrate(db); err != nil {
		b.Fatalf("failed to migrate store: %v", err)
	}

	repo := repository.NewGormRepo(db, repository.Options{MaxAttempts: 5})
	for i := 0; i < numUsers; i++ {
		addUser(b, repo, userID(i))
	}
	return repo
}

func userID(i int) string {
	return fmt.Sprintf("user_%d", i)
}

func addUser(b *testing.B, repo *repository.GormRepo, id string) {
	b.Helper()
	err := repo.CreateUser(context.Background(), &models.User{
		ID:       id,
		Username: id,
		Wallet:   decimal.NewFromInt(1_000_000_000),
	})
	if err != nil {
		b.Fatalf("failed to create user %s: %v", id, err)
	}
}

func addAuction(b *testing.B, repo *repository.GormRepo, id string, startingPrice int64) {
	b.Helper()
	start := benchStart
	err := repo.CreateAuctionItem(context.Background(), &models.AuctionItem{
		ID:            id,
		SellerID:      "seller",
		Title:         id,
		Description:   "benchmark auction",
		StartingPrice: decimal.NewFromInt(startingPrice),
		Stock:         1,
		StartingTime:  &start,
		Duration:      int64((24 * time.Hour).Seconds()),
	})
	if err != nil {
		b.Fatalf("failed to create auction %s: %v", id, err)
	}
}

// newBiddingService returns a service whose clock sits inside every auction window
func newBiddingService(repo repository.ShopDB) *bidding.BiddingService {
	return bidding.NewBiddingService(repo, clock.NewFake(benchStart.Add(time.Minute)))
}
