package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const seedSellerID = "seller-1"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, catalog items and auctions for local runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		repo := repository.NewGormRepo(db, repository.Options{MaxAttempts: cfg.DBMaxTxRetries})
		return seed(cmd.Context(), repo, time.Now().UTC())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seed inserts the demo data once; a second run is a no-op
func seed(ctx context.Context, repo repository.ShopDB, now time.Time) error {
	_, err := repo.GetUser(ctx, seedSellerID)
	if err == nil {
		utils.Info("demo data already present", map[string]any{"seller_id": seedSellerID})
		return nil
	}
	if !errors.Is(err, shoperrors.ErrUserNotFound) {
		return fmt.Errorf("seed: failed to look up %s: %w", seedSellerID, err)
	}

	users := []models.User{
		{ID: seedSellerID, Username: "seller", Wallet: decimal.Zero},
		{ID: "user-1", Username: "alice", Wallet: decimal.NewFromInt(500)},
		{ID: "user-2", Username: "bob", Wallet: decimal.NewFromInt(250)},
	}
	items := []models.Item{
		{ID: "item-1", SellerID: seedSellerID, Name: "Desk lamp", Category: "home", Price: decimal.RequireFromString("24.99"), Stock: 10},
		{ID: "item-2", SellerID: seedSellerID, Name: "Coffee mug", Category: "kitchen", Price: decimal.RequireFromString("8.50"), Stock: 40},
		{ID: "item-3", SellerID: seedSellerID, Name: "Notebook", Category: "office", Price: decimal.RequireFromString("3.20"), Stock: 100},
	}
	week := int64((7 * 24 * time.Hour).Seconds())
	later := now.Add(24 * time.Hour)
	auctions := []models.AuctionItem{
		{ID: "auction-1", SellerID: seedSellerID, Title: "Vintage camera", Category: "collectibles", StartingPrice: decimal.NewFromInt(100), Stock: 1, StartingTime: &now, Duration: week},
		{ID: "auction-2", SellerID: seedSellerID, Title: "Signed poster", Category: "collectibles", StartingPrice: decimal.NewFromInt(200), Stock: 1, StartingTime: &now, Duration: week},
		{ID: "auction-3", SellerID: seedSellerID, Title: "Mechanical watch", Category: "accessories", StartingPrice: decimal.NewFromInt(150), Stock: 1, StartingTime: &later, Duration: week},
	}

	err = repo.WithinTransaction(ctx, func(q repository.Queries) error {
		for i := range users {
			if err := q.CreateUser(ctx, &users[i]); err != nil {
				return err
			}
		}
		for i := range items {
			if err := q.CreateItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		for i := range auctions {
			if err := q.CreateAuctionItem(ctx, &auctions[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: failed to insert demo data: %w", err)
	}

	utils.Info("demo data seeded", map[string]any{
		"users":    len(users),
		"items":    len(items),
		"auctions": len(auctions),
	})
	return nil
}
