package repository

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/shoperrors"

	"gorm.io/gorm/clause"
)

// CreateAuctionItem inserts a new auction item
func (r *GormRepo) CreateAuctionItem(ctx context.Context, item *models.AuctionItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("repository: failed to create auction item %s: %w", item.ID, err)
	}
	return nil
}

// GetAuctionItem returns the auction item with the given id
func (r *GormRepo) GetAuctionItem(ctx context.Context, itemID string) (models.AuctionItem, error) {
	var item models.AuctionItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if notFound(err) {
		return models.AuctionItem{}, fmt.Errorf("repository: %w - auction item %s", shoperrors.ErrItemNotFound, itemID)
	}
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("repository: failed to get auction item %s: %w", itemID, err)
	}
	return item, nil
}

// LockAuctionItem reads the auction item and holds a row lock on it until the
// enclosing transaction ends, so bids on the same item run one at a time.
func (r *GormRepo) LockAuctionItem(ctx context.Context, itemID string) (models.AuctionItem, error) {
	var item models.AuctionItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "id = ?", itemID).Error
	if notFound(err) {
		return models.AuctionItem{}, fmt.Errorf("repository: %w - auction item %s", shoperrors.ErrItemNotFound, itemID)
	}
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("repository: failed to lock auction item %s: %w", itemID, err)
	}
	return item, nil
}

// ListAuctionItems returns every auction item, soonest start first
func (r *GormRepo) ListAuctionItems(ctx context.Context) ([]models.AuctionItem, error) {
	var items []models.AuctionItem
	if err := r.db.WithContext(ctx).Order("starting_time ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("repository: failed to list auction items: %w", err)
	}
	return items, nil
}

// ListAuctionItemsBySeller returns the auction items listed by one seller
func (r *GormRepo) ListAuctionItemsBySeller(ctx context.Context, sellerID string) ([]models.AuctionItem, error) {
	var items []models.AuctionItem
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list auction items of seller %s: %w", sellerID, err)
	}
	return items, nil
}

// RecordBidForItem appends a bid for an existing auction item
func (r *GormRepo) RecordBidForItem(ctx context.Context, bid *models.Bid) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuctionItem{}).Where("id = ?", bid.AuctionItemID).Count(&count).Error; err != nil {
		return fmt.Errorf("repository: failed to check auction item %s: %w", bid.AuctionItemID, err)
	}
	if count == 0 {
		return fmt.Errorf("repository: %w - auction item %s", shoperrors.ErrItemNotFound, bid.AuctionItemID)
	}

	if err := r.db.WithContext(ctx).Create(bid).Error; err != nil {
		return fmt.Errorf("repository: failed to record bid %s: %w", bid.ID, err)
	}
	return nil
}

// GetBidsByItem returns the bid history of an item, newest first
func (r *GormRepo) GetBidsByItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).
		Where("auction_item_id = ?", itemID).
		Order("created_at DESC, amount DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get bids for item %s: %w", itemID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("repository: %w - item %s", shoperrors.ErrNoBids, itemID)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid of an item. On equal amounts the
// earliest bid wins.
func (r *GormRepo) GetWinningBid(ctx context.Context, itemID string) (models.Bid, error) {
	var bid models.Bid
	err := r.db.WithContext(ctx).
		Where("auction_item_id = ?", itemID).
		Order("amount DESC, created_at ASC").
		First(&bid).Error
	if notFound(err) {
		return models.Bid{}, fmt.Errorf("repository: %w - item %s", shoperrors.ErrNoBids, itemID)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("repository: failed to get winning bid for item %s: %w", itemID, err)
	}
	return bid, nil
}

// GetItemsByUser returns the auction items a user has bid on
func (r *GormRepo) GetItemsByUser(ctx context.Context, userID string) ([]models.AuctionItem, error) {
	var items []models.AuctionItem
	bidItems := r.db.Model(&models.Bid{}).Select("auction_item_id").Where("user_id = ?", userID)
	err := r.db.WithContext(ctx).
		Where("id IN (?)", bidItems).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get items for user %s: %w", userID, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("repository: %w - user %s", shoperrors.ErrUserNoBids, userID)
	}
	return items, nil
}
