package bidding

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/clock"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo  repository.ShopDB
	clock clock.Clock
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.ShopDB, clk clock.Clock) *BiddingService {
	if clk == nil {
		clk = clock.System()
	}
	return &BiddingService{
		repo:  repo,
		clock: clk,
	}
}

// AuctionSummary is an auction item with its derived state and current highest bid
type AuctionSummary struct {
	models.AuctionItem
	State      models.AuctionState `json:"state"`
	HighestBid *decimal.Decimal    `json:"highest_bid,omitempty"`
}

// PlaceBid validates and records a user's bid for an item. The previous top
// bidder is refunded and the new bidder debited in the same transaction as the
// bid insert, so a failed debit leaves every balance untouched.
func (s *BiddingService) PlaceBid(ctx context.Context, itemID, userID string, amount decimal.Decimal) (models.Bid, error) {
	if itemID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or userID", shoperrors.ErrInvalidRequest)
	}
	if !models.IsValidAmount(amount) {
		return models.Bid{}, fmt.Errorf("service: %w - bid amount %s", shoperrors.ErrInvalidAmount, amount)
	}

	var bid models.Bid
	err := s.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		item, err := q.LockAuctionItem(ctx, itemID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if state := item.StateAt(now); state != models.AuctionOngoing {
			return fmt.Errorf("service: %w - auction %s is %s", shoperrors.ErrAuctionClosed, itemID, state)
		}

		previous, hasPrevious, err := s.highestBid(ctx, q, itemID)
		if err != nil {
			return err
		}
		if err := validateBidAmount(amount, item.StartingPrice, previous, hasPrevious); err != nil {
			return err
		}

		if hasPrevious {
			if _, err := q.AdjustBalance(ctx, previous.UserID, previous.Amount); err != nil {
				return fmt.Errorf("service: failed to refund user %s: %w", previous.UserID, err)
			}
		}
		if _, err := q.AdjustBalance(ctx, userID, amount.Neg()); err != nil {
			return fmt.Errorf("service: failed to debit user %s: %w", userID, err)
		}

		bid = models.Bid{
			ID:            utils.GenerateID(),
			AuctionItemID: itemID,
			UserID:        userID,
			Amount:        amount,
			CreatedAt:     now,
		}
		return q.RecordBidForItem(ctx, &bid)
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on item %s by user %s: %w", itemID, userID, err)
	}

	return bid, nil
}

func (s *BiddingService) highestBid(ctx context.Context, q repository.Queries, itemID string) (models.Bid, bool, error) {
	bid, err := q.GetWinningBid(ctx, itemID)
	if errors.Is(err, shoperrors.ErrNoBids) {
		return models.Bid{}, false, nil
	}
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("service: failed to check winning bid: %w", err)
	}
	return bid, true, nil
}

// validateBidAmount requires the bid to beat both the starting price and the current highest bid
func validateBidAmount(amount, startingPrice decimal.Decimal, highest models.Bid, hasHighest bool) error {
	if amount.LessThanOrEqual(startingPrice) {
		return fmt.Errorf("service: %w - starting price is %s", shoperrors.ErrBidTooLow, startingPrice.StringFixed(models.MoneyScale))
	}
	if hasHighest && amount.LessThanOrEqual(highest.Amount) {
		return fmt.Errorf("service: %w - current highest bid is %s", shoperrors.ErrBidTooLow, highest.Amount.StringFixed(models.MoneyScale))
	}
	return nil
}

// GetBidsForItem returns all bids for a specific item
func (s *BiddingService) GetBidsForItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", shoperrors.ErrInvalidRequest)
	}

	bids, err := s.repo.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific item
func (s *BiddingService) GetWinningBid(ctx context.Context, itemID string) (models.Bid, error) {
	if itemID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty item ID", shoperrors.ErrInvalidRequest)
	}

	winningBid, err := s.repo.GetWinningBid(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for item %s: %w", itemID, err)
	}

	return winningBid, nil
}

// GetItemsByUser returns all auction items a user has placed bids on
func (s *BiddingService) GetItemsByUser(ctx context.Context, userID string) ([]models.AuctionItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", shoperrors.ErrInvalidRequest)
	}

	items, err := s.repo.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for user %s: %w", userID, err)
	}

	return items, nil
}

// ListAuctions returns auctions whose derived state equals state. An empty
// state returns every auction.
func (s *BiddingService) ListAuctions(ctx context.Context, state models.AuctionState) ([]AuctionSummary, error) {
	switch state {
	case "", models.AuctionUpcoming, models.AuctionOngoing, models.AuctionExpired:
	default:
		return nil, fmt.Errorf("service: %w - unknown auction state %q", shoperrors.ErrInvalidRequest, state)
	}

	items, err := s.repo.ListAuctionItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return s.summarize(ctx, items, state)
}

// ListAuctionsBySeller returns every auction listed by sellerID
func (s *BiddingService) ListAuctionsBySeller(ctx context.Context, sellerID string) ([]AuctionSummary, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", shoperrors.ErrInvalidRequest)
	}

	items, err := s.repo.ListAuctionItemsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions of seller %s: %w", sellerID, err)
	}
	return s.summarize(ctx, items, "")
}

func (s *BiddingService) summarize(ctx context.Context, items []models.AuctionItem, state models.AuctionState) ([]AuctionSummary, error) {
	now := s.clock.Now()
	summaries := make([]AuctionSummary, 0, len(items))
	for _, item := range items {
		current := item.StateAt(now)
		if state != "" && current != state {
			continue
		}

		summary := AuctionSummary{AuctionItem: item, State: current}
		highest, ok, err := s.highestBid(ctx, s.repo, item.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			summary.HighestBid = &highest.Amount
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
