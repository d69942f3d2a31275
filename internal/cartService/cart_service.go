package cart

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
)

// View is a cart as shown to its owner
type View struct {
	UserID string            `json:"user_id"`
	Lines  []models.CartLine `json:"lines"`
	Total  decimal.Decimal   `json:"total"`
}

// CartService maintains the per-user cart read by checkout
type CartService struct {
	repo repository.ShopDB
}

// NewCartService creates a new CartService instance
func NewCartService(repo repository.ShopDB) *CartService {
	return &CartService{repo: repo}
}

// AddItem puts quantity units of itemID in the user's cart at the item's
// current price. Adding an item already in the cart merges the quantities.
func (s *CartService) AddItem(ctx context.Context, userID, itemID string, quantity int) (View, error) {
	if userID == "" || itemID == "" {
		return View{}, fmt.Errorf("service: %w - userID and itemID are required", shoperrors.ErrInvalidRequest)
	}
	if quantity < 1 {
		return View{}, fmt.Errorf("service: %w - quantity %d", shoperrors.ErrInvalidRequest, quantity)
	}

	err := s.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		item, err := q.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		cart, err := q.GetOrCreateCart(ctx, userID)
		if err != nil {
			return err
		}
		return q.AddCartItem(ctx, cart.ID, item.ID, quantity, item.Price)
	})
	if err != nil {
		return View{}, fmt.Errorf("service: failed to add item %s to cart of user %s: %w", itemID, userID, err)
	}

	utils.Info("cart item added", map[string]any{
		"user_id":  userID,
		"item_id":  itemID,
		"quantity": quantity,
	})
	return s.GetCart(ctx, userID)
}

// UpdateQuantity sets the quantity of a line already in the cart
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (View, error) {
	if userID == "" || itemID == "" {
		return View{}, fmt.Errorf("service: %w - userID and itemID are required", shoperrors.ErrInvalidRequest)
	}
	if quantity < 1 {
		return View{}, fmt.Errorf("service: %w - quantity %d", shoperrors.ErrInvalidRequest, quantity)
	}

	if err := s.repo.SetCartItemQuantity(ctx, userID, itemID, quantity); err != nil {
		return View{}, fmt.Errorf("service: failed to update item %s in cart of user %s: %w", itemID, userID, err)
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem drops a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (View, error) {
	if userID == "" || itemID == "" {
		return View{}, fmt.Errorf("service: %w - userID and itemID are required", shoperrors.ErrInvalidRequest)
	}

	if err := s.repo.RemoveCartItem(ctx, userID, itemID); err != nil {
		return View{}, fmt.Errorf("service: failed to remove item %s from cart of user %s: %w", itemID, userID, err)
	}
	return s.GetCart(ctx, userID)
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}
	if err := s.repo.DeleteCart(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to clear cart of user %s: %w", userID, err)
	}
	utils.Info("cart cleared", map[string]any{"user_id": userID})
	return nil
}

// GetCart returns the cart lines with their snapshot prices and live stock
func (s *CartService) GetCart(ctx context.Context, userID string) (View, error) {
	if userID == "" {
		return View{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}

	lines, err := s.repo.GetCartLines(ctx, userID)
	if err != nil {
		return View{}, fmt.Errorf("service: failed to read cart of user %s: %w", userID, err)
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return View{UserID: userID, Lines: lines, Total: models.CartTotal(lines)}, nil
}
