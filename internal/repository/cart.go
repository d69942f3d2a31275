package repository

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateItem inserts a catalog item
func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("repository: failed to create item %s: %w", item.ID, err)
	}
	return nil
}

// GetItem returns the catalog item with the given id
func (r *GormRepo) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if notFound(err) {
		return models.Item{}, fmt.Errorf("repository: %w - item %s", shoperrors.ErrItemNotFound, itemID)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("repository: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// DecrementStock lowers an item's stock by quantity, refusing to go below zero
func (r *GormRepo) DecrementStock(ctx context.Context, itemID string, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND stock >= ?", itemID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("repository: failed to decrement stock of item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	if _, err := r.GetItem(ctx, itemID); err != nil {
		return err
	}
	return fmt.Errorf("repository: %w - item %s, requested %d", shoperrors.ErrInsufficientStock, itemID, quantity)
}

// GetOrCreateCart returns the user's cart, creating an empty one if needed
func (r *GormRepo) GetOrCreateCart(ctx context.Context, userID string) (models.Cart, error) {
	cart := models.Cart{ID: utils.GenerateID(), UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&cart).Error
	if err != nil {
		return models.Cart{}, fmt.Errorf("repository: failed to create cart for user %s: %w", userID, err)
	}

	var existing models.Cart
	if err := r.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err != nil {
		return models.Cart{}, fmt.Errorf("repository: failed to read cart of user %s: %w", userID, err)
	}
	return existing, nil
}

// AddCartItem adds quantity of an item to a cart. An existing line keeps
// accumulating quantity and takes the newer price snapshot.
func (r *GormRepo) AddCartItem(ctx context.Context, cartID, itemID string, quantity int, price decimal.Decimal) error {
	line := models.CartItem{
		ID:       utils.GenerateID(),
		CartID:   cartID,
		ItemID:   itemID,
		Quantity: quantity,
		Price:    price,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
				"price":    gorm.Expr("excluded.price"),
			}),
		}).
		Create(&line).Error
	if err != nil {
		return fmt.Errorf("repository: failed to add item %s to cart %s: %w", itemID, cartID, err)
	}
	return nil
}

func (r *GormRepo) cartOf(userID string) *gorm.DB {
	return r.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", userID)
}

// SetCartItemQuantity overwrites the quantity of one cart line
func (r *GormRepo) SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id IN (?) AND item_id = ?", r.cartOf(userID), itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("repository: failed to update cart item %s of user %s: %w", itemID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repository: %w - item %s, user %s", shoperrors.ErrCartItemNotFound, itemID, userID)
	}
	return nil
}

// RemoveCartItem deletes one cart line
func (r *GormRepo) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("cart_id IN (?) AND item_id = ?", r.cartOf(userID), itemID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("repository: failed to remove cart item %s of user %s: %w", itemID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repository: %w - item %s, user %s", shoperrors.ErrCartItemNotFound, itemID, userID)
	}
	return nil
}

// GetCartLines reads the user's cart lines joined with the live catalog rows.
// An empty slice means the cart is empty or does not exist.
func (r *GormRepo) GetCartLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.item_id, i.name, i.seller_id, ci.quantity, ci.price, i.stock").
		Joins("JOIN carts c ON c.id = ci.cart_id").
		Joins("JOIN items i ON i.id = ci.item_id").
		Where("c.user_id = ?", userID).
		Order("ci.item_id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read cart of user %s: %w", userID, err)
	}
	return lines, nil
}

// DeleteCart removes the cart and all of its lines
func (r *GormRepo) DeleteCart(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("cart_id IN (?)", r.cartOf(userID)).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("repository: failed to delete cart items of user %s: %w", userID, err)
	}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
		return fmt.Errorf("repository: failed to delete cart of user %s: %w", userID, err)
	}
	return nil
}
