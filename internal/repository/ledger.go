package repository

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/shoperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// CreateUser inserts a new user row
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("repository: failed to create user %s: %w", user.ID, err)
	}
	return nil
}

// GetUser returns the user with the given id
func (r *GormRepo) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if notFound(err) {
		return models.User{}, fmt.Errorf("repository: %w - user %s", shoperrors.ErrUserNotFound, userID)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("repository: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// AdjustBalance applies delta to the user's wallet and returns the new balance.
// A positive delta credits, a negative one debits. The user row is locked for
// the rest of the enclosing transaction.
func (r *GormRepo) AdjustBalance(ctx context.Context, userID string, delta decimal.Decimal) (decimal.Decimal, error) {
	if !r.inTx {
		var balance decimal.Decimal
		err := r.WithinTransaction(ctx, func(q Queries) error {
			var err error
			balance, err = q.AdjustBalance(ctx, userID, delta)
			return err
		})
		return balance, err
	}

	var user models.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "id = ?", userID).Error
	if notFound(err) {
		return decimal.Zero, fmt.Errorf("repository: %w - user %s", shoperrors.ErrUserNotFound, userID)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to lock user %s: %w", userID, err)
	}

	balance := user.Wallet.Add(delta)
	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("repository: %w - balance %s, debit %s", shoperrors.ErrInsufficientFunds, user.Wallet.StringFixed(models.MoneyScale), delta.Neg().StringFixed(models.MoneyScale))
	}

	err = r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("wallet", balance).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to update wallet of user %s: %w", userID, err)
	}
	return balance, nil
}

// SetAddress stores the user's external payout address
func (r *GormRepo) SetAddress(ctx context.Context, userID, address string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("address", address)
	if res.Error != nil {
		return fmt.Errorf("repository: failed to set address of user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repository: %w - user %s", shoperrors.ErrUserNotFound, userID)
	}
	return nil
}

// CreateWithdrawal records a completed payout
func (r *GormRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	if err := r.db.WithContext(ctx).Create(withdrawal).Error; err != nil {
		return fmt.Errorf("repository: failed to record withdrawal for user %s: %w", withdrawal.UserID, err)
	}
	return nil
}
