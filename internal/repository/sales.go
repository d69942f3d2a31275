package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/shoperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateTransaction inserts a committed sale together with its sale items
func (r *GormRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("repository: failed to create transaction %s: %w", txn.ID, err)
	}
	return nil
}

// CreatePendingTransaction stores the row backing a wallet-rail token
func (r *GormRepo) CreatePendingTransaction(ctx context.Context, pending *models.PendingTransaction) error {
	if err := r.db.WithContext(ctx).Create(pending).Error; err != nil {
		return fmt.Errorf("repository: failed to create pending transaction %s: %w", pending.TransactionID, err)
	}
	return nil
}

// GetPendingTransaction returns the pending row for transactionID
func (r *GormRepo) GetPendingTransaction(ctx context.Context, transactionID string) (models.PendingTransaction, error) {
	var pending models.PendingTransaction
	err := r.db.WithContext(ctx).First(&pending, "transaction_id = ?", transactionID).Error
	if notFound(err) {
		return models.PendingTransaction{}, fmt.Errorf("repository: %w - %s", shoperrors.ErrTransactionNotFound, transactionID)
	}
	if err != nil {
		return models.PendingTransaction{}, fmt.Errorf("repository: failed to get pending transaction %s: %w", transactionID, err)
	}
	return pending, nil
}

// DeletePendingTransaction deletes the pending row matching all three fields.
// Exactly one row must go away; anything else fails with ErrTransactionNotFound.
func (r *GormRepo) DeletePendingTransaction(ctx context.Context, transactionID, userID string, amount decimal.Decimal) error {
	pending, err := r.GetPendingTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if pending.UserID != userID || !pending.Amount.Equal(amount) {
		return fmt.Errorf("repository: %w - %s does not match user or amount", shoperrors.ErrTransactionNotFound, transactionID)
	}

	res := r.db.WithContext(ctx).
		Where("transaction_id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.PendingTransaction{})
	if res.Error != nil {
		return fmt.Errorf("repository: failed to delete pending transaction %s: %w", transactionID, res.Error)
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("repository: %w - %s", shoperrors.ErrTransactionNotFound, transactionID)
	}
	return nil
}

// ListPendingBefore returns pending rows created before cutoff, oldest first
func (r *GormRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.PendingTransaction, error) {
	var pending []models.PendingTransaction
	err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list pending transactions: %w", err)
	}
	return pending, nil
}

// CreatePaymentIntent stores a freshly issued payment note
func (r *GormRepo) CreatePaymentIntent(ctx context.Context, intent *models.PaymentIntent) error {
	if err := r.db.WithContext(ctx).Create(intent).Error; err != nil {
		return fmt.Errorf("repository: failed to create payment intent for user %s: %w", intent.UserID, err)
	}
	return nil
}

// GetPaymentIntent returns the intent a note was issued for
func (r *GormRepo) GetPaymentIntent(ctx context.Context, note string) (models.PaymentIntent, error) {
	var intent models.PaymentIntent
	err := r.db.WithContext(ctx).First(&intent, "note = ?", note).Error
	if notFound(err) {
		return models.PaymentIntent{}, fmt.Errorf("repository: %w - note %s", shoperrors.ErrIntentNotFound, note)
	}
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("repository: failed to get payment intent %s: %w", note, err)
	}
	return intent, nil
}

// CreatePaymentClaim records a confirmed external transfer. A txid or note
// that was already recorded fails with ErrPaymentAlreadyUsed.
func (r *GormRepo) CreatePaymentClaim(ctx context.Context, claim *models.PaymentClaim) error {
	err := r.db.WithContext(ctx).Create(claim).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("repository: %w - tx %s note %s", shoperrors.ErrPaymentAlreadyUsed, claim.TxID, claim.Note)
	}
	if err != nil {
		return fmt.Errorf("repository: failed to record payment claim %s: %w", claim.TxID, err)
	}
	return nil
}

// GetPaymentClaim returns the claim recorded for txID
func (r *GormRepo) GetPaymentClaim(ctx context.Context, txID string) (models.PaymentClaim, error) {
	var claim models.PaymentClaim
	err := r.db.WithContext(ctx).First(&claim, "tx_id = ?", txID).Error
	if notFound(err) {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - tx %s", shoperrors.ErrPaymentNotConfirmed, txID)
	}
	if err != nil {
		return models.PaymentClaim{}, fmt.Errorf("repository: failed to get payment claim %s: %w", txID, err)
	}
	return claim, nil
}

// ConsumePaymentClaim marks the user's unexpired claim for txID as used.
func (r *GormRepo) ConsumePaymentClaim(ctx context.Context, userID, txID, purpose string, now time.Time) (models.PaymentClaim, error) {
	claim, err := r.GetPaymentClaim(ctx, txID)
	if err != nil {
		return models.PaymentClaim{}, err
	}
	if claim.UserID != userID {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - tx %s belongs to another user", shoperrors.ErrPaymentNotConfirmed, txID)
	}
	if claim.Purpose != purpose {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - tx %s was paid for %s", shoperrors.ErrPaymentNotConfirmed, txID, claim.Purpose)
	}
	if claim.ConsumedAt != nil {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - tx %s", shoperrors.ErrPaymentAlreadyUsed, txID)
	}
	if !now.Before(claim.ExpiresAt) {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - claim for tx %s expired", shoperrors.ErrPaymentNotConfirmed, txID)
	}

	res := r.db.WithContext(ctx).
		Model(&models.PaymentClaim{}).
		Where("tx_id = ? AND consumed_at IS NULL", txID).
		Update("consumed_at", now)
	if res.Error != nil {
		return models.PaymentClaim{}, fmt.Errorf("repository: failed to consume payment claim %s: %w", txID, res.Error)
	}
	if res.RowsAffected != 1 {
		return models.PaymentClaim{}, fmt.Errorf("repository: %w - tx %s", shoperrors.ErrPaymentAlreadyUsed, txID)
	}
	claim.ConsumedAt = &now
	return claim, nil
}

// FindOpenPaymentClaim returns the oldest unconsumed, unexpired claim of the
// user for purpose and exactly amount minor units.
func (r *GormRepo) FindOpenPaymentClaim(ctx context.Context, userID, purpose string, amount uint64, now time.Time) (models.PaymentClaim, error) {
	var claims []models.PaymentClaim
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ? AND amount = ? AND consumed_at IS NULL", userID, purpose, amount).
		Order("created_at ASC").
		Find(&claims).Error
	if err != nil {
		return models.PaymentClaim{}, fmt.Errorf("repository: failed to find payment claim for user %s: %w", userID, err)
	}
	for _, claim := range claims {
		if now.Before(claim.ExpiresAt) {
			return claim, nil
		}
	}
	return models.PaymentClaim{}, fmt.Errorf("repository: %w - no open claim of %d for user %s", shoperrors.ErrPaymentNotConfirmed, amount, userID)
}
