package wallet

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/clients/withdrawal"
	"storefront/internal/clock"
	"storefront/internal/models"
	payment "storefront/internal/paymentService"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet_service.go -destination=mock_gateway.go -package=wallet

// Gateway sends funds from the shop to an external address
type Gateway interface {
	Withdraw(ctx context.Context, address string, amount decimal.Decimal) (withdrawal.Receipt, error)
}

// Wallet is the balance and payout address of a user
type Wallet struct {
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
	Address string          `json:"address,omitempty"`
}

// WalletService manages user balances outside of bidding and checkout
type WalletService struct {
	repo          repository.ShopDB
	gateway       Gateway
	assetDecimals int32
	clock         clock.Clock
}

// NewWalletService creates a new WalletService instance
func NewWalletService(repo repository.ShopDB, gateway Gateway, assetDecimals int32, clk clock.Clock) *WalletService {
	if clk == nil {
		clk = clock.System()
	}
	return &WalletService{
		repo:          repo,
		gateway:       gateway,
		assetDecimals: assetDecimals,
		clock:         clk,
	}
}

func toWallet(user models.User) Wallet {
	w := Wallet{UserID: user.ID, Balance: user.Wallet}
	if user.Address != nil {
		w.Address = *user.Address
	}
	return w
}

// GetWallet returns the user's balance and payout address
func (s *WalletService) GetWallet(ctx context.Context, userID string) (Wallet, error) {
	if userID == "" {
		return Wallet{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return Wallet{}, fmt.Errorf("service: failed to read wallet of user %s: %w", userID, err)
	}
	return toWallet(user), nil
}

// UpdateAddress sets the external address withdrawals are paid to
func (s *WalletService) UpdateAddress(ctx context.Context, userID, address string) (Wallet, error) {
	address = strings.TrimSpace(address)
	if userID == "" || address == "" {
		return Wallet{}, fmt.Errorf("service: %w - userID and address are required", shoperrors.ErrInvalidRequest)
	}

	if err := s.repo.SetAddress(ctx, userID, address); err != nil {
		return Wallet{}, fmt.Errorf("service: failed to set address of user %s: %w", userID, err)
	}
	utils.Info("payout address updated", map[string]any{"user_id": userID})
	return s.GetWallet(ctx, userID)
}

// DepositFromClaim credits the user's wallet with a confirmed external
// deposit. The claim is consumed in the same transaction as the credit.
func (s *WalletService) DepositFromClaim(ctx context.Context, userID, txID string) (Wallet, decimal.Decimal, error) {
	if userID == "" || txID == "" {
		return Wallet{}, decimal.Zero, fmt.Errorf("service: %w - userID and txid are required", shoperrors.ErrInvalidRequest)
	}

	var credited decimal.Decimal
	err := s.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		claim, err := q.ConsumePaymentClaim(ctx, userID, txID, models.PurposeDeposit, s.clock.Now())
		if err != nil {
			return err
		}
		credited = payment.FromMinorUnits(claim.Amount, s.assetDecimals)
		if !models.IsValidAmount(credited) {
			return fmt.Errorf("service: %w - deposit of %d minor units", shoperrors.ErrInvalidAmount, claim.Amount)
		}
		_, err = q.AdjustBalance(ctx, userID, credited)
		return err
	})
	if err != nil {
		return Wallet{}, decimal.Zero, fmt.Errorf("service: deposit of tx %s failed for user %s: %w", txID, userID, err)
	}

	utils.Info("deposit credited", map[string]any{
		"user_id": userID,
		"tx_id":   txID,
		"amount":  credited.StringFixed(models.MoneyScale),
	})

	wallet, err := s.GetWallet(ctx, userID)
	return wallet, credited, err
}

// Withdraw pays amount out to the user's payout address. The wallet is only
// debited when the gateway reports success.
func (s *WalletService) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (models.Withdrawal, error) {
	if userID == "" {
		return models.Withdrawal{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}
	if !models.IsValidAmount(amount) {
		return models.Withdrawal{}, fmt.Errorf("service: %w - amount %s", shoperrors.ErrInvalidAmount, amount)
	}

	var (
		record  models.Withdrawal
		receipt withdrawal.Receipt
	)
	err := s.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		user, err := q.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.Address == nil || *user.Address == "" {
			return fmt.Errorf("service: %w - user %s", shoperrors.ErrNoPayoutAddress, userID)
		}

		// locks the wallet row until the payout is recorded
		if _, err := q.AdjustBalance(ctx, userID, amount.Neg()); err != nil {
			return err
		}

		// a retried attempt must not pay out twice
		if receipt.TransactionID == "" {
			receipt, err = s.gateway.Withdraw(ctx, *user.Address, amount)
			if err != nil {
				return fmt.Errorf("service: %w - %v", shoperrors.ErrWithdrawalFailed, err)
			}
		}

		record = models.Withdrawal{
			ID:             utils.GenerateID(),
			UserID:         userID,
			Address:        *user.Address,
			Amount:         amount,
			ExternalTxID:   receipt.TransactionID,
			ConfirmedRound: receipt.ConfirmedRound,
			CreatedAt:      s.clock.Now(),
		}
		return q.CreateWithdrawal(ctx, &record)
	})
	if err != nil {
		if receipt.TransactionID != "" {
			utils.Error("withdrawal sent but not recorded", map[string]any{
				"user_id":        userID,
				"external_tx_id": receipt.TransactionID,
				"amount":         amount.StringFixed(models.MoneyScale),
				"error":          err.Error(),
			})
		}
		return models.Withdrawal{}, fmt.Errorf("service: withdrawal failed for user %s: %w", userID, err)
	}

	utils.Info("withdrawal completed", map[string]any{
		"user_id":        userID,
		"withdrawal_id":  record.ID,
		"external_tx_id": record.ExternalTxID,
		"amount":         amount.StringFixed(models.MoneyScale),
	})
	return record, nil
}
