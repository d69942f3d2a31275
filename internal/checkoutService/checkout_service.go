package checkout

import (
	"context"
	"fmt"
	"sort"

	"storefront/internal/clock"
	"storefront/internal/models"
	payment "storefront/internal/paymentService"
	pending "storefront/internal/pendingRegistry"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
)

// SettleRequest carries what the caller presents to settle the cart.
// Token is used on the wallet rail, TxID (optional) on the external rail.
type SettleRequest struct {
	UserID string
	Rail   string
	Token  string
	TxID   string
}

// CheckoutService turns a paid cart into a committed sale
type CheckoutService struct {
	repo          repository.ShopDB
	pending       *pending.Registry
	assetDecimals int32
	clock         clock.Clock
}

// NewCheckoutService creates a new CheckoutService instance
func NewCheckoutService(repo repository.ShopDB, registry *pending.Registry, assetDecimals int32, clk clock.Clock) *CheckoutService {
	if clk == nil {
		clk = clock.System()
	}
	return &CheckoutService{
		repo:          repo,
		pending:       registry,
		assetDecimals: assetDecimals,
		clock:         clk,
	}
}

// StartWalletCheckout reserves the cart total from the user's wallet
func (s *CheckoutService) StartWalletCheckout(ctx context.Context, userID string) (pending.Token, error) {
	if userID == "" {
		return pending.Token{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}
	return s.pending.StartWalletCheckout(ctx, userID)
}

// ValidatePending reports whether a wallet-rail token can still be settled
func (s *CheckoutService) ValidatePending(ctx context.Context, token, userID string) (pending.Claims, error) {
	return s.pending.Validate(ctx, token, userID)
}

// CancelPending invalidates a wallet-rail token and refunds its reservation
func (s *CheckoutService) CancelPending(ctx context.Context, token, userID string) (pending.Claims, error) {
	return s.pending.Cancel(ctx, token, userID)
}

// SettleCartCheckout consumes the payment and records the sale as one unit:
// either the payment is consumed, the sale recorded, stock decremented and
// sellers credited, or nothing changes.
func (s *CheckoutService) SettleCartCheckout(ctx context.Context, req SettleRequest) (models.Transaction, error) {
	if req.UserID == "" {
		return models.Transaction{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}

	var claims pending.Claims
	switch req.Rail {
	case models.RailWallet:
		if req.Token == "" {
			return models.Transaction{}, fmt.Errorf("service: %w - missing pending token", shoperrors.ErrInvalidRequest)
		}
		var err error
		claims, err = s.pending.Verify(req.Token)
		if err != nil {
			return models.Transaction{}, err
		}
		if claims.UserID != req.UserID {
			return models.Transaction{}, fmt.Errorf("service: %w - token issued to another user", shoperrors.ErrUserIDMismatch)
		}
	case models.RailExternal:
	default:
		return models.Transaction{}, fmt.Errorf("service: %w - unknown payment rail %q", shoperrors.ErrInvalidRequest, req.Rail)
	}

	var txn models.Transaction
	err := s.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		// a replayed token fails here, before the cart is looked at
		if req.Rail == models.RailWallet {
			if err := s.pending.ConsumeWithin(ctx, q, claims); err != nil {
				return err
			}
		}

		lines, err := q.GetCartLines(ctx, req.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("service: %w - user %s", shoperrors.ErrEmptyCart, req.UserID)
		}
		total := models.CartTotal(lines)

		var ref string
		if req.Rail == models.RailWallet {
			ref, err = checkReserved(claims, total)
		} else {
			ref, err = s.consumeClaim(ctx, q, req.UserID, req.TxID, total)
		}
		if err != nil {
			return err
		}

		txn, err = s.recordSale(ctx, q, req.UserID, req.Rail, ref, lines, total)
		return err
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: checkout failed for user %s: %w", req.UserID, err)
	}

	utils.Info("checkout settled", map[string]any{
		"user_id":        req.UserID,
		"transaction_id": txn.ID,
		"rail":           req.Rail,
		"payment_ref":    txn.PaymentRef,
		"total":          txn.TotalAmount.StringFixed(models.MoneyScale),
		"lines":          len(txn.SaleItems),
	})
	return txn, nil
}

// checkReserved requires the consumed reservation to cover exactly the
// current cart.
func checkReserved(claims pending.Claims, total decimal.Decimal) (string, error) {
	if !claims.Amount.Equal(total) {
		return "", fmt.Errorf("service: %w - reserved %s, cart total %s",
			shoperrors.ErrPaymentAmountMismatch, claims.Amount.StringFixed(models.MoneyScale), total.StringFixed(models.MoneyScale))
	}
	return claims.TransactionID, nil
}

// consumeClaim stamps a confirmed external transfer as used. Without a txid
// the user's open cart claim for exactly the cart total is taken.
func (s *CheckoutService) consumeClaim(ctx context.Context, q repository.Queries, userID, txID string, total decimal.Decimal) (string, error) {
	minor, err := payment.ToMinorUnits(total, s.assetDecimals)
	if err != nil {
		return "", err
	}
	now := s.clock.Now()

	if txID == "" {
		open, err := q.FindOpenPaymentClaim(ctx, userID, models.PurposeCart, minor, now)
		if err != nil {
			return "", err
		}
		txID = open.TxID
	}

	claim, err := q.ConsumePaymentClaim(ctx, userID, txID, models.PurposeCart, now)
	if err != nil {
		return "", err
	}
	if claim.Amount != minor {
		return "", fmt.Errorf("service: %w - paid %d, cart total %d", shoperrors.ErrPaymentAmountMismatch, claim.Amount, minor)
	}
	return claim.TxID, nil
}

func (s *CheckoutService) recordSale(ctx context.Context, q repository.Queries, userID, rail, ref string, lines []models.CartLine, total decimal.Decimal) (models.Transaction, error) {
	txn := models.Transaction{
		ID:          utils.GenerateID(),
		UserID:      userID,
		TotalAmount: total,
		PaymentRail: rail,
		PaymentRef:  ref,
		CreatedAt:   s.clock.Now(),
	}

	shares := make(map[string]decimal.Decimal)
	for _, line := range lines {
		txn.SaleItems = append(txn.SaleItems, models.SaleItem{
			ID:            utils.GenerateID(),
			TransactionID: txn.ID,
			ItemID:        line.ItemID,
			SellerID:      line.SellerID,
			Quantity:      line.Quantity,
			Price:         line.Price,
		})
		shares[line.SellerID] = shares[line.SellerID].Add(line.LineTotal())
	}

	if err := q.CreateTransaction(ctx, &txn); err != nil {
		return models.Transaction{}, err
	}

	for _, line := range lines {
		if err := q.DecrementStock(ctx, line.ItemID, line.Quantity); err != nil {
			return models.Transaction{}, err
		}
	}

	// sellers are credited in id order so concurrent checkouts lock wallets in the same order
	sellers := make([]string, 0, len(shares))
	for seller := range shares {
		sellers = append(sellers, seller)
	}
	sort.Strings(sellers)
	for _, seller := range sellers {
		if _, err := q.AdjustBalance(ctx, seller, shares[seller]); err != nil {
			return models.Transaction{}, err
		}
	}

	if err := q.DeleteCart(ctx, userID); err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}
