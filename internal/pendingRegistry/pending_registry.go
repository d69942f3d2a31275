package pending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/clock"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Claims is the signed payload of a pending wallet-debit token
type Claims struct {
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	jwt.RegisteredClaims
}

// Token is handed to the client when a wallet-rail checkout starts
type Token struct {
	Token         string          `json:"token"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// Registry issues and consumes pending wallet debits
type Registry struct {
	repo   repository.ShopDB
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewRegistry creates a registry signing tokens with secret
func NewRegistry(repo repository.ShopDB, secret []byte, ttl time.Duration, clk clock.Clock) *Registry {
	if clk == nil {
		clk = clock.System()
	}
	return &Registry{
		repo:   repo,
		secret: secret,
		ttl:    ttl,
		clock:  clk,
	}
}

// CreatePending debits the user's wallet and stores the matching pending row
// in one transaction, then returns the signed token that settles it.
func (r *Registry) CreatePending(ctx context.Context, userID string, amount decimal.Decimal) (Token, error) {
	if userID == "" {
		return Token{}, fmt.Errorf("pending: %w - missing userID", shoperrors.ErrInvalidRequest)
	}
	if !models.IsValidAmount(amount) {
		return Token{}, fmt.Errorf("pending: %w - amount %s", shoperrors.ErrInvalidAmount, amount)
	}

	now := r.clock.Now()
	claims := Claims{
		UserID:        userID,
		TransactionID: utils.GenerateID(),
		Amount:        amount,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return Token{}, fmt.Errorf("pending: failed to sign token: %w", err)
	}

	err = r.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		if _, err := q.AdjustBalance(ctx, userID, amount.Neg()); err != nil {
			return err
		}
		return q.CreatePendingTransaction(ctx, &models.PendingTransaction{
			TransactionID: claims.TransactionID,
			UserID:        userID,
			Amount:        amount,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return Token{}, fmt.Errorf("pending: failed to create pending debit for user %s: %w", userID, err)
	}

	utils.Info("pending debit created", map[string]any{
		"user_id":        userID,
		"transaction_id": claims.TransactionID,
		"amount":         amount.StringFixed(models.MoneyScale),
	})

	return Token{
		Token:         signed,
		TransactionID: claims.TransactionID,
		Amount:        amount,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// StartWalletCheckout reserves the current cart total from the user's wallet
func (r *Registry) StartWalletCheckout(ctx context.Context, userID string) (Token, error) {
	lines, err := r.repo.GetCartLines(ctx, userID)
	if err != nil {
		return Token{}, fmt.Errorf("pending: failed to read cart of user %s: %w", userID, err)
	}
	if len(lines) == 0 {
		return Token{}, fmt.Errorf("pending: %w - user %s", shoperrors.ErrEmptyCart, userID)
	}
	return r.CreatePending(ctx, userID, models.CartTotal(lines))
}

// Verify checks the signature and expiry of token and returns its claims
func (r *Registry) Verify(token string) (Claims, error) {
	return r.parse(token, jwt.WithExpirationRequired(), jwt.WithTimeFunc(r.clock.Now))
}

// parseIgnoringExpiry accepts correctly signed tokens whose lifetime has passed
func (r *Registry) parseIgnoringExpiry(token string) (Claims, error) {
	return r.parse(token, jwt.WithoutClaimsValidation())
}

func (r *Registry) parse(token string, opts ...jwt.ParserOption) (Claims, error) {
	var claims Claims
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, fmt.Errorf("pending: %w - %v", shoperrors.ErrInvalidToken, err)
	}
	if claims.TransactionID == "" || claims.UserID == "" {
		return Claims{}, fmt.Errorf("pending: %w - incomplete claims", shoperrors.ErrInvalidToken)
	}
	return claims, nil
}

// Consume verifies token and deletes its pending row. A second call with the
// same token fails with ErrTransactionNotFound.
func (r *Registry) Consume(ctx context.Context, token string) (Claims, error) {
	claims, err := r.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if err := r.ConsumeWithin(ctx, r.repo, claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// ConsumeWithin deletes the pending row of already verified claims using q,
// so the caller can make the deletion part of a larger transaction.
func (r *Registry) ConsumeWithin(ctx context.Context, q repository.Queries, claims Claims) error {
	if err := q.DeletePendingTransaction(ctx, claims.TransactionID, claims.UserID, claims.Amount); err != nil {
		return fmt.Errorf("pending: failed to consume %s: %w", claims.TransactionID, err)
	}
	return nil
}

// Validate reports whether token is authentic, unexpired, owned by userID and
// not yet consumed.
func (r *Registry) Validate(ctx context.Context, token, userID string) (Claims, error) {
	claims, err := r.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.UserID != userID {
		return Claims{}, fmt.Errorf("pending: %w - token issued to another user", shoperrors.ErrUserIDMismatch)
	}

	row, err := r.repo.GetPendingTransaction(ctx, claims.TransactionID)
	if err != nil {
		return Claims{}, fmt.Errorf("pending: failed to validate %s: %w", claims.TransactionID, err)
	}
	if row.UserID != claims.UserID || !row.Amount.Equal(claims.Amount) {
		return Claims{}, fmt.Errorf("pending: %w - %s does not match its token", shoperrors.ErrTransactionNotFound, claims.TransactionID)
	}
	return claims, nil
}

// Cancel invalidates token: the pending row is deleted and its amount returned
// to the wallet in one transaction. Expired tokens can still be cancelled.
func (r *Registry) Cancel(ctx context.Context, token, userID string) (Claims, error) {
	claims, err := r.parseIgnoringExpiry(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.UserID != userID {
		return Claims{}, fmt.Errorf("pending: %w - token issued to another user", shoperrors.ErrUserIDMismatch)
	}

	if err := r.release(ctx, claims.TransactionID, claims.UserID, claims.Amount); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// ReleaseExpired refunds and deletes pending rows older than the token
// lifetime. It returns how many rows were released.
func (r *Registry) ReleaseExpired(ctx context.Context) (int, error) {
	stale, err := r.repo.ListPendingBefore(ctx, r.clock.Now().Add(-r.ttl))
	if err != nil {
		return 0, fmt.Errorf("pending: failed to list expired debits: %w", err)
	}

	released := 0
	for _, row := range stale {
		err := r.release(ctx, row.TransactionID, row.UserID, row.Amount)
		if errors.Is(err, shoperrors.ErrTransactionNotFound) {
			continue
		}
		if err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

func (r *Registry) release(ctx context.Context, transactionID, userID string, amount decimal.Decimal) error {
	err := r.repo.WithinTransaction(ctx, func(q repository.Queries) error {
		if err := q.DeletePendingTransaction(ctx, transactionID, userID, amount); err != nil {
			return err
		}
		_, err := q.AdjustBalance(ctx, userID, amount)
		return err
	})
	if err != nil {
		return fmt.Errorf("pending: failed to release %s: %w", transactionID, err)
	}

	utils.Info("pending debit released", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
		"amount":         amount.StringFixed(models.MoneyScale),
	})
	return nil
}
