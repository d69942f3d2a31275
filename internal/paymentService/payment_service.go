package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"storefront/internal/clock"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/shoperrors"
	"storefront/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Settings describes where and in which asset customers pay
type Settings struct {
	ShopAddress   string
	AssetID       uint64
	AssetDecimals int32
	ClaimTTL      time.Duration
}

// Intent tells the customer exactly what to send
type Intent struct {
	Purpose     string          `json:"purpose"`
	Recipient   string          `json:"recipient"`
	AssetID     uint64          `json:"asset_id"`
	Amount      decimal.Decimal `json:"amount"`
	AmountMinor uint64          `json:"amount_minor"`
	Note        string          `json:"note"`
	URI         string          `json:"uri"`
}

// PaymentService issues payment notes and records confirmed external transfers
type PaymentService struct {
	repo      repository.ShopDB
	confirmer *Confirmer
	settings  Settings
	clock     clock.Clock
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(repo repository.ShopDB, confirmer *Confirmer, settings Settings, clk clock.Clock) *PaymentService {
	if clk == nil {
		clk = clock.System()
	}
	return &PaymentService{
		repo:      repo,
		confirmer: confirmer,
		settings:  settings,
		clock:     clk,
	}
}

// CreateIntent issues a fresh single-use note for a cart payment or a wallet
// deposit. For carts the amount is always the current cart total.
func (s *PaymentService) CreateIntent(ctx context.Context, userID, purpose string, amount decimal.Decimal) (Intent, error) {
	if userID == "" {
		return Intent{}, fmt.Errorf("service: %w - missing userID", shoperrors.ErrInvalidRequest)
	}

	switch purpose {
	case models.PurposeCart:
		lines, err := s.repo.GetCartLines(ctx, userID)
		if err != nil {
			return Intent{}, fmt.Errorf("service: failed to read cart of user %s: %w", userID, err)
		}
		if len(lines) == 0 {
			return Intent{}, fmt.Errorf("service: %w - user %s", shoperrors.ErrEmptyCart, userID)
		}
		amount = models.CartTotal(lines)
	case models.PurposeDeposit:
		if !models.IsValidAmount(amount) {
			return Intent{}, fmt.Errorf("service: %w - deposit amount %s", shoperrors.ErrInvalidAmount, amount)
		}
	default:
		return Intent{}, fmt.Errorf("service: %w - unknown purpose %q", shoperrors.ErrInvalidRequest, purpose)
	}

	minor, err := ToMinorUnits(amount, s.settings.AssetDecimals)
	if err != nil {
		return Intent{}, err
	}

	intent := models.PaymentIntent{
		Note:      utils.GenerateNote(),
		UserID:    userID,
		Purpose:   purpose,
		Recipient: s.settings.ShopAddress,
		AssetID:   s.settings.AssetID,
		Amount:    minor,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreatePaymentIntent(ctx, &intent); err != nil {
		return Intent{}, fmt.Errorf("service: failed to issue payment note: %w", err)
	}

	utils.Info("payment intent issued", map[string]any{
		"user_id": userID,
		"purpose": purpose,
		"note":    intent.Note,
		"amount":  minor,
	})

	return Intent{
		Purpose:     purpose,
		Recipient:   intent.Recipient,
		AssetID:     intent.AssetID,
		Amount:      amount,
		AmountMinor: minor,
		Note:        intent.Note,
		URI:         paymentURI(intent),
	}, nil
}

// paymentURI renders the wallet deep link customers scan to pay
func paymentURI(intent models.PaymentIntent) string {
	query := url.Values{}
	query.Set("amount", fmt.Sprintf("%d", intent.Amount))
	query.Set("asset", fmt.Sprintf("%d", intent.AssetID))
	query.Set("note", intent.Note)
	return fmt.Sprintf("algorand://%s?%s", intent.Recipient, query.Encode())
}

// VerifyAndRecord confirms txID against the intent behind note and records a
// short-lived claim the user can settle with. Polling again after success
// returns the same claim.
func (s *PaymentService) VerifyAndRecord(ctx context.Context, userID, txID, note string) (models.PaymentClaim, error) {
	if userID == "" || txID == "" || note == "" {
		return models.PaymentClaim{}, fmt.Errorf("service: %w - userID, txid and note are required", shoperrors.ErrInvalidRequest)
	}
	note = NormalizeNote(note)

	intent, err := s.repo.GetPaymentIntent(ctx, note)
	if err != nil {
		return models.PaymentClaim{}, fmt.Errorf("service: failed to verify tx %s: %w", txID, err)
	}
	if intent.UserID != userID {
		return models.PaymentClaim{}, fmt.Errorf("service: %w - note issued to another user", shoperrors.ErrUserIDMismatch)
	}

	existing, err := s.repo.GetPaymentClaim(ctx, txID)
	switch {
	case err == nil:
		return s.reuseClaim(existing, userID, note)
	case !errors.Is(err, shoperrors.ErrPaymentNotConfirmed):
		return models.PaymentClaim{}, fmt.Errorf("service: failed to look up claim for tx %s: %w", txID, err)
	}

	match, err := s.confirmer.ConfirmExternalPayment(ctx, Expected{
		TxID:      txID,
		Amount:    intent.Amount,
		AssetID:   intent.AssetID,
		Recipient: intent.Recipient,
		Note:      intent.Note,
	})
	if err != nil {
		return models.PaymentClaim{}, fmt.Errorf("service: tx %s not accepted: %w", txID, err)
	}

	now := s.clock.Now()
	claim := models.PaymentClaim{
		TxID:           match.TxID,
		UserID:         userID,
		Purpose:        intent.Purpose,
		Note:           match.Note,
		Recipient:      match.Recipient,
		AssetID:        match.AssetID,
		Amount:         match.Amount,
		ConfirmedRound: match.ConfirmedRound,
		Payload:        datatypes.JSON(match.Raw),
		ExpiresAt:      now.Add(s.settings.ClaimTTL),
		CreatedAt:      now,
	}
	if err := s.repo.CreatePaymentClaim(ctx, &claim); err != nil {
		// a concurrent poll for the same transfer may have recorded it first
		if errors.Is(err, shoperrors.ErrPaymentAlreadyUsed) {
			if recorded, getErr := s.repo.GetPaymentClaim(ctx, match.TxID); getErr == nil {
				return s.reuseClaim(recorded, userID, note)
			}
		}
		return models.PaymentClaim{}, fmt.Errorf("service: failed to record claim for tx %s: %w", txID, err)
	}

	utils.Info("external payment confirmed", map[string]any{
		"user_id":         userID,
		"tx_id":           txID,
		"sender":          match.Sender,
		"amount":          match.Amount,
		"confirmed_round": match.ConfirmedRound,
	})
	return claim, nil
}

// reuseClaim makes repeated polls idempotent while the claim is unused
func (s *PaymentService) reuseClaim(claim models.PaymentClaim, userID, note string) (models.PaymentClaim, error) {
	if claim.ConsumedAt != nil || claim.UserID != userID || claim.Note != note {
		return models.PaymentClaim{}, fmt.Errorf("service: %w - tx %s", shoperrors.ErrPaymentAlreadyUsed, claim.TxID)
	}
	if !s.clock.Now().Before(claim.ExpiresAt) {
		return models.PaymentClaim{}, fmt.Errorf("service: %w - claim for tx %s expired", shoperrors.ErrPaymentNotConfirmed, claim.TxID)
	}
	return claim, nil
}
