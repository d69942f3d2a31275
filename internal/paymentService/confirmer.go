package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/clients/indexer"
	"storefront/internal/shoperrors"
)

//go:generate mockgen -source=confirmer.go -destination=mock_indexer.go -package=payment

// Indexer looks transactions up on the external ledger. A nil transfer with a
// nil error means the ledger does not know the transaction (yet).
type Indexer interface {
	LookupTransaction(ctx context.Context, txID string) (*indexer.Transfer, error)
}

// Expected describes the transfer a customer claims to have made. Amount is in
// the asset's minor units.
type Expected struct {
	TxID      string
	Amount    uint64
	AssetID   uint64
	Recipient string
	Note      string
}

// Match is a confirmed transfer that satisfied every expectation
type Match struct {
	TxID           string
	Sender         string
	Recipient      string
	AssetID        uint64
	Amount         uint64
	ConfirmedRound uint64
	Note           string
	Raw            json.RawMessage
}

// Confirmer checks claimed transfers against the indexer. It never writes.
type Confirmer struct {
	indexer Indexer
}

// NewConfirmer creates a Confirmer backed by idx
func NewConfirmer(idx Indexer) *Confirmer {
	return &Confirmer{indexer: idx}
}

// ConfirmExternalPayment reports whether txid is a confirmed transfer matching
// exp. ErrNotYetConfirmed and ErrDetailsMismatch tell the caller to keep polling.
func (c *Confirmer) ConfirmExternalPayment(ctx context.Context, exp Expected) (Match, error) {
	if exp.TxID == "" || exp.Recipient == "" || exp.Note == "" || exp.Amount == 0 {
		return Match{}, fmt.Errorf("payment: %w - txid, amount, recipient and note are required", shoperrors.ErrInvalidRequest)
	}

	transfer, err := c.indexer.LookupTransaction(ctx, exp.TxID)
	if err != nil {
		return Match{}, fmt.Errorf("payment: %w - %v", shoperrors.ErrIndexerUnavailable, err)
	}
	if transfer == nil || transfer.ConfirmedRound == 0 {
		return Match{}, fmt.Errorf("payment: %w - tx %s", shoperrors.ErrNotYetConfirmed, exp.TxID)
	}

	note := NormalizeNote(transfer.Note)
	switch {
	case note != NormalizeNote(exp.Note):
		return Match{}, fmt.Errorf("payment: %w - note of tx %s", shoperrors.ErrDetailsMismatch, exp.TxID)
	case transfer.Receiver != exp.Recipient:
		return Match{}, fmt.Errorf("payment: %w - recipient of tx %s", shoperrors.ErrDetailsMismatch, exp.TxID)
	case transfer.AssetID != exp.AssetID:
		return Match{}, fmt.Errorf("payment: %w - asset of tx %s is %d, want %d", shoperrors.ErrDetailsMismatch, exp.TxID, transfer.AssetID, exp.AssetID)
	case transfer.Amount != exp.Amount:
		return Match{}, fmt.Errorf("payment: %w - amount of tx %s is %d, want %d", shoperrors.ErrDetailsMismatch, exp.TxID, transfer.Amount, exp.Amount)
	}

	return Match{
		TxID:           exp.TxID,
		Sender:         transfer.Sender,
		Recipient:      transfer.Receiver,
		AssetID:        transfer.AssetID,
		Amount:         transfer.Amount,
		ConfirmedRound: transfer.ConfirmedRound,
		Note:           note,
		Raw:            transfer.Raw,
	}, nil
}

// NormalizeNote URL-decodes and trims a note. Notes that are not valid
// escapes are only trimmed.
func NormalizeNote(note string) string {
	note = strings.TrimSpace(note)
	if unescaped, err := url.PathUnescape(note); err == nil {
		note = unescaped
	}
	return strings.TrimSpace(note)
}
