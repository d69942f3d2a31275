package indexer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Transfer is the part of an indexed transaction the shop cares about.
// AssetID is 0 for transfers of the chain's native coin.
type Transfer struct {
	TxID           string
	Sender         string
	Receiver       string
	AssetID        uint64
	Amount         uint64
	ConfirmedRound uint64
	Note           string
	Raw            json.RawMessage
}

type transactionResponse struct {
	Transaction struct {
		ID             string `json:"id"`
		ConfirmedRound uint64 `json:"confirmed-round"`
		Sender         string `json:"sender"`
		Note           string `json:"note"`
		TxType         string `json:"tx-type"`
		AssetTransfer  *struct {
			Amount   uint64 `json:"amount"`
			AssetID  uint64 `json:"asset-id"`
			Receiver string `json:"receiver"`
		} `json:"asset-transfer-transaction"`
		Payment *struct {
			Amount   uint64 `json:"amount"`
			Receiver string `json:"receiver"`
		} `json:"payment-transaction"`
	} `json:"transaction"`
}

// Client queries a ledger indexer over its REST API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the indexer at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LookupTransaction fetches txID. It returns nil without error when the
// indexer does not know the transaction yet.
func (c *Client) LookupTransaction(ctx context.Context, txID string) (*Transfer, error) {
	endpoint := fmt.Sprintf("%s/v2/transactions/%s", c.baseURL, url.PathEscape(txID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed on build indexer request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed on query indexer")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed on read indexer response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("indexer returned status %d for %s", resp.StatusCode, txID)
	}

	var parsed transactionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed on decode indexer response")
	}

	tx := parsed.Transaction
	transfer := &Transfer{
		TxID:           tx.ID,
		Sender:         tx.Sender,
		ConfirmedRound: tx.ConfirmedRound,
		Note:           decodeNote(tx.Note),
		Raw:            json.RawMessage(body),
	}
	if transfer.TxID == "" {
		transfer.TxID = txID
	}

	switch {
	case tx.AssetTransfer != nil:
		transfer.Receiver = tx.AssetTransfer.Receiver
		transfer.AssetID = tx.AssetTransfer.AssetID
		transfer.Amount = tx.AssetTransfer.Amount
	case tx.Payment != nil:
		transfer.Receiver = tx.Payment.Receiver
		transfer.Amount = tx.Payment.Amount
	}

	return transfer, nil
}

// decodeNote turns the base64 note blob into text, keeping undecodable notes as they are
func decodeNote(note string) string {
	if note == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(note)
	if err != nil {
		return note
	}
	return string(decoded)
}
