package withdrawal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Receipt is returned by the signer once the payout is on chain
type Receipt struct {
	TransactionID  string `json:"transaction_id"`
	ConfirmedRound uint64 `json:"confirmed_round"`
}

type withdrawRequest struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

type withdrawResponse struct {
	Status         string `json:"status"`
	TransactionID  string `json:"transaction_id"`
	ConfirmedRound uint64 `json:"confirmed_round"`
	Error          string `json:"error"`
	Message        string `json:"message"`
}

// Client asks the signing service to transfer funds to an external address
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the signing service at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Withdraw transfers amount to address and waits for the signer's verdict.
// Any error means the payout did not happen.
func (c *Client) Withdraw(ctx context.Context, address string, amount decimal.Decimal) (Receipt, error) {
	payload, err := json.Marshal(withdrawRequest{Address: address, Amount: amount})
	if err != nil {
		return Receipt{}, errors.Wrap(err, "failed on encode withdrawal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/withdraw", bytes.NewReader(payload))
	if err != nil {
		return Receipt{}, errors.Wrap(err, "failed on build withdrawal request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Receipt{}, errors.Wrap(err, "failed on call withdrawal service")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Receipt{}, errors.Wrap(err, "failed on read withdrawal response")
	}

	var parsed withdrawResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Receipt{}, errors.Wrapf(err, "failed on decode withdrawal response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || parsed.Status != "success" {
		reason := parsed.Error
		if reason == "" {
			reason = parsed.Message
		}
		return Receipt{}, errors.Errorf("withdrawal rejected with status %d: %s", resp.StatusCode, reason)
	}

	return Receipt{
		TransactionID:  parsed.TransactionID,
		ConfirmedRound: parsed.ConfirmedRound,
	}, nil
}
