package integrationtests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/internal/clients/indexer"
	"storefront/internal/models"
	"storefront/services/helpers"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupShop(t *testing.T) *testApp {
	app := SetupTestApp(t)
	app.addUser(t, "seller", "0")
	app.addUser(t, "alice", "100")
	app.addItem(t, "lamp", "seller", "12.50", 3)
	app.addItem(t, "mug", "seller", "5", 10)
	return app
}

func (a *testApp) fillCart(t *testing.T, userID string) {
	t.Helper()
	_, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/cart/items", userID, helpers.AddCartItemRequest{ItemID: "lamp", Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = a.ExecuteRequestAndParse(t, http.MethodPost, "/cart/items", userID, helpers.AddCartItemRequest{ItemID: "mug", Quantity: 1})
	require.Equal(t, http.StatusCreated, w.Code)
}

// Test the cart endpoints against the store
func TestCartAPI(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodGet, "/cart", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	requireDecimal(t, "30", data(t, resp)["total"])

	_, w = app.ExecuteRequestAndParse(t, http.MethodPut, "/cart/items/lamp", "alice", helpers.UpdateCartItemRequest{Quantity: 3})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = app.ExecuteRequestAndParse(t, http.MethodDelete, "/cart/items/mug", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	requireDecimal(t, "37.5", data(t, resp)["total"])

	_, w = app.ExecuteRequestAndParse(t, http.MethodDelete, "/cart/items/mug", "alice", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = app.ExecuteRequestAndParse(t, http.MethodDelete, "/cart", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = app.ExecuteRequestAndParse(t, http.MethodGet, "/cart", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, data(t, resp)["lines"])
}

// Test the wallet rail: reserve, then settle with the cookies set by the reservation
func TestWalletCheckoutFlow(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout/wallet", "alice", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	requireDecimal(t, "30", data(t, resp)["amount"])
	require.True(t, app.balance(t, "alice").Equal(decimal.NewFromInt(70)))

	cookies := liveCookies(w)
	require.Len(t, cookies, 2)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout/wallet/validate", "alice", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)

	// a stolen token is useless to another caller
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "mallory", nil, cookies...)
	require.Equal(t, http.StatusForbidden, w.Code)

	resp, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", nil, cookies...)
	require.Equal(t, http.StatusCreated, w.Code)
	receipt := data(t, resp)
	require.Equal(t, models.RailWallet, receipt["rail"])
	requireDecimal(t, "30", receipt["total"])
	require.Len(t, receipt["items"], 2)
	require.Empty(t, liveCookies(w))

	require.True(t, app.balance(t, "alice").Equal(decimal.NewFromInt(70)))
	require.True(t, app.balance(t, "seller").Equal(decimal.NewFromInt(30)))
	require.Equal(t, 1, app.stock(t, "lamp"))
	require.Equal(t, 9, app.stock(t, "mug"))

	// replaying the spent token settles nothing
	app.fillCart(t, "alice")
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", nil, cookies...)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.True(t, app.balance(t, "alice").Equal(decimal.NewFromInt(70)))
}

// Test cancelling a reservation refunds the wallet
func TestWalletCheckoutCancel(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout/wallet", "alice", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	token := data(t, resp)["token"].(string)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout/wallet/cancel", "alice", helpers.PendingTokenRequest{Token: token})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, app.balance(t, "alice").Equal(decimal.NewFromInt(100)))

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", helpers.SettleRequest{Rail: models.RailWallet, Token: token})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, 3, app.stock(t, "lamp"))
}

// Test a reservation beyond the wallet balance is refused
func TestWalletCheckoutInsufficientFunds(t *testing.T) {
	app := setupShop(t)
	app.addUser(t, "bob", "10")
	app.fillCart(t, "bob")

	_, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout/wallet", "bob", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.True(t, app.balance(t, "bob").Equal(decimal.NewFromInt(10)))
}

// Test the external rail: intent, polling until confirmed, then settlement
func TestExternalCheckoutFlow(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/intents", "alice", helpers.CreateIntentRequest{Purpose: models.PurposeCart})
	require.Equal(t, http.StatusCreated, w.Code)
	intent := data(t, resp)
	require.EqualValues(t, 3000, intent["amount_minor"])
	note := intent["note"].(string)

	transfer := &indexer.Transfer{
		TxID:           "TXCART",
		Sender:         "CUSTOMER",
		Receiver:       shopAddress,
		AssetID:        assetID,
		Amount:         3000,
		ConfirmedRound: 0,
		Note:           note,
		Raw:            json.RawMessage(`{"id":"TXCART"}`),
	}
	gomock.InOrder(
		app.indexer.EXPECT().LookupTransaction(gomock.Any(), "TXCART").Return(nil, nil),
		app.indexer.EXPECT().LookupTransaction(gomock.Any(), "TXCART").Return(transfer, nil),
		app.indexer.EXPECT().LookupTransaction(gomock.Any(), "TXCART").DoAndReturn(func(_ any, _ string) (*indexer.Transfer, error) {
			confirmed := *transfer
			confirmed.ConfirmedRound = 4242
			return &confirmed, nil
		}),
	)

	confirm := helpers.ConfirmPaymentRequest{TxID: "TXCART", Note: note}

	// unknown to the indexer, then still in the pool
	for i := 0; i < 2; i++ {
		resp, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", confirm)
		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, false, resp["completed"])
	}

	resp, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", confirm)
	require.Equal(t, http.StatusOK, w.Code)
	claim := data(t, resp)
	require.Equal(t, true, claim["completed"])
	require.EqualValues(t, 4242, claim["confirmed_round"])
	cookies := liveCookies(w)
	require.Len(t, cookies, 2)

	// polling again is answered from the recorded claim
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", confirm)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", nil, cookies...)
	require.Equal(t, http.StatusCreated, w.Code)
	receipt := data(t, resp)
	require.Equal(t, models.RailExternal, receipt["rail"])
	require.Equal(t, "TXCART", receipt["payment_ref"])

	require.True(t, app.balance(t, "alice").Equal(decimal.NewFromInt(100)))
	require.True(t, app.balance(t, "seller").Equal(decimal.NewFromInt(30)))

	// the same transfer cannot pay twice
	app.fillCart(t, "alice")
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", helpers.SettleRequest{Rail: models.RailExternal, TxID: "TXCART"})
	require.Equal(t, http.StatusConflict, w.Code)
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", confirm)
	require.Equal(t, http.StatusConflict, w.Code)
}

// Test a transfer for the wrong amount never becomes a claim
func TestExternalCheckoutWrongAmount(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/intents", "alice", helpers.CreateIntentRequest{Purpose: models.PurposeCart})
	require.Equal(t, http.StatusCreated, w.Code)
	note := data(t, resp)["note"].(string)

	app.indexer.EXPECT().LookupTransaction(gomock.Any(), "TXLOW").Return(&indexer.Transfer{
		TxID:           "TXLOW",
		Receiver:       shopAddress,
		AssetID:        assetID,
		Amount:         2999,
		ConfirmedRound: 10,
		Note:           note,
	}, nil)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", helpers.ConfirmPaymentRequest{TxID: "TXLOW", Note: note})
	require.Equal(t, http.StatusAccepted, w.Code)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", helpers.SettleRequest{Rail: models.RailExternal, TxID: "TXLOW"})
	require.Equal(t, http.StatusPaymentRequired, w.Code)
	require.Equal(t, 3, app.stock(t, "lamp"))
}

// Test an expired claim can no longer settle
func TestExternalCheckoutExpiredClaim(t *testing.T) {
	app := setupShop(t)
	app.fillCart(t, "alice")

	resp, w := app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/intents", "alice", helpers.CreateIntentRequest{Purpose: models.PurposeCart})
	require.Equal(t, http.StatusCreated, w.Code)
	note := data(t, resp)["note"].(string)

	app.indexer.EXPECT().LookupTransaction(gomock.Any(), "TXOLD").Return(&indexer.Transfer{
		TxID:           "TXOLD",
		Receiver:       shopAddress,
		AssetID:        assetID,
		Amount:         3000,
		ConfirmedRound: 10,
		Note:           note,
	}, nil)

	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/payments/confirm", "alice", helpers.ConfirmPaymentRequest{TxID: "TXOLD", Note: note})
	require.Equal(t, http.StatusOK, w.Code)

	app.clock.Advance(16 * time.Minute)
	_, w = app.ExecuteRequestAndParse(t, http.MethodPost, "/checkout", "alice", helpers.SettleRequest{Rail: models.RailExternal, TxID: "TXOLD"})
	require.Equal(t, http.StatusPaymentRequired, w.Code)
}
