package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/clock"
	"storefront/internal/database"
	"storefront/internal/models"
	payment "storefront/internal/paymentService"
	"storefront/internal/repository"
	"storefront/internal/server"
	wallet "storefront/internal/walletService"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	shopAddress   = "SHOPADDRESS"
	assetID       = 732664447
	assetDecimals = 2
)

// testApp is the full HTTP stack over an in-memory SQLite store
type testApp struct {
	router  *gin.Engine
	db      *gorm.DB
	repo    *repository.GormRepo
	indexer *payment.MockIndexer
	gateway *wallet.MockGateway
	clock   *clock.Fake
}

// SetupTestApp wires every service the way serve does, with the indexer and
// withdrawal signer replaced by mocks.
func SetupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateID()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	ctrl := gomock.NewController(t)
	app := &testApp{
		db:      db,
		repo:    repository.NewGormRepo(db, repository.Options{MaxAttempts: 3}),
		indexer: payment.NewMockIndexer(ctrl),
		gateway: wallet.NewMockGateway(ctrl),
		clock:   clock.NewFake(time.Now().Truncate(time.Second)),
	}

	services, _ := server.NewServices(server.Dependencies{
		Repo:        app.repo,
		Indexer:     app.indexer,
		Gateway:     app.gateway,
		Clock:       app.clock,
		TokenSecret: []byte("integration-test-secret-0123456789"),
		PendingTTL:  30 * time.Minute,
		Payment: payment.Settings{
			ShopAddress:   shopAddress,
			AssetID:       assetID,
			AssetDecimals: assetDecimals,
			ClaimTTL:      15 * time.Minute,
		},
	})
	app.router = server.SetupRouter(services)
	return app
}

func (a *testApp) addUser(t *testing.T, id string, balance string) {
	t.Helper()
	require.NoError(t, a.repo.CreateUser(context.Background(), &models.User{
		ID:       id,
		Username: id,
		Wallet:   decimal.RequireFromString(balance),
	}))
}

func (a *testApp) addItem(t *testing.T, id, sellerID, price string, stock int) {
	t.Helper()
	require.NoError(t, a.repo.CreateItem(context.Background(), &models.Item{
		ID:       id,
		SellerID: sellerID,
		Name:     id,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	}))
}

func (a *testApp) addAuction(t *testing.T, id, sellerID, startingPrice string, startsIn time.Duration) {
	t.Helper()
	start := a.clock.Now().Add(startsIn)
	require.NoError(t, a.repo.CreateAuctionItem(context.Background(), &models.AuctionItem{
		ID:            id,
		SellerID:      sellerID,
		Title:         id,
		StartingPrice: decimal.RequireFromString(startingPrice),
		Stock:         1,
		StartingTime:  &start,
		Duration:      int64(time.Hour.Seconds()),
	}))
}

func (a *testApp) balance(t *testing.T, userID string) decimal.Decimal {
	t.Helper()
	user, err := a.repo.GetUser(context.Background(), userID)
	require.NoError(t, err)
	return user.Wallet
}

func (a *testApp) stock(t *testing.T, itemID string) int {
	t.Helper()
	item, err := a.repo.GetItem(context.Background(), itemID)
	require.NoError(t, err)
	return item.Stock
}

// ExecuteRequestAndParse executes an HTTP request as userID and parses the
// response envelope. An empty userID sends no identity header.
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url, userID string, body any, cookies ...*http.Cookie) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(server.UserIDHeader, userID)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// data returns the payload of a success envelope
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no object payload: %v", resp)
	return d
}

// liveCookies returns the cookies a browser would keep after w
func liveCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var out []*http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge > 0 {
			out = append(out, ck)
		}
	}
	return out
}

func requireDecimal(t *testing.T, want string, got any) {
	t.Helper()
	s, ok := got.(string)
	require.True(t, ok, "expected a decimal string, got %v", got)
	require.True(t, decimal.RequireFromString(want).Equal(decimal.RequireFromString(s)), "want %s, got %s", want, s)
}
