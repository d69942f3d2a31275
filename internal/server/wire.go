package server

import (
	"time"

	bidding "storefront/internal/biddingService"
	cart "storefront/internal/cartService"
	checkout "storefront/internal/checkoutService"
	"storefront/internal/clock"
	payment "storefront/internal/paymentService"
	pending "storefront/internal/pendingRegistry"
	"storefront/internal/repository"
	wallet "storefront/internal/walletService"
)

// Dependencies are the collaborators every service is built on
type Dependencies struct {
	Repo        repository.ShopDB
	Indexer     payment.Indexer
	Gateway     wallet.Gateway
	Clock       clock.Clock
	TokenSecret []byte
	PendingTTL  time.Duration
	Payment     payment.Settings
}

// NewServices builds the application services over deps. The registry is
// returned separately so the caller can run the expiry sweeper.
func NewServices(deps Dependencies) (Services, *pending.Registry) {
	registry := pending.NewRegistry(deps.Repo, deps.TokenSecret, deps.PendingTTL, deps.Clock)
	confirmer := payment.NewConfirmer(deps.Indexer)

	return Services{
		Bidding:  bidding.NewBiddingService(deps.Repo, deps.Clock),
		Cart:     cart.NewCartService(deps.Repo),
		Checkout: checkout.NewCheckoutService(deps.Repo, registry, deps.Payment.AssetDecimals, deps.Clock),
		Payment:  payment.NewPaymentService(deps.Repo, confirmer, deps.Payment, deps.Clock),
		Wallet:   wallet.NewWalletService(deps.Repo, deps.Gateway, deps.Payment.AssetDecimals, deps.Clock),
	}, registry
}
