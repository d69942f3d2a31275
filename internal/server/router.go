package server

import (
	biddinghandler "storefront/services/bidding/handler"
	carthandler "storefront/services/cart/handler"
	checkouthandler "storefront/services/checkout/handler"
	paymenthandler "storefront/services/payment/handler"
	wallethandler "storefront/services/wallet/handler"

	"github.com/gin-gonic/gin"
)

// Services are the application services exposed over HTTP
type Services struct {
	Bidding  biddinghandler.BiddingServiceInterface
	Cart     carthandler.CartServiceInterface
	Checkout checkouthandler.CheckoutServiceInterface
	Payment  paymenthandler.PaymentServiceInterface
	Wallet   wallethandler.WalletServiceInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(services Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)

	biddingHandler := biddinghandler.NewBiddingHandler(services.Bidding)
	cartHandler := carthandler.NewCartHandler(services.Cart)
	checkoutHandler := checkouthandler.NewCheckoutHandler(services.Checkout)
	paymentHandler := paymenthandler.NewPaymentHandler(services.Payment)
	walletHandler := wallethandler.NewWalletHandler(services.Wallet)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.RecordBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", biddingHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByItemHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/me/auctions", biddingHandler.GetItemsByUserHandler)
	}

	cart := router.Group("/cart")
	{
		cart.GET("", cartHandler.GetCartHandler)
		cart.DELETE("", cartHandler.ClearCartHandler)
		cart.POST("/items", cartHandler.AddItemHandler)
		cart.PUT("/items/:item_id", cartHandler.UpdateItemHandler)
		cart.DELETE("/items/:item_id", cartHandler.RemoveItemHandler)
	}

	checkout := router.Group("/checkout")
	{
		checkout.POST("", checkoutHandler.SettleCheckoutHandler)
		checkout.POST("/wallet", checkoutHandler.StartWalletCheckoutHandler)
		checkout.POST("/wallet/validate", checkoutHandler.ValidatePendingHandler)
		checkout.POST("/wallet/cancel", checkoutHandler.CancelPendingHandler)
	}

	payments := router.Group("/payments")
	{
		payments.POST("/intents", paymentHandler.CreateIntentHandler)
		payments.POST("/confirm", paymentHandler.ConfirmPaymentHandler)
	}

	wallet := router.Group("/wallet")
	{
		wallet.GET("", walletHandler.GetWalletHandler)
		wallet.PUT("/address", walletHandler.UpdateAddressHandler)
		wallet.POST("/deposit", walletHandler.DepositHandler)
		wallet.POST("/withdraw", walletHandler.WithdrawHandler)
	}

	return router
}
