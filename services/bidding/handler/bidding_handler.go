package handler

import (
	"context"
	"errors"
	"net/http"

	bidding "storefront/internal/biddingService"
	"storefront/internal/models"
	"storefront/internal/shoperrors"
	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_service.go -package=handler

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, itemID, userID string, amount decimal.Decimal) (models.Bid, error)
	GetBidsForItem(ctx context.Context, itemID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, itemID string) (models.Bid, error)
	GetItemsByUser(ctx context.Context, userID string) ([]models.AuctionItem, error)
	ListAuctions(ctx context.Context, state models.AuctionState) ([]bidding.AuctionSummary, error)
	ListAuctionsBySeller(ctx context.Context, sellerID string) ([]bidding.AuctionSummary, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

func toBidResponse(bid models.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.ID,
		AuctionID: bid.AuctionItemID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: helpers.FormatTime(bid.CreatedAt),
	}
}

func toAuctionResponse(item models.AuctionItem, state models.AuctionState, highest *decimal.Decimal) helpers.AuctionResponse {
	resp := helpers.AuctionResponse{
		AuctionID:     item.ID,
		SellerID:      item.SellerID,
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		StartingPrice: item.StartingPrice,
		State:         string(state),
		HighestBid:    highest,
	}
	if item.StartingTime != nil {
		resp.StartingTime = helpers.FormatTime(*item.StartingTime)
	}
	if end, ok := item.EndsAt(); ok {
		resp.EndsAt = helpers.FormatTime(end)
	}
	return resp
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}
	userID := helpers.UserID(c)

	bid, err := h.service.PlaceBid(c.Request.Context(), req.AuctionID, userID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "RecordBidHandler", "record bid", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionItemID,
		"user_id":    userID,
		"amount":     bid.Amount.StringFixed(models.MoneyScale),
	})
}

// ListAuctionsHandler handles GET /auctions?state=&seller_id=
func (h *BiddingHandler) ListAuctionsHandler(c *gin.Context) {
	state := models.AuctionState(c.Query("state"))
	sellerID := c.Query("seller_id")

	var (
		auctions []bidding.AuctionSummary
		err      error
	)
	if sellerID != "" {
		auctions, err = h.service.ListAuctionsBySeller(c.Request.Context(), sellerID)
	} else {
		auctions, err = h.service.ListAuctions(c.Request.Context(), state)
	}
	if err != nil {
		helpers.HandleServiceError(c, "ListAuctionsHandler", "list auctions", err, map[string]any{
			"state":     state,
			"seller_id": sellerID,
		})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		if state != "" && a.State != state {
			continue
		}
		resp = append(resp, toAuctionResponse(a.AuctionItem, a.State, a.HighestBid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"state":     state,
		"seller_id": sellerID,
		"count":     len(resp),
	})
}

// GetBidsByItemHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsByItemHandler(c *gin.Context) {
	itemID := c.Param("auction_id")
	bids, err := h.service.GetBidsForItem(c.Request.Context(), itemID)
	if err != nil && !errors.Is(err, shoperrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsByItemHandler", "retrieve bids", err, map[string]any{"auction_id": itemID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByItemHandler", "bids retrieved successfully", map[string]any{
		"auction_id": itemID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	itemID := c.Param("auction_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, shoperrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": itemID})
			return
		}
		helpers.HandleServiceError(c, "GetWinningBidHandler", "retrieve winning bid", err, map[string]any{"auction_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionItemID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount.StringFixed(models.MoneyScale),
	})
}

// GetItemsByUserHandler handles GET /users/me/auctions
func (h *BiddingHandler) GetItemsByUserHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	items, err := h.service.GetItemsByUser(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, shoperrors.ErrUserNoBids) {
		helpers.HandleServiceError(c, "GetItemsByUserHandler", "retrieve auctions", err, map[string]any{"user_id": userID})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toAuctionResponse(item, "", nil))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("GetItemsByUserHandler", "auctions retrieved successfully", map[string]any{
		"user_id":        userID,
		"auctions_count": len(resp),
	})
}
