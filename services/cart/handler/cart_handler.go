package handler

import (
	"context"
	"net/http"

	cart "storefront/internal/cartService"
	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=cart_handler.go -destination=mock_cart_service.go -package=handler

type CartServiceInterface interface {
	AddItem(ctx context.Context, userID, itemID string, quantity int) (cart.View, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (cart.View, error)
	RemoveItem(ctx context.Context, userID, itemID string) (cart.View, error)
	Clear(ctx context.Context, userID string) error
	GetCart(ctx context.Context, userID string) (cart.View, error)
}

type CartHandler struct {
	service CartServiceInterface
}

func NewCartHandler(service CartServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// GetCartHandler handles GET /cart
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	view, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetCartHandler", "read cart", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "cart retrieved successfully")
	helpers.LogSuccess("GetCartHandler", "cart retrieved successfully", map[string]any{
		"user_id": userID,
		"lines":   len(view.Lines),
	})
}

// AddItemHandler handles POST /cart/items
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var req helpers.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}
	userID := helpers.UserID(c)

	view, err := h.service.AddItem(c.Request.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		helpers.HandleServiceError(c, "AddItemHandler", "add item", err, map[string]any{
			"user_id": userID,
			"item_id": req.ItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, view, "item added to cart")
	helpers.LogSuccess("AddItemHandler", "item added to cart", map[string]any{
		"user_id":  userID,
		"item_id":  req.ItemID,
		"quantity": req.Quantity,
	})
}

// UpdateItemHandler handles PUT /cart/items/:item_id
func (h *CartHandler) UpdateItemHandler(c *gin.Context) {
	var req helpers.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}
	userID := helpers.UserID(c)
	itemID := c.Param("item_id")

	view, err := h.service.UpdateQuantity(c.Request.Context(), userID, itemID, req.Quantity)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateItemHandler", "update item", err, map[string]any{
			"user_id": userID,
			"item_id": itemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "cart item updated")
	helpers.LogSuccess("UpdateItemHandler", "cart item updated", map[string]any{
		"user_id":  userID,
		"item_id":  itemID,
		"quantity": req.Quantity,
	})
}

// RemoveItemHandler handles DELETE /cart/items/:item_id
func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	itemID := c.Param("item_id")

	view, err := h.service.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		helpers.HandleServiceError(c, "RemoveItemHandler", "remove item", err, map[string]any{
			"user_id": userID,
			"item_id": itemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "cart item removed")
	helpers.LogSuccess("RemoveItemHandler", "cart item removed", map[string]any{
		"user_id": userID,
		"item_id": itemID,
	})
}

// ClearCartHandler handles DELETE /cart
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	userID := helpers.UserID(c)
	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		helpers.HandleServiceError(c, "ClearCartHandler", "clear cart", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "cart cleared")
	helpers.LogSuccess("ClearCartHandler", "cart cleared", map[string]any{"user_id": userID})
}
