package handler

import (
	"net/http"
	"strconv"

	"cafe-commerce/internal/middleware"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

func (h *CartHandler) AddItem(ctx *gin.Context) {
	var req addCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	err := h.cart.AddItem(ctx.Request.Context(), middleware.CustomerID(ctx), req.ProductID, req.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"message": "Item added to cart"})
}

func (h *CartHandler) GetCart(ctx *gin.Context) {
	items, err := h.cart.GetCart(ctx.Request.Context(), middleware.CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *CartHandler) RemoveItem(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("productID"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.cart.RemoveItem(ctx.Request.Context(), middleware.CustomerID(ctx), productID); err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *CartHandler) ClearCart(ctx *gin.Context) {
	if err := h.cart.ClearCart(ctx.Request.Context(), middleware.CustomerID(ctx)); err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
