package handler

import (
	"net/http"
	"strconv"

	"cafe-commerce/internal/middleware"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	Items         []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	DeliveryFee   decimal.Decimal    `json:"delivery_fee"`
}

func (h *OrderHandler) PlaceOrder(ctx *gin.Context) {
	var req placeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, pointsEarned, err := h.orders.PlaceOrder(ctx.Request.Context(), middleware.CustomerID(ctx), service.PlaceOrderInput{
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		DeliveryFee:   req.DeliveryFee,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusCreated, gin.H{
		"message":       "Order placed successfully",
		"order":         order,
		"points_earned": pointsEarned,
	})
}

func (h *OrderHandler) ListOrders(ctx *gin.Context) {
	orders, err := h.orders.ListOrders(ctx.Request.Context(), middleware.CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orders.GetOrder(ctx.Request.Context(), middleware.CustomerID(ctx), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) CancelOrder(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orders.CancelOrder(ctx.Request.Context(), middleware.CustomerID(ctx), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}
