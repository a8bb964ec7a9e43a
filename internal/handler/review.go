package handler

import (
	"net/http"
	"strconv"

	"cafe-commerce/internal/middleware"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) CreateReview(ctx *gin.Context) {
	var req createReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviews.CreateReview(ctx.Request.Context(), middleware.CustomerID(ctx), req.ProductID, req.Rating, req.Comment)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusCreated, gin.H{
		"message": "Review submitted successfully",
		"review":  review,
	})
}

func (h *ReviewHandler) ListAllReviews(ctx *gin.Context) {
	reviews, err := h.reviews.ListAllReviews(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func (h *ReviewHandler) ListProductReviews(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, reviews, avg, err := h.reviews.ListProductReviews(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"product_id":     product.ID,
		"product_name":   product.Name,
		"reviews":        reviews,
		"count":          len(reviews),
		"average_rating": avg,
	})
}

func (h *ReviewHandler) ListCustomerReviews(ctx *gin.Context) {
	reviews, err := h.reviews.ListCustomerReviews(ctx.Request.Context(), middleware.CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) UpdateReview(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid review id")
		return
	}

	var req updateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.reviews.UpdateReview(ctx.Request.Context(), middleware.CustomerID(ctx), id, service.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

func (h *ReviewHandler) DeleteReview(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := h.reviews.DeleteReview(ctx.Request.Context(), middleware.CustomerID(ctx), id); err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
