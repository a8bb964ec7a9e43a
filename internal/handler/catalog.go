package handler

import (
	"net/http"
	"strconv"

	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(ctx *gin.Context) {
	var filter service.ProductFilter

	if v := ctx.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(ctx, http.StatusBadRequest, "Invalid category_id")
			return
		}
		filter.CategoryID = &id
	}

	filter.Search = ctx.Query("search")

	if v := ctx.Query("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			response.Error(ctx, http.StatusBadRequest, "Invalid min_price")
			return
		}
		filter.MinPrice = &price
	}
	if v := ctx.Query("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			response.Error(ctx, http.StatusBadRequest, "Invalid max_price")
			return
		}
		filter.MaxPrice = &price
	}

	products, err := h.catalog.ListProducts(ctx.Request.Context(), filter)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"product": product})
}

func (h *CatalogHandler) ListCategories(ctx *gin.Context) {
	categories, err := h.catalog.ListCategories(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) ListProductsByCategory(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, products, err := h.catalog.ListProductsByCategory(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{
		"category": category,
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) FeaturedProducts(ctx *gin.Context) {
	products, err := h.catalog.FeaturedProducts(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}

	response.OK(ctx, http.StatusOK, gin.H{"products": products})
}
