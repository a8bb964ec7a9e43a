package handler

import (
	"cafe-commerce/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter wires every route group onto a gin engine.
func NewRouter(
	authH *AuthHandler,
	catalogH *CatalogHandler,
	orderH *OrderHandler,
	reviewH *ReviewHandler,
	cartH *CartHandler,
	rewardsH *RewardsHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware("cafe-commerce"))

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.GET("/profile", middleware.Auth(), authH.GetProfile)
		auth.PUT("/profile", middleware.Auth(), authH.UpdateProfile)
		auth.POST("/change-password", middleware.Auth(), authH.ChangePassword)
	}

	products := r.Group("/products")
	{
		products.GET("", catalogH.ListProducts)
		products.GET("/categories", catalogH.ListCategories)
		products.GET("/featured", catalogH.FeaturedProducts)
		products.GET("/category/:id", catalogH.ListProductsByCategory)
		products.GET("/:id", catalogH.GetProduct)
	}

	orders := r.Group("/orders", middleware.Auth())
	{
		orders.POST("", orderH.PlaceOrder)
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)
		orders.PUT("/:id/cancel", orderH.CancelOrder)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewH.ListAllReviews)
		reviews.POST("", middleware.Auth(), reviewH.CreateReview)
		reviews.GET("/product/:id", reviewH.ListProductReviews)
		reviews.GET("/customer", middleware.Auth(), reviewH.ListCustomerReviews)
		reviews.PUT("/:id", middleware.Auth(), reviewH.UpdateReview)
		reviews.DELETE("/:id", middleware.Auth(), reviewH.DeleteReview)
	}

	cart := r.Group("/cart", middleware.Auth())
	{
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.DELETE("/items/:productID", cartH.RemoveItem)
		cart.DELETE("", cartH.ClearCart)
	}

	r.GET("/rewards", middleware.Auth(), rewardsH.GetLedger)

	return r
}
