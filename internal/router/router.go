package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/storefront-dev/storefront/internal/handlers"
	"github.com/storefront-dev/storefront/internal/middleware"
)

func NewRouter(h *handlers.Handler, logger zerolog.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoverMiddleware(logger))
	r.Use(middleware.MetricsMiddleware())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", h.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("", h.CreateUsers)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	products := r.Group("/products")
	{
		products.POST("", h.CreateProducts)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/user/:user_id", h.GetOrdersForUser)
		orders.GET("/:order_id", h.GetOrder)
		orders.DELETE("/:order_id", h.DeleteOrder)
		orders.GET("/:order_id/products", h.GetProductsForOrder)
		orders.PUT("/:order_id/add_product/:product_id", h.AddProductToOrder)
		orders.DELETE("/:order_id/remove_product/:product_id", h.RemoveProductFromOrder)
	}

	return r
}
