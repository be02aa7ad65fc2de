package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seya-store/internal/database"
	"seya-store/internal/handlers"
	"seya-store/internal/metrics"
	"seya-store/internal/middleware"
	"seya-store/internal/payment"
	"seya-store/internal/repository"
)

// Dependencies se construyen una vez en main. Gateway es nil si no hay base de datos.
type Dependencies struct {
	AppName        string
	DatabaseURLSet bool
	Gateway        *database.Gateway
	Payments       *payment.Gateway
}

var corsHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language", "Authorization", "X-Requested-With", "X-Request-ID"}

// CORS permisivo: cualquier origen (reflejado), con credenciales.
// Con credenciales Allow-Headers no admite "*".
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowHeaders:     corsHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	handlers.RegisterValidation()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		cors.New(corsConfig()),
	)

	var (
		products handlers.ProductStore
		blog     handlers.BlogStore
		messages handlers.MessageStore
		dbInfo   handlers.DatabaseInfo
	)
	if deps.Gateway != nil {
		products = repository.NewProductRepository(deps.Gateway)
		blog = repository.NewBlogRepository(deps.Gateway)
		messages = repository.NewMessageRepository(deps.Gateway)
		dbInfo = deps.Gateway
	}

	var payments handlers.CheckoutCreator
	if deps.Payments != nil {
		payments = deps.Payments
	}

	health := handlers.NewHealthHandler(deps.AppName, deps.DatabaseURLSet, dbInfo)
	productHandler := handlers.NewProductHandler(products)
	blogHandler := handlers.NewBlogHandler(blog)
	contactHandler := handlers.NewContactHandler(messages)
	checkoutHandler := handlers.NewCheckoutHandler(payments)

	router.GET("/", health.Root)
	router.GET("/test", health.Diagnostics)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/seed", productHandler.Seed)
		api.POST("/contact", contactHandler.Submit)
		api.GET("/blog", blogHandler.ListPosts)
		api.POST("/checkout", checkoutHandler.CreateSession)
	}
}
