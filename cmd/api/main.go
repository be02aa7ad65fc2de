package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"seya-store/internal/config"
	"seya-store/internal/database"
	"seya-store/internal/logging"
	"seya-store/internal/payment"
	"seya-store/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	// sin base de datos el servidor arranca igual y las rutas responden 500
	var client *mongo.Client
	var gateway *database.Gateway
	if cfg.DatabaseConfigured() {
		c, err := database.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("could not connect to MongoDB, continuing without database")
		} else {
			client = c
			gateway = database.NewGateway(client.Database(cfg.DatabaseName))
			log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, continuing without database")
	}

	payments := payment.NewGateway(cfg.StripeSecretKey)
	if !payments.Configured() {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, routes.Dependencies{
		AppName:        cfg.AppName,
		DatabaseURLSet: cfg.DatabaseConfigured(),
		Gateway:        gateway,
		Payments:       payments,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("🚀 server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}
}
