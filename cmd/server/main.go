package main // Entry point package

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Jonboyweb/MM-br3-sub001/internal/config"
	"github.com/Jonboyweb/MM-br3-sub001/internal/database"
	"github.com/Jonboyweb/MM-br3-sub001/internal/handler"
	"github.com/Jonboyweb/MM-br3-sub001/internal/logger"
	"github.com/Jonboyweb/MM-br3-sub001/internal/middleware"
	"github.com/Jonboyweb/MM-br3-sub001/internal/payments"
	"github.com/Jonboyweb/MM-br3-sub001/internal/queue"
	"github.com/Jonboyweb/MM-br3-sub001/internal/repository"
	"github.com/Jonboyweb/MM-br3-sub001/internal/router"
	queue_publisher "github.com/Jonboyweb/MM-br3-sub001/internal/service"
)

func main() {
	// .env is a development convenience; in production the variables are
	// set by the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}
	cfg := config.Load()
	lg := logger.New(cfg.Env, os.Getenv("LOG_FILE"))

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()
	lg.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)

	stripeClient, err := payments.New(cfg.StripeSecretKey, lg)
	if err != nil {
		log.Fatalf("payment client setup failed: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		lg.Warn("redis unavailable, rate limiting and response caching disabled")
	}

	venueRepo := repository.NewVenueRepo(db)
	tableRepo := repository.NewTableRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	staffRepo := repository.NewStaffRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.Register(e, router.Handlers{
		Venues:      handler.NewVenueHandler(venueRepo, lg),
		Tables:      handler.NewTablesHandler(tableRepo, availabilityRepo, lg),
		Payments:    handler.NewPaymentHandler(stripeClient, lg),
		Bookings:    handler.NewBookingHandler(bookingRepo, queue_publisher.PublishBookingCreated, lg),
		Auth:        handler.NewAuthHandler(staffRepo, cfg.JWTSecret, cfg.AccessTTLMin, lg),
		Diagnostics: handler.NewDiagnosticsHandler(db, tableRepo, availabilityRepo, lg),
		CacheMW:     middleware.ResponseCache(config.LoadCacheConfig(), rdb),
		JWTSecret:   cfg.JWTSecret,
	})

	// The consumer keeps its own reconnect loop and never brings the
	// server down with it.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			lg.Error("booking consumer stopped", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
