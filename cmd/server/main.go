package main // Entry point package

import (
	"context" // context bounds the schema bootstrap
	"log"     // Logging library
	"time"    // timeout durations

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/hotel-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-reservation/internal/database"   // Database pool + schema
	"github.com/iliyamo/hotel-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-reservation/internal/middleware" // Redis cache + rate limit
	"github.com/iliyamo/hotel-reservation/internal/queue"      // Reservation event consumer
	"github.com/iliyamo/hotel-reservation/internal/registry"   // Reservation registry (the core)
	"github.com/iliyamo/hotel-reservation/internal/repository" // Entity stores
	"github.com/iliyamo/hotel-reservation/internal/router"     // Route registration
	queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// One pool for the whole process, injected into every store.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database schema: %v", err)
	}
	cancel()

	guests := repository.NewGuestRepo(db)
	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)
	reg := registry.New(guests, rooms, reservations, queue_publisher.PublishReservationEvent)

	// Redis is optional: a nil client turns caching and rate limiting
	// into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORS()) // the dashboard UI is served from another origin

	router.RegisterRoutes(e,
		handler.NewGuestHandler(guests),
		handler.NewRoomHandler(rooms),
		handler.NewReservationHandler(reg),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	// Background consumer writing the operator event log. It reconnects
	// forever on broker failures and never takes the server down.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
