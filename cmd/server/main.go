package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/padelhq/padel-reservation/internal/config"     // Internal config loader
	"github.com/padelhq/padel-reservation/internal/database"   // MySQL connection helper
	"github.com/padelhq/padel-reservation/internal/handler"    // HTTP handlers
	"github.com/padelhq/padel-reservation/internal/middleware" // Rate limiter and cache middleware
	"github.com/padelhq/padel-reservation/internal/queue"      // Booking event consumer
	"github.com/padelhq/padel-reservation/internal/repository" // Data access layer
	"github.com/padelhq/padel-reservation/internal/router"     // Route registration
)

func main() {
	// Load a local .env when present; in production the variables come from
	// the environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs both the global rate limiter and the availability cache.
	rdb := config.NewRedisClient()

	courtRepo := repository.NewCourtRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	blockedRepo := repository.NewBlockedSlotRepo(db)

	availabilityH := handler.NewAvailabilityHandler(cfg, courtRepo, bookingRepo, blockedRepo)
	bookingH := handler.NewBookingHandler(cfg, courtRepo, bookingRepo)
	adminH := handler.NewAdminHandler(courtRepo, blockedRepo)
	blockedH := handler.NewBlockedSlotHandler(cfg, courtRepo, blockedRepo)

	e := echo.New() // Create Echo instance
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e) // Health check
	router.RegisterAvailability(e, availabilityH, cfg.JWTSecret,
		middleware.NewAvailabilityCache(config.LoadCacheConfig(), rdb))
	router.RegisterBookings(e, bookingH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, blockedH, cfg.JWTSecret)

	// The consumer runs for the lifetime of the process and reconnects on
	// broker failures; it never takes the HTTP server down with it.
	go func() {
		if err := queue.StartBookingEventConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
