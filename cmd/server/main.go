package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kiasuhub/garang-guni-backend/internal/config"
	"github.com/kiasuhub/garang-guni-backend/internal/database"
	"github.com/kiasuhub/garang-guni-backend/internal/handler"
	"github.com/kiasuhub/garang-guni-backend/internal/middleware"
	"github.com/kiasuhub/garang-guni-backend/internal/queue"
	"github.com/kiasuhub/garang-guni-backend/internal/repository"
	"github.com/kiasuhub/garang-guni-backend/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if cfg.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.RunMigrations(ctx, db); err != nil {
			cancel()
			log.Fatalf("migrations: %v", err)
		}
		cancel()
	}

	rdb := config.NewRedisClient()

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)
	items := repository.NewItemRepo(db)
	images := repository.NewImageRepo(db)
	locations := repository.NewLocationRepo(db)
	dealers := repository.NewScrapDealerRepo(db)
	slots := repository.NewAvailabilityRepo(db)
	contacts := repository.NewContactRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens)
	userH := handler.NewUserHandler(users)
	bookingH := handler.NewBookingHandler(bookings, locations)
	itemH := handler.NewItemHandler(items)
	imageH := handler.NewImageHandler(images, items)
	locationH := handler.NewLocationHandler(locations)
	dealerH := handler.NewScrapDealerHandler(dealers, slots)
	availH := handler.NewAvailabilityHandler(slots, dealers)
	contactH := handler.NewContactHandler(contacts)

	e := echo.New()
	e.HideBanner = true

	// Token-bucket rate limiting applies to every route; the response cache
	// is handed to the directory routes only, where repeated GETs dominate.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, userH, cfg.JWTSecret)
	router.RegisterBookings(e, bookingH, itemH, imageH, cfg.JWTSecret)
	router.RegisterDirectory(e, locationH, availH, contactH, cfg.JWTSecret, cacheMW)
	router.RegisterScrapDealers(e, dealerH, availH, cfg.JWTSecret)

	// Background consumer mirrors published booking events into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
