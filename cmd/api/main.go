package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelhub/internal/config"
	"hotelhub/internal/database"
	"hotelhub/internal/logger"
	"hotelhub/internal/metrics"
	"hotelhub/internal/middleware"
	"hotelhub/internal/modules/auth"
	"hotelhub/internal/modules/booking"
	"hotelhub/internal/modules/catalog"
	"hotelhub/internal/modules/notification"
	"hotelhub/internal/modules/review"
	jwtsvc "hotelhub/internal/pkg/jwt"
	"hotelhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "error", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate database", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	sender := notification.NewSender(hub)
	notificationHandler := notification.NewHandler(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(hotelRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, sender)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, hotelRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterRoutes(protected)

			managers := protected.Group("")
			managers.Use(middleware.ManagerOnly())
			{
				catalogHandler.RegisterManagerRoutes(managers)
				bookingHandler.RegisterManagerRoutes(managers)
			}
		}
	}

	logger.Get().Info("starting server", "addr", cfg.Addr, "env", cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
