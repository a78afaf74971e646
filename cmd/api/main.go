package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/admin"
	"github.com/BrandonJafeth/landing-photography/internal/auth"
	"github.com/BrandonJafeth/landing-photography/internal/cache"
	"github.com/BrandonJafeth/landing-photography/internal/config"
	"github.com/BrandonJafeth/landing-photography/internal/contact"
	"github.com/BrandonJafeth/landing-photography/internal/db"
	"github.com/BrandonJafeth/landing-photography/internal/gallery"
	"github.com/BrandonJafeth/landing-photography/internal/middleware"
	"github.com/BrandonJafeth/landing-photography/internal/notifications"
	"github.com/BrandonJafeth/landing-photography/internal/services"
	"github.com/BrandonJafeth/landing-photography/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "landing-photography",
		}
	}

	mailer := notifications.NewResendClient(cfg.ResendAPIKey, cfg.SenderEmail, cfg.SenderName, cfg.AdminNotifyEmail)
	if mailer == nil {
		logger.Info("resend mailer disabled")
	} else {
		logger.Info("resend mailer enabled", slog.String("sender", cfg.SenderEmail))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	contactRepo := contact.NewRepository(cols.ContactMessages)
	var notifier contact.Notifier
	if mailer != nil {
		notifier = mailer
	}
	contactService := contact.NewService(contactRepo, cfg.Timezone, notifier)
	contactHandler := contact.NewHandler(contactService, val, logger)

	galleryRepo := gallery.NewRepository(cols.PortfolioImages, cols.ImageCategories)
	galleryService := gallery.NewService(galleryRepo, cfg.Timezone)
	galleryHandler := gallery.NewHandler(galleryService, val, logger, cacheStore, cacheTTL, time.Duration(cfg.HeroIntervalSec)*time.Second)

	servicesRepo := services.NewRepository(cols.Services)
	servicesCatalog := services.NewCatalog(servicesRepo, cfg.Timezone)
	servicesHandler := services.NewHandler(servicesCatalog, val, logger, cacheStore, cacheTTL)

	adminHandler := admin.NewHandler(cfg, jwtManager, cols.AdminUsers, val, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(func(req *http.Request) string {
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			return rctx.RoutePattern()
		}
		return ""
	}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.FrontendOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/portfolio", galleryHandler.PublicCatalog)
		api.Get("/portfolio/featured", galleryHandler.PublicFeatured)
		api.Get("/portfolio/categories", galleryHandler.PublicCategories)
		api.Get("/services", servicesHandler.PublicList)
		api.Get("/services/{slug}", servicesHandler.PublicGetBySlug)
		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.Submit)

		api.Route("/admin", func(adminRoutes chi.Router) {
			adminRoutes.Post("/login", adminHandler.Login)
			adminRoutes.Post("/refresh", adminHandler.Refresh)
			adminRoutes.Post("/logout", adminHandler.Logout)

			adminRoutes.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				protected.Get("/contacts", contactHandler.AdminList)
				protected.Get("/contacts/{id}", contactHandler.AdminGetByID)
				protected.Patch("/contacts/{id}/status", contactHandler.AdminUpdateStatus)
				protected.Post("/contacts/{id}/response", contactHandler.AdminRespond)

				protected.Post("/portfolio", galleryHandler.AdminCreateImage)
				protected.Put("/portfolio/{id}", galleryHandler.AdminUpdateImage)
				protected.Delete("/portfolio/{id}", galleryHandler.AdminDeleteImage)
				protected.Post("/portfolio/categories", galleryHandler.AdminCreateCategory)
				protected.Put("/portfolio/categories/{id}", galleryHandler.AdminUpdateCategory)
				protected.Delete("/portfolio/categories/{id}", galleryHandler.AdminDeleteCategory)

				protected.Get("/services", servicesHandler.AdminList)
				protected.Post("/services", servicesHandler.AdminCreate)
				protected.Put("/services/{id}", servicesHandler.AdminUpdate)
				protected.Delete("/services/{id}", servicesHandler.AdminDelete)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
