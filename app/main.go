package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"vyoma/config"
	"vyoma/delivery"
	"vyoma/domain"
	"vyoma/repository"
	"vyoma/service"
	"vyoma/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	// JWT secret validation. Refusing to start beats silently signing with a
	// weak default.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET not set")
	}
	if len(jwtSecret) < 32 {
		log.Fatal().Msg("JWT_SECRET must be at least 32 characters. Generate one with: openssl rand -base64 32")
	}

	// The OTP bypass code is a development convenience and never leaves
	// development mode.
	bypassCode := ""
	if os.Getenv("APP_ENV") == "development" {
		bypassCode = os.Getenv("OTP_BYPASS_CODE")
		if bypassCode == "" {
			bypassCode = "123456"
		}
		log.Warn().Msg("OTP bypass code enabled (development mode)")
	}

	// Credential store: Postgres by default, JSON file store as the
	// configured fallback. A failed Postgres boot keeps the server up with
	// the storage gate returning 503.
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	var (
		users   domain.UserRepository
		catalog domain.CatalogRepository
	)
	switch driver {
	case "file":
		path := os.Getenv("FILE_STORE_PATH")
		if path == "" {
			path = "data/store.json"
		}
		repo, err := repository.NewFileUserRepository(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open file store")
		}
		users = repo
		catalog = repository.NewStaticCatalogRepository()
		log.Info().Str("path", path).Msg("using JSON file store")
	case "postgres":
		db, err := config.BootDB()
		if err != nil {
			log.Error().Err(err).Msg("failed to connect to database; auth operations will return 503")
			catalog = repository.NewStaticCatalogRepository()
			break
		}
		users = repository.NewSQLUserRepository(db)
		sqlCatalog := repository.NewSQLCatalogRepository(db)
		if err := sqlCatalog.Seed(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to seed catalog")
		}
		catalog = sqlCatalog
		log.Info().Msg("connected to Postgres")
	default:
		log.Fatal().Str("driver", driver).Msg("unknown STORAGE_DRIVER, expected postgres or file")
	}

	storeAvailable := func() bool { return users != nil }

	// OTP registry: Redis when configured so codes survive restarts,
	// otherwise in-process.
	var otps domain.OTPRegistry
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		registry, err := repository.NewRedisOTPRegistry(addr, os.Getenv("REDIS_PASSWORD"), 0, bypassCode)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		otps = registry
		log.Info().Str("addr", addr).Msg("using Redis OTP registry")
	} else {
		otps = repository.NewMemoryOTPRegistry(bypassCode)
	}

	tokens := utils.NewJWTManager(jwtSecret, service.TokenDuration)
	authService := service.NewAuthService(users, otps, utils.NewSMTPMailerFromEnv(), tokens)
	catalogService := service.NewCatalogService(catalog)

	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()
	config.InitMiddleware(app)

	delivery.NewAuthHandler(app, authService, tokens, storeAvailable)
	delivery.NewCatalogHandler(app, catalogService)
	delivery.NewHealthHandler(app, driver, storeAvailable)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
