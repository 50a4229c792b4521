package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-srv/config"
	configRedis "admin-srv/config/redis"
	_ "admin-srv/docs" // Import swagger docs
	"admin-srv/internal/httpserver"
	"admin-srv/pkg/discord"
	pkgHTTP "admin-srv/pkg/http"
	pkgJWT "admin-srv/pkg/jwt"
	"admin-srv/pkg/log"
	"admin-srv/pkg/platformsrv"
)

// @title       Events Platform Admin Service API
// @description Admin gateway for the events platform: authentication, moderation, reports and exports.
// @version     1
// @BasePath    /api
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description Session token stored in HttpOnly cookie. Set automatically by /auth/login endpoint.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize Discord (optional)
	ctx := context.Background()
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized for issuer: %s", cfg.JWT.Issuer)

	// 7. Initialize events platform client
	// Upstream source for auth, moderation records, and report data
	platform := platformsrv.New(platformsrv.PlatformConfig{
		BaseURL:    cfg.Platform.URL,
		CookieName: cfg.Cookie.Name,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:   time.Duration(cfg.Platform.Timeout) * time.Second,
			Retries:   platformsrv.DefaultRetries,
			RetryWait: platformsrv.DefaultRetryWait,
		}),
	})
	logger.Infof(ctx, "Events platform client initialized for %s", cfg.Platform.URL)

	// 8. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Upstream & Cache Configuration
		Platform:    platform,
		RedisClient: redisClient,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (*pkgJWT.Manager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
