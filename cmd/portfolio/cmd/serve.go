package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DhairyaPatel2210/portfolio/internal/api"
	"github.com/DhairyaPatel2210/portfolio/internal/api/handler"
	"github.com/DhairyaPatel2210/portfolio/internal/core/service"
	mongodb "github.com/DhairyaPatel2210/portfolio/internal/infrastructure/db/mongo"
	redisdb "github.com/DhairyaPatel2210/portfolio/internal/infrastructure/db/redis"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/config"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/security"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/token"
	"github.com/DhairyaPatel2210/portfolio/pkg/logger"
)

const serviceName = "portfolio"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}

		log := logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  !cfg.IsProduction(),
			Service: serviceName,
			Env:     cfg.Env,
		})

		proxies, err := cfg.TrustedProxyNets()
		if err != nil {
			return err
		}

		mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()

		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		users := mongodb.NewUserRepository(db)
		origins := mongodb.NewOriginRepository(db)
		tokens := token.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

		e := api.NewRouter(api.Dependencies{
			Auth:         service.NewAuthService(users, security.NewPasswordHasher(cfg.HashCost), tokens, logger.Component("auth")),
			Credentials:  service.NewCredentialService(users, logger.Component("credentials")),
			Origins:      service.NewOriginService(origins, cfg.BuiltinOrigins(), logger.Component("origins")),
			Profiles:     service.NewProfileService(users),
			Contacts:     service.NewContactService(users),
			Tokens:       tokens,
			RateLimiter:  redisdb.NewWindowCounter(rdb, cfg.RateLimit.Window),
			RateLimitMax: cfg.RateLimit.Max,
			Health: map[string]handler.Pinger{
				"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
				"redis":   handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
			},
			TrustedProxies: proxies,
			Cookie:         handler.CookieOptions{Secure: cfg.IsProduction(), MaxAge: cfg.TokenTTL},
			Production:     cfg.IsProduction(),
			Log:            logger.Component("http"),
		})

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           e,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		done := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				done <- fmt.Errorf("server failed: %w", err)
				return
			}
			done <- nil
		}()

		log.Info().Str("port", cfg.Port).Msg("server started")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(sctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		case err := <-done:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
