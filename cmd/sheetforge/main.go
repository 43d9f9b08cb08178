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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetforge/sheetforge/internal/catalog"
	"github.com/sheetforge/sheetforge/internal/config"
	"github.com/sheetforge/sheetforge/internal/handlers/api"
	charrepo "github.com/sheetforge/sheetforge/internal/repositories/characters"
	"github.com/sheetforge/sheetforge/internal/repositories/content"
	charsvc "github.com/sheetforge/sheetforge/internal/services/character"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetforge",
		Short: "Character sheet progression service",
	}
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	repo, err := newCharacterRepository(cfg, logger)
	if err != nil {
		return err
	}

	cat := catalog.New(&catalog.Config{
		Repository: content.NewInMemoryRepository(nil),
	})

	svc := charsvc.NewService(&charsvc.ServiceConfig{
		Repository: repo,
		Catalog:    cat,
		Logger:     logger,
	})

	handler := api.NewHandler(&api.HandlerConfig{
		Service: svc,
		Catalog: cat,
		Logger:  logger,
	})

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router.Group("/api/v1"))

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if cfg.PrettyLog {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return out.Level(level).With().Timestamp().Logger()
}

// newCharacterRepository picks redis when configured, otherwise the
// in-memory store for local development.
func newCharacterRepository(cfg *config.Config, logger zerolog.Logger) (charrepo.Repository, error) {
	if cfg.RedisURL == "" {
		logger.Warn().Msg("no redis configured, characters are stored in memory")
		return charrepo.NewInMemoryRepository(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return charrepo.NewRedisRepository(&charrepo.RedisRepoConfig{Client: client}), nil
}
