package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aetherium/battle-api/internal/clients/chain"
	apiv1 "github.com/aetherium/battle-api/internal/handlers/api/v1"
	"github.com/aetherium/battle-api/internal/metrics"
	battleorch "github.com/aetherium/battle-api/internal/orchestrators/battle"
	"github.com/aetherium/battle-api/internal/pkg/idgen"
	redisclient "github.com/aetherium/battle-api/internal/redis"
	battlerepo "github.com/aetherium/battle-api/internal/repositories/battle"
	characterrepo "github.com/aetherium/battle-api/internal/repositories/character"
	"github.com/aetherium/battle-api/internal/rules"
)

var (
	httpPort  int
	redisAddr string
	chainURL  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the battle API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&chainURL, "chain-url", "http://localhost:9000", "chain gateway base URL")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	e, err := buildServer()
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := e.Start(fmt.Sprintf(":%d", httpPort)); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, closing", "error", err.Error())
			return e.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildServer() (*echo.Echo, error) {
	redisClient, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	battleRepo, err := battlerepo.NewRedis(&battlerepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle repository: %w", err)
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	chainClient, err := chain.NewHTTPClient(&chain.HTTPConfig{BaseURL: chainURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create chain client: %w", err)
	}

	registry := prometheus.NewRegistry()

	battleService, err := battleorch.NewOrchestrator(&battleorch.Config{
		BattleRepo:    battleRepo,
		CharacterRepo: characterRepo,
		Catalog:       rules.NewCatalog(),
		ChainClient:   chainClient,
		IDGenerator:   idgen.NewUUID("battle"),
		Metrics:       metrics.New(registry),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	handler, err := apiv1.NewHandler(&apiv1.HandlerConfig{BattleService: battleService})
	if err != nil {
		return nil, fmt.Errorf("failed to create API handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = apiv1.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	handler.Register(e.Group("/api"))

	e.GET("/healthz", func(c echo.Context) error {
		if err := redisClient.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return e, nil
}
