package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"newsagent/db"
	"newsagent/internal/agent"
	"newsagent/internal/config"
	"newsagent/internal/handler"
	"newsagent/internal/logger"
	"newsagent/internal/repository"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(logger.New(os.Stdout, "api", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		recorders []agent.Recorder
		store     handler.DigestStore
		checks    = map[string]handler.Pinger{}
	)

	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		digestRepo := repository.NewDigestRepository(db.DB)
		if err := digestRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("error creating digest table: %v", err)
		}

		recorders = append(recorders, digestRepo)
		store = digestRepo
		checks["database"] = digestRepo
	}

	if cfg.RedisURL != "" {
		err = db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		feed := repository.NewDigestFeed(db.DigestQueueKey)
		recorders = append(recorders, feed)
		checks["redis"] = feed
	}

	svc, err := agent.FromConfig(ctx, cfg, recorders...)
	if err != nil {
		log.Fatalf("error creating news agent: %v", err)
	}

	newsHandler := handler.NewNewsHandler(svc)
	digestHandler := handler.NewDigestHandler(store)
	healthHandler := handler.NewHealthHandler(checks)

	r := gin.New()
	r.Use(handler.RequestID(), gin.Logger(), handler.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
	}))

	r.GET("/", newsHandler.GetRoot)
	r.POST("/fetch-news", newsHandler.FetchNews)
	r.GET("/digests", digestHandler.GetDigests)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: r,
	}

	go func() {
		slog.Info("api listening", "addr", cfg.BindAddr, "provider", cfg.LLMProvider, "archive", store != nil, "feed", cfg.RedisURL != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error shutting down server", "error", err)
	}
}
