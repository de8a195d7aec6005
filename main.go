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
	"github.com/partidos/partidos-service/handlers"
	"github.com/partidos/partidos-service/internal/config"
	"github.com/partidos/partidos-service/internal/database"
	"github.com/partidos/partidos-service/internal/feed"
	"github.com/partidos/partidos-service/internal/feedsync"
	partidohandler "github.com/partidos/partidos-service/internal/partido/handler"
	partidorepo "github.com/partidos/partidos-service/internal/partido/repository"
	"github.com/partidos/partidos-service/internal/partido/service"
	statushandler "github.com/partidos/partidos-service/internal/status/handler"
	statusrepo "github.com/partidos/partidos-service/internal/status/repository"
	"github.com/partidos/partidos-service/internal/storage"
	"github.com/partidos/partidos-service/pkg/logger"
	"github.com/partidos/partidos-service/pkg/metrics"
	"github.com/partidos/partidos-service/pkg/middleware"
	"github.com/partidos/partidos-service/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	// LOG_LEVEL is read before the config so config errors are logged at the right level
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: db=%s redis=%v minio=%v sync_on_start=%v",
		cfg.MongoDB.Database, cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.Sync.OnStart)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)

	store := database.NewStore(client, cfg.MongoDB.Database)
	partidos := partidorepo.NewMongoRepo(store.Partidos)
	statuses := statusrepo.NewMongoRepo(store.Status)

	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery(), middleware.RequestMetrics())

	checks := map[string]handlers.Check{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
	}

	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			logger.Infof("connected to Redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter enabled (redis, rps=%.1f burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter enabled (memory, rps=%.1f burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	partidohandler.RegisterRoutes(r, service.New(partidos))
	statushandler.RegisterRoutes(r, statuses)
	handlers.RegisterHealth(r, checks)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	web.Register(r)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("Servidor corriendo en http://%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	if cfg.Sync.OnStart {
		syncer := newSyncer(ctx, cfg, partidos, statuses)
		go func() {
			rep := syncer.Run(ctx)
			logger.Infof("startup sync done: status_saved=%v fixtures=%d/%d",
				rep.StatusSaved, rep.FixturesInserted, rep.FixturesFetched)
		}()
	}

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
}

func newSyncer(ctx context.Context, cfg *config.Config, partidos partidorepo.Repository, statuses statusrepo.Repository) *feedsync.Syncer {
	opts := []feedsync.Option{feedsync.WithFixtureLimit(cfg.Sync.FixtureLimit)}
	if cfg.MinIO.Endpoint != "" {
		arch, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("payload archive disabled: %v", err)
		} else {
			opts = append(opts, feedsync.WithArchiver(arch))
		}
	}
	client := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.APIKey, cfg.Feed.Timeout)
	return feedsync.New(client, partidos, statuses, opts...)
}
