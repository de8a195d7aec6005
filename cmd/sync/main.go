// Command sync runs the feed sync once and exits. It is the same job the
// server runs at startup, for use from cron or by hand.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/partidos/partidos-service/internal/config"
	"github.com/partidos/partidos-service/internal/database"
	"github.com/partidos/partidos-service/internal/feed"
	"github.com/partidos/partidos-service/internal/feedsync"
	partidorepo "github.com/partidos/partidos-service/internal/partido/repository"
	statusrepo "github.com/partidos/partidos-service/internal/status/repository"
	"github.com/partidos/partidos-service/internal/storage"
	"github.com/partidos/partidos-service/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	store := database.NewStore(client, cfg.MongoDB.Database)

	opts := []feedsync.Option{feedsync.WithFixtureLimit(cfg.Sync.FixtureLimit)}
	if cfg.MinIO.Endpoint != "" {
		if arch, err := storage.NewMinIOStorage(ctx, cfg.MinIO); err != nil {
			logger.Warnf("payload archive disabled: %v", err)
		} else {
			opts = append(opts, feedsync.WithArchiver(arch))
		}
	}

	syncer := feedsync.New(
		feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.APIKey, cfg.Feed.Timeout),
		partidorepo.NewMongoRepo(store.Partidos),
		statusrepo.NewMongoRepo(store.Status),
		opts...,
	)
	rep := syncer.Run(ctx)
	fmt.Printf("status saved: %v\nfixtures fetched: %d\nfixtures inserted: %d\n",
		rep.StatusSaved, rep.FixturesFetched, rep.FixturesInserted)
}
