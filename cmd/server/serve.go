package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/view"
)

const shutdownTimeout = 10 * time.Second

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	log, closer, err := logging.New(logging.Options{
		Development: cfg.IsDevelopment(),
		File:        cfg.LogFile,
		Level:       cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := database.Open(ctx, dbOptions(cfg))
	if err != nil {
		log.WithError(err).Error("database connection failed")
		return err
	}
	defer db.Close()

	if autoMigrate {
		m, err := database.NewMigrator(db)
		if err != nil {
			return err
		}
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		log.Infof("applied %d migration(s)", n)
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Info("redis unavailable, page cache and rate limit disabled")
	} else {
		defer rdb.Close()
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb, log)

	var pub service.Publisher = service.NopPublisher{}
	if cfg.AMQPEnabled {
		pub = service.NewAMQPPublisher(cfg.AMQPURL)
		stopConsumer, err := startConsumer(ctx, cfg, cache, log)
		if err != nil {
			return err
		}
		defer stopConsumer()
	}

	renderer, err := view.NewRenderer(cfg.DateLocale, middleware.Flashes)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	h := &handler.Handler{
		Venues:    repository.NewVenueRepo(db),
		Artists:   repository.NewArtistRepo(db),
		Shows:     repository.NewShowRepo(db),
		Publisher: pub,
		Cache:     cache,
		Log:       log,
	}
	e := router.NewEcho(h, renderer, middleware.NewFlash(cfg.FlashSecret, log), log, router.Middlewares{
		Cache:     cache.Middleware(),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
	})

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBDriver)
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// startConsumer runs the listing event consumer in the background.  The
// returned func stops it and closes the activity log.
func startConsumer(ctx context.Context, cfg config.Config, cache *middleware.RedisCache, log *logrus.Logger) (func(), error) {
	activity, closer, err := logging.NewActivity(cfg.ActivityLog)
	if err != nil {
		return nil, err
	}
	c := &queue.ListingConsumer{
		URL:      cfg.AMQPURL,
		Activity: activity,
		Log:      log,
		OnEvent: func(ctx context.Context, ev queue.ListingEvent) {
			if err := cache.Purge(ctx); err != nil {
				log.WithError(err).Warn("listing-consumer: purge cache")
			}
		},
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("listing-consumer stopped")
		}
	}()
	return func() {
		cancel()
		<-done
		_ = closer.Close()
	}, nil
}
