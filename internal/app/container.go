package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Mal-1702/ats-backend/internal/config"
	"github.com/Mal-1702/ats-backend/internal/database"
	dbpostgres "github.com/Mal-1702/ats-backend/internal/database/postgres"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/cache"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/matcher"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/storage"
	"github.com/Mal-1702/ats-backend/internal/worker"
	"github.com/Mal-1702/ats-backend/internal/ws"
)

// Container owns every process-wide dependency: connections, the upload
// store, the matcher client, the ranking worker pool and the websocket
// hub. Close tears them down in reverse order of construction.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Store   *storage.LocalStore
	Matcher matcher.Client
	Pool    *worker.Pool
	Hub     *ws.Hub

	poolCancel context.CancelFunc
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	store, err := storage.NewLocalStore(cfg.Upload)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   cache.NewRedis(cfg.Redis, logger),
		Store:   store,
		Matcher: matcher.NewClient(cfg.Matcher.BaseURL, cfg.Matcher.Timeout, logger),
		Pool:    worker.NewPool(cfg.Worker.Workers, cfg.Worker.Buffer),
		Hub:     ws.NewHub(logger),
	}

	c.start()
	return c, nil
}

// start launches the long-lived goroutines: the websocket hub loop, the
// worker pool and a drain of its result channel.
func (c *Container) start() {
	go c.Hub.Run()

	poolCtx, cancel := context.WithCancel(context.Background())
	c.poolCancel = cancel

	results := c.Pool.Run(poolCtx)
	go func() {
		for r := range results {
			if r.Err != nil && c.Logger != nil {
				c.Logger.Printf("[Worker] task error: %v", r.Err)
			}
		}
	}()
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.poolCancel != nil {
		c.poolCancel()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
