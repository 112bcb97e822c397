package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"orcabase-console/internal/config"
	"orcabase-console/internal/orca"
	redisClient "orcabase-console/internal/platform/redis"
	"orcabase-console/internal/session"
)

type App struct {
	Config   *config.Config
	Redis    *redis.Client
	Orca     *orca.Client
	Sessions session.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	orcaClient := orca.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)

	// An empty redis addr falls back to the in-memory store; sessions then
	// survive reloads but not process restarts. Dev only.
	var redisCli *redis.Client
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		redisCli, err = redisClient.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		sessions = session.NewRedisStore(redisCli, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	} else {
		sessions = session.NewMemoryStore()
	}

	return &App{
		Config:    cfg,
		Redis:     redisCli,
		Orca:      orcaClient,
		Sessions:  sessions,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
