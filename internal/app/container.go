package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"jobfit/internal/catalog"
	"jobfit/internal/config"
	"jobfit/internal/database"
	dbpostgres "jobfit/internal/database/postgres"
	"jobfit/internal/domain/matching"
	"jobfit/internal/infrastructure/cache"
	"jobfit/internal/pipeline"
	"jobfit/internal/queue"
	"jobfit/internal/repository"
	"jobfit/internal/usecase"
	"jobfit/internal/ws"
)

// Container owns every long-lived dependency of a process.
type Container struct {
	Config config.Config
	Logger *slog.Logger

	DB        database.DB
	Cache     *cache.Redis
	Hub       *ws.Hub
	Publisher *queue.Publisher
	Engine    *matching.Engine

	Matching   *usecase.Matching
	SkillGap   *usecase.SkillGap
	Comparison *usecase.Comparison
	Trends     *usecase.Trends
	Batch      *usecase.Batch

	stopHub context.CancelFunc
}

func NewContainer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(connectCtx, cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		Engine: matching.New(cat),
	}

	if cfg.AMQP.URL != "" {
		pub, err := queue.NewPublisher(cfg.AMQP)
		if err != nil {
			// The API keeps serving synchronous batches without a broker.
			logger.Warn("rabbitmq unavailable, async batches disabled", "component", "queue", "error", err)
		} else {
			c.Publisher = pub
		}
	}

	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobPostingRepository(db)
	matches := repository.NewPostgresMatchRepository(db)

	c.Matching = usecase.NewMatchingUsecase(c.Engine, profiles, jobs, matches, c.Cache, cfg.Redis.TTL, logger)
	c.SkillGap = usecase.NewSkillGapUsecase(c.Engine, profiles, jobs, logger)
	c.Comparison = usecase.NewComparisonUsecase(c.Engine, matches, logger)
	c.Trends = usecase.NewTrendsUsecase(c.Engine, profiles, jobs, logger)
	c.Batch = usecase.NewBatchUsecase(c.Matching, pipeline.NewBatchScorer(cfg.Batch, logger), c.Hub)

	hubCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	c.stopHub = stop
	go c.Hub.Run(hubCtx)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Publisher != nil {
		errs = append(errs, c.Publisher.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
