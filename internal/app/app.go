package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/sambulosenda/news-sub001/internal/config"
	"github.com/sambulosenda/news-sub001/internal/engine"
	"github.com/sambulosenda/news-sub001/internal/geo"
	"github.com/sambulosenda/news-sub001/internal/infrastructure/feed"
	"github.com/sambulosenda/news-sub001/internal/infrastructure/storage"
	"github.com/sambulosenda/news-sub001/internal/logging"
	"github.com/sambulosenda/news-sub001/internal/ports"
	"github.com/sambulosenda/news-sub001/internal/server"
	"github.com/sambulosenda/news-sub001/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Application wires configs to the engine, its collaborators, and the HTTP
// surface.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	server *http.Server
	db     *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var gazetteers []geo.Gazetteer
	if cfg.Engine.GazetteerPath != "" {
		loaded, err := geo.Load(cfg.Engine.GazetteerPath)
		if err != nil {
			return nil, fmt.Errorf("load gazetteers: %w", err)
		}
		gazetteers = loaded
	}

	placements := cfg.Engine.Placements
	eng := engine.New(engine.Options{
		Weights:    cfg.Engine.Weights,
		Placements: &placements,
		Gazetteers: gazetteers,
	})

	var (
		db      *sql.DB
		store   ports.ArticleStore
		sources []ports.CandidateSource
	)

	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened

		pg := storage.NewPostgresStore(db, cfg.Engine.CandidateLimit)
		store = pg
		sources = append(sources, pg)
	}

	if len(cfg.Feeds) > 0 {
		sources = append(sources, feed.NewSource(cfg.Feeds, baseLogger.With("component", "source.rss")))
	}

	var relatedFeed *usecase.RelatedFeed
	if len(sources) > 0 {
		relatedFeed = usecase.NewRelatedFeed(usecase.RelatedFeedDeps{
			Sources:      sources,
			Engine:       eng,
			Window:       time.Duration(cfg.Engine.CandidateWindowDays) * 24 * time.Hour,
			PoolLimit:    cfg.Engine.CandidateLimit,
			DefaultLimit: cfg.Engine.RelatedLimit,
			Logger:       baseLogger.With("component", "usecase.related"),
		})
	}

	api := server.New(server.Deps{
		Engine:      eng,
		Store:       store,
		RelatedFeed: relatedFeed,
		Logger:      baseLogger.With("component", "server"),
	})

	return &Application{
		cfg:    cfg,
		logger: baseLogger.With("component", "app"),
		server: &http.Server{Addr: cfg.HTTP.Addr, Handler: api.Router()},
		db:     db,
	}, nil
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()

	a.logger.Info("listening", "addr", a.cfg.HTTP.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	return nil
}
