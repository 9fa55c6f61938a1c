package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/engine"
	"github.com/sambulosenda/news-sub001/internal/ports"
)

// RelatedFeedDeps wires candidate sources into the related-articles use case.
type RelatedFeedDeps struct {
	Sources      []ports.CandidateSource
	Engine       *engine.Engine
	Window       time.Duration
	PoolLimit    int
	DefaultLimit int
	Logger       *slog.Logger
}

// RelatedFeed gathers a candidate pool from the registered sources and ranks
// it against a target article. The pool is pre-filtered to a recency window
// before the ranker sees it; ranking a full corpus is deliberately avoided.
type RelatedFeed struct {
	sources      []ports.CandidateSource
	engine       *engine.Engine
	window       time.Duration
	poolLimit    int
	defaultLimit int
	logger       *slog.Logger
}

// NewRelatedFeed constructs the use case.
func NewRelatedFeed(deps RelatedFeedDeps) *RelatedFeed {
	window := deps.Window
	if window <= 0 {
		window = 30 * 24 * time.Hour
	}

	defaultLimit := deps.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 6
	}

	return &RelatedFeed{
		sources:      deps.Sources,
		engine:       deps.Engine,
		window:       window,
		poolLimit:    deps.PoolLimit,
		defaultLimit: defaultLimit,
		logger:       deps.Logger,
	}
}

// Related returns up to limit related articles for target, drawing the
// candidate pool from every registered source with duplicate ids collapsed.
// A non-positive limit falls back to the configured default.
func (r *RelatedFeed) Related(ctx context.Context, target domain.Article, limit int) ([]domain.RelevanceScore, error) {
	if limit <= 0 {
		limit = r.defaultLimit
	}

	since := time.Now().Add(-r.window)
	seen := map[string]struct{}{}
	pool := make([]domain.Article, 0)

	for _, source := range r.sources {
		candidates, err := source.Candidates(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", source.Name(), err)
		}

		for _, candidate := range candidates {
			if _, dup := seen[candidate.ID]; dup {
				continue
			}
			seen[candidate.ID] = struct{}{}
			pool = append(pool, candidate)
		}

		r.debug("source contributed candidates", "source", source.Name(), "count", len(candidates))
	}

	if r.poolLimit > 0 && len(pool) > r.poolLimit {
		pool = pool[:r.poolLimit]
	}

	return r.engine.RankRelated(target, pool, limit), nil
}

func (r *RelatedFeed) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
