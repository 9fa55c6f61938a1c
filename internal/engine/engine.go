// Package engine is the facade over the content-intelligence algorithms:
// relatedness ranking, geo classification, and ad-placement planning. An
// Engine holds only immutable tuning; every method is a pure function of its
// arguments, so a single instance is safe for unbounded concurrent use.
package engine

import (
	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/geo"
	"github.com/sambulosenda/news-sub001/internal/related"
	"github.com/sambulosenda/news-sub001/internal/segment"
)

// Options carries all tuning. Zero values select production defaults.
type Options struct {
	Weights    related.Weights
	Placements *segment.Config
	Gazetteers []geo.Gazetteer
}

// Engine exposes the three content-intelligence operations.
type Engine struct {
	ranker     *related.Ranker
	classifier *geo.Classifier
	placements segment.Config
}

// New builds an engine from the given options.
func New(opts Options) *Engine {
	placements := segment.DefaultConfig()
	if opts.Placements != nil {
		placements = *opts.Placements
	}

	return &Engine{
		ranker:     related.NewRanker(opts.Weights),
		classifier: geo.NewClassifier(opts.Gazetteers...),
		placements: placements,
	}
}

// RankRelated selects up to limit related articles for target from the
// candidate pool, best first. The engine never fetches the pool itself;
// callers pre-filter the corpus (usually to a recency window) before calling.
func (e *Engine) RankRelated(target domain.Article, candidates []domain.Article, limit int) []domain.RelevanceScore {
	return e.ranker.Rank(target, candidates, limit)
}

// ClassifyLocation infers which country, and where possible which city and
// region, the given article text concerns.
func (e *Engine) ClassifyLocation(title, content, category string, tags []string) domain.LocationTag {
	return e.classifier.Classify(title, content, category, tags)
}

// PlanPlacements selects ad insertion points inside contentHTML. A nil cfg
// uses the engine's configured placement defaults.
func (e *Engine) PlanPlacements(contentHTML string, cfg *segment.Config) []domain.AdPlacement {
	if cfg == nil {
		return segment.PlanPlacements(contentHTML, e.placements)
	}
	return segment.PlanPlacements(contentHTML, *cfg)
}
