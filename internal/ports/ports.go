package ports

import (
	"context"
	"time"

	"github.com/sambulosenda/news-sub001/internal/domain"
)

// ArticleStore supplies article records from the content store. The engine
// itself never fetches or caches; the store is the collaborator that owns
// the corpus.
type ArticleStore interface {
	Article(ctx context.Context, id string) (domain.Article, error)
	Recent(ctx context.Context, since time.Time, limit int) ([]domain.Article, error)
}

// CandidateSource yields candidate articles for relatedness ranking. Sources
// are registered by name so config decides which ones feed the pool.
type CandidateSource interface {
	Name() string
	Candidates(ctx context.Context, since time.Time) ([]domain.Article, error)
}
