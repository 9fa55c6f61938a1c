package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/ports"
)

const defaultCandidateLimit = 200

// PostgresStore reads articles from the CMS mirror in Postgres. It is both
// the article lookup used by the API and a candidate source for the ranker.
type PostgresStore struct {
	db             *sql.DB
	builder        sq.StatementBuilderType
	candidateLimit int
}

var _ ports.ArticleStore = (*PostgresStore)(nil)
var _ ports.CandidateSource = (*PostgresStore)(nil)

// NewPostgresStore wires a sql.DB; candidateLimit caps the pool handed to
// the ranker and defaults to 200 when non-positive.
func NewPostgresStore(db *sql.DB, candidateLimit int) *PostgresStore {
	if candidateLimit <= 0 {
		candidateLimit = defaultCandidateLimit
	}
	return &PostgresStore{
		db:             db,
		builder:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		candidateLimit: candidateLimit,
	}
}

// Name identifies the store inside the candidate source set.
func (s *PostgresStore) Name() string {
	return "postgres"
}

var articleColumns = []string{
	"id", "title", "excerpt", "content", "published_at",
	"categories", "tags", "author_slug",
}

// Article loads a single article by id.
func (s *PostgresStore) Article(ctx context.Context, id string) (domain.Article, error) {
	query, args, err := s.builder.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build article query: %w", err)
	}

	article, err := scanArticle(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("load article %s: %w", id, err)
	}

	return article, nil
}

// Recent returns up to limit articles published after since, newest first.
func (s *PostgresStore) Recent(ctx context.Context, since time.Time, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		return []domain.Article{}, nil
	}

	query, args, err := s.builder.
		Select(articleColumns...).
		From("articles").
		Where(sq.GtOrEq{"published_at": since}).
		OrderBy("published_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent articles: %w", err)
	}

	return articles, nil
}

// Candidates implements ports.CandidateSource over the recency window.
func (s *PostgresStore) Candidates(ctx context.Context, since time.Time) ([]domain.Article, error) {
	return s.Recent(ctx, since, s.candidateLimit)
}

// ErrNotFound marks a lookup for an id the store has never seen.
var ErrNotFound = errors.New("not found")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		article    domain.Article
		categories pq.StringArray
		tags       pq.StringArray
		authorSlug sql.NullString
	)

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Excerpt,
		&article.Content,
		&article.Date,
		&categories,
		&tags,
		&authorSlug,
	)
	if err != nil {
		return domain.Article{}, err
	}

	article.Categories = categories
	article.Tags = tags
	article.AuthorSlug = authorSlug.String

	return article, nil
}
