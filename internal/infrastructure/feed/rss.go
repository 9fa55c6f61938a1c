package feed

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/mmcdole/gofeed"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/ports"
)

// Source adapts RSS/Atom feeds into candidate articles for the ranker.
// Feeds that fail to parse are logged and skipped so one broken upstream
// cannot empty the whole pool.
type Source struct {
	parser *gofeed.Parser
	urls   []string
	logger *slog.Logger
}

var _ ports.CandidateSource = (*Source)(nil)

// NewSource builds a source over the given feed URLs.
func NewSource(urls []string, logger *slog.Logger) *Source {
	return &Source{
		parser: gofeed.NewParser(),
		urls:   urls,
		logger: logger,
	}
}

// Name identifies the source inside the candidate source set.
func (s *Source) Name() string {
	return "rss"
}

// Candidates fetches every configured feed and maps items published at or
// after since into articles.
func (s *Source) Candidates(ctx context.Context, since time.Time) ([]domain.Article, error) {
	articles := make([]domain.Article, 0)

	for _, feedURL := range s.urls {
		parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			s.warn("skip unparsable feed", "url", feedURL, "error", err)
			continue
		}

		for _, item := range parsed.Items {
			article, ok := mapItem(item, since)
			if !ok {
				continue
			}
			articles = append(articles, article)
		}
	}

	return articles, nil
}

func mapItem(item *gofeed.Item, since time.Time) (domain.Article, bool) {
	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}
	if published.IsZero() || published.Before(since) {
		return domain.Article{}, false
	}

	id := item.GUID
	if id == "" {
		id = item.Link
	}
	if id == "" {
		return domain.Article{}, false
	}

	categories := make([]string, 0, len(item.Categories))
	for _, category := range item.Categories {
		if slug := Slugify(category); slug != "" {
			categories = append(categories, slug)
		}
	}

	return domain.Article{
		ID:         id,
		Title:      item.Title,
		Excerpt:    item.Description,
		Content:    item.Content,
		Date:       published,
		Categories: categories,
		AuthorSlug: authorSlug(item),
	}, true
}

func authorSlug(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return Slugify(item.Authors[0].Name)
	}
	if item.Author != nil {
		return Slugify(item.Author.Name)
	}
	return ""
}

// Slugify lowercases a label and collapses runs of non-alphanumerics into
// single hyphens, matching the CMS slug convention.
func Slugify(label string) string {
	var b strings.Builder
	b.Grow(len(label))

	lastHyphen := true
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func (s *Source) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
