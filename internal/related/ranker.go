// Package related ranks candidate articles against a target article by
// combining category, tag, text, recency, and authorship signals into one
// additive score. The ranker is deterministic and explainable: every signal
// leaves a reason string so editors can see why a link was chosen.
package related

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/textsim"
)

// minScore discards candidates whose combined score is noise-level.
const minScore = 0.1

// similarityReasonFloor gates only the reason annotation for the text signal.
// The numeric contribution below applies unconditionally; the legacy scorer
// merely skipped the log line for weak overlaps.
const similarityReasonFloor = 0.1

// Weights distributes the score across signals. The defaults are tuned so a
// full match on every signal lands at 1.0.
type Weights struct {
	Category float64 `yaml:"category"`
	Tag      float64 `yaml:"tag"`
	Text     float64 `yaml:"text"`
	Recency  float64 `yaml:"recency"`
	Author   float64 `yaml:"author"`
}

// DefaultWeights returns the production tuning.
func DefaultWeights() Weights {
	return Weights{
		Category: 0.40,
		Tag:      0.30,
		Text:     0.20,
		Recency:  0.05,
		Author:   0.05,
	}
}

// Ranker scores and orders candidate articles for a target article.
type Ranker struct {
	weights Weights
}

// NewRanker builds a ranker; a zero Weights value selects DefaultWeights.
func NewRanker(weights Weights) *Ranker {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Ranker{weights: weights}
}

type scoredCandidate struct {
	id      string
	date    time.Time
	score   float64
	reasons []string
}

// Rank scores every candidate against the target and returns at most limit
// results ordered by score descending, ties broken by more recent date first.
// The target itself is excluded by id, candidates scoring at or below the
// noise floor are dropped, and a non-positive limit yields an empty result.
func (r *Ranker) Rank(target domain.Article, candidates []domain.Article, limit int) []domain.RelevanceScore {
	results := make([]domain.RelevanceScore, 0)
	if limit <= 0 || len(candidates) == 0 {
		return results
	}

	targetText := target.Title + " " + textsim.StripMarkup(target.Excerpt)

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == target.ID {
			continue
		}

		entry := r.score(target, targetText, candidate)
		if entry.score <= minScore {
			continue
		}
		scored = append(scored, entry)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].date.After(scored[j].date)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	for _, entry := range scored {
		results = append(results, domain.RelevanceScore{
			ArticleID: entry.id,
			Score:     entry.score,
			Reasons:   entry.reasons,
		})
	}

	return results
}

func (r *Ranker) score(target domain.Article, targetText string, candidate domain.Article) scoredCandidate {
	entry := scoredCandidate{id: candidate.ID, date: candidate.Date}

	if common := countCommon(target.Categories, candidate.Categories); common > 0 {
		entry.score += r.weights.Category * float64(common) / float64(max(len(target.Categories), 1))
		entry.reasons = append(entry.reasons, fmt.Sprintf("shares %d categories", common))
	}

	if common := countCommon(target.Tags, candidate.Tags); common > 0 {
		entry.score += r.weights.Tag * float64(common) / float64(max(len(target.Tags), 1))
		entry.reasons = append(entry.reasons, fmt.Sprintf("shares %d tags", common))
	}

	candidateText := candidate.Title + " " + textsim.StripMarkup(candidate.Excerpt)
	similarity := textsim.Similarity(targetText, candidateText)
	entry.score += r.weights.Text * similarity
	if similarity > similarityReasonFloor {
		entry.reasons = append(entry.reasons, fmt.Sprintf("title/excerpt similarity %.2f", similarity))
	}

	days := daysBetween(target.Date, candidate.Date)
	entry.score += r.weights.Recency * recencyFactor(days)
	entry.reasons = append(entry.reasons, fmt.Sprintf("published %d days apart", days))

	if target.AuthorSlug != "" && candidate.AuthorSlug == target.AuthorSlug {
		entry.score += r.weights.Author
		entry.reasons = append(entry.reasons, "same author")
	}

	return entry
}

func countCommon(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, slug := range a {
		set[slug] = struct{}{}
	}

	common := 0
	for _, slug := range b {
		if _, ok := set[slug]; ok {
			common++
			delete(set, slug)
		}
	}
	return common
}

func daysBetween(a, b time.Time) int {
	return int(math.Abs(a.Sub(b).Hours()) / 24)
}

// recencyFactor steps down as the publication dates drift apart. Even distant
// pairs keep a small floor so recency never zeroes out a strong topical match.
func recencyFactor(days int) float64 {
	switch {
	case days <= 7:
		return 1.0
	case days <= 30:
		return 0.8
	case days <= 90:
		return 0.6
	case days <= 180:
		return 0.4
	default:
		return 0.2
	}
}
