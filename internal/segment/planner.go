package segment

import (
	"github.com/sambulosenda/news-sub001/internal/domain"
)

// Position buckets describe how far into the article a placement falls.
type Position string

const (
	PositionEarly  Position = "early"
	PositionMiddle Position = "middle"
	PositionLate   Position = "late"
)

// Progress-ratio boundaries between the position buckets.
const (
	earlyBoundary = 0.35
	lateBoundary  = 0.7
)

// Config tunes the placement planner. Negative values clamp to zero; a nil
// PreferredPositions means any bucket is acceptable, while an explicitly
// empty slice lets only the first-placement guarantee accept a candidate.
type Config struct {
	MinParagraphsBeforeFirst  int        `yaml:"minParagraphsBeforeFirst" json:"minParagraphsBeforeFirst"`
	MinWordsBetweenPlacements int        `yaml:"minWordsBetweenPlacements" json:"minWordsBetweenPlacements"`
	MaxPlacements             int        `yaml:"maxPlacements" json:"maxPlacements"`
	PreferredPositions        []Position `yaml:"preferredPositions" json:"preferredPositions"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		MinParagraphsBeforeFirst:  2,
		MinWordsBetweenPlacements: 300,
		MaxPlacements:             3,
	}
}

func (c Config) normalized() Config {
	if c.MinParagraphsBeforeFirst < 0 {
		c.MinParagraphsBeforeFirst = 0
	}
	if c.MinWordsBetweenPlacements < 0 {
		c.MinWordsBetweenPlacements = 0
	}
	if c.MaxPlacements < 0 {
		c.MaxPlacements = 0
	}
	return c
}

// PlanPlacements walks the blocks of contentHTML in order and selects
// insertion points subject to the config's spacing and quantity constraints.
// Placements come back with strictly increasing block indices, at most
// MaxPlacements of them. The first qualifying candidate is always accepted
// regardless of bucket preference, so content that never enters a preferred
// bucket still yields one placement.
func PlanPlacements(contentHTML string, cfg Config) []domain.AdPlacement {
	cfg = cfg.normalized()

	placements := make([]domain.AdPlacement, 0, cfg.MaxPlacements)
	if cfg.MaxPlacements == 0 {
		return placements
	}

	blocks := Split(contentHTML)

	totalWords := 0
	for _, block := range blocks {
		totalWords += block.Words
	}

	var (
		paragraphCount int
		wordsSince     int
		wordsSeen      int
	)

	for _, block := range blocks {
		wordsSeen += block.Words
		if block.Tag == "" {
			continue
		}

		if block.Tag == "p" {
			paragraphCount++
		}
		wordsSince += block.Words

		if len(placements) >= cfg.MaxPlacements {
			break
		}
		if paragraphCount < cfg.MinParagraphsBeforeFirst {
			continue
		}
		if wordsSince < cfg.MinWordsBetweenPlacements {
			continue
		}

		bucket := bucketFor(wordsSeen, totalWords)
		if !cfg.accepts(bucket) && len(placements) > 0 {
			continue
		}

		placements = append(placements, domain.AdPlacement{
			PositionKind: kindForTag(block.Tag),
			BlockIndex:   block.Index,
		})
		wordsSince = 0
	}

	return placements
}

func (c Config) accepts(bucket Position) bool {
	if c.PreferredPositions == nil {
		return true
	}
	for _, preferred := range c.PreferredPositions {
		if preferred == bucket {
			return true
		}
	}
	return false
}

func bucketFor(wordsSeen, totalWords int) Position {
	progress := 1.0
	if totalWords > 0 {
		progress = float64(wordsSeen) / float64(totalWords)
	}

	switch {
	case progress < earlyBoundary:
		return PositionEarly
	case progress < lateBoundary:
		return PositionMiddle
	default:
		return PositionLate
	}
}

func kindForTag(tag string) domain.PositionKind {
	switch {
	case tag == "ul" || tag == "ol":
		return domain.AfterList
	case tag == "figure":
		return domain.AfterImage
	case len(tag) == 2 && tag[0] == 'h':
		return domain.AfterHeading
	default:
		return domain.AfterParagraph
	}
}
