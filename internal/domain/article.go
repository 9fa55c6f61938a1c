package domain

import "time"

// Article is the plain record the engine consumes. It is owned by the caller
// and never mutated after being passed in; all relationships between results
// and articles go through ID, never through pointers.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
	Categories []string  `json:"categories"`
	Tags       []string  `json:"tags"`
	AuthorSlug string    `json:"authorSlug,omitempty"`
}

// RelevanceScore pairs a candidate article with its relatedness score.
// Reasons is a human-readable trace for debugging and editorial transparency;
// it never participates in ranking.
type RelevanceScore struct {
	ArticleID string   `json:"articleId"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons,omitempty"`
}
