// Package textsim provides the lexical-overlap similarity shared by the
// relatedness ranker. It is a deliberately cheap proxy for semantic
// similarity: no stemming, no language awareness, just token sets.
package textsim

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minTokenLength filters out short tokens (articles, prepositions, pronouns)
// without carrying a stop-word list.
const minTokenLength = 4

// Similarity returns the Jaccard index of the qualifying token sets of the
// two texts, in [0,1]. Tokens shorter than four characters are discarded.
// The function is commutative and deterministic; an empty union yields 0.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if len(token) < minTokenLength {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// StripMarkup flattens an HTML fragment to its visible text with single
// spaces between words. Plain text passes through untouched; a fragment the
// parser cannot handle is returned as-is rather than failing.
func StripMarkup(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return fragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// WordCount reports the number of whitespace-separated words in the visible
// text of an HTML fragment.
func WordCount(fragment string) int {
	return len(strings.Fields(StripMarkup(fragment)))
}
