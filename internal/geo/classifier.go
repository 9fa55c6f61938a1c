package geo

import (
	"strings"
	"unicode"

	"github.com/sambulosenda/news-sub001/internal/domain"
)

// PrimaryMarket is the country a classification falls back to when no
// gazetteer entry matches, and the winner of exact score ties. South Africa
// is the site's primary audience; this is a deliberate business rule, not an
// artifact of evaluation order, though the gazetteer slice is ordered to
// agree with it.
const PrimaryMarket = domain.SouthAfrica

// Classifier scores free text against per-country gazetteers.
type Classifier struct {
	gazetteers []Gazetteer
}

// NewClassifier builds a classifier over the given gazetteers, evaluated in
// slice order. With no arguments the built-in tables are used.
func NewClassifier(gazetteers ...Gazetteer) *Classifier {
	if len(gazetteers) == 0 {
		gazetteers = Defaults()
	}
	return &Classifier{gazetteers: gazetteers}
}

type countryMatch struct {
	country domain.Country
	score   int
	city    string
	region  string
}

// Classify concatenates the article fields, lowercases them once, and counts
// gazetteer hits per country (cities weigh 3, regions 2, keywords 1, matched
// by substring containment). The strictly highest score wins; ties and the
// no-match case resolve to PrimaryMarket, the latter with LowConfidence set
// and no city or region.
func (c *Classifier) Classify(title, content, category string, tags []string) domain.LocationTag {
	blob := strings.ToLower(strings.Join([]string{
		title, content, category, strings.Join(tags, " "),
	}, " "))

	best := countryMatch{country: PrimaryMarket}
	for _, gazetteer := range c.gazetteers {
		match := scoreGazetteer(blob, gazetteer)
		if match.score > best.score {
			best = match
		}
	}

	if best.score == 0 {
		return domain.LocationTag{Country: PrimaryMarket, LowConfidence: true}
	}

	return domain.LocationTag{
		Country: best.country,
		City:    titleCase(best.city),
		Region:  titleCase(best.region),
	}
}

func scoreGazetteer(blob string, gazetteer Gazetteer) countryMatch {
	match := countryMatch{country: gazetteer.Country}

	for _, city := range gazetteer.Cities {
		if containsEntry(blob, city) {
			match.score += cityWeight
			if match.city == "" {
				match.city = city
			}
		}
	}
	for _, region := range gazetteer.Regions {
		if containsEntry(blob, region) {
			match.score += regionWeight
			if match.region == "" {
				match.region = region
			}
		}
	}
	for _, keyword := range gazetteer.Keywords {
		if containsEntry(blob, keyword) {
			match.score += keywordWeight
		}
	}

	return match
}

func containsEntry(blob, entry string) bool {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if entry == "" {
		return false
	}
	return strings.Contains(blob, entry)
}

// titleCase capitalizes the first letter of every space- or hyphen-separated
// word, keeping the separators ("cape town" -> "Cape Town",
// "kwazulu-natal" -> "Kwazulu-Natal").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := true
	for _, r := range s {
		switch {
		case r == ' ' || r == '-':
			upperNext = true
			b.WriteRune(r)
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
