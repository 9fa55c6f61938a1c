package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sambulosenda/news-sub001/internal/domain"
)

func TestClassifyDefaultsToPrimaryMarket(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()
	tag := classifier.Classify("", "", "", nil)

	if tag.Country != domain.SouthAfrica {
		t.Fatalf("expected primary-market fallback, got %s", tag.Country)
	}
	if tag.City != "" || tag.Region != "" {
		t.Fatalf("fallback must carry no city or region, got %q/%q", tag.City, tag.Region)
	}
	if !tag.LowConfidence {
		t.Fatalf("fallback classification must be flagged low confidence")
	}
}

func TestClassifyZimbabweCity(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()
	tag := classifier.Classify(
		"Harare court ruling",
		"The Harare High Court handed down judgment on Monday.",
		"Politics",
		[]string{"zimbabwe"},
	)

	if tag.Country != domain.Zimbabwe {
		t.Fatalf("expected Zimbabwe, got %s", tag.Country)
	}
	if tag.City != "Harare" {
		t.Fatalf("expected city Harare, got %q", tag.City)
	}
	if tag.LowConfidence {
		t.Fatalf("evidence-based classification must not be low confidence")
	}
}

func TestClassifyTieGoesToPrimaryMarket(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()
	tag := classifier.Classify(
		"Flights between Johannesburg and Harare resume",
		"", "", nil,
	)

	if tag.Country != domain.SouthAfrica {
		t.Fatalf("equal scores must resolve to the primary market, got %s", tag.Country)
	}
	if tag.City != "Johannesburg" {
		t.Fatalf("expected city Johannesburg, got %q", tag.City)
	}
}

func TestClassifyTitleCasesRegions(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()
	tag := classifier.Classify("Storms batter the kwazulu-natal coastline", "", "Weather", nil)

	if tag.Country != domain.SouthAfrica {
		t.Fatalf("expected South Africa, got %s", tag.Country)
	}
	if tag.Region != "Kwazulu-Natal" {
		t.Fatalf("expected region Kwazulu-Natal, got %q", tag.Region)
	}
}

func TestClassifyFirstMatchedCityWins(t *testing.T) {
	t.Parallel()

	// Both cities appear; gazetteer iteration order, not text order, decides.
	classifier := NewClassifier()
	tag := classifier.Classify("Gweru and Bulawayo brace for water cuts in Zimbabwe", "", "", nil)

	if tag.Country != domain.Zimbabwe {
		t.Fatalf("expected Zimbabwe, got %s", tag.Country)
	}
	if tag.City != "Bulawayo" {
		t.Fatalf("expected first gazetteer city Bulawayo, got %q", tag.City)
	}
}

func TestLoadGazetteerFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gazetteers.yaml")
	raw := `gazetteers:
  - country: zimbabwe
    cities: [harare]
    regions: [midlands]
    keywords: [zimbabwe]
  - country: south-africa
    cities: [durban]
    regions: [gauteng]
    keywords: [mzansi]
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	gazetteers, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(gazetteers) != 2 {
		t.Fatalf("expected 2 gazetteers, got %d", len(gazetteers))
	}
	if gazetteers[0].Country != domain.Zimbabwe {
		t.Fatalf("file order must be preserved, got %s first", gazetteers[0].Country)
	}

	// With Zimbabwe evaluated first, an equal-tier tie now goes its way.
	classifier := NewClassifier(gazetteers...)
	tag := classifier.Classify("durban and harare twin-city summit", "", "", nil)
	if tag.Country != domain.Zimbabwe {
		t.Fatalf("expected reordered tie-break winner Zimbabwe, got %s", tag.Country)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("gazetteers: []\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty gazetteer file")
	}
}
