// Package geo infers which market an article concerns from its text alone,
// using static tiered gazetteers rather than any NLP model.
package geo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sambulosenda/news-sub001/internal/domain"
)

// Tier weights. A city mention is the strongest signal, a loose keyword the
// weakest.
const (
	cityWeight    = 3
	regionWeight  = 2
	keywordWeight = 1
)

// Gazetteer is the lookup table for one country. Entries are matched as
// lowercase substrings; slice order is significant because the first matched
// city and region become the LocationTag's city and region.
type Gazetteer struct {
	Country  domain.Country `yaml:"country"`
	Cities   []string       `yaml:"cities"`
	Regions  []string       `yaml:"regions"`
	Keywords []string       `yaml:"keywords"`
}

// Defaults returns the built-in gazetteers in evaluation order. South Africa
// comes first: see PrimaryMarket.
func Defaults() []Gazetteer {
	return []Gazetteer{
		{
			Country: domain.SouthAfrica,
			Cities: []string{
				"johannesburg", "cape town", "durban", "pretoria", "soweto",
				"gqeberha", "port elizabeth", "bloemfontein", "east london",
				"pietermaritzburg", "kimberley", "polokwane", "nelspruit",
				"stellenbosch", "sandton", "soshanguve", "tembisa",
			},
			Regions: []string{
				"gauteng", "western cape", "kwazulu-natal", "eastern cape",
				"free state", "limpopo", "mpumalanga", "north west",
				"northern cape",
			},
			Keywords: []string{
				"south africa", "south african", "mzansi", "eskom",
				"load shedding", "ramaphosa", "springboks", "proteas",
				"rand", "sars", "sassa", "johannesburg stock exchange",
			},
		},
		{
			Country: domain.Zimbabwe,
			Cities: []string{
				"harare", "bulawayo", "chitungwiza", "mutare", "gweru",
				"kwekwe", "kadoma", "masvingo", "chinhoyi", "victoria falls",
				"beitbridge",
			},
			Regions: []string{
				"mashonaland", "matabeleland", "manicaland", "midlands",
				"masvingo province",
			},
			Keywords: []string{
				"zimbabwe", "zimbabwean", "zanu-pf", "mnangagwa", "zimra",
				"zimdollar", "bond note", "zig currency", "warriors",
				"chevrons",
			},
		},
	}
}

// Load reads gazetteer overrides from a YAML file. The file replaces the
// built-in tables wholesale, so editors can retune the vocabulary without a
// deploy; evaluation order in the file is preserved.
func Load(path string) ([]Gazetteer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer file: %w", err)
	}

	var parsed struct {
		Gazetteers []Gazetteer `yaml:"gazetteers"`
	}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse gazetteer file %s: %w", path, err)
	}

	if len(parsed.Gazetteers) == 0 {
		return nil, fmt.Errorf("gazetteer file %s defines no countries", path)
	}

	return parsed.Gazetteers, nil
}
