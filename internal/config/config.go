package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sambulosenda/news-sub001/internal/related"
	"github.com/sambulosenda/news-sub001/internal/segment"
)

const (
	configPathEnv  = "NEWS_ENGINE_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	httpAddrEnv    = "HTTP_ADDR"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Feeds    []string       `yaml:"feeds"`
	Engine   EngineConfig   `yaml:"engine"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig describes the API listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig describes Postgres connection details. An empty DSN runs
// the service without a content store (pool-in-request endpoints only).
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// EngineConfig tunes the content-intelligence algorithms and the candidate
// pre-filter applied before ranking.
type EngineConfig struct {
	Weights             related.Weights `yaml:"weights"`
	Placements          segment.Config  `yaml:"placements"`
	GazetteerPath       string          `yaml:"gazetteerPath"`
	CandidateWindowDays int             `yaml:"candidateWindowDays"`
	CandidateLimit      int             `yaml:"candidateLimit"`
	RelatedLimit        int             `yaml:"relatedLimit"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.HTTP.Addr != "" {
		base.HTTP = override.HTTP
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	if override.Engine.Weights != (related.Weights{}) {
		base.Engine.Weights = override.Engine.Weights
	}

	if override.Engine.Placements.MaxPlacements != 0 ||
		override.Engine.Placements.MinParagraphsBeforeFirst != 0 ||
		override.Engine.Placements.MinWordsBetweenPlacements != 0 ||
		override.Engine.Placements.PreferredPositions != nil {
		base.Engine.Placements = override.Engine.Placements
	}

	if override.Engine.GazetteerPath != "" {
		base.Engine.GazetteerPath = override.Engine.GazetteerPath
	}

	if override.Engine.CandidateWindowDays > 0 {
		base.Engine.CandidateWindowDays = override.Engine.CandidateWindowDays
	}

	if override.Engine.CandidateLimit > 0 {
		base.Engine.CandidateLimit = override.Engine.CandidateLimit
	}

	if override.Engine.RelatedLimit > 0 {
		base.Engine.RelatedLimit = override.Engine.RelatedLimit
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		HTTP:    HTTPConfig{Addr: ":8080"},
		Engine: EngineConfig{
			Weights:             related.DefaultWeights(),
			Placements:          segment.DefaultConfig(),
			CandidateWindowDays: 30,
			CandidateLimit:      200,
			RelatedLimit:        6,
		},
	}
}
