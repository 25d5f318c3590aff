// Package config resolves runtime settings from .env files, the environment
// and an optional YAML plan file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	DBPath          string
	Addr            string
	LogDir          string
	FrontendDist    string
	CORSOrigins     []string
	WeekdayCapacity int
	WeekendCapacity int
	Version         string
	PlanFile        string
	Verbose         bool
}

// PlanFile is the optional YAML override for the reading plan.
type PlanFile struct {
	WeekdayCapacity int    `yaml:"weekday_capacity"`
	WeekendCapacity int    `yaml:"weekend_capacity"`
	Version         string `yaml:"version"`
}

// DefaultConfig returns a Config with defaults for every field except the
// home-relative paths, which Load resolves.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		CORSOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		WeekdayCapacity: domain.DefaultWeekdayCapacity,
		WeekendCapacity: domain.DefaultWeekendCapacity,
		Version:         "NIV",
	}
}

// Load reads .env files (binary directory first, then the working
// directory), applies LECTIO_* environment overrides and the plan file.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file in working directory")
	}

	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("LECTIO_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".lectio", "lectio.db")
	}
	cfg.LogDir = os.Getenv("LECTIO_LOG_DIR")
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(filepath.Dir(cfg.DBPath), "logs")
	}

	if v := os.Getenv("LECTIO_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LECTIO_FRONTEND_DIST"); v != "" {
		cfg.FrontendDist = v
	}
	if v := os.Getenv("LECTIO_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	if v := os.Getenv("LECTIO_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("LECTIO_VERBOSE: %w", err)
		}
		cfg.Verbose = verbose
	}

	if v := os.Getenv("LECTIO_PLAN_FILE"); v != "" {
		plan, err := LoadPlanFile(v)
		if err != nil {
			return nil, err
		}
		cfg.PlanFile = v
		cfg.applyPlan(plan)
	}

	// Explicit env capacities override the plan file.
	if err := envInt("LECTIO_WEEKDAY_CAPACITY", &cfg.WeekdayCapacity); err != nil {
		return nil, err
	}
	if err := envInt("LECTIO_WEEKEND_CAPACITY", &cfg.WeekendCapacity); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadPlanFile parses a YAML plan file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	var plan PlanFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file %s: %w", path, err)
	}
	return &plan, nil
}

func (c *Config) applyPlan(p *PlanFile) {
	if p.WeekdayCapacity != 0 {
		c.WeekdayCapacity = p.WeekdayCapacity
	}
	if p.WeekendCapacity != 0 {
		c.WeekendCapacity = p.WeekendCapacity
	}
	if p.Version != "" {
		c.Version = p.Version
	}
}

// Capacity builds the daily capacity model.
func (c *Config) Capacity() domain.Capacity {
	return domain.WeekdayCapacity(c.WeekdayCapacity, c.WeekendCapacity)
}

// Validate checks that every day gets at least one chapter and that year's
// capacity can hold total chapters.
func (c *Config) Validate(year, total int) error {
	if c.WeekdayCapacity < 1 {
		return fmt.Errorf("weekday capacity must be >= 1, got %d", c.WeekdayCapacity)
	}
	if c.WeekendCapacity < 1 {
		return fmt.Errorf("weekend capacity must be >= 1, got %d", c.WeekendCapacity)
	}
	if yc := domain.YearCapacity(year, c.Capacity()); yc < total {
		return fmt.Errorf(
			"capacity for %d (%d chapters) cannot cover the %d-chapter corpus",
			year, yc, total,
		)
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, v)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
