// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the game rules and the ambient settings of a run.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Logging LoggingConfig `yaml:"logging"`

	// UnitsPath optionally replaces the embedded unit table.
	UnitsPath string `yaml:"units,omitempty"`
}

// RulesConfig carries the economy and combat constants of the engine.
type RulesConfig struct {
	MaxTurns         int `yaml:"max_turns"`
	MaxFramesPerTurn int `yaml:"max_frames_per_turn"`

	StartingHealth          int     `yaml:"starting_health"`
	StartingStructurePoints float64 `yaml:"starting_structure_points"`
	StartingMobilePoints    float64 `yaml:"starting_mobile_points"`

	// Restore phase: MP decays, then both pools grow. MP growth gains +1
	// every MobileGrowthInterval turns.
	StructurePointsPerTurn float64 `yaml:"structure_points_per_turn"`
	MobilePointsPerTurn    float64 `yaml:"mobile_points_per_turn"`
	MobileGrowthInterval   int     `yaml:"mobile_growth_interval"`
	MobilePointsDecay      float64 `yaml:"mobile_points_decay"`

	RefundFraction          float64 `yaml:"refund_fraction"`
	SelfDestructMinDistance int     `yaml:"self_destruct_min_distance"`
	SelfDestructRadius      float64 `yaml:"self_destruct_radius"`
	BreachDamage            int     `yaml:"breach_damage"`
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the standard ruleset.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			MaxTurns:                100,
			MaxFramesPerTurn:        5000,
			StartingHealth:          30,
			StartingStructurePoints: 40,
			StartingMobilePoints:    5,
			StructurePointsPerTurn:  5,
			MobilePointsPerTurn:     5,
			MobileGrowthInterval:    10,
			MobilePointsDecay:       0.75,
			RefundFraction:          0.75,
			SelfDestructMinDistance: 5,
			SelfDestructRadius:      1.5,
			BreachDamage:            1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML config over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.UnitsPath != "" && !filepath.IsAbs(cfg.UnitsPath) {
		cfg.UnitsPath = filepath.Join(filepath.Dir(path), cfg.UnitsPath)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TERMITE_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rules.MaxTurns = n
		}
	}
	if v := os.Getenv("TERMITE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TERMITE_UNITS"); v != "" {
		c.UnitsPath = v
	}
}

// Validate rejects rulesets the engine cannot run.
func (c *Config) Validate() error {
	r := c.Rules
	switch {
	case r.MaxTurns <= 0:
		return fmt.Errorf("max_turns must be positive, got %d", r.MaxTurns)
	case r.MaxFramesPerTurn <= 0:
		return fmt.Errorf("max_frames_per_turn must be positive, got %d", r.MaxFramesPerTurn)
	case r.StartingHealth <= 0:
		return fmt.Errorf("starting_health must be positive, got %d", r.StartingHealth)
	case r.MobileGrowthInterval <= 0:
		return fmt.Errorf("mobile_growth_interval must be positive, got %d", r.MobileGrowthInterval)
	case r.MobilePointsDecay < 0 || r.MobilePointsDecay > 1:
		return fmt.Errorf("mobile_points_decay must be within [0,1], got %v", r.MobilePointsDecay)
	case r.RefundFraction < 0 || r.RefundFraction > 1:
		return fmt.Errorf("refund_fraction must be within [0,1], got %v", r.RefundFraction)
	case r.SelfDestructRadius < 0:
		return fmt.Errorf("self_destruct_radius must not be negative, got %v", r.SelfDestructRadius)
	}
	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format %q (valid: json, console)", c.Logging.Format)
	}
	return nil
}

// BuildLogger constructs the zap logger described by the logging section.
func (c LoggingConfig) BuildLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", c.Level, err)
	}
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
