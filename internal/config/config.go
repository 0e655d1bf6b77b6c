package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathbuddy/internal/problemgen"
	"github.com/abhisek/mathbuddy/internal/ui/theme"
)

// Config holds the user-level settings for mathbuddy.
type Config struct {
	// YearLevel is the grade band, 1-6. Out-of-range values are clamped.
	YearLevel int `yaml:"year_level"`

	// Difficulty is one of easy, medium, hard or challenge.
	Difficulty string `yaml:"difficulty"`

	// Topic pins practice to one topic. Empty picks from the level's menu.
	Topic string `yaml:"topic"`

	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`

	// RevealAfter is the number of wrong attempts before the answer is
	// shown during practice. Negative never reveals.
	RevealAfter int `yaml:"reveal_after"`

	// Theme names the color theme: purple, blue, green, orange or pink.
	Theme string `yaml:"theme"`

	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig holds the block-scaling limits passed to the generator.
type DisplayConfig struct {
	MaxBlocks     int `yaml:"max_blocks"`
	MaxGroupItems int `yaml:"max_group_items"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns a Config with sensible defaults.
func Default() Config {
	gen := problemgen.DefaultConfig()
	return Config{
		YearLevel:   1,
		Difficulty:  string(problemgen.DifficultyEasy),
		RevealAfter: 3,
		Theme:       "purple",
		Display: DisplayConfig{
			MaxBlocks:     gen.MaxDisplayBlocks,
			MaxGroupItems: gen.MaxGroupItems,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Parse decodes a single YAML document over the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
	}
	return cfg, nil
}

// Load resolves the configuration in priority order: defaults, the YAML
// file at path, then MATHBUDDY_* environment variables. An empty path uses
// DefaultPath and tolerates a missing file.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MATHBUDDY_* variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("MATHBUDDY_YEAR_LEVEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATHBUDDY_YEAR_LEVEL: %w", err)
		}
		c.YearLevel = n
	}
	if v := getenv("MATHBUDDY_DIFFICULTY"); v != "" {
		c.Difficulty = v
	}
	if v := getenv("MATHBUDDY_TOPIC"); v != "" {
		c.Topic = v
	}
	if v := getenv("MATHBUDDY_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MATHBUDDY_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := getenv("MATHBUDDY_REVEAL_AFTER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATHBUDDY_REVEAL_AFTER: %w", err)
		}
		c.RevealAfter = n
	}
	if v := getenv("MATHBUDDY_THEME"); v != "" {
		c.Theme = v
	}
	if v := getenv("MATHBUDDY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("MATHBUDDY_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate clamps the year level into 1-6 and rejects unknown names.
func (c *Config) Validate() error {
	c.YearLevel = int(problemgen.ClampYearLevel(problemgen.YearLevel(c.YearLevel)))

	if _, err := problemgen.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Topic != "" {
		if _, err := problemgen.ParseTopic(c.Topic); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Display.MaxBlocks < 2 {
		return fmt.Errorf("config: display.max_blocks must be >= 2, got %d", c.Display.MaxBlocks)
	}
	if c.Display.MaxGroupItems < 1 {
		return fmt.Errorf("config: display.max_group_items must be >= 1, got %d", c.Display.MaxGroupItems)
	}
	if _, err := theme.New(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// GeneratorConfig returns the problemgen settings described by c.
func (c Config) GeneratorConfig() problemgen.Config {
	return problemgen.Config{
		Seed:             c.Seed,
		MaxDisplayBlocks: c.Display.MaxBlocks,
		MaxGroupItems:    c.Display.MaxGroupItems,
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. MATHBUDDY_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mathbuddy/config.yaml
// 3. ~/.config/mathbuddy/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("MATHBUDDY_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathbuddy", "config.yaml"), nil
}
