package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
year_level: 4
difficulty: hard
display:
  max_blocks: 50
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.YearLevel)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, 50, cfg.Display.MaxBlocks)
	assert.Equal(t, 20, cfg.Display.MaxGroupItems, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 3, cfg.RevealAfter)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("year_levle: 3\n"))
	assert.Error(t, err)
}

func TestParse_RejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("year_level: 3\n---\nyear_level: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple YAML documents")
}

func TestParse_RejectsSecondDocumentWithUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("year_level: 3\n---\nnot_a_field: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple YAML documents")
}

func TestParse_LeadingSeparatorIsSingleDocument(t *testing.T) {
	cfg, err := Parse([]byte("---\nyear_level: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.YearLevel)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MATHBUDDY_YEAR_LEVEL":   "5",
		"MATHBUDDY_DIFFICULTY":   "challenge",
		"MATHBUDDY_TOPIC":        "decimals",
		"MATHBUDDY_SEED":         "42",
		"MATHBUDDY_REVEAL_AFTER": "-1",
		"MATHBUDDY_LOG_FORMAT":   "json",
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, 5, cfg.YearLevel)
	assert.Equal(t, "challenge", cfg.Difficulty)
	assert.Equal(t, "decimals", cfg.Topic)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, -1, cfg.RevealAfter)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnv_BadNumber(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == "MATHBUDDY_SEED" {
			return "lots"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATHBUDDY_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"year clamped high", func(c *Config) { c.YearLevel = 9 }, ""},
		{"year clamped low", func(c *Config) { c.YearLevel = -2 }, ""},
		{"bad difficulty", func(c *Config) { c.Difficulty = "expert" }, "unknown difficulty"},
		{"bad topic", func(c *Config) { c.Topic = "geometry" }, "unknown topic"},
		{"tiny display", func(c *Config) { c.Display.MaxBlocks = 1 }, "max_blocks"},
		{"no group items", func(c *Config) { c.Display.MaxGroupItems = 0 }, "max_group_items"},
		{"bad theme", func(c *Config) { c.Theme = "rainbow" }, "unknown theme"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.GreaterOrEqual(t, cfg.YearLevel, 1)
				assert.LessOrEqual(t, cfg.YearLevel, 6)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year_level: 2\ndifficulty: medium\n"), 0o644))

	t.Setenv("MATHBUDDY_DIFFICULTY", "hard")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.YearLevel)
	assert.Equal(t, "hard", cfg.Difficulty, "env overrides the file")
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_DefaultPathMissingIsFine(t *testing.T) {
	t.Setenv("MATHBUDDY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().YearLevel, cfg.YearLevel)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("MATHBUDDY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/mathbuddy/config.yaml", p)

	t.Setenv("MATHBUDDY_CONFIG", "/etc/mb.yaml")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/mb.yaml", p)
}

func TestGeneratorConfig(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	g := cfg.GeneratorConfig()
	assert.Equal(t, uint64(7), g.Seed)
	assert.Equal(t, 100, g.MaxDisplayBlocks)
	assert.Equal(t, 20, g.MaxGroupItems)
}
