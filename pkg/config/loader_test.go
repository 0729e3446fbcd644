package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/config"
)

type appConfig struct {
	Lang      string   `env:"LANG" envDefault:"en"`
	Strict    bool     `env:"STRICT"`
	MaxLength int      `env:"MAX_LENGTH" envDefault:"512"`
	Regions   []string `env:"REGIONS" envSeparator:","`
}

type requiredConfig struct {
	Messages string `env:"MESSAGES,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, "en", cfg.Lang)
		assert.False(t, cfg.Strict)
		assert.Equal(t, 512, cfg.MaxLength)
		assert.Empty(t, cfg.Regions)
	})

	t.Run("explicit environment", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{
			"LANG":       "fr",
			"STRICT":     "true",
			"MAX_LENGTH": "64",
			"REGIONS":    "US,CA",
		}))
		require.NoError(t, err)
		assert.Equal(t, "fr", cfg.Lang)
		assert.True(t, cfg.Strict)
		assert.Equal(t, 64, cfg.MaxLength)
		assert.Equal(t, []string{"US", "CA"}, cfg.Regions)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{"FORMCHECK_LANG": "de", "LANG": "en_US.UTF-8"}),
			config.WithPrefix("FORMCHECK_"),
		)
		require.NoError(t, err)
		assert.Equal(t, "de", cfg.Lang)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"STRICT": "maybe"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	t.Parallel()

	t.Run("file fills unset values", func(t *testing.T) {
		t.Parallel()
		path := writeEnvFile(t, "LANG=es\nSTRICT=true\n# comment\nMAX_LENGTH=\"128\"\n")

		var cfg appConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{"LANG": "fr"}),
			config.WithEnvFiles(path),
		)
		require.NoError(t, err)
		assert.Equal(t, "fr", cfg.Lang, "environment wins over the file")
		assert.True(t, cfg.Strict)
		assert.Equal(t, 128, cfg.MaxLength)
	})

	t.Run("earlier files win", func(t *testing.T) {
		t.Parallel()
		first := writeEnvFile(t, "LANG=es\n")
		second := writeEnvFile(t, "LANG=it\nSTRICT=true\n")

		var cfg appConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(first, second),
		)
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Lang)
		assert.True(t, cfg.Strict)
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg,
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")),
		)
		assert.ErrorIs(t, err, config.ErrEnvFile)
	})

	t.Run("caller map is not modified", func(t *testing.T) {
		t.Parallel()
		environ := map[string]string{"LANG": "fr"}
		path := writeEnvFile(t, "STRICT=true\n")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(environ), config.WithEnvFiles(path)))
		assert.Equal(t, map[string]string{"LANG": "fr"}, environ)
	})
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		var cfg appConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestEnvironMap(t *testing.T) {
	t.Parallel()

	got := config.EnvironMap([]string{"A=1", "B=x=y", "C=", "broken", "=nokey"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, got)
}
