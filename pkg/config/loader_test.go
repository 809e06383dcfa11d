package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrymomot/sniff/pkg/config"
	"github.com/dmitrymomot/sniff/pkg/detect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string        `env:"NAME" envDefault:"sniff"`
	Port    int           `env:"PORT" envDefault:"8080"`
	Debug   bool          `env:"DEBUG"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Axes    []string      `env:"AXES" envSeparator:","`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		environ map[string]string
		opts    []config.Option
		want    testConfig
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want:    testConfig{Name: "sniff", Port: 8080, Timeout: 5 * time.Second},
		},
		{
			name: "values",
			environ: map[string]string{
				"NAME":    "detector",
				"PORT":    "9000",
				"DEBUG":   "true",
				"TIMEOUT": "1m",
				"AXES":    "os,plugins",
			},
			want: testConfig{Name: "detector", Port: 9000, Debug: true, Timeout: time.Minute, Axes: []string{"os", "plugins"}},
		},
		{
			name:    "prefix",
			environ: map[string]string{"APP_NAME": "prefixed", "NAME": "ignored"},
			opts:    []config.Option{config.WithPrefix("APP_")},
			want:    testConfig{Name: "prefixed", Port: 8080, Timeout: 5 * time.Second},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var cfg testConfig
			opts := append([]config.Option{config.WithEnvironment(tc.environ)}, tc.opts...)
			require.NoError(t, config.Load(&cfg, opts...))
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoad_DetectConfig(t *testing.T) {
	t.Parallel()

	var cfg detect.Config
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
		"SNIFF_SKIP_PLUGINS":   "true",
		"SNIFF_INJECT_CLASSES": "1",
	})))
	assert.Equal(t, detect.Config{SkipPlugins: true, InjectClasses: true}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *testConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"PORT": "eighty"}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
		require.ErrorIs(t, err, config.ErrEnvFile)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "CONFIG_TEST_REQUIRED_TOKEN"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte(key+"=\"from file\"\n"), 0o600))

	var cfg requiredConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
	assert.Equal(t, "from file", cfg.Token)
}
