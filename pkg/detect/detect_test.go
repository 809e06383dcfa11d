package detect_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/detect"
	"github.com/dmitrymomot/sniff/pkg/feature"
	"github.com/dmitrymomot/sniff/pkg/navigator"
	"github.com/dmitrymomot/sniff/pkg/plugin"
	"github.com/dmitrymomot/sniff/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeWOW64UA = "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func chromeSnapshot() navigator.Snapshot {
	return navigator.Snapshot{
		UA:           chromeWOW64UA,
		PlatformName: "Win32",
		PluginList: []navigator.Plugin{
			{Name: "Adobe Flash Player", Description: "Shockwave Flash"},
			{Name: "Java Applet"},
		},
		Globals:        []string{"indexedDB", "WebSocket", "localStorage", "addEventListener"},
		BodyProperties: []string{"classList", "querySelector"},
	}
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	d := detect.New()
	res := d.Detect(context.Background(), chromeSnapshot(), detect.Config{})

	require.NotNil(t, res.Browser)
	assert.Equal(t, useragent.Browser{
		Name:    useragent.BrowserChrome,
		Engine:  useragent.EngineBlink,
		Version: "91.0.4472.124",
		Major:   91,
	}, *res.Browser)

	require.NotNil(t, res.OS)
	assert.Equal(t, useragent.OS{Family: useragent.OSWindows, Arch: 64, Version: "6.1"}, *res.OS)

	assert.Equal(t, plugin.List{
		{Name: "Adobe Flash Player", Description: "Shockwave Flash", Slug: "adobe_flash_player"},
		{Name: "Java Applet", Slug: "java_applet"},
	}, res.Plugins)

	for _, name := range feature.Names() {
		assert.True(t, res.Supports.Has(name), name)
	}

	assert.Equal(t, "Chrome/91 (Windows, 64-bit)", res.Identifier())
}

func TestDetect_Deterministic(t *testing.T) {
	t.Parallel()

	d := detect.New()
	nav := chromeSnapshot()
	first := d.Detect(context.Background(), nav, detect.Config{})
	second := d.Detect(context.Background(), nav, detect.Config{})
	assert.Equal(t, first, second)
}

func TestDetect_SkipAxes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cfg   detect.Config
		check func(t *testing.T, res detect.Result)
	}{
		{
			name: "skip browser",
			cfg:  detect.Config{SkipBrowser: true},
			check: func(t *testing.T, res detect.Result) {
				assert.Nil(t, res.Browser)
				assert.NotNil(t, res.OS)
				assert.NotNil(t, res.Supports)
				assert.NotEmpty(t, res.Plugins)
			},
		},
		{
			name: "skip os",
			cfg:  detect.Config{SkipOS: true},
			check: func(t *testing.T, res detect.Result) {
				assert.NotNil(t, res.Browser)
				assert.Nil(t, res.OS)
			},
		},
		{
			name: "skip plugins and supports",
			cfg:  detect.Config{SkipPlugins: true, SkipSupports: true},
			check: func(t *testing.T, res detect.Result) {
				assert.Nil(t, res.Plugins)
				assert.Nil(t, res.Supports)
				assert.NotNil(t, res.Browser)
				assert.NotNil(t, res.OS)
			},
		},
		{
			name: "skip everything",
			cfg:  detect.Config{SkipBrowser: true, SkipOS: true, SkipPlugins: true, SkipSupports: true},
			check: func(t *testing.T, res detect.Result) {
				assert.Equal(t, detect.Result{}, res)
				assert.Equal(t, "Unknown environment", res.Identifier())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, detect.New().Detect(context.Background(), chromeSnapshot(), tc.cfg))
		})
	}
}

func TestDetect_EmptyEnvironment(t *testing.T) {
	t.Parallel()

	res := detect.New().Detect(context.Background(), navigator.Snapshot{}, detect.Config{})
	require.NotNil(t, res.Browser)
	require.NotNil(t, res.OS)
	assert.Equal(t, useragent.UnknownBrowser(), *res.Browser)
	assert.Equal(t, useragent.UnknownOS(), *res.OS)
	assert.Equal(t, feature.Unsupported(), res.Supports)
	assert.NotNil(t, res.Plugins)
	assert.Empty(t, res.Plugins)
}

// faultyNavigator panics on the signals listed in panics.
type faultyNavigator struct {
	navigator.Snapshot
	panics map[string]bool
}

func (n faultyNavigator) fail(signal string) {
	if n.panics[signal] {
		panic(signal + " unavailable")
	}
}

func (n faultyNavigator) UserAgent() string {
	n.fail("ua")
	return n.Snapshot.UserAgent()
}

func (n faultyNavigator) Plugins() []navigator.Plugin {
	n.fail("plugins")
	return n.Snapshot.Plugins()
}

func (n faultyNavigator) HasGlobal(name string) bool {
	n.fail("globals")
	return n.Snapshot.HasGlobal(name)
}

func TestDetect_PanickingAxisDegrades(t *testing.T) {
	t.Parallel()

	t.Run("plugins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		nav := faultyNavigator{Snapshot: chromeSnapshot(), panics: map[string]bool{"plugins": true}}

		res := detect.New(detect.WithLogger(newTestLogger(buf))).Detect(context.Background(), nav, detect.Config{})

		assert.NotNil(t, res.Plugins)
		assert.Empty(t, res.Plugins)
		require.NotNil(t, res.Browser)
		assert.Equal(t, useragent.BrowserChrome, res.Browser.Name)
		assert.True(t, res.Supports.Has(feature.WebSocket))

		assert.Contains(t, buf.String(), "detection axis failed")
		assert.Contains(t, buf.String(), "axis=plugins")
	})

	t.Run("user agent", func(t *testing.T) {
		t.Parallel()
		nav := faultyNavigator{Snapshot: chromeSnapshot(), panics: map[string]bool{"ua": true}}

		res := detect.New().Detect(context.Background(), nav, detect.Config{})

		assert.Equal(t, useragent.UnknownBrowser(), *res.Browser)
		assert.Equal(t, useragent.UnknownOS(), *res.OS)
		assert.Len(t, res.Plugins, 2)
	})

	t.Run("globals", func(t *testing.T) {
		t.Parallel()
		nav := faultyNavigator{Snapshot: chromeSnapshot(), panics: map[string]bool{"globals": true}}

		res := detect.New().Detect(context.Background(), nav, detect.Config{})

		assert.Equal(t, feature.Unsupported(), res.Supports)
		assert.Equal(t, useragent.BrowserChrome, res.Browser.Name)
	})
}

type failingTarget struct{}

func (failingTarget) Add(context.Context, ...string) error { return errors.New("detached document") }

func TestDetect_InjectClasses(t *testing.T) {
	t.Parallel()

	t.Run("adds classes to target", func(t *testing.T) {
		t.Parallel()
		set := classlist.NewSet("no-js")
		d := detect.New(detect.WithTarget(set))

		res := d.Detect(context.Background(), chromeSnapshot(), detect.Config{InjectClasses: true})
		_ = d.Detect(context.Background(), chromeSnapshot(), detect.Config{InjectClasses: true})

		assert.Equal(t, append([]string{"no-js"}, res.Classes()...), set.Tokens())
		assert.True(t, set.Contains("name-chrome"))
		assert.True(t, set.Contains("arch-64"))
		assert.True(t, set.Contains("adobe_flash_player"))
	})

	t.Run("disabled by config", func(t *testing.T) {
		t.Parallel()
		set := classlist.NewSet()
		detect.New(detect.WithTarget(set)).Detect(context.Background(), chromeSnapshot(), detect.Config{})
		assert.Zero(t, set.Len())
	})

	t.Run("only non-skipped axes", func(t *testing.T) {
		t.Parallel()
		set := classlist.NewSet()
		nav := navigator.Snapshot{PlatformName: "Linux"}
		detect.New(detect.WithTarget(set)).Detect(context.Background(), nav, detect.Config{
			InjectClasses: true,
			SkipBrowser:   true,
			SkipPlugins:   true,
		})
		assert.Equal(t, []string{"family-linux", "arch-32"}, set.Tokens())
	})

	t.Run("target failure is logged", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		d := detect.New(detect.WithTarget(failingTarget{}), detect.WithLogger(newTestLogger(buf)))

		res := d.Detect(context.Background(), chromeSnapshot(), detect.Config{InjectClasses: true})
		assert.NotNil(t, res.Browser)
		assert.True(t, strings.Contains(buf.String(), "class injection failed"))
	})
}

func TestConfigSkip(t *testing.T) {
	t.Parallel()

	cfg, err := detect.Config{InjectClasses: true}.Skip("Browser", " os ", "")
	require.NoError(t, err)
	assert.Equal(t, detect.Config{SkipBrowser: true, SkipOS: true, InjectClasses: true}, cfg)

	cfg, err = detect.Config{}.Skip(detect.AxisPlugins, detect.AxisSupports)
	require.NoError(t, err)
	assert.True(t, cfg.SkipPlugins)
	assert.True(t, cfg.SkipSupports)

	_, err = detect.Config{}.Skip("gpu")
	require.ErrorIs(t, err, detect.ErrUnknownAxis)
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := detect.FromContext(context.Background())
	assert.False(t, ok)

	b := useragent.UnknownBrowser()
	ctx := detect.WithContext(context.Background(), detect.Result{Browser: &b})
	res, ok := detect.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, &b, res.Browser)
}

func BenchmarkDetect(b *testing.B) {
	d := detect.New()
	nav := chromeSnapshot()
	ctx := context.Background()
	for b.Loop() {
		_ = d.Detect(ctx, nav, detect.Config{})
	}
}
