package chrome_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dmitrymomot/sniff/pkg/detect"
	"github.com/dmitrymomot/sniff/pkg/feature"
	"github.com/dmitrymomot/sniff/pkg/navigator/chrome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Live browser tests need a local Chrome; enable them with SNIFF_CHROME_TEST=1.
func requireChrome(t *testing.T) chrome.Config {
	t.Helper()
	if os.Getenv("SNIFF_CHROME_TEST") == "" {
		t.Skip("set SNIFF_CHROME_TEST=1 to run live Chrome tests")
	}
	cfg := chrome.DefaultConfig()
	cfg.ExecPath = os.Getenv("CHROME_PATH")
	cfg.NoSandbox = true
	cfg.Timeout = 20 * time.Second
	return cfg
}

func testPage(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html><html class="no-js"><head></head><body><p>ok</p></body></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := chrome.DefaultConfig()
	assert.True(t, cfg.Headless)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestCapture(t *testing.T) {
	cfg := requireChrome(t)
	cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.Platform = "Win32"

	snap, err := chrome.Capture(context.Background(), testPage(t).URL, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.UserAgent, snap.UserAgent())
	assert.Equal(t, "Win32", snap.Platform())
	assert.True(t, snap.HasGlobal(feature.WebSocket))
	assert.True(t, snap.HasBodyProperty(feature.ClassList))
}

func TestSessionInjectsClasses(t *testing.T) {
	cfg := requireChrome(t)
	ctx := context.Background()

	s, err := chrome.NewSession(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Navigate(ctx, testPage(t).URL))
	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)

	res := detect.New(detect.WithTarget(s)).Detect(ctx, snap, detect.Config{InjectClasses: true})

	classes, err := s.Classes(ctx)
	require.NoError(t, err)
	assert.Contains(t, classes, "no-js")
	for _, c := range res.Classes() {
		assert.Contains(t, classes, c)
	}
}
