package chrome

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/feature"
	"github.com/dmitrymomot/sniff/pkg/logger"
	"github.com/dmitrymomot/sniff/pkg/navigator"
)

// Session is a single browser tab. It implements classlist.Target, so a
// Detector can inject classes straight into the loaded page.
type Session struct {
	cfg    Config
	log    *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

var _ classlist.Target = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession launches Chrome and opens a blank tab. The browser lives until
// Close is called or ctx is cancelled.
func NewSession(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	s := &Session{cfg: cfg, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOpts(cfg)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	s.ctx = tabCtx
	s.cancel = func() {
		tabCancel()
		allocCancel()
	}

	// The first Run allocates the browser and must not carry a timeout,
	// otherwise the timeout would kill the whole browser.
	if err := chromedp.Run(tabCtx); err != nil {
		s.Close()
		return nil, errors.Join(ErrStart, err)
	}
	if err := s.run(ctx, s.emulate()); err != nil {
		s.Close()
		return nil, errors.Join(ErrStart, err)
	}

	s.log.DebugContext(ctx, "chrome session started",
		logger.Component("chrome"),
		slog.Bool("headless", cfg.Headless),
	)
	return s, nil
}

func allocatorOpts(cfg Config) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("no-sandbox", cfg.NoSandbox),
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	if cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	return opts
}

// emulate applies the user agent and platform overrides, if any.
func (s *Session) emulate() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if s.cfg.UserAgent == "" {
			return nil
		}
		override := emulation.SetUserAgentOverride(s.cfg.UserAgent)
		if s.cfg.Platform != "" {
			override = override.WithPlatform(s.cfg.Platform)
		}
		if err := override.Do(ctx); err != nil {
			return fmt.Errorf("overriding user agent: %w", err)
		}
		return nil
	})
}

// run executes actions on the tab, bounded by the session timeout and by the
// caller's ctx.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if s.cfg.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		runCtx, timeoutCancel = context.WithTimeout(runCtx, s.cfg.Timeout)
		defer timeoutCancel()
	}

	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and waits for the body to be ready.
func (s *Session) Navigate(ctx context.Context, url string) error {
	s.log.DebugContext(ctx, "navigating", slog.String("url", url))
	if err := s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return errors.Join(ErrNavigate, fmt.Errorf("navigating to %s: %w", url, err))
	}
	return nil
}

// Snapshot reads the current page's navigator data and probes the feature names.
func (s *Session) Snapshot(ctx context.Context) (navigator.Snapshot, error) {
	script, err := buildSnapshotScript(feature.Names())
	if err != nil {
		return navigator.Snapshot{}, errors.Join(ErrCapture, err)
	}

	var snap navigator.Snapshot
	if err := s.run(ctx, chromedp.Evaluate(script, &snap)); err != nil {
		return navigator.Snapshot{}, errors.Join(ErrCapture, err)
	}
	if err := navigator.Validate(snap); err != nil {
		return navigator.Snapshot{}, errors.Join(ErrCapture, err)
	}

	s.log.DebugContext(ctx, "navigator captured",
		logger.UserAgent(snap.UA),
		slog.String("platform", snap.PlatformName),
		slog.Int("plugins", len(snap.PluginList)),
	)
	return snap, nil
}

// Add adds classes to document.documentElement.classList.
func (s *Session) Add(ctx context.Context, classes ...string) error {
	if len(classes) == 0 {
		return nil
	}

	script, err := buildAddClassesScript(classes)
	if err != nil {
		return errors.Join(ErrInject, err)
	}

	var length int
	if err := s.run(ctx, chromedp.Evaluate(script, &length)); err != nil {
		return errors.Join(ErrInject, err)
	}

	s.log.DebugContext(ctx, "classes injected", slog.Int("added", len(classes)), slog.Int("total", length))
	return nil
}

// Classes returns the root element's current class list.
func (s *Session) Classes(ctx context.Context) ([]string, error) {
	var classes []string
	if err := s.run(ctx, chromedp.Evaluate(`Array.from(document.documentElement.classList)`, &classes)); err != nil {
		return nil, fmt.Errorf("reading class list: %w", err)
	}
	return classes, nil
}

// Close shuts the tab and the browser down.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Capture launches a browser, loads url and returns its navigator snapshot.
func Capture(ctx context.Context, url string, cfg Config, opts ...Option) (navigator.Snapshot, error) {
	s, err := NewSession(ctx, cfg, opts...)
	if err != nil {
		return navigator.Snapshot{}, err
	}
	defer s.Close()

	if err := s.Navigate(ctx, url); err != nil {
		return navigator.Snapshot{}, err
	}
	return s.Snapshot(ctx)
}
