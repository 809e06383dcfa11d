package detect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/feature"
	"github.com/dmitrymomot/sniff/pkg/logger"
	"github.com/dmitrymomot/sniff/pkg/navigator"
	"github.com/dmitrymomot/sniff/pkg/plugin"
	"github.com/dmitrymomot/sniff/pkg/useragent"
)

// Detector runs the classifiers against a Navigator.
// It holds no per-call state and is safe for concurrent use.
type Detector struct {
	log    *slog.Logger
	target classlist.Target
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger used for diagnostics. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// WithTarget sets where classes go when Config.InjectClasses is on.
func WithTarget(t classlist.Target) Option {
	return func(d *Detector) { d.target = t }
}

// New returns a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{log: logger.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect classifies nav. It never fails: an axis that panics degrades to its
// unknown default and the remaining axes still run.
func (d *Detector) Detect(ctx context.Context, nav navigator.Navigator, cfg Config) Result {
	var res Result

	if !cfg.SkipBrowser {
		b := guard(ctx, d.log, AxisBrowser, useragent.UnknownBrowser(), func() useragent.Browser {
			return useragent.ParseBrowser(nav.UserAgent())
		})
		res.Browser = &b
	}

	if !cfg.SkipOS {
		o := guard(ctx, d.log, AxisOS, useragent.UnknownOS(), func() useragent.OS {
			return useragent.ParseOS(nav.Platform(), nav.UserAgent())
		})
		res.OS = &o
	}

	if !cfg.SkipSupports {
		res.Supports = guard(ctx, d.log, AxisSupports, feature.Unsupported(), func() feature.Supports {
			return feature.Probe(ctx, nav, d.log)
		})
	}

	if !cfg.SkipPlugins {
		res.Plugins = guard(ctx, d.log, AxisPlugins, plugin.List{}, func() plugin.List {
			return plugin.Enumerate(nav)
		})
	}

	if cfg.InjectClasses && d.target != nil {
		if err := classlist.Inject(ctx, d.target, res.Classes()); err != nil {
			d.log.WarnContext(ctx, "class injection failed", logger.Error(err))
		}
	}

	d.log.DebugContext(ctx, "environment detected", slog.String("identifier", res.Identifier()))

	return res
}

// guard runs fn and converts a panic into fallback.
func guard[T any](ctx context.Context, log *slog.Logger, axis string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "detection axis failed",
				logger.Axis(axis),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
			out = fallback
		}
	}()
	return fn()
}
