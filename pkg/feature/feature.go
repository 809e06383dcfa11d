package feature

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/sniff/pkg/logger"
	"github.com/dmitrymomot/sniff/pkg/navigator"
)

// Web platform capabilities checked by Probe
const (
	IndexedDB        = "indexedDB"
	WebSocket        = "WebSocket"
	LocalStorage     = "localStorage"
	ClassList        = "classList"
	AddEventListener = "addEventListener"
	QuerySelector    = "querySelector"
)

var names = []string{
	IndexedDB,
	WebSocket,
	LocalStorage,
	ClassList,
	AddEventListener,
	QuerySelector,
}

// Names returns the fixed list of probed capabilities in probe order.
func Names() []string { return slices.Clone(names) }

// Supports maps a capability name to whether the environment exposes it.
type Supports map[string]bool

// Unsupported returns a map reporting every capability as missing.
func Unsupported() Supports {
	s := make(Supports, len(names))
	for _, name := range names {
		s[name] = false
	}
	return s
}

// Has reports whether name was probed and found.
func (s Supports) Has(name string) bool { return s[name] }

// Missing lists the capabilities reported as absent, in probe order.
func (s Supports) Missing() []string {
	var missing []string
	for _, name := range names {
		if !s[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Probe checks every capability against the global scope and document.body.
// Each missing capability is logged once at info level; absence is never an error.
func Probe(ctx context.Context, nav navigator.Navigator, log *slog.Logger) Supports {
	if log == nil {
		log = logger.Discard()
	}

	s := make(Supports, len(names))
	for _, name := range names {
		supported := nav.HasGlobal(name) || nav.HasBodyProperty(name)
		s[name] = supported
		if !supported {
			log.InfoContext(ctx, "feature not supported", logger.Feature(name))
		}
	}
	return s
}
