// Package useragent provides best-effort classification of a browser
// environment from the strings a browser exposes about itself: the
// User-Agent string and navigator.platform.
//
// It identifies:
//   - Browser name, rendering engine, version and major version
//   - Operating system family, architecture width (32/64) and version
//
// Detection is heuristic. User agents are externally controlled, unversioned
// and routinely spoofed or frozen for privacy, so every function here is
// total: unexpected input degrades to an Unknown identity or the "0.0.0"
// version instead of returning an error.
//
// # Architecture
//
// ParseBrowser evaluates an ordered rule table (browser.go). Every rule is
// tested and each match replaces the previous candidate, so more specific
// signals listed later win over generic ones listed earlier: an iPhone UA
// fires the Safari rule first and is then overridden by the Mobile Safari
// rule. Version extraction and major-version parsing live in version.go.
//
// ParseOS dispatches on the first whitespace-separated token of the
// lower-cased platform string (os.go). The second token drives the
// architecture guess and the Android override for ARM platforms.
//
//	┌──────────────┐  UA string   ┌─────────────┐
//	│ ParseBrowser │─────────────▶│ browserRules│──► Browser (last match)
//	└──────────────┘              └─────────────┘
//	┌──────────────┐ platform, UA ┌─────────────┐
//	│   ParseOS    │─────────────▶│ token switch│──► OS
//	└──────────────┘              └─────────────┘
//
// # Usage
//
//	import "github.com/dmitrymomot/sniff/pkg/useragent"
//
//	b := useragent.ParseBrowser(r.UserAgent())
//	o := useragent.ParseOS(useragent.PlatformFromUserAgent(r.UserAgent()), r.UserAgent())
//
//	log.Printf("client=%s", useragent.ShortIdentifier(b, o))
//
//	if b.Name == useragent.BrowserIE && b.Major < 11 {
//	    // serve legacy assets
//	}
//
// # Performance
//
// Rules use plain substring checks; regular expressions are only used for
// OS versions and are compiled once at package initialization.
package useragent
