package useragent

import (
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string `json:"name" yaml:"name"`
	Engine  string `json:"engine" yaml:"engine"`
	Version string `json:"version" yaml:"version"`
	Major   int    `json:"major" yaml:"major"`
}

// UnknownBrowser returns the identity reported when no rule matched.
func UnknownBrowser() Browser {
	return Browser{
		Name:    BrowserUnknown,
		Engine:  EngineUnknown,
		Version: UnknownVersion,
	}
}

// IsUnknown reports whether no browser rule matched.
func (b Browser) IsUnknown() bool { return b.Name == "" || b.Name == BrowserUnknown }

// Title returns a human-readable browser name.
func (b Browser) Title() string { return formatBrowserName(b.Name) }

// BrowserRule pairs a predicate over the lower-cased UA with a factory for
// the identity it implies. Factories receive the original UA.
type BrowserRule struct {
	Name  string
	Match func(lowerUA string) bool
	Build func(ua string) Browser
}

// browserRules is evaluated top to bottom and every matching rule replaces
// the previous candidate, so later (more specific) rules win.
var browserRules = []BrowserRule{
	{
		Name: BrowserSafari,
		Match: func(ua string) bool {
			return strings.Contains(ua, "version/") && strings.Contains(ua, "safari")
		},
		Build: func(ua string) Browser {
			return newBrowser(BrowserSafari, EngineWebKit, versionAfter(ua, "Version/"))
		},
	},
	{
		Name: BrowserChrome,
		Match: func(ua string) bool {
			return strings.Contains(ua, "chrome") && strings.Contains(ua, "applewebkit")
		},
		Build: func(ua string) Browser {
			b := newBrowser(BrowserChrome, EngineBlink, versionAfter(ua, "Chrome/"))
			if b.Major > 0 && b.Major < firstBlinkChrome {
				b.Engine = EngineWebKit
			}
			return b
		},
	},
	{
		// "like Gecko" in WebKit UAs has no slash and must not fire here
		Name: BrowserFirefox,
		Match: func(ua string) bool {
			return strings.Contains(ua, "firefox/") || strings.Contains(ua, "gecko/")
		},
		Build: func(ua string) Browser {
			return newBrowser(BrowserFirefox, EngineGecko, versionAfter(ua, "Firefox/", "rv:"))
		},
	},
	{
		Name:  BrowserMobileSafari,
		Match: iOSDeviceKeywords.contains,
		Build: func(ua string) Browser {
			return newBrowser(BrowserMobileSafari, EngineWebKit, versionAfter(ua, "Version/"))
		},
	},
	{
		Name: BrowserIE,
		Match: func(ua string) bool {
			return strings.Contains(ua, "trident") || strings.Contains(ua, "msie")
		},
		Build: func(ua string) Browser {
			return newBrowser(BrowserIE, EngineTrident, versionAfter(ua, "MSIE ", "rv:", "Trident/"))
		},
	},
	{
		Name: BrowserOpera,
		Match: func(ua string) bool {
			return strings.Contains(ua, "opera") || strings.Contains(ua, "opr/")
		},
		Build: func(ua string) Browser {
			engine := EnginePresto
			if strings.Contains(strings.ToLower(ua), "opr/") {
				engine = EngineBlink
			}
			return newBrowser(BrowserOpera, engine, versionAfter(ua, "OPR/", "Version/", "Opera/", "Opera "))
		},
	},
}

// BrowserRules returns a copy of the rule table in evaluation order.
func BrowserRules() []BrowserRule {
	rules := make([]BrowserRule, len(browserRules))
	copy(rules, browserRules)
	return rules
}

func newBrowser(name, engine, version string) Browser {
	return Browser{
		Name:    name,
		Engine:  engine,
		Version: version,
		Major:   MajorVersion(version),
	}
}

// ParseBrowser classifies the browser that produced ua.
// It never fails: unrecognized or empty input yields UnknownBrowser.
func ParseBrowser(ua string) Browser {
	return ParseBrowserWith(ua, browserRules)
}

// ParseBrowserWith runs a custom rule table with the same last-match-wins
// semantics as ParseBrowser.
func ParseBrowserWith(ua string, rules []BrowserRule) Browser {
	result := UnknownBrowser()
	if ua == "" {
		return result
	}

	lowerUA := strings.ToLower(ua)
	for _, rule := range rules {
		if rule.Match == nil || rule.Build == nil {
			continue
		}
		if rule.Match(lowerUA) {
			result = rule.Build(ua)
		}
	}

	return result
}
