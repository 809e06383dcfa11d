package detect

import (
	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/feature"
	"github.com/dmitrymomot/sniff/pkg/plugin"
	"github.com/dmitrymomot/sniff/pkg/useragent"
)

// Result aggregates every axis. A field is nil when its axis was skipped.
type Result struct {
	Browser  *useragent.Browser `json:"browser,omitzero" yaml:"browser,omitempty"`
	OS       *useragent.OS      `json:"os,omitzero" yaml:"os,omitempty"`
	Plugins  plugin.List        `json:"plugins,omitzero" yaml:"plugins,omitempty"`
	Supports feature.Supports   `json:"supports,omitzero" yaml:"supports,omitempty"`
}

// Classes returns the CSS classes describing r.
func (r Result) Classes() []string {
	return classlist.Classes(r.Browser, r.OS, r.Plugins)
}

// Identifier returns a short human readable summary such as
// "Chrome/91 (Windows, 64-bit)". Skipped axes count as unknown.
func (r Result) Identifier() string {
	b := useragent.UnknownBrowser()
	if r.Browser != nil {
		b = *r.Browser
	}
	o := useragent.UnknownOS()
	if r.OS != nil {
		o = *r.OS
	}
	return useragent.ShortIdentifier(b, o)
}
