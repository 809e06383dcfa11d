package navigator

import "slices"

// Navigator exposes the signals a browser environment reports about itself.
// Implementations are read-only views; classifiers never mutate them.
type Navigator interface {
	// UserAgent returns navigator.userAgent.
	UserAgent() string
	// Platform returns navigator.platform, e.g. "Win32" or "Linux x86_64".
	Platform() string
	// Plugins returns navigator.plugins, or nil when the environment exposes none.
	Plugins() []Plugin
	// HasGlobal reports whether name is a property of the global scope.
	HasGlobal(name string) bool
	// HasBodyProperty reports whether name is a property of document.body.
	HasBodyProperty(name string) bool
}

// Plugin is a raw plugin descriptor as exposed by navigator.plugins.
type Plugin struct {
	Name        string `json:"name" yaml:"name" koanf:"name" validate:"required,max=256"`
	Description string `json:"description" yaml:"description" koanf:"description" validate:"max=1024"`
}

// Snapshot is a point-in-time copy of navigator data. It is the form posted
// by page scripts, stored in fixture files and captured from live browsers.
type Snapshot struct {
	UA             string   `json:"userAgent" yaml:"userAgent" koanf:"userAgent" validate:"max=2048"`
	PlatformName   string   `json:"platform" yaml:"platform" koanf:"platform" validate:"max=256"`
	PluginList     []Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty" koanf:"plugins" validate:"max=256,dive"`
	Globals        []string `json:"globals,omitempty" yaml:"globals,omitempty" koanf:"globals" validate:"max=512,dive,max=128"`
	BodyProperties []string `json:"bodyProperties,omitempty" yaml:"bodyProperties,omitempty" koanf:"bodyProperties" validate:"max=512,dive,max=128"`
}

var _ Navigator = Snapshot{}

func (s Snapshot) UserAgent() string { return s.UA }

func (s Snapshot) Platform() string { return s.PlatformName }

func (s Snapshot) Plugins() []Plugin { return s.PluginList }

func (s Snapshot) HasGlobal(name string) bool { return slices.Contains(s.Globals, name) }

func (s Snapshot) HasBodyProperty(name string) bool { return slices.Contains(s.BodyProperties, name) }

// Capture copies every signal of nav into a Snapshot. Feature presence is
// only recorded for the given names since a Navigator can't be enumerated.
func Capture(nav Navigator, names ...string) Snapshot {
	if s, ok := nav.(Snapshot); ok {
		return s
	}

	s := Snapshot{
		UA:           nav.UserAgent(),
		PlatformName: nav.Platform(),
		PluginList:   slices.Clone(nav.Plugins()),
	}
	for _, name := range names {
		if nav.HasGlobal(name) {
			s.Globals = append(s.Globals, name)
		}
		if nav.HasBodyProperty(name) {
			s.BodyProperties = append(s.BodyProperties, name)
		}
	}
	return s
}
