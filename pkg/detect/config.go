package detect

import (
	"fmt"
	"strings"
)

// Axis names accepted by Config.Skip and the skip query parameter.
const (
	AxisBrowser  = "browser"
	AxisOS       = "os"
	AxisPlugins  = "plugins"
	AxisSupports = "supports"
)

// Config selects which axes Detect runs. The zero value runs every axis and
// injects nothing.
type Config struct {
	SkipPlugins   bool `env:"SNIFF_SKIP_PLUGINS" envDefault:"false"`
	SkipOS        bool `env:"SNIFF_SKIP_OS" envDefault:"false"`
	SkipBrowser   bool `env:"SNIFF_SKIP_BROWSER" envDefault:"false"`
	SkipSupports  bool `env:"SNIFF_SKIP_SUPPORTS" envDefault:"false"`
	InjectClasses bool `env:"SNIFF_INJECT_CLASSES" envDefault:"false"`
}

// Skip returns a copy of c with the named axes disabled.
// Names are case-insensitive; blanks are ignored.
func (c Config) Skip(axes ...string) (Config, error) {
	for _, axis := range axes {
		switch strings.ToLower(strings.TrimSpace(axis)) {
		case "":
		case AxisBrowser:
			c.SkipBrowser = true
		case AxisOS:
			c.SkipOS = true
		case AxisPlugins:
			c.SkipPlugins = true
		case AxisSupports:
			c.SkipSupports = true
		default:
			return c, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
		}
	}
	return c, nil
}
