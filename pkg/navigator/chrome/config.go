package chrome

import "time"

// Config controls how the browser is launched.
type Config struct {
	ExecPath  string        `env:"CHROME_PATH"`                          // ExecPath is the Chrome binary; empty lets chromedp find one.
	Headless  bool          `env:"CHROME_HEADLESS" envDefault:"true"`    // Headless runs Chrome without a window.
	NoSandbox bool          `env:"CHROME_NO_SANDBOX" envDefault:"false"` // NoSandbox is required when running as root in containers.
	Timeout   time.Duration `env:"CHROME_TIMEOUT" envDefault:"30s"`      // Timeout bounds every browser operation.
	UserAgent string        `env:"CHROME_USER_AGENT"`                    // UserAgent overrides navigator.userAgent when set.
	Platform  string        `env:"CHROME_PLATFORM"`                      // Platform overrides navigator.platform; needs UserAgent.
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}
