package navigator

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/sniff/pkg/useragent"
)

// User-Agent Client Hint headers
const (
	HeaderPlatform = "Sec-CH-UA-Platform"
	HeaderArch     = "Sec-CH-UA-Arch"
	HeaderBitness  = "Sec-CH-UA-Bitness"
)

// FromRequest builds a Snapshot from request headers. The platform comes from
// client hints when the browser sends them and is otherwise derived from the
// User-Agent. Plugins and feature presence are not observable server-side.
func FromRequest(r *http.Request) Snapshot {
	ua := r.UserAgent()

	platform := platformFromHints(
		ua,
		unquote(r.Header.Get(HeaderPlatform)),
		unquote(r.Header.Get(HeaderArch)),
		unquote(r.Header.Get(HeaderBitness)),
	)
	if platform == "" {
		platform = useragent.PlatformFromUserAgent(ua)
	}

	return Snapshot{
		UA:           ua,
		PlatformName: platform,
	}
}

// platformFromHints maps client hint values onto navigator.platform vocabulary.
// Arch and bitness hints are only sent on request, so a Linux machine token
// missing from them is taken from the User-Agent.
func platformFromHints(ua, platform, arch, bitness string) string {
	switch strings.ToLower(platform) {
	case "windows":
		return "Win32"
	case "macos":
		return "MacIntel"
	case "ios":
		return "iPhone"
	case "android":
		if strings.EqualFold(arch, "arm") && bitness == "64" {
			return "Linux aarch64"
		}
		return "Linux armv8l"
	case "linux", "chrome os", "chromium os":
		if machine := linuxMachine(arch, bitness); machine != "" {
			return "Linux " + machine
		}
		if p := useragent.PlatformFromUserAgent(ua); strings.HasPrefix(p, "Linux ") {
			return p
		}
		return "Linux"
	}
	return ""
}

func linuxMachine(arch, bitness string) string {
	switch strings.ToLower(arch) {
	case "x86":
		if bitness == "32" {
			return "i686"
		}
		return "x86_64"
	case "arm":
		if bitness == "64" {
			return "aarch64"
		}
		return "armv7l"
	}
	return ""
}

func unquote(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}
