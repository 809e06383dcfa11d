package useragent

import (
	"regexp"
	"strings"
)

// OS represents operating system information.
// Detection from navigator signals is best effort: browsers spoof and
// freeze these values for privacy, so nothing here is authoritative.
type OS struct {
	Family  string `json:"family" yaml:"family"`
	Arch    int    `json:"arch" yaml:"arch"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// UnknownOS returns the identity reported when the platform gave no signal.
func UnknownOS() OS {
	return OS{Family: OSUnknown, Arch: Arch32}
}

// IsUnknown reports whether the OS family could not be determined.
func (o OS) IsUnknown() bool { return o.Family == "" || o.Family == OSUnknown }

// Title returns a human-readable OS name.
func (o OS) Title() string { return formatOSName(o.Family) }

// OS version patterns, applied to the lower-cased UA
var osVersionPatterns = map[string]*regexp.Regexp{
	OSMac:     regexp.MustCompile(`mac os x (\d+(?:[._]\d+)*)`),
	OSWindows: regexp.MustCompile(`windows nt (\d+(?:\.\d+)*)`),
	OSAndroid: regexp.MustCompile(`android (\d+(?:\.\d+)*)`),
	OSiOS:     regexp.MustCompile(`os (\d+(?:_\d+)*) like mac os x`),
}

// ParseOS classifies the operating system from a navigator.platform value,
// using ua only for the WOW64 marker and the optional OS version.
func ParseOS(platform, ua string) OS {
	tokens := strings.Fields(strings.ToLower(platform))
	first, second := token(tokens, 0), token(tokens, 1)
	lowerUA := strings.ToLower(ua)

	var result OS
	switch first {
	case "macintel":
		result = OS{Family: OSMac, Arch: Arch64}
	case "macppc":
		result = OS{Family: OSMac, Arch: Arch32}
	case "win32":
		result = OS{Family: OSWindows, Arch: Arch32}
		if strings.Contains(lowerUA, "wow64") {
			result.Arch = Arch64
		}
	case "linux":
		result = OS{Family: OSLinux, Arch: archBits(second)}
	case "ipad", "iphone", "ipod":
		result = OS{Family: OSiOS, Arch: archBits(second)}
	default:
		result = OS{Family: OSUnknown, Arch: archBits(second)}
	}

	if isARM(second) {
		result.Family = OSAndroid
	}

	result.Version = osVersion(result.Family, lowerUA)
	return result
}

func token(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

// archBits guesses the word size from the second platform token
// ("x86_64", "i686", "aarch64", ...).
func archBits(tok string) int {
	if strings.Contains(tok, "86") || strings.Contains(tok, "64") {
		return Arch64
	}
	return Arch32
}

func isARM(tok string) bool {
	return strings.HasPrefix(tok, "arm") || strings.HasPrefix(tok, "aarch")
}

func osVersion(family, lowerUA string) string {
	pattern, ok := osVersionPatterns[family]
	if !ok || lowerUA == "" {
		return ""
	}

	matches := pattern.FindStringSubmatch(lowerUA)
	if len(matches) < 2 {
		return ""
	}
	return normalizeVersion(matches[1])
}

// Platform derivation keyword sets
var (
	iOSDeviceKeywords = newKeywordSet("ipad", "iphone")
	macKeywords       = newKeywordSet("macintosh", "mac os x")
	arm64Keywords     = newKeywordSet("aarch64", "arm64")
)

// PlatformFromUserAgent derives a navigator.platform-style string from UA
// tokens for environments that do not report one (plain HTTP requests).
// Returns an empty string when nothing matches.
func PlatformFromUserAgent(ua string) string {
	lowerUA := strings.ToLower(ua)

	// iOS UAs say "like Mac OS X" and Android UAs say "Linux", so order matters
	switch {
	case strings.Contains(lowerUA, "ipad"):
		return "iPad"
	case strings.Contains(lowerUA, "iphone"):
		return "iPhone"
	case strings.Contains(lowerUA, "ipod"):
		return "iPod"
	case strings.Contains(lowerUA, "android"):
		if arm64Keywords.contains(lowerUA) {
			return "Linux aarch64"
		}
		return "Linux armv8l"
	case strings.Contains(lowerUA, "windows"):
		return "Win32"
	case macKeywords.contains(lowerUA):
		if strings.Contains(lowerUA, "ppc") {
			return "MacPPC"
		}
		return "MacIntel"
	case strings.Contains(lowerUA, "linux"), strings.Contains(lowerUA, "x11"):
		for _, arch := range []string{"x86_64", "i686", "aarch64", "armv7l"} {
			if strings.Contains(lowerUA, arch) {
				return "Linux " + arch
			}
		}
		return "Linux"
	}

	return ""
}
