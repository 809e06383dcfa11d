package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Display names that title-casing gets wrong
var displayNames = map[string]string{
	BrowserIE:           "Internet Explorer",
	BrowserMobileSafari: "Mobile Safari",
	OSMac:               "macOS",
	OSiOS:               "iOS",
}

// formatOSName formats the OS name with proper capitalization
func formatOSName(family string) string {
	if family == "" || family == OSUnknown {
		return "Unknown OS"
	}
	return displayName(family)
}

// formatBrowserName formats the browser name with proper capitalization
func formatBrowserName(name string) string {
	if name == "" || name == BrowserUnknown {
		return "Unknown"
	}
	return displayName(name)
}

func displayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return cases.Title(language.English).String(id)
}

// ShortIdentifier returns a compact label for logs.
// Format: Browser/Major (OS, N-bit), e.g. "Chrome/91 (Windows, 64-bit)".
func ShortIdentifier(b Browser, o OS) string {
	if b.IsUnknown() && o.IsUnknown() {
		return "Unknown environment"
	}

	if b.IsUnknown() {
		return fmt.Sprintf("%s, %d-bit", o.Title(), o.Arch)
	}

	if o.IsUnknown() {
		return fmt.Sprintf("%s/%d", b.Title(), b.Major)
	}

	return fmt.Sprintf("%s/%d (%s, %d-bit)", b.Title(), b.Major, o.Title(), o.Arch)
}
