package useragent

import (
	"strconv"
	"strings"
)

// maxVersionLength caps extracted versions so junk after a marker can't grow unbounded.
const maxVersionLength = 20

// ExtractVersion returns the dotted version that directly follows marker in ua.
// Underscore separators (as in "Mac OS X 10_15_7") are normalized to dots.
// The match is case-insensitive. ok is false when the marker is absent or
// is not followed by a digit.
func ExtractVersion(ua, marker string) (version string, ok bool) {
	if marker == "" {
		return "", false
	}

	lowerUA := strings.ToLower(ua)
	lowerMarker := strings.ToLower(marker)
	idx := strings.Index(lowerUA, lowerMarker)
	if idx < 0 {
		return "", false
	}

	rest := lowerUA[idx+len(lowerMarker):]
	end := 0
	for end < len(rest) && end < maxVersionLength {
		c := rest[end]
		if (c < '0' || c > '9') && c != '.' && c != '_' {
			break
		}
		end++
	}

	version = normalizeVersion(rest[:end])
	if version == "" {
		return "", false
	}
	return version, true
}

// versionAfter tries each marker in order and falls back to UnknownVersion.
func versionAfter(ua string, markers ...string) string {
	for _, marker := range markers {
		if v, ok := ExtractVersion(ua, marker); ok {
			return v
		}
	}
	return UnknownVersion
}

func normalizeVersion(v string) string {
	v = strings.ReplaceAll(v, "_", ".")
	return strings.Trim(v, ".")
}

// MajorVersion parses the integer prefix before the first dot of version.
// Empty or malformed versions yield 0.
func MajorVersion(version string) int {
	head, _, _ := strings.Cut(version, ".")

	end := 0
	for end < len(head) && head[end] >= '0' && head[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	major, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0
	}
	return major
}
