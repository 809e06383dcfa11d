package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength truncates the slug to at most n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug is lower-cased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// Make turns s into a token made of ASCII letters, digits and the separator.
// Diacritics are folded (é → e), every other run of characters collapses to
// a single separator, and leading/trailing separators are dropped. The result
// is safe as a URL segment and as a CSS class name.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	count := 0
	sepLen := len([]rune(cfg.separator))

	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}

		if !isASCIIAlnum(r) {
			pendingSep = b.Len() > 0
			continue
		}

		if pendingSep {
			if cfg.maxLength > 0 && count+sepLen+1 > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			count += sepLen
			pendingSep = false
		}

		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		count++
	}

	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// foldDiacritics strips combining marks after canonical decomposition.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
