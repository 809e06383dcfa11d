package classlist

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/sniff/pkg/plugin"
	"github.com/dmitrymomot/sniff/pkg/slug"
	"github.com/dmitrymomot/sniff/pkg/useragent"
)

// Target receives classes, e.g. a document root element.
// Implementations must treat the class list as a set and never remove classes.
type Target interface {
	Add(ctx context.Context, classes ...string) error
}

// Classes returns one class per non-empty leaf of the given detection axes,
// followed by one class per plugin. Nil axes are skipped.
//
// String leaves render as "<key>-<lowercased value>", numeric leaves as
// "<key>-<n>"; empty strings and zero numbers produce nothing.
func Classes(browser *useragent.Browser, os *useragent.OS, plugins []plugin.Record) []string {
	var classes []string

	if browser != nil {
		classes = appendString(classes, "name", browser.Name)
		classes = appendString(classes, "engine", browser.Engine)
		classes = appendString(classes, "version", browser.Version)
		classes = appendInt(classes, "major", browser.Major)
	}

	if os != nil {
		classes = appendString(classes, "family", os.Family)
		classes = appendInt(classes, "arch", os.Arch)
		classes = appendString(classes, "version", os.Version)
	}

	for _, p := range plugins {
		if token := slug.Make(p.Slug, slug.Separator("_")); token != "" {
			classes = append(classes, token)
		}
	}

	return classes
}

// Inject adds classes to target. It is additive only.
func Inject(ctx context.Context, target Target, classes []string) error {
	if target == nil || len(classes) == 0 {
		return nil
	}
	if err := target.Add(ctx, classes...); err != nil {
		return fmt.Errorf("injecting %d classes: %w", len(classes), err)
	}
	return nil
}

func appendString(classes []string, key, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return classes
	}
	return append(classes, key+"-"+sanitize(strings.ToLower(value)))
}

func appendInt(classes []string, key string, value int) []string {
	if value == 0 {
		return classes
	}
	return append(classes, key+"-"+strconv.Itoa(value))
}

// sanitize replaces whitespace so the value stays a single class token.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}

func validToken(token string) bool {
	return token != "" && !strings.ContainsFunc(token, unicode.IsSpace)
}
