package plugin

import (
	"strings"

	"github.com/dmitrymomot/sniff/pkg/navigator"
)

// Record is a normalized plugin entry.
type Record struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Slug        string `json:"slug" yaml:"slug"`
}

// List is the plugins axis of a detection result. A nil List means the axis
// was not run; an empty one means it ran and found nothing worth reporting.
type List []Record

// IsZero reports whether l is nil. Both encoding/json (omitzero) and yaml.v3
// (omitempty) consult it, so an empty non-nil List is still encoded.
func (l List) IsZero() bool { return l == nil }

// Slug lower-cases name and replaces spaces with underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Enumerate returns one Record per plugin exposed by nav.
// Environments reporting a single plugin carry no meaningful plugin data
// (usually a built-in PDF viewer), so zero or one entries yield an empty slice.
func Enumerate(nav navigator.Navigator) []Record {
	plugins := nav.Plugins()
	if len(plugins) <= 1 {
		return []Record{}
	}

	records := make([]Record, 0, len(plugins))
	for _, p := range plugins {
		records = append(records, Record{
			Name:        p.Name,
			Description: p.Description,
			Slug:        Slug(p.Name),
		})
	}
	return records
}
