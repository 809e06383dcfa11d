package plugin_test

import (
	"testing"

	"github.com/dmitrymomot/sniff/pkg/navigator"
	"github.com/dmitrymomot/sniff/pkg/plugin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"flash", "Adobe Flash Player", "adobe_flash_player"},
		{"java", "Java Applet", "java_applet"},
		{"single word", "QuickTime", "quicktime"},
		{"punctuation kept", "Java(TM) Plug-in", "java(tm)_plug-in"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, plugin.Slug(tc.in))
		})
	}
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	t.Run("two plugins", func(t *testing.T) {
		t.Parallel()
		nav := navigator.Snapshot{PluginList: []navigator.Plugin{
			{Name: "Adobe Flash Player", Description: "Shockwave Flash 32.0"},
			{Name: "Java Applet"},
		}}

		records := plugin.Enumerate(nav)
		require.Len(t, records, 2)
		assert.Equal(t, plugin.Record{
			Name:        "Adobe Flash Player",
			Description: "Shockwave Flash 32.0",
			Slug:        "adobe_flash_player",
		}, records[0])
		assert.Equal(t, "java_applet", records[1].Slug)
	})

	t.Run("single plugin yields nothing", func(t *testing.T) {
		t.Parallel()
		nav := navigator.Snapshot{PluginList: []navigator.Plugin{{Name: "Chrome PDF Viewer"}}}
		records := plugin.Enumerate(nav)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("no plugins", func(t *testing.T) {
		t.Parallel()
		records := plugin.Enumerate(navigator.Snapshot{})
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
