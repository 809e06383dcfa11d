package classlist_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrymomot/sniff/pkg/classlist"
	"github.com/dmitrymomot/sniff/pkg/plugin"
	"github.com/dmitrymomot/sniff/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasses(t *testing.T) {
	t.Parallel()

	t.Run("only os family", func(t *testing.T) {
		t.Parallel()
		classes := classlist.Classes(nil, &useragent.OS{Family: "linux"}, nil)
		assert.Equal(t, []string{"family-linux"}, classes)
	})

	t.Run("full result", func(t *testing.T) {
		t.Parallel()
		browser := useragent.Browser{Name: "chrome", Engine: "blink", Version: "91.0.4472.124", Major: 91}
		os := useragent.OS{Family: "windows", Arch: 64, Version: "10.0"}
		plugins := []plugin.Record{
			{Name: "Adobe Flash Player", Slug: "adobe_flash_player"},
			{Name: "Java(TM) Plug-in", Slug: "java(tm)_plug-in"},
		}

		assert.Equal(t, []string{
			"name-chrome",
			"engine-blink",
			"version-91.0.4472.124",
			"major-91",
			"family-windows",
			"arch-64",
			"version-10.0",
			"adobe_flash_player",
			"java_tm_plug_in",
		}, classlist.Classes(&browser, &os, plugins))
	})

	t.Run("unknown browser skips zero major", func(t *testing.T) {
		t.Parallel()
		b := useragent.UnknownBrowser()
		assert.Equal(t, []string{"name-unknown", "engine-unknown", "version-0.0.0"}, classlist.Classes(&b, nil, nil))
	})

	t.Run("values are lowercased and whitespace replaced", func(t *testing.T) {
		t.Parallel()
		classes := classlist.Classes(&useragent.Browser{Name: "Mobile Safari"}, nil, nil)
		assert.Equal(t, []string{"name-mobile_safari"}, classes)
	})

	t.Run("nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, classlist.Classes(nil, nil, []plugin.Record{}))
	})
}

func TestInject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	set := classlist.NewSet("js")
	classes := classlist.Classes(nil, &useragent.OS{Family: "linux"}, nil)

	require.NoError(t, classlist.Inject(ctx, set, classes))
	require.NoError(t, classlist.Inject(ctx, set, classes))
	assert.Equal(t, []string{"js", "family-linux"}, set.Tokens())

	require.NoError(t, classlist.Inject(ctx, nil, classes))
	require.NoError(t, classlist.Inject(ctx, set, nil))
}

func TestSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set semantics", func(t *testing.T) {
		t.Parallel()
		s := classlist.NewSet("a", "b", "a", "")
		require.NoError(t, s.Add(ctx, "b", "c"))
		assert.Equal(t, []string{"a", "b", "c"}, s.Tokens())
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Contains("c"))
		assert.False(t, s.Contains("d"))
		assert.Equal(t, "a b c", s.String())
	})

	t.Run("invalid token rejects the batch", func(t *testing.T) {
		t.Parallel()
		s := classlist.NewSet()
		err := s.Add(ctx, "ok", "not ok")
		require.ErrorIs(t, err, classlist.ErrInvalidToken)
		assert.Zero(t, s.Len())

		require.ErrorIs(t, s.Add(ctx, ""), classlist.ErrInvalidToken)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()
		var s classlist.Set
		require.NoError(t, s.Add(ctx, "x"))
		assert.True(t, s.Contains("x"))
	})

	t.Run("concurrent adds", func(t *testing.T) {
		t.Parallel()
		s := classlist.NewSet()
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Add(ctx, "family-linux", "arch-64")
			}()
		}
		wg.Wait()
		assert.Equal(t, 2, s.Len())
	})
}

func TestRewriteHTML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      string
		classes []string
		want    string
		err     error
	}{
		{
			name:    "adds class attribute",
			in:      `<!DOCTYPE html><html lang="en"><head></head><body></body></html>`,
			classes: []string{"name-chrome", "major-91"},
			want:    `<!DOCTYPE html><html lang="en" class="name-chrome major-91"><head></head><body></body></html>`,
		},
		{
			name:    "keeps existing classes",
			in:      `<html class="no-js name-chrome"><body><p class="x">hi</p></body></html>`,
			classes: []string{"name-chrome", "family-linux"},
			want:    `<html class="no-js name-chrome family-linux"><body><p class="x">hi</p></body></html>`,
		},
		{
			name:    "only the root element is touched",
			in:      "<html>\n<body><div class=\"a\">html</div></body>\n</html>\n",
			classes: []string{"arch-64"},
			want:    "<html class=\"arch-64\">\n<body><div class=\"a\">html</div></body>\n</html>\n",
		},
		{
			name:    "no classes leaves tag without attribute",
			in:      `<html><body></body></html>`,
			classes: nil,
			want:    `<html><body></body></html>`,
		},
		{
			name:    "tags before the root keep their case",
			in:      `<HEAD Data-X="1"><TITLE>t</TITLE></HEAD><html><BODY></BODY></html>`,
			classes: []string{"family-linux"},
			want:    `<HEAD Data-X="1"><TITLE>t</TITLE></HEAD><html class="family-linux"><BODY></BODY></html>`,
		},
		{
			name:    "upper-case fragment without root",
			in:      `<DIV CLASS="a">x</DIV>`,
			classes: []string{"arch-64"},
			want:    `<DIV CLASS="a">x</DIV>`,
			err:     classlist.ErrNoRootElement,
		},
		{
			name:    "fragment without root",
			in:      `<div class="a">x</div>`,
			classes: []string{"arch-64"},
			want:    `<div class="a">x</div>`,
			err:     classlist.ErrNoRootElement,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			err := classlist.RewriteHTML(&out, strings.NewReader(tc.in), tc.classes)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRewriteHTML_InvalidClass(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	err := classlist.RewriteHTML(&out, strings.NewReader(`<html></html>`), []string{"two words"})
	require.ErrorIs(t, err, classlist.ErrInvalidToken)
}
