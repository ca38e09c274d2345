package goldmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/component"
)

func TestParser_New(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flavor     string
		wantFlavor string
	}{
		{"commonmark", FlavorCommonMark, FlavorCommonMark},
		{"gfm", FlavorGFM, FlavorGFM},
		{"invalid defaults to gfm", "invalid", FlavorGFM},
		{"empty defaults to gfm", "", FlavorGFM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantFlavor, New(tt.flavor).Flavor())
		})
	}
}

func TestParser_ParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root, err := New(FlavorGFM).Parse(ctx, "test.md", []byte("# Hi"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, root)
}

func TestParser_ParseEmpty(t *testing.T) {
	t.Parallel()

	root, err := New(FlavorGFM).Parse(context.Background(), "empty.md", nil)
	require.NoError(t, err)
	assert.Equal(t, "empty.md", root.FileName)
	assert.Empty(t, root.Blocks())
}

func TestParser_ContentIsCopied(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	root, err := New(FlavorGFM).Parse(context.Background(), "test.md", content)
	require.NoError(t, err)

	content[0] = 'J'
	root.Transform(80, nil)
	assert.Equal(t, "hello world", root.Blocks()[0].Text())
}

func TestParser_CommonMarkHasNoTables(t *testing.T) {
	t.Parallel()

	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	gfm := parse(t, FlavorGFM, src)
	assert.Equal(t, []component.BlockKind{component.BlockTable}, kinds(gfm))

	cm := parse(t, FlavorCommonMark, src)
	assert.Equal(t, []component.BlockKind{component.BlockParagraph}, kinds(cm))
}

func TestParser_DetectLanguage(t *testing.T) {
	t.Parallel()

	src := "```\npackage main\n```\n"

	plain := parse(t, FlavorGFM, src)
	assert.Empty(t, plain.Blocks()[0].Language())

	p := NewWithOptions(Options{Flavor: FlavorGFM, DetectLanguage: true})
	root, err := p.Parse(context.Background(), "test.md", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "go", root.Blocks()[0].Language())
}
