package pretty_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/internal/ui/pretty"
	"github.com/yaklabco/gomdview/pkg/component"
	"github.com/yaklabco/gomdview/pkg/config"
	mdparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
)

func parse(t *testing.T, src string, width int) *component.Root {
	t.Helper()
	root, err := mdparser.New(mdparser.FlavorGFM).Parse(context.Background(), "test.md", []byte(src))
	require.NoError(t, err)
	root.Transform(width, nil)
	return root
}

func plainRenderer(width int) *pretty.Renderer {
	return pretty.NewRenderer(pretty.NewStyles(config.NewConfig(), false), pretty.RenderOptions{Width: width})
}

const sample = `# Title

A paragraph that is long enough to wrap across more than one line of output.

- one
- two
  - nested

Tasks:

- [x] done
- [ ] todo

> [!NOTE]
> Quoted text.

| Name | Size |
|:-----|-----:|
| a    | 1    |
| bb   | 22   |

` + "```go\nfunc main() {}\n```" + `

---

![diagram](arch.png)
`

func TestRenderer_LineCountsMatchDisplayHeight(t *testing.T) {
	t.Parallel()

	root := parse(t, sample, 30)
	renderer := plainRenderer(30)

	for _, block := range root.Blocks() {
		lines := renderer.Block(block)
		assert.Len(t, lines, block.DisplayHeight(), "block %s", block.Kind())
		for _, line := range lines {
			assert.LessOrEqual(t, pretty.Width(line), 30, "block %s line %q", block.Kind(), line)
		}
	}
	assert.Len(t, renderer.Document(root), root.Height())
}

func TestRenderer_PlainOutput(t *testing.T) {
	t.Parallel()

	root := parse(t, sample, 40)
	out := strings.Join(plainRenderer(40).Document(root), "\n")

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "• one")
	assert.Contains(t, out, "[x] done")
	assert.Contains(t, out, "[ ] todo")
	assert.Contains(t, out, "▌ Note")
	assert.Contains(t, out, "▌ Quoted text.")
	assert.Contains(t, out, "▣ diagram")
	assert.Contains(t, out, strings.Repeat("─", 40))
	assert.NotContains(t, out, "\x1b[", "plain styles emit no escape codes")
}

func TestRenderer_HeadingCentered(t *testing.T) {
	t.Parallel()

	root := parse(t, "# Hi\n", 10)
	lines := plainRenderer(10).Block(root.Blocks()[0])
	require.Len(t, lines, 1)
	assert.Equal(t, "    Hi", lines[0])
}

func TestRenderer_TableAlignment(t *testing.T) {
	t.Parallel()

	root := parse(t, "| Name | Size |\n|:-----|-----:|\n| a | 1 |\n| bb | 22 |\n", 40)
	lines := plainRenderer(40).Block(root.Blocks()[0])
	require.Len(t, lines, 3)

	assert.Equal(t, " Name │  Size", lines[0])
	assert.Equal(t, " a    │     1", lines[1])
	assert.Equal(t, " bb   │    22", lines[2])
}

func TestRenderer_CodeFillsWidth(t *testing.T) {
	t.Parallel()

	root := parse(t, "```\nx\ty\n```\n", 12)
	lines := plainRenderer(12).Block(root.Blocks()[0])
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 12, pretty.Width(line))
	}
	assert.Equal(t, " x    y     ", lines[1])
}

func TestRenderer_TruncatesLongCode(t *testing.T) {
	t.Parallel()

	root := parse(t, "```go\n"+strings.Repeat("x", 50)+"\n```\n", 20)
	lines := plainRenderer(20).Block(root.Blocks()[0])
	require.Len(t, lines, 1)
	assert.Equal(t, 20, pretty.Width(lines[0]))
}

func TestRenderer_Margin(t *testing.T) {
	t.Parallel()

	root := parse(t, "text\n\nmore\n", 20)
	renderer := pretty.NewRenderer(pretty.NewStyles(config.NewConfig(), false), pretty.RenderOptions{Width: 20, Margin: 3})
	lines := renderer.Document(root)

	require.Len(t, lines, 3)
	assert.Equal(t, "   text", lines[0])
	assert.Empty(t, lines[1], "blank separators stay empty")
	assert.Equal(t, "   more", lines[2])
}

func TestRenderer_Viewport(t *testing.T) {
	t.Parallel()

	var src strings.Builder
	for _, word := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		src.WriteString(word + "\n\n")
	}
	root := parse(t, src.String(), 20)
	renderer := plainRenderer(20)

	root.SetScroll(2)
	assert.Equal(t, []string{"beta", "", "gamma"}, renderer.Viewport(root, 3))

	root.SetScroll(root.MaxScroll(3))
	assert.Equal(t, []string{"delta", "", "epsilon"}, renderer.Viewport(root, 3))

	short := parse(t, "only\n", 20)
	assert.Equal(t, []string{"only", "", ""}, renderer.Viewport(short, 3))
}

func TestRenderer_SelectedLinkStyled(t *testing.T) {
	t.Parallel()

	root := parse(t, "see [docs](docs.md)\n", 40)
	_, err := root.SelectLink(0)
	require.NoError(t, err)

	renderer := pretty.NewRenderer(pretty.NewStyles(config.NewConfig(), true), pretty.RenderOptions{Width: 40})
	lines := renderer.Block(root.Blocks()[0])
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "docs")
	assert.Equal(t, len("see docs"), pretty.Width(lines[0]))
}
