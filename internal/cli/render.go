package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/internal/ui/pretty"
	"github.com/yaklabco/gomdview/pkg/config"
	"github.com/yaklabco/gomdview/pkg/fsutil"
	"github.com/yaklabco/gomdview/pkg/highlight"
	mdparser "github.com/yaklabco/gomdview/pkg/parser/goldmark"
)

// defaultRenderWidth is used when neither the configuration nor the output
// provides a width.
const defaultRenderWidth = 80

func newRenderCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Print a rendered document without the interactive viewer",
		Long: `Render a Markdown file once and write it to standard output.

Color follows --color. Without color, trailing padding is trimmed so the
output can be piped into other tools.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return renderFile(cmd.Context(), cmd.OutOrStdout(), result.Config, args[0], flags.color)
		},
	}
}

// renderFile parses path and writes the fully rendered document to out.
func renderFile(ctx context.Context, out io.Writer, cfg *config.Config, path, colorMode string) error {
	logger := logging.FromContext(ctx)

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	parser := mdparser.NewWithOptions(mdparser.Options{
		Flavor:         string(cfg.General.Flavor),
		DetectLanguage: cfg.General.DetectLanguageEnabled(),
	})
	root, err := parser.Parse(ctx, path, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	total := terminalWidth(out)
	width := cfg.General.Width
	if total > 0 && (width <= 0 || width > total) {
		width = total
	}
	if width <= 0 {
		width = defaultRenderWidth
	}
	root.Transform(width, highlight.New())

	logger.Debug("rendering document",
		logging.FieldPath, path,
		logging.FieldFlavor, parser.Flavor(),
		logging.FieldWidth, width,
		logging.FieldBlocks, len(root.Blocks()),
		logging.FieldHeight, root.Height(),
	)

	styles := pretty.NewStyles(cfg, pretty.IsColorEnabled(colorMode, out))
	renderer := pretty.NewRenderer(styles, pretty.RenderOptions{
		Width:  width,
		Margin: cfg.General.Alignment.Offset(width, max(total, width)),
	})

	var buf strings.Builder
	for _, line := range renderer.Document(root) {
		if !styles.ColorEnabled() {
			line = strings.TrimRight(line, " ")
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if _, err := io.WriteString(out, buf.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// terminalWidth returns the column count of out, or 0 when out is not a
// terminal.
func terminalWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
