package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/internal/tui"
	"github.com/yaklabco/gomdview/pkg/highlight"
)

// ErrNotTerminal is returned when a directory is opened without a terminal.
var ErrNotTerminal = errors.New("browsing a directory requires a terminal")

// runView opens the interactive viewer, or renders once when standard
// output is not a terminal.
func runView(cmd *cobra.Command, flags *globalFlags, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	result, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	cfg := result.Config

	if !isTerminal(cmd.OutOrStdout()) {
		if info.IsDir() {
			return fmt.Errorf("%s: %w", path, ErrNotTerminal)
		}
		return renderFile(cmd.Context(), cmd.OutOrStdout(), cfg, path, flags.color)
	}

	logger, closer, err := viewerLogger(cfg.LogFile, flags.debug)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	previous := logging.Default()
	logging.SetDefault(logger)
	defer logging.SetDefault(previous)

	logger.Info("starting viewer",
		logging.FieldPath, path,
		logging.FieldFlavor, cfg.General.Flavor,
		logging.FieldWidth, cfg.General.Width,
	)

	ctx := logging.WithLogger(cmd.Context(), logger)
	model := tui.New(ctx, tui.Options{
		Config:      cfg,
		Path:        path,
		Directory:   info.IsDir(),
		Highlighter: highlight.New(),
		Logger:      logger,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if done, ok := final.(tui.Model); ok {
		done.Close()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// viewerLogger returns the logger used while the viewer owns the terminal.
// Without a log file nothing is logged, since output would corrupt the
// screen.
func viewerLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	level := "info"
	if debug {
		level = "debug"
	}
	return logging.OpenFile(path, level)
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}
