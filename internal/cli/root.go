// Package cli provides the Cobra command structure for gomdview.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/configloader"
	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath     string
	debug          bool
	logFile        string
	color          string
	width          int
	flavor         string
	alignment      string
	noGitignore    bool
	detectLanguage bool
}

// NewRootCommand creates the root gomdview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdview [file or directory]",
		Short: "A terminal Markdown viewer",
		Long: `gomdview renders Markdown in the terminal.

Open a file to read it, or a directory to pick a file from every Markdown
document below it. Links can be selected and followed, documents searched
with typo-tolerant matching, and the open file reloads when it changes on
disk.

` + keyBindingsHelp(config.DefaultKeys()),
		Args: usageArgs(cobra.MaximumNArgs(1)),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.Version,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file while the viewer runs")
	pf.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	pf.IntVarP(&flags.width, "width", "w", 0, "maximum document width (0 = terminal width)")
	pf.StringVar(&flags.flavor, "flavor", "", "Markdown flavor: commonmark, gfm")
	pf.StringVar(&flags.alignment, "alignment", "", "document alignment: left, center, right")
	pf.BoolVar(&flags.noGitignore, "no-gitignore", false, "list files ignored by .gitignore in the file tree")
	pf.BoolVar(&flags.detectLanguage, "detect-language", false, "guess the language of untagged code blocks")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}

func keyBindingsHelp(keys config.KeyConfig) string {
	var buf strings.Builder
	buf.WriteString("Key bindings:\n")
	for _, b := range keys.Bindings() {
		fmt.Fprintf(&buf, "  %s  %s\n", b.Key, b.Action.Description())
	}
	buf.WriteString("  enter  follow the selected link or open the selected file\n")
	buf.WriteString("  esc    leave the current mode\n")
	buf.WriteString("  ctrl+c quit")
	return buf.String()
}

// cliConfig builds the configuration layer contributed by flags. Only flags
// the user set are filled in.
func (f *globalFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("width") {
		cfg.General.Width = f.width
	}
	if changed("flavor") {
		cfg.General.Flavor = config.Flavor(f.flavor)
	}
	if changed("alignment") {
		cfg.General.Alignment = config.Alignment(f.alignment)
	}
	if changed("no-gitignore") {
		enabled := !f.noGitignore
		cfg.General.Gitignore = &enabled
	}
	if changed("detect-language") {
		detect := f.detectLanguage
		cfg.General.DetectLanguage = &detect
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	return cfg
}

// loadConfig resolves the merged configuration and reports file warnings.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*configloader.LoadResult, error) {
	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded", logging.FieldLoadedCfg, strings.Join(result.LoadedFrom, ","))
	return result, nil
}
