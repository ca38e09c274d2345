package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/configloader"
	"github.com/yaklabco/gomdview/internal/logging"
	"github.com/yaklabco/gomdview/internal/ui/pretty"
	"github.com/yaklabco/gomdview/pkg/config"
	"github.com/yaklabco/gomdview/pkg/fsutil"
)

// ErrConfigExists is returned by config init when the target file exists
// and --force was not given.
var ErrConfigExists = errors.New("configuration file already exists")

const defaultConfigFile = ".gomdview.yml"

type initFlags struct {
	force  bool
	full   bool
	user   bool
	output string
}

func newConfigCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and inspect configuration",
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigShowCommand(flags))
	cmd.AddCommand(newConfigEnvCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Create a commented configuration file with the default settings.

Examples:
  gomdview config init              Create .gomdview.yml in this directory
  gomdview config init --full       Include every color and key binding
  gomdview config init --user       Write the user configuration file
  gomdview config init --force      Replace an existing file, keeping a .bak copy`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "include every color and key binding")
	cmd.Flags().BoolVar(&flags.user, "user", false, "write the user configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")
	cmd.MarkFlagsMutuallyExclusive("user", "output")

	return cmd
}

func runConfigInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")
	ctx := cmd.Context()

	path := flags.output
	if flags.user {
		userPath, err := configloader.UserConfigPath(os.Getenv)
		if err != nil {
			return fmt.Errorf("resolve user config path: %w", err)
		}
		path = userPath
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%s: %w; use --force to overwrite", path, ErrConfigExists)
		}
		if _, err := fsutil.CreateBackup(ctx, absPath); err != nil {
			return fmt.Errorf("back up %s: %w", path, err)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, path, "backup", fsutil.BackupPath(path))
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	changed, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if !changed {
		logger.Info("configuration file already up to date", logging.FieldPath, path)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	if !flags.full {
		logger.Info("run 'gomdview config init --full --force' to list every color and key binding")
	}
	return nil
}

func newConfigShowCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, configuration files,
environment variables and flags.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			header := []string{"# Effective gomdview configuration"}
			if len(result.LoadedFrom) == 0 {
				header = append(header, "# Loaded from: defaults only")
			}
			for _, path := range result.LoadedFrom {
				header = append(header, "# Loaded from: "+path)
			}

			data, err := result.Config.ToYAMLWithHeader(strings.Join(header, "\n"))
			if err != nil {
				return fmt.Errorf("encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables gomdview reads",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := configloader.ListEnvVars()
			width := 0
			for _, v := range vars {
				width = max(width, len(v.Name))
			}
			out := cmd.OutOrStdout()
			for _, v := range vars {
				if _, err := fmt.Fprintf(out, "%s  %s\n", pretty.PadRight(v.Name, width), v.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
