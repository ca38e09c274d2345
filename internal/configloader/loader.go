// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gomdview/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

func (o LoadOptions) getenv() func(string) string {
	if o.Getenv != nil {
		return o.Getenv
	}
	return os.Getenv
}

// ErrInvalidConfig wraps every failure caused by configuration content:
// unreadable or malformed files, bad environment values and failed
// validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOMDVIEW_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdview.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdview/config.yaml)
//  6. System config (/etc/gomdview/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir, opts.getenv())
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	sources := []struct {
		name    string
		path    string
		skipped bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}
	for _, src := range sources {
		if src.skipped || src.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("%w: load %s config: %w", ErrInvalidConfig, src.name, err)
		}
		for _, w := range ValidateWithFile(fileCfg, src.path).Warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, src.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg, opts.getenv()); err != nil {
			return nil, fmt.Errorf("%w: load environment: %w", ErrInvalidConfig, err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		errs := make([]error, 0, len(validation.Errors))
		for i := range validation.Errors {
			errs = append(errs, &validation.Errors[i])
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
