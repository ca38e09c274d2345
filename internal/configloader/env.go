package configloader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdview/pkg/config"
)

// envVarPrefix is the prefix for all gomdview environment variables.
const envVarPrefix = "GOMDVIEW_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"WIDTH":           {"general.width", envTypeInt, "Maximum document width (0 = terminal width)"},
	"ALIGNMENT":       {"general.alignment", envTypeString, "Document alignment: left, center, or right"},
	"GITIGNORE":       {"general.gitignore", envTypeBool, "Honor .gitignore in the file tree: true or false"},
	"FLAVOR":          {"general.flavor", envTypeString, "Markdown flavor: commonmark or gfm"},
	"DETECT_LANGUAGE": {"general.detect_language", envTypeBool, "Guess untagged code block languages: true or false"},
	"IGNORE":          {"general.ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDVIEW_ (e.g., GOMDVIEW_WIDTH).
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil || getenv == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "general.alignment":
		cfg.General.Alignment = config.Alignment(value)
	case "general.flavor":
		cfg.General.Flavor = config.Flavor(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "general.gitignore":
		cfg.General.Gitignore = &value
	case "general.detect_language":
		cfg.General.DetectLanguage = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "general.width":
		cfg.General.Width = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "general.ignore":
		cfg.General.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
