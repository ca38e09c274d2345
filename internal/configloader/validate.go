package configloader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gomdview/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "keys.quit").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown color names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// knownFlavors lists valid flavor values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFlavors = map[config.Flavor]bool{
	config.FlavorCommonMark: true,
	config.FlavorGFM:        true,
}

// Validate checks a configuration for errors and warnings. Empty values are
// treated as unset, so a partial file validates on its own.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	general := cfg.General
	if general.Width < 0 {
		result.errorf("general.width", general.Width, "width must be >= 0 (0 means terminal width)")
	}
	if general.Alignment != "" && !general.Alignment.IsValid() {
		result.errorf("general.alignment", general.Alignment,
			"invalid alignment %q; must be one of: left, center, right", general.Alignment)
	}
	if general.Flavor != "" && !knownFlavors[general.Flavor] {
		result.errorf("general.flavor", general.Flavor,
			"invalid flavor %q; must be one of: commonmark, gfm", general.Flavor)
	}
	for i, pattern := range general.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.errorf(fmt.Sprintf("general.ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}
	for i, ext := range general.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.errorf(fmt.Sprintf("general.extensions[%d]", i), ext, "extension %q must start with '.'", ext)
		}
	}

	validateColors(cfg, result)
	validateKeys(cfg, result)

	return result
}

func validateColors(cfg *config.Config, result *ValidationResult) {
	names := make([]string, 0, len(cfg.Colors))
	for name := range cfg.Colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := cfg.Colors[name]
		if !config.IsKnownColor(name) {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "colors." + name,
				Value:   name,
				Message: fmt.Sprintf("unknown color %q; it will be ignored", name),
			})
			continue
		}
		if value != "" && !IsValidColor(value) {
			result.errorf("colors."+name, value,
				"invalid color %q; use \"#rgb\", \"#rrggbb\" or an ANSI index 0-255", value)
		}
	}
}

func validateKeys(cfg *config.Config, result *ValidationResult) {
	owners := make(map[string]config.Action)
	for _, binding := range cfg.Keys.Bindings() {
		if binding.Key == "" {
			continue
		}
		field := "keys." + string(binding.Action)
		if utf8.RuneCountInString(binding.Key) != 1 {
			result.errorf(field, binding.Key, "binding %q must be a single character", binding.Key)
			continue
		}
		if owner, taken := owners[binding.Key]; taken {
			result.errorf(field, binding.Key, "key %q is already bound to %s", binding.Key, owner)
			continue
		}
		owners[binding.Key] = binding.Action
	}
}

// IsValidColor reports whether value is a hex color or an ANSI index.
func IsValidColor(value string) bool {
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return knownFlavors[f]
}
