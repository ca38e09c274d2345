package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdview/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantError string
		wantWarn  bool
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{
			name:      "negative width",
			mutate:    func(c *config.Config) { c.General.Width = -5 },
			wantError: "general.width",
		},
		{
			name:      "unknown flavor",
			mutate:    func(c *config.Config) { c.General.Flavor = "mdx" },
			wantError: "general.flavor",
		},
		{
			name:      "bad glob",
			mutate:    func(c *config.Config) { c.General.Ignore = []string{"[oops"} },
			wantError: "general.ignore[0]",
		},
		{
			name:      "extension without dot",
			mutate:    func(c *config.Config) { c.General.Extensions = []string{"md"} },
			wantError: "general.extensions[0]",
		},
		{
			name:      "multi-character key",
			mutate:    func(c *config.Config) { c.Keys.Search = "ctrl+f" },
			wantError: "keys.search",
		},
		{
			name:      "duplicate key",
			mutate:    func(c *config.Config) { c.Keys.Yank = "q" },
			wantError: "already bound",
		},
		{
			name:      "malformed color",
			mutate:    func(c *config.Config) { c.Colors[config.ColorLink] = "#12345" },
			wantError: "colors.link",
		},
		{
			name:     "unknown color name",
			mutate:   func(c *config.Config) { c.Colors["glitter"] = "1" },
			wantWarn: true,
		},
		{
			name:   "unicode key",
			mutate: func(c *config.Config) { c.Keys.Help = "é" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)
			result := Validate(cfg)

			if tt.wantError == "" {
				assert.True(t, result.Valid(), "%v", result.AllMessages())
			} else {
				assert.False(t, result.Valid())
				assert.Contains(t, result.Errors[0].Error(), tt.wantError)
			}
			assert.Equal(t, tt.wantWarn, result.HasWarnings())
		})
	}
}

func TestIsValidColor(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"#fff", "#FFAA00", "0", "255"} {
		assert.True(t, IsValidColor(ok), ok)
	}
	for _, bad := range []string{"", "#ff", "#gggggg", "256", "-1", "red"} {
		assert.False(t, IsValidColor(bad), bad)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	err := LoadFromEnv(cfg, envMap(map[string]string{
		"GOMDVIEW_WIDTH":           "72",
		"GOMDVIEW_GITIGNORE":       "false",
		"GOMDVIEW_FLAVOR":          "commonmark",
		"GOMDVIEW_DETECT_LANGUAGE": "1",
		"GOMDVIEW_IGNORE":          " vendor/** , ,build/**",
	}))
	assert.NoError(t, err)
	assert.Equal(t, 72, cfg.General.Width)
	assert.False(t, cfg.General.GitignoreEnabled())
	assert.True(t, cfg.General.DetectLanguageEnabled())
	assert.Equal(t, config.FlavorCommonMark, cfg.General.Flavor)
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.General.Ignore)

	err = LoadFromEnv(cfg, envMap(map[string]string{"GOMDVIEW_GITIGNORE": "maybe"}))
	assert.ErrorContains(t, err, "GOMDVIEW_GITIGNORE")
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Equal(t, "GOMDVIEW_ALIGNMENT", vars[0].Name)
	assert.Equal(t, "GOMDVIEW_WIDTH", GetEnvVarName("general.width"))
	assert.Empty(t, GetEnvVarName("general.nope"))
}
