package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdview/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies colors and slices", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.General.Ignore = []string{"vendor/**"}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)

		clone.Colors[config.ColorLink] = "#000000"
		clone.General.Ignore[0] = "changed"
		*clone.General.Gitignore = false

		assert.Equal(t, config.DefaultColors()[config.ColorLink], original.Colors[config.ColorLink])
		assert.Equal(t, "vendor/**", original.General.Ignore[0])
		assert.True(t, original.General.GitignoreEnabled())
	})

	t.Run("preserves all fields", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.General.Width = 72
		original.General.Alignment = config.AlignCenter
		original.Keys.Quit = "x"
		original.LogFile = "/tmp/view.log"

		clone := original.Clone()
		assert.Equal(t, original, clone)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("round trips defaults", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "flavor: gfm")
		assert.Contains(t, string(data), "alignment: left")
		assert.NotContains(t, string(data), "logfile")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, cfg, parsed)
	})

	t.Run("header is prepended", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Regexp(t, `^# header\n\ngeneral:`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses partial YAML", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte(`
general:
  width: 80
  gitignore: false
colors:
  link: "#00ff00"
keys:
  quit: x
`))
		require.NoError(t, err)
		assert.Equal(t, 80, cfg.General.Width)
		require.NotNil(t, cfg.General.Gitignore)
		assert.False(t, cfg.General.GitignoreEnabled())
		assert.Nil(t, cfg.General.DetectLanguage)
		assert.Equal(t, "#00ff00", cfg.Colors["link"])
		assert.Equal(t, "x", cfg.Keys.Quit)
		assert.Empty(t, cfg.Keys.Up)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("general: [unterminated"))
		require.Error(t, err)
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal parses to general defaults", func(t *testing.T) {
		t.Parallel()
		data := config.GenerateTemplate(config.TemplateOptions{})
		assert.Contains(t, string(data), "# gomdview configuration")
		assert.NotContains(t, string(data), "colors:")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig().General, cfg.General)
	})

	t.Run("full parses to all defaults", func(t *testing.T) {
		t.Parallel()
		data := config.GenerateTemplate(config.TemplateOptions{Full: true})

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})
}
