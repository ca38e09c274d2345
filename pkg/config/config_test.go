package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdview/pkg/config"
)

func TestAlignmentOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		alignment config.Alignment
		width     int
		total     int
		want      int
	}{
		{"left", config.AlignLeft, 80, 120, 0},
		{"center", config.AlignCenter, 80, 120, 20},
		{"center odd", config.AlignCenter, 80, 121, 20},
		{"right", config.AlignRight, 80, 120, 40},
		{"narrow terminal", config.AlignRight, 80, 60, 0},
		{"unknown acts as left", config.Alignment("middle"), 10, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.alignment.Offset(tt.width, tt.total))
		})
	}
}

func TestAlignmentIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.AlignLeft.IsValid())
	assert.True(t, config.AlignCenter.IsValid())
	assert.True(t, config.AlignRight.IsValid())
	assert.False(t, config.Alignment("").IsValid())
	assert.False(t, config.Alignment("justify").IsValid())
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.FlavorGFM, cfg.General.Flavor)
	assert.True(t, cfg.General.GitignoreEnabled())
	assert.False(t, cfg.General.DetectLanguageEnabled())
	assert.Equal(t, config.DefaultKeys(), cfg.Keys)
	assert.GreaterOrEqual(t, len(cfg.Colors), 25)
}

func TestGeneralConfigUnsetToggles(t *testing.T) {
	t.Parallel()

	var general config.GeneralConfig
	assert.True(t, general.GitignoreEnabled(), "gitignore defaults on")
	assert.False(t, general.DetectLanguageEnabled(), "detection defaults off")
}

func TestConfigColor(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Colors: map[string]string{config.ColorLink: "4", config.ColorBold: ""}}
	assert.Equal(t, "4", cfg.Color(config.ColorLink))
	assert.Equal(t, config.DefaultColors()[config.ColorBold], cfg.Color(config.ColorBold), "empty falls back")
	assert.Equal(t, config.DefaultColors()[config.ColorText], cfg.Color(config.ColorText))
	assert.Empty(t, cfg.Color("nope"))

	var nilCfg *config.Config
	assert.Equal(t, config.DefaultColors()[config.ColorLink], nilCfg.Color(config.ColorLink))
}

func TestHeadingColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.ColorHeading1, config.HeadingColor(0))
	assert.Equal(t, config.ColorHeading1, config.HeadingColor(1))
	assert.Equal(t, config.ColorHeading4, config.HeadingColor(4))
	assert.Equal(t, config.ColorHeading6, config.HeadingColor(9))
}

func TestKeyBindings(t *testing.T) {
	t.Parallel()

	keys := config.DefaultKeys()
	bindings := keys.Bindings()
	assert.Len(t, bindings, 19)

	seen := map[string]config.Action{}
	for _, b := range bindings {
		assert.Len(t, []rune(b.Key), 1, "action %s", b.Action)
		_, dup := seen[b.Key]
		assert.False(t, dup, "key %q bound twice", b.Key)
		seen[b.Key] = b.Action
		assert.NotEmpty(t, b.Action.Description())
	}

	assert.Equal(t, "q", keys.Key(config.ActionQuit))
	assert.Equal(t, "/", keys.Key(config.ActionSearch))
	assert.Empty(t, keys.Key(config.Action("nope")))
}
