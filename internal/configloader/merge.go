package configloader

import (
	"maps"

	"github.com/yaklabco/gomdview/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer toggles: override overwrites base if non-nil, so false is meaningful
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	general := override.General
	if general.Width != 0 {
		result.General.Width = general.Width
	}
	if general.Alignment != "" {
		result.General.Alignment = general.Alignment
	}
	if general.Flavor != "" {
		result.General.Flavor = general.Flavor
	}
	if general.Gitignore != nil {
		v := *general.Gitignore
		result.General.Gitignore = &v
	}
	if general.DetectLanguage != nil {
		v := *general.DetectLanguage
		result.General.DetectLanguage = &v
	}
	if general.Ignore != nil {
		result.General.Ignore = append([]string(nil), general.Ignore...)
	}
	if general.Extensions != nil {
		result.General.Extensions = append([]string(nil), general.Extensions...)
	}

	if len(override.Colors) > 0 {
		if result.Colors == nil {
			result.Colors = make(map[string]string, len(override.Colors))
		}
		maps.Copy(result.Colors, override.Colors)
	}

	result.Keys = mergeKeys(result.Keys, override.Keys)

	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}

	return result
}

// mergeKeys overrides each binding that override sets.
func mergeKeys(base, override config.KeyConfig) config.KeyConfig {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&base.Up, override.Up)
	set(&base.Down, override.Down)
	set(&base.PageUp, override.PageUp)
	set(&base.PageDown, override.PageDown)
	set(&base.HalfPageUp, override.HalfPageUp)
	set(&base.HalfPageDown, override.HalfPageDown)
	set(&base.Search, override.Search)
	set(&base.SelectLink, override.SelectLink)
	set(&base.Edit, override.Edit)
	set(&base.Back, override.Back)
	set(&base.FileTree, override.FileTree)
	set(&base.Hover, override.Hover)
	set(&base.Top, override.Top)
	set(&base.Bottom, override.Bottom)
	set(&base.NextResult, override.NextResult)
	set(&base.PreviousResult, override.PreviousResult)
	set(&base.Yank, override.Yank)
	set(&base.Help, override.Help)
	set(&base.Quit, override.Quit)
	return base
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
