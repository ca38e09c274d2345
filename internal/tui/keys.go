package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/gomdview/pkg/config"
)

// arrowKeys are accepted in addition to the configured bindings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var arrowKeys = map[config.Action][]string{
	config.ActionUp:       {"up"},
	config.ActionDown:     {"down"},
	config.ActionPageUp:   {"pgup"},
	config.ActionPageDown: {"pgdown", " "},
	config.ActionTop:      {"home"},
	config.ActionBottom:   {"end"},
}

type actionBinding struct {
	action  config.Action
	binding key.Binding
}

// keyMap resolves key presses to actions. Quit and Escape are fixed and
// take effect in every mode.
type keyMap struct {
	actions []actionBinding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

func newKeyMap(keys config.KeyConfig) keyMap {
	km := keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	for _, b := range keys.Bindings() {
		names := append([]string{b.Key}, arrowKeys[b.Action]...)
		km.actions = append(km.actions, actionBinding{
			action:  b.Action,
			binding: key.NewBinding(key.WithKeys(names...), key.WithHelp(b.Key, b.Action.Description())),
		})
	}
	return km
}

// action returns the configured action for msg.
func (k keyMap) action(msg tea.KeyMsg) (config.Action, bool) {
	for _, ab := range k.actions {
		if key.Matches(msg, ab.binding) {
			return ab.action, true
		}
	}
	return "", false
}
