package config

// Action names a logical viewer command that can be bound to a key.
type Action string

const (
	ActionUp             Action = "up"
	ActionDown           Action = "down"
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"
	ActionHalfPageUp     Action = "half_page_up"
	ActionHalfPageDown   Action = "half_page_down"
	ActionSearch         Action = "search"
	ActionSelectLink     Action = "select_link"
	ActionEdit           Action = "edit"
	ActionBack           Action = "back"
	ActionFileTree       Action = "file_tree"
	ActionHover          Action = "hover"
	ActionTop            Action = "top"
	ActionBottom         Action = "bottom"
	ActionNextResult     Action = "next_result"
	ActionPreviousResult Action = "previous_result"
	ActionYank           Action = "yank"
	ActionHelp           Action = "help"
	ActionQuit           Action = "quit"
)

// KeyConfig holds one single-character binding per action.
type KeyConfig struct {
	Up             string `yaml:"up"`
	Down           string `yaml:"down"`
	PageUp         string `yaml:"page_up"`
	PageDown       string `yaml:"page_down"`
	HalfPageUp     string `yaml:"half_page_up"`
	HalfPageDown   string `yaml:"half_page_down"`
	Search         string `yaml:"search"`
	SelectLink     string `yaml:"select_link"`
	Edit           string `yaml:"edit"`
	Back           string `yaml:"back"`
	FileTree       string `yaml:"file_tree"`
	Hover          string `yaml:"hover"`
	Top            string `yaml:"top"`
	Bottom         string `yaml:"bottom"`
	NextResult     string `yaml:"next_result"`
	PreviousResult string `yaml:"previous_result"`
	Yank           string `yaml:"yank"`
	Help           string `yaml:"help"`
	Quit           string `yaml:"quit"`
}

// Binding pairs an action with its key.
type Binding struct {
	Action Action
	Key    string
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeyConfig {
	return KeyConfig{
		Up:             "k",
		Down:           "j",
		PageUp:         "p",
		PageDown:       "f",
		HalfPageUp:     "u",
		HalfPageDown:   "d",
		Search:         "/",
		SelectLink:     "s",
		Edit:           "e",
		Back:           "b",
		FileTree:       "t",
		Hover:          "K",
		Top:            "g",
		Bottom:         "G",
		NextResult:     "n",
		PreviousResult: "N",
		Yank:           "y",
		Help:           "?",
		Quit:           "q",
	}
}

// Bindings lists every binding in help-overlay order.
func (k KeyConfig) Bindings() []Binding {
	return []Binding{
		{ActionUp, k.Up},
		{ActionDown, k.Down},
		{ActionPageUp, k.PageUp},
		{ActionPageDown, k.PageDown},
		{ActionHalfPageUp, k.HalfPageUp},
		{ActionHalfPageDown, k.HalfPageDown},
		{ActionTop, k.Top},
		{ActionBottom, k.Bottom},
		{ActionSearch, k.Search},
		{ActionNextResult, k.NextResult},
		{ActionPreviousResult, k.PreviousResult},
		{ActionSelectLink, k.SelectLink},
		{ActionHover, k.Hover},
		{ActionYank, k.Yank},
		{ActionBack, k.Back},
		{ActionEdit, k.Edit},
		{ActionFileTree, k.FileTree},
		{ActionHelp, k.Help},
		{ActionQuit, k.Quit},
	}
}

// Key returns the binding for action, or the empty string.
func (k KeyConfig) Key(action Action) string {
	for _, b := range k.Bindings() {
		if b.Action == action {
			return b.Key
		}
	}
	return ""
}

// Description returns the help text for an action.
func (a Action) Description() string {
	switch a {
	case ActionUp:
		return "scroll up"
	case ActionDown:
		return "scroll down"
	case ActionPageUp:
		return "page up"
	case ActionPageDown:
		return "page down"
	case ActionHalfPageUp:
		return "half page up"
	case ActionHalfPageDown:
		return "half page down"
	case ActionSearch:
		return "search"
	case ActionSelectLink:
		return "select links"
	case ActionEdit:
		return "open in $EDITOR"
	case ActionBack:
		return "go back"
	case ActionFileTree:
		return "file tree"
	case ActionHover:
		return "show link target"
	case ActionTop:
		return "go to top"
	case ActionBottom:
		return "go to bottom"
	case ActionNextResult:
		return "next result"
	case ActionPreviousResult:
		return "previous result"
	case ActionYank:
		return "copy link target"
	case ActionHelp:
		return "toggle help"
	case ActionQuit:
		return "quit"
	default:
		return string(a)
	}
}
