package tuis

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/reusee/crepe/stages"
)

type KeyMap struct {
	Lexical   key.Binding
	Syntactic key.Binding
	Semantic  key.Binding
	Theory    key.Binding
	Execute   key.Binding
	Shrink    key.Binding
	Grow      key.Binding
	Focus     key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Lexical: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "lexical"),
		),
		Syntactic: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "syntactic"),
		),
		Semantic: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "semantic"),
		),
		Theory: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "theory"),
		),
		Execute: key.NewBinding(
			key.WithKeys("f5", "ctrl+r"),
			key.WithHelp("F5", "run"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "shrink editor"),
		),
		Grow: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "grow editor"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// stageKeys maps the selection bindings to their stage
func (k KeyMap) stageKeys() map[stages.Stage]key.Binding {
	return map[stages.Stage]key.Binding{
		stages.Lexical:   k.Lexical,
		stages.Syntactic: k.Syntactic,
		stages.Semantic:  k.Semantic,
		stages.Theory:    k.Theory,
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Lexical, k.Syntactic, k.Semantic, k.Theory, k.Execute,
		k.Focus, k.Save, k.Quit,
	}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lexical, k.Syntactic, k.Semantic, k.Theory, k.Execute},
		{k.Shrink, k.Grow, k.Focus, k.ZoomIn, k.ZoomOut},
		{k.Save, k.Quit},
	}
}
