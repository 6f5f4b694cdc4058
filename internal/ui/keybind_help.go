package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.HelpDesc
	h.Styles.ShortSeparator = Styles.HelpDesc
	h.Styles.FullKey = Styles.HelpKey
	h.Styles.FullDesc = Styles.HelpDesc
	h.Styles.FullSeparator = Styles.HelpDesc
	return h
}

// RenderKeybindHelp produces the transient help box shown after SPC, labelled with the
// pending sequence.
func RenderKeybindHelp(handler *KeyHandler, mode AppMode) string {
	if handler == nil || !handler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(handler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	content := Styles.Hint.Render(handler.Sequence()) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.HelpBox.Render(content)
}

// RenderFullHelp renders every group of km in columns inside the help box.
func RenderFullHelp(km help.KeyMap) string {
	h := newHelpModel()
	return Styles.HelpBox.Render(h.FullHelpView(km.FullHelp()))
}

// combinedKeyMap merges several help.KeyMaps into one.
type combinedKeyMap []help.KeyMap

func (c combinedKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, km := range c {
		out = append(out, km.ShortHelp()...)
	}
	return out
}

func (c combinedKeyMap) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, km := range c {
		out = append(out, km.FullHelp()...)
	}
	return out
}
