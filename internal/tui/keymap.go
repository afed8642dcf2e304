package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/listboard/internal/config"
)

// keyMap represents the board's key bindings.
type keyMap struct {
	left         key.Binding
	right        key.Binding
	up           key.Binding
	down         key.Binding
	grab         key.Binding
	cancel       key.Binding
	edit         key.Binding
	save         key.Binding
	deleteItem   key.Binding
	addGroup     key.Binding
	addGenerated key.Binding
	newItem      key.Binding
	toggleHelp   key.Binding
	quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "group left")),
		right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "group right")),
		up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "item up")),
		down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "item down")),
		grab:         key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "grab/drop")),
		cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		save:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		deleteItem:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		addGroup:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "add new group")),
		addGenerated: key.NewBinding(key.WithKeys("N", "shift+n"), key.WithHelp("N", "add new item")),
		newItem:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "type new item")),
		toggleHelp:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// applyConfig overrides bindings from the [keys] config table.
func (k *keyMap) applyConfig(cfg config.KeyConfig) {
	configureBinding(&k.grab, cfg.Grab, "space", "grab/drop")
	configureBinding(&k.edit, cfg.Edit, "e", "edit")
	configureBinding(&k.deleteItem, cfg.Delete, "d", "delete")
	configureBinding(&k.addGroup, cfg.AddGroup, "g", "add new group")
	configureBinding(&k.addGenerated, cfg.AddGenerated, "N", "add new item")
	configureBinding(&k.newItem, cfg.NewItem, "a", "type new item")
}

func configureBinding(b *key.Binding, value, fallback, desc string) {
	keys, help := parseBindingKeys(value, fallback)
	b.SetKeys(keys...)
	b.SetHelp(help, desc)
}

// parseBindingKeys turns a configured key name into matcher strings and
// the label shown in help.
func parseBindingKeys(value, fallback string) ([]string, string) {
	v := strings.TrimSpace(value)
	if value == " " {
		v = "space"
	}
	if v == "" {
		v = fallback
	}
	if strings.EqualFold(v, "space") {
		return []string{" ", "space"}, "space"
	}
	if utf8.RuneCountInString(v) == 1 {
		r, _ := utf8.DecodeRuneInString(v)
		if unicode.IsUpper(r) {
			return []string{v, "shift+" + strings.ToLower(v)}, v
		}
		return []string{v}, v
	}
	return []string{strings.ToLower(v)}, v
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.grab, k.edit, k.deleteItem, k.addGroup, k.addGenerated, k.newItem, k.toggleHelp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down},
		{k.grab, k.cancel, k.edit, k.save, k.deleteItem},
		{k.addGroup, k.addGenerated, k.newItem, k.toggleHelp, k.quit},
	}
}
