package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/listboard/internal/config"
)

func TestParseBindingKeys(t *testing.T) {
	t.Run("space aliases", func(t *testing.T) {
		keys, help := parseBindingKeys("space", "x")
		if len(keys) != 2 || keys[0] != " " || keys[1] != "space" || help != "space" {
			t.Fatalf("unexpected parsed space keys %#v %q", keys, help)
		}
		keys, _ = parseBindingKeys(" ", "x")
		if len(keys) != 2 || keys[0] != " " {
			t.Fatalf("literal space not aliased: %#v", keys)
		}
	})

	t.Run("uppercase rune includes shift alias", func(t *testing.T) {
		keys, help := parseBindingKeys("N", "n")
		if len(keys) != 2 || keys[0] != "N" || keys[1] != "shift+n" || help != "N" {
			t.Fatalf("unexpected uppercase parsed keys %#v %q", keys, help)
		}
	})

	t.Run("multi rune lowercases key matcher", func(t *testing.T) {
		keys, help := parseBindingKeys("Ctrl+E", "e")
		if len(keys) != 1 || keys[0] != "ctrl+e" || help != "Ctrl+E" {
			t.Fatalf("unexpected multi-rune parsed keys %#v %q", keys, help)
		}
	})

	t.Run("blank uses fallback", func(t *testing.T) {
		keys, help := parseBindingKeys("", "d")
		if len(keys) != 1 || keys[0] != "d" || help != "d" {
			t.Fatalf("unexpected fallback parsed keys %#v %q", keys, help)
		}
	})
}

func TestConfigureBinding(t *testing.T) {
	b := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "old"))
	configureBinding(&b, "r", "e", "edit")
	if keys := b.Keys(); len(keys) != 1 || keys[0] != "r" {
		t.Fatalf("unexpected configured keys %#v", keys)
	}
	if b.Help().Key != "r" || b.Help().Desc != "edit" {
		t.Fatalf("unexpected configured help %#v", b.Help())
	}
}

func TestKeyMapApplyConfig(t *testing.T) {
	k := newKeyMap()
	k.applyConfig(config.KeyConfig{Grab: "m", Delete: "X"})
	if got := k.grab.Keys(); len(got) != 1 || got[0] != "m" {
		t.Fatalf("unexpected grab keys %#v", got)
	}
	if got := k.deleteItem.Keys(); len(got) != 2 || got[0] != "X" || got[1] != "shift+x" {
		t.Fatalf("unexpected delete keys %#v", got)
	}
	if got := k.edit.Keys(); len(got) != 1 || got[0] != "e" {
		t.Fatalf("expected edit fallback, got %#v", got)
	}
}
