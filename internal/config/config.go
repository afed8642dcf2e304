// Package config loads listboard settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Board   BoardConfig   `toml:"board"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
	Keys    KeyConfig     `toml:"keys"`
}

type BoardConfig struct {
	SeedGroups  []int  `toml:"seed_groups"`
	SeedFile    string `toml:"seed_file"`
	ColumnWidth int    `toml:"column_width"`
}

type ThemeConfig struct {
	Name string `toml:"name"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // board logs go here while the TUI owns the terminal
}

type KeyConfig struct {
	Grab         string `toml:"grab"`
	Edit         string `toml:"edit"`
	Delete       string `toml:"delete"`
	AddGroup     string `toml:"add_group"`
	AddGenerated string `toml:"add_generated"`
	NewItem      string `toml:"new_item"`
}

var (
	themeNames = []any{"classic", "neon", "mono"}
	logLevels  = []any{"debug", "info", "warn", "error"}

	// reservedKeys are bound to navigation, save, cancel, help and quit
	// and cannot be reassigned from [keys].
	reservedKeys = []any{"h", "j", "k", "l", "left", "right", "up", "down", "enter", "esc", "?", "q", "ctrl+c"}
)

func Default() Config {
	return Config{
		Board: BoardConfig{
			SeedGroups:  []int{10, 5},
			ColumnWidth: 28,
		},
		Theme:   ThemeConfig{Name: "classic"},
		Logging: LoggingConfig{Level: "info"},
		Keys: KeyConfig{
			Grab:         "space",
			Edit:         "e",
			Delete:       "d",
			AddGroup:     "g",
			AddGenerated: "N",
			NewItem:      "a",
		},
	}
}

// Load reads path over defaults. A blank path or missing file yields the
// defaults unchanged.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	cfg.Board.SeedGroups = append([]int(nil), defaults.Board.SeedGroups...)
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Theme.Name = strings.ToLower(strings.TrimSpace(c.Theme.Name))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Board.SeedFile = strings.TrimSpace(c.Board.SeedFile)

	dk := Default().Keys
	for _, k := range []struct {
		v        *string
		fallback string
	}{
		{&c.Keys.Grab, dk.Grab},
		{&c.Keys.Edit, dk.Edit},
		{&c.Keys.Delete, dk.Delete},
		{&c.Keys.AddGroup, dk.AddGroup},
		{&c.Keys.AddGenerated, dk.AddGenerated},
		{&c.Keys.NewItem, dk.NewItem},
	} {
		*k.v = keyName(*k.v, k.fallback)
	}
}

// keyName canonicalizes a configured key: blank falls back, a literal
// space is "space" and named keys are lowercased. Single runes keep their
// case so "N" stays distinct from "n".
func keyName(v, fallback string) string {
	if v == " " {
		return "space"
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	if utf8.RuneCountInString(v) > 1 {
		return strings.ToLower(v)
	}
	return v
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Board),
		validation.Field(&c.Theme),
		validation.Field(&c.Logging),
		validation.Field(&c.Keys),
	)
}

func (b BoardConfig) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ColumnWidth, validation.Required, validation.Min(12), validation.Max(80)),
		validation.Field(&b.SeedGroups, validation.Each(validation.Min(0), validation.Max(100))),
	)
}

func (t ThemeConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.In(themeNames...)),
	)
}

func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In(logLevels...)),
	)
}

func (k KeyConfig) Validate() error {
	rules := []validation.Rule{validation.Required, validation.NotIn(reservedKeys...), validation.By(k.unique)}
	return validation.ValidateStruct(&k,
		validation.Field(&k.Grab, rules...),
		validation.Field(&k.Edit, rules...),
		validation.Field(&k.Delete, rules...),
		validation.Field(&k.AddGroup, rules...),
		validation.Field(&k.AddGenerated, rules...),
		validation.Field(&k.NewItem, rules...),
	)
}

// unique rejects a key bound to more than one action.
func (k KeyConfig) unique(value any) error {
	v, _ := value.(string)
	n := 0
	for _, b := range []string{k.Grab, k.Edit, k.Delete, k.AddGroup, k.AddGenerated, k.NewItem} {
		if b == v {
			n++
		}
	}
	if n > 1 {
		return errors.New("bound to more than one action")
	}
	return nil
}
