package config_test

import (
	"testing"

	"github.com/ja-he/flycreate/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Light, []byte{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.LibrariesDir != "libs" || c.Extension != ".lib" || c.DefaultTheme != "Светлая" {
			t.Error("defaults not kept:", c)
		}
		if len(c.PreferredVariants) != 3 || c.PreferredVariants[0] != "Светлая" {
			t.Error("unexpected preferred variants:", c.PreferredVariants)
		}
	})

	t.Run("dark default", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.DefaultTheme != "Тёмная" {
			t.Error("unexpected default theme:", c.DefaultTheme)
		}
	})

	t.Run("augmented", func(t *testing.T) {
		yamlData := []byte(`
libraries-dir: /opt/libs
default-theme: Ocean
preferred-variants: [Dark, Light]
editor:
  newline: Ctrl+J
`)
		c, err := config.ParseConfigAugmentDefaults(config.Light, yamlData)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.LibrariesDir != "/opt/libs" || c.DefaultTheme != "Ocean" {
			t.Error("values not overwritten:", c)
		}
		if c.Extension != ".lib" {
			t.Error("undefined value overwritten:", c.Extension)
		}
		if len(c.PreferredVariants) != 2 || c.PreferredVariants[0] != "Dark" {
			t.Error("unexpected preferred variants:", c.PreferredVariants)
		}
		if c.Editor.Newline != "Ctrl+J" || c.Editor.Backspace != "Backspace" {
			t.Error("unexpected editor keys:", c.Editor)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Light, []byte("libraries-dir: [unclosed"))
		if err == nil {
			t.Error("expected error for invalid yaml")
		}
		if c.LibrariesDir != "libs" {
			t.Error("defaults not returned on error:", c)
		}
	})
}
