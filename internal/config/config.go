package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${FLYCREATE_HOME}/config.yaml'.
type Config struct {
	// LibrariesDir is the library store directory; relative paths are relative
	// to FLYCREATE_HOME.
	LibrariesDir string `yaml:"libraries-dir"`
	// Extension is the extension of library files.
	Extension string `yaml:"extension"`
	// DefaultTheme is the theme active on startup.
	DefaultTheme string `yaml:"default-theme"`
	// PreferredVariants are the variant names tried, in order, when a theme
	// library is applied as a whole.
	PreferredVariants []string `yaml:"preferred-variants"`
	// Editor configures the document editing keys.
	Editor Editor `yaml:"editor"`
}

// Editor holds the key combinations of the basic document editing actions.
type Editor struct {
	Newline   string `yaml:"newline"`
	Backspace string `yaml:"backspace"`
	Tab       string `yaml:"tab"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultScheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultScheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	overwriteIfDefined(&result.LibrariesDir, augment.LibrariesDir)
	overwriteIfDefined(&result.Extension, augment.Extension)
	overwriteIfDefined(&result.DefaultTheme, augment.DefaultTheme)
	if len(augment.PreferredVariants) > 0 {
		result.PreferredVariants = augment.PreferredVariants
	}
	result.Editor = base.Editor.augmentWith(augment.Editor)

	return result
}

func (base Editor) augmentWith(augment Editor) Editor {
	result := base

	overwriteIfDefined(&result.Newline, augment.Newline)
	overwriteIfDefined(&result.Backspace, augment.Backspace)
	overwriteIfDefined(&result.Tab, augment.Tab)

	return result
}

func overwriteIfDefined(s *string, augment string) {
	if augment != "" {
		*s = augment
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
