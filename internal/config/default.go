package config

// Default returns the default configuration for the given colorscheme type
// (light or dark), which decides the startup theme.
func Default(colorschemeType ColorschemeType) Config {
	defaultTheme := "Светлая"
	if colorschemeType == Dark {
		defaultTheme = "Тёмная"
	}
	return Config{
		LibrariesDir:      "libs",
		Extension:         ".lib",
		DefaultTheme:      defaultTheme,
		PreferredVariants: []string{"Светлая", "Light", "Default"},
		Editor: Editor{
			Newline:   "Enter",
			Backspace: "Backspace",
			Tab:       "Tab",
		},
	}
}
