package cli

import (
	"fmt"

	"github.com/ja-he/flycreate/internal/theme"
)

// ThemesCommand lists themes and applies them.
// Applying only lasts for the command; combine it with --show to inspect the
// result.
type ThemesCommand struct {
	Apply   string `short:"a" long:"apply" description:"apply the registered theme with this name" value-name:"<theme>"`
	Library string `short:"L" long:"library" description:"apply the theme library with this name (preferred variant)" value-name:"<library>"`
	Show    bool   `short:"s" long:"show" description:"show the colors of the active theme"`
}

// Execute lists the registered themes unless asked to apply or show one.
func (command *ThemesCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}

	switch {
	case command.Library != "":
		if err := s.engine.ApplyThemeFromLibrary(command.Library); err != nil {
			return err
		}
	case command.Apply != "":
		if err := s.engine.ApplyTheme(command.Apply); err != nil {
			return err
		}
	case !command.Show:
		active := s.engine.ActiveTheme().Name
		for _, name := range s.engine.ThemeNames() {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(stdout, "%s %s\n", marker, name)
		}
		return nil
	}

	t := s.engine.ActiveTheme()
	fmt.Fprintf(stdout, "Active theme: %s\n", t.Name)
	if command.Show {
		printTheme(t)
	}
	return nil
}

func printTheme(t theme.Theme) {
	rows := []struct {
		key   string
		value string
	}{
		{theme.KeyBackground, t.Background.Hex()},
		{theme.KeyForeground, t.Foreground.Hex()},
		{theme.KeyCursor, t.Cursor.Hex()},
		{theme.KeySelectBackground, t.SelectBackground.Hex()},
		{theme.KeySelectForeground, t.SelectForeground.Hex()},
		{theme.KeyTabBackground, t.TabBackground.Hex()},
		{theme.KeyLineNumberBackground, t.LineNumberBackground.Hex()},
	}
	for _, row := range rows {
		fmt.Fprintf(stdout, "  %-18s %s\n", row.key, row.value)
	}
	for _, class := range theme.TokenClasses {
		fmt.Fprintf(stdout, "  %-18s %s\n", theme.KeyTags+"."+string(class), t.Tag(class).Hex())
	}
}
