package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/flycreate/internal/potatolog"
)

// ListCommand lists the loaded libraries.
type ListCommand struct {
	Skipped bool `short:"s" long:"skipped" description:"also list the files that could not be loaded"`
}

// Execute lists the libraries in load order; a name shadowed by a later file
// is marked.
func (command *ListCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}

	libs := s.engine.Libraries()
	fmt.Fprintf(stdout, "%d libraries in %s\n", len(libs), s.engine.Location())
	for _, lib := range libs {
		rec := lib.Base()
		line := fmt.Sprintf("%-24s %-16s %s", rec.Name, kindOf(lib), rec.Creator)
		if current, err := s.engine.Library(rec.Name); err == nil && current.Base() != rec {
			line += " (shadowed)"
		}
		fmt.Fprintln(stdout, strings.TrimRight(line, " "))
	}

	if command.Skipped {
		skipped := s.engine.Skipped()
		fmt.Fprintf(stdout, "%d files skipped\n", len(skipped))
		for _, file := range skipped {
			fmt.Fprintf(stdout, "  %s: %s\n", file.Path, file.Err.Error())
		}
	}
	return nil
}

// InfoCommand shows the info of a single library.
type InfoCommand struct {
	Args struct {
		Name string `positional-arg-name:"<name>" description:"the library name"`
	} `positional-args:"true" required:"true"`
}

// Execute prints the name, creator, type and file of the library.
func (command *InfoCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	info, err := s.engine.Info(command.Args.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, info)
	return nil
}

// RawCommand shows a library file.
type RawCommand struct {
	Args struct {
		Name string `positional-arg-name:"<name>" description:"the library name"`
	} `positional-args:"true" required:"true"`
}

// Execute prints the library's file as stored.
func (command *RawCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	raw, err := s.engine.RawFile(command.Args.Name)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, raw)
	if !strings.HasSuffix(raw, "\n") {
		fmt.Fprintln(stdout)
	}
	return nil
}

// InstallCommand copies library files into the library directory.
type InstallCommand struct {
	Args struct {
		Files []string `positional-arg-name:"<file>" description:"library files to install"`
	} `positional-args:"true" required:"true"`
}

// Execute installs each file; it stops at the first file that fails.
func (command *InstallCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	for _, path := range command.Args.Files {
		dst, err := s.engine.InstallFromFile(path)
		if err != nil {
			return fmt.Errorf("could not install '%s' (%w)", path, err)
		}
		fmt.Fprintf(stdout, "%s -> %s\n", path, dst)
	}
	return nil
}

// TabsCommand shows or opens the tabs of a tabs library.
type TabsCommand struct {
	Open string `short:"o" long:"open" description:"open (print) only the tab with this title" value-name:"<title>"`
	All  bool   `short:"a" long:"all" description:"open (print) all tabs"`

	Args struct {
		Name string `positional-arg-name:"<name>" description:"the library name"`
	} `positional-args:"true" required:"true"`
}

// Execute lists the tab titles, or opens tabs if asked to.
func (command *TabsCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	tabs, err := s.engine.TabsOf(command.Args.Name)
	if err != nil {
		return err
	}

	if command.Open == "" && !command.All {
		for _, tab := range tabs {
			fmt.Fprintln(stdout, tab.Title)
		}
		return nil
	}

	opened := 0
	for _, tab := range tabs {
		if command.All || tab.Title == command.Open {
			if err := s.engine.OpenTabContent(tab.Title, tab.Content); err != nil {
				return err
			}
			opened++
		}
	}
	if opened == 0 {
		return fmt.Errorf("library '%s' has no tab '%s'", command.Args.Name, command.Open)
	}
	return nil
}

// MenuCommand shows the libraries menu or runs one of its items.
type MenuCommand struct {
	Args struct {
		Library string `positional-arg-name:"<library>" description:"the library whose item to run"`
		Item    string `positional-arg-name:"<item>" description:"the item label (or a unique prefix of it)"`
	} `positional-args:"true"`
}

// Execute prints the menu if no item is given; otherwise it runs the item.
func (command *MenuCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	if command.Args.Library == "" {
		s.menu.print(stdout)
		return nil
	}
	if command.Args.Item == "" {
		return fmt.Errorf("no item given for library '%s'", command.Args.Library)
	}
	return s.menu.run(command.Args.Library, command.Args.Item)
}

// LogCommand shows the log entries of loading the libraries.
type LogCommand struct {
	Level string `long:"level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"only show entries of this level"`
}

// Execute prints the in-memory log collected while setting up.
func (command *LogCommand) Execute(args []string) error {
	if _, err := newSession(&Opts); err != nil {
		return err
	}

	var entries []potatolog.LogEntry
	if command.Level == "" {
		entries = potatolog.GlobalMemoryLogReaderWriter.Get()
	} else {
		entries = potatolog.GlobalMemoryLogReaderWriter.WithLevel(command.Level)
	}
	for _, entry := range entries {
		fmt.Fprintln(stdout, formatLogEntry(entry))
	}
	return nil
}

func formatLogEntry(entry potatolog.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-5v %v", entry["level"], entry["message"])

	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case "level", "message", "time":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry[k])
	}
	return b.String()
}
