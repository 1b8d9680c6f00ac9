// Package cli provides the command-line interface for flycreate.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LibrariesDir  string `short:"d" long:"libraries-dir" description:"Specify the library directory (overrides config.yaml)" value-name:"<dir>"`
	Verbose       bool   `long:"verbose" description:"Log debug output to stderr"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (in addition to stderr)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	ListCommand    ListCommand    `command:"list" description:"List the loaded libraries"`
	InfoCommand    InfoCommand    `command:"info" description:"Show information about a library"`
	RawCommand     RawCommand     `command:"raw" description:"Show the file of a library as stored"`
	InstallCommand InstallCommand `command:"install" description:"Install a library file into the library directory"`
	ImportCommand  ImportCommand  `command:"import" description:"Recover a library from loosely formatted text"`
	CreateCommand  CreateCommand  `command:"create" description:"Create a library from field values"`
	ThemesCommand  ThemesCommand  `command:"themes" description:"List, inspect and apply themes"`
	TabsCommand    TabsCommand    `command:"tabs" description:"Show the tabs of a tabs library"`
	KeysCommand    KeysCommand    `command:"keys" description:"Type key combinations into a scratch document"`
	MenuCommand    MenuCommand    `command:"menu" description:"Show the libraries menu or run one of its items"`
	LogCommand     LogCommand     `command:"log" description:"Show the log of loading the libraries"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
