// Package control ties the library store and the registries together and
// exposes the library operations to the user interface.
package control

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ja-he/flycreate/internal/bind"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/storage"
	"github.com/ja-he/flycreate/internal/theme"
	"github.com/ja-he/flycreate/internal/ui"
)

var (
	// ErrLibraryNotFound is returned for operations on a library name that is
	// not loaded.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrWrongKind is returned for operations on a library of a kind the
	// operation does not apply to.
	ErrWrongKind = errors.New("library has wrong kind")
)

// Options configure an Engine.
type Options struct {
	// Extension is the library file extension, used for suggested file names.
	Extension string
}

// Engine loads the libraries from the store, dispatches them to the
// registries by kind, and offers the user-facing library operations.
//
// Every operation that changes the store ends with a Reload.
type Engine struct {
	store     storage.LibraryProvider
	themes    *theme.Registry
	binds     *bind.Registry
	workspace ui.Workspace
	notifier  ui.Notifier
	menu      ui.Menu

	opts Options
	log  zerolog.Logger

	libraries []library.Library
	byName    map[string]library.Library
	skipped   []storage.SkippedFile
}

// NewEngine constructs an engine. Nothing is loaded until Reload is called.
func NewEngine(
	store storage.LibraryProvider,
	themes *theme.Registry,
	binds *bind.Registry,
	workspace ui.Workspace,
	notifier ui.Notifier,
	menu ui.Menu,
	opts Options,
	logger zerolog.Logger,
) *Engine {
	return &Engine{
		store:     store,
		themes:    themes,
		binds:     binds,
		workspace: workspace,
		notifier:  notifier,
		menu:      menu,
		opts:      opts,
		log:       logger,
		byName:    make(map[string]library.Library),
	}
}

// Reload rebuilds all state from the store.
//
// The registries are reset, so binds come back enabled and theme variants are
// registered anew; the active theme is left as it is. Files that cannot be
// loaded are skipped, see Skipped.
func (e *Engine) Reload() error {
	records, skipped, err := e.store.LoadAll()
	if err != nil {
		e.notifier.Error("Could not load libraries", err.Error())
		return fmt.Errorf("could not load libraries (%w)", err)
	}
	e.skipped = skipped

	e.themes.Reset()
	e.binds.Reset()
	e.libraries = make([]library.Library, 0, len(records))
	e.byName = make(map[string]library.Library)

	for _, rec := range records {
		lib := library.Classify(rec)
		switch l := lib.(type) {
		case library.ThemeLibrary:
			e.themes.RegisterLibrary(l)
		case library.BindLibrary:
			e.binds.Register(l)
		case library.TabsLibrary:
			// tabs are opened on request only
		case library.UnknownLibrary:
			e.log.Debug().Str("library", rec.Name).Str("kind", string(rec.Kind)).Msg("library of unknown kind is not activated")
		}
		e.libraries = append(e.libraries, lib)
		e.byName[rec.Name] = lib
	}

	e.menu.Rebuild(e.menuEntries())
	e.log.Info().Int("libraries", len(e.libraries)).Int("skipped", len(skipped)).Msg("reloaded libraries")
	return nil
}

// Libraries returns the loaded libraries in load order.
func (e *Engine) Libraries() []library.Library {
	return e.libraries
}

// Skipped returns the files skipped by the last reload.
func (e *Engine) Skipped() []storage.SkippedFile {
	return e.skipped
}

// Location returns where the store keeps its libraries.
func (e *Engine) Location() string {
	return e.store.Location()
}

// Library returns the library loaded last under the given name.
func (e *Engine) Library(name string) (library.Library, error) {
	lib, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrLibraryNotFound, name)
	}
	return lib, nil
}

// Info returns a description of the named library.
func (e *Engine) Info(name string) (string, error) {
	lib, err := e.Library(name)
	if err != nil {
		return "", err
	}
	return libraryInfo(lib.Base()), nil
}

func libraryInfo(rec *library.Record) string {
	return fmt.Sprintf("Name: %s\nCreator: %s\nType: %s\nFile: %s", rec.Name, rec.Creator, rec.Kind, rec.SourcePath)
}

// ApplyTheme activates the named theme and sets it on the workspace.
// An unknown name is reported to the user and leaves the active theme as is.
func (e *Engine) ApplyTheme(name string) error {
	t, err := e.themes.Apply(name)
	if err != nil {
		if errors.Is(err, theme.ErrThemeNotFound) {
			e.notifier.Warn("Theme not found", fmt.Sprintf("Theme '%s' is not registered.", name))
		}
		return err
	}
	e.workspace.ApplyTheme(t)
	return nil
}

// ApplyThemeFromLibrary activates the preferred variant of the named theme
// library under the library's name and sets it on the workspace.
func (e *Engine) ApplyThemeFromLibrary(name string) error {
	lib, err := e.Library(name)
	if err != nil {
		return err
	}
	themeLib, ok := lib.(library.ThemeLibrary)
	if !ok {
		return fmt.Errorf("%w: '%s' is a '%s' library", ErrWrongKind, name, lib.Base().Kind)
	}
	return e.applyThemeLibrary(themeLib)
}

func (e *Engine) applyThemeLibrary(themeLib library.ThemeLibrary) error {
	t, err := e.themes.ApplyFromLibrary(themeLib)
	if err != nil {
		e.notifier.Error("Could not apply theme", err.Error())
		return err
	}
	e.workspace.ApplyTheme(t)
	return nil
}

// ActiveTheme returns the active theme.
func (e *Engine) ActiveTheme() theme.Theme {
	return e.themes.Active()
}

// ThemeNames returns the names of all registered themes.
func (e *Engine) ThemeNames() []string {
	return e.themes.ListNames()
}

// EnableBind enables the named bind library.
// The user is notified if this changed anything.
func (e *Engine) EnableBind(name string) bool {
	if !e.binds.Enable(name) {
		return false
	}
	entry, _ := e.binds.Get(name)
	e.notifier.Info("Bind enabled", fmt.Sprintf("Bind from '%s' enabled (combination %s).", name, entry.Combo.Identifier()))
	return true
}

// DisableBind disables the named bind library.
// The user is notified if this changed anything.
func (e *Engine) DisableBind(name string) bool {
	if !e.binds.Disable(name) {
		return false
	}
	e.notifier.Info("Bind disabled", fmt.Sprintf("Bind from '%s' disabled.", name))
	return true
}

// BindNames returns the names of all registered bind libraries.
func (e *Engine) BindNames() []string {
	return e.binds.Names()
}

// Bind returns the bind entry of the named library.
func (e *Engine) Bind(name string) (bind.Entry, bool) {
	return e.binds.Get(name)
}

// TabsOf returns the tabs of the named tabs library.
func (e *Engine) TabsOf(name string) ([]library.Tab, error) {
	lib, err := e.Library(name)
	if err != nil {
		return nil, err
	}
	tabsLib, ok := lib.(library.TabsLibrary)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is a '%s' library", ErrWrongKind, name, lib.Base().Kind)
	}
	return tabsLib.Tabs(), nil
}

// OpenTabContent opens a new document with the given content.
func (e *Engine) OpenTabContent(title, content string) error {
	if err := e.workspace.OpenTab(title, content); err != nil {
		e.notifier.Error("Could not open tab", err.Error())
		return err
	}
	return nil
}

// RawFile returns the file content of the named library as it is stored.
func (e *Engine) RawFile(name string) (string, error) {
	lib, err := e.Library(name)
	if err != nil {
		return "", err
	}
	return e.rawFile(lib.Base())
}

func (e *Engine) rawFile(rec *library.Record) (string, error) {
	data, err := e.store.ReadRaw(rec.SourcePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// InstallFromFile installs the library file at path into the store.
func (e *Engine) InstallFromFile(path string) (string, error) {
	dst, err := e.store.Install(path)
	if err != nil {
		if errors.Is(err, library.ErrSchemaRejected) {
			e.notifier.Error("Error", fmt.Sprintf("File does not have the library format (required fields: %v).", library.RequiredFields))
		} else {
			e.notifier.Error("Error", fmt.Sprintf("Could not install library: %s", err.Error()))
		}
		return "", err
	}
	if err := e.Reload(); err != nil {
		return dst, err
	}
	e.notifier.Info("Installed", "Library installed.")
	return dst, nil
}
