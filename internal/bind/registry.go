// Package bind keeps track of the key bindings installed by bind libraries and
// whether each of them is enabled.
package bind

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/input"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/ui"
)

// ErrUnsupportedAction is the reason a bind library is not registered when its
// action is not supported or its combination cannot be used.
var ErrUnsupportedAction = errors.New("unsupported bind action")

// Entry is a registered bind library.
type Entry struct {
	Library string
	Combo   input.Combo
	Text    string
	Enabled bool

	handler action.Action
}

// Registry holds the bind entries by library name and installs their handlers
// into the dispatcher while they are enabled.
type Registry struct {
	entries    map[string]*Entry
	dispatcher *input.Dispatcher
	workspace  ui.Workspace

	log zerolog.Logger
}

// NewRegistry returns an empty registry that binds into the given dispatcher
// and inserts into the workspace's active document.
func NewRegistry(logger zerolog.Logger, dispatcher *input.Dispatcher, workspace ui.Workspace) *Registry {
	return &Registry{
		entries:    make(map[string]*Entry),
		dispatcher: dispatcher,
		workspace:  workspace,
		log:        logger,
	}
}

// Register registers and enables the bind library.
// Libraries whose action is not 'insert' or whose combination cannot be
// normalized are not registered; this is only logged.
// A library registered under the same name before is replaced.
// Returns whether the library was registered.
func (r *Registry) Register(lib library.BindLibrary) bool {
	entry, err := r.entryFor(lib)
	if err != nil {
		r.log.Debug().Str("library", lib.Name).Err(err).Msg("not registering bind")
		return false
	}

	if previous, ok := r.entries[lib.Name]; ok && previous.Enabled {
		r.dispatcher.Unbind(previous.Combo, previous.Library)
	}
	r.entries[lib.Name] = entry
	r.Enable(lib.Name)
	return true
}

func (r *Registry) entryFor(lib library.BindLibrary) (*Entry, error) {
	spec, err := lib.Spec()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAction, err.Error())
	}
	if spec.Action != library.ActionInsert {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedAction, spec.Action)
	}
	combo, err := input.ParseCombo(spec.Combo)
	if err != nil {
		return nil, fmt.Errorf("%w: combo '%s' (%s)", ErrUnsupportedAction, spec.Combo, err.Error())
	}

	text := spec.Text
	entry := &Entry{
		Library: lib.Name,
		Combo:   combo,
		Text:    text,
	}
	entry.handler = action.NewSimple(
		action.Explanation(fmt.Sprintf("insert %q (%s)", text, lib.Name)),
		func() {
			doc, ok := r.workspace.ActiveDocument()
			if !ok {
				return
			}
			doc.InsertAtCaret(text)
		},
	)
	return entry, nil
}

// Enable installs the library's handler.
// A library holding the same combination is displaced and marked disabled.
// Returns whether the state changed, i.e. false if the library is unknown or
// already enabled.
func (r *Registry) Enable(name string) bool {
	entry, ok := r.entries[name]
	if !ok || entry.Enabled {
		return false
	}
	if owner, bound := r.dispatcher.Owner(entry.Combo); bound && owner != name {
		if displaced, ok := r.entries[owner]; ok {
			displaced.Enabled = false
		}
		r.log.Debug().Str("library", name).Str("displaced", owner).Str("combo", entry.Combo.Identifier()).Msg("bind displaces another")
	}
	r.dispatcher.Bind(entry.Combo, entry.Library, entry.handler)
	entry.Enabled = true
	r.log.Debug().Str("library", name).Str("combo", entry.Combo.Identifier()).Msg("enabled bind")
	return true
}

// Disable removes the library's handler.
// Returns whether the state changed, i.e. false if the library is unknown or
// already disabled.
func (r *Registry) Disable(name string) bool {
	entry, ok := r.entries[name]
	if !ok || !entry.Enabled {
		return false
	}
	r.dispatcher.Unbind(entry.Combo, entry.Library)
	entry.Enabled = false
	r.log.Debug().Str("library", name).Str("combo", entry.Combo.Identifier()).Msg("disabled bind")
	return true
}

// IsEnabled returns whether the named library is registered and enabled.
func (r *Registry) IsEnabled(name string) bool {
	entry, ok := r.entries[name]
	return ok && entry.Enabled
}

// Get returns a copy of the named entry.
func (r *Registry) Get(name string) (Entry, bool) {
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Names returns the names of all registered libraries, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset disables and drops all entries.
func (r *Registry) Reset() {
	for name := range r.entries {
		r.Disable(name)
	}
	r.entries = make(map[string]*Entry)
}
