package theme

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ja-he/flycreate/internal/library"
)

// DefaultPreferredVariants are the variant names tried, in order, when a
// theme library with several variants is applied as a whole.
var DefaultPreferredVariants = []string{BuiltinLightName, "Light", "Default"}

// VariantSeparator joins library and variant name for themes registered from
// a library with several variants.
const VariantSeparator = " - "

// Registry maps theme names to themes and tracks the active theme.
//
// Registering a name that exists replaces the previous theme.
type Registry struct {
	themes    map[string]Theme
	active    Theme
	preferred []string

	log zerolog.Logger
}

// NewRegistry returns a registry seeded with the built-in themes, the light
// one active.
// If preferredVariants is empty, DefaultPreferredVariants are used.
func NewRegistry(logger zerolog.Logger, preferredVariants []string) *Registry {
	if len(preferredVariants) == 0 {
		preferredVariants = DefaultPreferredVariants
	}
	r := &Registry{
		preferred: preferredVariants,
		log:       logger,
	}
	r.seed()
	r.active = r.themes[BuiltinLightName]
	return r
}

func (r *Registry) seed() {
	r.themes = make(map[string]Theme)
	for _, t := range Builtins() {
		r.themes[t.Name] = t
	}
}

// Reset drops all registered themes except the built-ins.
// The active theme stays as it is, even if it was not a built-in.
func (r *Registry) Reset() {
	r.seed()
}

// Register parses the payload and registers it under name.
func (r *Registry) Register(name string, payload json.RawMessage) error {
	t, err := Parse(name, payload)
	if err != nil {
		return err
	}
	r.themes[name] = t
	return nil
}

// Get returns the theme registered under name.
func (r *Registry) Get(name string) (Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
	}
	return t, nil
}

// ListNames returns the names of all registered themes, sorted.
func (r *Registry) ListNames() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply makes the named theme the active one.
// If there is no such theme, the active theme is left unchanged.
func (r *Registry) Apply(name string) (Theme, error) {
	t, err := r.Get(name)
	if err != nil {
		return Theme{}, err
	}
	r.active = t
	return t, nil
}

// Active returns the active theme.
func (r *Registry) Active() Theme {
	return r.active
}

// RegisterLibrary registers the themes a theme library provides.
//
// A flat payload is registered under the library name. Otherwise every
// object-valued entry of the payload is a variant, registered as
// "<library> - <variant>"; invalid variants are logged and skipped.
// Returns the names registered.
func (r *Registry) RegisterLibrary(lib library.ThemeLibrary) []string {
	obj, err := lib.Payload()
	if err != nil {
		r.log.Warn().Str("library", lib.Name).Err(err).Msg("theme payload is not an object, not registering")
		return nil
	}

	if IsFlat(obj) {
		if err := r.Register(lib.Name, lib.Code); err != nil {
			r.log.Warn().Str("library", lib.Name).Err(err).Msg("could not register theme")
			return nil
		}
		return []string{lib.Name}
	}

	registered := []string{}
	for _, variant := range obj.Keys {
		value := obj.Values[variant]
		if !library.IsObject(value) {
			r.log.Debug().Str("library", lib.Name).Str("variant", variant).Msg("skipping non-object theme variant")
			continue
		}
		name := lib.Name + VariantSeparator + variant
		if err := r.Register(name, value); err != nil {
			r.log.Warn().Str("library", lib.Name).Str("variant", variant).Err(err).Msg("could not register theme variant")
			continue
		}
		registered = append(registered, name)
	}
	return registered
}

// SelectVariant returns the payload of the variant to use when the library is
// applied as a whole: the first preferred variant present, otherwise the
// first variant in the file. Flat payloads, and variants that are not
// objects, select the whole payload.
func (r *Registry) SelectVariant(lib library.ThemeLibrary) (string, json.RawMessage, error) {
	obj, err := lib.Payload()
	if err != nil {
		return "", nil, fmt.Errorf("%w: '%s' (%s)", ErrInvalidTheme, lib.Name, err.Error())
	}
	if IsFlat(obj) || len(obj.Keys) == 0 {
		return "", lib.Code, nil
	}

	chosen := obj.Keys[0]
	for _, preferred := range r.preferred {
		if obj.Has(preferred) {
			chosen = preferred
			break
		}
	}
	if !library.IsObject(obj.Values[chosen]) {
		return "", lib.Code, nil
	}
	return chosen, obj.Values[chosen], nil
}

// ApplyFromLibrary selects one variant of the library (see SelectVariant),
// registers it under the plain library name and makes it active.
func (r *Registry) ApplyFromLibrary(lib library.ThemeLibrary) (Theme, error) {
	variant, payload, err := r.SelectVariant(lib)
	if err != nil {
		return Theme{}, err
	}
	if err := r.Register(lib.Name, payload); err != nil {
		return Theme{}, err
	}
	r.log.Debug().Str("library", lib.Name).Str("variant", variant).Msg("applying theme from library")
	return r.Apply(lib.Name)
}
