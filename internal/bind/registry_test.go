package bind_test

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/flycreate/internal/bind"
	"github.com/ja-he/flycreate/internal/input"
	"github.com/ja-he/flycreate/internal/input/processors"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/theme"
	"github.com/ja-he/flycreate/internal/ui"
)

type workspace struct {
	active *ui.Buffer
}

func (w *workspace) ActiveDocument() (ui.Document, bool) {
	if w.active == nil {
		return nil, false
	}
	return w.active, true
}
func (w *workspace) OpenTab(title, content string) error { return nil }
func (w *workspace) ApplyTheme(theme.Theme)              {}

func bindLib(name, code string) library.BindLibrary {
	return library.BindLibrary{Record: &library.Record{
		Kind:         library.KindBind,
		Name:         name,
		Creator:      "x",
		DeclaredKind: "bind",
		Code:         json.RawMessage(code),
	}}
}

var ctrlD = input.Key{Key: tcell.KeyCtrlD, Mod: tcell.ModCtrl}

func setup() (*bind.Registry, *input.Dispatcher, *workspace) {
	ws := &workspace{active: ui.NewBuffer("doc", "")}
	d := input.NewDispatcher()
	return bind.NewRegistry(zerolog.Nop(), d, ws), d, ws
}

func TestQuickDate(t *testing.T) {
	r, d, ws := setup()

	require.True(t, r.Register(bindLib("QuickDate", `{"combo":"Ctrl+D","action":"insert","text":"2024-01-01"}`)))
	assert.True(t, r.IsEnabled("QuickDate"))

	typed := []rune{}
	text, err := processors.NewTextInputProcessor(nil, func(r rune) { typed = append(typed, r) })
	require.NoError(t, err)
	chain := processors.NewChainInputProcessor(d, text)

	ws.active.InsertAtCaret("today: ")
	assert.True(t, chain.ProcessInput(ctrlD))
	assert.Equal(t, "today: 2024-01-01", ws.active.Text())
	assert.Empty(t, typed, "key press reached document handling")
}

func TestRegisterRejects(t *testing.T) {
	r, d, _ := setup()

	for name, code := range map[string]string{
		"wrong action":   `{"combo":"Ctrl+D","action":"delete","text":"x"}`,
		"no action":      `{"combo":"Ctrl+D","text":"x"}`,
		"empty combo":    `{"combo":"","action":"insert","text":"x"}`,
		"only modifiers": `{"combo":"Ctrl+Shift","action":"insert","text":"x"}`,
		"two keys":       `{"combo":"Ctrl+a+b","action":"insert","text":"x"}`,
		"not an object":  `"Ctrl+D"`,
	} {
		assert.False(t, r.Register(bindLib(name, code)), name)
		assert.False(t, r.IsEnabled(name), name)
	}
	assert.Empty(t, r.Names())
	assert.Equal(t, 0, d.Len())
}

func TestEnableDisable(t *testing.T) {
	r, d, ws := setup()
	require.True(t, r.Register(bindLib("QuickDate", `{"combo":"Ctrl+D","action":"insert","text":"2024-01-01"}`)))

	assert.False(t, r.Enable("QuickDate"), "enabling an enabled bind changed state")
	assert.Equal(t, 1, d.Len())

	d.ProcessInput(ctrlD)
	assert.Equal(t, "2024-01-01", ws.active.Text(), "handler installed more than once")

	assert.True(t, r.Disable("QuickDate"))
	assert.False(t, r.Disable("QuickDate"))
	assert.False(t, r.IsEnabled("QuickDate"))
	assert.False(t, d.ProcessInput(ctrlD))
	assert.Equal(t, "2024-01-01", ws.active.Text())

	assert.True(t, r.Enable("QuickDate"))
	assert.True(t, d.ProcessInput(ctrlD))
	assert.Equal(t, "2024-01-012024-01-01", ws.active.Text())

	assert.False(t, r.Enable("Unknown"))
	assert.False(t, r.Disable("Unknown"))
}

func TestNoActiveDocument(t *testing.T) {
	r, d, ws := setup()
	ws.active = nil
	require.True(t, r.Register(bindLib("QuickDate", `{"combo":"Ctrl+D","action":"insert","text":"2024-01-01"}`)))

	assert.True(t, d.ProcessInput(ctrlD), "key press should be consumed without document")
}

func TestReregisterAndReset(t *testing.T) {
	r, d, ws := setup()
	require.True(t, r.Register(bindLib("Sig", `{"combo":"Ctrl+D","action":"insert","text":"old"}`)))
	require.True(t, r.Register(bindLib("Sig", `{"combo":"Alt+s","action":"insert","text":"new"}`)))

	assert.Equal(t, []string{"Sig"}, r.Names())
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.ProcessInput(ctrlD), "replaced combination still bound")

	entry, ok := r.Get("Sig")
	require.True(t, ok)
	assert.Equal(t, "<Alt-s>", entry.Combo.Identifier())
	assert.Equal(t, "new", entry.Text)

	d.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 's', Mod: tcell.ModAlt})
	assert.Equal(t, "new", ws.active.Text())

	r.Reset()
	assert.Empty(t, r.Names())
	assert.Equal(t, 0, d.Len())
}

func TestSharedCombination(t *testing.T) {
	r, d, ws := setup()
	require.True(t, r.Register(bindLib("First", `{"combo":"Ctrl+D","action":"insert","text":"first"}`)))
	require.True(t, r.Register(bindLib("Second", `{"combo":"control+d","action":"insert","text":"second"}`)))

	assert.False(t, r.IsEnabled("First"), "displaced bind still reported enabled")
	assert.True(t, r.IsEnabled("Second"))
	assert.Equal(t, 1, d.Len())

	d.ProcessInput(ctrlD)
	assert.Equal(t, "second", ws.active.Text())

	assert.True(t, r.Enable("First"))
	assert.False(t, r.IsEnabled("Second"))
	d.ProcessInput(ctrlD)
	assert.Equal(t, "secondfirst", ws.active.Text())

	assert.False(t, r.Disable("Second"), "displaced bind disabled twice")
	owner, ok := d.Owner(mustCombo(t, "Ctrl+D"))
	assert.True(t, ok)
	assert.Equal(t, "First", owner)
}

func TestEnterAndTabCombinations(t *testing.T) {
	for _, combo := range []string{"Ctrl+Enter", "Ctrl+Tab", "Alt+Enter", "Ctrl+Shift+Enter"} {
		t.Run(combo, func(t *testing.T) {
			r, d, ws := setup()
			require.True(t, r.Register(bindLib("Snippet", `{"combo":"`+combo+`","action":"insert","text":"x"}`)))

			ev, err := mustCombo(t, combo).Event()
			require.NoError(t, err)
			assert.True(t, d.ProcessInput(input.KeyFromTcellEvent(ev)), "bound combination not consumed")
			assert.Equal(t, "x", ws.active.Text())
		})
	}

	r, d, ws := setup()
	require.True(t, r.Register(bindLib("Snippet", `{"combo":"Ctrl+Enter","action":"insert","text":"x"}`)))
	assert.False(t, d.ProcessInput(input.Key{Key: tcell.KeyEnter}), "plain Enter triggered Ctrl+Enter")
	assert.True(t, d.ProcessInput(input.Key{Key: tcell.KeyEnter, Mod: tcell.ModCtrl}))
	assert.Equal(t, "x", ws.active.Text())
}

func mustCombo(t *testing.T, s string) input.Combo {
	c, err := input.ParseCombo(s)
	require.NoError(t, err)
	return c
}
