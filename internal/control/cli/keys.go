package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/flycreate/internal/config"
	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/input"
	"github.com/ja-he/flycreate/internal/input/processors"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/tui"
)

// KeysCommand types into a scratch document: every argument is a key
// combination, e.g. 'Ctrl+D', except arguments starting with '=', whose rest is
// typed as text.
// Bind libraries get the keys first, as in the editor.
type KeysCommand struct {
	Disable  []string `long:"disable" description:"disable the bind library with this name first (can be repeated)" value-name:"<name>"`
	Render   bool     `short:"r" long:"render" description:"show the document as rendered with the active theme"`
	Width    int      `long:"width" default:"60" description:"render width"`
	Height   int      `long:"height" default:"10" description:"render height"`
	Bindings bool     `long:"show-bindings" description:"list the active key bindings instead of typing"`

	Args struct {
		Keys []string `positional-arg-name:"<key>" description:"key combinations, or =text"`
	} `positional-args:"true"`
}

// Execute replays the keys and prints the document.
func (command *KeysCommand) Execute(args []string) error {
	s, err := newSession(&Opts)
	if err != nil {
		return err
	}
	for _, name := range command.Disable {
		if !s.engine.DisableBind(name) {
			log.Warn().Str("library", name).Msg("bind not disabled (unknown or already disabled)")
		}
	}

	buffer := s.workspace.openQuietly(library.UntitledTab, "")
	typist, err := newTypist(s.dispatcher, buffer, s.config.Editor, log.Logger)
	if err != nil {
		return err
	}
	defer typist.close()

	if command.Bindings {
		for _, line := range helpLines(typist.chain.GetHelp()) {
			fmt.Fprintln(stdout, line)
		}
		return nil
	}

	for _, arg := range command.Args.Keys {
		if text, ok := strings.CutPrefix(arg, "="); ok {
			err = typist.typeText(text)
		} else {
			err = typist.typeCombo(arg)
		}
		if err != nil {
			return err
		}
	}

	if command.Render {
		rendered, err := s.workspace.render(command.Width, command.Height)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rendered)
		return nil
	}
	fmt.Fprintln(stdout, buffer.Text())
	return nil
}

// typist feeds key events through a screen into the input processors of a
// document: the bind dispatcher first, then plain text input.
type typist struct {
	screen *tui.ScreenHandler
	chain  *processors.ChainInputProcessor
	log    zerolog.Logger
}

// document is what the typist edits beyond inserting text.
type document interface {
	InsertAtCaret(text string)
	InsertRune(r rune)
	Backspace()
}

func newTypist(dispatcher *input.Dispatcher, doc document, keys config.Editor, logger zerolog.Logger) (*typist, error) {
	text, err := processors.NewTextInputProcessor(
		map[string]action.Action{
			keys.Newline:   action.NewSimple(action.Explanation("insert newline"), func() { doc.InsertAtCaret("\n") }),
			keys.Backspace: action.NewSimple(action.Explanation("delete previous character"), doc.Backspace),
			keys.Tab:       action.NewSimple(action.Explanation("insert tab"), func() { doc.InsertAtCaret("\t") }),
		},
		doc.InsertRune,
	)
	if err != nil {
		return nil, fmt.Errorf("could not set up editor keys (%w)", err)
	}

	screen, err := tui.NewSimulationScreenHandler(80, 25)
	if err != nil {
		return nil, err
	}

	return &typist{
		screen: screen,
		chain:  processors.NewChainInputProcessor(dispatcher, text),
		log:    logger,
	}, nil
}

func (t *typist) close() {
	t.screen.Fini()
}

// typeCombo presses the key combination.
func (t *typist) typeCombo(spec string) error {
	combo, err := input.ParseCombo(spec)
	if err != nil {
		return fmt.Errorf("could not parse key '%s' (%w)", spec, err)
	}
	ev, err := combo.Event()
	if err != nil {
		return err
	}
	return t.press(ev)
}

// typeText presses a key for every character of the text; newlines press
// Enter.
func (t *typist) typeText(text string) error {
	for _, r := range text {
		var ev *tcell.EventKey
		switch r {
		case '\n':
			ev = tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
		case '\t':
			ev = tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
		default:
			ev = tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		}
		if err := t.press(ev); err != nil {
			return err
		}
	}
	return nil
}

// press sends the key event through the screen and processes what comes out.
// Keys no processor applies are only logged.
func (t *typist) press(ev *tcell.EventKey) error {
	if err := t.screen.InjectKey(ev); err != nil {
		return err
	}
	polled := t.screen.NextKey()
	if polled == nil {
		return fmt.Errorf("screen finalized while typing")
	}
	key := input.KeyFromTcellEvent(polled)
	if !t.chain.ProcessInput(key) {
		t.log.Warn().Str("key", key.ToDebugString()).Msg("key not handled")
	}
	return nil
}

func helpLines(help input.Help) []string {
	ids := make([]string, 0, len(help))
	for id := range help {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("%-24s %s", id, help[id]))
	}
	return lines
}
