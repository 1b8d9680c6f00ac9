package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/styling"
	"github.com/ja-he/flycreate/internal/theme"
	"github.com/ja-he/flycreate/internal/tui"
	"github.com/ja-he/flycreate/internal/ui"
)

// Where command output goes; replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// consoleWorkspace is the workspace of a command line session: documents are
// held in memory and only rendered on request.
type consoleWorkspace struct {
	out    io.Writer
	tabs   []*ui.Buffer
	active int

	theme      theme.Theme
	stylesheet *styling.Stylesheet

	log zerolog.Logger
}

func newConsoleWorkspace(out io.Writer, initial theme.Theme, logger zerolog.Logger) *consoleWorkspace {
	return &consoleWorkspace{
		out:        out,
		theme:      initial,
		stylesheet: styling.NewStylesheetFromTheme(initial),
		log:        logger,
	}
}

func (w *consoleWorkspace) ActiveDocument() (ui.Document, bool) {
	b, ok := w.activeBuffer()
	if !ok {
		return nil, false
	}
	return b, true
}

func (w *consoleWorkspace) activeBuffer() (*ui.Buffer, bool) {
	if len(w.tabs) == 0 {
		return nil, false
	}
	return w.tabs[w.active], true
}

// OpenTab opens the document and prints it.
func (w *consoleWorkspace) OpenTab(title, content string) error {
	w.openQuietly(title, content)
	fmt.Fprintf(w.out, "--- %s ---\n%s\n", title, content)
	return nil
}

func (w *consoleWorkspace) openQuietly(title, content string) *ui.Buffer {
	b := ui.NewBuffer(title, content)
	w.tabs = append(w.tabs, b)
	w.active = len(w.tabs) - 1
	return b
}

func (w *consoleWorkspace) ApplyTheme(t theme.Theme) {
	w.theme = t
	w.stylesheet = styling.NewStylesheetFromTheme(t)
	w.log.Debug().Str("theme", t.Name).Msg("theme applied to workspace")
}

// render draws the tab bar and the active document to an in-memory screen of
// the given size and returns what is visible.
func (w *consoleWorkspace) render(width, height int) (string, error) {
	screen, err := tui.NewSimulationScreenHandler(width, height)
	if err != nil {
		return "", err
	}
	defer screen.Fini()
	screen.Clear()
	_, _, width, height = screen.Dimensions()

	titles := make([]string, 0, len(w.tabs))
	for _, b := range w.tabs {
		titles = append(titles, b.Title)
	}
	screen.DrawTabs(0, 0, width, w.stylesheet, titles, w.active)
	if b, ok := w.activeBuffer(); ok {
		screen.DrawDocument(0, 1, width, height-1, w.stylesheet, b.Text(), b.Caret())
	}
	screen.Show()
	return screen.Contents(), nil
}

// consoleNotifier prints notifications, warnings and errors to stderr.
type consoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *consoleNotifier) Info(title, msg string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, msg)
}

func (n *consoleNotifier) Warn(title, msg string) {
	fmt.Fprintf(n.errOut, "warning: %s: %s\n", title, msg)
}

func (n *consoleNotifier) Error(title, msg string) {
	fmt.Fprintf(n.errOut, "error: %s: %s\n", title, msg)
}

// consoleMenu keeps the libraries menu so it can be listed and its items run.
type consoleMenu struct {
	entries []ui.MenuEntry
}

func (m *consoleMenu) Rebuild(entries []ui.MenuEntry) {
	m.entries = entries
}

func (m *consoleMenu) print(out io.Writer) {
	if len(m.entries) == 0 {
		fmt.Fprintln(out, "(no libraries)")
		return
	}
	for _, entry := range m.entries {
		fmt.Fprintf(out, "%s [%s]\n", entry.Library, entry.Kind)
		for _, item := range entry.Items {
			fmt.Fprintf(out, "  - %s\n", item.Label)
		}
	}
}

// run performs the item with the given label in the named library's submenu.
// Labels are matched case-insensitively, and by prefix if that is unique.
func (m *consoleMenu) run(libraryName, label string) error {
	for _, entry := range m.entries {
		if entry.Library != libraryName {
			continue
		}
		item, err := findItem(entry, label)
		if err != nil {
			return err
		}
		item.Action.Do()
		return nil
	}
	return fmt.Errorf("no menu entry for library '%s'", libraryName)
}

func findItem(entry ui.MenuEntry, label string) (ui.MenuItem, error) {
	if item, ok := entry.Item(label); ok {
		return item, nil
	}
	var candidates []ui.MenuItem
	for _, item := range entry.Items {
		if strings.HasPrefix(strings.ToLower(item.Label), strings.ToLower(label)) {
			candidates = append(candidates, item)
		}
	}
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return ui.MenuItem{}, fmt.Errorf("no item '%s' for library '%s'", label, entry.Library)
	default:
		return ui.MenuItem{}, fmt.Errorf("item '%s' is ambiguous for library '%s'", label, entry.Library)
	}
}

func kindOf(lib library.Library) string {
	switch lib.(type) {
	case library.UnknownLibrary:
		return fmt.Sprintf("%s (inactive)", lib.Base().Kind)
	default:
		return string(lib.Base().Kind)
	}
}
