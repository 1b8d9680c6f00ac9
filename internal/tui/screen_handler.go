// Package tui renders documents to a terminal and feeds key events back.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/flycreate/internal/styling"
)

// ScreenHandler allows rendering to a terminal (via tcell.Screen).
// It also handles synchronization (e.g. on resize) when prompted accordingly.
type ScreenHandler struct {
	screen    tcell.Screen
	needsSync bool
}

// NewSimulationScreenHandler returns a ScreenHandler on an in-memory screen
// of the given size. Nothing is written to the terminal; key events can be
// injected and polled back.
func NewSimulationScreenHandler(w, h int) (*ScreenHandler, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreenHandler(screen)
	if err != nil {
		return nil, err
	}
	screen.SetSize(w, h)
	return s, nil
}

func newScreenHandler(screen tcell.Screen) (*ScreenHandler, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	screen.SetStyle(defStyle)
	screen.EnablePaste()
	screen.Clear()

	return &ScreenHandler{screen: screen}, nil
}

// InjectKey queues a key event, as if it had been typed.
func (s *ScreenHandler) InjectKey(ev *tcell.EventKey) error {
	if err := s.screen.PostEvent(ev); err != nil {
		return fmt.Errorf("could not queue key event (%w)", err)
	}
	return nil
}

// PollEvent waits for the next event.
// Returns nil once the screen is finalized.
func (s *ScreenHandler) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// NextKey waits for the next key event, dropping other events.
// A resize on the way marks the screen for synchronization on the next Show.
// Returns nil once the screen is finalized.
func (s *ScreenHandler) NextKey() *tcell.EventKey {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			s.NeedsSync()
		}
	}
}

// Fini finalizes the screen, e.g., for clean program shutdown.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// NeedsSync registers that a synchronization of the underlying screen is
// necessary.
// This is necessary on resize events.
func (s *ScreenHandler) NeedsSync() {
	s.needsSync = true
}

// Dimensions returns the current dimensions of the underlying screen.
func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

// ShowCursor sets the position of the text cursor.
func (s *ScreenHandler) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

// Clear clears the underlying screen.
// If this is not done before drawing new things, old contents that are not
// overwritten will remain visible on the next Show.
func (s *ScreenHandler) Clear() {
	s.screen.Clear()
}

// Show shows the drawn contents, taking the necessity for synchronization into
// account.
func (s *ScreenHandler) Show() {
	if s.needsSync {
		s.needsSync = false
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
}

// DrawText draws given text, within given dimensions in the given style.
func (s *ScreenHandler) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	if w <= 0 || h <= 0 {
		return
	}

	tcellStyle := style.AsTcell()

	col := x
	row := y
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, tcellStyle)
		col++
		if col >= x+w {
			row++
			col = x
		}
		if row >= y+h {
			return
		}
	}
}

// DrawBox draws a box of the given dimensions in the given style's background
// color. Note that this overwrites contents within the dimensions.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	tcellStyle := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, tcellStyle)
		}
	}
}

// DrawTabs draws the tab bar in a single row, the active tab highlighted.
func (s *ScreenHandler) DrawTabs(x, y, w int, stylesheet *styling.Stylesheet, titles []string, active int) {
	s.DrawBox(x, y, w, 1, stylesheet.Tab)
	col := x
	for i, title := range titles {
		label := " " + title + " "
		style := stylesheet.Tab
		if i == active {
			style = stylesheet.TabActive
		}
		n := len([]rune(label))
		if col+n > x+w {
			n = x + w - col
		}
		s.DrawText(col, y, n, 1, style, label)
		col += n
		if col >= x+w {
			return
		}
	}
}

// DrawDocument draws text with a line number gutter, placing the cursor at the
// given caret (rune offset). Lines longer than the width are cut off.
// Python tokens are drawn in the stylesheet's token styles.
func (s *ScreenHandler) DrawDocument(x, y, w, h int, stylesheet *styling.Stylesheet, text string, caret int) {
	if w <= 0 || h <= 0 {
		return
	}

	lines := strings.Split(text, "\n")
	gutter := len(strconv.Itoa(len(lines))) + 1
	if gutter >= w {
		gutter = 0
	}

	s.DrawBox(x, y, gutter, h, stylesheet.LineNumbers)
	s.DrawBox(x+gutter, y, w-gutter, h, stylesheet.Normal)

	classes := highlight(text)
	caretLine, caretCol := caretPosition(lines, caret)
	offset := 0
	for i, line := range lines {
		if i >= h {
			break
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d", gutter, i+1)
			s.DrawText(x, y+i, gutter, 1, stylesheet.LineNumbers, num)
		}
		runes := []rune(line)
		for col, r := range runes {
			if col >= w-gutter {
				break
			}
			style := stylesheet.Normal
			if class := classes[offset+col]; class != "" {
				style = stylesheet.Token(class)
			}
			s.screen.SetContent(x+gutter+col, y+i, r, nil, style.AsTcell())
		}
		offset += len(runes) + 1
	}

	if caretLine < h && caretCol < w-gutter {
		cx, cy := x+gutter+caretCol, y+caretLine
		mainc, _, _, _ := s.screen.GetContent(cx, cy)
		s.screen.SetContent(cx, cy, mainc, nil, stylesheet.Cursor.AsTcell())
		s.ShowCursor(cx, cy)
	}
}

func caretPosition(lines []string, caret int) (line, col int) {
	remaining := caret
	for i, l := range lines {
		n := len([]rune(l))
		if remaining <= n {
			return i, remaining
		}
		remaining -= n + 1
	}
	last := len(lines) - 1
	return last, len([]rune(lines[last]))
}

// Contents returns the drawn text, one line per row, trailing blanks trimmed.
func (s *ScreenHandler) Contents() string {
	w, h := s.screen.Size()
	rows := make([]string, 0, h)
	for row := 0; row < h; row++ {
		var b strings.Builder
		for col := 0; col < w; col++ {
			mainc, _, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			b.WriteRune(mainc)
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return strings.TrimRight(strings.Join(rows, "\n"), "\n")
}
