package ui

// Buffer is a Document held in memory.
type Buffer struct {
	Title string

	text  []rune
	caret int
}

// NewBuffer returns a buffer with the given content and the caret at its end.
func NewBuffer(title, content string) *Buffer {
	text := []rune(content)
	return &Buffer{Title: title, text: text, caret: len(text)}
}

// Caret returns the caret position as an offset in runes.
func (b *Buffer) Caret() int { return b.caret }

// SetCaret moves the caret, clamped to the text.
func (b *Buffer) SetCaret(pos int) {
	switch {
	case pos < 0:
		b.caret = 0
	case pos > len(b.text):
		b.caret = len(b.text)
	default:
		b.caret = pos
	}
}

// InsertAtCaret inserts the text at the caret, moving the caret behind it.
func (b *Buffer) InsertAtCaret(text string) {
	ins := []rune(text)
	result := make([]rune, 0, len(b.text)+len(ins))
	result = append(result, b.text[:b.caret]...)
	result = append(result, ins...)
	result = append(result, b.text[b.caret:]...)
	b.text = result
	b.caret += len(ins)
}

// InsertRune inserts a single rune at the caret.
func (b *Buffer) InsertRune(r rune) {
	b.InsertAtCaret(string(r))
}

// Backspace removes the rune before the caret, if any.
func (b *Buffer) Backspace() {
	if b.caret == 0 {
		return
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
}

// Text returns the full text of the buffer.
func (b *Buffer) Text() string { return string(b.text) }
