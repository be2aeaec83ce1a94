// Package textbuf provides an in-memory text buffer with a cursor and
// a selection anchor. It is the reference implementation of the
// vim.Surface boundary, used by the demo host and the interpreter
// tests. The interpreter itself never owns text storage.
package textbuf

import (
	"strings"

	"github.com/dshills/modalkit/internal/input/vim"
)

// Buffer is a rune-addressed text buffer. Offsets are rune offsets;
// the cursor may sit at len (past the final rune). All clamping
// happens here so the interpreter can treat out-of-range requests as
// zero-length movements.
//
// Buffer is not safe for concurrent use; the host serializes access
// the same way it serializes key delivery.
type Buffer struct {
	runes     []rune
	cursor    int
	anchor    int
	hasAnchor bool
}

// New creates a buffer holding text with the cursor at offset zero.
func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// SetText replaces the contents and resets cursor and selection.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(text)
	b.cursor = 0
	b.hasAnchor = false
}

// SetCursor places the cursor at a rune offset, clamped to the buffer.
func (b *Buffer) SetCursor(offset int) {
	b.cursor = b.clamp(offset)
}

// CursorLineCol returns the cursor position as zero-based line and
// column, for status lines and rendering.
func (b *Buffer) CursorLineCol() (line, col int) {
	for i := 0; i < b.cursor && i < len(b.runes); i++ {
		if b.runes[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// Lines splits the contents into lines without terminators.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.runes), "\n")
}

// MoveCursorBy implements vim.Surface. Horizontal movement is in rune
// offset space and crosses line boundaries; vertical movement is by
// whole lines, keeping the column where the target line allows.
func (b *Buffer) MoveCursorBy(delta int, axis vim.Axis) {
	if axis == vim.AxisHorizontal {
		b.cursor = b.clamp(b.cursor + delta)
		return
	}

	start, _ := b.lineBounds(b.cursor)
	col := b.cursor - start

	target := b.cursor
	if delta > 0 {
		for i := 0; i < delta; i++ {
			_, end := b.lineBounds(target)
			if end >= len(b.runes) {
				break
			}
			target = end + 1
		}
	} else {
		for i := 0; i < -delta; i++ {
			s, _ := b.lineBounds(target)
			if s == 0 {
				break
			}
			target = s - 1
		}
	}

	s, e := b.lineBounds(target)
	if col > e-s {
		col = e - s
	}
	b.cursor = s + col
}

// MoveCursorToLineStart implements vim.Surface.
func (b *Buffer) MoveCursorToLineStart() {
	start, _ := b.lineBounds(b.cursor)
	b.cursor = start
}

// MoveCursorToLineEnd implements vim.Surface. The cursor lands past
// the final character of the line, on the terminator when present.
func (b *Buffer) MoveCursorToLineEnd() {
	_, end := b.lineBounds(b.cursor)
	b.cursor = end
}

// MoveCursorToFirstNonBlank implements vim.Surface.
func (b *Buffer) MoveCursorToFirstNonBlank() {
	start, end := b.lineBounds(b.cursor)
	for start < end && (b.runes[start] == ' ' || b.runes[start] == '\t') {
		start++
	}
	b.cursor = start
}

// MoveCursorToDocumentStart implements vim.Surface.
func (b *Buffer) MoveCursorToDocumentStart() {
	b.cursor = 0
}

// MoveCursorToDocumentEnd implements vim.Surface.
func (b *Buffer) MoveCursorToDocumentEnd() {
	b.cursor = len(b.runes)
}

// CursorOffset implements vim.Surface.
func (b *Buffer) CursorOffset() int {
	return b.cursor
}

// Selection implements vim.Surface. The range spans from the anchor to
// the cursor, half-open, normalized so Start <= End.
func (b *Buffer) Selection() (vim.Range, bool) {
	if !b.hasAnchor {
		return vim.Range{}, false
	}
	return vim.Range{Start: b.anchor, End: b.cursor}.Normalize(), true
}

// SetSelectionAnchor implements vim.Surface.
func (b *Buffer) SetSelectionAnchor(offset int) {
	b.anchor = b.clamp(offset)
	b.hasAnchor = true
}

// ClearSelection implements vim.Surface.
func (b *Buffer) ClearSelection() {
	b.hasAnchor = false
}

// DeleteRange implements vim.Surface. The cursor lands at the start of
// the deleted range; an empty range is a no-op.
func (b *Buffer) DeleteRange(r vim.Range) {
	r = r.Normalize()
	start := b.clamp(r.Start)
	end := b.clamp(r.End)
	if end <= start {
		return
	}

	b.runes = append(b.runes[:start], b.runes[end:]...)
	b.cursor = start
	if b.hasAnchor {
		b.anchor = b.clamp(b.anchor)
	}
}

// InsertAtCursor implements vim.Surface. The cursor lands after the
// inserted text.
func (b *Buffer) InsertAtCursor(text string) {
	ins := []rune(text)
	if len(ins) == 0 {
		return
	}

	out := make([]rune, 0, len(b.runes)+len(ins))
	out = append(out, b.runes[:b.cursor]...)
	out = append(out, ins...)
	out = append(out, b.runes[b.cursor:]...)
	b.runes = out
	b.cursor += len(ins)
}

// TextWindow implements vim.Surface, returning up to maxLen runes
// around the cursor and the cursor's index within them.
func (b *Buffer) TextWindow(maxLen int) (string, int) {
	if maxLen <= 0 || len(b.runes) == 0 {
		return "", 0
	}

	start := b.cursor - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(b.runes) {
		end = len(b.runes)
		if start > end-maxLen && end-maxLen >= 0 {
			start = end - maxLen
		}
	}
	if start > b.cursor {
		start = b.cursor
	}

	return string(b.runes[start:end]), b.cursor - start
}

// lineBounds returns the rune offsets of the line containing offset:
// start is the first rune of the line, end the terminator (or buffer
// end for the last line).
func (b *Buffer) lineBounds(offset int) (start, end int) {
	offset = b.clamp(offset)

	start = offset
	for start > 0 && b.runes[start-1] != '\n' {
		start--
	}

	end = offset
	for end < len(b.runes) && b.runes[end] != '\n' {
		end++
	}
	return start, end
}

func (b *Buffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.runes) {
		return len(b.runes)
	}
	return offset
}
