package vim

// Axis selects the direction class for relative cursor movement.
type Axis uint8

const (
	// AxisHorizontal moves the cursor in rune-offset space. Movement
	// crosses line boundaries and clamps at the buffer edges.
	AxisHorizontal Axis = iota

	// AxisVertical moves the cursor by whole lines, preserving the
	// column where possible.
	AxisVertical
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Range is a half-open rune-offset interval [Start, End).
type Range struct {
	Start int
	End   int
}

// IsEmpty returns true when the range spans no text.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Len returns the number of runes the range spans.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Surface is the text buffer exposed by the host editor. The engine
// never owns text storage; it only issues motion, selection and edit
// requests through this interface.
//
// All operations are synchronous and immediately observable. Out of
// range arguments clamp rather than fail: the engine treats a motion
// against an empty buffer as a zero-length movement.
type Surface interface {
	// MoveCursorBy moves the cursor by delta steps along the axis.
	MoveCursorBy(delta int, axis Axis)

	// MoveCursorToLineStart moves to column zero of the current line.
	MoveCursorToLineStart()

	// MoveCursorToLineEnd moves past the last character of the line.
	MoveCursorToLineEnd()

	// MoveCursorToFirstNonBlank moves to the first non-blank column of
	// the current line.
	MoveCursorToFirstNonBlank()

	// MoveCursorToDocumentStart moves to offset zero.
	MoveCursorToDocumentStart()

	// MoveCursorToDocumentEnd moves to the final valid offset.
	MoveCursorToDocumentEnd()

	// CursorOffset returns the cursor position as a rune offset.
	CursorOffset() int

	// Selection returns the active selection, if any.
	Selection() (Range, bool)

	// SetSelectionAnchor starts a selection anchored at offset; the
	// cursor is the moving endpoint.
	SetSelectionAnchor(offset int)

	// ClearSelection removes any active selection.
	ClearSelection()

	// DeleteRange removes the text in r and leaves the cursor at
	// r.Start. Empty ranges are a no-op.
	DeleteRange(r Range)

	// InsertAtCursor inserts text at the cursor, leaving the cursor
	// after the inserted text.
	InsertAtCursor(text string)

	// TextWindow returns up to maxLen runes of text around the cursor
	// together with the cursor's index within the returned text. It is
	// used to find word, line and paragraph boundaries.
	TextWindow(maxLen int) (text string, cursorAt int)
}
