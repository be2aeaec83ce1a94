package vim

import "sync"

// Register is the single-slot yank/delete buffer. Every yank or
// capturing delete overwrites it; nothing ever empties it explicitly.
// It survives mode changes and engine disable.
//
// The engine writes it on the input path only, but hosts may read it
// from a render goroutine, so access is guarded.
type Register struct {
	mu      sync.RWMutex
	content string
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Capture overwrites the slot with text.
func (r *Register) Capture(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = text
}

// Content returns the slot contents.
func (r *Register) Content() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}

// IsEmpty returns true when nothing has been captured yet.
func (r *Register) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content == ""
}

// Paste inserts the slot contents at the cursor. Pasting after (the
// default p command) moves the cursor right one position first.
// An empty register is a no-op.
func (r *Register) Paste(before bool, s Surface) {
	text := r.Content()
	if text == "" {
		return
	}
	if !before {
		s.MoveCursorBy(1, AxisHorizontal)
	}
	s.InsertAtCursor(text)
}
