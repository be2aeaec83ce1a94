package vim

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// defaultWindow is how many runes of context the resolver requests
// from the surface when scanning for word, line and paragraph
// boundaries.
const defaultWindow = 4096

// Resolver maps a motion identifier plus repeat count onto primitive
// surface operations. When a motion is combined with an operator, Span
// computes the affected range without permanently moving the cursor.
type Resolver struct {
	window int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithWindow sets the text window size used for boundary scans.
func WithWindow(runes int) ResolverOption {
	return func(r *Resolver) {
		if runes > 0 {
			r.window = runes
		}
	}
}

// NewResolver creates a motion resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{window: defaultWindow}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply executes the motion against the surface, repeated count times
// where the motion is repeatable. It returns false for motions with no
// resolver mapping (wordEnd), which callers must report as unhandled
// rather than a silent success.
func (r *Resolver) Apply(m *Motion, count int, s Surface) bool {
	if m == nil {
		return false
	}
	if count < 1 {
		count = 1
	}
	if !m.Repeatable {
		count = 1
	}

	switch m.Kind {
	case KindStep:
		for i := 0; i < count; i++ {
			s.MoveCursorBy(m.Delta, m.Axis)
		}

	case KindWordForward:
		for i := 0; i < count; i++ {
			r.moveToBoundary(s, nextWordStart)
		}

	case KindWordBackward:
		for i := 0; i < count; i++ {
			r.moveToBoundary(s, prevWordStart)
		}

	case KindLineStart:
		s.MoveCursorToLineStart()

	case KindLineEnd:
		s.MoveCursorToLineEnd()

	case KindFirstNonBlank:
		s.MoveCursorToFirstNonBlank()

	case KindDocumentStart:
		s.MoveCursorToDocumentStart()

	case KindDocumentEnd:
		s.MoveCursorToDocumentEnd()

	case KindParagraphForward:
		for i := 0; i < count; i++ {
			r.moveToBoundary(s, nextParagraph)
		}

	case KindParagraphBackward:
		for i := 0; i < count; i++ {
			r.moveToBoundary(s, prevParagraph)
		}

	default:
		// KindWordEnd and anything unmapped.
		return false
	}
	return true
}

// Span computes the range the motion would cover from the current
// cursor position, restoring the cursor afterwards. Operators consume
// the returned range for delete/change/yank.
func (r *Resolver) Span(m *Motion, count int, s Surface) (Range, bool) {
	start := s.CursorOffset()
	if !r.Apply(m, count, s) {
		return Range{}, false
	}
	end := s.CursorOffset()

	// Horizontal movement is offset-space, so this restores the exact
	// pre-motion position regardless of the motion's axis.
	s.MoveCursorBy(start-end, AxisHorizontal)

	rng := Range{Start: start, End: end}.Normalize()
	if m.Inclusive && !rng.IsEmpty() {
		rng.End++
	}
	return rng, true
}

// LineRange returns the range of count whole lines starting at the
// cursor's line, including the trailing terminator when present. This
// is the range dd and yy operate on.
func (r *Resolver) LineRange(count int, s Surface) Range {
	if count < 1 {
		count = 1
	}

	text, at := s.TextWindow(r.window)
	runes := []rune(text)
	winStart := s.CursorOffset() - at

	start := at
	for start > 0 && runes[start-1] != '\n' {
		start--
	}

	end := at
	seen := 0
	for end < len(runes) {
		if runes[end] == '\n' {
			seen++
			if seen == count {
				end++
				break
			}
		}
		end++
	}

	return Range{Start: winStart + start, End: winStart + end}
}

// TextIn returns the text the range covers, read through the surface's
// text window. Portions outside the window are clamped away.
func (r *Resolver) TextIn(s Surface, rng Range) string {
	rng = rng.Normalize()
	if rng.IsEmpty() {
		return ""
	}

	text, at := s.TextWindow(r.window)
	runes := []rune(text)
	winStart := s.CursorOffset() - at

	lo := rng.Start - winStart
	hi := rng.End - winStart
	if lo < 0 {
		lo = 0
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if hi <= lo {
		return ""
	}
	return string(runes[lo:hi])
}

// moveToBoundary repositions the cursor at the boundary the scan
// function finds within the text window.
func (r *Resolver) moveToBoundary(s Surface, scan func(runes []rune, from int) int) {
	text, at := s.TextWindow(r.window)
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}

	target := scan(runes, at)
	if delta := target - at; delta != 0 {
		s.MoveCursorBy(delta, AxisHorizontal)
	}
}

// wordStarts returns the rune indices at which non-whitespace word
// segments begin, per Unicode word segmentation.
func wordStarts(text string) []int {
	var starts []int
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		runes := []rune(word)
		if len(runes) > 0 && !unicode.IsSpace(runes[0]) {
			starts = append(starts, pos)
		}
		pos += len(runes)
	}
	return starts
}

// nextWordStart finds the start of the first word after from, or the
// end of the window when there is none.
func nextWordStart(runes []rune, from int) int {
	for _, start := range wordStarts(string(runes)) {
		if start > from {
			return start
		}
	}
	return len(runes)
}

// prevWordStart finds the start of the last word before from, or zero.
func prevWordStart(runes []rune, from int) int {
	target := 0
	for _, start := range wordStarts(string(runes)) {
		if start >= from {
			break
		}
		target = start
	}
	return target
}

// nextParagraph finds the start of the next blank line after from, or
// the end of the window.
func nextParagraph(runes []rune, from int) int {
	for i := from + 1; i < len(runes); i++ {
		if runes[i] != '\n' {
			continue
		}
		if i+1 >= len(runes) {
			return len(runes)
		}
		if runes[i+1] == '\n' {
			return i + 1
		}
	}
	return len(runes)
}

// prevParagraph finds the start of the previous blank line before
// from, or zero.
func prevParagraph(runes []rune, from int) int {
	for i := from - 1; i > 0; i-- {
		if runes[i] == '\n' && runes[i-1] == '\n' {
			return i
		}
	}
	return 0
}
