package vim

import (
	"strconv"
	"strings"

	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/mode"
)

// Engine is the modal key interpreter. The host forwards every key
// event to ProcessKey; the engine consults its state, issues primitive
// calls on the surface, and reports whether the key was consumed.
//
// The engine is a pure synchronous interpreter: one key event is fully
// processed before the next is accepted, and the host serializes key
// delivery.
type Engine struct {
	modes    *mode.Controller
	resolver *Resolver
	register *Register

	// pendingOp is the operator awaiting a motion; valid only in
	// Normal mode.
	pendingOp *Operator

	// count is the repeat accumulator.
	count CountState

	// anchor is the visual selection anchor; present only in the
	// visual modes.
	anchor    int
	hasAnchor bool

	// gPending is the two-key document-start latch. It is transient
	// per-keystroke state: any Normal-mode key other than 'g' clears
	// it. There is deliberately no chord timeout.
	gPending bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithResolver replaces the default motion resolver.
func WithResolver(r *Resolver) EngineOption {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithRegister replaces the default yank register, letting hosts share
// one register across sessions.
func WithRegister(r *Register) EngineOption {
	return func(e *Engine) {
		e.register = r
	}
}

// WithModeCallback registers a mode-change callback at construction.
func WithModeCallback(cb mode.ChangeCallback) EngineOption {
	return func(e *Engine) {
		e.modes.OnChange(cb)
	}
}

// NewEngine creates a disabled engine in Insert mode.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		modes:    mode.NewController(),
		resolver: NewResolver(),
		register: NewRegister(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Modes returns the mode controller.
func (e *Engine) Modes() *mode.Controller {
	return e.modes
}

// Register returns the yank register.
func (e *Engine) Register() *Register {
	return e.register
}

// Mode returns the active mode.
func (e *Engine) Mode() mode.Mode {
	return e.modes.Current()
}

// Enabled reports whether the engine is interpreting keys.
func (e *Engine) Enabled() bool {
	return e.modes.Enabled()
}

// Enable turns modal interpretation on.
func (e *Engine) Enable() {
	e.modes.Enable()
}

// Disable turns modal interpretation off: mode goes to Insert, pending
// operator, repeat count and visual anchor are cleared, and exactly
// one mode-changed notification fires even if the mode was already
// Insert. The yank register is not cleared.
func (e *Engine) Disable() {
	e.clearTransient()
	e.hasAnchor = false
	e.modes.Disable()
}

// PendingKeys returns a status-line rendition of the in-flight
// sequence, such as "23d" or "g".
func (e *Engine) PendingKeys() string {
	var b strings.Builder
	if e.count.Active {
		b.WriteString(strconv.Itoa(e.count.Value))
	}
	if e.pendingOp != nil {
		b.WriteRune(e.pendingOp.Key)
	}
	if e.gPending {
		b.WriteRune('g')
	}
	return b.String()
}

// ProcessKey interprets one key event against the surface. It returns
// true when the engine consumed the key; unconsumed keys pass through
// to the host as ordinary input. A disabled engine consumes nothing.
func (e *Engine) ProcessKey(ev key.Event, s Surface) bool {
	if !e.modes.Enabled() {
		return false
	}

	switch e.modes.Current() {
	case mode.Insert:
		return e.processInsert(ev)
	case mode.Normal:
		return e.processNormal(ev, s)
	case mode.Visual, mode.VisualLine:
		return e.processVisual(ev, s)
	default:
		return false
	}
}

// processInsert handles Insert mode: only Escape is interpreted,
// everything else is ordinary text input for the host.
func (e *Engine) processInsert(ev key.Event) bool {
	if ev.Key == key.KeyEscape {
		_ = e.modes.EnterNormal()
		return true
	}
	return false
}

// processNormal dispatches a Normal-mode key. Order matters: g-prefix
// resolution, operator doubling, digit accumulation, operators,
// single-key commands, then the motion table.
func (e *Engine) processNormal(ev key.Event, s Surface) bool {
	if ev.Key == key.KeyEscape {
		e.clearTransient()
		return true
	}

	if m := arrowMotion(ev); m != nil {
		e.gPending = false
		return e.execMotion(m, s)
	}

	// Any key that is not a plain 'g' rune cancels the latch, including
	// special and modified keys that are otherwise not consumed.
	if !ev.IsRune() || ev.IsModified() {
		e.gPending = false
		return false
	}
	r := ev.Rune

	// Two-key document-start prefix.
	if r == 'g' {
		if e.gPending {
			e.gPending = false
			return e.execMotion(&MotionDocumentStart, s)
		}
		e.gPending = true
		return true
	}
	e.gPending = false

	// Operator doubling: dd, yy.
	if e.pendingOp != nil && r == e.pendingOp.Key {
		return e.execLinewise(e.pendingOp, s)
	}

	// Digits accumulate only while no operator is pending; after an
	// operator they fall through to the motion table unchanged.
	if e.pendingOp == nil && e.count.AccumulateDigit(r) {
		return true
	}

	if op := GetOperator(r); op != nil {
		e.pendingOp = op
		return true
	}

	switch r {
	case 'p':
		e.register.Paste(false, s)
		e.pendingOp = nil
		e.count.Reset()
		return true
	case 'P':
		e.register.Paste(true, s)
		e.pendingOp = nil
		e.count.Reset()
		return true
	case 'x':
		cur := s.CursorOffset()
		s.DeleteRange(Range{Start: cur, End: cur + e.count.Get()})
		e.pendingOp = nil
		e.count.Reset()
		return true
	case 'i':
		e.enterInsert(s)
		return true
	case 'a':
		s.MoveCursorBy(1, AxisHorizontal)
		e.enterInsert(s)
		return true
	case 'v':
		e.enterVisual(s, false)
		return true
	case 'V':
		e.enterVisual(s, true)
		return true
	}

	m := GetMotion(r)
	if m == nil {
		// Not an error: the key passes through. The repeat count is
		// preserved for the next recognized command.
		return false
	}
	return e.execMotion(m, s)
}

// processVisual dispatches a key in Visual or VisualLine mode.
func (e *Engine) processVisual(ev key.Event, s Surface) bool {
	if ev.Key == key.KeyEscape {
		e.exitVisual(s)
		return true
	}

	if m := arrowMotion(ev); m != nil {
		return e.resolver.Apply(m, 1, s)
	}

	if !ev.IsRune() || ev.IsModified() {
		return false
	}

	switch ev.Rune {
	case 'd', 'x':
		if rng, ok := s.Selection(); ok && !rng.IsEmpty() {
			e.register.Capture(e.resolver.TextIn(s, rng))
			s.DeleteRange(rng.Normalize())
		}
		e.exitVisual(s)
		return true

	case 'y':
		if rng, ok := s.Selection(); ok && !rng.IsEmpty() {
			e.register.Capture(e.resolver.TextIn(s, rng))
		}
		e.exitVisual(s)
		return true

	case 'c':
		if rng, ok := s.Selection(); ok && !rng.IsEmpty() {
			s.DeleteRange(rng.Normalize())
		}
		e.enterInsert(s)
		return true
	}

	// Motions extend or shrink the selection; the anchor stays put.
	m := GetMotion(ev.Rune)
	if m == nil {
		return false
	}
	return e.resolver.Apply(m, 1, s)
}

// execMotion runs a motion, combining it with the pending operator
// when one is set. Completing either way consumes the repeat count.
func (e *Engine) execMotion(m *Motion, s Surface) bool {
	count := e.count.Get()

	if op := e.pendingOp; op != nil {
		if !op.Deletes && !op.Captures {
			// Replace has no range semantics; the motion just moves
			// the cursor and the operator dissolves.
			if !e.resolver.Apply(m, count, s) {
				return false
			}
			e.pendingOp = nil
			e.count.Reset()
			return true
		}

		rng, ok := e.resolver.Span(m, count, s)
		if !ok {
			return false
		}
		if op.Captures {
			e.register.Capture(e.resolver.TextIn(s, rng))
		}
		if op.Deletes {
			s.DeleteRange(rng)
		}
		e.pendingOp = nil
		e.count.Reset()
		if op.EntersInsert {
			e.enterInsert(s)
		}
		return true
	}

	if !e.resolver.Apply(m, count, s) {
		return false
	}
	e.count.Reset()
	return true
}

// execLinewise runs an operator-doubling (dd, yy) over count whole
// lines. The doubling consumes both the operator and the count.
func (e *Engine) execLinewise(op *Operator, s Surface) bool {
	defer func() {
		e.pendingOp = nil
		e.count.Reset()
	}()

	if !op.Linewise {
		// cc and rr have no line-wise wiring; the sequence is
		// swallowed so the keys do not leak into text input.
		return true
	}

	rng := e.resolver.LineRange(e.count.Get(), s)
	if op.Captures {
		e.register.Capture(e.resolver.TextIn(s, rng))
	}
	if op.Deletes {
		s.DeleteRange(rng)
	}
	return true
}

// enterInsert transitions to Insert mode, upholding the invariant that
// Insert mode carries no pending operator and no visual anchor. Any
// accumulated count is dropped: it has no meaning in Insert mode and
// must not leak into the next Normal-mode command.
func (e *Engine) enterInsert(s Surface) {
	e.pendingOp = nil
	e.count.Reset()
	e.gPending = false
	if e.hasAnchor {
		e.hasAnchor = false
		s.ClearSelection()
	}
	e.modes.EnterInsert()
}

// enterVisual toggles a visual mode and captures the anchor at the
// current cursor offset. Counts are not supported in the visual modes,
// so an accumulated count is dropped here rather than left to leak
// into the first Normal-mode command after the session.
func (e *Engine) enterVisual(s Surface, linewise bool) {
	offset := s.CursorOffset()
	if err := e.modes.ToggleVisual(linewise); err != nil {
		return
	}
	e.pendingOp = nil
	e.count.Reset()
	e.anchor = offset
	e.hasAnchor = true
	s.SetSelectionAnchor(offset)
}

// exitVisual returns to Normal mode without mutating the buffer.
func (e *Engine) exitVisual(s Surface) {
	if err := e.modes.ExitVisual(); err != nil {
		return
	}
	e.hasAnchor = false
	s.ClearSelection()
}

// clearTransient drops the in-flight sequence state.
func (e *Engine) clearTransient() {
	e.pendingOp = nil
	e.count.Reset()
	e.gPending = false
}

// arrowMotion maps arrow keys onto the step motions.
func arrowMotion(ev key.Event) *Motion {
	switch ev.Key {
	case key.KeyLeft:
		return &MotionLeft
	case key.KeyRight:
		return &MotionRight
	case key.KeyUp:
		return &MotionUp
	case key.KeyDown:
		return &MotionDown
	default:
		return nil
	}
}
