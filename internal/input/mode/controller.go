package mode

import "errors"

// Errors returned by controller transitions.
var (
	// ErrIllegalTransition indicates a transition not allowed by the
	// mode state machine.
	ErrIllegalTransition = errors.New("illegal mode transition")

	// ErrDisabled indicates the controller is disabled.
	ErrDisabled = errors.New("modal editing is disabled")
)

// ChangeCallback is invoked synchronously whenever the mode changes,
// including the forced notification on disable. Callbacks must not
// re-enter the interpreter.
type ChangeCallback func(Mode)

// Controller governs mode transitions for one editing session.
//
// The controller is not safe for concurrent use: the host serializes
// key delivery, so every transition happens on the input path.
type Controller struct {
	current   Mode
	enabled   bool
	callbacks []ChangeCallback
}

// Option configures a Controller.
type Option func(*Controller)

// WithChangeCallback registers a mode-change callback at construction.
func WithChangeCallback(cb ChangeCallback) Option {
	return func(c *Controller) {
		c.callbacks = append(c.callbacks, cb)
	}
}

// NewController creates a controller starting disabled in Insert mode.
func NewController(opts ...Option) *Controller {
	c := &Controller{current: Insert}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers a mode-change callback.
func (c *Controller) OnChange(cb ChangeCallback) {
	c.callbacks = append(c.callbacks, cb)
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.current
}

// Enabled reports whether modal editing is active.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Enable turns modal editing on. The mode is whatever it was left at
// (Insert after construction or a Disable). A notification fires with
// the current mode even though no transition happened, so hosts can
// resync indicators that went stale while the controller was off.
func (c *Controller) Enable() {
	if c.enabled {
		return
	}
	c.enabled = true
	c.notify()
}

// Disable turns modal editing off and forces Insert mode. The change
// notification fires even when the mode was already Insert.
func (c *Controller) Disable() {
	c.enabled = false
	c.current = Insert
	c.notify()
}

// EnterNormal switches from Insert to Normal. It is legal only from
// Insert mode.
func (c *Controller) EnterNormal() error {
	if !c.enabled {
		return ErrDisabled
	}
	if c.current != Insert {
		return ErrIllegalTransition
	}
	c.current = Normal
	c.notify()
	return nil
}

// EnterInsert switches to Insert from any mode. The notification fires
// only when the mode actually changed.
func (c *Controller) EnterInsert() {
	if c.current == Insert {
		return
	}
	c.current = Insert
	c.notify()
}

// ToggleVisual switches to Visual or VisualLine mode unconditionally.
// Re-entering a visual mode still emits a notification so the host can
// re-capture the selection anchor.
func (c *Controller) ToggleVisual(linewise bool) error {
	if !c.enabled {
		return ErrDisabled
	}
	if linewise {
		c.current = VisualLine
	} else {
		c.current = Visual
	}
	c.notify()
	return nil
}

// ExitVisual returns from a visual mode to Normal without touching the
// buffer. It is legal only from Visual or VisualLine.
func (c *Controller) ExitVisual() error {
	if !c.current.IsVisual() {
		return ErrIllegalTransition
	}
	c.current = Normal
	c.notify()
	return nil
}

func (c *Controller) notify() {
	for _, cb := range c.callbacks {
		cb(c.current)
	}
}
