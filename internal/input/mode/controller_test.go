package mode

import (
	"errors"
	"testing"
)

func TestControllerStartsDisabledInInsert(t *testing.T) {
	c := NewController()
	if c.Enabled() {
		t.Error("new controller should be disabled")
	}
	if c.Current() != Insert {
		t.Errorf("initial mode = %v, want Insert", c.Current())
	}
}

func TestControllerTransitions(t *testing.T) {
	c := NewController()
	c.Enable()

	if err := c.EnterNormal(); err != nil {
		t.Fatalf("EnterNormal from Insert: %v", err)
	}
	if c.Current() != Normal {
		t.Fatalf("mode = %v, want Normal", c.Current())
	}

	// Normal -> Normal is not a legal EnterNormal.
	if err := c.EnterNormal(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("EnterNormal from Normal: err = %v, want ErrIllegalTransition", err)
	}

	if err := c.ToggleVisual(false); err != nil {
		t.Fatalf("ToggleVisual: %v", err)
	}
	if c.Current() != Visual {
		t.Fatalf("mode = %v, want Visual", c.Current())
	}

	if err := c.ToggleVisual(true); err != nil {
		t.Fatalf("ToggleVisual linewise: %v", err)
	}
	if c.Current() != VisualLine {
		t.Fatalf("mode = %v, want VisualLine", c.Current())
	}

	if err := c.ExitVisual(); err != nil {
		t.Fatalf("ExitVisual: %v", err)
	}
	if c.Current() != Normal {
		t.Fatalf("mode = %v, want Normal", c.Current())
	}

	if err := c.ExitVisual(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("ExitVisual from Normal: err = %v, want ErrIllegalTransition", err)
	}

	c.EnterInsert()
	if c.Current() != Insert {
		t.Fatalf("mode = %v, want Insert", c.Current())
	}
}

func TestControllerEnterNormalWhileDisabled(t *testing.T) {
	c := NewController()
	if err := c.EnterNormal(); !errors.Is(err, ErrDisabled) {
		t.Errorf("EnterNormal while disabled: err = %v, want ErrDisabled", err)
	}
}

func TestControllerDisableAlwaysNotifies(t *testing.T) {
	var got []Mode
	c := NewController(WithChangeCallback(func(m Mode) {
		got = append(got, m)
	}))
	c.Enable()
	got = got[:0]

	// Already Insert: disable must still fire exactly one notification.
	c.Disable()
	if len(got) != 1 || got[0] != Insert {
		t.Errorf("notifications = %v, want [Insert]", got)
	}
}

func TestControllerEnableNotifiesForResync(t *testing.T) {
	var got []Mode
	c := NewController(WithChangeCallback(func(m Mode) {
		got = append(got, m)
	}))

	// Enable announces the current mode so hosts can resync, and a
	// redundant Enable stays silent.
	c.Enable()
	if len(got) != 1 || got[0] != Insert {
		t.Fatalf("notifications = %v, want [Insert]", got)
	}
	c.Enable()
	if len(got) != 1 {
		t.Errorf("notifications = %v, want no repeat for redundant Enable", got)
	}
}

func TestControllerEnterInsertNotifiesOnlyOnChange(t *testing.T) {
	var count int
	c := NewController(WithChangeCallback(func(Mode) { count++ }))
	c.Enable()
	count = 0

	c.EnterInsert() // already Insert, no change
	if count != 0 {
		t.Errorf("notifications = %d, want 0", count)
	}

	if err := c.EnterNormal(); err != nil {
		t.Fatal(err)
	}
	c.EnterInsert()
	if count != 2 {
		t.Errorf("notifications = %d, want 2", count)
	}
}

func TestControllerToggleVisualReentrantNotifies(t *testing.T) {
	var count int
	c := NewController()
	c.OnChange(func(Mode) { count++ })
	c.Enable()
	if err := c.EnterNormal(); err != nil {
		t.Fatal(err)
	}
	count = 0

	if err := c.ToggleVisual(false); err != nil {
		t.Fatal(err)
	}
	if err := c.ToggleVisual(false); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("notifications = %d, want 2 (toggle is re-entrant)", count)
	}
}
