package key

import "testing"

func TestEventIsRune(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"letter", NewRuneEvent('a', ModNone), true},
		{"digit", NewRuneEvent('7', ModNone), true},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), false},
		{"zero rune", Event{Key: KeyRune}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsRune(); got != tt.want {
				t.Errorf("IsRune() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"plain rune", NewRuneEvent('x', ModNone), false},
		{"shifted rune", NewRuneEvent('X', ModShift), false},
		{"ctrl rune", NewRuneEvent('c', ModCtrl), true},
		{"alt rune", NewRuneEvent('c', ModAlt), true},
		{"shifted special", NewSpecialEvent(KeyTab, ModShift), true},
		{"plain special", NewSpecialEvent(KeyEscape, ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsModified(); got != tt.want {
				t.Errorf("IsModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"letter", NewRuneEvent('g', ModNone), "g"},
		{"space", NewRuneEvent(' ', ModNone), "Space"},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{"ctrl letter", NewRuneEvent('s', ModCtrl), "C-s"},
		{"shift special", NewSpecialEvent(KeyTab, ModShift), "S-Tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
