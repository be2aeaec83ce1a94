package key

import "unicode"

// Event represents a single key press delivered by the host.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a non-character key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if a command modifier is pressed.
// For character events Shift alone does not count: it is already
// folded into the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// String returns a canonical representation such as "a", "Esc" or "C-s".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "-" + name
}
