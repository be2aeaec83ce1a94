package key

import "strings"

// Modifier is a bitmask of modifier keys held during a key event.
type Modifier uint8

const (
	// ModNone means no modifiers are active.
	ModNone Modifier = 0

	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl is the Control key.
	ModCtrl

	// ModAlt is the Alt/Option key.
	ModAlt

	// ModMeta is the Meta/Command/Windows key.
	ModMeta
)

// HasShift returns true if Shift is active.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Control is active.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is active.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta returns true if Meta is active.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// String returns a canonical representation such as "C-A".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "C")
	}
	if m.HasAlt() {
		parts = append(parts, "A")
	}
	if m.HasMeta() {
		parts = append(parts, "M")
	}
	if m.HasShift() {
		parts = append(parts, "S")
	}
	return strings.Join(parts, "-")
}
