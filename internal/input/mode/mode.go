// Package mode tracks the active editing mode and governs legal
// transitions between modes.
package mode

// Mode identifies an editing mode. Exactly one mode is active at a time.
type Mode uint8

const (
	// Insert is ordinary text entry; keys pass through to the host.
	Insert Mode = iota

	// Normal interprets keys as commands rather than text input.
	Normal

	// Visual is character-wise selection.
	Visual

	// VisualLine is line-wise selection.
	VisualLine

	// Command is reserved for an ex-style command line.
	// No transitions reach it. TODO: wire once a command line exists.
	Command
)

// String returns the mode identifier used in status lines and logs.
func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Normal:
		return "normal"
	case Visual:
		return "visual"
	case VisualLine:
		return "visual-line"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}

// DisplayName returns the status-line name for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "INSERT"
	case Normal:
		return "NORMAL"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "V-LINE"
	case Command:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// IsVisual returns true for the two selection modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}
