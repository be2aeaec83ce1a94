package vim

// Operator is an edit command that, combined with a motion, determines
// the text range it affects. A pending operator is valid only in
// Normal mode and is cleared as soon as a motion or an
// operator-doubling (dd, yy) consumes it.
type Operator struct {
	// Name is the operator identifier.
	Name string

	// Key is the key that triggers the operator.
	Key rune

	// Captures indicates the affected text is captured into the yank
	// register before (or instead of) removal.
	Captures bool

	// Deletes indicates the affected text is removed from the buffer.
	Deletes bool

	// EntersInsert indicates the operator enters Insert mode after
	// running.
	EntersInsert bool

	// Linewise indicates operator-doubling applies to whole lines.
	Linewise bool
}

// The operators this engine understands.
var (
	// OpDelete removes text and captures it.
	OpDelete = Operator{
		Name:     "delete",
		Key:      'd',
		Captures: true,
		Deletes:  true,
		Linewise: true,
	}

	// OpChange removes text and enters Insert mode.
	OpChange = Operator{
		Name:         "change",
		Key:          'c',
		Deletes:      true,
		EntersInsert: true,
	}

	// OpYank captures text without modifying the buffer.
	OpYank = Operator{
		Name:     "yank",
		Key:      'y',
		Captures: true,
		Linewise: true,
	}

	// OpReplace is declared for the replace command. No motion binds a
	// range to it in this engine; a following motion clears it after
	// moving the cursor.
	OpReplace = Operator{
		Name: "replace",
		Key:  'r',
	}
)

// operators maps operator keys to their definitions.
var operators = map[rune]*Operator{
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
	'r': &OpReplace,
}

// GetOperator returns the operator for the key, or nil.
func GetOperator(key rune) *Operator {
	return operators[key]
}

// IsOperator returns true if the key is an operator key.
func IsOperator(key rune) bool {
	_, ok := operators[key]
	return ok
}
