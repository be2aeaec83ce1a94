package vim

// MotionKind tells the resolver how a motion executes.
type MotionKind uint8

const (
	// KindStep is a single-step relative move, repeated count times.
	KindStep MotionKind = iota

	// KindWordForward jumps to the start of the next word.
	KindWordForward

	// KindWordBackward jumps to the start of the previous word.
	KindWordBackward

	// KindWordEnd is declared but has no resolver mapping. The
	// interpreter reports keys bound to it as not consumed.
	KindWordEnd

	// KindLineStart moves to column zero of the current line.
	KindLineStart

	// KindLineEnd moves past the last character of the current line.
	KindLineEnd

	// KindFirstNonBlank moves to the first non-blank column.
	KindFirstNonBlank

	// KindDocumentStart moves to offset zero.
	KindDocumentStart

	// KindDocumentEnd moves to the final valid offset.
	KindDocumentEnd

	// KindParagraphForward jumps to the next blank-line boundary.
	KindParagraphForward

	// KindParagraphBackward jumps to the previous blank-line boundary.
	KindParagraphBackward
)

// Motion is a cursor-repositioning command without side effects on
// buffer content. Combined with a pending operator it instead defines
// the range the operator consumes.
type Motion struct {
	// Name is the motion identifier.
	Name string

	// Keys is the key sequence that triggers the motion.
	Keys string

	// Kind selects the resolver strategy.
	Kind MotionKind

	// Delta is the per-step delta for KindStep motions.
	Delta int

	// Axis is the movement axis for KindStep motions.
	Axis Axis

	// Inclusive indicates the motion includes the character it lands
	// on when it defines an operator range.
	Inclusive bool

	// Repeatable indicates the repeat count multiplies the motion.
	Repeatable bool
}

// The motions this engine understands.
var (
	MotionLeft = Motion{
		Name: "left", Keys: "h",
		Kind: KindStep, Delta: -1, Axis: AxisHorizontal,
		Repeatable: true,
	}

	MotionRight = Motion{
		Name: "right", Keys: "l",
		Kind: KindStep, Delta: 1, Axis: AxisHorizontal,
		Repeatable: true,
	}

	MotionUp = Motion{
		Name: "up", Keys: "k",
		Kind: KindStep, Delta: -1, Axis: AxisVertical,
		Repeatable: true,
	}

	MotionDown = Motion{
		Name: "down", Keys: "j",
		Kind: KindStep, Delta: 1, Axis: AxisVertical,
		Repeatable: true,
	}

	MotionWordForward = Motion{
		Name: "wordForward", Keys: "w",
		Kind:       KindWordForward,
		Repeatable: true,
	}

	MotionWordBackward = Motion{
		Name: "wordBackward", Keys: "b",
		Kind:       KindWordBackward,
		Repeatable: true,
	}

	// MotionWordEnd is declared for completeness but is intentionally
	// unresolved; see KindWordEnd.
	MotionWordEnd = Motion{
		Name: "wordEnd", Keys: "e",
		Kind:      KindWordEnd,
		Inclusive: true, Repeatable: true,
	}

	MotionLineStart = Motion{
		Name: "lineStart", Keys: "0",
		Kind: KindLineStart,
	}

	MotionLineEnd = Motion{
		Name: "lineEnd", Keys: "$",
		Kind: KindLineEnd,
	}

	MotionFirstNonBlank = Motion{
		Name: "firstNonBlank", Keys: "^",
		Kind: KindFirstNonBlank,
	}

	MotionDocumentStart = Motion{
		Name: "documentStart", Keys: "gg",
		Kind: KindDocumentStart,
	}

	MotionDocumentEnd = Motion{
		Name: "documentEnd", Keys: "G",
		Kind: KindDocumentEnd,
	}

	MotionParagraphForward = Motion{
		Name: "paragraphForward", Keys: "}",
		Kind:       KindParagraphForward,
		Repeatable: true,
	}

	MotionParagraphBackward = Motion{
		Name: "paragraphBackward", Keys: "{",
		Kind:       KindParagraphBackward,
		Repeatable: true,
	}
)

// motions maps single-key motion keys to their definitions.
var motions = map[rune]*Motion{
	'h': &MotionLeft,
	'l': &MotionRight,
	'k': &MotionUp,
	'j': &MotionDown,
	'w': &MotionWordForward,
	'b': &MotionWordBackward,
	'e': &MotionWordEnd,
	'0': &MotionLineStart,
	'$': &MotionLineEnd,
	'^': &MotionFirstNonBlank,
	'G': &MotionDocumentEnd,
	'}': &MotionParagraphForward,
	'{': &MotionParagraphBackward,
}

// GetMotion returns the motion for the key, or nil.
func GetMotion(key rune) *Motion {
	return motions[key]
}

// IsMotion returns true if the key is a motion key.
func IsMotion(key rune) bool {
	_, ok := motions[key]
	return ok
}
