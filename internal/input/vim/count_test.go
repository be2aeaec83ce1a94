package vim

import "testing"

func TestCountAccumulation(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{"single digit", "5", 5},
		{"two digits", "34", 34},
		{"three digits", "120", 120},
		{"zero continues a count", "10", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CountState
			for _, r := range tt.digits {
				if !c.AccumulateDigit(r) {
					t.Fatalf("AccumulateDigit(%q) rejected", r)
				}
			}
			if c.Value != tt.want {
				t.Errorf("Value = %d, want %d", c.Value, tt.want)
			}
		})
	}
}

func TestCountLeadingZeroRejected(t *testing.T) {
	var c CountState
	if c.AccumulateDigit('0') {
		t.Error("leading '0' must be rejected: it is the line-start motion")
	}
	if c.Active {
		t.Error("count must stay inactive after rejected digit")
	}
}

func TestCountGetDefaultsToOne(t *testing.T) {
	var c CountState
	if got := c.Get(); got != 1 {
		t.Errorf("Get() with no count = %d, want 1", got)
	}

	c.AccumulateDigit('7')
	if got := c.Get(); got != 7 {
		t.Errorf("Get() = %d, want 7", got)
	}

	c.Reset()
	if c.Value != 0 || c.Active {
		t.Errorf("Reset() left Value=%d Active=%v", c.Value, c.Active)
	}
}

func TestCountNonDigitRejected(t *testing.T) {
	var c CountState
	if c.AccumulateDigit('w') {
		t.Error("non-digit accepted")
	}
}

func TestMotionTable(t *testing.T) {
	// Every table key maps to a motion that reports the same trigger.
	for _, r := range []rune{'h', 'j', 'k', 'l', 'w', 'b', '0', '$', '^', 'G', '{', '}'} {
		if GetMotion(r) == nil {
			t.Errorf("GetMotion(%q) = nil", r)
		}
	}
	if GetMotion('q') != nil {
		t.Error("GetMotion('q') should be nil")
	}

	// wordEnd is declared but intentionally unresolved.
	m := GetMotion('e')
	if m == nil {
		t.Fatal("GetMotion('e') = nil, want declared wordEnd motion")
	}
	if m.Kind != KindWordEnd {
		t.Errorf("motion 'e' kind = %v, want KindWordEnd", m.Kind)
	}
}

func TestOperatorTable(t *testing.T) {
	for _, r := range []rune{'d', 'c', 'y', 'r'} {
		if GetOperator(r) == nil {
			t.Errorf("GetOperator(%q) = nil", r)
		}
	}
	if GetOperator('z') != nil {
		t.Error("GetOperator('z') should be nil")
	}

	if !OpDelete.Deletes || !OpDelete.Captures {
		t.Error("delete must remove and capture text")
	}
	if !OpYank.Captures || OpYank.Deletes {
		t.Error("yank must capture without removing text")
	}
	if !OpChange.EntersInsert {
		t.Error("change must enter insert mode")
	}
}
