package expand

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	tbl := NewTable(WithEntries(map[string]string{
		"brb": "be right back",
		"omw": "on my way",
	}))

	exp, ok := tbl.Lookup("brb")
	if !ok {
		t.Fatal("expected a match for brb")
	}
	if exp.Text != "be right back" {
		t.Errorf("Text = %q, want %q", exp.Text, "be right back")
	}
	if exp.Matched != 3 {
		t.Errorf("Matched = %d, want 3", exp.Matched)
	}

	if _, ok := tbl.Lookup("nope"); ok {
		t.Error("unexpected match for unknown trigger")
	}
}

func TestLookupSuffixPrefersLongestTrigger(t *testing.T) {
	tbl := NewTable(WithEntries(map[string]string{
		"w":   "short",
		"btw": "by the way",
	}))

	exp, ok := tbl.LookupSuffix("typed btw")
	if !ok {
		t.Fatal("expected a suffix match")
	}
	if exp.Text != "by the way" || exp.Matched != 3 {
		t.Errorf("got %+v, want the longest trigger btw", exp)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shortcuts.json")
	tbl := NewTable(WithPath(path))
	tbl.Set("addr", "1 Main St.")
	tbl.Set("sig", "Regards,\nD")
	tbl.Set("v.2", "version two") // dot in trigger must survive encoding

	if err := tbl.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewTable(WithPath(path))
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}

	for trigger, want := range map[string]string{
		"addr": "1 Main St.",
		"sig":  "Regards,\nD",
		"v.2":  "version two",
	} {
		exp, ok := loaded.Lookup(trigger)
		if !ok {
			t.Errorf("Lookup(%q) missing after round trip", trigger)
			continue
		}
		if exp.Text != want {
			t.Errorf("Lookup(%q) = %q, want %q", trigger, exp.Text, want)
		}
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	tbl := NewTable(WithPath(filepath.Join(t.TempDir(), "absent.json")))
	if err := tbl.Load(); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl := NewTable(WithPath(path))
	if err := tbl.Load(); !errors.Is(err, ErrMalformed) {
		t.Errorf("Load = %v, want ErrMalformed", err)
	}
}

func TestNoPathConfigured(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Load(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Load = %v, want ErrNoPath", err)
	}
	if err := tbl.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save = %v, want ErrNoPath", err)
	}
}
