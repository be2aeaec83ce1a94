// Package expand implements the static text-expansion shortcut table:
// a trigger-to-expansion lookup with JSON persistence. It holds no
// editing logic; the host decides when to consult it and how to apply
// the expansion to its surface.
package expand

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Errors returned by table persistence.
var (
	// ErrNoPath indicates the table has no backing file configured.
	ErrNoPath = errors.New("no shortcut file configured")

	// ErrMalformed indicates the backing file is not valid JSON.
	ErrMalformed = errors.New("malformed shortcut file")
)

// shortcutsKey is the top-level JSON key holding the trigger map.
const shortcutsKey = "shortcuts"

// Expansion is a successful lookup result.
type Expansion struct {
	// Text is the replacement text.
	Text string

	// Matched is the trigger length in runes, so the host knows how
	// much typed text the expansion replaces.
	Matched int
}

// Table is a shortcut-template table. It is an explicit instance with
// constructor-based initialization; nothing in this package is a
// process-wide singleton.
//
// Table is not safe for concurrent use; hosts access it from the input
// path only.
type Table struct {
	path    string
	entries map[string]string
}

// Option configures a Table.
type Option func(*Table)

// WithPath sets the JSON file backing the table.
func WithPath(path string) Option {
	return func(t *Table) {
		t.path = path
	}
}

// WithEntries seeds the table with triggers.
func WithEntries(entries map[string]string) Option {
	return func(t *Table) {
		for trigger, text := range entries {
			t.entries[trigger] = text
		}
	}
}

// NewTable creates a shortcut table.
func NewTable(opts ...Option) *Table {
	t := &Table{entries: make(map[string]string)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of triggers.
func (t *Table) Len() int {
	return len(t.entries)
}

// Set adds or replaces a trigger.
func (t *Table) Set(trigger, text string) {
	if trigger == "" {
		return
	}
	t.entries[trigger] = text
}

// Remove deletes a trigger.
func (t *Table) Remove(trigger string) {
	delete(t.entries, trigger)
}

// Lookup returns the expansion for an exact trigger match.
func (t *Table) Lookup(word string) (Expansion, bool) {
	text, ok := t.entries[word]
	if !ok {
		return Expansion{}, false
	}
	return Expansion{Text: text, Matched: len([]rune(word))}, true
}

// LookupSuffix returns the expansion for the longest trigger that is a
// suffix of typed, for expansion as the user types.
func (t *Table) LookupSuffix(typed string) (Expansion, bool) {
	var best Expansion
	found := false
	for trigger, text := range t.entries {
		if !strings.HasSuffix(typed, trigger) {
			continue
		}
		if n := len([]rune(trigger)); !found || n > best.Matched {
			best = Expansion{Text: text, Matched: n}
			found = true
		}
	}
	return best, found
}

// Load reads the table from its backing file. A missing file is not an
// error: the table simply starts empty.
func (t *Table) Load() error {
	if t.path == "" {
		return ErrNoPath
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read shortcut file: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: %s", ErrMalformed, t.path)
	}

	entries := make(map[string]string)
	gjson.GetBytes(data, shortcutsKey).ForEach(func(key, value gjson.Result) bool {
		entries[key.String()] = value.String()
		return true
	})
	t.entries = entries
	return nil
}

// Save writes the table to its backing file, creating parent
// directories as needed.
func (t *Table) Save() error {
	if t.path == "" {
		return ErrNoPath
	}

	out := []byte(`{}`)
	var err error
	for trigger, text := range t.entries {
		out, err = sjson.SetBytes(out, shortcutsKey+"."+escapeKey(trigger), text)
		if err != nil {
			return fmt.Errorf("encode shortcut %q: %w", trigger, err)
		}
	}
	out = []byte(gjson.GetBytes(out, "@pretty").Raw)

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create shortcut dir: %w", err)
	}
	if err := os.WriteFile(t.path, out, 0o644); err != nil {
		return fmt.Errorf("write shortcut file: %w", err)
	}
	return nil
}

// escapeKey protects path separators in triggers from sjson path
// interpretation.
func escapeKey(key string) string {
	key = strings.ReplaceAll(key, `\`, `\\`)
	key = strings.ReplaceAll(key, `.`, `\.`)
	key = strings.ReplaceAll(key, `*`, `\*`)
	key = strings.ReplaceAll(key, `?`, `\?`)
	return key
}
