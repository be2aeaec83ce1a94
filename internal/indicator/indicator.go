// Package indicator draws a small mode badge on a tcell screen so the
// user always knows which editing mode is active.
package indicator

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/modalkit/internal/input/mode"
)

// Default badge backgrounds per mode.
var defaultPalette = map[mode.Mode]colorful.Color{
	mode.Insert:     mustHex("#98c379"),
	mode.Normal:     mustHex("#61afef"),
	mode.Visual:     mustHex("#c678dd"),
	mode.VisualLine: mustHex("#d19a66"),
	mode.Command:    mustHex("#e5c07b"),
}

// Indicator renders the mode badge and any pending key prefix.
type Indicator struct {
	screen  tcell.Screen
	palette map[mode.Mode]colorful.Color
	drawn   int
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithColor overrides the badge background for one mode. Malformed hex
// strings leave the default in place.
func WithColor(m mode.Mode, hex string) Option {
	return func(i *Indicator) {
		c, err := colorful.Hex(hex)
		if err != nil {
			return
		}
		i.palette[m] = c
	}
}

// New creates an indicator drawing onto screen.
func New(screen tcell.Screen, opts ...Option) *Indicator {
	i := &Indicator{
		screen:  screen,
		palette: make(map[mode.Mode]colorful.Color, len(defaultPalette)),
	}
	for m, c := range defaultPalette {
		i.palette[m] = c
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Draw renders the badge for m at (x, y), followed by the pending key
// prefix in a muted variant of the badge color. It overwrites whatever
// a previous Draw left behind.
func (i *Indicator) Draw(x, y int, m mode.Mode, pending string) {
	bg, ok := i.palette[m]
	if !ok {
		bg = defaultPalette[mode.Normal]
	}

	badge := " " + m.DisplayName() + " "
	badgeStyle := tcell.StyleDefault.
		Foreground(textColorFor(bg)).
		Background(toTcell(bg)).
		Bold(true)

	col := x
	for _, r := range badge {
		i.screen.SetContent(col, y, r, nil, badgeStyle)
		col++
	}

	if pending != "" {
		muted := bg.BlendLab(mustHex("#808080"), 0.5)
		pendingStyle := tcell.StyleDefault.Foreground(toTcell(muted))
		i.screen.SetContent(col, y, ' ', nil, tcell.StyleDefault)
		col++
		for _, r := range pending {
			i.screen.SetContent(col, y, r, nil, pendingStyle)
			col++
		}
	}

	for extra := col; extra < x+i.drawn; extra++ {
		i.screen.SetContent(extra, y, ' ', nil, tcell.StyleDefault)
	}
	i.drawn = col - x
}

// Clear blanks the area of the last Draw at (x, y).
func (i *Indicator) Clear(x, y int) {
	for off := 0; off < i.drawn; off++ {
		i.screen.SetContent(x+off, y, ' ', nil, tcell.StyleDefault)
	}
	i.drawn = 0
}

// textColorFor picks black or white text for legibility on bg.
func textColorFor(bg colorful.Color) tcell.Color {
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
