package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalkit/internal/expand"
	"github.com/dshills/modalkit/internal/indicator"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/vim"
	"github.com/dshills/modalkit/internal/textbuf"
	"github.com/dshills/modalkit/internal/transform"
)

const transformTimeout = 30 * time.Second

type options struct {
	ShortcutsPath   string
	TransformScript string
}

// host owns the buffer, the input engine, and the screen loop. All
// buffer mutation happens on the event loop goroutine; transforms run
// on workers and deliver results back through the tcell event queue.
type host struct {
	engine        *vim.Engine
	buf           *textbuf.Buffer
	shortcuts     *expand.Table
	transforms    *transform.Registry
	transformName string
	status        string
}

func newHost(opts options) (*host, error) {
	h := &host{
		engine:     vim.NewEngine(),
		buf:        textbuf.New(""),
		transforms: transform.NewRegistry(),
	}
	h.engine.Enable()

	h.shortcuts = expand.NewTable(expand.WithPath(opts.ShortcutsPath))
	if opts.ShortcutsPath != "" {
		if err := h.shortcuts.Load(); err != nil {
			return nil, fmt.Errorf("load shortcuts: %w", err)
		}
	}

	if opts.TransformScript != "" {
		script, err := os.ReadFile(opts.TransformScript)
		if err != nil {
			return nil, fmt.Errorf("read transform script: %w", err)
		}
		h.transforms.Register(transform.NewLua("script", string(script)))
	}
	h.transforms.Register(transform.NewAnthropic(os.Getenv("ANTHROPIC_API_KEY")))
	h.transforms.Register(transform.NewOpenAI(os.Getenv("OPENAI_API_KEY")))
	h.transforms.Register(transform.NewGemini(os.Getenv("GEMINI_API_KEY")))
	h.transforms.Register(transform.NewSpeech())

	for _, name := range h.transforms.Names() {
		if p, err := h.transforms.Get(name); err == nil && p.Ready() {
			h.transformName = name
			break
		}
	}

	return h, nil
}

// transformDone carries a worker result back onto the event loop.
type transformDone struct {
	tcell.EventTime
	text string
	err  error
}

// Run drives the screen until the user quits.
func (h *host) Run(screen tcell.Screen) error {
	ind := indicator.New(screen)
	h.draw(screen, ind)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *transformDone:
			if ev.err != nil {
				h.status = fmt.Sprintf("transform failed: %v", ev.err)
			} else {
				h.buf.SetText(ev.text)
				h.status = "transform applied"
			}

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlQ:
				return nil
			case tcell.KeyCtrlT:
				h.startTransform(screen)
			default:
				h.handleKey(ev)
			}

		case nil:
			return nil
		}

		h.draw(screen, ind)
	}
}

func (h *host) handleKey(ev *tcell.EventKey) {
	kev, ok := convertKey(ev)
	if !ok {
		return
	}

	if h.engine.ProcessKey(kev, h.buf) {
		return
	}

	// Unconsumed keys are text input while inserting.
	if h.engine.Enabled() && h.engine.Mode() != mode.Insert {
		return
	}

	switch kev.Key {
	case key.KeyRune:
		if kev.Rune == ' ' {
			h.expandBeforeCursor()
		}
		h.buf.InsertAtCursor(string(kev.Rune))
	case key.KeyEnter:
		h.buf.InsertAtCursor("\n")
	case key.KeyTab:
		h.buf.InsertAtCursor("\t")
	case key.KeyBackspace:
		at := h.buf.CursorOffset()
		if at > 0 {
			h.buf.DeleteRange(vim.Range{Start: at - 1, End: at})
		}
	case key.KeyDelete:
		at := h.buf.CursorOffset()
		if at < h.buf.Len() {
			h.buf.DeleteRange(vim.Range{Start: at, End: at + 1})
		}
	}
}

// expandBeforeCursor replaces a shortcut trigger ending at the cursor
// with its expansion.
func (h *host) expandBeforeCursor() {
	window, at := h.buf.TextWindow(256)
	runes := []rune(window)
	exp, ok := h.shortcuts.LookupSuffix(string(runes[:at]))
	if !ok {
		return
	}

	cursor := h.buf.CursorOffset()
	h.buf.DeleteRange(vim.Range{Start: cursor - exp.Matched, End: cursor})
	h.buf.InsertAtCursor(exp.Text)
}

func (h *host) startTransform(screen tcell.Screen) {
	if h.transformName == "" {
		h.status = "no transform provider is ready"
		return
	}

	h.status = "transforming via " + h.transformName
	input := h.buf.String()
	name := h.transformName

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), transformTimeout)
		defer cancel()

		out, err := h.transforms.Run(ctx, name, input)
		done := &transformDone{text: out, err: err}
		done.SetEventNow()
		_ = screen.PostEvent(done) // best-effort; queue may be full
	}()
}

func (h *host) draw(screen tcell.Screen, ind *indicator.Indicator) {
	screen.Clear()
	width, height := screen.Size()
	if height < 2 {
		screen.Show()
		return
	}

	for y, line := range h.buf.Lines() {
		if y >= height-1 {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}

	ind.Draw(0, height-1, h.engine.Mode(), h.engine.PendingKeys())
	drawText(screen, width-len(h.status), height-1, h.status)

	line, col := h.buf.CursorLineCol()
	if line < height-1 {
		screen.ShowCursor(col, line)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for _, r := range text {
		if x >= 0 {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault.Dim(true))
		}
		x++
	}
}

// convertKey maps a tcell key event to the engine's event type.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	default:
		return key.Event{}, false
	}
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
