package display

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/josephtungate/mesmerise/parameter"
	"github.com/josephtungate/mesmerise/symbol"
)

// glyphRows is the glyph bitmap height. Each glyph pixel is drawn two cells
// wide so the 8x8 bitmaps come out roughly square.
const glyphRows = 8

// Terminal drives a tcell screen as the stand-in for the hardware display
// and button matrix. Button edges are debounced the way the physical matrix
// reader is: edges inside the guard interval after an accepted press are
// dropped as contact chatter.
type Terminal struct {
	screen    tcell.Screen
	backlight tcell.Color
	lastEdge  time.Time
}

// NewTerminal wraps an initialized tcell screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:    screen,
		backlight: toTcell(ColorIdle),
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Clear blanks the drawing area and repaints the backlight frame.
func (t *Terminal) Clear() {
	t.screen.Clear()
	t.drawFrame()
}

// drawFrame paints the outer border in the backlight color.
func (t *Terminal) drawFrame() {
	w, h := t.screen.Size()
	style := tcell.StyleDefault.Background(t.backlight)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
		t.screen.SetContent(x, h-1, ' ', nil, style)
	}
	for y := 0; y < h; y++ {
		t.screen.SetContent(0, y, ' ', nil, style)
		t.screen.SetContent(w-1, y, ' ', nil, style)
	}
}

// Print renders one line of text.
func (t *Terminal) Print(text string, row int, align Align, c colorful.Color) {
	w, _ := t.screen.Size()
	var x int
	switch align {
	case AlignCenter:
		x = (w - len(text)) / 2
	case AlignRight:
		x = w - len(text) - 2
	default:
		x = 2
	}
	style := tcell.StyleDefault.Foreground(toTcell(c))
	for i, r := range text {
		t.screen.SetContent(x+i, row, r, nil, style)
	}
}

// DrawSymbol renders a symbol's 8x8 bitmap at a horizontal slot, two cells
// per glyph pixel.
func (t *Terminal) DrawSymbol(sym *symbol.Symbol, slot int) {
	if sym == nil {
		return
	}
	w, h := t.screen.Size()
	cellW := glyphRows * 2
	x0 := (w-cellW)/2 + slot*(cellW+2)
	y0 := (h - glyphRows) / 2
	style := tcell.StyleDefault.Foreground(toTcell(ColorText))
	bitmap := sym.Bitmap()
	for row := 0; row < glyphRows; row++ {
		for col := 0; col < 8; col++ {
			if bitmap[row]&(0x80>>col) == 0 {
				continue
			}
			t.screen.SetContent(x0+col*2, y0+row, '█', nil, style)
			t.screen.SetContent(x0+col*2+1, y0+row, '█', nil, style)
		}
	}
}

// DrawCountdown renders a shrinking bar along the bottom of the drawing
// area, proportional to the time remaining.
func (t *Terminal) DrawCountdown(remaining, total time.Duration) {
	w, h := t.screen.Size()
	inner := w - 4
	if inner < 1 || total <= 0 {
		return
	}
	if remaining < 0 {
		remaining = 0
	}
	filled := int(int64(inner) * int64(remaining) / int64(total))
	style := tcell.StyleDefault.Foreground(toTcell(ColorDim))
	for x := 0; x < inner; x++ {
		r := ' '
		if x < filled {
			r = '▬'
		}
		t.screen.SetContent(2+x, h-2, r, nil, style)
	}
}

// ReadInput polls for a single debounced button edge until the deadline.
// The wait is a deliberate poll loop against the monotonic clock rather
// than a blocking read, matching the cadence of the hardware matrix
// scanner.
func (t *Terminal) ReadInput(deadline time.Duration) (Input, time.Duration) {
	start := time.Now()
	for {
		elapsed := time.Since(start)
		if deadline > 0 && elapsed >= deadline {
			return InputNone, deadline
		}
		for t.screen.HasPendingEvent() {
			ev := t.screen.PollEvent()
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			in := mapKey(key)
			if in == InputNone {
				continue
			}
			now := time.Now()
			if now.Sub(t.lastEdge) < parameter.DebounceTime {
				continue
			}
			t.lastEdge = now
			return in, time.Since(start)
		}
		time.Sleep(parameter.InputPollTick)
	}
}

// mapKey converts a key event to a button edge.
func mapKey(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return InputUp
	case tcell.KeyDown:
		return InputDown
	case tcell.KeyLeft:
		return InputLeft
	case tcell.KeyRight:
		return InputRight
	case tcell.KeyEnter:
		return InputSelect
	case tcell.KeyEscape:
		return InputBack
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return InputSelect
		case 'k':
			return InputUp
		case 'j':
			return InputDown
		case 'h':
			return InputLeft
		case 'l':
			return InputRight
		}
	}
	return InputNone
}

// SetBacklight tints the frame.
func (t *Terminal) SetBacklight(c colorful.Color) {
	t.backlight = toTcell(c)
	t.drawFrame()
}

// Flush pushes pending drawing to the screen.
func (t *Terminal) Flush() {
	t.screen.Show()
}
