// Package display is the boundary to the display/button-matrix hardware.
// The game core only ever talks to the Driver interface; the terminal
// implementation stands in for the physical LCD, buttons and backlight.
package display

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/josephtungate/mesmerise/symbol"
)

// Input is one debounced button edge. InputNone is the timeout sentinel.
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputSelect
	InputBack
)

// String names an input for display and test diagnostics.
func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputSelect:
		return "select"
	case InputBack:
		return "back"
	}
	return "none"
}

// IsDirection reports whether the input is one of the four arrows.
func (in Input) IsDirection() bool {
	return in == InputUp || in == InputDown || in == InputLeft || in == InputRight
}

// Align positions printed text on its row.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Backlight and text colors.
var (
	ColorText  = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	ColorDim   = colorful.Color{R: 0.45, G: 0.45, B: 0.45}
	ColorIdle  = colorful.Color{R: 0.15, G: 0.25, B: 0.55}
	ColorShow  = colorful.Color{R: 0.75, G: 0.6, B: 0.1}
	ColorGood  = colorful.Color{R: 0.1, G: 0.6, B: 0.2}
	ColorBad   = colorful.Color{R: 0.65, G: 0.1, B: 0.1}
	ColorTitle = colorful.Color{R: 0.4, G: 0.7, B: 0.9}
)

// Driver is the display/input collaborator. All calls block; none mutate
// game state beyond their return values.
type Driver interface {
	// Clear blanks the screen, keeping the backlight frame.
	Clear()

	// Print renders a line of text at the given row with alignment and
	// color.
	Print(text string, row int, align Align, c colorful.Color)

	// DrawSymbol renders a symbol glyph at the given horizontal slot.
	DrawSymbol(sym *symbol.Symbol, slot int)

	// DrawCountdown renders a time-remaining indicator.
	DrawCountdown(remaining, total time.Duration)

	// ReadInput blocks for up to deadline waiting for a single debounced
	// button edge and returns it with the elapsed wait. On timeout it
	// returns InputNone and the full deadline. A deadline <= 0 blocks
	// until an edge arrives.
	ReadInput(deadline time.Duration) (Input, time.Duration)

	// SetBacklight tints the backlight.
	SetBacklight(c colorful.Color)

	// Flush pushes pending drawing to the device.
	Flush()
}
