package display

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/josephtungate/mesmerise/symbol"
)

// ScriptedInput is one canned button edge for the Script driver: the edge
// delivered and how long the player "took" to produce it.
type ScriptedInput struct {
	In    Input
	After time.Duration
}

// Script is a headless Driver fed from a canned input list. It records what
// the game asked it to render, so tests can assert on the interaction
// without a terminal.
type Script struct {
	inputs []ScriptedInput
	pos    int

	Cleared    int
	Printed    []string
	Symbols    []rune
	Backlights []colorful.Color
	Countdowns int
}

// NewScript builds a Script driver that will replay the given edges in
// order.
func NewScript(inputs ...ScriptedInput) *Script {
	return &Script{inputs: inputs}
}

func (s *Script) Clear() { s.Cleared++ }

func (s *Script) Print(text string, row int, align Align, c colorful.Color) {
	s.Printed = append(s.Printed, text)
}

func (s *Script) DrawSymbol(sym *symbol.Symbol, slot int) {
	if sym != nil {
		s.Symbols = append(s.Symbols, sym.Value)
	}
}

func (s *Script) DrawCountdown(remaining, total time.Duration) { s.Countdowns++ }

// ReadInput replays the next scripted edge. An edge slower than the
// deadline is consumed and reported as the timeout sentinel, the way a
// too-late press on hardware belongs to nobody. An exhausted script times
// out bounded waits; unbounded waits get InputBack so menu loops unwind
// instead of spinning.
func (s *Script) ReadInput(deadline time.Duration) (Input, time.Duration) {
	if s.pos >= len(s.inputs) {
		if deadline <= 0 {
			return InputBack, 0
		}
		return InputNone, deadline
	}
	next := s.inputs[s.pos]
	s.pos++
	if deadline > 0 && next.After > deadline {
		return InputNone, deadline
	}
	return next.In, next.After
}

func (s *Script) SetBacklight(c colorful.Color) {
	s.Backlights = append(s.Backlights, c)
}

func (s *Script) Flush() {}
