package game

import (
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/symbol"
)

// InputMapper turns a raw directional button edge into the symbol value the
// player meant. The mirror game mode swaps every direction for its
// opposite.
type InputMapper interface {
	Map(in display.Input) rune
}

// DirectMapper maps each direction to its own arrow value.
type DirectMapper struct{}

func (DirectMapper) Map(in display.Input) rune {
	switch in {
	case display.InputUp:
		return symbol.ValueUp
	case display.InputDown:
		return symbol.ValueDown
	case display.InputLeft:
		return symbol.ValueLeft
	case display.InputRight:
		return symbol.ValueRight
	}
	return 0
}

// MirroredMapper maps each direction to its opposite arrow value.
type MirroredMapper struct{}

func (MirroredMapper) Map(in display.Input) rune {
	switch in {
	case display.InputUp:
		return symbol.ValueDown
	case display.InputDown:
		return symbol.ValueUp
	case display.InputLeft:
		return symbol.ValueRight
	case display.InputRight:
		return symbol.ValueLeft
	}
	return 0
}
