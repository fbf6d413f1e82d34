package game

import (
	"time"

	"github.com/josephtungate/mesmerise/parameter"
	"github.com/josephtungate/mesmerise/symbol"
)

// RoundProfile is the mutable configuration and running state for the
// current round style. The active difficulty strategy adjusts it between
// rounds; the round machine adds to Score as the player answers.
type RoundProfile struct {
	// SequenceLength is how many symbols the challenge sequence holds.
	SequenceLength int

	// Catalog is the symbol set this game draws from.
	Catalog symbol.Catalog

	// UniqueSymbols is how many distinct symbols are in play.
	UniqueSymbols int

	// DisplayTime is the per-symbol presentation window.
	DisplayTime time.Duration

	// InputTime is the per-symbol recall deadline.
	InputTime time.Duration

	// Mapper interprets raw directional input.
	Mapper InputMapper

	// Score accumulates within a game; it only ever grows.
	Score uint32
}

// Clamp forces every parameter back inside its legal range. Strategies call
// it after adjusting, so a mis-tuned script cannot push a round outside
// what the hardware can present.
func (p *RoundProfile) Clamp() {
	p.SequenceLength = clampInt(p.SequenceLength, parameter.SequenceLengthMin, parameter.SequenceLengthMax)
	maxUnique := parameter.UniqueSymbolsMax
	if len(p.Catalog) < maxUnique {
		maxUnique = len(p.Catalog)
	}
	p.UniqueSymbols = clampInt(p.UniqueSymbols, parameter.UniqueSymbolsMin, maxUnique)
	p.DisplayTime = clampDuration(p.DisplayTime, parameter.DisplayTimeMin, parameter.DisplayTimeMax)
	p.InputTime = clampDuration(p.InputTime, parameter.InputTimeMin, parameter.InputTimeMax)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDuration(v, lo, hi time.Duration) time.Duration {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GameProfile is the top-level template for one game mode. A copy is taken
// per played session so repeated plays never corrupt the template.
type GameProfile struct {
	// Round is the starting round configuration.
	Round RoundProfile

	// Strategy adjusts the round profile between rounds.
	Strategy DifficultyStrategy

	// Progression enables the strategy; with it off every round plays at
	// the starting parameters.
	Progression bool

	// Rounds is the total round count, or parameter.RoundsUnbounded for
	// an endless game.
	Rounds int

	// Lives is the starting life count.
	Lives int

	// Title is shown on the mode select and during play.
	Title string
}
