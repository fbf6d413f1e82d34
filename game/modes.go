package game

import (
	"math/rand"
	"time"

	"github.com/josephtungate/mesmerise/parameter"
	"github.com/josephtungate/mesmerise/symbol"
)

// Game-mode constructors. Each returns a ready-to-run template; RunGame
// copies it per session, so one template serves every play of that mode.

// NewPracticeProfile is an endless warm-up: randomized progression, direct
// input, generous lives.
func NewPracticeProfile(rng *rand.Rand) *GameProfile {
	return &GameProfile{
		Round: RoundProfile{
			SequenceLength: 4,
			Catalog:        symbol.Arrows,
			UniqueSymbols:  2,
			DisplayTime:    1000 * time.Millisecond,
			InputTime:      2000 * time.Millisecond,
			Mapper:         DirectMapper{},
		},
		Strategy:    &Random{Rand: rng},
		Progression: true,
		Rounds:      parameter.RoundsUnbounded,
		Lives:       3,
		Title:       "PRACTICE",
	}
}

// NewEasyProfile is a gentle ten-round ramp.
func NewEasyProfile() *GameProfile {
	return &GameProfile{
		Round: RoundProfile{
			SequenceLength: 4,
			Catalog:        symbol.Arrows,
			UniqueSymbols:  2,
			DisplayTime:    1200 * time.Millisecond,
			InputTime:      2500 * time.Millisecond,
			Mapper:         DirectMapper{},
		},
		Strategy: Script{
			3: {DisplayTime: 1000 * time.Millisecond},
			5: {SequenceLength: 5},
			7: {UniqueSymbols: 3},
			9: {DisplayTime: 900 * time.Millisecond},
		},
		Progression: true,
		Rounds:      10,
		Lives:       3,
		Title:       "EASY",
	}
}

// NewMediumProfile tightens timing and widens the symbol set over fifteen
// rounds.
func NewMediumProfile() *GameProfile {
	return &GameProfile{
		Round: RoundProfile{
			SequenceLength: 5,
			Catalog:        symbol.Arrows,
			UniqueSymbols:  3,
			DisplayTime:    1000 * time.Millisecond,
			InputTime:      2000 * time.Millisecond,
			Mapper:         DirectMapper{},
		},
		Strategy: Script{
			3:  {DisplayTime: 900 * time.Millisecond},
			5:  {SequenceLength: 6, DisplayTime: 850 * time.Millisecond},
			8:  {UniqueSymbols: 4},
			10: {InputTime: 1500 * time.Millisecond},
			13: {SequenceLength: 8, DisplayTime: 700 * time.Millisecond},
		},
		Progression: true,
		Rounds:      15,
		Lives:       2,
		Title:       "MEDIUM",
	}
}

// NewHardProfile starts tight and keeps squeezing across twenty rounds.
func NewHardProfile() *GameProfile {
	return &GameProfile{
		Round: RoundProfile{
			SequenceLength: 6,
			Catalog:        symbol.Arrows,
			UniqueSymbols:  4,
			DisplayTime:    800 * time.Millisecond,
			InputTime:      1500 * time.Millisecond,
			Mapper:         DirectMapper{},
		},
		Strategy: Script{
			3:  {DisplayTime: 700 * time.Millisecond},
			6:  {SequenceLength: 8},
			9:  {InputTime: 1200 * time.Millisecond},
			12: {SequenceLength: 10, DisplayTime: 600 * time.Millisecond},
			15: {InputTime: 1000 * time.Millisecond},
			18: {SequenceLength: 12, DisplayTime: 500 * time.Millisecond},
		},
		Progression: true,
		Rounds:      20,
		Lives:       1,
		Title:       "HARD",
	}
}

// NewMirrorProfile is the practice ramp with every direction reversed.
func NewMirrorProfile(rng *rand.Rand) *GameProfile {
	p := NewPracticeProfile(rng)
	p.Round.Mapper = MirroredMapper{}
	p.Lives = 2
	p.Title = "MIRROR"
	return p
}
