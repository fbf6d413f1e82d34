package game

import (
	"math/rand"
	"time"

	"github.com/josephtungate/mesmerise/parameter"
)

// DifficultyStrategy mutates the round profile between rounds. Apply runs
// before each round while progression is enabled; it must leave the profile
// inside its legal bounds.
type DifficultyStrategy interface {
	Apply(p *RoundProfile, round int)
}

// Adjustment is one scripted difficulty step: absolute replacement values
// for the round parameters, with zero meaning "leave unchanged".
type Adjustment struct {
	SequenceLength int
	UniqueSymbols  int
	DisplayTime    time.Duration
	InputTime      time.Duration
}

// Script is a deterministic strategy: a fixed table from round number to
// adjustment. Rounds without an entry are no-ops.
type Script map[int]Adjustment

func (s Script) Apply(p *RoundProfile, round int) {
	adj, ok := s[round]
	if !ok {
		return
	}
	if adj.SequenceLength != 0 {
		p.SequenceLength = adj.SequenceLength
	}
	if adj.UniqueSymbols != 0 {
		p.UniqueSymbols = adj.UniqueSymbols
	}
	if adj.DisplayTime != 0 {
		p.DisplayTime = adj.DisplayTime
	}
	if adj.InputTime != 0 {
		p.InputTime = adj.InputTime
	}
	p.Clamp()
}

// dimension indexes the four adjustable difficulty dimensions in their
// fixed fallthrough order.
type dimension uint8

const (
	dimSequenceLength dimension = iota
	dimUniqueSymbols
	dimDisplayTime
	dimInputTime
	dimCount
)

// Random raises difficulty one notch per invocation along a single randomly
// chosen dimension. A dimension without headroom falls through to the next
// in cyclic order; with every dimension at its limit the profile is left
// unchanged — difficulty is maximized, a stable terminal state.
type Random struct {
	Rand *rand.Rand
}

func (r *Random) Apply(p *RoundProfile, round int) {
	if round <= 1 {
		return
	}
	start := dimension(r.Rand.Intn(int(dimCount)))
	for i := dimension(0); i < dimCount; i++ {
		if raise(p, (start+i)%dimCount) {
			p.Clamp()
			return
		}
	}
}

// raise applies one increment along dim if it has headroom.
func raise(p *RoundProfile, dim dimension) bool {
	switch dim {
	case dimSequenceLength:
		if p.SequenceLength < parameter.SequenceLengthMax {
			p.SequenceLength++
			return true
		}
	case dimUniqueSymbols:
		maxUnique := parameter.UniqueSymbolsMax
		if len(p.Catalog) < maxUnique {
			maxUnique = len(p.Catalog)
		}
		if p.UniqueSymbols < maxUnique {
			p.UniqueSymbols++
			return true
		}
	case dimDisplayTime:
		if p.DisplayTime > parameter.DisplayTimeMin {
			p.DisplayTime -= parameter.DifficultyTimeStep
			return true
		}
	case dimInputTime:
		if p.InputTime > parameter.InputTimeMin {
			p.InputTime -= parameter.DifficultyTimeStep
			return true
		}
	}
	return false
}
