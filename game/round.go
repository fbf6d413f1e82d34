package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/parameter"
	"github.com/josephtungate/mesmerise/score"
	"github.com/josephtungate/mesmerise/sequence"
	"github.com/josephtungate/mesmerise/symbol"
)

// RoundState enumerates the round state machine.
type RoundState uint8

const (
	StateStart RoundState = iota
	StateInitialising
	StateDisplayingSequence
	StateGettingInput
	StateComparingInput
	StateCorrectInput
	StateIncorrectInput
	StateTimedOut
	StateRoundWon
	StateRoundLost
	StateEnd
)

// String names a round state for diagnostics.
func (s RoundState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInitialising:
		return "initialising"
	case StateDisplayingSequence:
		return "displaying-sequence"
	case StateGettingInput:
		return "getting-input"
	case StateComparingInput:
		return "comparing-input"
	case StateCorrectInput:
		return "correct-input"
	case StateIncorrectInput:
		return "incorrect-input"
	case StateTimedOut:
		return "timed-out"
	case StateRoundWon:
		return "round-won"
	case StateRoundLost:
		return "round-lost"
	}
	return "end"
}

// Round runs one challenge/response cycle against a round profile. The only
// state it mutates outside itself is the profile's score, which grows
// monotonically.
type Round struct {
	profile *RoundProfile
	rng     *rand.Rand
	drv     display.Driver
	snd     audio.Sounder
	clk     Clock

	state     RoundState
	sequence  []*symbol.Symbol
	position  int
	latencies []time.Duration
	lastInput display.Input
	lastTaken time.Duration
	won       bool
}

// NewRound wires a round against its collaborators.
func NewRound(profile *RoundProfile, rng *rand.Rand, drv display.Driver, snd audio.Sounder, clk Clock) *Round {
	return &Round{
		profile: profile,
		rng:     rng,
		drv:     drv,
		snd:     snd,
		clk:     clk,
		state:   StateStart,
	}
}

// Run drives the state machine from START to END and reports whether the
// round was won.
func (r *Round) Run() bool {
	for r.state != StateEnd {
		r.step()
	}
	return r.won
}

// step advances the machine by one state.
func (r *Round) step() {
	switch r.state {
	case StateStart:
		r.state = StateInitialising

	case StateInitialising:
		chosen := sequence.ChooseRandomSymbols(r.rng, r.profile.Catalog, r.profile.UniqueSymbols)
		r.sequence = sequence.Generate(r.rng, chosen, r.profile.SequenceLength)
		r.position = 0
		r.latencies = r.latencies[:0]
		if len(r.sequence) == 0 {
			// Degenerate profile; nothing to challenge with.
			r.won = false
			r.state = StateEnd
			return
		}
		r.state = StateDisplayingSequence

	case StateDisplayingSequence:
		r.presentSequence()
		r.state = StateGettingInput

	case StateGettingInput:
		// Only directional edges answer; stray select presses keep the
		// wait alive with whatever deadline is left.
		deadline := r.profile.InputTime
		var waited time.Duration
		for {
			in, taken := r.drv.ReadInput(deadline - waited)
			waited += taken
			if in == display.InputNone || waited >= deadline && !in.IsDirection() {
				r.lastInput = display.InputNone
				r.state = StateTimedOut
				break
			}
			if !in.IsDirection() {
				continue
			}
			r.lastInput = in
			r.lastTaken = waited
			r.state = StateComparingInput
			break
		}

	case StateComparingInput:
		got := r.profile.Mapper.Map(r.lastInput)
		if got == r.sequence[r.position].Value {
			r.state = StateCorrectInput
		} else {
			r.state = StateIncorrectInput
		}

	case StateCorrectInput:
		r.snd.Play(audio.CueCorrect)
		r.profile.Score += score.InputTimeToScore(r.lastTaken)
		r.latencies = append(r.latencies, r.lastTaken)
		r.position++
		if r.position >= len(r.sequence) {
			r.state = StateRoundWon
		} else {
			r.state = StateGettingInput
		}

	case StateIncorrectInput, StateTimedOut:
		r.state = StateRoundLost

	case StateRoundWon:
		r.profile.Score += score.RoundBonus(score.MeanLatency(r.latencies), len(r.sequence))
		r.won = true
		r.snd.Play(audio.CueRoundWin)
		r.drv.SetBacklight(display.ColorGood)
		r.drv.Clear()
		r.drv.Print("ROUND CLEAR", 2, display.AlignCenter, display.ColorText)
		r.drv.Flush()
		r.clk.Sleep(parameter.RevealTime)
		r.state = StateEnd

	case StateRoundLost:
		r.won = false
		r.snd.Play(audio.CueWrong)
		r.revealExpected()
		r.state = StateEnd
	}
}

// presentSequence shows the countdown, each symbol with a blanking gap, and
// a second countdown before input opens.
func (r *Round) presentSequence() {
	r.drv.SetBacklight(display.ColorShow)
	r.countdown("WATCH")
	for _, sym := range r.sequence {
		r.drv.Clear()
		r.drv.DrawSymbol(sym, 0)
		r.drv.Flush()
		r.snd.Play(audio.CueShow)
		r.clk.Sleep(r.profile.DisplayTime)

		// Blank between symbols so a repeated symbol reads as two.
		r.drv.Clear()
		r.drv.Flush()
		r.clk.Sleep(parameter.SymbolGapTime)
	}
	r.countdown("REPEAT")
	r.drv.SetBacklight(display.ColorIdle)
	r.drv.Clear()
	r.drv.Flush()
}

// countdown ticks down before and after the presentation.
func (r *Round) countdown(caption string) {
	total := time.Duration(parameter.CountdownSteps) * parameter.CountdownStepTime
	for i := parameter.CountdownSteps; i > 0; i-- {
		r.drv.Clear()
		r.drv.Print(caption, 2, display.AlignCenter, display.ColorText)
		r.drv.Print(fmt.Sprintf("%d", i), 4, display.AlignCenter, display.ColorTitle)
		r.drv.DrawCountdown(time.Duration(i)*parameter.CountdownStepTime, total)
		r.drv.Flush()
		r.snd.Play(audio.CueTick)
		r.clk.Sleep(parameter.CountdownStepTime)
	}
}

// revealExpected shows the player what the machine wanted, distinguishing a
// timeout from a wrong press.
func (r *Round) revealExpected() {
	r.drv.SetBacklight(display.ColorBad)
	r.drv.Clear()
	if r.lastInput == display.InputNone {
		r.drv.Print("TOO SLOW", 2, display.AlignCenter, display.ColorText)
	} else {
		r.drv.Print("WRONG", 2, display.AlignCenter, display.ColorText)
	}
	r.drv.Print("EXPECTED", 3, display.AlignCenter, display.ColorDim)
	r.drv.DrawSymbol(r.sequence[r.position], 0)
	r.drv.Flush()
	r.clk.Sleep(parameter.RevealTime)
}
