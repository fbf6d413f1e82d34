package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/sequence"
	"github.com/josephtungate/mesmerise/symbol"
)

// inputFor inverts DirectMapper: the button edge that answers a symbol
// value correctly.
func inputFor(value rune) display.Input {
	switch value {
	case symbol.ValueUp:
		return display.InputUp
	case symbol.ValueDown:
		return display.InputDown
	case symbol.ValueLeft:
		return display.InputLeft
	case symbol.ValueRight:
		return display.InputRight
	}
	return display.InputNone
}

// wrongInputFor picks any edge that answers a symbol value incorrectly.
func wrongInputFor(value rune) display.Input {
	for _, in := range []display.Input{display.InputUp, display.InputDown, display.InputLeft, display.InputRight} {
		if (DirectMapper{}).Map(in) != value {
			return in
		}
	}
	return display.InputNone
}

// expectedSequence replays the round's generator draws on an identically
// seeded stream to learn which sequence the round will present.
func expectedSequence(seed int64, p RoundProfile) []*symbol.Symbol {
	rng := rand.New(rand.NewSource(seed))
	chosen := sequence.ChooseRandomSymbols(rng, p.Catalog, p.UniqueSymbols)
	return sequence.Generate(rng, chosen, p.SequenceLength)
}

func practiceRound() RoundProfile {
	return RoundProfile{
		SequenceLength: 4,
		Catalog:        symbol.Arrows,
		UniqueSymbols:  2,
		DisplayTime:    1000 * time.Millisecond,
		InputTime:      2000 * time.Millisecond,
		Mapper:         DirectMapper{},
	}
}

func TestRoundAllCorrectFastInputs(t *testing.T) {
	const seed = 11
	p := practiceRound()
	seq := expectedSequence(seed, p)

	inputs := make([]display.ScriptedInput, len(seq))
	for i, sym := range seq {
		inputs[i] = display.ScriptedInput{In: inputFor(sym.Value), After: 200 * time.Millisecond}
	}
	drv := display.NewScript(inputs...)
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	won := NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if !won {
		t.Fatal("round should be won")
	}
	// 200 points per symbol at 200ms, plus the fast round bonus 75*4.
	if p.Score != 200*4+300 {
		t.Errorf("score = %d, want 1100", p.Score)
	}
	// Every sequence symbol was presented once.
	if len(drv.Symbols) != len(seq) {
		t.Errorf("presented %d symbols, want %d", len(drv.Symbols), len(seq))
	}
}

func TestRoundSlowAverageGetsSmallerBonus(t *testing.T) {
	const seed = 12
	p := practiceRound()
	seq := expectedSequence(seed, p)

	inputs := make([]display.ScriptedInput, len(seq))
	for i, sym := range seq {
		inputs[i] = display.ScriptedInput{In: inputFor(sym.Value), After: 600 * time.Millisecond}
	}
	drv := display.NewScript(inputs...)
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	won := NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if !won {
		t.Fatal("round should be won")
	}
	// 100 points per symbol at 600ms, plus the slow round bonus 50*4.
	if p.Score != 100*4+200 {
		t.Errorf("score = %d, want 600", p.Score)
	}
}

func TestRoundWrongInputOnThirdSymbol(t *testing.T) {
	const seed = 13
	p := practiceRound()
	seq := expectedSequence(seed, p)

	inputs := []display.ScriptedInput{
		{In: inputFor(seq[0].Value), After: 300 * time.Millisecond},
		{In: inputFor(seq[1].Value), After: 300 * time.Millisecond},
		{In: wrongInputFor(seq[2].Value), After: 300 * time.Millisecond},
	}
	drv := display.NewScript(inputs...)
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	won := NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if won {
		t.Fatal("round should be lost")
	}
	// Only the two correct answers scored: 125 each at 300ms, no bonus.
	if p.Score != 125*2 {
		t.Errorf("score = %d, want 250", p.Score)
	}
	// The expected symbol is revealed after the loss: the sequence
	// presentation plus one reveal draw.
	if len(drv.Symbols) != len(seq)+1 {
		t.Errorf("drew %d symbols, want %d (sequence + reveal)", len(drv.Symbols), len(seq)+1)
	}
	if drv.Symbols[len(drv.Symbols)-1] != seq[2].Value {
		t.Errorf("revealed %q, want expected symbol %q", drv.Symbols[len(drv.Symbols)-1], seq[2].Value)
	}
}

func TestRoundTimeoutLosesWithoutScoring(t *testing.T) {
	const seed = 14
	p := practiceRound()

	// The only input arrives after the deadline, so the wait times out.
	drv := display.NewScript(display.ScriptedInput{In: display.InputUp, After: 2500 * time.Millisecond})
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	won := NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if won {
		t.Fatal("timed-out round should be lost")
	}
	if p.Score != 0 {
		t.Errorf("score = %d, want 0", p.Score)
	}
}

func TestRoundScoreOnlyGrows(t *testing.T) {
	const seed = 15
	p := practiceRound()
	p.Score = 5000
	seq := expectedSequence(seed, p)

	inputs := []display.ScriptedInput{
		{In: wrongInputFor(seq[0].Value), After: 100 * time.Millisecond},
	}
	drv := display.NewScript(inputs...)
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if p.Score != 5000 {
		t.Errorf("lost round must not change the score: %d", p.Score)
	}
}

func TestRoundMirroredMapper(t *testing.T) {
	const seed = 16
	p := practiceRound()
	p.Mapper = MirroredMapper{}
	seq := expectedSequence(seed, p)

	// Answer with the opposite direction of every expected value.
	inputs := make([]display.ScriptedInput, len(seq))
	for i, sym := range seq {
		inputs[i] = display.ScriptedInput{In: inputFor((MirroredMapper{}).Map(inputFor(sym.Value))), After: 200 * time.Millisecond}
	}
	drv := display.NewScript(inputs...)
	clk := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	won := NewRound(&p, rand.New(rand.NewSource(seed)), drv, audio.Silent{}, clk).Run()
	if !won {
		t.Error("mirrored answers should win the round")
	}
}
