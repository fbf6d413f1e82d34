package parameter

import "time"

// Sequence Bounds
const (
	// SequenceLengthMin is the shortest challenge sequence a round may use
	SequenceLengthMin = 4

	// SequenceLengthMax is the longest challenge sequence a round may use
	SequenceLengthMax = 15

	// UniqueSymbolsMin is the smallest working symbol subset drawn per round
	UniqueSymbolsMin = 2

	// UniqueSymbolsMax is the largest working symbol subset drawn per round
	UniqueSymbolsMax = 4
)

// Round Timing
const (
	// DisplayTimeMin is the shortest per-symbol presentation window
	DisplayTimeMin = 500 * time.Millisecond

	// DisplayTimeMax is the longest per-symbol presentation window
	DisplayTimeMax = 2500 * time.Millisecond

	// InputTimeMin is the shortest per-symbol recall deadline
	InputTimeMin = 500 * time.Millisecond

	// InputTimeMax is the longest per-symbol recall deadline
	InputTimeMax = 3 * time.Second

	// SymbolGapTime is the blanking gap between two presented symbols, so
	// identical consecutive symbols read as two presentations
	SymbolGapTime = 150 * time.Millisecond

	// CountdownSteps is the number of ticks counted before and after the
	// sequence presentation
	CountdownSteps = 3

	// CountdownStepTime is the duration of one countdown tick
	CountdownStepTime = 500 * time.Millisecond

	// RevealTime is how long the expected symbol is shown after a lost round
	RevealTime = 2 * time.Second
)

// Difficulty Stepping
const (
	// DifficultyTimeStep is the amount the randomized strategy shaves off a
	// timing dimension per increment
	DifficultyTimeStep = 100 * time.Millisecond
)

// Game Bounds
const (
	// RoundsUnbounded is the sentinel round count for endless games
	RoundsUnbounded = 0

	// RoundsMin is the smallest bounded round count
	RoundsMin = 1

	// RoundsMax is the largest bounded round count
	RoundsMax = 100

	// LivesMin is the smallest starting life count
	LivesMin = 1

	// LivesMax is the largest starting life count
	LivesMax = 10
)

// Scoring
const (
	// ScoreBase is awarded for any correct input regardless of latency
	ScoreBase = 100

	// ScoreFastBonus is added when the response lands within ScoreFastWindow
	ScoreFastBonus = 75

	// ScoreQuickBonus is added when the response lands within ScoreQuickWindow
	ScoreQuickBonus = 25

	// ScoreFastWindow is the response window for the fast bonus
	ScoreFastWindow = 250 * time.Millisecond

	// ScoreQuickWindow is the response window for the quick bonus
	ScoreQuickWindow = 500 * time.Millisecond

	// RoundBonusFastAverage is the per-symbol round bonus when the round's
	// mean latency stays under RoundBonusWindow
	RoundBonusFastAverage = 75

	// RoundBonusSlowAverage is the per-symbol round bonus otherwise
	RoundBonusSlowAverage = 50

	// RoundBonusWindow is the mean-latency threshold for the fast round bonus
	RoundBonusWindow = 500 * time.Millisecond

	// GameBonusPerRound is the per-round bonus awarded on a full clear
	GameBonusPerRound = 100
)

// Input Debounce
const (
	// DebounceTime is the guard interval after an accepted button edge;
	// edges inside it are contact chatter, not presses
	DebounceTime = 10 * time.Millisecond

	// InputPollTick is the idle sleep between input polls while waiting on
	// a deadline
	InputPollTick = time.Millisecond
)
