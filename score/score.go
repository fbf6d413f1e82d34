// Package score maps response latencies and round shapes to points. All
// functions are pure; the caller owns score accumulation.
package score

import (
	"time"

	"github.com/josephtungate/mesmerise/parameter"
)

// InputTimeToScore returns the points for one correct input. Every correct
// input earns the base; speed bonuses stack on top, so the fastest responses
// earn base + fast + quick.
func InputTimeToScore(latency time.Duration) uint32 {
	points := uint32(parameter.ScoreBase)
	if latency <= parameter.ScoreFastWindow {
		points += parameter.ScoreFastBonus
	}
	if latency <= parameter.ScoreQuickWindow {
		points += parameter.ScoreQuickBonus
	}
	return points
}

// RoundBonus returns the completion bonus for a won round: a per-symbol
// award graded by whether the mean latency beat the fast window.
func RoundBonus(meanLatency time.Duration, sequenceLength int) uint32 {
	if sequenceLength <= 0 {
		return 0
	}
	per := uint32(parameter.RoundBonusSlowAverage)
	if meanLatency < parameter.RoundBonusWindow {
		per = parameter.RoundBonusFastAverage
	}
	return per * uint32(sequenceLength)
}

// GameBonus returns the full-clear bonus for winning every round of a
// bounded game. rounds is the actual number of rounds played, never the
// unbounded sentinel.
func GameBonus(rounds int) uint32 {
	if rounds <= 0 {
		return 0
	}
	return parameter.GameBonusPerRound * uint32(rounds)
}

// MeanLatency averages the recorded per-symbol latencies of a round.
func MeanLatency(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	var total time.Duration
	for _, l := range latencies {
		total += l
	}
	return total / time.Duration(len(latencies))
}
