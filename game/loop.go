package game

import (
	"fmt"
	"math/rand"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/eeprom"
	"github.com/josephtungate/mesmerise/parameter"
	"github.com/josephtungate/mesmerise/score"
)

// Outcome summarizes one completed game.
type Outcome struct {
	// Won is true when every round was cleared without exhausting lives.
	Won bool

	// Score is the final aggregated score.
	Score uint32

	// RoundsPlayed counts rounds actually run.
	RoundsPlayed int

	// HighScore is true when the score entered the table.
	HighScore bool
}

// Session owns the collaborators a game needs: display, sound, clock,
// generator and the persistent store. One session serves many games.
type Session struct {
	drv   display.Driver
	snd   audio.Sounder
	clk   Clock
	rng   *rand.Rand
	store *eeprom.Store

	// PromptAlias asks the player for a three-character alias after a
	// qualifying score. Left nil, qualifying scores are recorded under
	// DefaultAlias.
	PromptAlias func(finalScore uint32) string

	// DefaultAlias is used when no prompt is wired.
	DefaultAlias string
}

// NewSession builds a session around its collaborators.
func NewSession(drv display.Driver, snd audio.Sounder, clk Clock, rng *rand.Rand, store *eeprom.Store) *Session {
	return &Session{
		drv:          drv,
		snd:          snd,
		clk:          clk,
		rng:          rng,
		store:        store,
		DefaultAlias: "AAA",
	}
}

// RunGame plays one full game from a mode template. The template itself is
// never touched: the session works on a copy, so repeated plays always
// start from the mode's original parameters. At exit the final score is
// checked against the high-score table and a fresh seed is persisted.
func (s *Session) RunGame(template *GameProfile) (Outcome, error) {
	profile := *template
	profile.Round.Clamp()
	lives := clampInt(profile.Lives, parameter.LivesMin, parameter.LivesMax)

	var out Outcome
	fullClear := false
	for round := 1; ; round++ {
		if profile.Rounds != parameter.RoundsUnbounded && round > profile.Rounds {
			fullClear = true
			break
		}
		if profile.Progression && profile.Strategy != nil {
			profile.Strategy.Apply(&profile.Round, round)
		}

		s.showRoundBanner(&profile, round, lives)
		won := NewRound(&profile.Round, s.rng, s.drv, s.snd, s.clk).Run()
		out.RoundsPlayed++
		if !won {
			lives--
			if lives <= 0 {
				break
			}
		}
	}

	if fullClear {
		profile.Round.Score += score.GameBonus(profile.Rounds)
	}
	out.Won = fullClear
	out.Score = profile.Round.Score

	if err := s.recordGame(&out); err != nil {
		return out, err
	}
	return out, nil
}

// showRoundBanner announces the upcoming round.
func (s *Session) showRoundBanner(profile *GameProfile, round, lives int) {
	s.drv.SetBacklight(display.ColorIdle)
	s.drv.Clear()
	s.drv.Print(profile.Title, 1, display.AlignCenter, display.ColorTitle)
	if profile.Rounds == parameter.RoundsUnbounded {
		s.drv.Print(fmt.Sprintf("ROUND %d", round), 3, display.AlignCenter, display.ColorText)
	} else {
		s.drv.Print(fmt.Sprintf("ROUND %d/%d", round, profile.Rounds), 3, display.AlignCenter, display.ColorText)
	}
	s.drv.Print(fmt.Sprintf("LIVES %d", lives), 4, display.AlignCenter, display.ColorText)
	s.drv.Print(fmt.Sprintf("SCORE %d", profile.Round.Score), 5, display.AlignCenter, display.ColorDim)
	s.drv.Flush()
	s.clk.Sleep(parameter.CountdownStepTime)
}

// recordGame closes out a game: outcome cue and banner, high-score insert
// when the score qualifies, and a freshly drawn seed so the next power
// cycle plays different sequences.
func (s *Session) recordGame(out *Outcome) error {
	if out.Won {
		s.snd.Play(audio.CueGameWin)
		s.drv.SetBacklight(display.ColorGood)
		s.drv.Clear()
		s.drv.Print("YOU WIN!", 2, display.AlignCenter, display.ColorText)
	} else {
		s.snd.Play(audio.CueGameLose)
		s.drv.SetBacklight(display.ColorBad)
		s.drv.Clear()
		s.drv.Print("GAME OVER", 2, display.AlignCenter, display.ColorText)
	}
	s.drv.Print(fmt.Sprintf("SCORE %d", out.Score), 4, display.AlignCenter, display.ColorText)
	s.drv.Flush()
	s.clk.Sleep(parameter.RevealTime)

	if s.store.IsHighScore(out.Score) {
		alias := s.DefaultAlias
		if s.PromptAlias != nil {
			alias = s.PromptAlias(out.Score)
		}
		inserted, err := s.store.AddHighScore(eeprom.NewHighScore(out.Score, alias))
		if err != nil {
			return fmt.Errorf("record high score: %w", err)
		}
		out.HighScore = inserted
	}

	if err := s.store.WriteSeed(s.rng.Uint32()); err != nil {
		return fmt.Errorf("persist seed: %w", err)
	}
	return nil
}
