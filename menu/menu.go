// Package menu is the navigation shell around the game: mode select,
// leaderboard viewer, alias entry and the explicit score-table reset.
package menu

import (
	"fmt"
	"math/rand"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/eeprom"
	"github.com/josephtungate/mesmerise/game"
	"github.com/josephtungate/mesmerise/parameter"
)

// entry is one selectable menu row.
type entry struct {
	label  string
	action func(m *Menu) (quit bool, err error)
}

// Menu drives the top-level navigation loop.
type Menu struct {
	drv     display.Driver
	snd     audio.Sounder
	store   *eeprom.Store
	session *game.Session
	rng     *rand.Rand

	entries  []entry
	selected int
}

// New builds the menu and wires alias entry into the session.
func New(drv display.Driver, snd audio.Sounder, store *eeprom.Store, session *game.Session, rng *rand.Rand) *Menu {
	m := &Menu{
		drv:     drv,
		snd:     snd,
		store:   store,
		session: session,
		rng:     rng,
	}
	session.PromptAlias = m.readAlias
	m.entries = []entry{
		{"PRACTICE", func(m *Menu) (bool, error) { return false, m.play(game.NewPracticeProfile(m.rng)) }},
		{"EASY", func(m *Menu) (bool, error) { return false, m.play(game.NewEasyProfile()) }},
		{"MEDIUM", func(m *Menu) (bool, error) { return false, m.play(game.NewMediumProfile()) }},
		{"HARD", func(m *Menu) (bool, error) { return false, m.play(game.NewHardProfile()) }},
		{"MIRROR", func(m *Menu) (bool, error) { return false, m.play(game.NewMirrorProfile(m.rng)) }},
		{"HIGH SCORES", func(m *Menu) (bool, error) { m.showLeaderboard(); return false, nil }},
		{"RESET SCORES", func(m *Menu) (bool, error) { return false, m.resetScores() }},
		{"QUIT", func(m *Menu) (bool, error) { return true, nil }},
	}
	return m
}

// Run loops the menu until the player quits.
func (m *Menu) Run() error {
	for {
		m.draw()
		in, _ := m.drv.ReadInput(0)
		switch in {
		case display.InputUp:
			m.selected = (m.selected + len(m.entries) - 1) % len(m.entries)
		case display.InputDown:
			m.selected = (m.selected + 1) % len(m.entries)
		case display.InputSelect:
			m.snd.Play(audio.CueTick)
			quit, err := m.entries[m.selected].action(m)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case display.InputBack:
			return nil
		}
	}
}

// draw renders the title and the entry list.
func (m *Menu) draw() {
	m.drv.SetBacklight(display.ColorIdle)
	m.drv.Clear()
	m.drv.Print("MESMERISE", 1, display.AlignCenter, display.ColorTitle)
	for i, e := range m.entries {
		c := display.ColorDim
		label := e.label
		if i == m.selected {
			c = display.ColorText
			label = "> " + label + " <"
		}
		m.drv.Print(label, 3+i, display.AlignCenter, c)
	}
	m.drv.Flush()
}

// play runs one game from a mode template and returns to the menu.
func (m *Menu) play(template *game.GameProfile) error {
	_, err := m.session.RunGame(template)
	return err
}

// showLeaderboard renders the persisted table until any press.
func (m *Menu) showLeaderboard() {
	m.drv.SetBacklight(display.ColorTitle)
	m.drv.Clear()
	m.drv.Print("HIGH SCORES", 1, display.AlignCenter, display.ColorTitle)
	table := m.store.ReadHighScoreTable()
	for i, e := range table {
		line := fmt.Sprintf("%2d  %s  %6d", i+1, e.AliasString(), e.Score)
		m.drv.Print(line, 3+i, display.AlignCenter, display.ColorText)
	}
	m.drv.Flush()
	m.drv.ReadInput(0)
}

// resetScores asks for confirmation before re-initialising the table. The
// reset is only ever user-triggered.
func (m *Menu) resetScores() error {
	m.drv.SetBacklight(display.ColorBad)
	m.drv.Clear()
	m.drv.Print("RESET ALL SCORES?", 2, display.AlignCenter, display.ColorText)
	m.drv.Print("SELECT = YES   BACK = NO", 4, display.AlignCenter, display.ColorDim)
	m.drv.Flush()
	in, _ := m.drv.ReadInput(0)
	if in != display.InputSelect {
		return nil
	}
	if err := m.store.InitialiseTable(); err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	m.snd.Play(audio.CueCorrect)
	return nil
}

// aliasCharset is the character wheel for alias entry.
const aliasCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"

// readAlias lets the player pick a three-character alias the hardware way:
// up/down spins the current wheel, left/right moves between wheels, select
// confirms.
func (m *Menu) readAlias(finalScore uint32) string {
	wheels := make([]int, parameter.AliasLength)
	cursor := 0
	for {
		m.drv.SetBacklight(display.ColorGood)
		m.drv.Clear()
		m.drv.Print("NEW HIGH SCORE!", 1, display.AlignCenter, display.ColorTitle)
		m.drv.Print(fmt.Sprintf("%d", finalScore), 2, display.AlignCenter, display.ColorText)
		m.drv.Print("ENTER YOUR ALIAS", 4, display.AlignCenter, display.ColorDim)
		alias := make([]byte, parameter.AliasLength)
		marker := make([]byte, parameter.AliasLength)
		for i, w := range wheels {
			alias[i] = aliasCharset[w]
			if i == cursor {
				marker[i] = '^'
			} else {
				marker[i] = ' '
			}
		}
		m.drv.Print(string(alias), 6, display.AlignCenter, display.ColorText)
		m.drv.Print(string(marker), 7, display.AlignCenter, display.ColorTitle)
		m.drv.Flush()

		in, _ := m.drv.ReadInput(0)
		switch in {
		case display.InputUp:
			wheels[cursor] = (wheels[cursor] + 1) % len(aliasCharset)
		case display.InputDown:
			wheels[cursor] = (wheels[cursor] + len(aliasCharset) - 1) % len(aliasCharset)
		case display.InputLeft:
			cursor = (cursor + parameter.AliasLength - 1) % parameter.AliasLength
		case display.InputRight:
			cursor = (cursor + 1) % parameter.AliasLength
		case display.InputSelect:
			return string(alias)
		case display.InputBack:
			return m.session.DefaultAlias
		}
	}
}
