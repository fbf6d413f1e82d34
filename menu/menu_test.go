package menu

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/eeprom"
	"github.com/josephtungate/mesmerise/game"
	"github.com/josephtungate/mesmerise/parameter"
)

func newTestMenu(drv display.Driver) (*Menu, *eeprom.Store) {
	store := eeprom.NewStore(eeprom.NewMemDevice(parameter.StorageFootprint))
	if err := store.InitialiseTable(); err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewSource(1))
	clk := game.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	session := game.NewSession(drv, audio.Silent{}, clk, rng, store)
	return New(drv, audio.Silent{}, store, session, rng), store
}

func TestMenuQuitViaWrapAround(t *testing.T) {
	// Up from the first entry wraps to QUIT; select ends the loop.
	drv := display.NewScript(
		display.ScriptedInput{In: display.InputUp},
		display.ScriptedInput{In: display.InputSelect},
	)
	m, _ := newTestMenu(drv)
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestMenuBackQuits(t *testing.T) {
	drv := display.NewScript(display.ScriptedInput{In: display.InputBack})
	m, _ := newTestMenu(drv)
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestLeaderboardRendersTable(t *testing.T) {
	inputs := []display.ScriptedInput{}
	for i := 0; i < 5; i++ {
		inputs = append(inputs, display.ScriptedInput{In: display.InputDown})
	}
	inputs = append(inputs,
		display.ScriptedInput{In: display.InputSelect}, // open leaderboard
		display.ScriptedInput{In: display.InputSelect}, // dismiss it
		display.ScriptedInput{In: display.InputBack},   // quit
	)
	drv := display.NewScript(inputs...)
	m, store := newTestMenu(drv)
	if _, err := store.AddHighScore(eeprom.NewHighScore(4321, "JOE")); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	found := false
	for _, line := range drv.Printed {
		if strings.Contains(line, "JOE") && strings.Contains(line, "4321") {
			found = true
		}
	}
	if !found {
		t.Errorf("leaderboard never rendered the JOE/4321 record; printed: %q", drv.Printed)
	}
}

func TestResetScoresNeedsConfirmation(t *testing.T) {
	inputs := []display.ScriptedInput{}
	for i := 0; i < 6; i++ {
		inputs = append(inputs, display.ScriptedInput{In: display.InputDown})
	}
	inputs = append(inputs,
		display.ScriptedInput{In: display.InputSelect}, // open reset
		display.ScriptedInput{In: display.InputBack},   // decline
		display.ScriptedInput{In: display.InputBack},   // quit
	)
	drv := display.NewScript(inputs...)
	m, store := newTestMenu(drv)
	if _, err := store.AddHighScore(eeprom.NewHighScore(4321, "JOE")); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := store.ReadHighScoreTable()[0].Score; got != 4321 {
		t.Errorf("declined reset must keep the table; top = %d", got)
	}
}

func TestResetScoresConfirmed(t *testing.T) {
	inputs := []display.ScriptedInput{}
	for i := 0; i < 6; i++ {
		inputs = append(inputs, display.ScriptedInput{In: display.InputDown})
	}
	inputs = append(inputs,
		display.ScriptedInput{In: display.InputSelect}, // open reset
		display.ScriptedInput{In: display.InputSelect}, // confirm
		display.ScriptedInput{In: display.InputBack},   // quit
	)
	drv := display.NewScript(inputs...)
	m, store := newTestMenu(drv)
	if _, err := store.AddHighScore(eeprom.NewHighScore(4321, "JOE")); err != nil {
		t.Fatal(err)
	}
	if err := m.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := store.ReadHighScoreTable()[0].Score; got != 1000 {
		t.Errorf("confirmed reset should restore the dummy ladder; top = %d", got)
	}
}

func TestReadAliasWheel(t *testing.T) {
	drv := display.NewScript(
		display.ScriptedInput{In: display.InputUp},     // first wheel: A -> B
		display.ScriptedInput{In: display.InputRight},  // move to second wheel
		display.ScriptedInput{In: display.InputUp},     // A -> B
		display.ScriptedInput{In: display.InputUp},     // B -> C
		display.ScriptedInput{In: display.InputSelect}, // confirm
	)
	m, _ := newTestMenu(drv)
	if got := m.readAlias(999); got != "BCA" {
		t.Errorf("alias = %q, want BCA", got)
	}
}
