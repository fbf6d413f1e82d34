// Command mesmerise runs the memory-recall game in a terminal, standing in
// for the handheld hardware: arrow keys are the button matrix, the screen
// border is the backlight, and an image file plays the part of the EEPROM.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/josephtungate/mesmerise/audio"
	"github.com/josephtungate/mesmerise/config"
	"github.com/josephtungate/mesmerise/display"
	"github.com/josephtungate/mesmerise/eeprom"
	"github.com/josephtungate/mesmerise/game"
	"github.com/josephtungate/mesmerise/menu"
	"github.com/josephtungate/mesmerise/parameter"
)

func main() {
	configPath := flag.String("config", "mesmerise.yaml", "path to the simulator config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var device eeprom.Device
	if cfg.StoragePath != "" {
		fd, err := eeprom.OpenFileDevice(cfg.StoragePath, parameter.StorageFootprint)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		device = fd
	} else {
		device = eeprom.NewMemDevice(parameter.StorageFootprint)
	}
	store := eeprom.NewStore(device)

	// The seed is read exactly once per power cycle.
	rng := rand.New(rand.NewSource(int64(store.ReadSeed())))

	var snd audio.Sounder = audio.Silent{}
	if cfg.Sound {
		spk, err := audio.NewSpeaker()
		if err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			snd = spk
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	drv := display.NewTerminal(screen)
	session := game.NewSession(drv, snd, game.PollClock{}, rng, store)
	session.DefaultAlias = cfg.DefaultAlias

	if err := menu.New(drv, snd, store, session, rng).Run(); err != nil {
		screen.Fini()
		log.Fatalf("game: %v", err)
	}
}
