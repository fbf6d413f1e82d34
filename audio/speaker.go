package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one step of a cue melody.
type note struct {
	freq     int
	duration time.Duration
}

// cueNotes maps each cue to its melody. The pitches echo the original
// firmware's speaker tunes: high short ticks, a low buzz for errors, rising
// steps for wins.
var cueNotes = map[Cue][]note{
	CueTick:     {{880, 40 * time.Millisecond}},
	CueShow:     {{660, 60 * time.Millisecond}},
	CueCorrect:  {{1320, 80 * time.Millisecond}},
	CueWrong:    {{110, 250 * time.Millisecond}},
	CueRoundWin: {{660, 90 * time.Millisecond}, {880, 90 * time.Millisecond}, {1320, 140 * time.Millisecond}},
	CueGameWin:  {{660, 110 * time.Millisecond}, {880, 110 * time.Millisecond}, {1100, 110 * time.Millisecond}, {1760, 220 * time.Millisecond}},
	CueGameLose: {{440, 160 * time.Millisecond}, {330, 160 * time.Millisecond}, {220, 300 * time.Millisecond}},
}

// Speaker synthesizes cues through the system audio device. Playback runs
// on the speaker's own output goroutine; Play returns immediately.
type Speaker struct{}

// NewSpeaker initializes the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Speaker{}, nil
}

// Play queues the cue's melody.
func (s *Speaker) Play(c Cue) {
	notes, ok := cueNotes[c]
	if !ok {
		return
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, float64(n.freq))
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	if len(parts) == 0 {
		return
	}
	speaker.Play(beep.Seq(parts...))
}
