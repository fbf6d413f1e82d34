// Package audio plays the short synthesized cues the original hardware
// drives through its piezo speaker.
package audio

// Cue identifies one game sound effect.
type Cue uint8

const (
	CueTick     Cue = iota // countdown tick
	CueShow                // symbol presented
	CueCorrect             // matching input
	CueWrong               // mismatch or timeout
	CueRoundWin            // sequence completed
	CueGameWin             // full clear
	CueGameLose            // lives exhausted
)

// Sounder plays cues. Implementations must not block the control thread for
// the duration of the sound.
type Sounder interface {
	Play(c Cue)
}

// Silent is the Sounder used when audio is disabled or unavailable.
type Silent struct{}

func (Silent) Play(Cue) {}
