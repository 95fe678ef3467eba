// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"snake-arcade/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player is what the hosts need from the sound system
type Player interface {
	Eat()
	GameOver()
	Close()
}

// Silent is a Player that does nothing
type Silent struct{}

func (Silent) Eat()      {}
func (Silent) GameOver() {}
func (Silent) Close()    {}

// Beeper plays cues through the system speaker
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBeeper opens the speaker. Volume is a base-2 exponent, 0 leaves the
// cues at their native level and -1 halves them.
func NewBeeper(volume float64) (*Beeper, error) {
	b := &Beeper{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return b, nil
}

// Eat plays a short rising blip
func (b *Beeper) Eat() {
	b.play(EatCue(sampleRate))
}

// GameOver plays three descending tones
func (b *Beeper) GameOver() {
	b.play(GameOverCue(sampleRate))
}

func (b *Beeper) play(s beep.Streamer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}

	vol := &effects.Volume{Streamer: s, Base: 2, Volume: b.volume}
	speaker.Lock()
	b.mixer.Add(vol)
	speaker.Unlock()
}

// Close silences pending cues and releases the speaker
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.initialized = false
}

// EatCue is a 60ms tone at 880Hz
func EatCue(sr beep.SampleRate) beep.Streamer {
	return newTone(880, 60*time.Millisecond, sr)
}

// GameOverCue steps down a minor third twice
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(440, 150*time.Millisecond, sr),
		beep.Silence(sr.N(30*time.Millisecond)),
		newTone(370, 150*time.Millisecond, sr),
		beep.Silence(sr.N(30*time.Millisecond)),
		newTone(311, 300*time.Millisecond, sr),
	)
}

func newTone(freq float64, d time.Duration, sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(d), &tone{freq: freq, rate: sr, fade: sr.N(10 * time.Millisecond), total: sr.N(d)})
}

// tone is a sine oscillator with a short linear fade at both ends to avoid
// clicks
type tone struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
	pos   int
	fade  int
	total int
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		amp := 0.3
		if t.pos < t.fade {
			amp *= float64(t.pos) / float64(t.fade)
		} else if left := t.total - t.pos; left < t.fade {
			amp *= math.Max(float64(left), 0) / float64(t.fade)
		}

		v := amp * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Cues plays the matching cue for engine events
type Cues struct {
	Player Player
}

var _ game.Listener = Cues{}

func (c Cues) OnTick(game.Snapshot)      {}
func (c Cues) OnFoodEaten(game.Snapshot) { c.Player.Eat() }
func (c Cues) OnGameOver(game.Snapshot)  { c.Player.GameOver() }
