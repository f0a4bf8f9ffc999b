package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	punchDuration    = 90 * time.Millisecond
	punchAttack      = 5 * time.Millisecond
	punchRelease     = 70 * time.Millisecond
	collisionLength  = 250 * time.Millisecond
	collisionAttack  = 5 * time.Millisecond
	collisionRelease = 150 * time.Millisecond
	startNoteLength  = 90 * time.Millisecond
	startNoteRelease = 60 * time.Millisecond
	fadeNoteLength   = 160 * time.Millisecond
	fadeNoteRelease  = 120 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is made silent explicitly
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePunchSound generates a short noisy thump for a cleared piece
func CreatePunchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, punchDuration, WaveNoise, rate), punchDuration, punchAttack, punchRelease, rate)
	thump := NewEnvelope(NewOscillator(110, punchDuration, WaveSine, rate), punchDuration, punchAttack, punchRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(thump, 0.6))
	return newVolume(mixed, cfg.EffectVolumes[SoundPunch]*cfg.MasterVolume)
}

// CreateCollisionSound generates a harsh buzz for hitting the chopsticks
func CreateCollisionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90, collisionLength, WaveSaw, rate)
	shaped := NewEnvelope(osc, collisionLength, collisionAttack, collisionRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundCollision]*cfg.MasterVolume)
}

// CreateStartSound generates a two-note chime for the first touch
func CreateStartSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	low := NewEnvelope(NewOscillator(660, startNoteLength, WaveSine, rate), startNoteLength, punchAttack, startNoteRelease, rate)
	high := NewEnvelope(NewOscillator(990, startNoteLength, WaveSine, rate), startNoteLength, punchAttack, startNoteRelease, rate)
	return newVolume(beep.Seq(low, high), cfg.EffectVolumes[SoundStart]*cfg.MasterVolume)
}

// CreateFadeSound generates a falling three-note tune for running out of health
func CreateFadeSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, 3)
	for _, f := range []float64{440, 330, 220} {
		osc := NewOscillator(f, fadeNoteLength, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, fadeNoteLength, punchAttack, fadeNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundFade]*cfg.MasterVolume)
}
