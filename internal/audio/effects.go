package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/hotdog-arcade/internal/core"
)

// Effect timings
const (
	fireDuration      = 260 * time.Millisecond
	fireAttack        = 4 * time.Millisecond
	fireRelease       = 200 * time.Millisecond
	explosionDuration = 900 * time.Millisecond
	explosionAttack   = 8 * time.Millisecond
	explosionRelease  = 700 * time.Millisecond
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a raw wave whose frequency glides from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator creates an oscillator. endFreq equal to freq gives a steady tone.
func newOscillator(freq, endFreq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fireSound is a short mortar thump: a falling square tone over a noise burst.
func fireSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thump := newEnvelope(newOscillator(180, 60, fireDuration, waveSquare, rate),
		fireDuration, fireAttack, fireRelease, rate)
	burst := newEnvelope(newOscillator(0, 0, fireDuration/2, waveNoise, rate),
		fireDuration/2, fireAttack, fireRelease/2, rate)

	return newVolume(beep.Mix(newVolume(thump, 0.6), newVolume(burst, 0.4)), cfg.Volume)
}

// explosionSound is a long noise blast with a low rumble underneath.
func explosionSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blast := newEnvelope(newOscillator(0, 0, explosionDuration, waveNoise, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)
	rumble := newEnvelope(newOscillator(90, 40, explosionDuration, waveSine, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)

	return newVolume(beep.Mix(newVolume(blast, 0.7), newVolume(rumble, 0.5)), cfg.Volume)
}

// soundFor returns a fresh streamer for the cue, or nil for unknown cues.
func soundFor(c core.Cue, cfg Config) beep.Streamer {
	switch c {
	case core.CueFire:
		return fireSound(cfg)
	case core.CueExplosion:
		return explosionSound(cfg)
	default:
		return nil
	}
}
