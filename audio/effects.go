package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample returns the wave value at phase in [0, 1)
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone is one note with a linear attack and release around a flat sustain
type Tone struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Gain    float64
}

// tone streams a Tone once
type tone struct {
	Tone
	step    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone renders t at rate
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	return &tone{
		Tone:    t,
		step:    t.Freq / float64(rate),
		total:   rate.N(t.Length),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
}

func (t *tone) gain() float64 {
	g := t.Gain
	if t.attack > 0 && t.pos < t.attack {
		g *= float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		g *= float64(left) / float64(t.release)
	}
	return g
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := t.Wave.sample(t.phase) * t.gain()
		samples[i] = [2]float64{v, v}
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// voice is a run of chords played back to back; each chord's tones sound together
type voice [][]Tone

// Cue recipes
var voices = map[Cue]voice{
	CueError: {
		{{Freq: 100, Wave: WaveSaw, Length: 80 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 20 * time.Millisecond, Gain: 1}},
	},
	CueBell: {{
		{Freq: 880, Wave: WaveSine, Length: 600 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 550 * time.Millisecond, Gain: 0.7},
		{Freq: 1760, Wave: WaveSine, Length: 600 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond, Gain: 0.3},
	}},
	CueWhoosh: {
		{{Wave: WaveNoise, Length: 300 * time.Millisecond, Attack: 150 * time.Millisecond, Release: 150 * time.Millisecond, Gain: 1}},
	},
	CueCoin: {
		{{Freq: 987.77, Wave: WaveSquare, Length: 80 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Gain: 1}},
		{{Freq: 1318.51, Wave: WaveSquare, Length: 280 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond, Gain: 1}},
	},
	CueAlarm: {
		{{Freq: 660, Wave: WaveSquare, Length: 225 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 120 * time.Millisecond, Gain: 0.6}},
		{{Freq: 440, Wave: WaveSquare, Length: 225 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 120 * time.Millisecond, Gain: 0.6}},
	},
}

func (v voice) streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(v))
	for _, chord := range v {
		tones := make([]beep.Streamer, len(chord))
		for i, t := range chord {
			tones[i] = NewTone(t, rate)
		}
		parts = append(parts, beep.Mix(tones...))
	}
	return beep.Seq(parts...)
}

// newVolume wraps s in a linear gain; log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// GetSoundEffect returns the streamer for cue, nil for unknown cues
func GetSoundEffect(cue Cue, cfg Config) beep.Streamer {
	v, ok := voices[cue]
	if !ok {
		return nil
	}
	return newVolume(v.streamer(beep.SampleRate(cfg.SampleRate)), cfg.EffectVolume*cfg.MasterVolume)
}
