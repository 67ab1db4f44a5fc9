package audio

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/WGrassw/Paw-aware/constants"
)

// SoundManager manages all game audio
// Every method is a safe no-op until Initialize succeeds
type SoundManager struct {
	mu sync.Mutex

	cfg   Config
	mixer *beep.Mixer

	footsteps      *beep.Ctrl
	footstepSprint bool
	ambient        *beep.Ctrl

	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopLocked()
	// Speaker stays open for the process lifetime
	sm.initialized = false
}

// Play fires a one-shot cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(cue, sm.cfg)
	if streamer == nil {
		log.Printf("audio: unknown cue %d", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartFootsteps starts the walking loop, swapping to the faster loop when sprint changes
func (sm *SoundManager) StartFootsteps(sprint bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.footsteps != nil && !sm.footsteps.Paused && sm.footstepSprint == sprint {
		return
	}

	period := constants.FootstepWalkPeriod
	if sprint {
		period = constants.FootstepSprintPeriod
	}

	speaker.Lock()
	if sm.footsteps != nil {
		sm.footsteps.Paused = true
		sm.footsteps.Streamer = nil
	}
	gen := NewFootstepGenerator(beep.SampleRate(sm.cfg.SampleRate), period)
	sm.footsteps = &beep.Ctrl{Streamer: newVolume(gen, sm.cfg.StepVolume*sm.cfg.MasterVolume)}
	sm.footstepSprint = sprint
	sm.mixer.Add(sm.footsteps)
	speaker.Unlock()
}

// StopFootsteps halts the walking loop
func (sm *SoundManager) StopFootsteps() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.footsteps == nil {
		return
	}
	speaker.Lock()
	sm.footsteps.Paused = true
	sm.footsteps.Streamer = nil
	speaker.Unlock()
	sm.footsteps = nil
}

// StartAmbient starts the lobby wind loop
func (sm *SoundManager) StartAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.ambient != nil && !sm.ambient.Paused {
		return
	}

	speaker.Lock()
	gen := NewWindGenerator(beep.SampleRate(sm.cfg.SampleRate))
	sm.ambient = &beep.Ctrl{Streamer: newVolume(gen, 0.5*sm.cfg.MasterVolume)}
	sm.mixer.Add(sm.ambient)
	speaker.Unlock()
}

// StopAll silences every playing stream, loops included
func (sm *SoundManager) StopAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopLocked()
}

func (sm *SoundManager) stopLocked() {
	speaker.Lock()
	if sm.footsteps != nil {
		sm.footsteps.Paused = true
	}
	if sm.ambient != nil {
		sm.ambient.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.footsteps = nil
	sm.ambient = nil
}

// FootstepGenerator emits a soft low thump every period, forever
type FootstepGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
	thump  int
	step   int
}

// NewFootstepGenerator creates a footstep loop generator
func NewFootstepGenerator(sr beep.SampleRate, period time.Duration) *FootstepGenerator {
	return &FootstepGenerator{
		sr:     sr,
		period: max(1, sr.N(period)),
		thump:  max(1, sr.N(constants.FootstepThump)),
	}
}

func (g *FootstepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period
		if beatPos == 0 {
			g.step++
		}

		sample := 0.0
		if beatPos < g.thump {
			t := float64(beatPos) / float64(g.sr)
			env := 1.0 - float64(beatPos)/float64(g.thump)
			// Alternate feet with a slight pitch change
			freq := 70.0
			if g.step%2 == 0 {
				freq = 82.0
			}
			sample = 0.5 * env * env * math.Sin(2*math.Pi*freq*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FootstepGenerator) Err() error {
	return nil
}

// WindGenerator generates a slow filtered-noise swell for the lobby
type WindGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
	last    float64
}

// NewWindGenerator creates a wind ambience generator
func NewWindGenerator(sr beep.SampleRate) *WindGenerator {
	return &WindGenerator{
		sr:      sr,
		samples: sr.N(6 * time.Second),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *WindGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		swell := 0.35 + 0.65*(0.5+0.5*math.Sin(cyclePos*2*math.Pi))

		// One-pole low pass over white noise
		noise := g.rng.Float64()*2 - 1
		g.last = g.last*0.985 + noise*0.015
		sample := 0.6 * swell * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WindGenerator) Err() error {
	return nil
}
