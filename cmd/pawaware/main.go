package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/WGrassw/Paw-aware/audio"
	"github.com/WGrassw/Paw-aware/config"
	"github.com/WGrassw/Paw-aware/constants"
	"github.com/WGrassw/Paw-aware/dogchase"
	"github.com/WGrassw/Paw-aware/encounter"
	"github.com/WGrassw/Paw-aware/engine"
	"github.com/WGrassw/Paw-aware/input"
	"github.com/WGrassw/Paw-aware/jump"
	"github.com/WGrassw/Paw-aware/lobby"
	"github.com/WGrassw/Paw-aware/match3"
	"github.com/WGrassw/Paw-aware/maze"
	"github.com/WGrassw/Paw-aware/minigame"
	"github.com/WGrassw/Paw-aware/quest"
	"github.com/WGrassw/Paw-aware/render"
	"github.com/WGrassw/Paw-aware/terminal"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	_          = flag.Bool("debug", false, "Write logs to logs/pawaware.log")
	_          = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	_          = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPAWAWARE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, flagOverrides()); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	seed := resolveSeed(cfg.Seed, time.Now())
	log.Printf("run %s: starting, seed=%d", uuid.NewString(), seed)

	if err := run(cfg, seed); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// flagOverrides collects the flags the user actually passed
func flagOverrides() map[string]string {
	set := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})
	return set
}

// applyFlags lays explicitly passed flags over the loaded config
func applyFlags(cfg *config.Config, set map[string]string) error {
	if v, ok := set["debug"]; ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("-debug: %w", err)
		}
		cfg.Debug = debug
	}
	if v, ok := set["seed"]; ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("-seed: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := set["color"]; ok {
		cfg.Color = v
	}
	return cfg.Validate()
}

// resolveSeed keeps a configured seed and derives one from now otherwise
func resolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

func run(cfg config.Config, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	colorMode := terminal.ParseColorMode(cfg.Color)

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	screen, err := terminal.Open()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	terminal.SetTitle(screen, constants.LobbyTitle)
	events := terminal.Pump(screen)

	progress := quest.NewTracker()
	hub, err := lobby.NewController(cfg.Lobby, progress, sound)
	if err != nil {
		return err
	}

	kb := input.NewKeyboard()
	clock := engine.NewPausableClock()
	host := &minigame.Host{
		Screen:    screen,
		Events:    events,
		Audio:     sound,
		Rand:      rng,
		Clock:     engine.SystemClock{},
		ColorMode: colorMode,
	}
	runner := minigame.NewRunner(host, func() {
		terminal.Restore(screen, constants.LobbyTitle)
		terminal.Drain(events)
		kb.Release()
		sound.StartAmbient()
	})
	if err := registerEngines(runner, cfg); err != nil {
		return err
	}

	enc, err := encounter.NewController(cfg.Encounter, progress, hub, &pausingLauncher{runner: runner, clock: clock}, sound, rng)
	if err != nil {
		return err
	}
	hub.Attach(enc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sound.StartAmbient()
	canvas := render.NewCanvas(0, 0, colorMode)
	view := render.NewLobby(canvas)

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	last := clock.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			kb.HandleEvent(ev, clock.Now())

		case <-frameTicker.C:
			now := clock.Now()
			dt := min(now.Sub(last), constants.MaxFrameDelta)
			last = now

			st := kb.State(now)
			if st.Quit {
				log.Printf("quit from scene %d", hub.Scene())
				return nil
			}
			hub.Advance(now, dt, st)
			enc.Tick(ctx, now)
			// A minigame may have run inside Tick; the paused span is not lobby time
			last = clock.Now()

			frame := hub.Frame()
			if icon, ok := enc.IconFrame(last); ok {
				frame.Icon = iconRect(icon)
			}
			if kind, res, ok := enc.LastResult(); ok {
				frame.Message = resultMessage(kind, res)
			}
			render.Present(screen, canvas, func(*render.Canvas) {
				view.Draw(frame)
			})
		}
	}
}

func registerEngines(runner *minigame.Runner, cfg config.Config) error {
	m3, err := match3.NewEngine(cfg.Match3)
	if err != nil {
		return err
	}
	dog, err := dogchase.NewEngine(cfg.Dog)
	if err != nil {
		return err
	}
	mz, err := maze.NewEngine(cfg.Maze)
	if err != nil {
		return err
	}
	jp, err := jump.NewEngine(cfg.Jump)
	if err != nil {
		return err
	}
	runner.Register(minigame.KindMatch3, m3)
	runner.Register(minigame.KindDog, dog)
	runner.Register(minigame.KindMaze, mz)
	runner.Register(minigame.KindJump, jp)
	return nil
}

// pausingLauncher freezes lobby time while a minigame owns the screen
type pausingLauncher struct {
	runner encounter.Launcher
	clock  *engine.PausableClock
}

func (p *pausingLauncher) Run(ctx context.Context, kind minigame.Kind, level int) minigame.Result {
	p.clock.Pause()
	defer p.clock.Resume()
	return p.runner.Run(ctx, kind, level)
}

func iconRect(icon encounter.Icon) *render.IconRect {
	return &render.IconRect{
		X:         icon.X,
		Y:         icon.Y,
		W:         icon.W,
		H:         icon.H,
		Label:     icon.Kind.Title(),
		Countdown: icon.SecondsToLift,
		Growing:   icon.Growing,
		Progress:  icon.Progress,
	}
}

func resultMessage(kind minigame.Kind, res minigame.Result) string {
	if res.Won() {
		return fmt.Sprintf("%s cleared!", kind.Title())
	}
	return fmt.Sprintf("%s lost (%s). -1 health", kind.Title(), res)
}
