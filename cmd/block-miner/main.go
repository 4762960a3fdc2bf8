package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-miner/audio"
	"github.com/lixenwraith/block-miner/config"
	"github.com/lixenwraith/block-miner/constants"
	"github.com/lixenwraith/block-miner/engine"
	"github.com/lixenwraith/block-miner/game"
	"github.com/lixenwraith/block-miner/input"
	"github.com/lixenwraith/block-miner/render"
)

// seedMix decorrelates the second PCG word from the seed
const seedMix = 0x9e3779b97f4a7c15

type options struct {
	configPath string
	seed       uint64
	mute       bool
	debug      bool
	color      string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("block-miner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound muted")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&opts.color, "color", "", "Color mode: auto, truecolor, 256, mono")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// resolveConfig loads file and environment settings, then applies flag overrides
func resolveConfig(opts options, getenv func(string) string) (config.Config, error) {
	cfg, err := config.Load(opts.configPath, getenv)
	if err != nil {
		return cfg, err
	}

	if opts.seed != 0 {
		cfg.Gameplay.Seed = opts.seed
	}
	if opts.color != "" {
		cfg.Display.Color = opts.color
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if opts.version {
		fmt.Println("block-miner", version())
		return
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := resolveConfig(opts, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if opts.configPath != "" {
		log.Printf("Config loaded from %s", opts.configPath)
	}

	if err := run(opts, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(opts options, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer crashGuard(screen)

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(cfg.AudioOutput())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(opts.mute)

	seed := cfg.Gameplay.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	machine := game.NewMachine(cfg.Rules(), rand.New(rand.NewPCG(seed, seed^seedMix)))
	eng := engine.New(machine, sound, engine.NewRealClock())
	log.Printf("Session start: seed=%d rules=%+v", seed, machine.Rules())

	ctx, cancel := context.WithCancel(context.Background())
	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		eng.Run(ctx)
	}()
	// Stop timers and hum before the speaker and screen go away
	defer func() {
		cancel()
		<-engineDone
	}()

	events := make(chan tcell.Event, constants.EventChannelCapacity)
	go pollEvents(screen, events)

	renderer := render.NewRenderer(screen, render.PaletteFor(cfg.Display.Color, screen.Colors()))
	handler := input.NewHandler()
	layout := renderer.Draw(eng.Snapshot())

	frame := time.NewTicker(constants.FrameUpdateInterval)
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			intent := handler.Process(ev, eng.Snapshot(), layout)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("Quit requested")
				return nil
			case input.IntentToggleMute:
				sound.SetMuted(!sound.Muted())
				log.Printf("Muted: %v", sound.Muted())
			case input.IntentResize:
				screen.Sync()
				layout = renderer.Draw(eng.Snapshot())
			case input.IntentAction:
				if !eng.Post(intent.Action) {
					log.Printf("Inbox full, dropped %T", intent.Action)
				}
			}

		case <-frame.C:
			layout = renderer.Draw(eng.Snapshot())
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer crashGuard(screen)
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// crashGuard restores the terminal and exits if the calling goroutine panics
// Must be deferred directly
func crashGuard(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mBLOCK-MINER CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
