package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/singularity/audio"
	"github.com/lixenwraith/singularity/config"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/engine"
	"github.com/lixenwraith/singularity/game"
	"github.com/lixenwraith/singularity/modes"
	"github.com/lixenwraith/singularity/render"
	"github.com/lixenwraith/singularity/render/renderers"
)

var (
	configPath = flag.String("config", "", "Path to a TOML settings file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs under "+constants.LogDir)
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	seedFlag   = flag.Int64("seed", 0, "Random seed for the rank sequence, 0 uses the clock")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSINGULARITY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile, err := setupLogging(constants.LogDir, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Starting", "seed", seed, "config", *configPath, "step_hz", cfg.Physics.StepHz)

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground.TCell()))

	// Audio is optional: without a speaker the game runs silent
	var player audio.Player
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Warn("Audio unavailable, continuing without sound", "err", err)
	} else {
		defer sound.Cleanup()
		player = sound
	}

	g := game.New(cfg, engine.NewMonotonicTimeProvider(), rand.New(rand.NewSource(seed)), player)
	defer g.Close()

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator, cfg.Rules.DeathLineY)

	layout := func() render.Layout { return orchestrator.Layout(g.ShowLegend()) }
	inputHandler := modes.NewInputHandler(g, layout, orchestrator.Resize)

	eventChan := make(chan tcell.Event, constants.InputQueueSize)
	// Input polling uses raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !inputHandler.HandleEvent(ev) {
				log.Info("Exiting", "score", g.Round().Score(), "wins", g.Round().Wins())
				return
			}

		case <-frameTicker.C:
			g.Tick()
			orchestrator.RenderFrame(g.RenderContext(layout()))
		}
	}
}
