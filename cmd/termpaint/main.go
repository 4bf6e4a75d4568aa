package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/termpaint/app"
	"github.com/lixenwraith/termpaint/audio"
	"github.com/lixenwraith/termpaint/config"
	"github.com/lixenwraith/termpaint/core"
)

var (
	configFlag     = flag.String("config", "", "Path to TOML config file")
	logFlag        = flag.String("log", "", "Write logs to this file")
	soundFlag      = flag.Bool("sound", false, "Enable audio feedback")
	asciiFlag      = flag.Bool("ascii", false, "Use ASCII tool icons")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv(os.Getenv)
	applyFlags(cfg)

	if *dumpConfigFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "termpaint needs an interactive terminal")
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Audio failures are never fatal
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.SetVolume(cfg.Audio.Volume)
	sound := audio.NewSoundManager(audioCfg)
	sound.SetLazyInit(true)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			logger.WithError(err).Warn("audio unavailable, continuing without sound")
			sound.ToggleMute()
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()

	a, err := app.New(screen, cfg, logger.WithField("component", "app"), sound)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("event loop stopped")
	}
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.Log.File = *logFlag
		case "sound":
			cfg.Audio.Enabled = *soundFlag
		case "ascii":
			cfg.Dialog.ASCIIIcons = *asciiFlag
		}
	})
}
