// Package app wires the canvas, dialog, input decoding and rendering into the terminal event loop
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/termpaint/audio"
	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/config"
	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
	"github.com/lixenwraith/termpaint/dialog"
	"github.com/lixenwraith/termpaint/input"
	"github.com/lixenwraith/termpaint/render"
)

// Player plays feedback cues; audio.SoundManager satisfies it
type Player interface {
	Play(audio.SoundType) error
	ToggleMute() bool
}

// App owns all mutable state; every method must run on the loop goroutine
type App struct {
	screen       tcell.Screen
	canvas       *canvas.Canvas
	dialog       *dialog.DialogState
	dispatcher   *Dispatcher
	machine      *input.Machine
	orchestrator *render.Orchestrator
	sound        Player
	log          *logrus.Entry
}

// New sizes the canvas from the screen and applies cfg; sound and log may be nil
func New(screen tcell.Screen, cfg *config.Config, log *logrus.Entry, sound Player) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	overrides, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	cols, rows := screen.Size()
	size := core.Size{Rows: rows, Columns: cols}

	c := canvas.New(cols/constants.PixelWidth, rows)
	c.SetColor(cfg.InitialColor())

	d := dialog.New(size)
	d.SetHidden(!cfg.Dialog.Visible)

	o := render.NewOrchestrator(screen)
	o.Register(render.NewCanvasRenderer(), render.PriorityCanvas)
	o.Register(render.NewOverlayRenderer(cfg.Dialog.ASCIIIcons), render.PriorityOverlay)

	log.WithFields(logrus.Fields{
		"columns": cols,
		"rows":    rows,
		"canvas":  fmt.Sprintf("%dx%d", c.Width(), c.Height()),
	}).Info("termpaint started")

	return &App{
		screen:       screen,
		canvas:       c,
		dialog:       d,
		dispatcher:   NewDispatcher(d, c),
		machine:      input.NewMachine(input.MergeKeyTable(input.DefaultKeyTable(), overrides)),
		orchestrator: o,
		sound:        sound,
		log:          log,
	}, nil
}

// Canvas exposes the pixel grid
func (a *App) Canvas() *canvas.Canvas {
	return a.canvas
}

// Dialog exposes the overlay state
func (a *App) Dialog() *dialog.DialogState {
	return a.dialog
}

// Draw renders one frame; the dialog bounds are rebuilt as part of it
func (a *App) Draw() {
	a.orchestrator.RenderFrame(render.RenderContext{
		Pixels:  a.canvas.Pixels(),
		Overlay: a.dialog.Render(a.canvas.Tool(), a.canvas.Color()),
	})
}

// HandleEvent applies one terminal event; returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		a.log.Info("quit requested")
		return false

	case input.IntentToggleDialog:
		hidden := a.dialog.Toggle()
		a.log.WithField("visible", !hidden).Debug("dialog toggled")

	case input.IntentEscape:
		a.dialog.SetHidden(true)

	case input.IntentToolPaintbrush:
		a.selectTool(canvas.ToolPaintbrush)

	case input.IntentToolBucket:
		a.selectTool(canvas.ToolBucket)

	case input.IntentToggleSound:
		if a.sound != nil {
			a.log.WithField("enabled", a.sound.ToggleMute()).Info("sound toggled")
		}

	case input.IntentResize:
		a.dialog.Resize(intent.Size)
		a.orchestrator.Resize()
		a.log.WithFields(logrus.Fields{
			"columns": intent.Size.Columns,
			"rows":    intent.Size.Rows,
		}).Debug("terminal resized")

	case input.IntentPointerPress, input.IntentPointerDrag:
		a.pointer(intent)
	}

	return true
}

func (a *App) selectTool(t canvas.Tool) {
	if a.canvas.Tool() == t {
		return
	}
	a.canvas.SetTool(t)
	a.log.WithField("tool", t).Debug("tool selected")
	a.play(audio.SoundSelect)
}

func (a *App) pointer(intent *input.Intent) {
	res := a.dispatcher.Dispatch(intent.Point)

	switch res.Target {
	case TargetOverlay:
		switch res.Action.Type {
		case dialog.ActionSelectTool:
			a.log.WithField("tool", res.Action.Tool).Debug("tool selected")
		case dialog.ActionSelectColor:
			a.log.WithField("swatch", res.Action.Swatch).Debug("color selected")
		default:
			return
		}
		// Dragging across the dialog repeats the selection; only the press is audible
		if intent.Type == input.IntentPointerPress {
			a.play(audio.SoundSelect)
		}

	case TargetCanvas:
		if res.Change == 0 {
			return
		}
		if res.Tool == canvas.ToolBucket {
			a.log.WithFields(logrus.Fields{
				"x":      res.Pixel.X,
				"y":      res.Pixel.Y,
				"pixels": res.Change,
			}).Debug("fill")
			a.play(audio.SoundFill)
			return
		}
		if intent.Type == input.IntentPointerPress {
			a.play(audio.SoundPaint)
		}
	}
}

func (a *App) play(st audio.SoundType) {
	if a.sound == nil {
		return
	}
	if err := a.sound.Play(st); err != nil {
		a.log.WithError(err).WithField("sound", st).Debug("sound skipped")
	}
}

// Run draws and processes events until quit, context cancellation or screen shutdown
// Events are read on a separate goroutine; all state changes happen on the caller's goroutine
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		}
	}
}
